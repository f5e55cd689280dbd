package translator

import (
	"fmt"

	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

func (t *translator) translateStmt(stmt rebeca.Stmt, ctx *context) {
	switch stmt := stmt.(type) {
	case *rebeca.BlockStmt:
		ctx.addLine("{")
		t.translateNestedStmt(stmt, ctx)
		ctx.addLine("}")
	case *rebeca.IfStmt:
		t.translateIfStmt(stmt, ctx)
	case *rebeca.WhileStmt:
		t.translateWhileStmt(stmt, ctx)
	case *rebeca.AssignStmt:
		t.translateAssignStmt(stmt, ctx)
	case *rebeca.LocalDeclStmt:
		t.translateLocalDeclStmt(stmt, ctx)
	case *rebeca.ExprStmt:
		t.translateExprStmt(stmt, ctx)
	case *rebeca.ReturnStmt:
		t.translateReturnStmt(stmt, ctx)
	default:
		ctx.addLine(fmt.Sprintf("// relico: unsupported statement (%T)", stmt))
	}
}

// translateNestedStmt translates the body of a surrounding construct
// one indentation level deeper. A block statement contributes its
// children without extra braces, since the caller already emitted them.
func (t *translator) translateNestedStmt(stmt rebeca.Stmt, ctx *context) {
	sub := ctx.subContext()
	if block, ok := stmt.(*rebeca.BlockStmt); ok {
		for _, s := range block.Stmts() {
			t.translateStmt(s, sub)
		}
		return
	}
	t.translateStmt(stmt, sub)
}

func (t *translator) translateIfStmt(stmt *rebeca.IfStmt, ctx *context) {
	ctx.addLine("if (" + t.translateExpr(stmt.Cond(), ctx) + ") {")
	t.translateNestedStmt(stmt.Then(), ctx)
	els := stmt.Else()
	for els != nil {
		if chained, ok := els.(*rebeca.IfStmt); ok {
			ctx.addLine("} else if (" + t.translateExpr(chained.Cond(), ctx) + ") {")
			t.translateNestedStmt(chained.Then(), ctx)
			els = chained.Else()
			continue
		}
		ctx.addLine("} else {")
		t.translateNestedStmt(els, ctx)
		els = nil
	}
	ctx.addLine("}")
}

func (t *translator) translateWhileStmt(stmt *rebeca.WhileStmt, ctx *context) {
	ctx.addLine("while (" + t.translateExpr(stmt.Cond(), ctx) + ") {")
	t.translateNestedStmt(stmt.Body(), ctx)
	ctx.addLine("}")
}

func (t *translator) translateAssignStmt(stmt *rebeca.AssignStmt, ctx *context) {
	if ctx.inConstructor {
		svName := assignedStateVarName(stmt.Lhs())
		if svName != "" && t.profileOf(ctx.class).IsParam(svName) {
			// The reactor parameter already supplies this value.
			return
		}
	}
	ctx.addLine(t.translateExpr(stmt.Lhs(), ctx) + " = " + t.translateExpr(stmt.Rhs(), ctx) + ";")
}

func (t *translator) translateLocalDeclStmt(stmt *rebeca.LocalDeclStmt, ctx *context) {
	line := cppType(stmt.Type()) + " " + stmt.Name()
	if stmt.Init() != nil {
		line += " = " + t.translateExpr(stmt.Init(), ctx)
	}
	ctx.addLine(line + ";")
}

func (t *translator) translateReturnStmt(stmt *rebeca.ReturnStmt, ctx *context) {
	if stmt.Result() != nil {
		ctx.addLine("return " + t.translateExpr(stmt.Result(), ctx) + ";")
		return
	}
	ctx.addLine("return;")
}

// translateExprStmt recognizes statement-level message sends and turns
// them into schedule or port write sequences. Any other expression
// statement passes through as plain C++.
func (t *translator) translateExprStmt(stmt *rebeca.ExprStmt, ctx *context) {
	call, ok := stmt.Expr().(*rebeca.CallExpr)
	if !ok {
		ctx.addLine(t.translateExpr(stmt.Expr(), ctx) + ";")
		return
	}
	dot, ok := call.Callee().(*rebeca.DotExpr)
	if !ok {
		ctx.addLine(t.translateExpr(stmt.Expr(), ctx) + ";")
		return
	}
	recv, ok := dot.Recv().(*rebeca.Ident)
	if !ok {
		ctx.addLine(fmt.Sprintf("// relico: unsupported statement (send through %s)", dot.Recv()))
		return
	}
	if recv.Name() == "self" {
		if ctx.class.MsgSrvNamed(dot.Member()) != nil {
			t.translateInternalSend(stmt, call, dot.Member(), ctx)
			return
		}
		if ctx.class.MethodNamed(dot.Member()) != nil {
			ctx.addLine(t.translateExpr(stmt.Expr(), ctx) + ";")
			return
		}
		ctx.addLine(fmt.Sprintf("// relico: unsupported statement (self send to unknown message server %s)", dot.Member()))
		return
	}
	if fieldIdx := ctx.class.KnownRebecIndex(recv.Name()); fieldIdx >= 0 {
		t.translateExternalSend(call, recv.Name(), fieldIdx, dot.Member(), ctx)
		return
	}
	ctx.addLine(fmt.Sprintf("// relico: unsupported statement (send through %s)", recv.Name()))
}
