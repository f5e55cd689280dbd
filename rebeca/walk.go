package rebeca

import "fmt"

// WalkStmts calls f for stmt and every statement nested inside it,
// parents before children, in source order.
func WalkStmts(stmt Stmt, f func(Stmt)) {
	if stmt == nil {
		return
	}
	f(stmt)
	switch s := stmt.(type) {
	case *BlockStmt:
		for _, child := range s.stmts {
			WalkStmts(child, f)
		}
	case *IfStmt:
		WalkStmts(s.then, f)
		if s.els != nil {
			WalkStmts(s.els, f)
		}
	case *WhileStmt:
		WalkStmts(s.body, f)
	case *ExprStmt, *AssignStmt, *LocalDeclStmt, *ReturnStmt:
	default:
		panic(fmt.Errorf("unexpected statement type: %T", stmt))
	}
}

// WalkExprs calls f for every expression in the statement tree rooted at
// stmt, outer expressions before their operands. After and deadline
// clause expressions are included.
func WalkExprs(stmt Stmt, f func(Expr)) {
	WalkStmts(stmt, func(stmt Stmt) {
		switch s := stmt.(type) {
		case *BlockStmt:
		case *IfStmt:
			walkExpr(s.cond, f)
		case *WhileStmt:
			walkExpr(s.cond, f)
		case *ExprStmt:
			walkExpr(s.expr, f)
			walkExpr(s.after, f)
			walkExpr(s.deadline, f)
		case *AssignStmt:
			walkExpr(s.lhs, f)
			walkExpr(s.rhs, f)
		case *LocalDeclStmt:
			walkExpr(s.init, f)
		case *ReturnStmt:
			walkExpr(s.result, f)
		}
	})
}

func walkExpr(expr Expr, f func(Expr)) {
	if expr == nil {
		return
	}
	f(expr)
	switch e := expr.(type) {
	case *Ident, *IntLit, *FloatLit, *BoolLit, *StringLit:
	case *UnaryExpr:
		walkExpr(e.x, f)
	case *BinaryExpr:
		walkExpr(e.x, f)
		walkExpr(e.y, f)
	case *CallExpr:
		walkExpr(e.callee, f)
		for _, arg := range e.args {
			walkExpr(arg, f)
		}
	case *DotExpr:
		walkExpr(e.recv, f)
	case *ParenExpr:
		walkExpr(e.x, f)
	default:
		panic(fmt.Errorf("unexpected expression type: %T", expr))
	}
}
