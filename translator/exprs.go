package translator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

// translateExpr renders an expression as C++ source text. Identifiers
// naming a formal parameter of the handler in ctx are rewritten to
// their capture state variable, reactor parameter, or input port
// accessor; everything else passes through structurally unchanged.
func (t *translator) translateExpr(expr rebeca.Expr, ctx *context) string {
	switch expr := expr.(type) {
	case *rebeca.Ident:
		return t.translateIdent(expr, ctx)
	case *rebeca.IntLit:
		return strconv.FormatInt(expr.Value(), 10)
	case *rebeca.FloatLit:
		return expr.Text()
	case *rebeca.BoolLit:
		if expr.Value() {
			return "true"
		}
		return "false"
	case *rebeca.StringLit:
		return strconv.Quote(expr.Value())
	case *rebeca.UnaryExpr:
		return expr.Op() + t.translateExpr(expr.X(), ctx)
	case *rebeca.BinaryExpr:
		return t.translateExpr(expr.X(), ctx) + " " + expr.Op() + " " + t.translateExpr(expr.Y(), ctx)
	case *rebeca.ParenExpr:
		return "(" + t.translateExpr(expr.X(), ctx) + ")"
	case *rebeca.DotExpr:
		if recv, ok := expr.Recv().(*rebeca.Ident); ok && recv.Name() == "self" {
			return expr.Member()
		}
		return t.translateExpr(expr.Recv(), ctx) + "." + expr.Member()
	case *rebeca.CallExpr:
		args := make([]string, len(expr.Args()))
		for i, arg := range expr.Args() {
			args[i] = t.translateExpr(arg, ctx)
		}
		return t.translateExpr(expr.Callee(), ctx) + "(" + strings.Join(args, ", ") + ")"
	default:
		panic(fmt.Errorf("unexpected expression type: %T", expr))
	}
}

func (t *translator) translateIdent(ident *rebeca.Ident, ctx *context) string {
	name := ident.Name()
	if ctx.handler == nil || ctx.handler.ParamIndex(name) < 0 {
		return name
	}
	if ctx.external {
		return ctx.inputPort + ".get()->" + name
	}
	if ctx.inConstructor {
		if svName, ok := t.profileOf(ctx.class).MappedStateVar(name); ok {
			return svName
		}
	}
	return captureVarName(name, ctx.handler.Name())
}
