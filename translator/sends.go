package translator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

// translateInternalSend turns a self send into capture variable
// assignments for the message server's parameters followed by a
// schedule of its logical action.
func (t *translator) translateInternalSend(stmt *rebeca.ExprStmt, call *rebeca.CallExpr, message string, ctx *context) {
	srv := ctx.class.MsgSrvNamed(message)
	args := call.Args()
	for i, param := range srv.Params() {
		value := cppDefault(param.Type())
		if i < len(args) {
			value = t.translateExpr(args[i], ctx)
		}
		ctx.addLine(captureVarName(param.Name(), message) + " = " + value + ";")
	}
	ctx.addLine(message + ".schedule(" + strconv.FormatInt(delayValue(stmt.After()), 10) + "s);")
	ctx.reaction.AddEffect(message)
}

// translateExternalSend turns a send through a known rebec field into a
// write of the payload to the synthesized output port. The target
// instance is resolved through the representative instance's bindings.
func (t *translator) translateExternalSend(call *rebeca.CallExpr, field string, fieldIdx int, message string, ctx *context) {
	if ctx.instance == nil {
		ctx.addLine(fmt.Sprintf("// relico: unsupported statement (unresolved send %s.%s)", field, message))
		t.addWarning(fmt.Errorf("reactiveclass %s has no instances, cannot resolve send %s.%s", ctx.class.Name(), field, message))
		return
	}
	if fieldIdx >= len(ctx.instance.Bindings()) {
		ctx.addLine(fmt.Sprintf("// relico: unsupported statement (unresolved send %s.%s)", field, message))
		return
	}
	targetName := ctx.instance.Bindings()[fieldIdx]
	target := t.model.InstanceNamed(targetName)
	if target == nil {
		ctx.addLine(fmt.Sprintf("// relico: unsupported statement (unresolved send %s.%s)", field, message))
		return
	}
	targetClass := t.model.ClassNamed(target.ClassName())
	if targetClass == nil || targetClass.MsgSrvNamed(message) == nil {
		ctx.addLine(fmt.Sprintf("// relico: unsupported statement (unresolved send %s.%s)", field, message))
		return
	}

	port := outputPortName(message, targetName, ctx.instance.Name())
	payload := t.payloadTypeFor(target.ClassName(), message)
	if payload == "int" {
		ctx.addLine(port + ".set(0);")
	} else {
		srv := targetClass.MsgSrvNamed(message)
		args := call.Args()
		values := make([]string, len(srv.Params()))
		for i, param := range srv.Params() {
			values[i] = cppDefault(param.Type())
			if i < len(args) {
				values[i] = t.translateExpr(args[i], ctx)
			}
		}
		ctx.addLine(port + ".set(" + payload + "{ " + strings.Join(values, ", ") + " });")
	}
	ctx.reaction.AddEffect(port)
}

// delayValue returns the statically known delay of an after clause.
// Absent and non-literal delays count as zero.
func delayValue(after rebeca.Expr) int64 {
	if lit, ok := after.(*rebeca.IntLit); ok {
		return lit.Value()
	}
	return 0
}
