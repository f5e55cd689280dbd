package translator

import (
	"strings"

	"github.com/sarmadiali98/ReLico-sub000/lf"
	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

// context carries the surroundings of the statement currently being
// translated: the enclosing class and handler, the representative
// instance used to resolve known rebec bindings, and the reaction that
// receives the produced body lines and effects.
type context struct {
	class    *rebeca.ReactiveClass
	instance *rebeca.InstanceDecl
	handler  *rebeca.MsgSrv
	reaction *lf.Reaction

	inConstructor bool
	external      bool
	inputPort     string

	indent int
}

func newContext(cls *rebeca.ReactiveClass, instance *rebeca.InstanceDecl, handler *rebeca.MsgSrv, reaction *lf.Reaction) *context {
	ctx := new(context)
	ctx.class = cls
	ctx.instance = instance
	ctx.handler = handler
	ctx.reaction = reaction
	return ctx
}

func (c *context) subContext() *context {
	ctx := new(context)
	ctx.class = c.class
	ctx.instance = c.instance
	ctx.handler = c.handler
	ctx.reaction = c.reaction
	ctx.inConstructor = c.inConstructor
	ctx.external = c.external
	ctx.inputPort = c.inputPort
	ctx.indent = c.indent + 1
	return ctx
}

func (c *context) addLine(line string) {
	c.reaction.AddBodyLine(strings.Repeat("    ", c.indent) + line)
}
