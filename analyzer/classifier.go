package analyzer

import (
	"fmt"
	"strings"

	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

// Classification partitions every class's message servers into internal
// handlers (only ever triggered by self sends, modeled as logical
// actions) and external handlers (triggered through input ports).
// Constructors are always internal and are not part of the partition.
type Classification struct {
	model    *rebeca.Model
	internal map[string]map[string]bool
}

// Classify computes, per class, the set of message server names
// targeted by a self.<name>(...) expression anywhere in the class's
// constructor, message servers, or synchronous methods. A message
// server in that set is internal, every other one is external. The
// returned warnings flag internal handlers that are also the target of
// external sends: those sends synthesize ports no reaction listens on.
func Classify(model *rebeca.Model, g *CallGraph) (*Classification, []error) {
	c := &Classification{model: model, internal: make(map[string]map[string]bool)}
	for _, cls := range model.Classes() {
		if _, ok := c.internal[cls.Name()]; ok {
			continue
		}
		c.internal[cls.Name()] = selfSendClosure(cls)
	}
	var warnings []error
	for _, site := range g.ExternalTriples() {
		if c.IsInternal(site.CalleeClass(), site.Message()) {
			warnings = append(warnings, fmt.Errorf(
				"message server %s.%s is self sent and also sent from %s; it stays internal and the external send will never trigger a reaction",
				site.CalleeClass(), site.Message(), site.Caller().Name()))
		}
	}
	return c, warnings
}

// selfSendClosure collects the message server names reached by a self
// send anywhere in the class body. The closure is one level deep: sends
// reached through other classes do not count.
func selfSendClosure(cls *rebeca.ReactiveClass) map[string]bool {
	closure := make(map[string]bool)
	record := func(body *rebeca.BlockStmt) {
		if body == nil {
			return
		}
		rebeca.WalkExprs(body, func(expr rebeca.Expr) {
			call, ok := expr.(*rebeca.CallExpr)
			if !ok {
				return
			}
			dot, ok := call.Callee().(*rebeca.DotExpr)
			if !ok {
				return
			}
			recv, ok := dot.Recv().(*rebeca.Ident)
			if !ok || recv.Name() != "self" {
				return
			}
			if cls.MsgSrvNamed(dot.Member()) != nil {
				closure[dot.Member()] = true
			}
		})
	}
	if ctor := cls.Constructor(); ctor != nil {
		record(ctor.Body())
	}
	for _, srv := range cls.MsgSrvs() {
		record(srv.Body())
	}
	for _, m := range cls.Methods() {
		record(m.Body())
	}
	return closure
}

// IsInternal reports whether the named message server of the named
// class is an internal handler.
func (c *Classification) IsInternal(className, handler string) bool {
	return c.internal[className][handler]
}

// InternalHandlers returns the class's internal message servers in
// declaration order.
func (c *Classification) InternalHandlers(cls *rebeca.ReactiveClass) []*rebeca.MsgSrv {
	var handlers []*rebeca.MsgSrv
	for _, srv := range cls.MsgSrvs() {
		if c.internal[cls.Name()][srv.Name()] {
			handlers = append(handlers, srv)
		}
	}
	return handlers
}

// ExternalHandlers returns the class's external message servers in
// declaration order.
func (c *Classification) ExternalHandlers(cls *rebeca.ReactiveClass) []*rebeca.MsgSrv {
	var handlers []*rebeca.MsgSrv
	for _, srv := range cls.MsgSrvs() {
		if !c.internal[cls.Name()][srv.Name()] {
			handlers = append(handlers, srv)
		}
	}
	return handlers
}

func (c *Classification) String() string {
	var b strings.Builder
	b.WriteString("Classification:\n")
	for _, cls := range c.model.Classes() {
		fmt.Fprintf(&b, "%s\n", cls.Name())
		var internal, external []string
		for _, srv := range cls.MsgSrvs() {
			if c.internal[cls.Name()][srv.Name()] {
				internal = append(internal, srv.Name())
			} else {
				external = append(external, srv.Name())
			}
		}
		fmt.Fprintf(&b, "\tinternal: %s\n", strings.Join(internal, ", "))
		fmt.Fprintf(&b, "\texternal: %s\n", strings.Join(external, ", "))
	}
	return b.String()
}
