package translator

import (
	"fmt"

	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

// addReactorForClass emits the reactor for a reactive class: parameters
// from the constructor profile, state and capture variables, ports
// derived from the external call sites of the class's instances, one
// logical action and reaction per internal message server, a startup
// reaction for the constructor, and one reaction per input port for
// external message servers.
func (t *translator) addReactorForClass(cls *rebeca.ReactiveClass) {
	profile := t.profileOf(cls)
	reactor := t.program.AddReactor(cls.Name())
	representative := t.representativeInstance(cls)
	t.warnUnwrittenPorts(cls, representative)

	for _, param := range profile.Params() {
		sv := param.StateVar()
		reactor.AddParameter(sv.Name(), cppType(sv.Type()), cppDefault(sv.Type()))
	}

	for _, sv := range cls.StateVars() {
		if profile.IsParam(sv.Name()) {
			continue
		}
		reactor.AddState(sv.Name(), cppType(sv.Type()), cppDefault(sv.Type()))
	}
	if ctor := cls.Constructor(); ctor != nil {
		for _, param := range ctor.Params() {
			if _, ok := profile.MappedStateVar(param.Name()); ok {
				continue
			}
			reactor.AddState(captureVarName(param.Name(), ctor.Name()), cppType(param.Type()), cppDefault(param.Type()))
		}
	}
	for _, srv := range t.classification.InternalHandlers(cls) {
		for _, param := range srv.Params() {
			reactor.AddState(captureVarName(param.Name(), srv.Name()), cppType(param.Type()), cppDefault(param.Type()))
		}
	}

	type inputBinding struct {
		port    string
		message string
	}
	var inputs []inputBinding
	for _, site := range t.graph.ExternalTriples() {
		if site.CalleeClass() != cls.Name() {
			continue
		}
		port := inputPortName(site.Message(), site.Caller().Name(), site.Callee().Name())
		reactor.AddInput(port, t.payloadTypeFor(cls.Name(), site.Message()))
		inputs = append(inputs, inputBinding{port: port, message: site.Message()})
	}
	for _, site := range t.graph.ExternalTriples() {
		if site.Caller().ClassName() != cls.Name() {
			continue
		}
		port := outputPortName(site.Message(), site.Callee().Name(), site.Caller().Name())
		reactor.AddOutput(port, t.payloadTypeFor(site.CalleeClass(), site.Message()))
	}

	for _, srv := range t.classification.InternalHandlers(cls) {
		reactor.AddAction(srv.Name())
	}

	for _, srv := range t.classification.InternalHandlers(cls) {
		reaction := reactor.AddReaction()
		reaction.AddTrigger(srv.Name())
		t.translateBody(srv.Body(), newContext(cls, representative, srv, reaction))
	}

	if ctor := cls.Constructor(); ctor != nil {
		reaction := reactor.AddReaction()
		reaction.AddTrigger("startup")
		ctx := newContext(cls, representative, ctor, reaction)
		ctx.inConstructor = true
		t.translateBody(ctor.Body(), ctx)
	}

	for _, in := range inputs {
		// Ports feeding an internal handler get no reaction; the
		// handler's logical action stays its only trigger.
		if t.classification.IsInternal(cls.Name(), in.message) {
			continue
		}
		srv := cls.MsgSrvNamed(in.message)
		reaction := reactor.AddReaction()
		reaction.AddTrigger(in.port)
		ctx := newContext(cls, representative, srv, reaction)
		ctx.external = true
		ctx.inputPort = in.port
		t.translateBody(srv.Body(), ctx)
	}
}

// representativeInstance returns the first declared instance of the
// class, used to resolve known rebec bindings when translating bodies,
// or nil if the class is never instantiated.
func (t *translator) representativeInstance(cls *rebeca.ReactiveClass) *rebeca.InstanceDecl {
	instances := t.model.InstancesOf(cls.Name())
	if len(instances) == 0 {
		return nil
	}
	return instances[0]
}

// warnUnwrittenPorts reports instances of the class whose output ports
// no reaction body writes. Bodies are translated once, against the
// representative instance, and port names embed instance names, so
// sends issued by any other instance declare and connect ports that
// stay unset at runtime.
func (t *translator) warnUnwrittenPorts(cls *rebeca.ReactiveClass, representative *rebeca.InstanceDecl) {
	if representative == nil {
		return
	}
	flagged := make(map[string]bool)
	for _, site := range t.graph.ExternalTriples() {
		caller := site.Caller()
		if caller.ClassName() != cls.Name() || caller.Name() == representative.Name() || flagged[caller.Name()] {
			continue
		}
		flagged[caller.Name()] = true
		t.addWarning(fmt.Errorf("reactiveclass %s reactions write the output ports of %s; ports of instance %s are connected but never written",
			cls.Name(), representative.Name(), caller.Name()))
	}
}

func (t *translator) translateBody(body *rebeca.BlockStmt, ctx *context) {
	if body == nil {
		return
	}
	for _, stmt := range body.Stmts() {
		t.translateStmt(stmt, ctx)
	}
}
