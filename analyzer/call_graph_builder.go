package analyzer

import (
	"fmt"

	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

type callGraphBuilder struct {
	model    *rebeca.Model
	graph    *CallGraph
	warnings []error
}

func (b *callGraphBuilder) addWarning(err error) {
	b.warnings = append(b.warnings, err)
}

// sendTemplate is a message send as it appears in a class body. It is
// instantiated into one CallSite per instance of the class.
type sendTemplate struct {
	handler  string
	internal bool
	field    string
	fieldIdx int
	message  string
	args     []rebeca.Expr
	delay    rebeca.Expr
	deadline rebeca.Expr
	pos      rebeca.Pos
}

// BuildCallGraph walks every constructor, message server, and method
// body in the model and produces the CallSite table, one ordered list
// per instance. Sends that cannot be resolved (through an unbound or
// unknown rebec, or to a nonexistent message server) are dropped with a
// warning; the build itself never fails.
func BuildCallGraph(model *rebeca.Model) (*CallGraph, []error) {
	b := &callGraphBuilder{model: model, graph: newCallGraph(model)}

	templates := make(map[string][]*sendTemplate)
	for _, cls := range model.Classes() {
		if _, ok := templates[cls.Name()]; ok {
			continue
		}
		templates[cls.Name()] = b.collectSendTemplates(cls)
	}

	seen := make(map[string]bool)
	for _, inst := range model.Instances() {
		if seen[inst.Name()] {
			continue
		}
		seen[inst.Name()] = true
		for _, tmpl := range templates[inst.ClassName()] {
			b.addSiteForInstance(inst, tmpl)
		}
	}

	return b.graph, b.warnings
}

func (b *callGraphBuilder) collectSendTemplates(cls *rebeca.ReactiveClass) []*sendTemplate {
	var templates []*sendTemplate
	collect := func(handler string, body *rebeca.BlockStmt) {
		if body == nil {
			return
		}
		rebeca.WalkStmts(body, func(stmt rebeca.Stmt) {
			exprStmt, ok := stmt.(*rebeca.ExprStmt)
			if !ok {
				return
			}
			if tmpl := b.sendTemplateForStmt(cls, handler, exprStmt); tmpl != nil {
				templates = append(templates, tmpl)
			}
		})
	}
	if ctor := cls.Constructor(); ctor != nil {
		collect("", ctor.Body())
	}
	for _, srv := range cls.MsgSrvs() {
		collect(srv.Name(), srv.Body())
	}
	for _, m := range cls.Methods() {
		collect(m.Name(), m.Body())
	}
	return templates
}

// sendTemplateForStmt recognizes self.msg(...) and knownField.msg(...)
// statements. Plain calls and self calls of synchronous methods are not
// message sends and are skipped without a warning; any other receiver
// shape is skipped with one.
func (b *callGraphBuilder) sendTemplateForStmt(cls *rebeca.ReactiveClass, handler string, stmt *rebeca.ExprStmt) *sendTemplate {
	call, ok := stmt.Expr().(*rebeca.CallExpr)
	if !ok {
		return nil
	}
	dot, ok := call.Callee().(*rebeca.DotExpr)
	if !ok {
		return nil
	}
	recv, ok := dot.Recv().(*rebeca.Ident)
	if !ok {
		b.addWarning(fmt.Errorf("%s: send through %s is neither self nor a known rebec of %s, skipping",
			stmt.Pos(), dot.Recv(), cls.Name()))
		return nil
	}

	tmpl := &sendTemplate{
		handler:  handler,
		message:  dot.Member(),
		args:     call.Args(),
		delay:    stmt.After(),
		deadline: stmt.Deadline(),
		pos:      stmt.Pos(),
	}

	if recv.Name() == "self" {
		if cls.MethodNamed(tmpl.message) != nil {
			return nil
		}
		if cls.MsgSrvNamed(tmpl.message) == nil {
			b.addWarning(fmt.Errorf("%s: reactiveclass %s has no message server %s, skipping self send",
				stmt.Pos(), cls.Name(), tmpl.message))
			return nil
		}
		tmpl.internal = true
		return tmpl
	}

	idx := cls.KnownRebecIndex(recv.Name())
	if idx < 0 {
		b.addWarning(fmt.Errorf("%s: send through %s is neither self nor a known rebec of %s, skipping",
			stmt.Pos(), recv.Name(), cls.Name()))
		return nil
	}
	tmpl.field = recv.Name()
	tmpl.fieldIdx = idx
	return tmpl
}

func (b *callGraphBuilder) addSiteForInstance(inst *rebeca.InstanceDecl, tmpl *sendTemplate) {
	site := &CallSite{
		caller:        inst,
		callerHandler: tmpl.handler,
		message:       tmpl.message,
		args:          tmpl.args,
		internal:      tmpl.internal,
		delay:         tmpl.delay,
		deadline:      tmpl.deadline,
		pos:           tmpl.pos,
	}
	if tmpl.internal {
		site.calleeClass = inst.ClassName()
		b.graph.addSite(site)
		return
	}

	bindings := inst.Bindings()
	if tmpl.fieldIdx >= len(bindings) {
		b.addWarning(fmt.Errorf("instance %s has no binding for known rebec %s, dropping send of %s",
			inst.Name(), tmpl.field, tmpl.message))
		return
	}
	target := b.model.InstanceNamed(bindings[tmpl.fieldIdx])
	if target == nil {
		b.addWarning(fmt.Errorf("instance %s binds %s to unknown instance %s, dropping send of %s",
			inst.Name(), tmpl.field, bindings[tmpl.fieldIdx], tmpl.message))
		return
	}
	targetCls := b.model.ClassNamed(target.ClassName())
	if targetCls == nil {
		b.addWarning(fmt.Errorf("instance %s sends %s to %s of undeclared reactiveclass %s, dropping",
			inst.Name(), tmpl.message, target.Name(), target.ClassName()))
		return
	}
	if targetCls.MsgSrvNamed(tmpl.message) == nil {
		b.addWarning(fmt.Errorf("reactiveclass %s has no message server %s, dropping send from %s",
			targetCls.Name(), tmpl.message, inst.Name()))
		return
	}
	site.callee = target
	site.calleeClass = target.ClassName()
	b.graph.addSite(site)
}
