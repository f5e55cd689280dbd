package translator

import (
	"strconv"
)

// addComposition emits the main reactor: one instantiation per declared
// instance with arguments for the promoted constructor parameters, then
// one connection per external (message, target, source) triple.
func (t *translator) addComposition() {
	seen := make(map[string]bool)
	for _, inst := range t.model.Instances() {
		if seen[inst.Name()] {
			continue
		}
		seen[inst.Name()] = true
		cls := t.model.ClassNamed(inst.ClassName())
		if cls == nil {
			continue
		}
		instantiation := t.program.AddInstantiation(inst.Name(), inst.ClassName())
		for _, param := range t.profileOf(cls).Params() {
			if param.ArgIndex() >= len(inst.Args()) {
				continue
			}
			value := t.translateExpr(inst.Args()[param.ArgIndex()], newContext(cls, inst, nil, nil))
			instantiation.AddArgument(param.StateVar().Name(), value)
		}
	}

	for _, site := range t.graph.ExternalTriples() {
		source := site.Caller().Name()
		target := site.Callee().Name()
		conn := t.program.AddConnection(
			source, outputPortName(site.Message(), target, source),
			target, inputPortName(site.Message(), source, target))
		if delay, ok := site.DelayInt(); ok && delay > 0 {
			conn.SetDelay(strconv.FormatInt(delay, 10) + " " + t.config.TimeUnit)
		}
	}
}
