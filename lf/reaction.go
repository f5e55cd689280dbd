package lf

import (
	"strings"
)

// Reaction represents a reaction of a reactor: a set of triggers, a set
// of effects the reaction may write to, and a C++ body.
type Reaction struct {
	triggers []string
	effects  []string
	body     []string

	triggerSet map[string]bool
	effectSet  map[string]bool
}

func newReaction() *Reaction {
	reaction := new(Reaction)
	reaction.triggerSet = make(map[string]bool)
	reaction.effectSet = make(map[string]bool)
	return reaction
}

// Triggers returns all triggers of the reaction, in the order they were
// added.
func (reaction *Reaction) Triggers() []string {
	return reaction.triggers
}

// AddTrigger adds a trigger (a port, action, or the builtin startup
// event) to the reaction. Adding a trigger twice has no effect.
func (reaction *Reaction) AddTrigger(trigger string) {
	if reaction.triggerSet[trigger] {
		return
	}
	reaction.triggers = append(reaction.triggers, trigger)
	reaction.triggerSet[trigger] = true
}

// Effects returns all effects of the reaction, in the order they were
// added.
func (reaction *Reaction) Effects() []string {
	return reaction.effects
}

// AddEffect adds an effect (a port or action the body may write to) to
// the reaction. Adding an effect twice has no effect.
func (reaction *Reaction) AddEffect(effect string) {
	if reaction.effectSet[effect] {
		return
	}
	reaction.effects = append(reaction.effects, effect)
	reaction.effectSet[effect] = true
}

// Body returns all body lines of the reaction, in the order they were
// added.
func (reaction *Reaction) Body() []string {
	return reaction.body
}

// AddBodyLine adds a line of C++ code to the reaction body. The line is
// indented when the reaction is exported.
func (reaction *Reaction) AddBodyLine(line string) {
	reaction.body = append(reaction.body, line)
}

// AsLF returns the textual representation of the reaction inside its
// reactor.
func (reaction *Reaction) AsLF() string {
	str := "    reaction(" + strings.Join(reaction.triggers, ", ") + ")"
	if len(reaction.effects) > 0 {
		str += " -> " + strings.Join(reaction.effects, ", ")
	}
	str += " {=\n"
	for _, line := range reaction.body {
		if line == "" {
			str += "\n"
			continue
		}
		str += "        " + line + "\n"
	}
	str += "    =}\n"
	return str
}
