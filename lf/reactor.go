package lf

import (
	"strings"
)

// Reactor represents a Lingua Franca reactor definition: parameters,
// state variables, input and output ports, logical actions, and
// reactions. Parameters, states, ports, and actions share a single name
// space inside the reactor.
type Reactor struct {
	name string

	parameters []*Parameter
	states     []*StateVar
	inputs     []*Port
	outputs    []*Port
	actions    []*Action
	reactions  []*Reaction

	memberNames map[string]bool
}

func newReactor(name string) *Reactor {
	r := new(Reactor)
	r.name = name
	r.memberNames = make(map[string]bool)
	return r
}

// Name returns the name of the reactor.
func (r *Reactor) Name() string {
	return r.name
}

func (r *Reactor) claimMemberName(name string) {
	if r.memberNames[name] {
		panic("naming collision when adding reactor member")
	}
	r.memberNames[name] = true
}

// Parameters returns all parameters of the reactor, in the order they
// were added.
func (r *Reactor) Parameters() []*Parameter {
	return r.parameters
}

// AddParameter adds a parameter with the given name, type, and default
// value to the reactor and returns the new parameter.
func (r *Reactor) AddParameter(name, typ, dflt string) *Parameter {
	r.claimMemberName(name)
	param := &Parameter{name: name, typ: typ, dflt: dflt}
	r.parameters = append(r.parameters, param)
	return param
}

// States returns all state variables of the reactor, in the order they
// were added.
func (r *Reactor) States() []*StateVar {
	return r.states
}

// AddState adds a state variable with the given name, type, and initial
// value to the reactor and returns the new state variable.
func (r *Reactor) AddState(name, typ, init string) *StateVar {
	r.claimMemberName(name)
	state := &StateVar{name: name, typ: typ, init: init}
	r.states = append(r.states, state)
	return state
}

// Inputs returns all input ports of the reactor, in the order they were
// added.
func (r *Reactor) Inputs() []*Port {
	return r.inputs
}

// InputNamed returns the input port with the given name, or nil.
func (r *Reactor) InputNamed(name string) *Port {
	for _, port := range r.inputs {
		if port.Name() == name {
			return port
		}
	}
	return nil
}

// AddInput adds an input port with the given name and payload type to
// the reactor and returns the new port.
func (r *Reactor) AddInput(name, typ string) *Port {
	r.claimMemberName(name)
	port := &Port{name: name, typ: typ, input: true}
	r.inputs = append(r.inputs, port)
	return port
}

// Outputs returns all output ports of the reactor, in the order they
// were added.
func (r *Reactor) Outputs() []*Port {
	return r.outputs
}

// OutputNamed returns the output port with the given name, or nil.
func (r *Reactor) OutputNamed(name string) *Port {
	for _, port := range r.outputs {
		if port.Name() == name {
			return port
		}
	}
	return nil
}

// AddOutput adds an output port with the given name and payload type to
// the reactor and returns the new port.
func (r *Reactor) AddOutput(name, typ string) *Port {
	r.claimMemberName(name)
	port := &Port{name: name, typ: typ, input: false}
	r.outputs = append(r.outputs, port)
	return port
}

// Actions returns all logical actions of the reactor, in the order they
// were added.
func (r *Reactor) Actions() []*Action {
	return r.actions
}

// AddAction adds a logical action with the given name to the reactor
// and returns the new action.
func (r *Reactor) AddAction(name string) *Action {
	r.claimMemberName(name)
	action := &Action{name: name}
	r.actions = append(r.actions, action)
	return action
}

// Reactions returns all reactions of the reactor, in the order they
// were added.
func (r *Reactor) Reactions() []*Reaction {
	return r.reactions
}

// AddReaction adds a new, empty reaction to the reactor and returns it.
func (r *Reactor) AddReaction() *Reaction {
	reaction := newReaction()
	r.reactions = append(r.reactions, reaction)
	return reaction
}

// AsLF returns the textual Lingua Franca representation of the reactor.
func (r *Reactor) AsLF() string {
	str := "reactor " + r.name
	if len(r.parameters) > 0 {
		params := make([]string, len(r.parameters))
		for i, param := range r.parameters {
			params[i] = param.AsLF()
		}
		str += "(" + strings.Join(params, ", ") + ")"
	}
	str += " {\n"
	for _, state := range r.states {
		str += "    " + state.AsLF() + "\n"
	}
	for _, port := range r.inputs {
		str += "    " + port.AsLF() + "\n"
	}
	for _, port := range r.outputs {
		str += "    " + port.AsLF() + "\n"
	}
	for _, action := range r.actions {
		str += "    " + action.AsLF() + "\n"
	}
	for _, reaction := range r.reactions {
		str += reaction.AsLF()
	}
	str += "}\n"
	return str
}

// Parameter represents a reactor parameter with a default value.
type Parameter struct {
	name string
	typ  string
	dflt string
}

// Name returns the name of the parameter.
func (param *Parameter) Name() string {
	return param.name
}

// Type returns the type of the parameter.
func (param *Parameter) Type() string {
	return param.typ
}

// Default returns the default value of the parameter.
func (param *Parameter) Default() string {
	return param.dflt
}

// AsLF returns the textual representation of the parameter inside the
// reactor head.
func (param *Parameter) AsLF() string {
	return param.name + ": " + param.typ + "(" + param.dflt + ")"
}

// StateVar represents a reactor state variable with an initial value.
type StateVar struct {
	name string
	typ  string
	init string
}

// Name returns the name of the state variable.
func (state *StateVar) Name() string {
	return state.name
}

// Type returns the type of the state variable.
func (state *StateVar) Type() string {
	return state.typ
}

// Init returns the initial value of the state variable.
func (state *StateVar) Init() string {
	return state.init
}

// AsLF returns the textual representation of the state variable.
func (state *StateVar) AsLF() string {
	return "state " + state.name + ": " + state.typ + "(" + state.init + ");"
}

// Port represents an input or output port of a reactor.
type Port struct {
	name  string
	typ   string
	input bool
}

// Name returns the name of the port.
func (port *Port) Name() string {
	return port.name
}

// Type returns the payload type of the port.
func (port *Port) Type() string {
	return port.typ
}

// IsInput returns whether the port is an input port.
func (port *Port) IsInput() bool {
	return port.input
}

// AsLF returns the textual representation of the port.
func (port *Port) AsLF() string {
	if port.input {
		return "input " + port.name + ": " + port.typ + ";"
	}
	return "output " + port.name + ": " + port.typ + ";"
}

// Action represents a logical action of a reactor. Actions carry no
// payload.
type Action struct {
	name string
}

// Name returns the name of the action.
func (action *Action) Name() string {
	return action.name
}

// AsLF returns the textual representation of the action.
func (action *Action) AsLF() string {
	return "logical action " + action.name + ": void;"
}
