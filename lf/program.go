package lf

import (
	"strings"
)

// Program represents a complete Lingua Franca program: a target
// declaration, payload structs shared via the file preamble, reactor
// definitions, and a main reactor composing reactor instances and port
// connections.
type Program struct {
	target string

	structs     []*PayloadStruct
	structNames map[string]bool

	reactors     []*Reactor
	reactorNames map[string]bool

	instantiations []*Instantiation
	instanceNames  map[string]bool

	connections    []*Connection
	connectionKeys map[string]bool
}

// NewProgram creates a new program for the given target language.
func NewProgram(target string) *Program {
	p := new(Program)
	p.target = target
	p.structNames = make(map[string]bool)
	p.reactorNames = make(map[string]bool)
	p.instanceNames = make(map[string]bool)
	p.connectionKeys = make(map[string]bool)
	return p
}

// Target returns the target language of the program.
func (p *Program) Target() string {
	return p.target
}

// Structs returns all payload structs of the program, in the order they
// were added.
func (p *Program) Structs() []*PayloadStruct {
	return p.structs
}

// AddStruct adds a payload struct with the given name to the program
// preamble and returns the new struct.
func (p *Program) AddStruct(name string) *PayloadStruct {
	if p.structNames[name] {
		panic("naming collision when adding payload struct")
	}
	s := newPayloadStruct(name)
	p.structs = append(p.structs, s)
	p.structNames[name] = true
	return s
}

// Reactors returns all reactors of the program, in the order they were
// added.
func (p *Program) Reactors() []*Reactor {
	return p.reactors
}

// ReactorNamed returns the reactor with the given name, or nil.
func (p *Program) ReactorNamed(name string) *Reactor {
	for _, r := range p.reactors {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// AddReactor adds a reactor with the given name to the program and
// returns the new reactor.
func (p *Program) AddReactor(name string) *Reactor {
	if p.reactorNames[name] {
		panic("naming collision when adding reactor")
	}
	r := newReactor(name)
	p.reactors = append(p.reactors, r)
	p.reactorNames[name] = true
	return r
}

// Instantiations returns all reactor instantiations of the main
// reactor, in the order they were added.
func (p *Program) Instantiations() []*Instantiation {
	return p.instantiations
}

// AddInstantiation adds an instantiation of the named reactor to the
// main reactor and returns the new instantiation.
func (p *Program) AddInstantiation(name, reactorName string) *Instantiation {
	if p.instanceNames[name] {
		panic("naming collision when adding reactor instantiation")
	}
	if !p.reactorNames[reactorName] {
		panic("tried to instantiate non-existent reactor")
	}
	inst := newInstantiation(name, reactorName)
	p.instantiations = append(p.instantiations, inst)
	p.instanceNames[name] = true
	return inst
}

// Connections returns all port connections of the main reactor, in the
// order they were added.
func (p *Program) Connections() []*Connection {
	return p.connections
}

// AddConnection adds a connection from an output port of one reactor
// instance to an input port of another and returns the new connection.
func (p *Program) AddConnection(fromInstance, fromPort, toInstance, toPort string) *Connection {
	key := fromInstance + "." + fromPort + " -> " + toInstance + "." + toPort
	if p.connectionKeys[key] {
		panic("duplicate connection between ports")
	}
	if !p.instanceNames[fromInstance] || !p.instanceNames[toInstance] {
		panic("tried to connect non-existent reactor instance")
	}
	conn := newConnection(fromInstance, fromPort, toInstance, toPort)
	p.connections = append(p.connections, conn)
	p.connectionKeys[key] = true
	return conn
}

// AsLF returns the textual Lingua Franca representation of the program.
func (p *Program) AsLF() string {
	str := "target " + p.target + ";\n"
	if len(p.structs) > 0 {
		str += "\npublic preamble {=\n"
		for _, s := range p.structs {
			str += s.AsLF()
		}
		str += "=}\n"
	}
	for _, r := range p.reactors {
		str += "\n" + r.AsLF()
	}
	str += "\nmain reactor {\n"
	for _, inst := range p.instantiations {
		str += "    " + inst.AsLF() + "\n"
	}
	for _, conn := range p.connections {
		str += "    " + conn.AsLF() + "\n"
	}
	str += "}\n"
	return str
}

// PayloadStruct represents a C++ struct in the program preamble,
// carrying the arguments of a message between reactors.
type PayloadStruct struct {
	name   string
	fields []structField

	fieldNames map[string]bool
}

type structField struct {
	name string
	typ  string
}

func newPayloadStruct(name string) *PayloadStruct {
	s := new(PayloadStruct)
	s.name = name
	s.fieldNames = make(map[string]bool)
	return s
}

// Name returns the name of the payload struct.
func (s *PayloadStruct) Name() string {
	return s.name
}

// AddField adds a field with the given name and C++ type to the payload
// struct.
func (s *PayloadStruct) AddField(name, typ string) {
	if s.fieldNames[name] {
		panic("naming collision when adding struct field")
	}
	s.fields = append(s.fields, structField{name: name, typ: typ})
	s.fieldNames[name] = true
}

// AsLF returns the textual representation of the payload struct inside
// the program preamble.
func (s *PayloadStruct) AsLF() string {
	str := "    struct " + s.name + " {\n"
	for _, f := range s.fields {
		str += "        " + f.typ + " " + f.name + ";\n"
	}
	str += "    };\n"
	return str
}

// Instantiation represents an instantiation of a reactor inside the
// main reactor, with values for the reactor parameters.
type Instantiation struct {
	name        string
	reactorName string
	arguments   []instArgument
}

type instArgument struct {
	param string
	value string
}

func newInstantiation(name, reactorName string) *Instantiation {
	inst := new(Instantiation)
	inst.name = name
	inst.reactorName = reactorName
	return inst
}

// Name returns the instance name of the instantiation.
func (inst *Instantiation) Name() string {
	return inst.name
}

// ReactorName returns the name of the instantiated reactor.
func (inst *Instantiation) ReactorName() string {
	return inst.reactorName
}

// AddArgument adds a value for the named reactor parameter to the
// instantiation. Arguments are emitted in the order they were added.
func (inst *Instantiation) AddArgument(param, value string) {
	inst.arguments = append(inst.arguments, instArgument{param: param, value: value})
}

// AsLF returns the textual representation of the instantiation inside
// the main reactor.
func (inst *Instantiation) AsLF() string {
	args := make([]string, len(inst.arguments))
	for i, arg := range inst.arguments {
		args[i] = arg.param + " = " + arg.value
	}
	return inst.name + " = new " + inst.reactorName + "(" + strings.Join(args, ", ") + ");"
}

// Connection represents a connection from an output port of one reactor
// instance to an input port of another, with an optional logical delay.
type Connection struct {
	fromInstance string
	fromPort     string
	toInstance   string
	toPort       string
	delay        string
}

func newConnection(fromInstance, fromPort, toInstance, toPort string) *Connection {
	conn := new(Connection)
	conn.fromInstance = fromInstance
	conn.fromPort = fromPort
	conn.toInstance = toInstance
	conn.toPort = toPort
	return conn
}

// FromInstance returns the name of the sending reactor instance.
func (conn *Connection) FromInstance() string {
	return conn.fromInstance
}

// FromPort returns the name of the output port the connection starts at.
func (conn *Connection) FromPort() string {
	return conn.fromPort
}

// ToInstance returns the name of the receiving reactor instance.
func (conn *Connection) ToInstance() string {
	return conn.toInstance
}

// ToPort returns the name of the input port the connection ends at.
func (conn *Connection) ToPort() string {
	return conn.toPort
}

// Delay returns the logical delay of the connection, e.g. "1 sec", or
// the empty string if the connection is undelayed.
func (conn *Connection) Delay() string {
	return conn.delay
}

// SetDelay sets the logical delay of the connection, e.g. "1 sec". The
// empty string leaves the connection undelayed.
func (conn *Connection) SetDelay(delay string) {
	conn.delay = delay
}

// AsLF returns the textual representation of the connection inside the
// main reactor.
func (conn *Connection) AsLF() string {
	str := conn.fromInstance + "." + conn.fromPort + " -> " + conn.toInstance + "." + conn.toPort
	if conn.delay != "" {
		str += " after " + conn.delay
	}
	return str + ";"
}
