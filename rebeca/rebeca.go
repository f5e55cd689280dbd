// Package rebeca defines the in-memory representation of a Timed Rebeca
// model: reactive classes with their state variables, known rebecs and
// message servers, and the main block instantiating them. The builder
// package produces these structures; all later phases only read them.
package rebeca

import (
	"fmt"
	"strings"
)

// Pos is a position in the source text, 1-based line and column.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Node is embedded by all model entities that correspond to source text.
type Node struct {
	pos Pos
}

// SetPos sets the source position of the node.
func (n *Node) SetPos(pos Pos) {
	n.pos = pos
}

// Pos returns the source position of the node.
func (n *Node) Pos() Pos {
	return n.pos
}

// Model represents an entire Timed Rebeca model: the reactive class
// declarations and the main block instances, both in declaration order.
type Model struct {
	name      string
	classes   []*ReactiveClass
	instances []*InstanceDecl
}

// NewModel creates a new empty model with the given name (usually the
// source file base name).
func NewModel(name string) *Model {
	m := new(Model)
	m.name = name
	return m
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// Classes returns all reactive classes in declaration order.
func (m *Model) Classes() []*ReactiveClass {
	return m.classes
}

// AddClass appends a reactive class to the model.
func (m *Model) AddClass(c *ReactiveClass) {
	m.classes = append(m.classes, c)
}

// ClassNamed returns the reactive class with the given name, or nil.
func (m *Model) ClassNamed(name string) *ReactiveClass {
	for _, c := range m.classes {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Instances returns all declared instances in declaration order.
func (m *Model) Instances() []*InstanceDecl {
	return m.instances
}

// AddInstance appends an instance declaration to the model.
func (m *Model) AddInstance(d *InstanceDecl) {
	m.instances = append(m.instances, d)
}

// InstanceNamed returns the declared instance with the given name, or nil.
func (m *Model) InstanceNamed(name string) *InstanceDecl {
	for _, d := range m.instances {
		if d.Name() == name {
			return d
		}
	}
	return nil
}

// InstancesOf returns all declared instances of the given class, in
// declaration order.
func (m *Model) InstancesOf(className string) []*InstanceDecl {
	var insts []*InstanceDecl
	for _, d := range m.instances {
		if d.ClassName() == className {
			insts = append(insts, d)
		}
	}
	return insts
}

func (m *Model) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "model %s {\n", m.name)
	for _, c := range m.classes {
		b.WriteString("  " + strings.ReplaceAll(c.String(), "\n", "\n  ") + "\n")
	}
	for _, d := range m.instances {
		b.WriteString("  " + d.String() + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// Field is a named, typed declaration: a state variable, a known rebec
// (Type holds the acquaintance's class name), or a formal parameter.
type Field struct {
	Node
	name string
	typ  string
}

// NewField creates a new field with the given name and type name.
func NewField(name, typ string, pos Pos) *Field {
	f := new(Field)
	f.name = name
	f.typ = typ
	f.SetPos(pos)
	return f
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Type returns the field's declared type name.
func (f *Field) Type() string {
	return f.typ
}

func (f *Field) String() string {
	return f.typ + " " + f.name
}

// ReactiveClass represents one reactive class declaration. Known rebec
// order is significant: instantiation bindings match it positionally.
type ReactiveClass struct {
	Node
	name        string
	queueLen    int
	knownRebecs []*Field
	stateVars   []*Field
	constructor *MsgSrv
	msgSrvs     []*MsgSrv
	methods     []*MsgSrv
}

// NewReactiveClass creates a new reactive class with the given name and
// declared queue length (0 when the source omitted it).
func NewReactiveClass(name string, queueLen int, pos Pos) *ReactiveClass {
	c := new(ReactiveClass)
	c.name = name
	c.queueLen = queueLen
	c.SetPos(pos)
	return c
}

// Name returns the class name.
func (c *ReactiveClass) Name() string {
	return c.name
}

// QueueLen returns the declared message queue length, 0 if omitted.
func (c *ReactiveClass) QueueLen() int {
	return c.queueLen
}

// KnownRebecs returns the known rebec fields in declaration order.
func (c *ReactiveClass) KnownRebecs() []*Field {
	return c.knownRebecs
}

// AddKnownRebec appends a known rebec field.
func (c *ReactiveClass) AddKnownRebec(f *Field) {
	c.knownRebecs = append(c.knownRebecs, f)
}

// KnownRebecIndex returns the declaration position of the known rebec
// with the given name, or -1.
func (c *ReactiveClass) KnownRebecIndex(name string) int {
	for i, f := range c.knownRebecs {
		if f.Name() == name {
			return i
		}
	}
	return -1
}

// StateVars returns the state variable fields in declaration order.
func (c *ReactiveClass) StateVars() []*Field {
	return c.stateVars
}

// AddStateVar appends a state variable field.
func (c *ReactiveClass) AddStateVar(f *Field) {
	c.stateVars = append(c.stateVars, f)
}

// StateVarNamed returns the state variable with the given name, or nil.
func (c *ReactiveClass) StateVarNamed(name string) *Field {
	for _, f := range c.stateVars {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Constructor returns the class constructor, or nil if the class has none.
func (c *ReactiveClass) Constructor() *MsgSrv {
	return c.constructor
}

// SetConstructor sets the class constructor.
func (c *ReactiveClass) SetConstructor(m *MsgSrv) {
	c.constructor = m
}

// MsgSrvs returns the message servers in declaration order.
func (c *ReactiveClass) MsgSrvs() []*MsgSrv {
	return c.msgSrvs
}

// AddMsgSrv appends a message server.
func (c *ReactiveClass) AddMsgSrv(m *MsgSrv) {
	c.msgSrvs = append(c.msgSrvs, m)
}

// MsgSrvNamed returns the message server with the given name, or nil.
func (c *ReactiveClass) MsgSrvNamed(name string) *MsgSrv {
	for _, m := range c.msgSrvs {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

// Methods returns the synchronous methods in declaration order.
func (c *ReactiveClass) Methods() []*MsgSrv {
	return c.methods
}

// AddMethod appends a synchronous method.
func (c *ReactiveClass) AddMethod(m *MsgSrv) {
	c.methods = append(c.methods, m)
}

// MethodNamed returns the synchronous method with the given name, or
// nil.
func (c *ReactiveClass) MethodNamed(name string) *MsgSrv {
	for _, m := range c.methods {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

func (c *ReactiveClass) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "reactiveclass %s {\n", c.name)
	for _, f := range c.knownRebecs {
		b.WriteString("  known " + f.String() + ";\n")
	}
	for _, f := range c.stateVars {
		b.WriteString("  state " + f.String() + ";\n")
	}
	if c.constructor != nil {
		b.WriteString("  " + strings.ReplaceAll(c.constructor.String(), "\n", "\n  ") + "\n")
	}
	for _, m := range c.msgSrvs {
		b.WriteString("  " + strings.ReplaceAll(m.String(), "\n", "\n  ") + "\n")
	}
	for _, m := range c.methods {
		b.WriteString("  " + strings.ReplaceAll(m.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// MsgSrv represents a message server, a constructor (name equals the
// class name), or a synchronous method (ReturnType non-empty).
type MsgSrv struct {
	Node
	name       string
	returnType string
	params     []*Field
	body       *BlockStmt
}

// NewMsgSrv creates a new message server with the given name. returnType
// is empty for message servers and constructors.
func NewMsgSrv(name, returnType string, pos Pos) *MsgSrv {
	m := new(MsgSrv)
	m.name = name
	m.returnType = returnType
	m.body = NewBlockStmt(pos)
	m.SetPos(pos)
	return m
}

// Name returns the message server name.
func (m *MsgSrv) Name() string {
	return m.name
}

// ReturnType returns the declared return type of a synchronous method,
// empty for message servers and constructors.
func (m *MsgSrv) ReturnType() string {
	return m.returnType
}

// Params returns the formal parameters in declaration order.
func (m *MsgSrv) Params() []*Field {
	return m.params
}

// AddParam appends a formal parameter.
func (m *MsgSrv) AddParam(f *Field) {
	m.params = append(m.params, f)
}

// ParamNamed returns the formal parameter with the given name, or nil.
func (m *MsgSrv) ParamNamed(name string) *Field {
	for _, f := range m.params {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// ParamIndex returns the declaration position of the formal parameter
// with the given name, or -1.
func (m *MsgSrv) ParamIndex(name string) int {
	for i, f := range m.params {
		if f.Name() == name {
			return i
		}
	}
	return -1
}

// Body returns the message server body.
func (m *MsgSrv) Body() *BlockStmt {
	return m.body
}

// SetBody replaces the message server body.
func (m *MsgSrv) SetBody(b *BlockStmt) {
	m.body = b
}

func (m *MsgSrv) String() string {
	var b strings.Builder
	b.WriteString("msgsrv " + m.name + "(")
	for i, p := range m.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(") ")
	b.WriteString(m.body.String())
	return b.String()
}

// InstanceDecl represents one rebec instantiation in the main block:
// its name, class, positional known rebec bindings, and constructor
// argument expressions.
type InstanceDecl struct {
	Node
	name      string
	className string
	bindings  []string
	args      []Expr
}

// NewInstanceDecl creates a new instance declaration.
func NewInstanceDecl(name, className string, pos Pos) *InstanceDecl {
	d := new(InstanceDecl)
	d.name = name
	d.className = className
	d.SetPos(pos)
	return d
}

// Name returns the instance name.
func (d *InstanceDecl) Name() string {
	return d.name
}

// ClassName returns the name of the instantiated class.
func (d *InstanceDecl) ClassName() string {
	return d.className
}

// Bindings returns the known rebec bindings, positionally matching the
// class's known rebec declaration order.
func (d *InstanceDecl) Bindings() []string {
	return d.bindings
}

// AddBinding appends a known rebec binding.
func (d *InstanceDecl) AddBinding(instName string) {
	d.bindings = append(d.bindings, instName)
}

// Args returns the constructor argument expressions in order.
func (d *InstanceDecl) Args() []Expr {
	return d.args
}

// AddArg appends a constructor argument expression.
func (d *InstanceDecl) AddArg(e Expr) {
	d.args = append(d.args, e)
}

func (d *InstanceDecl) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s(", d.className, d.name)
	for i, bind := range d.bindings {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(bind)
	}
	b.WriteString("):(")
	for i, a := range d.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString(");")
	return b.String()
}
