package rebeca

import (
	"fmt"
	"strings"
)

// Expr is the interface describing all expressions. String renders the
// expression back in source syntax; delay clauses are captured verbatim
// through it.
type Expr interface {
	fmt.Stringer

	Pos() Pos

	// exprNode ensures only expression types conform to the Expr interface.
	exprNode()
}

func (e *Ident) exprNode()      {}
func (e *IntLit) exprNode()     {}
func (e *FloatLit) exprNode()   {}
func (e *BoolLit) exprNode()    {}
func (e *StringLit) exprNode()  {}
func (e *UnaryExpr) exprNode()  {}
func (e *BinaryExpr) exprNode() {}
func (e *CallExpr) exprNode()   {}
func (e *DotExpr) exprNode()    {}
func (e *ParenExpr) exprNode()  {}

// Ident represents an identifier reference.
type Ident struct {
	Node
	name string
}

// NewIdent creates a new identifier reference.
func NewIdent(name string, pos Pos) *Ident {
	e := new(Ident)
	e.name = name
	e.SetPos(pos)
	return e
}

// Name returns the referenced name.
func (e *Ident) Name() string {
	return e.name
}

func (e *Ident) String() string {
	return e.name
}

// IntLit represents an integer literal.
type IntLit struct {
	Node
	value int64
}

// NewIntLit creates a new integer literal.
func NewIntLit(value int64, pos Pos) *IntLit {
	e := new(IntLit)
	e.value = value
	e.SetPos(pos)
	return e
}

// Value returns the literal value.
func (e *IntLit) Value() int64 {
	return e.value
}

func (e *IntLit) String() string {
	return fmt.Sprintf("%d", e.value)
}

// FloatLit represents a floating point literal.
type FloatLit struct {
	Node
	text string
}

// NewFloatLit creates a new floating point literal carrying its source
// spelling.
func NewFloatLit(text string, pos Pos) *FloatLit {
	e := new(FloatLit)
	e.text = text
	e.SetPos(pos)
	return e
}

// Text returns the source spelling of the literal.
func (e *FloatLit) Text() string {
	return e.text
}

func (e *FloatLit) String() string {
	return e.text
}

// BoolLit represents a boolean literal.
type BoolLit struct {
	Node
	value bool
}

// NewBoolLit creates a new boolean literal.
func NewBoolLit(value bool, pos Pos) *BoolLit {
	e := new(BoolLit)
	e.value = value
	e.SetPos(pos)
	return e
}

// Value returns the literal value.
func (e *BoolLit) Value() bool {
	return e.value
}

func (e *BoolLit) String() string {
	if e.value {
		return "true"
	}
	return "false"
}

// StringLit represents a string literal.
type StringLit struct {
	Node
	value string
}

// NewStringLit creates a new string literal holding the decoded value.
func NewStringLit(value string, pos Pos) *StringLit {
	e := new(StringLit)
	e.value = value
	e.SetPos(pos)
	return e
}

// Value returns the decoded string value.
func (e *StringLit) Value() string {
	return e.value
}

func (e *StringLit) String() string {
	return fmt.Sprintf("%q", e.value)
}

// UnaryExpr represents a prefix operator application.
type UnaryExpr struct {
	Node
	op string
	x  Expr
}

// NewUnaryExpr creates a new unary expression.
func NewUnaryExpr(op string, x Expr, pos Pos) *UnaryExpr {
	e := new(UnaryExpr)
	e.op = op
	e.x = x
	e.SetPos(pos)
	return e
}

// Op returns the operator text.
func (e *UnaryExpr) Op() string {
	return e.op
}

// X returns the operand.
func (e *UnaryExpr) X() Expr {
	return e.x
}

func (e *UnaryExpr) String() string {
	return e.op + e.x.String()
}

// BinaryExpr represents an infix operator application.
type BinaryExpr struct {
	Node
	op   string
	x, y Expr
}

// NewBinaryExpr creates a new binary expression.
func NewBinaryExpr(op string, x, y Expr, pos Pos) *BinaryExpr {
	e := new(BinaryExpr)
	e.op = op
	e.x = x
	e.y = y
	e.SetPos(pos)
	return e
}

// Op returns the operator text.
func (e *BinaryExpr) Op() string {
	return e.op
}

// X returns the left operand.
func (e *BinaryExpr) X() Expr {
	return e.x
}

// Y returns the right operand.
func (e *BinaryExpr) Y() Expr {
	return e.y
}

func (e *BinaryExpr) String() string {
	return e.x.String() + " " + e.op + " " + e.y.String()
}

// CallExpr represents a call: a message send through self or a known
// rebec (callee is a DotExpr), or a plain call (callee is an Ident).
type CallExpr struct {
	Node
	callee Expr
	args   []Expr
}

// NewCallExpr creates a new call expression.
func NewCallExpr(callee Expr, pos Pos) *CallExpr {
	e := new(CallExpr)
	e.callee = callee
	e.SetPos(pos)
	return e
}

// Callee returns the called expression.
func (e *CallExpr) Callee() Expr {
	return e.callee
}

// Args returns the argument expressions in order.
func (e *CallExpr) Args() []Expr {
	return e.args
}

// AddArg appends an argument expression.
func (e *CallExpr) AddArg(arg Expr) {
	e.args = append(e.args, arg)
}

func (e *CallExpr) String() string {
	var b strings.Builder
	b.WriteString(e.callee.String())
	b.WriteString("(")
	for i, a := range e.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString(")")
	return b.String()
}

// DotExpr represents a member access, receiver.member.
type DotExpr struct {
	Node
	recv   Expr
	member string
}

// NewDotExpr creates a new member access expression.
func NewDotExpr(recv Expr, member string, pos Pos) *DotExpr {
	e := new(DotExpr)
	e.recv = recv
	e.member = member
	e.SetPos(pos)
	return e
}

// Recv returns the receiver expression.
func (e *DotExpr) Recv() Expr {
	return e.recv
}

// Member returns the accessed member name.
func (e *DotExpr) Member() string {
	return e.member
}

func (e *DotExpr) String() string {
	return e.recv.String() + "." + e.member
}

// ParenExpr represents a parenthesized expression.
type ParenExpr struct {
	Node
	x Expr
}

// NewParenExpr creates a new parenthesized expression.
func NewParenExpr(x Expr, pos Pos) *ParenExpr {
	e := new(ParenExpr)
	e.x = x
	e.SetPos(pos)
	return e
}

// X returns the inner expression.
func (e *ParenExpr) X() Expr {
	return e.x
}

func (e *ParenExpr) String() string {
	return "(" + e.x.String() + ")"
}
