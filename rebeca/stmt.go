package rebeca

import (
	"fmt"
	"strings"
)

// Stmt is the interface describing all statements.
type Stmt interface {
	fmt.Stringer

	Pos() Pos

	// stmtNode ensures only statement types conform to the Stmt interface.
	stmtNode()
}

func (s *BlockStmt) stmtNode()     {}
func (s *IfStmt) stmtNode()        {}
func (s *WhileStmt) stmtNode()     {}
func (s *ExprStmt) stmtNode()      {}
func (s *AssignStmt) stmtNode()    {}
func (s *LocalDeclStmt) stmtNode() {}
func (s *ReturnStmt) stmtNode()    {}

// BlockStmt represents a braced statement sequence.
type BlockStmt struct {
	Node
	stmts []Stmt
}

// NewBlockStmt creates a new empty block.
func NewBlockStmt(pos Pos) *BlockStmt {
	s := new(BlockStmt)
	s.SetPos(pos)
	return s
}

// Stmts returns the statements inside the block.
func (s *BlockStmt) Stmts() []Stmt {
	return s.stmts
}

// AddStmt appends the given statement at the end of the block.
func (s *BlockStmt) AddStmt(stmt Stmt) {
	s.stmts = append(s.stmts, stmt)
}

func (s *BlockStmt) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, stmt := range s.stmts {
		b.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// IfStmt represents a conditional with an optional else branch.
type IfStmt struct {
	Node
	cond Expr
	then Stmt
	els  Stmt
}

// NewIfStmt creates a new conditional. els may be nil.
func NewIfStmt(cond Expr, then, els Stmt, pos Pos) *IfStmt {
	s := new(IfStmt)
	s.cond = cond
	s.then = then
	s.els = els
	s.SetPos(pos)
	return s
}

// Cond returns the condition expression.
func (s *IfStmt) Cond() Expr {
	return s.cond
}

// Then returns the taken branch.
func (s *IfStmt) Then() Stmt {
	return s.then
}

// Else returns the else branch, or nil.
func (s *IfStmt) Else() Stmt {
	return s.els
}

func (s *IfStmt) String() string {
	str := "if (" + s.cond.String() + ") " + s.then.String()
	if s.els != nil {
		str += " else " + s.els.String()
	}
	return str
}

// WhileStmt represents a pre-test loop.
type WhileStmt struct {
	Node
	cond Expr
	body Stmt
}

// NewWhileStmt creates a new pre-test loop.
func NewWhileStmt(cond Expr, body Stmt, pos Pos) *WhileStmt {
	s := new(WhileStmt)
	s.cond = cond
	s.body = body
	s.SetPos(pos)
	return s
}

// Cond returns the loop condition.
func (s *WhileStmt) Cond() Expr {
	return s.cond
}

// Body returns the loop body.
func (s *WhileStmt) Body() Stmt {
	return s.body
}

func (s *WhileStmt) String() string {
	return "while (" + s.cond.String() + ") " + s.body.String()
}

// ExprStmt represents a plain expression statement, usually a message
// send, optionally carrying Timed Rebeca after/deadline clauses.
type ExprStmt struct {
	Node
	expr     Expr
	after    Expr
	deadline Expr
}

// NewExprStmt creates a new expression statement.
func NewExprStmt(expr Expr, pos Pos) *ExprStmt {
	s := new(ExprStmt)
	s.expr = expr
	s.SetPos(pos)
	return s
}

// Expr returns the wrapped expression.
func (s *ExprStmt) Expr() Expr {
	return s.expr
}

// After returns the after-clause delay expression, or nil.
func (s *ExprStmt) After() Expr {
	return s.after
}

// SetAfter attaches an after-clause delay expression.
func (s *ExprStmt) SetAfter(e Expr) {
	s.after = e
}

// Deadline returns the deadline-clause expression, or nil.
func (s *ExprStmt) Deadline() Expr {
	return s.deadline
}

// SetDeadline attaches a deadline-clause expression.
func (s *ExprStmt) SetDeadline(e Expr) {
	s.deadline = e
}

func (s *ExprStmt) String() string {
	str := s.expr.String()
	if s.after != nil {
		str += " after(" + s.after.String() + ")"
	}
	if s.deadline != nil {
		str += " deadline(" + s.deadline.String() + ")"
	}
	return str + ";"
}

// AssignStmt represents an assignment statement.
type AssignStmt struct {
	Node
	lhs Expr
	rhs Expr
}

// NewAssignStmt creates a new assignment statement.
func NewAssignStmt(lhs, rhs Expr, pos Pos) *AssignStmt {
	s := new(AssignStmt)
	s.lhs = lhs
	s.rhs = rhs
	s.SetPos(pos)
	return s
}

// Lhs returns the assigned-to expression.
func (s *AssignStmt) Lhs() Expr {
	return s.lhs
}

// Rhs returns the assigned value expression.
func (s *AssignStmt) Rhs() Expr {
	return s.rhs
}

func (s *AssignStmt) String() string {
	return s.lhs.String() + " = " + s.rhs.String() + ";"
}

// LocalDeclStmt represents a local variable declaration with an
// optional initializer.
type LocalDeclStmt struct {
	Node
	typ  string
	name string
	init Expr
}

// NewLocalDeclStmt creates a new local variable declaration. init may be
// nil.
func NewLocalDeclStmt(typ, name string, init Expr, pos Pos) *LocalDeclStmt {
	s := new(LocalDeclStmt)
	s.typ = typ
	s.name = name
	s.init = init
	s.SetPos(pos)
	return s
}

// Type returns the declared type name.
func (s *LocalDeclStmt) Type() string {
	return s.typ
}

// Name returns the declared variable name.
func (s *LocalDeclStmt) Name() string {
	return s.name
}

// Init returns the initializer expression, or nil.
func (s *LocalDeclStmt) Init() Expr {
	return s.init
}

func (s *LocalDeclStmt) String() string {
	str := s.typ + " " + s.name
	if s.init != nil {
		str += " = " + s.init.String()
	}
	return str + ";"
}

// ReturnStmt represents a return from a synchronous method.
type ReturnStmt struct {
	Node
	result Expr
}

// NewReturnStmt creates a new return statement. result may be nil.
func NewReturnStmt(result Expr, pos Pos) *ReturnStmt {
	s := new(ReturnStmt)
	s.result = result
	s.SetPos(pos)
	return s
}

// Result returns the returned expression, or nil.
func (s *ReturnStmt) Result() Expr {
	return s.result
}

func (s *ReturnStmt) String() string {
	if s.result == nil {
		return "return;"
	}
	return "return " + s.result.String() + ";"
}
