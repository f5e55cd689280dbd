package builder

import (
	"fmt"

	"github.com/sarmadiali98/ReLico-sub000/rebeca"
)

// binaryLevels orders binary operators from lowest to highest
// precedence. All levels are left associative.
var binaryLevels = [][]TokenType{
	{OR},
	{AND},
	{EQ, NEQ},
	{LT, LE, GT, GE},
	{PLUS, MINUS},
	{STAR, SLASH, PERCENT},
}

type parser struct {
	toks []Token
	pos  int
}

func parse(toks []Token, name string) (*rebeca.Model, error) {
	p := &parser{toks: toks}
	return p.parseModel(name)
}

func (p *parser) cur() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Type != EOF {
		p.pos++
	}
	return t
}

func (p *parser) at(tt TokenType) bool {
	return p.cur().Type == tt
}

func (p *parser) atSecond(tt TokenType) bool {
	if p.pos+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].Type == tt
}

func (p *parser) accept(tt TokenType) bool {
	if p.at(tt) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(tt TokenType, what string) (Token, error) {
	if p.at(tt) {
		return p.next(), nil
	}
	return Token{}, p.errorf(p.cur(), "expected %s, found %s", what, p.cur())
}

// errorf builds a ParseError at the given token. An error at the EOF
// token marks the input as incomplete rather than malformed.
func (p *parser) errorf(tok Token, format string, args ...interface{}) error {
	return &ParseError{
		Line:       tok.Line,
		Col:        tok.Col,
		Msg:        fmt.Sprintf(format, args...),
		Incomplete: tok.Type == EOF,
	}
}

func tokenPos(t Token) rebeca.Pos {
	return rebeca.Pos{Line: t.Line, Col: t.Col}
}

func (p *parser) parseModel(name string) (*rebeca.Model, error) {
	model := rebeca.NewModel(name)
	for !p.at(EOF) {
		switch {
		case p.at(REACTIVECLASS):
			cls, err := p.parseReactiveClass()
			if err != nil {
				return nil, err
			}
			model.AddClass(cls)
		case p.at(MAIN):
			if err := p.parseMain(model); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf(p.cur(), "expected 'reactiveclass' or 'main', found %s", p.cur())
		}
	}
	return model, nil
}

func (p *parser) parseReactiveClass() (*rebeca.ReactiveClass, error) {
	kw := p.next()
	nameTok, err := p.expect(IDENT, "a class name")
	if err != nil {
		return nil, err
	}
	queueLen := 0
	if p.accept(LPAREN) {
		szTok, err := p.expect(INT, "a queue length")
		if err != nil {
			return nil, err
		}
		queueLen = int(szTok.Literal.(int64))
		if _, err := p.expect(RPAREN, "')'"); err != nil {
			return nil, err
		}
	}
	cls := rebeca.NewReactiveClass(nameTok.Lexeme, queueLen, tokenPos(kw))
	if _, err := p.expect(LBRACE, "'{'"); err != nil {
		return nil, err
	}
	for p.at(KNOWNREBECS) || p.at(STATEVARS) {
		add := cls.AddStateVar
		if p.at(KNOWNREBECS) {
			add = cls.AddKnownRebec
		}
		if err := p.parseFieldSection(add); err != nil {
			return nil, err
		}
	}
	for !p.at(RBRACE) && !p.at(EOF) {
		if err := p.parseClassMember(cls); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return cls, nil
}

func (p *parser) parseFieldSection(add func(*rebeca.Field)) error {
	p.next()
	if _, err := p.expect(LBRACE, "'{'"); err != nil {
		return err
	}
	for !p.at(RBRACE) && !p.at(EOF) {
		typTok, err := p.expect(IDENT, "a type name")
		if err != nil {
			return err
		}
		for {
			nameTok, err := p.expect(IDENT, "a field name")
			if err != nil {
				return err
			}
			add(rebeca.NewField(nameTok.Lexeme, typTok.Lexeme, tokenPos(nameTok)))
			if !p.accept(COMMA) {
				break
			}
		}
		if _, err := p.expect(SEMICOLON, "';'"); err != nil {
			return err
		}
	}
	_, err := p.expect(RBRACE, "'}'")
	return err
}

func (p *parser) parseClassMember(cls *rebeca.ReactiveClass) error {
	if p.at(MSGSRV) {
		kw := p.next()
		nameTok, err := p.expect(IDENT, "a message server name")
		if err != nil {
			return err
		}
		srv := rebeca.NewMsgSrv(nameTok.Lexeme, "", tokenPos(kw))
		if err := p.parseSignatureAndBody(srv); err != nil {
			return err
		}
		cls.AddMsgSrv(srv)
		return nil
	}
	first, err := p.expect(IDENT, "'msgsrv', a constructor, or a method")
	if err != nil {
		return err
	}
	if first.Lexeme == cls.Name() && p.at(LPAREN) {
		if cls.Constructor() != nil {
			return p.errorf(first, "duplicate constructor for reactiveclass %s", cls.Name())
		}
		ctor := rebeca.NewMsgSrv(first.Lexeme, "", tokenPos(first))
		if err := p.parseSignatureAndBody(ctor); err != nil {
			return err
		}
		cls.SetConstructor(ctor)
		return nil
	}
	nameTok, err := p.expect(IDENT, "a method name")
	if err != nil {
		return err
	}
	m := rebeca.NewMsgSrv(nameTok.Lexeme, first.Lexeme, tokenPos(first))
	if err := p.parseSignatureAndBody(m); err != nil {
		return err
	}
	cls.AddMethod(m)
	return nil
}

func (p *parser) parseSignatureAndBody(m *rebeca.MsgSrv) error {
	if _, err := p.expect(LPAREN, "'('"); err != nil {
		return err
	}
	if !p.at(RPAREN) {
		for {
			typTok, err := p.expect(IDENT, "a parameter type")
			if err != nil {
				return err
			}
			nameTok, err := p.expect(IDENT, "a parameter name")
			if err != nil {
				return err
			}
			m.AddParam(rebeca.NewField(nameTok.Lexeme, typTok.Lexeme, tokenPos(nameTok)))
			if !p.accept(COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(RPAREN, "')'"); err != nil {
		return err
	}
	body, err := p.parseBlock()
	if err != nil {
		return err
	}
	m.SetBody(body)
	return nil
}

func (p *parser) parseBlock() (*rebeca.BlockStmt, error) {
	lb, err := p.expect(LBRACE, "'{'")
	if err != nil {
		return nil, err
	}
	blk := rebeca.NewBlockStmt(tokenPos(lb))
	for !p.at(RBRACE) && !p.at(EOF) {
		if p.accept(SEMICOLON) {
			continue
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		blk.AddStmt(stmt)
	}
	if _, err := p.expect(RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return blk, nil
}

func (p *parser) parseStmt() (rebeca.Stmt, error) {
	switch p.cur().Type {
	case LBRACE:
		return p.parseBlock()
	case IF:
		return p.parseIfStmt()
	case WHILE:
		return p.parseWhileStmt()
	case FOR:
		return p.parseForStmt()
	case RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseSimpleStmt(true)
	}
}

func (p *parser) parseIfStmt() (rebeca.Stmt, error) {
	kw := p.next()
	if _, err := p.expect(LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN, "')'"); err != nil {
		return nil, err
	}
	then, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	var els rebeca.Stmt
	if p.accept(ELSE) {
		els, err = p.parseStmt()
		if err != nil {
			return nil, err
		}
	}
	return rebeca.NewIfStmt(cond, then, els, tokenPos(kw)), nil
}

func (p *parser) parseWhileStmt() (rebeca.Stmt, error) {
	kw := p.next()
	if _, err := p.expect(LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return rebeca.NewWhileStmt(cond, body, tokenPos(kw)), nil
}

// parseForStmt desugars for loops into an init statement followed by a
// while loop whose body ends with the post statement.
func (p *parser) parseForStmt() (rebeca.Stmt, error) {
	kw := p.next()
	if _, err := p.expect(LPAREN, "'('"); err != nil {
		return nil, err
	}
	outer := rebeca.NewBlockStmt(tokenPos(kw))
	if !p.at(SEMICOLON) {
		init, err := p.parseSimpleStmt(false)
		if err != nil {
			return nil, err
		}
		outer.AddStmt(init)
	}
	if _, err := p.expect(SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	var cond rebeca.Expr
	if p.at(SEMICOLON) {
		cond = rebeca.NewBoolLit(true, tokenPos(p.cur()))
	} else {
		var err error
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	var post rebeca.Stmt
	if !p.at(RPAREN) {
		var err error
		post, err = p.parseSimpleStmt(false)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	loopBody := rebeca.NewBlockStmt(tokenPos(kw))
	loopBody.AddStmt(body)
	if post != nil {
		loopBody.AddStmt(post)
	}
	outer.AddStmt(rebeca.NewWhileStmt(cond, loopBody, tokenPos(kw)))
	return outer, nil
}

func (p *parser) parseReturnStmt() (rebeca.Stmt, error) {
	kw := p.next()
	var result rebeca.Expr
	if !p.at(SEMICOLON) {
		var err error
		result, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	return rebeca.NewReturnStmt(result, tokenPos(kw)), nil
}

// parseSimpleStmt parses a local declaration, an assignment, or an
// expression statement. With terminated set the statement must end in a
// semicolon and an expression statement may carry after and deadline
// clauses; for loop headers parse with terminated unset.
func (p *parser) parseSimpleStmt(terminated bool) (rebeca.Stmt, error) {
	if p.at(IDENT) && p.atSecond(IDENT) {
		typTok := p.next()
		nameTok := p.next()
		var init rebeca.Expr
		if p.accept(ASSIGN) {
			var err error
			init, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		if terminated {
			if _, err := p.expect(SEMICOLON, "';'"); err != nil {
				return nil, err
			}
		}
		return rebeca.NewLocalDeclStmt(typTok.Lexeme, nameTok.Lexeme, init, tokenPos(typTok)), nil
	}

	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.at(ASSIGN) {
		eq := p.next()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		switch lhs.(type) {
		case *rebeca.Ident, *rebeca.DotExpr:
		default:
			return nil, p.errorf(eq, "cannot assign to %s", lhs)
		}
		if terminated {
			if _, err := p.expect(SEMICOLON, "';'"); err != nil {
				return nil, err
			}
		}
		return rebeca.NewAssignStmt(lhs, rhs, lhs.Pos()), nil
	}

	stmt := rebeca.NewExprStmt(lhs, lhs.Pos())
	if terminated {
		for p.at(AFTER) || p.at(DEADLINE) {
			kw := p.next()
			if _, err := p.expect(LPAREN, "'('"); err != nil {
				return nil, err
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(RPAREN, "')'"); err != nil {
				return nil, err
			}
			if kw.Type == AFTER {
				if stmt.After() != nil {
					return nil, p.errorf(kw, "duplicate after clause")
				}
				stmt.SetAfter(arg)
			} else {
				if stmt.Deadline() != nil {
					return nil, p.errorf(kw, "duplicate deadline clause")
				}
				stmt.SetDeadline(arg)
			}
		}
		if _, err := p.expect(SEMICOLON, "';'"); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *parser) parseMain(model *rebeca.Model) error {
	p.next()
	if _, err := p.expect(LBRACE, "'{'"); err != nil {
		return err
	}
	for !p.at(RBRACE) && !p.at(EOF) {
		classTok, err := p.expect(IDENT, "a class name")
		if err != nil {
			return err
		}
		nameTok, err := p.expect(IDENT, "an instance name")
		if err != nil {
			return err
		}
		decl := rebeca.NewInstanceDecl(nameTok.Lexeme, classTok.Lexeme, tokenPos(classTok))
		if _, err := p.expect(LPAREN, "'('"); err != nil {
			return err
		}
		if !p.at(RPAREN) {
			for {
				bindTok, err := p.expect(IDENT, "an instance name")
				if err != nil {
					return err
				}
				decl.AddBinding(bindTok.Lexeme)
				if !p.accept(COMMA) {
					break
				}
			}
		}
		if _, err := p.expect(RPAREN, "')'"); err != nil {
			return err
		}
		if _, err := p.expect(COLON, "':'"); err != nil {
			return err
		}
		if _, err := p.expect(LPAREN, "'('"); err != nil {
			return err
		}
		if !p.at(RPAREN) {
			for {
				arg, err := p.parseExpr()
				if err != nil {
					return err
				}
				decl.AddArg(arg)
				if !p.accept(COMMA) {
					break
				}
			}
		}
		if _, err := p.expect(RPAREN, "')'"); err != nil {
			return err
		}
		if _, err := p.expect(SEMICOLON, "';'"); err != nil {
			return err
		}
		model.AddInstance(decl)
	}
	_, err := p.expect(RBRACE, "'}'")
	return err
}

func (p *parser) parseExpr() (rebeca.Expr, error) {
	return p.parseBinaryExpr(0)
}

func (p *parser) parseBinaryExpr(level int) (rebeca.Expr, error) {
	if level >= len(binaryLevels) {
		return p.parseUnaryExpr()
	}
	x, err := p.parseBinaryExpr(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		matched := false
		for _, tt := range binaryLevels[level] {
			if p.at(tt) {
				opTok := p.next()
				y, err := p.parseBinaryExpr(level + 1)
				if err != nil {
					return nil, err
				}
				x = rebeca.NewBinaryExpr(opTok.Lexeme, x, y, x.Pos())
				matched = true
				break
			}
		}
		if !matched {
			return x, nil
		}
	}
}

func (p *parser) parseUnaryExpr() (rebeca.Expr, error) {
	if p.at(NOT) || p.at(MINUS) {
		opTok := p.next()
		x, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return rebeca.NewUnaryExpr(opTok.Lexeme, x, tokenPos(opTok)), nil
	}
	return p.parsePostfixExpr()
}

func (p *parser) parsePostfixExpr() (rebeca.Expr, error) {
	x, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at(DOT):
			dotTok := p.next()
			memberTok, err := p.expect(IDENT, "a member name")
			if err != nil {
				return nil, err
			}
			x = rebeca.NewDotExpr(x, memberTok.Lexeme, tokenPos(dotTok))
		case p.at(LPAREN):
			p.next()
			call := rebeca.NewCallExpr(x, x.Pos())
			if !p.at(RPAREN) {
				for {
					arg, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					call.AddArg(arg)
					if !p.accept(COMMA) {
						break
					}
				}
			}
			if _, err := p.expect(RPAREN, "')'"); err != nil {
				return nil, err
			}
			x = call
		default:
			return x, nil
		}
	}
}

func (p *parser) parsePrimaryExpr() (rebeca.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case INT:
		p.next()
		return rebeca.NewIntLit(tok.Literal.(int64), tokenPos(tok)), nil
	case FLOAT:
		p.next()
		return rebeca.NewFloatLit(tok.Lexeme, tokenPos(tok)), nil
	case STRING:
		p.next()
		return rebeca.NewStringLit(tok.Literal.(string), tokenPos(tok)), nil
	case TRUE:
		p.next()
		return rebeca.NewBoolLit(true, tokenPos(tok)), nil
	case FALSE:
		p.next()
		return rebeca.NewBoolLit(false, tokenPos(tok)), nil
	case IDENT:
		p.next()
		return rebeca.NewIdent(tok.Lexeme, tokenPos(tok)), nil
	case LPAREN:
		p.next()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN, "')'"); err != nil {
			return nil, err
		}
		return rebeca.NewParenExpr(x, tokenPos(tok)), nil
	default:
		return nil, p.errorf(tok, "expected an expression, found %s", tok)
	}
}
