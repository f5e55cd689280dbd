package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType represents the kind of a lexical token.
type TokenType int

const (
	// EOF marks the end of the token stream.
	EOF TokenType = iota
	// ILLEGAL marks an unrecognized input byte.
	ILLEGAL

	// IDENT is an identifier or type name.
	IDENT
	// INT is an integer literal.
	INT
	// FLOAT is a floating point literal.
	FLOAT
	// STRING is a double quoted string literal.
	STRING

	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	SEMICOLON // ;
	COMMA     // ,
	COLON     // :
	DOT       // .

	ASSIGN  // =
	EQ      // ==
	NEQ     // !=
	LT      // <
	LE      // <=
	GT      // >
	GE      // >=
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	AND     // &&
	OR      // ||
	NOT     // !

	// Keywords
	REACTIVECLASS
	KNOWNREBECS
	STATEVARS
	MSGSRV
	MAIN
	IF
	ELSE
	WHILE
	FOR
	AFTER
	DEADLINE
	RETURN
	TRUE
	FALSE
)

var keywords = map[string]TokenType{
	"reactiveclass": REACTIVECLASS,
	"knownrebecs":   KNOWNREBECS,
	"statevars":     STATEVARS,
	"msgsrv":        MSGSRV,
	"main":          MAIN,
	"if":            IF,
	"else":          ELSE,
	"while":         WHILE,
	"for":           FOR,
	"after":         AFTER,
	"deadline":      DEADLINE,
	"return":        RETURN,
	"true":          TRUE,
	"false":         FALSE,
}

// Token is a lexical token with its source position (1-based line and
// column) and, for literals, the decoded value.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Col     int
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Lexeme)
}

// LexError reports an unrecognized or malformed token.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// Lexer scans Timed Rebeca source text into tokens.
type Lexer struct {
	src   string
	start int
	cur   int
	line  int
	col   int

	tokLine int
	tokCol  int

	tokens []Token
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(src string) *Lexer {
	l := new(Lexer)
	l.src = src
	l.line = 1
	l.col = 1
	return l
}

// Scan tokenizes the whole source and returns the token list, always
// terminated by an EOF token.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		if err := l.skipSpaceAndComments(); err != nil {
			return nil, err
		}
		if l.atEnd() {
			break
		}
		l.start = l.cur
		l.tokLine = l.line
		l.tokCol = l.col
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.tokens = append(l.tokens, Token{Type: EOF, Line: l.line, Col: l.col})
	return l.tokens, nil
}

func (l *Lexer) atEnd() bool {
	return l.cur >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) peekNext() byte {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.cur] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) add(tt TokenType, literal interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: literal,
		Line:    l.tokLine,
		Col:     l.tokCol,
	})
}

func (l *Lexer) errorf(format string, args ...interface{}) error {
	return &LexError{Line: l.tokLine, Col: l.tokCol, Msg: fmt.Sprintf(format, args...)}
}

func (l *Lexer) skipSpaceAndComments() error {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '/':
			if l.peekNext() == '/' {
				for !l.atEnd() && l.peek() != '\n' {
					l.advance()
				}
			} else if l.peekNext() == '*' {
				l.tokLine, l.tokCol = l.line, l.col
				l.advance()
				l.advance()
				closed := false
				for !l.atEnd() {
					if l.peek() == '*' && l.peekNext() == '/' {
						l.advance()
						l.advance()
						closed = true
						break
					}
					l.advance()
				}
				if !closed {
					return l.errorf("unterminated block comment")
				}
			} else {
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) scanToken() error {
	ch := l.advance()
	switch ch {
	case '(':
		l.add(LPAREN, nil)
	case ')':
		l.add(RPAREN, nil)
	case '{':
		l.add(LBRACE, nil)
	case '}':
		l.add(RBRACE, nil)
	case ';':
		l.add(SEMICOLON, nil)
	case ',':
		l.add(COMMA, nil)
	case ':':
		l.add(COLON, nil)
	case '.':
		l.add(DOT, nil)
	case '+':
		l.add(PLUS, nil)
	case '-':
		l.add(MINUS, nil)
	case '*':
		l.add(STAR, nil)
	case '/':
		l.add(SLASH, nil)
	case '%':
		l.add(PERCENT, nil)
	case '=':
		if l.match('=') {
			l.add(EQ, nil)
		} else {
			l.add(ASSIGN, nil)
		}
	case '!':
		if l.match('=') {
			l.add(NEQ, nil)
		} else {
			l.add(NOT, nil)
		}
	case '<':
		if l.match('=') {
			l.add(LE, nil)
		} else {
			l.add(LT, nil)
		}
	case '>':
		if l.match('=') {
			l.add(GE, nil)
		} else {
			l.add(GT, nil)
		}
	case '&':
		if l.match('&') {
			l.add(AND, nil)
		} else {
			return l.errorf("expected '&&'")
		}
	case '|':
		if l.match('|') {
			l.add(OR, nil)
		} else {
			return l.errorf("expected '||'")
		}
	case '"':
		return l.scanString()
	default:
		if isDigit(ch) {
			return l.scanNumber()
		}
		if isAlpha(ch) {
			l.scanIdent()
			return nil
		}
		return l.errorf("unexpected character %q", ch)
	}
	return nil
}

func (l *Lexer) scanString() error {
	var b strings.Builder
	for {
		if l.atEnd() {
			return l.errorf("unterminated string literal")
		}
		ch := l.advance()
		if ch == '"' {
			break
		}
		if ch == '\n' {
			return l.errorf("unterminated string literal")
		}
		if ch == '\\' {
			if l.atEnd() {
				return l.errorf("unterminated string literal")
			}
			esc := l.advance()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '"':
				b.WriteByte(esc)
			default:
				return l.errorf("unknown escape '\\%c'", esc)
			}
			continue
		}
		b.WriteByte(ch)
	}
	l.add(STRING, b.String())
	return nil
}

func (l *Lexer) scanNumber() error {
	for isDigit(l.peek()) {
		l.advance()
	}
	isFloat := false
	if l.peek() == '.' && isDigit(l.peekNext()) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	text := l.src[l.start:l.cur]
	if isFloat {
		l.add(FLOAT, text)
		return nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return l.errorf("invalid integer literal %q", text)
	}
	l.add(INT, v)
	return nil
}

func (l *Lexer) scanIdent() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	text := l.src[l.start:l.cur]
	if tt, ok := keywords[text]; ok {
		l.add(tt, nil)
		return
	}
	l.add(IDENT, nil)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
