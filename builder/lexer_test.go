package builder

import (
	"strings"
	"testing"
)

func TestScanTokenTypes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want []TokenType
	}{
		{
			name: "class header",
			src:  "reactiveclass Ping(5) {}",
			want: []TokenType{REACTIVECLASS, IDENT, LPAREN, INT, RPAREN, LBRACE, RBRACE, EOF},
		},
		{
			name: "send with after",
			src:  "pong.pong(1) after(2);",
			want: []TokenType{IDENT, DOT, IDENT, LPAREN, INT, RPAREN, AFTER, LPAREN, INT, RPAREN, SEMICOLON, EOF},
		},
		{
			name: "operators",
			src:  "= == != < <= > >= + - * / % && || !",
			want: []TokenType{ASSIGN, EQ, NEQ, LT, LE, GT, GE, PLUS, MINUS, STAR, SLASH, PERCENT, AND, OR, NOT, EOF},
		},
		{
			name: "keywords",
			src:  "knownrebecs statevars msgsrv main if else while for deadline return true false",
			want: []TokenType{KNOWNREBECS, STATEVARS, MSGSRV, MAIN, IF, ELSE, WHILE, FOR, DEADLINE, RETURN, TRUE, FALSE, EOF},
		},
		{
			name: "instance decl",
			src:  "Ping ping(pong):(0);",
			want: []TokenType{IDENT, IDENT, LPAREN, IDENT, RPAREN, COLON, LPAREN, INT, RPAREN, SEMICOLON, EOF},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := NewLexer(tc.src).Scan()
			if err != nil {
				t.Fatalf("Scan() failed: %v", err)
			}
			if len(toks) != len(tc.want) {
				t.Fatalf("Scan() returned %d tokens, want %d", len(toks), len(tc.want))
			}
			for i, tok := range toks {
				if tok.Type != tc.want[i] {
					t.Errorf("token %d: got type %d (%q), want %d", i, tok.Type, tok.Lexeme, tc.want[i])
				}
			}
		})
	}
}

func TestScanLiterals(t *testing.T) {
	t.Parallel()
	toks, err := NewLexer(`42 3.14 "hi\n" x`).Scan()
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if got := toks[0].Literal.(int64); got != 42 {
		t.Errorf("int literal: got %d, want 42", got)
	}
	if toks[1].Type != FLOAT || toks[1].Lexeme != "3.14" {
		t.Errorf("float literal: got %q (type %d), want \"3.14\"", toks[1].Lexeme, toks[1].Type)
	}
	if got := toks[2].Literal.(string); got != "hi\n" {
		t.Errorf("string literal: got %q, want \"hi\\n\"", got)
	}
	if toks[3].Type != IDENT || toks[3].Lexeme != "x" {
		t.Errorf("ident: got %q (type %d)", toks[3].Lexeme, toks[3].Type)
	}
}

func TestScanPositions(t *testing.T) {
	t.Parallel()
	toks, err := NewLexer("ab\n  cd").Scan()
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if toks[0].Line != 1 || toks[0].Col != 1 {
		t.Errorf("ab at %d:%d, want 1:1", toks[0].Line, toks[0].Col)
	}
	if toks[1].Line != 2 || toks[1].Col != 3 {
		t.Errorf("cd at %d:%d, want 2:3", toks[1].Line, toks[1].Col)
	}
}

func TestScanComments(t *testing.T) {
	t.Parallel()
	toks, err := NewLexer("// intro\nx /* multi\nline */ y").Scan()
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("Scan() returned %d tokens, want 3", len(toks))
	}
	if toks[0].Lexeme != "x" || toks[1].Lexeme != "y" {
		t.Errorf("got lexemes %q, %q, want x, y", toks[0].Lexeme, toks[1].Lexeme)
	}
	if toks[1].Line != 3 {
		t.Errorf("y at line %d, want 3", toks[1].Line)
	}
}

func TestScanErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unterminated string", `"abc`, "unterminated string literal"},
		{"newline in string", "\"ab\ncd\"", "unterminated string literal"},
		{"unterminated block comment", "x /* abc", "unterminated block comment"},
		{"single ampersand", "a & b", "expected '&&'"},
		{"single pipe", "a | b", "expected '||'"},
		{"unknown escape", `"a\qb"`, "unknown escape"},
		{"stray character", "a @ b", "unexpected character"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLexer(tc.src).Scan()
			if err == nil {
				t.Fatalf("Scan() succeeded, want error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Scan() error %q, want it to contain %q", err, tc.want)
			}
		})
	}
}
