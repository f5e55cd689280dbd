package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError reports a syntax error at a source position. Incomplete is
// set when the parser ran out of input mid construct, which callers such
// as the interactive mode use to keep reading lines instead of failing.
type ParseError struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// IsIncomplete reports whether err (or an error it wraps) is a
// ParseError caused by truncated input.
func IsIncomplete(err error) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Incomplete
	}
	return false
}

// SourceError decorates a lex or parse error with the offending source
// line and a caret marking the column.
type SourceError struct {
	Err  error
	File string
	Snip string
}

func (e *SourceError) Error() string {
	if e.File == "" {
		return e.Err.Error() + e.Snip
	}
	return e.File + ":" + e.Err.Error() + e.Snip
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// WrapWithSource attaches a source snippet to a *LexError or
// *ParseError. Other errors are returned unchanged.
func WrapWithSource(err error, src, file string) error {
	if err == nil {
		return nil
	}
	line, col := 0, 0
	switch e := err.(type) {
	case *LexError:
		line, col = e.Line, e.Col
	case *ParseError:
		line, col = e.Line, e.Col
	default:
		return err
	}
	return &SourceError{Err: err, File: file, Snip: snippet(src, line, col)}
}

func snippet(src string, line, col int) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	text := strings.TrimRight(lines[line-1], "\r")
	if col < 1 {
		col = 1
	}
	if col > len(text)+1 {
		col = len(text) + 1
	}
	var b strings.Builder
	b.WriteString("\n\t")
	b.WriteString(text)
	b.WriteString("\n\t")
	for _, ch := range text[:col-1] {
		if ch == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return b.String()
}
