// Package tcllist implements list operations over a command language's
// surface syntax: a List is just a Value whose contents are
// space-separated, brace-quoted-as-needed words. There is no parallel
// in-memory vector; lists are parsed on demand through internal/token,
// keeping the string rendering as the one source of truth for a
// list's contents.
package tcllist

import (
	"strings"

	"github.com/cwbudde/minitcl/internal/token"
)

// words tokenizes v (appending the sentinel internally) and returns the
// WORD lexemes along with the sentineled buffer they index into.
func words(v []byte) ([]token.Lexeme, []byte) {
	buf := append(append([]byte(nil), v...), token.Sentinel)
	var out []token.Lexeme
	pos := 0
	quoted := false
	for pos < len(buf) {
		lex, q := token.Next(buf, pos, quoted)
		quoted = q
		if lex.Kind == token.WORD {
			out = append(out, lex)
		}
		if lex.Kind == token.ERROR {
			break
		}
		pos = lex.End
	}
	return out, buf
}

// Length returns the number of WORD lexemes v tokenizes to.
func Length(v []byte) int {
	ws, _ := words(v)
	return len(ws)
}

// At returns the i-th WORD element of v as raw bytes, stripping exactly
// one outer brace pair if the word begins with '{'. It reports false
// if i is out of range.
func At(v []byte, i int) ([]byte, bool) {
	ws, buf := words(v)
	if i < 0 || i >= len(ws) {
		return nil, false
	}
	text := ws[i].Text(buf)
	if len(text) > 0 && text[0] == '{' {
		return text[1 : len(text)-1], true
	}
	return text, true
}

// needsBraces reports whether s must be wrapped in { ... } when
// rendered as a list element: it contains whitespace or any
// tokenizer-special byte.
func needsBraces(s []byte) bool {
	for _, c := range s {
		switch c {
		case ' ', '\t', '\n', '\r':
			return true
		case '$', '[', ']', '{', '}', '"', ';':
			return true
		}
	}
	return false
}

// Append returns v with tail appended as a new list element: elements
// are separated by a single space; an empty tail renders as "{}"; a
// tail containing whitespace or a tokenizer-special byte is wrapped in
// braces.
func Append(v, tail []byte) []byte {
	var sb strings.Builder
	sb.Write(v)
	if len(v) > 0 {
		sb.WriteByte(' ')
	}
	switch {
	case len(tail) == 0:
		sb.WriteString("{}")
	case needsBraces(tail):
		sb.WriteByte('{')
		sb.Write(tail)
		sb.WriteByte('}')
	default:
		sb.Write(tail)
	}
	return []byte(sb.String())
}
