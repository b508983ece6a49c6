// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package token

import (
	"fmt"
	"strings"
)

// ErrorKind tells where a SyntaxError originates.
//
type ErrorKind uint8

// Error kinds.
//
const (
	LexicalError     ErrorKind = iota + 1 // unrecognized character
	GrammaticalError                      // unexpected token
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case GrammaticalError:
		return "grammatical error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// SyntaxError is the only failure reported by the lexer and the parser. Once
// raised, it aborts the checking session.
//
type SyntaxError struct {
	Kind     ErrorKind
	Pos      Pos      // byte offset of the offending character or token
	Position Position // Pos resolved against the source File

	// LexicalError details. Char is utf8.RuneError for invalid UTF-8 input.
	Char rune

	// GrammaticalError details.
	Expected []Kind
	Found    Token
}

// NewLexicalError returns a LexicalError for the character r found at pos in f.
//
func NewLexicalError(f *File, pos Pos, r rune) *SyntaxError {
	return &SyntaxError{
		Kind:     LexicalError,
		Pos:      pos,
		Position: f.Position(pos),
		Char:     r,
	}
}

// NewGrammaticalError returns a GrammaticalError for the token found in f
// where one of the expected kinds was required.
//
func NewGrammaticalError(f *File, found Token, expected ...Kind) *SyntaxError {
	return &SyntaxError{
		Kind:     GrammaticalError,
		Pos:      found.Pos,
		Position: f.Position(found.Pos),
		Expected: expected,
		Found:    found,
	}
}

// Msg returns the error message without position information.
//
func (e *SyntaxError) Msg() string {
	switch e.Kind {
	case LexicalError:
		return fmt.Sprintf("unrecognized character %#U at offset %d", e.Char, e.Pos)
	case GrammaticalError:
		return fmt.Sprintf("expected %s, found %s", kindList(e.Expected), e.Found)
	default:
		return e.Kind.String()
	}
}

func (e *SyntaxError) Error() string {
	if e.Position.IsValid() {
		return fmt.Sprintf("%s: syntax error: %s", e.Position, e.Msg())
	}
	return "syntax error: " + e.Msg()
}

// kindList formats kinds as "A", "A or B", "A, B or C".
func kindList(ks []Kind) string {
	switch len(ks) {
	case 0:
		return "nothing"
	case 1:
		return ks[0].String()
	}
	var b strings.Builder
	for i, k := range ks[:len(ks)-1] {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteString(" or ")
	b.WriteString(ks[len(ks)-1].String())
	return b.String()
}
