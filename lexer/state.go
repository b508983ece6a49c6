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

package lexer

import (
	"unicode"

	"github.com/db47h/synchk/token"
)

// stateInit is the initial state of the lexer. It skips spaces and
// dispatches on the first rune of the next token:
//
// EOF: emits token.EndOfFile and returns nil. The lexer stays in this state
// for all subsequent calls.
//
// Digits: transitions to stateInt.
//
// Letters: transitions to stateWord.
//
// Operators and delimiters: emits the matching single character token.
//
// Anything else, including tabs and newlines, is a lexical error.
//
func stateInit(s *State) StateFn {
	for s.Peek() == ' ' {
		s.Next()
	}
	r := s.Next()
	s.StartToken(s.Pos())
	switch {
	case r == EOF:
		s.Emit(s.Pos(), token.EndOfFile, token.EOFLexeme)
	case unicode.IsDigit(r):
		return stateInt
	case unicode.IsLetter(r):
		return stateWord
	default:
		if k, ok := token.Operator(r); ok {
			s.Emit(s.Pos(), k, string(r))
			return nil
		}
		s.Error(s.Pos(), r)
	}
	return nil
}

// stateInt lexes the maximal run of digits following the first one. The
// lexeme is kept verbatim.
//
func stateInt(s *State) StateFn {
	for unicode.IsDigit(s.Peek()) {
		s.Next()
	}
	s.Emit(s.TokenPos(), token.IntegerConstant, s.TokenString())
	return nil
}

// stateWord lexes the maximal run of letters or digits following the first
// letter, then resolves keywords.
//
func stateWord(s *State) StateFn {
	for r := s.Peek(); unicode.IsLetter(r) || unicode.IsDigit(r); r = s.Peek() {
		s.Next()
	}
	w := s.TokenString()
	s.Emit(s.TokenPos(), token.Lookup(w), w)
	return nil
}
