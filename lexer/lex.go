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
	"unicode/utf8"

	"github.com/db47h/synchk/token"
)

// EOF is the return value from Next() when EOF is reached.
//
const EOF rune = -1

// queue is a FIFO queue.
//
type queue struct {
	items []token.Token
	head  int
	tail  int
	count int
}

func (q *queue) push(t token.Token) {
	if q.head == q.tail && q.count > 0 {
		items := make([]token.Token, len(q.items)*2)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = t
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// pop pops the first item from the queue. Callers must check that q.count > 0 beforehand.
//
func (q *queue) pop() token.Token {
	i := q.head
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return q.items[i]
}

// Lexer wraps the public methods of a lexer. This interface is intended for
// parsers that call New(), then Lex() until EOF.
//
type Lexer state

// State holds the internal state of the lexer while processing a given input.
// Note that the public methods should only be accessed from custom StateFn
// functions.
//
type State state

type state struct {
	queue
	f     *token.File
	src   []byte
	n     int       // cursor: offset of the next byte to read
	r     rune      // last rune returned by Next
	p     token.Pos // offset of r
	ts    token.Pos // token start position
	state StateFn   // current state
	init  StateFn   // initial state
	err   *token.SyntaxError
}

// A StateFn is a state function.
//
// If a StateFn returns nil, the lexer transitions back to its initial state
// function.
//
type StateFn func(s *State) StateFn

// New creates a new lexer for the given source file. A new lexer must be
// created for every checking session.
//
func New(f *token.File) *Lexer {
	return NewWithState(f, stateInit)
}

// NewWithState creates a new lexer for the given source file, using init as
// the initial state function.
//
func NewWithState(f *token.File, init StateFn) *Lexer {
	return &Lexer{
		// initial q size must be an exponent of 2
		queue: queue{items: make([]token.Token, 2)},
		f:     f,
		src:   f.Bytes(),
		r:     utf8.RuneSelf,
		p:     -1,
		init:  init,
	}
}

// Lex returns the next token.
//
// Once the end of input has been reached, Lex keeps returning EndOfFile
// tokens. Lexical errors are not recoverable: after the first one, every
// subsequent call returns the same error.
//
func (l *Lexer) Lex() (token.Token, error) {
	for l.count == 0 {
		if l.err != nil {
			return token.Token{}, l.err
		}
		st := (*State)(l)
		if l.state == nil {
			l.state = l.init(st)
		} else {
			l.state = l.state(st)
		}
	}
	return l.pop(), nil
}

// File returns the File used as input for the lexer.
//
func (l *Lexer) File() *token.File {
	return l.f
}

// Offset returns the current cursor position, that is the offset of the next
// byte to be read. It never decreases.
//
func (l *Lexer) Offset() int {
	return l.n
}

// Emit emits a single token of the given kind and lexeme positioned at p.
//
func (s *State) Emit(p token.Pos, k token.Kind, lexeme string) {
	s.push(token.Token{Kind: k, Pos: p, Lexeme: lexeme})
}

// Error reports the unrecognized character r found at p. Lexing stops there.
//
func (s *State) Error(p token.Pos, r rune) {
	if s.err == nil {
		s.err = token.NewLexicalError(s.f, p, r)
	}
}

// Next returns the next rune in the input stream and advances the cursor. If
// the end of the input has been reached it will return EOF. Invalid UTF-8
// bytes are returned one at a time as utf8.RuneError.
//
func (s *State) Next() rune {
	s.p = token.Pos(s.n)
	if s.n >= len(s.src) {
		s.r = EOF
		return EOF
	}
	r, w := rune(s.src[s.n]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.n:])
	}
	s.n += w
	s.r = r
	return r
}

// Peek returns the next rune in the input stream without consuming it. At
// EOF, it simply returns EOF.
//
func (s *State) Peek() rune {
	if s.n >= len(s.src) {
		return EOF
	}
	if b := s.src[s.n]; b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRune(s.src[s.n:])
	return r
}

// Current returns the last rune returned by State.Next.
//
func (s *State) Current() rune {
	return s.r
}

// Pos returns the byte offset of the last rune returned by State.Next.
// Returns -1 if no input has been read yet.
//
func (s *State) Pos() token.Pos {
	return s.p
}

// StartToken sets p as a token start position.
//
func (s *State) StartToken(p token.Pos) {
	s.ts = p
}

// TokenPos returns the position set by StartToken.
//
func (s *State) TokenPos() token.Pos {
	return s.ts
}

// TokenString returns the input from the token start position up to the
// cursor.
//
func (s *State) TokenString() string {
	return string(s.src[s.ts:s.n])
}
