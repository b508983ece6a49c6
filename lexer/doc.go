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

/*
Package lexer implements the tokenizer of the checked language as a
Deterministic Finite Automaton whose states and associated actions are
implemented as functions.

State functions

A StateFn is both state and action: it reads input through a *State and
returns the next state function. Returning nil transitions back to the initial
state, where the lexer expects to read a new token.

	type StateFn func(*State) StateFn

The lexer reads from a fully materialized token.File through a cursor that
only moves forward. State functions look ahead with Peek and consume with Next;
there is no way to back up.

Tokens

The initial state skips space characters (U+0020 only) and then applies the
longest match rule:

	digit { digit }             IntegerConstant
	letter { letter | digit }   keyword or Identifier
	; = + - * / ( ) < >         single character tokens

Keywords are resolved with token.Lookup once the whole word has been read, so
that "loopx" is a single Identifier.

Error handling

Any other character is a lexical error. Lexical errors are not recoverable:
Lex returns the same *token.SyntaxError for the rest of the session. At the end
of input, Lex returns EndOfFile tokens forever.

*/
package lexer
