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
Package synchk checks whether a program conforms to a small fixed imperative
grammar. It answers accept or reject, with a diagnostic on rejection.

The language has the keywords program, begin, end, if, then and loop,
assignments, arithmetic expressions over identifiers and unsigned integer
constants, and single comparison conditions:

	program begin
	  x = (a + 2) * b;
	  if (x < y) then loop (a > b) z = z + 1
	end

A checking session reads the whole source into a token.File, then runs a
lexer.Lexer and a parser.Parser over it:

	f, err := synchk.ReadSource("prog.txt", r)
	if err != nil {
		// I/O error
	}
	if err := synchk.Check(f); err != nil {
		// err is a *token.SyntaxError
	}

Reading source

ReadSource reads its input line by line and joins the lines with a single space.
Line breaks therefore never reach the lexer, which only skips U+0020 spaces and
rejects tabs and newlines. The original line starts are kept in the File so that
diagnostics refer to the line and column of the input.

Errors

Checking stops at the first error. The returned *token.SyntaxError is either a
token.LexicalError (unrecognized character) or a token.GrammaticalError (token
of an unexpected kind). There is no error recovery.

Sessions share no state: independent sessions can run concurrently.

*/
package synchk
