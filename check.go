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

package synchk

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/db47h/synchk/lexer"
	"github.com/db47h/synchk/parser"
	"github.com/db47h/synchk/token"
)

// ReadSource reads r line by line and joins the lines with a single space,
// including after the last line. Lines may be terminated by "\n" or "\r\n".
// The start of each input line is registered in the returned File.
//
func ReadSource(name string, r io.Reader) (*token.File, error) {
	var (
		buf    bytes.Buffer
		starts []token.Pos
	)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			line = bytes.TrimSuffix(line, []byte{'\n'})
			line = bytes.TrimSuffix(line, []byte{'\r'})
			starts = append(starts, token.Pos(buf.Len()))
			buf.Write(line)
			buf.WriteByte(' ')
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}
	}
	f := token.NewFile(name, buf.Bytes())
	for i := 1; i < len(starts); i++ {
		f.AddLine(starts[i], i+1)
	}
	return f, nil
}

// Check runs a checking session over f. It returns nil if f is a valid
// program, or the first *token.SyntaxError found.
//
func Check(f *token.File, opts ...parser.Option) error {
	return parser.New(lexer.New(f), opts...).ParseProgram()
}

// CheckString checks the program src. The source is used as is: it is not
// split into lines.
//
func CheckString(name, src string, opts ...parser.Option) error {
	return Check(token.NewFile(name, []byte(src)), opts...)
}

// CheckReader reads a program with ReadSource then checks it.
//
func CheckReader(name string, r io.Reader, opts ...parser.Option) error {
	f, err := ReadSource(name, r)
	if err != nil {
		return err
	}
	return Check(f, opts...)
}

// Tokens returns all tokens in f up to and including EndOfFile. On a lexical
// error, it returns the tokens read so far along with the error.
//
func Tokens(f *token.File) ([]token.Token, error) {
	l := lexer.New(f)
	var toks []token.Token
	for {
		tok, err := l.Lex()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EndOfFile {
			return toks, nil
		}
	}
}
