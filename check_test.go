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

package synchk_test

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"

	"github.com/db47h/synchk"
	"github.com/db47h/synchk/token"
)

const multiLine = `program begin
  x = (a + 2) * b;
  if (x < y) then loop (a > b) z = z + 1
end
`

func TestReadSource(t *testing.T) {
	f, err := synchk.ReadSource("prog", strings.NewReader("program begin\r\n  x = 1;\n\n  y = x # 2\nend"))
	if err != nil {
		t.Fatal(err)
	}
	want := "program begin   x = 1;    y = x # 2 end "
	if got := string(f.Bytes()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if n := f.LineCount(); n != 5 {
		t.Errorf("got %d lines, want 5", n)
	}
	pos := token.Pos(strings.IndexByte(want, '#'))
	if got := f.Position(pos).String(); got != "prog:4:9" {
		t.Errorf("got position %s, want prog:4:9", got)
	}
	l, err := f.LineBytes(pos)
	if err != nil {
		t.Fatal(err)
	}
	if string(l) != "  y = x # 2" {
		t.Errorf("got line %q", l)
	}
}

func TestReadSource_Empty(t *testing.T) {
	f, err := synchk.ReadSource("empty", strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != 0 || f.LineCount() != 1 {
		t.Errorf("got size %d, %d lines", f.Size(), f.LineCount())
	}
}

func TestReadSource_IOError(t *testing.T) {
	r := iotest.TimeoutReader(strings.NewReader(strings.Repeat("x", 8192)))
	_, err := synchk.ReadSource("broken", r)
	if errors.Cause(err) != iotest.ErrTimeout {
		t.Fatalf("got %v, want %v", err, iotest.ErrTimeout)
	}
}

func TestCheckReader(t *testing.T) {
	if err := synchk.CheckReader("multi", strings.NewReader(multiLine)); err != nil {
		t.Fatal(err)
	}
	// newlines are not part of the token set
	err := synchk.CheckString("multi", multiLine)
	var se *token.SyntaxError
	if !errors.As(err, &se) || se.Kind != token.LexicalError || se.Char != '\n' {
		t.Fatalf("expected a lexical error on newline, got %v", err)
	}
}

func TestCheckReader_Positions(t *testing.T) {
	src := "program begin\n  x = 1;\n  if (1 < x) then x = 2\nend\n"
	err := synchk.CheckReader("pos", strings.NewReader(src))
	want := `pos:3:7: syntax error: expected Identifier, found IntegerConstant "1"`
	if err == nil || err.Error() != want {
		t.Fatalf("got %v, want %s", err, want)
	}
}

func TestTokens(t *testing.T) {
	toks, err := synchk.Tokens(token.NewFile("", []byte("x=1")))
	if err != nil {
		t.Fatal(err)
	}
	kinds := []token.Kind{token.Identifier, token.Equals, token.IntegerConstant, token.EndOfFile}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(kinds))
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}

	toks, err = synchk.Tokens(token.NewFile("", []byte("x=&")))
	if err == nil || len(toks) != 2 {
		t.Errorf("got %d tokens and error %v", len(toks), err)
	}
}

// Sessions share no state.
func TestCheck_Concurrent(t *testing.T) {
	inputs := []string{
		"program begin x=1 end",
		"program begin x=1 end y",
		"program begin if (x<y) then loop (a>b) z=z+1 end",
		"program begin x=1 # end",
	}
	errs := make(chan error, len(inputs)*8)
	for i := 0; i < 8; i++ {
		for _, in := range inputs {
			in := in
			go func() { errs <- synchk.CheckString("c", in) }()
		}
	}
	var failed int
	for i := 0; i < cap(errs); i++ {
		if <-errs != nil {
			failed++
		}
	}
	if failed != 16 {
		t.Errorf("got %d failures, want 16", failed)
	}
}
