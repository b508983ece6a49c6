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

// Package report prints the outcome of checking sessions for humans.
//
// A rejected program is reported on a single line:
//
//	file:line:col: syntax error: description
//
// optionally followed by the source line where the error occurred and a line
// with a caret at the position of the error:
//
//	|  if (1 < x) then x = 2
//	|      ^
//
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"golang.org/x/text/width"

	"github.com/db47h/synchk/token"
)

// SuccessMsg is printed after the file name of accepted programs.
//
const SuccessMsg = "No syntax errors reported"

// A Reporter writes session outcomes to an io.Writer.
//
type Reporter struct {
	w       io.Writer
	color   bool
	context bool

	okStyle    lipgloss.Style
	errStyle   lipgloss.Style
	caretStyle lipgloss.Style
}

// An Option is a configuration option for a new Reporter.
//
type Option func(*Reporter)

// WithColor enables or disables styled output. Styles are only rendered if
// the output writer is a terminal that supports them.
//
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.color = enabled
	}
}

// WithContext enables or disables printing the source line and a caret
// below syntax errors.
//
func WithContext(enabled bool) Option {
	return func(r *Reporter) {
		r.context = enabled
	}
}

// New returns a new Reporter writing to w. By default, color is enabled and
// context is disabled.
//
func New(w io.Writer, opts ...Option) *Reporter {
	re := lipgloss.NewRenderer(w)
	r := &Reporter{
		w:          w,
		color:      true,
		okStyle:    re.NewStyle().Foreground(lipgloss.Color("10")),
		errStyle:   re.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		caretStyle: re.NewStyle().Foreground(lipgloss.Color("9")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reporter) render(s lipgloss.Style, str string) string {
	if !r.color {
		return str
	}
	return s.Render(str)
}

// Success reports an accepted program.
//
func (r *Reporter) Success(name string) {
	fmt.Fprintf(r.w, "%s: %s\n", name, r.render(r.okStyle, SuccessMsg))
}

// Failure reports err. If err is (or wraps) a *token.SyntaxError and context
// is enabled, the offending source line from f is printed as well.
//
func (r *Reporter) Failure(f *token.File, err error) {
	fmt.Fprintln(r.w, r.render(r.errStyle, err.Error()))
	var se *token.SyntaxError
	if !r.context || f == nil || !errors.As(err, &se) {
		return
	}
	l, lerr := f.LineBytes(se.Pos)
	if lerr != nil {
		return
	}
	b := se.Position.Column - 1
	if b > len(l) {
		b = len(l)
	}
	if b < 0 {
		b = 0
	}
	fmt.Fprintf(r.w, "|%s\n", l)
	fmt.Fprintf(r.w, "|%s%s\n", strings.Repeat(" ", Width(l[:b])), r.render(r.caretStyle, "^"))
}

// Width computes the width in text cells of a given byte slice (supposing
// rendering with a UTF-8 locale and monospaced font).
//
func Width(l []byte) int {
	w := 0
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRune(l[i:])
		i += s
		if !unicode.IsGraphic(r) {
			continue
		}
		p := width.LookupRune(r)
		switch p.Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		case width.EastAsianAmbiguous:
			w += 1 // depends on user locale. 2 if locale is CJK, 1 otherwise.
		default:
			w += 1
		}
	}
	return w
}
