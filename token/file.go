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
	"bytes"
	"errors"
	"fmt"
)

// Pos represents a byte offset within a File.
//
type Pos int

// IsValid returns true if p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// ErrLine is the panic value of File.AddLine for out of order lines.
var ErrLine = errors.New("invalid line number")

// Position describes a source position including the file, line, and column
// location.
//
type Position struct {
	Filename string
	Offset   int // byte offset, starting at 0
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
}

// IsValid reports whether the position has been resolved.
//
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File is a fully materialized source buffer. It handles file offset to
// line/column conversion.
//
// The lines of a File do not need to be separated by newlines in the buffer:
// a driver that joins lines with some other separator registers line starts
// with AddLine.
//
type File struct {
	name  string
	src   []byte
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File with the given name and contents. Line starts
// following a '\n' in src are registered automatically.
//
func NewFile(name string, src []byte) *File {
	f := &File{
		name:  name,
		src:   src,
		lines: []Pos{0},
	}
	for i, b := range src {
		if b == '\n' && i+1 < len(src) {
			f.lines = append(f.lines, Pos(i+1))
		}
	}
	return f
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Bytes returns the file contents. The returned slice must not be modified.
//
func (f *File) Bytes() []byte {
	return f.src
}

// Size returns the length of the file contents in bytes.
//
func (f *File) Size() int {
	return len(f.src)
}

// LineCount returns the number of known lines.
//
func (f *File) LineCount() int {
	return len(f.lines)
}

// AddLine adds a new line at the given offset.
//
// line is the 1-based line index.
//
// If pos represents a position before the position of the last known line,
// or if line is not equal to the last know line number plus one, AddLine will
// panic.
//
func (f *File) AddLine(pos Pos, line int) {
	l := len(f.lines)
	if (l > 0 && f.lines[l-1] >= pos) || l+1 != line || int(pos) > len(f.src) {
		panic(ErrLine)
	}
	f.lines = append(f.lines, pos)
}

// Position returns the 1-based line and column for a given pos. The returned
// column is a byte offset, not a rune offset.
//
func (f *File) Position(pos Pos) Position {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	if i == 0 {
		return Position{Filename: f.name, Offset: int(pos)}
	}
	return Position{f.name, int(pos), i, int(pos - f.lines[i-1] + 1)}
}

// LinePos return the file offset of the given line.
//
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// LineBytes returns the contents of the line containing pos, without its
// terminating separator.
//
func (f *File) LineBytes(pos Pos) ([]byte, error) {
	line := f.Position(pos).Line
	start := f.LinePos(line)
	if !start.IsValid() {
		return nil, ErrLine
	}
	end := len(f.src)
	if next := f.LinePos(line + 1); next.IsValid() {
		end = int(next) - 1
	}
	l := f.src[start:end]
	l = bytes.TrimSuffix(l, []byte{'\n'})
	l = bytes.TrimSuffix(l, []byte{'\r'})
	return l, nil
}
