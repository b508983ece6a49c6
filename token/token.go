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

// Package token defines the lexical tokens of the checked language, source
// files with position information, and the syntax error type shared by the
// lexer and the parser.
//
package token

import "fmt"

// Kind represents the lexical category of a token.
//
type Kind uint8

// Token kinds.
//
const (
	EndOfFile       Kind = iota // end of input, lexeme "^Z"
	Program                     // program
	Begin                       // begin
	End                         // end
	If                          // if
	Then                        // then
	Loop                        // loop
	Identifier                  // letter { letter | digit }
	IntegerConstant             // digit { digit }
	Equals                      // =
	LessThan                    // <
	GreaterThan                 // >
	Plus                        // +
	Minus                       // -
	Multiply                    // *
	Divide                      // /
	Semicolon                   // ;
	OpenParen                   // (
	CloseParen                  // )

	numKinds
)

var kindNames = [...]string{
	EndOfFile:       "EndOfFile",
	Program:         "Program",
	Begin:           "Begin",
	End:             "End",
	If:              "If",
	Then:            "Then",
	Loop:            "Loop",
	Identifier:      "Identifier",
	IntegerConstant: "IntegerConstant",
	Equals:          "Equals",
	LessThan:        "LessThan",
	GreaterThan:     "GreaterThan",
	Plus:            "Plus",
	Minus:           "Minus",
	Multiply:        "Multiply",
	Divide:          "Divide",
	Semicolon:       "Semicolon",
	OpenParen:       "OpenParen",
	CloseParen:      "CloseParen",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// EOFLexeme is the lexeme of EndOfFile tokens.
//
const EOFLexeme = "^Z"

var keywords = map[string]Kind{
	"program": Program,
	"begin":   Begin,
	"end":     End,
	"if":      If,
	"then":    Then,
	"loop":    Loop,
}

// Lookup maps an identifier-shaped word to its keyword kind, or to Identifier
// if the word is not a keyword. The match is exact and case-sensitive.
//
func Lookup(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return Identifier
}

// IsKeyword reports whether k is one of the language keywords.
//
func (k Kind) IsKeyword() bool {
	return k >= Program && k <= Loop
}

var operators = map[rune]Kind{
	';': Semicolon,
	'=': Equals,
	'+': Plus,
	'-': Minus,
	'*': Multiply,
	'/': Divide,
	'(': OpenParen,
	')': CloseParen,
	'<': LessThan,
	'>': GreaterThan,
}

// Operator returns the kind of the single character token r. ok is false if r
// is not an operator or delimiter.
//
func Operator(r rune) (k Kind, ok bool) {
	k, ok = operators[r]
	return k, ok
}

// Token is a lexeme recognized by the lexer. Tokens are immutable values.
//
type Token struct {
	Kind
	Pos    // byte offset of the first byte of the lexeme
	Lexeme string
}

// String returns a string representation of the token. This should be used
// only for debugging purposes as the output format is not guaranteed to be
// stable.
//
func (t Token) String() string {
	if t.Kind == EndOfFile {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
