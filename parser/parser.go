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

// Package parser implements a recursive descent syntax checker for the
// language:
//
//	program        := "program" "begin" statement_list "end" EOF
//	statement_list := statement { ";" statement }
//	statement      := assignment | if_statement | loop_statement
//	assignment     := variable "=" expression
//	if_statement   := "if" "(" logic_expr ")" "then" statement
//	loop_statement := "loop" "(" logic_expr ")" statement
//	logic_expr     := variable ("<" | ">") variable
//	expression     := term { ("+" | "-") term }
//	term           := factor { ("*" | "/") factor }
//	factor         := IDENTIFIER | INT_CONST | "(" expression ")"
//	variable       := IDENTIFIER
//
// The grammar is LL(1): every decision is taken by looking at a single
// lookahead token. The parser does not build a syntax tree, it only accepts or
// rejects its input. The first error stops parsing.
//
// Each nonterminal is a method that recurses into the methods of the
// nonterminals it references, so the Go stack depth grows with the nesting
// depth of the input.
//
package parser

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/db47h/synchk/lexer"
	"github.com/db47h/synchk/token"
)

// Parser holds the state of a single checking session.
//
type Parser struct {
	l    *lexer.Lexer
	f    *token.File
	tok  token.Token // lookahead
	last token.Token // last consumed token
	n    int         // number of consumed tokens
	log  *zap.Logger
}

// New returns a new parser reading tokens from l.
//
func New(l *lexer.Lexer, opts ...Option) *Parser {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{
		l:   l,
		f:   l.File(),
		log: o.log,
	}
}

// ParseProgram checks the whole input against the program rule. It returns
// nil if the input is accepted, or the first *token.SyntaxError encountered.
//
// ParseProgram must be called only once per Parser.
//
func (p *Parser) ParseProgram() error {
	// prime the lookahead
	if err := p.next(); err != nil {
		return err
	}
	return p.parseProgram()
}

// Last returns the last token consumed. After a successful ParseProgram, it
// is the EndOfFile token.
//
func (p *Parser) Last() token.Token {
	return p.last
}

// Consumed returns the number of tokens consumed so far.
//
func (p *Parser) Consumed() int {
	return p.n
}

// program := "program" "begin" statement_list "end" EOF
func (p *Parser) parseProgram() error {
	p.enter("program")
	if err := p.evaluate(token.Program); err != nil {
		return err
	}
	if err := p.evaluate(token.Begin); err != nil {
		return err
	}
	if err := p.parseStatementList(); err != nil {
		return err
	}
	if err := p.evaluate(token.End); err != nil {
		return err
	}
	p.exit("program")
	// trailing garbage
	return p.evaluate(token.EndOfFile)
}

// statement_list := statement { ";" statement }
func (p *Parser) parseStatementList() error {
	p.enter("statement_list")
	if err := p.parseStatement(); err != nil {
		return err
	}
	for p.tok.Kind == token.Semicolon {
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	p.exit("statement_list")
	return nil
}

// statement := assignment | if_statement | loop_statement
func (p *Parser) parseStatement() error {
	p.enter("statement")
	var err error
	switch p.tok.Kind {
	case token.Identifier:
		err = p.parseAssignment()
	case token.If:
		err = p.parseIfStatement()
	case token.Loop:
		err = p.parseLoopStatement()
	default:
		return p.unexpected(token.Identifier, token.If, token.Loop)
	}
	if err != nil {
		return err
	}
	p.exit("statement")
	return nil
}

// assignment := variable "=" expression
func (p *Parser) parseAssignment() error {
	p.enter("assignment")
	if err := p.parseVariable(); err != nil {
		return err
	}
	if err := p.evaluate(token.Equals); err != nil {
		return err
	}
	if err := p.parseExpression(); err != nil {
		return err
	}
	p.exit("assignment")
	return nil
}

// if_statement := "if" "(" logic_expr ")" "then" statement
func (p *Parser) parseIfStatement() error {
	p.enter("if_statement")
	if err := p.evaluate(token.If); err != nil {
		return err
	}
	if err := p.parseCondition(); err != nil {
		return err
	}
	if err := p.evaluate(token.Then); err != nil {
		return err
	}
	if err := p.parseStatement(); err != nil {
		return err
	}
	p.exit("if_statement")
	return nil
}

// loop_statement := "loop" "(" logic_expr ")" statement
func (p *Parser) parseLoopStatement() error {
	p.enter("loop_statement")
	if err := p.evaluate(token.Loop); err != nil {
		return err
	}
	if err := p.parseCondition(); err != nil {
		return err
	}
	if err := p.parseStatement(); err != nil {
		return err
	}
	p.exit("loop_statement")
	return nil
}

// parseCondition parses the "(" logic_expr ")" part shared by if and loop
// statements.
func (p *Parser) parseCondition() error {
	if err := p.evaluate(token.OpenParen); err != nil {
		return err
	}
	if err := p.parseLogicExpr(); err != nil {
		return err
	}
	return p.evaluate(token.CloseParen)
}

// logic_expr := variable ("<" | ">") variable
func (p *Parser) parseLogicExpr() error {
	p.enter("logic_expr")
	if err := p.parseVariable(); err != nil {
		return err
	}
	switch p.tok.Kind {
	case token.LessThan, token.GreaterThan:
		if err := p.consume(); err != nil {
			return err
		}
	default:
		return p.unexpected(token.LessThan, token.GreaterThan)
	}
	if err := p.parseVariable(); err != nil {
		return err
	}
	p.exit("logic_expr")
	return nil
}

// expression := term { ("+" | "-") term }
func (p *Parser) parseExpression() error {
	p.enter("expression")
	if err := p.parseTerm(); err != nil {
		return err
	}
	for p.tok.Kind == token.Plus || p.tok.Kind == token.Minus {
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseTerm(); err != nil {
			return err
		}
	}
	p.exit("expression")
	return nil
}

// term := factor { ("*" | "/") factor }
func (p *Parser) parseTerm() error {
	p.enter("term")
	if err := p.parseFactor(); err != nil {
		return err
	}
	for p.tok.Kind == token.Multiply || p.tok.Kind == token.Divide {
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseFactor(); err != nil {
			return err
		}
	}
	p.exit("term")
	return nil
}

// factor := IDENTIFIER | INT_CONST | "(" expression ")"
func (p *Parser) parseFactor() error {
	p.enter("factor")
	switch p.tok.Kind {
	case token.Identifier, token.IntegerConstant:
		if err := p.consume(); err != nil {
			return err
		}
	case token.OpenParen:
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseExpression(); err != nil {
			return err
		}
		if err := p.evaluate(token.CloseParen); err != nil {
			return err
		}
	default:
		return p.unexpected(token.Identifier, token.IntegerConstant, token.OpenParen)
	}
	p.exit("factor")
	return nil
}

// variable := IDENTIFIER
func (p *Parser) parseVariable() error {
	p.enter("variable")
	if err := p.evaluate(token.Identifier); err != nil {
		return err
	}
	p.exit("variable")
	return nil
}

// evaluate consumes the lookahead token if it is of the expected kind.
func (p *Parser) evaluate(k token.Kind) error {
	if p.tok.Kind != k {
		return p.unexpected(k)
	}
	return p.consume()
}

// consume accepts the lookahead token and reads the next one.
func (p *Parser) consume() error {
	if ce := p.log.Check(zapcore.DebugLevel, "consume"); ce != nil {
		ce.Write(
			zap.Stringer("kind", p.tok.Kind),
			zap.String("lexeme", p.tok.Lexeme),
			zap.Int("pos", int(p.tok.Pos)),
		)
	}
	p.last = p.tok
	p.n++
	return p.next()
}

func (p *Parser) next() error {
	tok, err := p.l.Lex()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) unexpected(expected ...token.Kind) error {
	return token.NewGrammaticalError(p.f, p.tok, expected...)
}

func (p *Parser) enter(rule string) {
	if ce := p.log.Check(zapcore.DebugLevel, "enter"); ce != nil {
		ce.Write(zap.String("rule", rule))
	}
}

func (p *Parser) exit(rule string) {
	if ce := p.log.Check(zapcore.DebugLevel, "exit"); ce != nil {
		ce.Write(zap.String("rule", rule))
	}
}
