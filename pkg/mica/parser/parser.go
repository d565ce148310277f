// Copyright the Mica Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mica-lang/mica/pkg/mica/ast"
	"github.com/mica-lang/mica/pkg/mica/token"
	"github.com/mica-lang/mica/pkg/mica/types"
	"github.com/mica-lang/mica/pkg/util/source"
)

// Diagnostic codes reported by this package.
const (
	// SYNTAX_ERROR indicates a malformed declaration or expression.
	SYNTAX_ERROR source.Code = 1101
	// UNKNOWN_TYPE indicates a type name which does not exist.
	UNKNOWN_TYPE source.Code = 1102
)

// ParseSourceFile parses a given source file into a compilation unit, along
// with a source map associating every node of the unit with its span in the
// original text.  Parsing can fail, of course, in which case one or more
// diagnostics are returned; declarations which did parse are still retained.
func ParseSourceFile(srcfile *source.File) (*ast.Unit, *source.Map[ast.Node], []source.Diagnostic) {
	p := &Parser{srcfile, Lex(srcfile), 0, source.NewSourceMap[ast.Node](*srcfile), nil}
	//
	unit := p.parseUnit()
	//
	return unit, p.srcmap, p.diagnostics
}

// Parser packages up the state necessary for parsing a single source file:
// the tokens being consumed, the source map being populated, and any
// diagnostics reported along the way.
type Parser struct {
	// Source file being parsed.
	srcfile *source.File
	// Tokens being consumed.
	tokens []Token
	// Index of the next token to consume.
	index int
	// Source map being populated.
	srcmap *source.Map[ast.Node]
	// Diagnostics reported so far.
	diagnostics []source.Diagnostic
}

func (p *Parser) parseUnit() *ast.Unit {
	var decls []ast.Declaration
	//
	for p.lookahead().Kind != END_OF {
		if decl := p.parseDeclaration(); decl != nil {
			decls = append(decls, decl)
		} else {
			// Attempt recovery at the following declaration.
			p.skipPastSemicolon()
		}
	}
	//
	return &ast.Unit{Declarations: decls}
}

// Parse either a constant or a variable declaration.
func (p *Parser) parseDeclaration() ast.Declaration {
	tok := p.lookahead()
	//
	switch p.text(tok) {
	case "const":
		return p.parseConstDecl()
	case "var":
		return p.parseVarDecl()
	default:
		p.syntaxError(tok.Span, "expected declaration")
		return nil
	}
}

// Parse "const NAME : TYPE = EXPR ;".
func (p *Parser) parseConstDecl() ast.Declaration {
	start := p.next().Span
	//
	name, ok := p.expectIdentifier()
	if !ok || !p.expectSymbol(":") {
		return nil
	}
	//
	datatype := p.parseType()
	if datatype == nil || !p.expectSymbol("=") {
		return nil
	}
	//
	value := p.parseExpr()
	if value == nil {
		return nil
	}
	//
	end := p.lookahead().Span
	if !p.expectSymbol(";") {
		return nil
	}
	//
	decl := ast.NewConstDecl(name, datatype, value)
	p.srcmap.Put(decl, source.NewSpan(start.Start(), end.End()))
	//
	return decl
}

// Parse "var NAME : TYPE ;".
func (p *Parser) parseVarDecl() ast.Declaration {
	start := p.next().Span
	//
	name, ok := p.expectIdentifier()
	if !ok || !p.expectSymbol(":") {
		return nil
	}
	//
	datatype := p.parseType()
	if datatype == nil {
		return nil
	}
	//
	end := p.lookahead().Span
	if !p.expectSymbol(";") {
		return nil
	}
	//
	decl := ast.NewVarDecl(name, datatype)
	p.srcmap.Put(decl, source.NewSpan(start.Start(), end.End()))
	//
	return decl
}

// Parse a type name (e.g. u8, i256, bool, string).
func (p *Parser) parseType() types.Type {
	tok := p.lookahead()
	//
	if tok.Kind != IDENT {
		p.syntaxError(tok.Span, "expected type")
		return nil
	}
	//
	p.next()
	//
	if datatype := typeFromName(p.text(tok)); datatype != nil {
		return datatype
	}
	//
	p.diagnostics = append(p.diagnostics, *p.srcfile.Diagnostic(UNKNOWN_TYPE, tok.Span,
		fmt.Sprintf("unknown type %s", p.text(tok))))
	//
	return nil
}

// ============================================================================
// Expressions
// ============================================================================

var (
	comparisonOps     = map[string]token.Operator{"==": token.Eq, "!=": token.Neq,
		"<": token.Lt, "<=": token.Leq, ">": token.Gt, ">=": token.Geq}
	bitOrOps          = map[string]token.Operator{"|": token.BitOr}
	bitXorOps         = map[string]token.Operator{"^": token.BitXor}
	bitAndOps         = map[string]token.Operator{"&": token.BitAnd}
	additiveOps       = map[string]token.Operator{"+": token.Add, "-": token.Sub}
	multiplicativeOps = map[string]token.Operator{"*": token.Mul, "/": token.Div,
		"%": token.Mod}
	unaryOps          = map[string]token.Operator{"-": token.Neg, "~": token.BitNot,
		"!": token.Not}
)

func (p *Parser) parseExpr() ast.Expr {
	lhs := p.parseArithmetic()
	//
	if lhs == nil {
		return nil
	}
	// Comparisons are non-associative, hence this level does not iterate.
	if op, ok := comparisonOps[p.symbolText()]; ok {
		p.next()
		//
		rhs := p.parseArithmetic()
		if rhs == nil {
			return nil
		}
		//
		return p.spanning(ast.NewBinaryExpr(op, lhs, rhs), lhs, rhs)
	}
	//
	return lhs
}

// Parse the arithmetic / bitwise precedence chain below comparisons.
func (p *Parser) parseArithmetic() ast.Expr {
	return p.parseBinary(bitOrOps, func() ast.Expr {
		return p.parseBinary(bitXorOps, func() ast.Expr {
			return p.parseBinary(bitAndOps, func() ast.Expr {
				return p.parseBinary(additiveOps, func() ast.Expr {
					return p.parseBinary(multiplicativeOps, p.parseUnary)
				})
			})
		})
	})
}

// Parse a left-associative sequence of binary operations at one precedence
// level, where the given operand function parses the next level down.
func (p *Parser) parseBinary(ops map[string]token.Operator, operand func() ast.Expr) ast.Expr {
	lhs := operand()
	//
	for lhs != nil {
		op, ok := ops[p.symbolText()]
		if !ok {
			break
		}
		//
		p.next()
		//
		rhs := operand()
		if rhs == nil {
			return nil
		}
		//
		lhs = p.spanning(ast.NewBinaryExpr(op, lhs, rhs), lhs, rhs)
	}
	//
	return lhs
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.lookahead()
	//
	if op, ok := unaryOps[p.symbolText()]; ok {
		p.next()
		//
		arg := p.parseUnary()
		if arg == nil {
			return nil
		}
		//
		expr := ast.NewUnaryExpr(op, arg)
		argSpan := p.srcmap.Get(arg)
		p.srcmap.Put(expr, source.NewSpan(tok.Span.Start(), argSpan.End()))
		//
		return expr
	}
	//
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.lookahead()
	//
	switch tok.Kind {
	case NUMBER:
		p.next()
		return p.spanned(ast.NewLiteral(token.NumberLiteral, p.text(tok)), tok.Span)
	case STRING:
		p.next()
		return p.spanned(ast.NewLiteral(token.StringLiteral, unquote(p.text(tok))), tok.Span)
	case IDENT:
		p.next()
		//
		if text := p.text(tok); text == "true" || text == "false" {
			return p.spanned(ast.NewLiteral(token.BoolLiteral, text), tok.Span)
		} else {
			return p.spanned(ast.NewVariableAccess(text), tok.Span)
		}
	case SYMBOL:
		switch p.text(tok) {
		case "(":
			return p.parseTuple(")", false)
		case "[":
			return p.parseTuple("]", true)
		}
	}
	//
	p.syntaxError(tok.Span, "expected expression")
	//
	return nil
}

// Parse a parenthesised tuple or an inline array, upto a given closing
// symbol.
func (p *Parser) parseTuple(closing string, array bool) ast.Expr {
	var components []ast.Expr
	//
	start := p.next().Span
	//
	for {
		component := p.parseExpr()
		if component == nil {
			return nil
		}
		//
		components = append(components, component)
		//
		if !p.matchSymbol(",") {
			break
		}
	}
	//
	end := p.lookahead().Span
	if !p.expectSymbol(closing) {
		return nil
	}
	//
	return p.spanned(ast.NewTupleExpr(components, array),
		source.NewSpan(start.Start(), end.End()))
}

// ============================================================================
// Helpers
// ============================================================================

// Register a node against a given span, passing the node through.
func (p *Parser) spanned(expr ast.Expr, span source.Span) ast.Expr {
	p.srcmap.Put(expr, span)
	return expr
}

// Register a node against the span covering two existing nodes, passing the
// node through.
func (p *Parser) spanning(expr ast.Expr, from ast.Node, to ast.Node) ast.Expr {
	var (
		fromSpan = p.srcmap.Get(from)
		toSpan   = p.srcmap.Get(to)
	)
	//
	p.srcmap.Put(expr, source.NewSpan(fromSpan.Start(), toSpan.End()))
	//
	return expr
}

// lookahead returns the next token without consuming it.
func (p *Parser) lookahead() Token {
	return p.tokens[p.index]
}

// next consumes and returns the next token.
func (p *Parser) next() Token {
	tok := p.tokens[p.index]
	//
	if tok.Kind != END_OF {
		p.index++
	}
	//
	return tok
}

// text extracts the original text of a given token.
func (p *Parser) text(tok Token) string {
	runes := p.srcfile.Contents()
	return string(runes[tok.Span.Start():tok.Span.End()])
}

// symbolText returns the text of the next token provided it is a symbol, and
// the empty string otherwise.
func (p *Parser) symbolText() string {
	if tok := p.lookahead(); tok.Kind == SYMBOL {
		return p.text(tok)
	}
	//
	return ""
}

// matchSymbol consumes the next token provided it is a given symbol.
func (p *Parser) matchSymbol(symbol string) bool {
	if p.symbolText() == symbol {
		p.next()
		return true
	}
	//
	return false
}

// expectSymbol consumes the next token, which must be a given symbol,
// reporting a diagnostic otherwise.
func (p *Parser) expectSymbol(symbol string) bool {
	if p.matchSymbol(symbol) {
		return true
	}
	//
	p.syntaxError(p.lookahead().Span, fmt.Sprintf("expected %s", symbol))
	//
	return false
}

// expectIdentifier consumes the next token, which must be an identifier,
// reporting a diagnostic otherwise.
func (p *Parser) expectIdentifier() (string, bool) {
	tok := p.lookahead()
	//
	if tok.Kind != IDENT {
		p.syntaxError(tok.Span, "expected identifier")
		return "", false
	}
	//
	p.next()
	//
	return p.text(tok), true
}

// syntaxError reports a diagnostic at a given span.
func (p *Parser) syntaxError(span source.Span, msg string) {
	p.diagnostics = append(p.diagnostics, *p.srcfile.Diagnostic(SYNTAX_ERROR, span, msg))
}

// skipPastSemicolon advances beyond the next semicolon (or to the end of the
// file), as a crude recovery point after a malformed declaration.
func (p *Parser) skipPastSemicolon() {
	for {
		tok := p.next()
		//
		if tok.Kind == END_OF || (tok.Kind == SYMBOL && p.text(tok) == ";") {
			return
		}
	}
}

// typeFromName maps the name of a type to the type itself, or nil if no such
// type exists.  Integer types are u8..u256 and i8..i256, in multiples of
// eight bits.
func typeFromName(name string) types.Type {
	switch name {
	case "bool":
		return types.NewBoolType()
	case "string":
		return types.NewStringType()
	}
	//
	if len(name) > 1 && (name[0] == 'u' || name[0] == 'i') {
		nbits, err := strconv.Atoi(name[1:])
		//
		if err != nil || nbits == 0 || nbits > 256 || nbits%8 != 0 {
			return nil
		} else if name[0] == 'u' {
			return types.NewUintType(uint(nbits))
		}
		//
		return types.NewIntType(uint(nbits))
	}
	//
	return nil
}

// unquote strips the enclosing quotes from a string literal and resolves its
// escape sequences.
func unquote(text string) string {
	// Drop enclosing quotes.
	text = strings.TrimPrefix(text, "\"")
	text = strings.TrimSuffix(text, "\"")
	//
	var builder strings.Builder
	//
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) {
			i++
			//
			switch text[i] {
			case 'n':
				builder.WriteByte('\n')
			case 't':
				builder.WriteByte('\t')
			default:
				builder.WriteByte(text[i])
			}
		} else {
			builder.WriteByte(text[i])
		}
	}
	//
	return builder.String()
}
