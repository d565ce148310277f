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
	"github.com/mica-lang/mica/pkg/util/source"
)

// Kinds of token produced by the lexer.
const (
	// END_OF signals the end of the token stream.
	END_OF uint = iota
	// IDENT covers identifiers and keywords.
	IDENT
	// NUMBER covers integer, decimal and hexadecimal literals.
	NUMBER
	// STRING covers double-quoted string literals.
	STRING
	// SYMBOL covers operators and punctuation.
	SYMBOL
	// INVALID covers any character the lexer cannot make sense of.
	INVALID
)

// Token associates a kind with a given range of characters in the source file
// being lexed.
type Token struct {
	// Kind of this token.
	Kind uint
	// Span of this token within the original text.
	Span source.Span
}

// Lex a given source file into a sequence of tokens, always ending with an
// END_OF token.  Whitespace and line comments are discarded.  Unrecognised
// characters are retained as INVALID tokens, for the parser to report.
func Lex(srcfile *source.File) []Token {
	var (
		tokens []Token
		runes  = srcfile.Contents()
		index  = 0
	)
	//
	for index < len(runes) {
		r := runes[index]
		//
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			index++
		case r == '/' && index+1 < len(runes) && runes[index+1] == '/':
			index = scanLineComment(runes, index)
		case isIdentStart(r):
			end := scanIdentifier(runes, index)
			tokens = append(tokens, Token{IDENT, source.NewSpan(index, end)})
			index = end
		case isDigit(r):
			end := scanNumber(runes, index)
			tokens = append(tokens, Token{NUMBER, source.NewSpan(index, end)})
			index = end
		case r == '"':
			end := scanString(runes, index)
			tokens = append(tokens, Token{STRING, source.NewSpan(index, end)})
			index = end
		default:
			end := scanSymbol(runes, index)
			//
			if end == index {
				tokens = append(tokens, Token{INVALID, source.NewSpan(index, index + 1)})
				index++
			} else {
				tokens = append(tokens, Token{SYMBOL, source.NewSpan(index, end)})
				index = end
			}
		}
	}
	// Terminate the stream.
	return append(tokens, Token{END_OF, source.NewSpan(index, index)})
}

// Scan past a line comment, upto (but excluding) the terminating newline.
func scanLineComment(runes []rune, index int) int {
	for index < len(runes) && runes[index] != '\n' {
		index++
	}
	//
	return index
}

// Scan an identifier or keyword.
func scanIdentifier(runes []rune, index int) int {
	index++
	//
	for index < len(runes) && (isIdentStart(runes[index]) || isDigit(runes[index])) {
		index++
	}
	//
	return index
}

// Scan a number literal: either hexadecimal (0x prefix), or decimal with an
// optional fractional part.
func scanNumber(runes []rune, index int) int {
	if runes[index] == '0' && index+1 < len(runes) &&
		(runes[index+1] == 'x' || runes[index+1] == 'X') {
		index += 2
		//
		for index < len(runes) && isHexDigit(runes[index]) {
			index++
		}
		//
		return index
	}
	//
	for index < len(runes) && isDigit(runes[index]) {
		index++
	}
	// Fractional part requires at least one digit after the point, otherwise
	// the point belongs to whatever follows.
	if index+1 < len(runes) && runes[index] == '.' && isDigit(runes[index+1]) {
		index++
		//
		for index < len(runes) && isDigit(runes[index]) {
			index++
		}
	}
	//
	return index
}

// Scan a string literal, including its enclosing quotes.  An unterminated
// string simply runs to the end of the line (or file), for the parser to
// report.
func scanString(runes []rune, index int) int {
	index++
	//
	for index < len(runes) && runes[index] != '"' && runes[index] != '\n' {
		if runes[index] == '\\' && index+1 < len(runes) {
			index++
		}
		//
		index++
	}
	// Include closing quote (if present).
	if index < len(runes) && runes[index] == '"' {
		index++
	}
	//
	return index
}

// Scan an operator or punctuation symbol, preferring two-character forms
// (e.g. "==") over their one-character prefixes.
func scanSymbol(runes []rune, index int) int {
	r := runes[index]
	// Two-character symbols.
	if index+1 < len(runes) && runes[index+1] == '=' {
		switch r {
		case '=', '!', '<', '>':
			return index + 2
		}
	}
	// One-character symbols.
	switch r {
	case '+', '-', '*', '/', '%', '|', '&', '^', '~', '!', '<', '>',
		'=', '(', ')', '[', ']', ',', ':', ';':
		return index + 1
	}
	// Nothing recognised.
	return index
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
