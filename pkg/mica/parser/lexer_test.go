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
	"slices"
	"testing"

	"github.com/mica-lang/mica/pkg/util/source"
)

func TestLexer_00(t *testing.T) {
	checkLexer(t, "",
		Token{END_OF, source.NewSpan(0, 0)})
}

func TestLexer_01(t *testing.T) {
	checkLexer(t, "x",
		Token{IDENT, source.NewSpan(0, 1)},
		Token{END_OF, source.NewSpan(1, 1)})
}

func TestLexer_02(t *testing.T) {
	checkLexer(t, "hello",
		Token{IDENT, source.NewSpan(0, 5)},
		Token{END_OF, source.NewSpan(5, 5)})
}

func TestLexer_03(t *testing.T) {
	checkLexer(t, "123",
		Token{NUMBER, source.NewSpan(0, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func TestLexer_04(t *testing.T) {
	checkLexer(t, "1.5",
		Token{NUMBER, source.NewSpan(0, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func TestLexer_05(t *testing.T) {
	checkLexer(t, "0xff",
		Token{NUMBER, source.NewSpan(0, 4)},
		Token{END_OF, source.NewSpan(4, 4)})
}

func TestLexer_06(t *testing.T) {
	checkLexer(t, "\"hello\"",
		Token{STRING, source.NewSpan(0, 7)},
		Token{END_OF, source.NewSpan(7, 7)})
}

func TestLexer_07(t *testing.T) {
	checkLexer(t, "1 + 2",
		Token{NUMBER, source.NewSpan(0, 1)},
		Token{SYMBOL, source.NewSpan(2, 3)},
		Token{NUMBER, source.NewSpan(4, 5)},
		Token{END_OF, source.NewSpan(5, 5)})
}

func TestLexer_08(t *testing.T) {
	// Two-character symbols are preferred over their one-character prefixes.
	checkLexer(t, "<=",
		Token{SYMBOL, source.NewSpan(0, 2)},
		Token{END_OF, source.NewSpan(2, 2)})
}

func TestLexer_09(t *testing.T) {
	checkLexer(t, "< =",
		Token{SYMBOL, source.NewSpan(0, 1)},
		Token{SYMBOL, source.NewSpan(2, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func TestLexer_10(t *testing.T) {
	// Line comments are discarded.
	checkLexer(t, "1 // one\n2",
		Token{NUMBER, source.NewSpan(0, 1)},
		Token{NUMBER, source.NewSpan(9, 10)},
		Token{END_OF, source.NewSpan(10, 10)})
}

func TestLexer_11(t *testing.T) {
	checkLexer(t, "const x : u8 = 1;",
		Token{IDENT, source.NewSpan(0, 5)},
		Token{IDENT, source.NewSpan(6, 7)},
		Token{SYMBOL, source.NewSpan(8, 9)},
		Token{IDENT, source.NewSpan(10, 12)},
		Token{SYMBOL, source.NewSpan(13, 14)},
		Token{NUMBER, source.NewSpan(15, 16)},
		Token{SYMBOL, source.NewSpan(16, 17)},
		Token{END_OF, source.NewSpan(17, 17)})
}

func TestLexer_12(t *testing.T) {
	// Unrecognised characters are retained for the parser to report.
	checkLexer(t, "@",
		Token{INVALID, source.NewSpan(0, 1)},
		Token{END_OF, source.NewSpan(1, 1)})
}

func checkLexer(t *testing.T, input string, expected ...Token) {
	srcfile := source.NewSourceFile("test.mica", []byte(input))
	//
	tokens := Lex(srcfile)
	//
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	}
}
