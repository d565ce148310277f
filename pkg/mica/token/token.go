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
package token

// Operator identifies one of the (closed set of) unary or binary operators of
// the language.
type Operator uint8

const (
	// Add represents integer / rational addition (+).
	Add Operator = iota
	// Sub represents integer / rational subtraction (-).
	Sub
	// Mul represents integer / rational multiplication (*).
	Mul
	// Div represents exact division (/).
	Div
	// Mod represents truncating remainder (%).
	Mod
	// BitOr represents bitwise disjunction (|).
	BitOr
	// BitAnd represents bitwise conjunction (&).
	BitAnd
	// BitXor represents bitwise exclusive disjunction (^).
	BitXor
	// Eq represents the equality comparison (==).
	Eq
	// Neq represents the non-equality comparison (!=).
	Neq
	// Lt represents the less-than comparison (<).
	Lt
	// Leq represents the less-than-or-equals comparison (<=).
	Leq
	// Gt represents the greater-than comparison (>).
	Gt
	// Geq represents the greater-than-or-equals comparison (>=).
	Geq
	// Neg represents unary negation (-).
	Neg
	// BitNot represents unary bitwise complement (~).
	BitNot
	// Not represents unary logical negation (!).
	Not
)

// IsComparison determines whether or not this operator is a comparison, since
// comparisons always produce a boolean result regardless of their operand
// types.
func (p Operator) IsComparison() bool {
	return p >= Eq && p <= Geq
}

// IsUnary determines whether or not this operator is a unary operator.
func (p Operator) IsUnary() bool {
	return p >= Neg
}

// String returns the source-level symbol for this operator.
func (p Operator) String() string {
	switch p {
	case Add:
		return "+"
	case Sub, Neg:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case BitOr:
		return "|"
	case BitAnd:
		return "&"
	case BitXor:
		return "^"
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Lt:
		return "<"
	case Leq:
		return "<="
	case Gt:
		return ">"
	case Geq:
		return ">="
	case BitNot:
		return "~"
	case Not:
		return "!"
	default:
		panic("unreachable")
	}
}

// LiteralKind identifies the lexical shape of a literal expression.
type LiteralKind uint8

const (
	// NumberLiteral covers integer and decimal literals (e.g. 123, 0xff, 1.5).
	NumberLiteral LiteralKind = iota
	// StringLiteral covers double-quoted string literals.
	StringLiteral
	// BoolLiteral covers the true / false literals.
	BoolLiteral
)
