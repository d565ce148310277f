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
package types

import (
	"math/big"
	"strings"

	"github.com/mica-lang/mica/pkg/mica/token"
)

// ForLiteral determines the type of a literal with a given lexical kind and
// text.  Number literals produce a rational type carrying their exact value.
// This returns nil if the text is malformed, though a correct lexer will never
// produce such a literal.
func ForLiteral(kind token.LiteralKind, text string) Type {
	switch kind {
	case token.NumberLiteral:
		if value := parseNumber(text); value != nil {
			return NewRationalType(value)
		}
		//
		return nil
	case token.StringLiteral:
		return NewStringType()
	case token.BoolLiteral:
		return NewBoolType()
	default:
		panic("unreachable")
	}
}

// UnaryOperatorResult determines the type resulting from applying a given
// unary operator to a value of a given type.  If the operator is not
// applicable, then nil is returned.
func UnaryOperatorResult(t Type, op token.Operator) Type {
	switch t := t.(type) {
	case *RationalType:
		return rationalUnaryResult(t, op)
	case *IntType:
		switch op {
		case token.Neg:
			if t.Signed() {
				return t
			}
		case token.BitNot:
			return t
		}
	case *BoolType:
		if op == token.Not {
			return t
		}
	}
	// Not applicable
	return nil
}

// BinaryOperatorResult determines the common type resulting from applying a
// given binary operator to values of two given types.  If no common type
// exists (i.e. the operator is not applicable to this combination), then nil
// is returned.  Observe that, for two rational operands, the result is folded
// into a fresh rational type carrying the exact result value.
func BinaryOperatorResult(lhs Type, op token.Operator, rhs Type) Type {
	switch lhs := lhs.(type) {
	case *RationalType:
		switch rhs := rhs.(type) {
		case *RationalType:
			return rationalBinaryResult(lhs, op, rhs)
		case *IntType:
			return mixedBinaryResult(rhs, op, lhs)
		}
	case *IntType:
		switch rhs := rhs.(type) {
		case *IntType:
			return integerBinaryResult(lhs, op, rhs)
		case *RationalType:
			return mixedBinaryResult(lhs, op, rhs)
		}
	case *BoolType:
		if _, ok := rhs.(*BoolType); ok && (op == token.Eq || op == token.Neq) {
			return lhs
		}
	case *StringType:
		if _, ok := rhs.(*StringType); ok && (op == token.Eq || op == token.Neq) {
			return NewBoolType()
		}
	}
	// Not applicable
	return nil
}

// Determine the result of a unary operator applied to a rational constant,
// folding the exact value into the result type.
func rationalUnaryResult(t *RationalType, op token.Operator) Type {
	switch op {
	case token.Neg:
		var value big.Rat
		//
		value.Neg(t.Value())
		//
		return NewRationalType(&value)
	case token.BitNot:
		// Complement is only defined on whole numbers.
		if t.IsWhole() {
			var num big.Int
			//
			num.Not(t.Value().Num())
			//
			return NewRationalType(new(big.Rat).SetInt(&num))
		}
	}
	// Not applicable
	return nil
}

// Determine the result of a binary operator applied to two rational constants.
// Arithmetic and bitwise operators fold the exact result value into the result
// type; comparisons produce bool.  Failing cases (division by zero, bitwise on
// fractions) have no result type.
func rationalBinaryResult(lhs *RationalType, op token.Operator, rhs *RationalType) Type {
	if op.IsComparison() {
		return NewBoolType()
	} else if value := foldRational(lhs.Value(), op, rhs.Value()); value != nil {
		return NewRationalType(value)
	}
	//
	return nil
}

// Determine the result of a binary operator applied to two machine integer
// operands, which is their common type (should one exist).
func integerBinaryResult(lhs *IntType, op token.Operator, rhs *IntType) Type {
	common := joinIntTypes(lhs, rhs)
	//
	if common == nil {
		return nil
	} else if op.IsComparison() {
		return NewBoolType()
	}
	//
	return common
}

// Determine the result of a binary operator applied to a machine integer
// operand and a rational constant (in either order).  The constant must be a
// whole number to be compatible with an integer type.
func mixedBinaryResult(lhs *IntType, op token.Operator, rhs *RationalType) Type {
	if !rhs.IsWhole() {
		return nil
	} else if op.IsComparison() {
		return NewBoolType()
	}
	//
	return lhs
}

// Join two integer types into their smallest common type, or nil if no such
// type exists.  Types of the same signedness join to the wider of the two,
// whilst an unsigned type fits into any strictly wider signed type.
func joinIntTypes(lhs *IntType, rhs *IntType) *IntType {
	switch {
	case lhs.Signed() == rhs.Signed():
		if lhs.Width() >= rhs.Width() {
			return lhs
		}
		//
		return rhs
	case lhs.Signed():
		if lhs.Width() > rhs.Width() {
			return lhs
		}
	case rhs.Signed():
		if rhs.Width() > lhs.Width() {
			return rhs
		}
	}
	// Incompatible signedness
	return nil
}

// Fold a binary operator over two exact rational values, producing nil if the
// operator fails on them (e.g. division by zero, or a bitwise operator applied
// to a fraction).
func foldRational(lhs *big.Rat, op token.Operator, rhs *big.Rat) *big.Rat {
	var value big.Rat
	//
	switch op {
	case token.Add:
		value.Add(lhs, rhs)
	case token.Sub:
		value.Sub(lhs, rhs)
	case token.Mul:
		value.Mul(lhs, rhs)
	case token.Div:
		if rhs.Sign() == 0 {
			return nil
		}
		//
		value.Quo(lhs, rhs)
	case token.Mod:
		if rhs.Sign() == 0 {
			return nil
		}
		// Truncating remainder, generalised to rationals.
		value.Quo(lhs, rhs)
		value.SetInt(truncateToInt(&value))
		value.Mul(&value, rhs)
		value.Sub(lhs, &value)
	case token.BitOr, token.BitAnd, token.BitXor:
		// Bitwise operators are only defined on whole numbers.
		if !lhs.IsInt() || !rhs.IsInt() {
			return nil
		}
		//
		var num big.Int
		//
		switch op {
		case token.BitOr:
			num.Or(lhs.Num(), rhs.Num())
		case token.BitAnd:
			num.And(lhs.Num(), rhs.Num())
		default:
			num.Xor(lhs.Num(), rhs.Num())
		}
		//
		value.SetInt(&num)
	default:
		panic("unreachable")
	}
	//
	return &value
}

// Truncate a rational value towards zero, producing a whole number.  Observe
// that big.Int division already truncates towards zero, which is exactly the
// semantic required here.
func truncateToInt(value *big.Rat) *big.Int {
	var quotient big.Int
	//
	quotient.Quo(value.Num(), value.Denom())
	//
	return &quotient
}

// Parse the text of a number literal into an exact rational value, or nil if
// the text is malformed.  Hexadecimal literals are always whole numbers,
// whilst decimal literals may have a fractional part (e.g. 1.5).
func parseNumber(text string) *big.Rat {
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		var num big.Int
		//
		if _, ok := num.SetString(text[2:], 16); !ok {
			return nil
		}
		//
		return new(big.Rat).SetInt(&num)
	}
	//
	if value, ok := new(big.Rat).SetString(text); ok {
		return value
	}
	//
	return nil
}
