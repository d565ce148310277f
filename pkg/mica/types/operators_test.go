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
	"testing"

	"github.com/mica-lang/mica/pkg/mica/token"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Literals
// ============================================================================

func Test_Literal_01(t *testing.T) {
	checkLiteral(t, "0", "0")
}

func Test_Literal_02(t *testing.T) {
	checkLiteral(t, "42", "42")
}

func Test_Literal_03(t *testing.T) {
	checkLiteral(t, "1.5", "3/2")
}

func Test_Literal_04(t *testing.T) {
	checkLiteral(t, "0xff", "255")
}

func Test_Literal_05(t *testing.T) {
	checkLiteral(t, "0xDEADBEEF", "3735928559")
}

func Test_Literal_06(t *testing.T) {
	// Larger than any machine integer, but exact nonetheless.
	checkLiteral(t, "10000000000000000000000000000000000000001",
		"10000000000000000000000000000000000000001")
}

func Test_Literal_07(t *testing.T) {
	assert.Equal(t, BOOLEAN, ForLiteral(token.BoolLiteral, "true").Category())
	assert.Equal(t, STRING, ForLiteral(token.StringLiteral, "hello").Category())
}

// ============================================================================
// Unary operators
// ============================================================================

func Test_Unary_01(t *testing.T) {
	result := UnaryOperatorResult(rational("5"), token.Neg)
	assert.Equal(t, "-5", result.String())
}

func Test_Unary_02(t *testing.T) {
	result := UnaryOperatorResult(rational("3/2"), token.Neg)
	assert.Equal(t, "-3/2", result.String())
}

func Test_Unary_03(t *testing.T) {
	result := UnaryOperatorResult(rational("5"), token.BitNot)
	assert.Equal(t, "-6", result.String())
}

func Test_Unary_04(t *testing.T) {
	// Complement undefined on fractions.
	assert.Nil(t, UnaryOperatorResult(rational("3/2"), token.BitNot))
}

func Test_Unary_05(t *testing.T) {
	// Negation undefined on unsigned integers.
	assert.Nil(t, UnaryOperatorResult(NewUintType(8), token.Neg))
	assert.Equal(t, "i8", UnaryOperatorResult(NewIntType(8), token.Neg).String())
}

func Test_Unary_06(t *testing.T) {
	assert.Equal(t, "bool", UnaryOperatorResult(NewBoolType(), token.Not).String())
	assert.Nil(t, UnaryOperatorResult(NewBoolType(), token.Neg))
}

// ============================================================================
// Binary operators (rational operands)
// ============================================================================

func Test_Binary_01(t *testing.T) {
	checkBinary(t, "1", token.Add, "2", "3")
}

func Test_Binary_02(t *testing.T) {
	checkBinary(t, "1", token.Sub, "2", "-1")
}

func Test_Binary_03(t *testing.T) {
	checkBinary(t, "6", token.Mul, "7", "42")
}

func Test_Binary_04(t *testing.T) {
	checkBinary(t, "1", token.Div, "3", "1/3")
}

func Test_Binary_05(t *testing.T) {
	checkBinary(t, "7", token.Mod, "3", "1")
}

func Test_Binary_06(t *testing.T) {
	// Remainder takes the sign of the dividend.
	checkBinary(t, "-7", token.Mod, "3", "-1")
	checkBinary(t, "7", token.Mod, "-3", "1")
}

func Test_Binary_07(t *testing.T) {
	checkBinary(t, "15/2", token.Mod, "2", "3/2")
}

func Test_Binary_08(t *testing.T) {
	checkBinary(t, "6", token.BitAnd, "3", "2")
	checkBinary(t, "6", token.BitOr, "3", "7")
	checkBinary(t, "6", token.BitXor, "3", "5")
}

func Test_Binary_09(t *testing.T) {
	// Division (and remainder) by zero have no result.
	assert.Nil(t, BinaryOperatorResult(rational("1"), token.Div, rational("0")))
	assert.Nil(t, BinaryOperatorResult(rational("1"), token.Mod, rational("0")))
}

func Test_Binary_10(t *testing.T) {
	// Bitwise operators undefined on fractions.
	assert.Nil(t, BinaryOperatorResult(rational("13/2"), token.BitAnd, rational("3")))
}

func Test_Binary_11(t *testing.T) {
	result := BinaryOperatorResult(rational("1"), token.Lt, rational("2"))
	assert.Equal(t, BOOLEAN, result.Category())
}

// ============================================================================
// Binary operators (integer / mixed operands)
// ============================================================================

func Test_Binary_20(t *testing.T) {
	// Same signedness joins to the wider type.
	checkJoin(t, NewUintType(8), NewUintType(16), "u16")
	checkJoin(t, NewIntType(32), NewIntType(16), "i32")
}

func Test_Binary_21(t *testing.T) {
	// Unsigned fits into a strictly wider signed type.
	checkJoin(t, NewUintType(8), NewIntType(16), "i16")
	checkJoin(t, NewIntType(16), NewUintType(8), "i16")
}

func Test_Binary_22(t *testing.T) {
	// Equal-width mixed signedness has no common type.
	assert.Nil(t, BinaryOperatorResult(NewUintType(8), token.Add, NewIntType(8)))
	assert.Nil(t, BinaryOperatorResult(NewUintType(16), token.Add, NewIntType(8)))
}

func Test_Binary_23(t *testing.T) {
	// Comparisons of compatible integers are boolean.
	result := BinaryOperatorResult(NewUintType(8), token.Leq, NewUintType(16))
	assert.Equal(t, BOOLEAN, result.Category())
}

func Test_Binary_24(t *testing.T) {
	// A whole-number constant is compatible with any integer type.
	result := BinaryOperatorResult(NewUintType(8), token.Add, rational("5"))
	assert.Equal(t, "u8", result.String())
	//
	result = BinaryOperatorResult(rational("5"), token.Add, NewUintType(8))
	assert.Equal(t, "u8", result.String())
}

func Test_Binary_25(t *testing.T) {
	// A fractional constant is not.
	assert.Nil(t, BinaryOperatorResult(NewUintType(8), token.Add, rational("3/2")))
}

func Test_Binary_26(t *testing.T) {
	assert.Equal(t, BOOLEAN,
		BinaryOperatorResult(NewBoolType(), token.Eq, NewBoolType()).Category())
	assert.Nil(t, BinaryOperatorResult(NewBoolType(), token.Add, NewBoolType()))
}

func Test_Binary_27(t *testing.T) {
	assert.Equal(t, BOOLEAN,
		BinaryOperatorResult(NewStringType(), token.Neq, NewStringType()).Category())
	assert.Nil(t, BinaryOperatorResult(NewStringType(), token.Add, NewStringType()))
}

// ============================================================================
// Helpers
// ============================================================================

func rational(text string) *RationalType {
	value, ok := new(big.Rat).SetString(text)
	//
	if !ok {
		panic("malformed rational")
	}
	//
	return NewRationalType(value)
}

func checkLiteral(t *testing.T, text string, expected string) {
	result := ForLiteral(token.NumberLiteral, text)
	//
	if result == nil {
		t.Fatalf("literal %s failed to parse", text)
	}
	//
	assert.Equal(t, expected, result.String())
}

func checkBinary(t *testing.T, lhs string, op token.Operator, rhs string, expected string) {
	result := BinaryOperatorResult(rational(lhs), op, rational(rhs))
	//
	if result == nil {
		t.Fatalf("%s %s %s has no result", lhs, op.String(), rhs)
	}
	//
	assert.Equal(t, expected, result.String())
}

func checkJoin(t *testing.T, lhs *IntType, rhs *IntType, expected string) {
	result := BinaryOperatorResult(lhs, token.Add, rhs)
	//
	if result == nil {
		t.Fatalf("%s + %s has no result", lhs.String(), rhs.String())
	}
	//
	assert.Equal(t, expected, result.String())
}
