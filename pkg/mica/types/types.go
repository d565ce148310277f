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
	"fmt"
	"math/big"
)

// Category partitions the closed set of types into their broad kinds.  Most
// analysis decisions (e.g. which constants can be cached, or which operands
// can take the exact arithmetic fast path) are made at the category level.
type Category uint8

const (
	// INTEGER identifies the machine integer types (u8..u256, i8..i256).
	INTEGER Category = iota
	// RATIONAL identifies the rational literal type, which carries an exact
	// (arbitrary precision) fractional value determined at analysis time.
	RATIONAL
	// BOOLEAN identifies the boolean type.
	BOOLEAN
	// STRING identifies the string type.
	STRING
)

// Type embodies the notion of type used during semantic analysis of a mica
// compilation unit.  The set of types is closed, such that analysis can
// dispatch over it exhaustively.
type Type interface {
	// Category returns the broad kind of this type.
	Category() Category
	// Produce a string representation of this type.
	String() string
}

// ============================================================================
// IntType
// ============================================================================

// IntType represents a machine integer type of a given bit width, which is
// either signed or unsigned.
type IntType struct {
	// Width of this type in bits (8..256, in multiples of 8).
	width uint
	// Indicates whether this type is signed, or not.
	signed bool
}

// NewUintType constructs an unsigned integer type of the given width.
func NewUintType(nbits uint) *IntType {
	if nbits == 0 || nbits > 256 || nbits%8 != 0 {
		panic(fmt.Sprintf("invalid integer width (%d)", nbits))
	}
	//
	return &IntType{nbits, false}
}

// NewIntType constructs a signed integer type of the given width.
func NewIntType(nbits uint) *IntType {
	if nbits == 0 || nbits > 256 || nbits%8 != 0 {
		panic(fmt.Sprintf("invalid integer width (%d)", nbits))
	}
	//
	return &IntType{nbits, true}
}

// Category returns the broad kind of this type.
func (p *IntType) Category() Category {
	return INTEGER
}

// Width returns the width of this type in bits.
func (p *IntType) Width() uint {
	return p.width
}

// Signed indicates whether this type is signed, or not.
func (p *IntType) Signed() bool {
	return p.signed
}

func (p *IntType) String() string {
	if p.signed {
		return fmt.Sprintf("i%d", p.width)
	}
	//
	return fmt.Sprintf("u%d", p.width)
}

// ============================================================================
// RationalType
// ============================================================================

// RationalType represents the type of a numeric constant determined during
// analysis.  Unlike the machine integer types, it carries an exact value: an
// arbitrary-precision fraction held in lowest terms with a strictly positive
// denominator (invariants maintained by big.Rat).  Exactness matters because
// folded constants feed e.g. array bounds, where a rounding error would change
// the meaning of the program.
type RationalType struct {
	value *big.Rat
}

// NewRationalType constructs the type of a numeric constant with the given
// exact value.
func NewRationalType(value *big.Rat) *RationalType {
	return &RationalType{value}
}

// Category returns the broad kind of this type.
func (p *RationalType) Category() Category {
	return RATIONAL
}

// Value returns the exact value carried by this type.
func (p *RationalType) Value() *big.Rat {
	return p.value
}

// IsWhole determines whether the value carried by this type is a whole number
// (i.e. has denominator one).
func (p *RationalType) IsWhole() bool {
	return p.value.IsInt()
}

func (p *RationalType) String() string {
	return p.value.RatString()
}

// ============================================================================
// BoolType
// ============================================================================

// BoolType represents the boolean type.
type BoolType struct{}

// NewBoolType constructs the boolean type.
func NewBoolType() *BoolType {
	return &BoolType{}
}

// Category returns the broad kind of this type.
func (p *BoolType) Category() Category {
	return BOOLEAN
}

func (p *BoolType) String() string {
	return "bool"
}

// ============================================================================
// StringType
// ============================================================================

// StringType represents the string type.
type StringType struct{}

// NewStringType constructs the string type.
func NewStringType() *StringType {
	return &StringType{}
}

// Category returns the broad kind of this type.
func (p *StringType) Category() Category {
	return STRING
}

func (p *StringType) String() string {
	return "string"
}

// ============================================================================
// Helpers
// ============================================================================

// RationalValue returns the exact value carried by a type of rational
// category.  This is only defined for such types, hence it will panic on
// anything else.
func RationalValue(t Type) *big.Rat {
	if rt, ok := t.(*RationalType); ok {
		return rt.Value()
	}
	//
	panic(fmt.Sprintf("type %s carries no rational value", t.String()))
}
