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
package ast

import (
	"fmt"
	"strings"

	"github.com/mica-lang/mica/pkg/mica/token"
)

// Expr represents an arbitrary expression within a compilation unit.  The set
// of expression forms is closed, such that analysis passes can dispatch over
// it exhaustively (and the compiler will flag any form added later which a
// pass fails to handle).
type Expr interface {
	Node
	// implemented by every expression form in this package, and nothing else.
	isExpr()
}

// ============================================================================
// UnaryExpr
// ============================================================================

// UnaryExpr represents the application of a unary operator (e.g. negation) to
// a sub-expression.
type UnaryExpr struct {
	node
	// Operator being applied.
	Op token.Operator
	// Operand sub-expression.
	Arg Expr
}

// NewUnaryExpr constructs a new unary operation.
func NewUnaryExpr(op token.Operator, arg Expr) *UnaryExpr {
	return &UnaryExpr{newNode(), op, arg}
}

func (e *UnaryExpr) isExpr() {}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("%s%s", e.Op.String(), e.Arg.String())
}

// ============================================================================
// BinaryExpr
// ============================================================================

// BinaryExpr represents the application of a binary operator to two operand
// sub-expressions.
type BinaryExpr struct {
	node
	// Operator being applied.
	Op token.Operator
	// Left-hand operand.
	Lhs Expr
	// Right-hand operand.
	Rhs Expr
}

// NewBinaryExpr constructs a new binary operation.
func NewBinaryExpr(op token.Operator, lhs Expr, rhs Expr) *BinaryExpr {
	return &BinaryExpr{newNode(), op, lhs, rhs}
}

func (e *BinaryExpr) isExpr() {}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Lhs.String(), e.Op.String(), e.Rhs.String())
}

// ============================================================================
// Literal
// ============================================================================

// Literal represents a literal value within an expression, retained in its
// original lexical form.  Conversion into a typed value is the business of the
// type facility, not the tree.
type Literal struct {
	node
	// Lexical kind of this literal.
	Kind token.LiteralKind
	// Original text of this literal (excluding any enclosing quotes).
	Text string
}

// NewLiteral constructs a new literal of a given kind from its original text.
func NewLiteral(kind token.LiteralKind, text string) *Literal {
	return &Literal{newNode(), kind, text}
}

func (e *Literal) isExpr() {}

func (e *Literal) String() string {
	if e.Kind == token.StringLiteral {
		return fmt.Sprintf("%q", e.Text)
	}
	//
	return e.Text
}

// ============================================================================
// VariableAccess
// ============================================================================

// VariableAccess represents reading the value of a given named declaration.
// Accesses begin life unresolved; a prior name-resolution pass associates each
// with the binding of the declaration to which it refers.
type VariableAccess struct {
	node
	// Name being accessed.
	Name string
	// Binding to which this access was resolved, or nil.
	binding Binding
}

// NewVariableAccess constructs a new (unresolved) variable access.
func NewVariableAccess(name string) *VariableAccess {
	return &VariableAccess{newNode(), name, nil}
}

// IsResolved checks whether this access has been resolved already, or not.
func (e *VariableAccess) IsResolved() bool {
	return e.binding != nil
}

// Resolve this access by associating it with the binding of the declaration
// to which it refers.
func (e *VariableAccess) Resolve(binding Binding) {
	if binding == nil {
		panic("empty binding")
	} else if e.binding != nil {
		panic("already resolved")
	}
	//
	e.binding = binding
}

// Binding gets the binding associated with this access.  This returns nil if
// the access has not already been resolved.
func (e *VariableAccess) Binding() Binding {
	return e.binding
}

func (e *VariableAccess) isExpr() {}

func (e *VariableAccess) String() string {
	return e.Name
}

// ============================================================================
// TupleExpr
// ============================================================================

// TupleExpr represents either a parenthesised sequence of one or more
// component expressions (e.g. "(1, 2)"), or an inline array (e.g. "[1, 2]").
// Observe that a parenthesised single expression is represented as a
// one-component tuple, retaining the distinction for analysis.
type TupleExpr struct {
	node
	// Component expressions of this tuple.
	Components []Expr
	// Indicates an inline array (bracket) form, rather than a parenthesised
	// tuple.
	Array bool
}

// NewTupleExpr constructs a new tuple from its component expressions.
func NewTupleExpr(components []Expr, array bool) *TupleExpr {
	return &TupleExpr{newNode(), components, array}
}

// IsInlineArray determines whether this tuple is an inline array, or not.
func (e *TupleExpr) IsInlineArray() bool {
	return e.Array
}

func (e *TupleExpr) isExpr() {}

func (e *TupleExpr) String() string {
	var builder strings.Builder
	//
	if e.Array {
		builder.WriteString("[")
	} else {
		builder.WriteString("(")
	}
	//
	for i, c := range e.Components {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(c.String())
	}
	//
	if e.Array {
		builder.WriteString("]")
	} else {
		builder.WriteString(")")
	}
	//
	return builder.String()
}
