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

	"github.com/mica-lang/mica/pkg/mica/types"
)

// Binding represents an association between a name, as found in a source
// file, and the concrete declared item to which it refers.  Variable accesses
// are resolved against bindings, and the constant evaluator inspects them to
// decide whether an access can be chased to a compile-time value.
type Binding interface {
	// IsConstant determines whether this binding refers to a constant-valued
	// declaration (i.e. one whose value must be computable at compile time).
	IsConstant() bool
	// DeclaredType returns the declared type of the bound item.
	DeclaredType() types.Type
}

// Declaration represents a top-level declaration within a compilation unit.
type Declaration interface {
	Node
	// Name returns the name introduced by this declaration.
	Name() string
	// Binding returns the binding which this declaration introduces.
	Binding() Binding
}

// ============================================================================
// ConstBinding
// ============================================================================

// ConstBinding represents a constant definition: a declared type together with
// the initialiser expression which, when evaluated, produces its value.
type ConstBinding struct {
	// Name of this constant.
	Name string
	// Declared type of this constant.
	DataType types.Type
	// Initialiser expression.  This may be nil for a malformed declaration,
	// in which case the constant has no computable value.
	Value Expr
}

// IsConstant determines whether this binding refers to a constant-valued
// declaration.
func (p *ConstBinding) IsConstant() bool {
	return true
}

// DeclaredType returns the declared type of this constant.
func (p *ConstBinding) DeclaredType() types.Type {
	return p.DataType
}

// ============================================================================
// VarBinding
// ============================================================================

// VarBinding represents a (mutable) variable declaration.  Variables never
// have compile-time values.
type VarBinding struct {
	// Name of this variable.
	Name string
	// Declared type of this variable.
	DataType types.Type
}

// IsConstant determines whether this binding refers to a constant-valued
// declaration.
func (p *VarBinding) IsConstant() bool {
	return false
}

// DeclaredType returns the declared type of this variable.
func (p *VarBinding) DeclaredType() types.Type {
	return p.DataType
}

// ============================================================================
// ConstDecl
// ============================================================================

// ConstDecl represents a constant declaration, e.g. "const x : u8 = 1 + 2;".
type ConstDecl struct {
	node
	binding ConstBinding
}

// NewConstDecl constructs a new constant declaration with a given name,
// declared type and initialiser.
func NewConstDecl(name string, datatype types.Type, value Expr) *ConstDecl {
	return &ConstDecl{newNode(), ConstBinding{name, datatype, value}}
}

// Name returns the name introduced by this declaration.
func (p *ConstDecl) Name() string {
	return p.binding.Name
}

// Binding returns the binding which this declaration introduces.
func (p *ConstDecl) Binding() Binding {
	return &p.binding
}

// ConstBinding returns the (concrete) constant binding which this declaration
// introduces.
func (p *ConstDecl) ConstBinding() *ConstBinding {
	return &p.binding
}

func (p *ConstDecl) String() string {
	return fmt.Sprintf("const %s : %s = %s;", p.binding.Name,
		p.binding.DataType.String(), p.binding.Value.String())
}

// ============================================================================
// VarDecl
// ============================================================================

// VarDecl represents a variable declaration, e.g. "var x : u8;".
type VarDecl struct {
	node
	binding VarBinding
}

// NewVarDecl constructs a new variable declaration with a given name and
// declared type.
func NewVarDecl(name string, datatype types.Type) *VarDecl {
	return &VarDecl{newNode(), VarBinding{name, datatype}}
}

// Name returns the name introduced by this declaration.
func (p *VarDecl) Name() string {
	return p.binding.Name
}

// Binding returns the binding which this declaration introduces.
func (p *VarDecl) Binding() Binding {
	return &p.binding
}

func (p *VarDecl) String() string {
	return fmt.Sprintf("var %s : %s;", p.binding.Name, p.binding.DataType.String())
}
