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

// Package analysis implements the semantic analysis passes run over a parsed
// compilation unit: name resolution, followed by constant evaluation of every
// constant declaration.  The constant evaluator is the centrepiece: it
// determines, for each expression required to be a compile-time constant, its
// exact value as an arbitrary-precision rational number.
package analysis

import (
	"github.com/mica-lang/mica/pkg/util/source"
)

// Diagnostic codes reported by this package.  Codes are stable: a given
// condition always reports the same code across releases.
const (
	// DUPLICATE_DECLARATION indicates two declarations of the same name within
	// one compilation unit.
	DUPLICATE_DECLARATION source.Code = 2101
	// UNDEFINED_SYMBOL indicates an access to a name with no corresponding
	// declaration.
	UNDEFINED_SYMBOL source.Code = 2102
	// DIVISION_BY_ZERO indicates a constant expression whose evaluation
	// divides by zero.  This is recoverable: the offending expression simply
	// has no value, and analysis continues.
	DIVISION_BY_ZERO source.Code = 2201
	// INCOMPATIBLE_OPERATOR_TYPES indicates a binary operator applied to a
	// combination of operand types for which no common type exists.  This is
	// fatal to the in-progress evaluation.
	INCOMPATIBLE_OPERATOR_TYPES source.Code = 2202
	// CYCLIC_CONSTANT_DEFINITION indicates a constant whose definition refers
	// (directly or indirectly) back to itself, or a reference chain deeper
	// than the evaluator supports.  This is fatal to the in-progress
	// evaluation.
	CYCLIC_CONSTANT_DEFINITION source.Code = 2203
	// NOT_COMPILE_TIME_CONSTANT indicates a constant declaration whose
	// initialiser could not be evaluated to a compile-time value.
	NOT_COMPILE_TIME_CONSTANT source.Code = 2204
	// FRACTIONAL_CONSTANT_VALUE indicates an integer-typed constant whose
	// initialiser evaluated to a fractional value.  This is fatal: the
	// evaluator requires integer-typed constants to hold whole numbers, hence
	// letting such a value through would corrupt every later evaluation which
	// refers to the constant.
	FRACTIONAL_CONSTANT_VALUE source.Code = 2205
)
