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
package analysis

import (
	"testing"

	"github.com/mica-lang/mica/pkg/mica/ast"
	"github.com/mica-lang/mica/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func Test_Resolve_01(t *testing.T) {
	unit, srcmap := parseUnit(t, "const a : u8 = 1; const b : u8 = a;")
	reporter := source.NewReporter()
	//
	ResolveUnit(reporter, srcmap, unit)
	//
	assert.Equal(t, 0, reporter.Count())
	//
	access := unit.Declarations[1].(*ast.ConstDecl).ConstBinding().Value.(*ast.VariableAccess)
	assert.True(t, access.IsResolved())
	assert.Same(t, unit.Declarations[0].Binding(), access.Binding())
}

func Test_Resolve_02(t *testing.T) {
	// Forward references are permitted.
	unit, srcmap := parseUnit(t, "const a : u8 = b; const b : u8 = 1;")
	reporter := source.NewReporter()
	//
	ResolveUnit(reporter, srcmap, unit)
	//
	assert.Equal(t, 0, reporter.Count())
	//
	access := unit.Declarations[0].(*ast.ConstDecl).ConstBinding().Value.(*ast.VariableAccess)
	assert.True(t, access.IsResolved())
}

func Test_Resolve_03(t *testing.T) {
	// Constants may refer to variables (though such constants then have no
	// compile-time value).
	unit, srcmap := parseUnit(t, "var x : u8; const a : u8 = x;")
	reporter := source.NewReporter()
	//
	ResolveUnit(reporter, srcmap, unit)
	//
	assert.Equal(t, 0, reporter.Count())
}

func Test_Resolve_04(t *testing.T) {
	checkRecoverable(t, "const a : u8 = 1; const a : u8 = 2;", DUPLICATE_DECLARATION)
}

func Test_Resolve_05(t *testing.T) {
	checkRecoverable(t, "var x : u8; const x : u8 = 1;", DUPLICATE_DECLARATION)
}

func Test_Resolve_06(t *testing.T) {
	checkRecoverable(t, "const a : u8 = b + 1;", UNDEFINED_SYMBOL)
}

func Test_Resolve_07(t *testing.T) {
	// An unresolved access reads as non-constant, rather than aborting the
	// whole analysis.
	checkRecoverable(t, "const a : u8 = b + 1;", NOT_COMPILE_TIME_CONSTANT)
}
