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
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/mica-lang/mica/pkg/mica/ast"
	"github.com/mica-lang/mica/pkg/mica/types"
	"github.com/mica-lang/mica/pkg/util/source"
)

// ConstantValue associates a constant declaration with the result of
// evaluating its initialiser.
type ConstantValue struct {
	// Declaration in question.
	Decl *ast.ConstDecl
	// Result of evaluating its initialiser.
	Value TypedValue
}

// CheckUnit runs semantic analysis over a parsed compilation unit: names are
// resolved, then the initialiser of every constant declaration is evaluated
// to its exact value.  One evaluation session is shared across the whole
// unit, such that constants referring to each other reuse earlier results
// rather than recomputing them.  Recoverable diagnostics accumulate in the
// reporter; a non-nil error signals a fatal diagnostic which aborted the
// pass.
func CheckUnit(reporter *source.Reporter, srcmap *source.Maps[ast.Node],
	unit *ast.Unit) ([]ConstantValue, error) {
	var values []ConstantValue
	//
	ResolveUnit(reporter, srcmap, unit)
	// Evaluate all constants within one shared session.
	evaluator := NewConstantEvaluator(reporter, srcmap, make(EvaluationMap))
	//
	for _, d := range unit.Declarations {
		cd, ok := d.(*ast.ConstDecl)
		//
		if !ok || cd.ConstBinding().Value == nil {
			continue
		}
		//
		value, err := evaluator.Evaluate(cd.ConstBinding().Value)
		//
		if err != nil {
			return nil, err
		} else if value == nil {
			reporter.Error(srcmap.Diagnostic(d, NOT_COMPILE_TIME_CONSTANT,
				"initialiser is not a compile-time constant"))
			//
			continue
		}
		// Integer-typed constants must hold whole numbers, since the evaluator
		// assumes as much of every constant it chases.  Abort before a
		// fractional value can reach a later evaluation.
		if cd.ConstBinding().DataType.Category() == types.INTEGER &&
			!types.RationalValue(value).IsInt() {
			return nil, reporter.Fatal(srcmap.Diagnostic(d, FRACTIONAL_CONSTANT_VALUE,
				fmt.Sprintf("fractional value %s not valid for constant of type %s",
					value.String(), cd.ConstBinding().DataType.String())))
		}
		//
		log.Debugf("constant %s = %s", cd.Name(), value.String())
		//
		result, _ := evaluator.Result(cd.ConstBinding().Value)
		values = append(values, ConstantValue{cd, TypedValue{cd.ConstBinding().DataType,
			result.EvaluatedValue}})
	}
	//
	return values, nil
}
