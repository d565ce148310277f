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
	"reflect"

	"github.com/mica-lang/mica/pkg/mica/ast"
	"github.com/mica-lang/mica/pkg/util/source"
)

// ResolveUnit resolves all names used within a compilation unit against the
// declarations it contains, associating every variable access with the
// binding of the declaration to which it refers.  This can fail, of course,
// if a name is accessed which doesn't exist, or if two declarations share the
// same name.  Such problems are reported through the given reporter; accesses
// left unresolved are subsequently treated as non-constant by the evaluator.
func ResolveUnit(reporter *source.Reporter, srcmap *source.Maps[ast.Node], unit *ast.Unit) {
	scope := make(map[string]ast.Binding)
	// Declare all bindings up front, such that constants can refer to
	// declarations appearing later in the unit.
	for _, d := range unit.Declarations {
		if _, ok := scope[d.Name()]; ok {
			reporter.Error(srcmap.Diagnostic(d, DUPLICATE_DECLARATION,
				fmt.Sprintf("duplicate declaration of %s", d.Name())))
			//
			continue
		}
		//
		scope[d.Name()] = d.Binding()
	}
	// Resolve all accesses within constant initialisers.
	r := resolver{reporter, srcmap, scope}
	//
	for _, d := range unit.Declarations {
		if cd, ok := d.(*ast.ConstDecl); ok && cd.ConstBinding().Value != nil {
			r.resolveExpr(cd.ConstBinding().Value)
		}
	}
}

// Resolver packages up the information necessary for resolving the names used
// within one compilation unit.
type resolver struct {
	// Sink for diagnostics arising during resolution.
	reporter *source.Reporter
	// Source maps for the nodes being resolved.
	srcmap *source.Maps[ast.Node]
	// Bindings introduced by the declarations of the unit, keyed by name.
	scope map[string]ast.Binding
}

// Resolve all variable accesses within a given expression.
func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.UnaryExpr:
		r.resolveExpr(e.Arg)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Lhs)
		r.resolveExpr(e.Rhs)
	case *ast.Literal:
		// Nothing to resolve.
	case *ast.VariableAccess:
		if e.IsResolved() {
			return
		} else if binding, ok := r.scope[e.Name]; ok {
			e.Resolve(binding)
		} else {
			r.reporter.Error(r.srcmap.Diagnostic(e, UNDEFINED_SYMBOL,
				fmt.Sprintf("undefined symbol %s", e.Name)))
		}
	case *ast.TupleExpr:
		for _, c := range e.Components {
			r.resolveExpr(c)
		}
	default:
		panic(fmt.Sprintf("unknown expression (%s)", reflect.TypeOf(expr)))
	}
}
