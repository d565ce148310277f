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
	"math/big"
	"reflect"

	"github.com/mica-lang/mica/pkg/mica/ast"
	"github.com/mica-lang/mica/pkg/mica/token"
	"github.com/mica-lang/mica/pkg/mica/types"
	"github.com/mica-lang/mica/pkg/util/source"
)

// MAX_EVALUATION_DEPTH bounds how far the evaluator will chase chains of
// constant-to-constant references before concluding the definition is cyclic.
// Observe that no visited set is kept, hence a legitimate (acyclic) chain
// deeper than this bound is reported with the same diagnostic as a true cycle.
const MAX_EVALUATION_DEPTH = 32

// TypedValue pairs the type an expression had before promotion (e.g. the
// declared integer type of a referenced constant) with its evaluated value,
// which is always of rational category and wraps the computed number.  The
// two differ exactly when promotion occurred: an access to a constant declared
// "u8" has source type u8, whilst its evaluated value is the rational type
// carrying the number itself.
type TypedValue struct {
	// SourceType is the static type of the expression prior to any promotion
	// performed for constant folding.
	SourceType types.Type
	// EvaluatedValue is the rational-category type wrapping the computed
	// value.
	EvaluatedValue types.Type
}

// EvaluationMap caches evaluation results against the stable identities of
// expression nodes.  An entry exists only when the evaluated value is of
// rational category; expressions which are non-constant, or constant but not
// numeric, are never cached and hence indistinguishable from unevaluated ones.
type EvaluationMap = map[uint]TypedValue

// ConstantEvaluator evaluates expressions which later phases require to be
// compile-time constants, producing their exact rational values.  One
// evaluator embodies a single evaluation session: its cache and recursion
// depth are shared across the recursive calls of one traversal and must not
// be touched by concurrent evaluations.  Independent sessions are fully
// isolated and may run in parallel.
type ConstantEvaluator struct {
	// Sink for diagnostics arising during evaluation.
	reporter *source.Reporter
	// Source maps for the nodes under evaluation, needed to attach
	// diagnostics to the relevant source spans.
	srcmap *source.Maps[ast.Node]
	// Cache of results for nodes evaluated so far in this session.
	evaluations EvaluationMap
	// Current depth of constant-reference chasing.
	depth uint
}

// NewConstantEvaluator constructs an evaluator over a given (possibly shared)
// evaluation cache.  Sharing a cache across evaluators allows the results of
// related evaluations (e.g. all constants of one compilation unit) to be
// reused rather than recomputed.
func NewConstantEvaluator(reporter *source.Reporter, srcmap *source.Maps[ast.Node],
	evaluations EvaluationMap) *ConstantEvaluator {
	return &ConstantEvaluator{reporter, srcmap, evaluations, 0}
}

// Evaluate the given expression within a fresh, isolated session.  The
// evaluated value is returned if the expression is a numeric constant, and nil
// otherwise (which is the normal case for most expressions and not an error).
// A non-nil error signals a fatal diagnostic, already reported through the
// given reporter, which aborted evaluation.
func Evaluate(reporter *source.Reporter, srcmap *source.Maps[ast.Node],
	expr ast.Expr) (types.Type, error) {
	evaluator := NewConstantEvaluator(reporter, srcmap, make(EvaluationMap))
	//
	return evaluator.Evaluate(expr)
}

// Evaluate the given expression within this session, returning its evaluated
// value (or nil if it has none).  A non-nil error signals a fatal diagnostic
// which aborted evaluation; recoverable diagnostics (division by zero) are
// reported through the sink, with the offending expression simply yielding no
// value.
func (p *ConstantEvaluator) Evaluate(expr ast.Expr) (types.Type, error) {
	p.depth++
	// Ensure depth is restored on every exit path, including fatal aborts.
	defer func() { p.depth-- }()
	//
	if _, err := p.visit(expr); err != nil {
		return nil, err
	}
	// Only cached results are observable to callers, hence a constant whose
	// value is not numeric (a bool, say) reads as having no value at all.
	return p.evaluatedValue(expr), nil
}

// Result returns the cached evaluation result for a given node, if any.
func (p *ConstantEvaluator) Result(node ast.Node) (TypedValue, bool) {
	result, ok := p.evaluations[node.Id()]
	return result, ok
}

// Visit an expression bottom-up, such that each node is considered only once
// its children have been evaluated (or determined to be non-constant).  The
// evaluation result is returned directly, regardless of its category: the
// cache only ever holds numeric constants, yet a binary operation must still
// see the types of (say) boolean or string operands in order to reject an
// incompatible operator application.  An empty result means the expression
// has no compile-time value.
func (p *ConstantEvaluator) visit(expr ast.Expr) (TypedValue, error) {
	// Reuse results already evaluated through another reference path.
	if result, ok := p.evaluations[expr.Id()]; ok {
		return result, nil
	}
	//
	switch e := expr.(type) {
	case *ast.UnaryExpr:
		sub, err := p.visit(e.Arg)
		if err != nil {
			return TypedValue{}, err
		}
		//
		return p.endUnaryExpr(e, sub), nil
	case *ast.BinaryExpr:
		left, err := p.visit(e.Lhs)
		if err != nil {
			return TypedValue{}, err
		}
		//
		right, err := p.visit(e.Rhs)
		if err != nil {
			return TypedValue{}, err
		}
		//
		return p.endBinaryExpr(e, left, right)
	case *ast.Literal:
		return p.setValue(e, types.ForLiteral(e.Kind, e.Text)), nil
	case *ast.VariableAccess:
		return p.endVariableAccess(e)
	case *ast.TupleExpr:
		components := make([]TypedValue, len(e.Components))
		//
		for i, c := range e.Components {
			sub, err := p.visit(c)
			if err != nil {
				return TypedValue{}, err
			}
			//
			components[i] = sub
		}
		//
		return p.endTupleExpr(e, components), nil
	default:
		panic(fmt.Sprintf("unknown expression (%s)", reflect.TypeOf(expr)))
	}
}

// Evaluate a unary operation over an already-evaluated operand.  A
// non-constant operand is normal (most expressions in a program are not
// constant), in which case this node simply has no value either.
func (p *ConstantEvaluator) endUnaryExpr(e *ast.UnaryExpr, sub TypedValue) TypedValue {
	if sub.EvaluatedValue == nil {
		return TypedValue{}
	}
	//
	return p.setValue(e, types.UnaryOperatorResult(sub.EvaluatedValue, e.Op))
}

// Evaluate a binary operation over two already-evaluated operands.  Two
// routes exist: a fast path computing directly on the underlying rational
// values, taken when both operands fold to numeric constants with declared
// integer types, which guarantees exactness without involving the generic
// type-promotion machinery; and a general path delegating to the operand
// types' common-type computation.
func (p *ConstantEvaluator) endBinaryExpr(e *ast.BinaryExpr, left TypedValue,
	right TypedValue) (TypedValue, error) {
	// Either operand being non-constant is normal, and means this operation
	// is not constant either.
	if left.EvaluatedValue == nil || right.EvaluatedValue == nil {
		return TypedValue{}, nil
	}
	// Fast path.  Comparisons are excluded since their result is boolean, not
	// numeric, hence they gain nothing from exact arithmetic.
	if left.EvaluatedValue.Category() == types.RATIONAL &&
		right.EvaluatedValue.Category() == types.RATIONAL &&
		left.SourceType.Category() == types.INTEGER &&
		right.SourceType.Category() == types.INTEGER && !e.Op.IsComparison() {
		var (
			lhs = types.RationalValue(left.EvaluatedValue)
			rhs = types.RationalValue(right.EvaluatedValue)
		)
		// Values of integer-typed constants are necessarily whole numbers.
		if !lhs.IsInt() || !rhs.IsInt() {
			panic("fractional value for integer-typed constant")
		}
		//
		if value := p.evaluateBinary(lhs, rhs, e.Op, e); value != nil {
			result := TypedValue{left.SourceType, types.NewRationalType(value)}
			p.setResult(e, result)
			//
			return result, nil
		}
		//
		return TypedValue{}, nil
	}
	// General path.
	common := types.BinaryOperatorResult(left.EvaluatedValue, e.Op, right.EvaluatedValue)
	//
	if common == nil {
		return TypedValue{}, p.reporter.Fatal(p.srcmap.Diagnostic(e, INCOMPATIBLE_OPERATOR_TYPES,
			fmt.Sprintf("operator %s not compatible with types %s and %s",
				e.Op.String(), left.EvaluatedValue.String(), right.EvaluatedValue.String())))
	} else if e.Op.IsComparison() {
		// Comparisons are boolean regardless of their operand types.
		return p.setValue(e, types.NewBoolType()), nil
	}
	//
	return p.setValue(e, common), nil
}

// Evaluate an access to a named declaration.  Only accesses to constant
// declarations with initialisers can have values; anything else (an ordinary
// variable, say) is silently non-constant.  Chasing the initialiser is
// guarded by the recursion bound, which is what catches self-referential
// definitions.
func (p *ConstantEvaluator) endVariableAccess(e *ast.VariableAccess) (TypedValue, error) {
	binding, ok := e.Binding().(*ast.ConstBinding)
	// Accesses to non-constants are normal, as are constants without
	// initialisers (which arise from malformed declarations).
	if !ok || binding.Value == nil {
		return TypedValue{}, nil
	}
	//
	if _, ok := p.evaluations[binding.Value.Id()]; !ok {
		if p.depth > MAX_EVALUATION_DEPTH {
			return TypedValue{}, p.reporter.Fatal(p.srcmap.Diagnostic(e, CYCLIC_CONSTANT_DEFINITION,
				"cyclic constant definition (or maximum recursion depth exhausted)"))
		}
		//
		if _, err := p.Evaluate(binding.Value); err != nil {
			return TypedValue{}, err
		}
	}
	// Link this access to the evaluation result of the initialiser, retyped
	// with the declared type of the constant.  Hence, a constant declared u8
	// reports a u8 source type, not the promoted type of its initialiser.
	if result, ok := p.evaluations[binding.Value.Id()]; ok {
		retyped := TypedValue{binding.DataType, result.EvaluatedValue}
		p.setResult(e, retyped)
		//
		return retyped, nil
	}
	//
	return TypedValue{}, nil
}

// Evaluate a tuple.  A parenthesised single expression forwards the result of
// its component verbatim; every other tuple form (multi-component, or an
// inline array) is never a constant under this evaluator.
func (p *ConstantEvaluator) endTupleExpr(e *ast.TupleExpr, components []TypedValue) TypedValue {
	if !e.IsInlineArray() && len(components) == 1 {
		p.setResult(e, components[0])
		//
		return components[0]
	}
	//
	return TypedValue{}
}

// Evaluate a binary operator over two exact rational operands.  Addition,
// subtraction and multiplication are exact fraction arithmetic; division is
// likewise exact (never truncated), such that dividing and re-multiplying
// always recovers the dividend.  The remainder operator truncates its
// quotient towards zero, with the result taking the sign of the dividend;
// this generalises to fractional operands as lhs - trunc(lhs/rhs)*rhs.
// Division or remainder by zero reports a (recoverable) diagnostic at the
// given node and produces no value.  The operator set is closed: the
// dispatcher above never routes anything else here.
func (p *ConstantEvaluator) evaluateBinary(lhs *big.Rat, rhs *big.Rat,
	op token.Operator, node ast.Node) *big.Rat {
	var value big.Rat
	//
	switch op {
	case token.BitOr:
		var num big.Int
		//
		num.Or(lhs.Num(), rhs.Num())
		value.SetInt(&num)
	case token.BitAnd:
		var num big.Int
		//
		num.And(lhs.Num(), rhs.Num())
		value.SetInt(&num)
	case token.BitXor:
		var num big.Int
		//
		num.Xor(lhs.Num(), rhs.Num())
		value.SetInt(&num)
	case token.Add:
		value.Add(lhs, rhs)
	case token.Sub:
		value.Sub(lhs, rhs)
	case token.Mul:
		value.Mul(lhs, rhs)
	case token.Div:
		if rhs.Sign() == 0 {
			p.reporter.Error(p.srcmap.Diagnostic(node, DIVISION_BY_ZERO, "division by 0"))
			return nil
		}
		//
		value.Quo(lhs, rhs)
	case token.Mod:
		if rhs.Sign() == 0 {
			p.reporter.Error(p.srcmap.Diagnostic(node, DIVISION_BY_ZERO, "division by 0"))
			return nil
		} else if lhs.IsInt() && rhs.IsInt() {
			var num big.Int
			// Truncated remainder of the numerators.
			num.Rem(lhs.Num(), rhs.Num())
			value.SetInt(&num)
		} else {
			var quotient big.Rat
			// Truncate the quotient towards zero, then take what remains.
			quotient.Quo(lhs, rhs)
			quotient.SetInt(truncate(&quotient))
			quotient.Mul(&quotient, rhs)
			value.Sub(lhs, &quotient)
		}
	default:
		panic("unreachable")
	}
	//
	return &value
}

// setValue records an evaluation result for a node whose source type and
// evaluated value coincide (i.e. no promotion occurred), passing the result
// back for use by the enclosing expression.  A nil value is permitted and
// means the node has no value.
func (p *ConstantEvaluator) setValue(node ast.Node, value types.Type) TypedValue {
	if value == nil {
		return TypedValue{}
	}
	//
	result := TypedValue{value, value}
	p.setResult(node, result)
	//
	return result
}

// setResult caches an evaluation result against a node, provided the value is
// a usable numeric constant.  Results of any other category are dropped, such
// that "evaluated, but not a numeric constant" reads identically to "never
// evaluated".  Entries are write-once: the first evaluation of a node wins.
func (p *ConstantEvaluator) setResult(node ast.Node, result TypedValue) {
	if result.EvaluatedValue == nil || result.EvaluatedValue.Category() != types.RATIONAL {
		return
	}
	//
	if _, ok := p.evaluations[node.Id()]; !ok {
		p.evaluations[node.Id()] = result
	}
}

// evaluatedValue returns the cached value for a node, or nil if it has none.
func (p *ConstantEvaluator) evaluatedValue(node ast.Node) types.Type {
	if result, ok := p.evaluations[node.Id()]; ok {
		return result.EvaluatedValue
	}
	//
	return nil
}


// Truncate a rational value towards zero, producing a whole number.  Observe
// that big.Int division already truncates towards zero, which is exactly the
// semantic required here.
func truncate(value *big.Rat) *big.Int {
	var quotient big.Int
	//
	quotient.Quo(value.Num(), value.Denom())
	//
	return &quotient
}
