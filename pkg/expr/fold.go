// Copyright Consensys Software Inc.
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
package expr

import (
	"fmt"

	"github.com/consensys/go-mathexpr/pkg/util/collection/stack"
)

// IntegerRule folds an integer literal into a value of type T.
type IntegerRule[T any] func(*Integer) (T, error)

// DecimalRule folds a decimal literal into a value of type T.
type DecimalRule[T any] func(*Decimal) (T, error)

// VariableRule folds a free variable into a value of type T.
type VariableRule[T any] func(*Variable) (T, error)

// SymbolRule folds an opaque symbol into a value of type T.
type SymbolRule[T any] func(*Symbol) (T, error)

// BinaryRule folds a binary node into a value of type T, given the already
// folded left and right operands (in that order).
type BinaryRule[T any] func(*Binary, T, T) (T, error)

// UnaryRule folds a unary node into a value of type T, given the already
// folded operand.
type UnaryRule[T any] func(*Unary, T) (T, error)

// CallRule folds a call node into a value of type T, given the already
// folded arguments in source order.
type CallRule[T any] func(*Call, []T) (T, error)

// Folder is a generic mechanism for folding an expression tree, bottom up,
// into a value of type T.  One rule is registered per node form, with Binary
// and Unary nodes dispatched per operator tag (since operator semantics
// differ) and Call nodes dispatched per function name with an optional
// fallback.  Evaluators and renderers are the intended consumers.
type Folder[T any] struct {
	// Rules for folding leaves.
	integers  IntegerRule[T]
	decimals  DecimalRule[T]
	variables VariableRule[T]
	symbols   SymbolRule[T]
	// Rules for folding binary nodes, keyed by operator tag.
	binaries map[BinaryOp]BinaryRule[T]
	// Rules for folding unary nodes, keyed by operator tag.
	unaries map[UnaryOp]UnaryRule[T]
	// Rules for folding calls, keyed by function name.
	calls map[string]CallRule[T]
	// Fallback rule for calls with no named rule.
	call_default CallRule[T]
}

// NewFolder constructs a folder with no rules attached.
func NewFolder[T any]() *Folder[T] {
	return &Folder[T]{
		binaries: make(map[BinaryOp]BinaryRule[T]),
		unaries:  make(map[UnaryOp]UnaryRule[T]),
		calls:    make(map[string]CallRule[T]),
	}
}

// AddIntegerRule sets the rule applied to integer literals.
func (p *Folder[T]) AddIntegerRule(rule IntegerRule[T]) {
	p.integers = rule
}

// AddDecimalRule sets the rule applied to decimal literals.
func (p *Folder[T]) AddDecimalRule(rule DecimalRule[T]) {
	p.decimals = rule
}

// AddVariableRule sets the rule applied to free variables.
func (p *Folder[T]) AddVariableRule(rule VariableRule[T]) {
	p.variables = rule
}

// AddSymbolRule sets the rule applied to opaque symbols.
func (p *Folder[T]) AddSymbolRule(rule SymbolRule[T]) {
	p.symbols = rule
}

// AddBinaryRule sets the rule applied to binary nodes with a given operator
// tag.
func (p *Folder[T]) AddBinaryRule(op BinaryOp, rule BinaryRule[T]) {
	p.binaries[op] = rule
}

// AddUnaryRule sets the rule applied to unary nodes with a given operator
// tag.
func (p *Folder[T]) AddUnaryRule(op UnaryOp, rule UnaryRule[T]) {
	p.unaries[op] = rule
}

// AddCallRule sets the rule applied to calls of a given function name.
func (p *Folder[T]) AddCallRule(name string, rule CallRule[T]) {
	p.calls[name] = rule
}

// AddDefaultCallRule sets the fallback rule applied to calls whose function
// name has no rule of its own.
func (p *Folder[T]) AddDefaultCallRule(rule CallRule[T]) {
	p.call_default = rule
}

// Fold the given tree, bottom up, into a single value.  Children are always
// folded before their parent, left-to-right, with Call arguments taken in
// stored order.  Folding halts on the first rule error (or missing rule),
// which is returned as is.  The input tree is never modified.
func (p *Folder[T]) Fold(root Expr) (T, error) {
	var (
		empty  T
		frames = stack.NewStack[visitFrame]()
		values = stack.NewStack[T]()
	)
	//
	frames.Push(visitFrame{root, false})
	//
	for !frames.IsEmpty() {
		frame := frames.Pop()
		// Expand children ahead of the node itself.
		if !frame.expanded {
			frames.Push(visitFrame{frame.node, true})
			//
			children := frame.node.Children()
			for i := len(children) - 1; i >= 0; i-- {
				frames.Push(visitFrame{children[i], false})
			}
			//
			continue
		}
		// All children folded; apply the node's rule.
		value, err := p.apply(frame.node, values)
		//
		if err != nil {
			return empty, err
		}
		//
		values.Push(value)
	}
	// Exactly the root's value remains.
	return values.Pop(), nil
}

// Apply the appropriate rule to a single node, popping its (already folded)
// children off the value stack.
func (p *Folder[T]) apply(node Expr, values *stack.Stack[T]) (T, error) {
	var empty T
	//
	switch node := node.(type) {
	case *Integer:
		if p.integers != nil {
			return p.integers(node)
		}
	case *Decimal:
		if p.decimals != nil {
			return p.decimals(node)
		}
	case *Variable:
		if p.variables != nil {
			return p.variables(node)
		}
	case *Symbol:
		if p.symbols != nil {
			return p.symbols(node)
		}
	case *Binary:
		if rule, ok := p.binaries[node.Op()]; ok {
			right := values.Pop()
			left := values.Pop()
			//
			return rule(node, left, right)
		}
	case *Unary:
		if rule, ok := p.unaries[node.Op()]; ok {
			return rule(node, values.Pop())
		}
	case *Call:
		rule, ok := p.calls[node.Name()]
		//
		if !ok {
			rule = p.call_default
		}
		//
		if rule != nil {
			args := make([]T, node.Arity())
			// Arguments were pushed left-to-right, so pop in reverse.
			for i := len(args) - 1; i >= 0; i-- {
				args[i] = values.Pop()
			}
			//
			return rule(node, args)
		}
	}
	//
	return empty, fmt.Errorf("no applicable rule for %s", node.String())
}
