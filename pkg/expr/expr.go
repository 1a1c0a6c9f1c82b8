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

// Package expr provides a typed Abstract Syntax Tree (AST) for pure
// mathematical expressions.  Unlike most expression trees, the goal is not to
// evaluate anything but, rather, to act as a shared representation which
// parsers, renderers, evaluators and rewriters can all agree on.  Free
// variables are therefore fine.  Nodes are immutable once constructed:
// consumers produce new trees via Rebuild rather than mutating existing
// ones, meaning a subtree can be safely shared between trees (and between
// goroutines) without synchronisation.
package expr

import (
	"math/big"

	"github.com/consensys/go-mathexpr/pkg/expr/symbol"
)

// Expr represents all of the different node forms within the Abstract Syntax
// Tree (AST) of a mathematical expression.  Observe that this is a closed
// set: every node is exactly one of Integer, Decimal, Variable, Symbol,
// Binary, Unary or Call, and new forms require an explicit extension of this
// package.
type Expr interface {
	// Children returns the child nodes of this expression in left-to-right
	// order.  Leaf nodes return nil.  The returned slice is a copy, hence
	// the caller cannot alter this expression through it.
	Children() []Expr
	// Equals checks whether this expression is structurally equal to
	// another.  That is, whether both have the same form, the same
	// tags/values and (recursively) equal children.
	Equals(Expr) bool
	// Hash returns a structural hash which is consistent with Equals.
	// Structurally equal expressions always hash identically, though the
	// converse does not hold.
	Hash() uint64
	// String produces an S-Expression style representation of this
	// expression, intended for debugging.
	String() string
}

// Precision (in bits) at which all decimal literals are held.  Fixing this
// ensures that structurally equal decimals share an internal representation.
const decimalPrecision = 128

// ============================================================================
// Integer
// ============================================================================

// Integer is an exact, arbitrary-precision integer literal.  Observe that it
// remains distinct from Decimal even when numerically equal to one (e.g. 2
// versus 2.0).
type Integer struct {
	value *big.Int
}

var _ Expr = (*Integer)(nil)

// Value returns the value of this literal.  A copy is returned, since the
// node itself is immutable.
func (p *Integer) Value() *big.Int {
	return new(big.Int).Set(p.value)
}

// Children returns nil, since a literal is a leaf.
func (p *Integer) Children() []Expr { return nil }

// ============================================================================
// Decimal
// ============================================================================

// Decimal is a finite-precision decimal literal, such as "12.34".  Its
// underlying value is always finite; constructing a non-finite decimal fails
// with MalformedLiteralError.
type Decimal struct {
	value *big.Float
}

var _ Expr = (*Decimal)(nil)

// Value returns the value of this literal.  A copy is returned, since the
// node itself is immutable.
func (p *Decimal) Value() *big.Float {
	return new(big.Float).SetPrec(decimalPrecision).Set(p.value)
}

// Children returns nil, since a literal is a leaf.
func (p *Decimal) Children() []Expr { return nil }

// ============================================================================
// Variable
// ============================================================================

// Variable is a free variable, identified by name.  Names are compared by
// string equality and may be Greek letter names (e.g. "mu") or subscripted
// identifiers (e.g. "x_1").
type Variable struct {
	name string
}

var _ Expr = (*Variable)(nil)

// Name returns the identifier of this variable.
func (p *Variable) Name() string { return p.name }

// Children returns nil, since a variable is a leaf.
func (p *Variable) Children() []Expr { return nil }

// ============================================================================
// Symbol
// ============================================================================

// Symbol is an opaque (non-variable) symbol, such as infinity or an
// ellipsis.  The set of permitted tags is fixed by the symbol package, but
// may grow over time without widening the Expr interface itself.
type Symbol struct {
	tag symbol.Tag
}

var _ Expr = (*Symbol)(nil)

// Tag returns the tag of this symbol.
func (p *Symbol) Tag() symbol.Tag { return p.tag }

// Children returns nil, since a symbol is a leaf.
func (p *Symbol) Children() []Expr { return nil }

// ============================================================================
// Binary
// ============================================================================

// Binary is the application of a binary operator to exactly two operands.
// The order of operands is semantically significant, since several operators
// (subtraction, division, exponentiation, comparisons, implication) are not
// commutative.
type Binary struct {
	op    BinaryOp
	left  Expr
	right Expr
}

var _ Expr = (*Binary)(nil)

// Op returns the operator tag of this node.
func (p *Binary) Op() BinaryOp { return p.op }

// Left returns the left operand of this node.
func (p *Binary) Left() Expr { return p.left }

// Right returns the right operand of this node.
func (p *Binary) Right() Expr { return p.right }

// Children returns the two operands in left-then-right order.
func (p *Binary) Children() []Expr { return []Expr{p.left, p.right} }

// ============================================================================
// Unary
// ============================================================================

// Unary is the application of a unary operator to exactly one operand.
type Unary struct {
	op  UnaryOp
	arg Expr
}

var _ Expr = (*Unary)(nil)

// Op returns the operator tag of this node.
func (p *Unary) Op() UnaryOp { return p.op }

// Arg returns the operand of this node.
func (p *Unary) Arg() Expr { return p.arg }

// Children returns the single operand.
func (p *Unary) Children() []Expr { return []Expr{p.arg} }

// ============================================================================
// Call
// ============================================================================

// Call is the application of a named function to an ordered sequence of zero
// or more arguments.  Observe that arity is not fixed per function name at
// this level: checking that (say) "gcd" was given two arguments is an
// evaluator concern, not a tree invariant.
type Call struct {
	name string
	args []Expr
}

var _ Expr = (*Call)(nil)

// Name returns the function identifier of this call.
func (p *Call) Name() string { return p.name }

// Arity returns the number of arguments given to this call.
func (p *Call) Arity() uint { return uint(len(p.args)) }

// Arg returns the ith argument of this call.
func (p *Call) Arg(i uint) Expr { return p.args[i] }

// Children returns the arguments in their stored order, which matches the
// order they appeared in source.
func (p *Call) Children() []Expr {
	if len(p.args) == 0 {
		return nil
	}
	//
	args := make([]Expr, len(p.args))
	copy(args, p.args)
	//
	return args
}
