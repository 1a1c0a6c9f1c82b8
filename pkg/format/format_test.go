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
package format

import (
	"testing"

	"github.com/consensys/go-mathexpr/pkg/expr"
	"github.com/consensys/go-mathexpr/pkg/expr/symbol"
	"github.com/stretchr/testify/assert"
)

func TestUnicode_01(t *testing.T) {
	// 2 / (sin(mu) + 1)
	tree := binary(t, expr.DIV, integer(t, "2"),
		binary(t, expr.ADD, call("sin", variable("mu")), integer(t, "1")))
	//
	checkUnicode(t, tree, "2 / (sin(μ) + 1)")
}

func TestUnicode_02(t *testing.T) {
	// (2 / sin(mu)) * 1 needs no brackets, since division binds tighter.
	tree := binary(t, expr.MUL,
		binary(t, expr.DIV, integer(t, "2"), call("sin", variable("mu"))),
		integer(t, "1"))
	//
	checkUnicode(t, tree, "2 / sin(μ) · 1")
}

func TestUnicode_03(t *testing.T) {
	// (2 / arccos(mu)) + 1
	tree := binary(t, expr.ADD,
		binary(t, expr.DIV, integer(t, "2"), call("arccos", variable("mu"))),
		integer(t, "1"))
	//
	checkUnicode(t, tree, "2 / arccos(μ) + 1")
}

func TestUnicode_04(t *testing.T) {
	// Subtraction is left associative: shed brackets on the left, keep them
	// on the right.
	var (
		a = variable("a")
		b = variable("b")
		c = variable("c")
	)
	//
	checkUnicode(t,
		binary(t, expr.SUB, binary(t, expr.SUB, a, b), c), "a - b - c")
	checkUnicode(t,
		binary(t, expr.SUB, a, binary(t, expr.SUB, b, c)), "a - (b - c)")
	checkUnicode(t,
		binary(t, expr.SUB, a, binary(t, expr.ADD, b, c)), "a - (b + c)")
	checkUnicode(t,
		binary(t, expr.ADD, binary(t, expr.SUB, a, b), c), "a - b + c")
}

func TestUnicode_05(t *testing.T) {
	// Exponentiation is right associative.
	two, three, four := integer(t, "2"), integer(t, "3"), integer(t, "4")
	//
	checkUnicode(t,
		binary(t, expr.POW, two, binary(t, expr.POW, three, four)), "2^3^4")
	checkUnicode(t,
		binary(t, expr.POW, binary(t, expr.POW, two, three), four), "(2^3)^4")
}

func TestUnicode_06(t *testing.T) {
	// Multiplication under addition versus addition under multiplication.
	var (
		x = variable("x")
		y = variable("y")
		z = variable("z")
	)
	//
	checkUnicode(t,
		binary(t, expr.ADD, x, binary(t, expr.MUL, y, z)), "x + y · z")
	checkUnicode(t,
		binary(t, expr.MUL, binary(t, expr.ADD, x, y), z), "(x + y) · z")
	checkUnicode(t,
		binary(t, expr.MUL, x, binary(t, expr.ADD, y, z)), "x · (y + z)")
}

func TestUnicode_07(t *testing.T) {
	// Logarithms subscript their base.
	tree := binary(t, expr.LOG, integer(t, "2"),
		binary(t, expr.ADD, variable("x"), integer(t, "1")))
	//
	checkUnicode(t, tree, "log_2 (x + 1)")
}

func TestUnicode_08(t *testing.T) {
	// Unary negation brackets binary operands only.
	sum := binary(t, expr.ADD, variable("x"), variable("y"))
	//
	checkUnicode(t, unary(t, expr.NEG, variable("x")), "-x")
	checkUnicode(t, unary(t, expr.NEG, sum), "-(x + y)")
	checkUnicode(t, unary(t, expr.NEG, call("sin", variable("x"))), "-sin(x)")
	checkUnicode(t, unary(t, expr.NOT, variable("p")), "¬p")
}

func TestUnicode_09(t *testing.T) {
	// Relations and connectives.
	var (
		p = variable("p")
		q = variable("q")
	)
	//
	checkUnicode(t, binary(t, expr.NEQ, p, q), "p ≠ q")
	checkUnicode(t, binary(t, expr.LE, p, q), "p ≤ q")
	checkUnicode(t,
		binary(t, expr.IMPLIES, binary(t, expr.AND, p, q), p), "p ∧ q ⇒ p")
}

func TestUnicode_10(t *testing.T) {
	// Symbols and Greek identifiers.
	inf, err := expr.NewSymbol(symbol.INFINITY)
	assert.NoError(t, err)
	//
	checkUnicode(t, binary(t, expr.LT, variable("Sigma"), inf), "Σ < ∞")
}

func TestUnicode_11(t *testing.T) {
	// Calls with several arguments.
	tree := call("max", variable("x"), integer(t, "0"),
		binary(t, expr.ADD, variable("y"), integer(t, "1")))
	//
	checkUnicode(t, tree, "max(x, 0, y + 1)")
}

func TestLatex_01(t *testing.T) {
	// Division renders as a fraction without brackets of its own.
	tree := binary(t, expr.DIV, integer(t, "2"),
		binary(t, expr.ADD, call("sin", variable("mu")), integer(t, "1")))
	//
	checkLatex(t, tree, "\\frac{ 2 }{ \\sin\\left(\\mu\\right) + 1 }")
}

func TestLatex_02(t *testing.T) {
	tree := binary(t, expr.MUL,
		binary(t, expr.DIV, integer(t, "2"), call("sin", variable("mu"))),
		integer(t, "1"))
	//
	checkLatex(t, tree, "\\frac{ 2 }{ \\sin\\left(\\mu\\right) } \\cdot 1")
}

func TestLatex_03(t *testing.T) {
	// Exponents are braced, so only the base is ever bracketed.
	two, three, four := integer(t, "2"), integer(t, "3"), integer(t, "4")
	//
	checkLatex(t,
		binary(t, expr.POW, binary(t, expr.POW, two, three), four),
		"\\left(2^{ 3 }\\right)^{ 4 }")
	checkLatex(t,
		binary(t, expr.POW, two, binary(t, expr.ADD, three, four)),
		"2^{ 3 + 4 }")
}

func TestLatex_04(t *testing.T) {
	tree := binary(t, expr.LOG, integer(t, "2"), variable("x"))
	checkLatex(t, tree, "\\log_{ 2 } \\left( x \\right)")
}

func TestLatex_05(t *testing.T) {
	// Special function names are set in roman type; unknown names are not.
	checkLatex(t, call("arccos", variable("theta")),
		"\\arccos\\left(\\theta\\right)")
	checkLatex(t, call("f", variable("x"), variable("y")),
		"f\\left(x, y\\right)")
}

func TestLatex_06(t *testing.T) {
	var (
		p = variable("p")
		q = variable("q")
	)
	//
	checkLatex(t, binary(t, expr.NEQ, p, q), "p \\neq q")
	checkLatex(t, binary(t, expr.MOD, p, q), "p \\bmod q")
	checkLatex(t, binary(t, expr.SUBSET, p, q), "p \\subseteq q")
	checkLatex(t, unary(t, expr.NOT, p), "\\lnot p")
}

func TestLatex_07(t *testing.T) {
	inf, err := expr.NewSymbol(symbol.INFINITY)
	assert.NoError(t, err)
	//
	checkLatex(t, binary(t, expr.LT, variable("Sigma"), inf),
		"\\Sigma < \\infty")
}

func TestNeedParens(t *testing.T) {
	var (
		a = variable("a")
		b = variable("b")
		c = variable("c")
	)
	//
	tests := []struct {
		node  expr.Expr
		left  bool
		right bool
	}{
		// Leaf operands never need brackets.
		{binary(t, expr.ADD, a, b), false, false},
		// (a + b) * c versus a * (b + c)
		{binary(t, expr.MUL, binary(t, expr.ADD, a, b), c), true, false},
		{binary(t, expr.MUL, a, binary(t, expr.ADD, b, c)), false, true},
		// (a - b) - c versus a - (b - c)
		{binary(t, expr.SUB, binary(t, expr.SUB, a, b), c), false, false},
		{binary(t, expr.SUB, a, binary(t, expr.SUB, b, c)), false, true},
		// (a ^ b) ^ c versus a ^ (b ^ c)
		{binary(t, expr.POW, binary(t, expr.POW, a, b), c), true, false},
		{binary(t, expr.POW, a, binary(t, expr.POW, b, c)), false, false},
		// Calls never need brackets.
		{binary(t, expr.MUL, call("sin", a), call("cos", b)), false, false},
	}
	//
	for _, tt := range tests {
		left, right := NeedParens(tt.node.(*expr.Binary))
		//
		assert.Equal(t, tt.left, left, "left of %s", tt.node)
		assert.Equal(t, tt.right, right, "right of %s", tt.node)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func checkUnicode(t *testing.T, tree expr.Expr, expected string) {
	t.Helper()
	//
	actual, err := NewUnicodeRenderer().Render(tree)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func checkLatex(t *testing.T, tree expr.Expr, expected string) {
	t.Helper()
	//
	actual, err := NewLatexRenderer().Render(tree)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func variable(name string) expr.Expr {
	return expr.NewVariable(name)
}

func call(name string, args ...expr.Expr) expr.Expr {
	return expr.NewCall(name, args...)
}

func integer(t *testing.T, literal string) expr.Expr {
	t.Helper()
	//
	node, err := expr.NewInteger(literal)
	if err != nil {
		t.Fatal(err)
	}
	//
	return node
}

func binary(t *testing.T, op expr.BinaryOp, lhs expr.Expr, rhs expr.Expr) expr.Expr {
	t.Helper()
	//
	node, err := expr.NewBinary(op, lhs, rhs)
	if err != nil {
		t.Fatal(err)
	}
	//
	return node
}

func unary(t *testing.T, op expr.UnaryOp, arg expr.Expr) expr.Expr {
	t.Helper()
	//
	node, err := expr.NewUnary(op, arg)
	if err != nil {
		t.Fatal(err)
	}
	//
	return node
}
