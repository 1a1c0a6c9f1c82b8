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
	"testing"

	"github.com/consensys/go-mathexpr/pkg/util/assert"
)

func TestPostOrder_01(t *testing.T) {
	// (- a b) ==> a, b, -
	checkPostOrder(t, mustBinary(t, SUB, variable("a"), variable("b")),
		"a", "b", "(- a b)")
}

func TestPostOrder_02(t *testing.T) {
	// Left subtree completes before the right subtree begins.
	lhs := mustBinary(t, ADD, variable("a"), variable("b"))
	rhs := mustBinary(t, MUL, variable("c"), variable("d"))
	//
	checkPostOrder(t, mustBinary(t, SUB, lhs, rhs),
		"a", "b", "(+ a b)", "c", "d", "(* c d)", "(- (+ a b) (* c d))")
}

func TestPostOrder_03(t *testing.T) {
	// Call arguments follow their stored order.
	checkPostOrder(t, call("f", variable("a"), variable("b"), variable("c")),
		"a", "b", "c", "(f a b c)")
}

func TestPostOrder_04(t *testing.T) {
	// 2 + x * (y - 3): all leaves left-to-right, then the internal nodes
	// innermost-first.
	tree := mustBinary(t, ADD, integer(t, "2"),
		mustBinary(t, MUL, variable("x"),
			mustBinary(t, SUB, variable("y"), integer(t, "3"))))
	//
	checkPostOrder(t, tree,
		"2", "x", "y", "3", "(- y 3)", "(* x (- y 3))", "(+ 2 (* x (- y 3)))")
}

func TestPostOrder_05(t *testing.T) {
	// Unary wraps its operand.
	checkPostOrder(t, mustUnary(t, NEG, variable("x")), "x", "(- x)")
}

func TestPreOrder_01(t *testing.T) {
	checkPreOrder(t, mustBinary(t, SUB, variable("a"), variable("b")),
		"(- a b)", "a", "b")
}

func TestPreOrder_02(t *testing.T) {
	lhs := mustBinary(t, ADD, variable("a"), variable("b"))
	rhs := mustBinary(t, MUL, variable("c"), variable("d"))
	//
	checkPreOrder(t, mustBinary(t, SUB, lhs, rhs),
		"(- (+ a b) (* c d))", "(+ a b)", "a", "b", "(* c d)", "c", "d")
}

func TestPreOrder_03(t *testing.T) {
	checkPreOrder(t, call("f", variable("a"), call("g"), variable("c")),
		"(f a (g) c)", "a", "(g)", "c")
}

func TestTraversalDeterminism(t *testing.T) {
	tree := mustBinary(t, ADD, integer(t, "2"),
		mustBinary(t, MUL, variable("x"),
			mustBinary(t, SUB, variable("y"), integer(t, "3"))))
	// Repeated traversals of the same tree yield the same sequence.
	first := collectPostOrder(tree)
	//
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, collectPostOrder(tree))
	}
}

// ============================================================================
// Helpers
// ============================================================================

func checkPostOrder(t *testing.T, root Expr, expected ...string) {
	t.Helper()
	assert.Equal(t, expected, collectPostOrder(root))
}

func checkPreOrder(t *testing.T, root Expr, expected ...string) {
	t.Helper()
	//
	var actual []string
	//
	PreOrder(root, VisitorFunc(func(node Expr) {
		actual = append(actual, node.String())
	}))
	//
	assert.Equal(t, expected, actual)
}

func collectPostOrder(root Expr) []string {
	var actual []string
	//
	PostOrder(root, VisitorFunc(func(node Expr) {
		actual = append(actual, node.String())
	}))
	//
	return actual
}

func variable(name string) Expr {
	return NewVariable(name)
}

func call(name string, args ...Expr) Expr {
	return NewCall(name, args...)
}

func integer(t *testing.T, literal string) Expr {
	t.Helper()
	//
	node, err := NewInteger(literal)
	if err != nil {
		t.Fatal(err)
	}
	//
	return node
}

func mustBinary(t *testing.T, op BinaryOp, lhs Expr, rhs Expr) Expr {
	t.Helper()
	//
	node, err := NewBinary(op, lhs, rhs)
	if err != nil {
		t.Fatal(err)
	}
	//
	return node
}

func mustUnary(t *testing.T, op UnaryOp, arg Expr) Expr {
	t.Helper()
	//
	node, err := NewUnary(op, arg)
	if err != nil {
		t.Fatal(err)
	}
	//
	return node
}
