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
	"github.com/consensys/go-mathexpr/pkg/expr"
)

// Binding levels for each operator, where lower binds tighter.  Each
// operator has separate levels for its left and right sides, which is how
// associativity is encoded: subtraction gives its right side a tighter
// level than its own, so "a - (b - c)" keeps its parentheses whilst
// "(a - b) - c" sheds them; exponentiation does the reverse.
func binding(op expr.BinaryOp) (uint, uint) {
	switch op {
	case expr.POW, expr.LOG:
		return 3, 4
	case expr.MUL:
		return 6, 5
	case expr.DIV, expr.MOD:
		return 6, 5
	case expr.ADD:
		return 8, 8
	case expr.SUB:
		return 8, 7
	case expr.LE, expr.GE, expr.LT, expr.GT,
		expr.EQ, expr.NEQ, expr.APPROX,
		expr.SUBSET, expr.PROPER_SUBSET:
		return 10, 10
	case expr.AND:
		return 12, 12
	case expr.OR, expr.XOR:
		return 14, 14
	case expr.IMPLIES:
		return 17, 16
	}
	// Unreachable for a constructed node.
	return 0, 0
}

// NeedParens determines whether the left and right operands of a binary node
// need parentheses to display unambiguously.  Leaves, calls and unary
// applications never do ("sin(x) + a" and "-a + b" are unambiguous); an
// operand which is itself a binary node does whenever its adjacent binding
// level is looser than the slot it sits in.
func NeedParens(node *expr.Binary) (bool, bool) {
	var (
		lneed, rneed = false, false
		lslot, rslot = binding(node.Op())
	)
	//
	if child, ok := node.Left().(*expr.Binary); ok {
		_, r := binding(child.Op())
		lneed = r > lslot
	}
	//
	if child, ok := node.Right().(*expr.Binary); ok {
		l, _ := binding(child.Op())
		rneed = l > rslot
	}
	//
	return lneed, rneed
}
