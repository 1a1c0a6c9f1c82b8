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
	"fmt"

	"github.com/consensys/go-mathexpr/pkg/expr"
	"github.com/consensys/go-mathexpr/pkg/expr/symbol"
)

// Infix symbols for the unicode renderer.  Exponentiation, division and
// logarithms are handled specially below.
var unicodeInfix = map[expr.BinaryOp]string{
	expr.ADD:           "+",
	expr.SUB:           "-",
	expr.MUL:           "·",
	expr.DIV:           "/",
	expr.MOD:           "mod",
	expr.LE:            "≤",
	expr.GE:            "≥",
	expr.LT:            "<",
	expr.GT:            ">",
	expr.EQ:            "=",
	expr.NEQ:           "≠",
	expr.APPROX:        "≅",
	expr.SUBSET:        "⊆",
	expr.PROPER_SUBSET: "⊂",
	expr.AND:           "∧",
	expr.OR:            "∨",
	expr.XOR:           "⊕",
	expr.IMPLIES:       "⇒",
}

// Prefix symbols for the unicode renderer.
var unicodePrefix = map[expr.UnaryOp]string{
	expr.NEG:  "-",
	expr.PLUS: "+",
	expr.NOT:  "¬",
}

// NewUnicodeRenderer constructs a renderer which uses unicode math symbols
// wherever possible, mapping Greek variable names to the corresponding
// letters (e.g. "mu" to "μ").
func NewUnicodeRenderer() *Renderer {
	var (
		folder = expr.NewFolder[string]()
		parens = brackets{"(", ")"}
	)
	// Leaves
	folder.AddIntegerRule(func(node *expr.Integer) (string, error) {
		return node.String(), nil
	})
	folder.AddDecimalRule(func(node *expr.Decimal) (string, error) {
		return node.String(), nil
	})
	folder.AddVariableRule(func(node *expr.Variable) (string, error) {
		return symbol.UnicodeName(node.Name()), nil
	})
	folder.AddSymbolRule(func(node *expr.Symbol) (string, error) {
		return node.Tag().Unicode(), nil
	})
	// Infix operators
	for op, sym := range unicodeInfix {
		folder.AddBinaryRule(op, infixRule(sym, parens))
	}
	// Exponentiation binds its operands without spacing.
	folder.AddBinaryRule(expr.POW, func(node *expr.Binary, left string, right string) (string, error) {
		left, right = parenthesise(node, left, right, parens)
		//
		return fmt.Sprintf("%s^%s", left, right), nil
	})
	// Logarithm takes its base as a subscript.
	folder.AddBinaryRule(expr.LOG, func(node *expr.Binary, base string, arg string) (string, error) {
		base, arg = parenthesise(node, base, arg, parens)
		//
		return fmt.Sprintf("log_%s %s", base, arg), nil
	})
	// Prefix operators
	for op, sym := range unicodePrefix {
		sym := sym
		folder.AddUnaryRule(op, func(node *expr.Unary, arg string) (string, error) {
			return sym + parenthesiseUnary(node, arg, parens), nil
		})
	}
	// Calls
	folder.AddDefaultCallRule(func(node *expr.Call, args []string) (string, error) {
		return fmt.Sprintf("%s(%s)", symbol.UnicodeName(node.Name()), joinArgs(args)), nil
	})
	// Done
	return &Renderer{folder}
}
