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

// Infix symbols for the LaTeX renderer.  Exponentiation, division and
// logarithms are handled specially below.
var latexInfix = map[expr.BinaryOp]string{
	expr.ADD:           "+",
	expr.SUB:           "-",
	expr.MUL:           "\\cdot",
	expr.MOD:           "\\bmod",
	expr.LE:            "\\le",
	expr.GE:            "\\ge",
	expr.LT:            "<",
	expr.GT:            ">",
	expr.EQ:            "=",
	expr.NEQ:           "\\neq",
	expr.APPROX:        "\\approx",
	expr.SUBSET:        "\\subseteq",
	expr.PROPER_SUBSET: "\\subset",
	expr.AND:           "\\land",
	expr.OR:            "\\lor",
	expr.XOR:           "\\oplus",
	expr.IMPLIES:       "\\implies",
}

// Prefix symbols for the LaTeX renderer.
var latexPrefix = map[expr.UnaryOp]string{
	expr.NEG:  "-",
	expr.PLUS: "+",
	expr.NOT:  "\\lnot ",
}

// NewLatexRenderer constructs a renderer producing LaTeX markup: fractions
// for division, subscripted logarithms, self-sizing delimiters, Greek
// commands for Greek variable names and roman type for the special function
// names.
func NewLatexRenderer() *Renderer {
	var (
		folder = expr.NewFolder[string]()
		parens = brackets{"\\left(", "\\right)"}
	)
	// Leaves
	folder.AddIntegerRule(func(node *expr.Integer) (string, error) {
		return node.String(), nil
	})
	folder.AddDecimalRule(func(node *expr.Decimal) (string, error) {
		return node.String(), nil
	})
	folder.AddVariableRule(func(node *expr.Variable) (string, error) {
		return symbol.LatexName(node.Name()), nil
	})
	folder.AddSymbolRule(func(node *expr.Symbol) (string, error) {
		return node.Tag().Latex(), nil
	})
	// Infix operators
	for op, sym := range latexInfix {
		folder.AddBinaryRule(op, infixRule(sym, parens))
	}
	// Division renders as a fraction, which needs no brackets of its own.
	folder.AddBinaryRule(expr.DIV, func(node *expr.Binary, left string, right string) (string, error) {
		return fmt.Sprintf("\\frac{ %s }{ %s }", left, right), nil
	})
	// Exponentiation braces its exponent, so only the base can be ambiguous.
	folder.AddBinaryRule(expr.POW, func(node *expr.Binary, left string, right string) (string, error) {
		left, _ = parenthesise(node, left, right, parens)
		//
		return fmt.Sprintf("%s^{ %s }", left, right), nil
	})
	// Logarithm takes its base as a subscript.
	folder.AddBinaryRule(expr.LOG, func(node *expr.Binary, base string, arg string) (string, error) {
		return fmt.Sprintf("\\log_{ %s } \\left( %s \\right)", base, arg), nil
	})
	// Prefix operators
	for op, sym := range latexPrefix {
		sym := sym
		folder.AddUnaryRule(op, func(node *expr.Unary, arg string) (string, error) {
			return sym + parenthesiseUnary(node, arg, parens), nil
		})
	}
	// Calls
	folder.AddDefaultCallRule(func(node *expr.Call, args []string) (string, error) {
		return fmt.Sprintf("%s\\left(%s\\right)", symbol.LatexName(node.Name()), joinArgs(args)), nil
	})
	// Done
	return &Renderer{folder}
}
