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

// Package format converts expression trees back into display markup
// (unicode or LaTeX).  The tree itself stores no precedence metadata, hence
// operator identity alone determines where parentheses are required; the
// table lives in this package, not in the tree.
package format

import (
	"fmt"
	"strings"

	"github.com/consensys/go-mathexpr/pkg/expr"
)

// Renderer produces display markup from an expression tree.  Rendering is a
// bottom-up fold with one rule per node form and per operator tag, hence
// adding a node form without extending the renderers here is caught at
// render time rather than silently mis-rendered.
type Renderer struct {
	folder *expr.Folder[string]
}

// Render the given expression as display markup.
func (p *Renderer) Render(e expr.Expr) (string, error) {
	return p.folder.Fold(e)
}

// Brackets determine how a renderer writes parentheses, since (for example)
// LaTeX prefers self-sizing delimiters.
type brackets struct {
	open  string
	close string
}

// Wrap a rendered operand in brackets.
func (b brackets) wrap(operand string) string {
	return b.open + operand + b.close
}

// Construct the rule for a plain infix operator with a given symbol,
// wrapping either operand in brackets as the precedence table dictates.
func infixRule(sym string, b brackets) expr.BinaryRule[string] {
	return func(node *expr.Binary, left string, right string) (string, error) {
		left, right = parenthesise(node, left, right, b)
		//
		return fmt.Sprintf("%s %s %s", left, sym, right), nil
	}
}

// Wrap the rendered operands of a binary node in brackets, as dictated by
// the precedence table.
func parenthesise(node *expr.Binary, left string, right string, b brackets) (string, string) {
	lp, rp := NeedParens(node)
	//
	if lp {
		left = b.wrap(left)
	}
	//
	if rp {
		right = b.wrap(right)
	}
	//
	return left, right
}

// Wrap the rendered operand of a unary node in brackets when the operand is
// itself a binary operator application, since (say) "-x + y" and "-(x + y)"
// read differently.
func parenthesiseUnary(node *expr.Unary, arg string, b brackets) string {
	if _, ok := node.Arg().(*expr.Binary); ok {
		return b.wrap(arg)
	}
	//
	return arg
}

// Join rendered call arguments with commas.
func joinArgs(args []string) string {
	return strings.Join(args, ", ")
}
