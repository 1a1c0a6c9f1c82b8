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
	"github.com/consensys/go-mathexpr/pkg/util/collection/stack"
)

// Visitor is notified of every node encountered during a traversal, exactly
// once per node.  The callback can type switch on the node (and, for Binary
// or Unary, its operator tag) to discriminate cases; consumers which prefer
// a per-tag dispatch table should use Folder instead.
type Visitor interface {
	Visit(Expr)
}

// VisitorFunc adapts a plain function into a Visitor.
type VisitorFunc func(Expr)

// Visit implements the Visitor interface.
func (f VisitorFunc) Visit(e Expr) { f(e) }

// Traversal frame, marking whether a node's children have already been
// scheduled.
type visitFrame struct {
	node     Expr
	expanded bool
}

// PostOrder traverses the given tree in post-order: children are visited
// (completely) before the node which owns them, with a Binary node's
// children taken left-then-right and a Call node's arguments taken in their
// stored order.  This is the natural order for consumers which fold child
// results upward, such as evaluators.  The traversal is driven by an
// explicit work stack, hence tree depth is not limited by the call stack.
func PostOrder(root Expr, visitor Visitor) {
	frames := stack.NewStack[visitFrame]()
	frames.Push(visitFrame{root, false})
	//
	for !frames.IsEmpty() {
		frame := frames.Pop()
		//
		if frame.expanded {
			visitor.Visit(frame.node)
			continue
		}
		// Revisit this node once its children are done.
		frames.Push(visitFrame{frame.node, true})
		// Schedule children, leftmost topmost.
		children := frame.node.Children()
		//
		for i := len(children) - 1; i >= 0; i-- {
			frames.Push(visitFrame{children[i], false})
		}
	}
}

// PreOrder traverses the given tree in pre-order: each node is visited
// before its children, which follow left-to-right.  This suits consumers
// needing top-down context, such as pretty-printers tracking nesting depth.
func PreOrder(root Expr, visitor Visitor) {
	frames := stack.NewStack[Expr]()
	frames.Push(root)
	//
	for !frames.IsEmpty() {
		node := frames.Pop()
		visitor.Visit(node)
		frames.PushReversed(node.Children())
	}
}
