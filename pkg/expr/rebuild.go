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

// Mapper transforms a single node during a rebuild.  The node it receives
// already has its children rebuilt; the mapper may return it unchanged, or
// substitute any other expression (of the same form or otherwise) in its
// place.  Returning an error halts the rebuild.
type Mapper func(Expr) (Expr, error)

// Identity is the mapper which leaves every node unchanged, in which case
// Rebuild yields a tree structurally equal to its input.
func Identity(e Expr) (Expr, error) {
	return e, nil
}

// Rebuild produces a new tree from an existing one by applying a mapping
// function at every position, bottom up.  This is the single sanctioned
// mechanism for simplification and rewriting: the input tree is never
// mutated, hence any reference to it (or to one of its subtrees) held
// elsewhere remains valid and unchanged.  Subtrees which the mapper leaves
// untouched are shared, not copied, which is safe precisely because nodes
// are immutable.
func Rebuild(root Expr, mapper Mapper) (Expr, error) {
	var (
		frames = stack.NewStack[visitFrame]()
		values = stack.NewStack[Expr]()
	)
	//
	frames.Push(visitFrame{root, false})
	//
	for !frames.IsEmpty() {
		frame := frames.Pop()
		//
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
		// Reassemble this node from its rebuilt children, then map it.
		node, err := mapper(reassemble(frame.node, values))
		//
		if err != nil {
			return nil, err
		}
		//
		values.Push(node)
	}
	//
	return values.Pop(), nil
}

// Reassemble a node whose rebuilt children sit atop the value stack.  When
// no child actually changed, the original node is reused as is.
func reassemble(node Expr, values *stack.Stack[Expr]) Expr {
	switch node := node.(type) {
	case *Binary:
		right := values.Pop()
		left := values.Pop()
		//
		if left == node.left && right == node.right {
			return node
		}
		//
		return &Binary{node.op, left, right}
	case *Unary:
		arg := values.Pop()
		//
		if arg == node.arg {
			return node
		}
		//
		return &Unary{node.op, arg}
	case *Call:
		var (
			changed = false
			args    = make([]Expr, len(node.args))
		)
		// Arguments were pushed left-to-right, so pop in reverse.
		for i := len(args) - 1; i >= 0; i-- {
			args[i] = values.Pop()
			changed = changed || args[i] != node.args[i]
		}
		//
		if !changed {
			return node
		}
		//
		return &Call{node.name, args}
	default:
		// Leaf node, nothing to reassemble.
		return node
	}
}
