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
	"github.com/consensys/go-mathexpr/pkg/util/collection/hash"
)

// CommonSubexprs determines those subtrees which occur more than once
// (structurally) within the given tree, reporting each such subtree exactly
// once in post-order.  Leaves count as subtrees, hence a variable used twice
// is reported.  This supports consumers which deduplicate shared work, such
// as common-subexpression elimination in an evaluator.
func CommonSubexprs(root Expr) []Expr {
	var (
		common []Expr
		// Subtrees seen at least once.
		seen = hash.NewSet[Expr](64)
		// Subtrees already reported.
		reported = hash.NewSet[Expr](16)
	)
	//
	PostOrder(root, VisitorFunc(func(node Expr) {
		if seen.Insert(node) && !reported.Insert(node) {
			common = append(common, node)
		}
	}))
	//
	return common
}
