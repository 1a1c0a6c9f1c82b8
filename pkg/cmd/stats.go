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
package cmd

import (
	"fmt"

	"github.com/consensys/go-mathexpr/pkg/expr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [flags]",
	Short: "Report structural statistics for generated trees.",
	Long: `Generate a random expression tree and report structural statistics
	for it: per-form node counts, nesting depth and repeated subtrees.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		depth := getInt(cmd, "depth")
		seed := getInt64(cmd, "seed")
		width := maxWidth()
		//
		generator := expr.NewGenerator(seed)
		tree := generator.Generate(depth)
		//
		fmt.Println(truncate(tree.String(), width))
		//
		stats := summarise(tree)
		fmt.Printf("integers: %d, decimals: %d, variables: %d, symbols: %d\n",
			stats.integers, stats.decimals, stats.variables, stats.symbols)
		fmt.Printf("binary: %d, unary: %d, calls: %d\n",
			stats.binaries, stats.unaries, stats.calls)
		fmt.Printf("depth: %d\n", depthOf(tree))
		fmt.Printf("repeated subtrees: %d\n", len(expr.CommonSubexprs(tree)))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Int("depth", 4, "maximum nesting depth")
	statsCmd.Flags().Int64("seed", 0, "seed for the random source")
}

// Per-form node counts for a single tree.
type treeSummary struct {
	integers  uint
	decimals  uint
	variables uint
	symbols   uint
	binaries  uint
	unaries   uint
	calls     uint
}

// Count nodes of each form via a single post-order pass.
func summarise(tree expr.Expr) treeSummary {
	var stats treeSummary
	//
	expr.PostOrder(tree, expr.VisitorFunc(func(node expr.Expr) {
		switch node.(type) {
		case *expr.Integer:
			stats.integers++
		case *expr.Decimal:
			stats.decimals++
		case *expr.Variable:
			stats.variables++
		case *expr.Symbol:
			stats.symbols++
		case *expr.Binary:
			stats.binaries++
		case *expr.Unary:
			stats.unaries++
		case *expr.Call:
			stats.calls++
		}
	}))
	//
	return stats
}

// Determine the nesting depth of a tree, where a leaf has depth one.
func depthOf(tree expr.Expr) uint {
	folder := expr.NewFolder[uint]()
	//
	leaf := func() (uint, error) { return 1, nil }
	folder.AddIntegerRule(func(*expr.Integer) (uint, error) { return leaf() })
	folder.AddDecimalRule(func(*expr.Decimal) (uint, error) { return leaf() })
	folder.AddVariableRule(func(*expr.Variable) (uint, error) { return leaf() })
	folder.AddSymbolRule(func(*expr.Symbol) (uint, error) { return leaf() })
	//
	for op := expr.ADD; op.Valid(); op++ {
		folder.AddBinaryRule(op, func(_ *expr.Binary, l uint, r uint) (uint, error) {
			return max(l, r) + 1, nil
		})
	}
	//
	for op := expr.NEG; op.Valid(); op++ {
		folder.AddUnaryRule(op, func(_ *expr.Unary, arg uint) (uint, error) {
			return arg + 1, nil
		})
	}
	//
	folder.AddDefaultCallRule(func(_ *expr.Call, args []uint) (uint, error) {
		depth := uint(0)
		for _, arg := range args {
			depth = max(depth, arg)
		}

		return depth + 1, nil
	})
	// Cannot fail, since every form has a rule.
	depth, err := folder.Fold(tree)
	if err != nil {
		panic(err.Error())
	}
	//
	return depth
}

// Truncate a line to at most the given width.
func truncate(line string, width uint) string {
	runes := []rune(line)
	//
	if uint(len(runes)) <= width {
		return line
	} else if width < 4 {
		// Too narrow for an ellipsis.
		return string(runes[:width])
	}
	//
	return string(runes[:width-3]) + "..."
}
