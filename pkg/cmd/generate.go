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
	"os"

	"github.com/consensys/go-mathexpr/pkg/expr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "Generate random expression trees.",
	Long: `Generate one or more random (but well formed) expression trees,
	rendering each in the chosen output format.  Generation is seeded, hence
	reproducible.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		count := getUint(cmd, "count")
		depth := getInt(cmd, "depth")
		seed := getInt64(cmd, "seed")
		output := getString(cmd, "format")
		//
		generator := expr.NewGenerator(seed)
		generator.NoDecimals = getFlag(cmd, "integral")
		//
		log.Debugf("generating %d expression(s) of depth %d (seed %d)", count, depth, seed)
		//
		for i := uint(0); i < count; i++ {
			tree := generator.Generate(depth)
			//
			text, err := renderAs(tree, output)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			fmt.Println(text)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Uint("count", 1, "number of expressions to generate")
	generateCmd.Flags().Int("depth", 4, "maximum nesting depth")
	generateCmd.Flags().Int64("seed", 0, "seed for the random source")
	generateCmd.Flags().Bool("integral", false, "restrict number literals to integers")
	generateCmd.Flags().String("format", "unicode", "output format (unicode/latex/sexp)")
}
