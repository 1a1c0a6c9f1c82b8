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

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [flags]",
	Short: "Render the built-in showcase expressions.",
	Long: `Render a handful of built-in showcase expressions in every output
	format, illustrating how one tree maps onto different display markups.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		for _, tree := range showcase() {
			for _, output := range []string{"sexp", "unicode", "latex"} {
				text, err := renderAs(tree, output)
				if err != nil {
					fmt.Println(err)
					os.Exit(1)
				}
				//
				fmt.Printf("%8s: %s\n", output, text)
			}
			//
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

// Construct the showcase trees.  These are hand built, hence construction
// errors are impossible and treated as fatal.
func showcase() []expr.Expr {
	var (
		two   = integer("2")
		x     = expr.NewVariable("x")
		y     = expr.NewVariable("y")
		a     = expr.NewVariable("a")
		b     = expr.NewVariable("b")
		c     = expr.NewVariable("c")
		e     = expr.NewVariable("e")
		i     = expr.NewVariable("i")
		pi    = expr.NewVariable("pi")
		mu    = expr.NewVariable("mu")
		four  = integer("4")
		one   = integer("1")
		zero  = integer("0")
		three = integer("3")
	)
	// 2 + x * (y - 3)
	arithmetic := binary(expr.ADD, two,
		binary(expr.MUL, x, binary(expr.SUB, y, three)))
	// x = (-b + sqrt(b^2 - 4*a*c)) / (2*a)
	discriminant := binary(expr.SUB, binary(expr.POW, b, two),
		binary(expr.MUL, binary(expr.MUL, four, a), c))
	quadratic := binary(expr.EQ, x,
		binary(expr.DIV,
			binary(expr.ADD, unary(expr.NEG, b), expr.NewCall("sqrt", discriminant)),
			binary(expr.MUL, two, a)))
	// e^(i*pi) + 1 = 0
	euler := binary(expr.EQ,
		binary(expr.ADD, binary(expr.POW, e, binary(expr.MUL, i, pi)), one),
		zero)
	// 2 / (sin(mu) + 1)
	trig := binary(expr.DIV, two,
		binary(expr.ADD, expr.NewCall("sin", mu), one))
	//
	return []expr.Expr{arithmetic, quadratic, euler, trig}
}

func integer(literal string) expr.Expr {
	node, err := expr.NewInteger(literal)
	if err != nil {
		panic(err.Error())
	}

	return node
}

func binary(op expr.BinaryOp, left expr.Expr, right expr.Expr) expr.Expr {
	node, err := expr.NewBinary(op, left, right)
	if err != nil {
		panic(err.Error())
	}

	return node
}

func unary(op expr.UnaryOp, arg expr.Expr) expr.Expr {
	node, err := expr.NewUnary(op, arg)
	if err != nil {
		panic(err.Error())
	}

	return node
}
