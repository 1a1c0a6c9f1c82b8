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
	"math"
	"math/big"
	"math/rand"
)

// STANDARD_FUNC_NAMES includes some standard function names used when
// generating random expressions.
var STANDARD_FUNC_NAMES = []string{"sin", "cos", "tan", "exp", "ln"}

// STANDARD_VAR_NAMES includes some standard variable names used when
// generating random expressions.
var STANDARD_VAR_NAMES = []string{"x", "y", "z", "alpha", "mu", "theta"}

// DEFAULT_GENERATOR_STDDEV is the default standard deviation used when
// generating random number literals.
const DEFAULT_GENERATOR_STDDEV = 10

// Generator generates random (but always well formed) expression trees.
// This is useful for producing showcase material, and for hammering
// consumers with arbitrary input.
type Generator struct {
	// If NoDecimals is set, all number literals will be integers.
	NoDecimals bool
	// Stddev specifies the standard deviation for generating random numbers
	// on a normal distribution.  If this is 0, DEFAULT_GENERATOR_STDDEV is
	// used.
	Stddev float64
	// FuncNames stores the allowed function names.
	FuncNames []string
	// VarNames stores the allowed variable names.
	VarNames []string
	// Ops stores the allowed binary operators.
	Ops []BinaryOp
	// Source of randomness.
	rand *rand.Rand
}

// NewGenerator constructs a generator with the standard vocabularies and a
// given seed, so that generation is reproducible.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		FuncNames: STANDARD_FUNC_NAMES,
		VarNames:  STANDARD_VAR_NAMES,
		Ops:       []BinaryOp{ADD, SUB, MUL, DIV, POW},
		rand:      rand.New(rand.NewSource(seed)),
	}
}

// Generate generates a random expression with a given maximum nesting depth.
// If maxDepth is 0, the result is always a leaf.
func (g *Generator) Generate(maxDepth int) Expr {
	if maxDepth == 0 || g.rand.Intn(maxDepth+1) == 0 {
		return g.randomLeaf()
	}
	//
	switch g.rand.Intn(4) {
	case 0:
		if len(g.FuncNames) > 0 {
			return g.randomCall(maxDepth)
		}
		//
		return g.randomBinary(maxDepth)
	case 1:
		return g.randomUnary(maxDepth)
	default:
		return g.randomBinary(maxDepth)
	}
}

func (g *Generator) randomBinary(maxDepth int) *Binary {
	op := g.Ops[g.rand.Intn(len(g.Ops))]
	//
	return &Binary{op, g.Generate(maxDepth - 1), g.Generate(maxDepth - 1)}
}

func (g *Generator) randomUnary(maxDepth int) *Unary {
	return &Unary{NEG, g.Generate(maxDepth - 1)}
}

func (g *Generator) randomCall(maxDepth int) *Call {
	name := g.FuncNames[g.rand.Intn(len(g.FuncNames))]
	//
	return &Call{name, []Expr{g.Generate(maxDepth - 1)}}
}

func (g *Generator) randomLeaf() Expr {
	if len(g.VarNames) > 0 && g.rand.Intn(2) == 0 {
		return &Variable{g.VarNames[g.rand.Intn(len(g.VarNames))]}
	}
	//
	return g.randomNumber()
}

func (g *Generator) randomNumber() Expr {
	stddev := g.Stddev
	//
	if stddev == 0 {
		stddev = DEFAULT_GENERATOR_STDDEV
	}
	//
	sample := g.rand.NormFloat64() * stddev
	//
	if g.NoDecimals || g.rand.Intn(2) == 0 {
		return &Integer{big.NewInt(int64(math.Round(sample)))}
	}
	// Two decimal places keeps literals readable.
	sample = math.Round(sample*100) / 100
	//
	return &Decimal{canonicalZero(big.NewFloat(sample).SetPrec(decimalPrecision))}
}
