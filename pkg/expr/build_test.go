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
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/go-mathexpr/pkg/expr/symbol"
	"github.com/stretchr/testify/assert"
)

func TestBinaryArity(t *testing.T) {
	var (
		x = NewVariable("x")
		y = NewVariable("y")
		z = NewVariable("z")
	)

	tests := []struct {
		name     string
		operands []Expr
	}{
		{name: "zero operands", operands: nil},
		{name: "one operand", operands: []Expr{x}},
		{name: "three operands", operands: []Expr{x, y, z}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var arityErr *ArityError
			//
			_, err := NewBinary(SUB, tt.operands...)
			//
			assert.Error(t, err)
			assert.True(t, errors.As(err, &arityErr))
			assert.Equal(t, uint(2), arityErr.Expected)
			assert.Equal(t, uint(len(tt.operands)), arityErr.Actual)
		})
	}
	// Exactly two operands succeeds, preserving operand order.
	node, err := NewBinary(SUB, x, y)
	assert.NoError(t, err)
	assert.Same(t, x, node.Left())
	assert.Same(t, y, node.Right())
}

func TestUnaryArity(t *testing.T) {
	var (
		x        = NewVariable("x")
		y        = NewVariable("y")
		arityErr *ArityError
	)
	//
	_, err := NewUnary(NEG)
	assert.True(t, errors.As(err, &arityErr))
	//
	_, err = NewUnary(NEG, x, y)
	assert.True(t, errors.As(err, &arityErr))
	assert.Equal(t, uint(2), arityErr.Actual)
	//
	node, err := NewUnary(NEG, x)
	assert.NoError(t, err)
	assert.Same(t, x, node.Arg())
}

func TestClosedBinaryOperatorSet(t *testing.T) {
	var (
		x = NewVariable("x")
		y = NewVariable("y")
	)
	// Every enumerated tag succeeds.
	for op := ADD; op.Valid(); op++ {
		node, err := NewBinary(op, x, y)
		assert.NoError(t, err)
		assert.Equal(t, op, node.Op())
	}
	// Anything else fails.
	var unknownErr *UnknownOperatorError
	//
	_, err := NewBinary(BinaryOp(nbinops), x, y)
	assert.True(t, errors.As(err, &unknownErr))
	assert.False(t, unknownErr.Unary)
	//
	_, err = NewBinary(BinaryOp(255), x, y)
	assert.Error(t, err)
}

func TestClosedUnaryOperatorSet(t *testing.T) {
	x := NewVariable("x")
	//
	for op := NEG; op.Valid(); op++ {
		node, err := NewUnary(op, x)
		assert.NoError(t, err)
		assert.Equal(t, op, node.Op())
	}
	//
	var unknownErr *UnknownOperatorError
	//
	_, err := NewUnary(UnaryOp(nunops), x)
	assert.True(t, errors.As(err, &unknownErr))
	assert.True(t, unknownErr.Unary)
}

func TestMalformedLiterals(t *testing.T) {
	tests := []struct {
		name    string
		attempt func() error
	}{
		{
			name: "non-numeric integer",
			attempt: func() error {
				_, err := NewInteger("12x")
				return err
			},
		},
		{
			name: "fractional integer",
			attempt: func() error {
				_, err := NewInteger("1.5")
				return err
			},
		},
		{
			name: "non-numeric decimal",
			attempt: func() error {
				_, err := NewDecimal("abc")
				return err
			},
		},
		{
			name: "non-finite decimal",
			attempt: func() error {
				_, err := NewDecimal("Inf")
				return err
			},
		},
		{
			name: "non-finite decimal value",
			attempt: func() error {
				_, err := NewDecimalFromBig(big.NewFloat(1).SetInf(false))
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var malformedErr *MalformedLiteralError
			//
			err := tt.attempt()
			assert.Error(t, err)
			assert.True(t, errors.As(err, &malformedErr))
		})
	}
	// Sanity check well formed literals.
	num, err := NewInteger("-12")
	assert.NoError(t, err)
	assert.Equal(t, int64(-12), num.Value().Int64())
	//
	dec, err := NewDecimal("12.34")
	assert.NoError(t, err)
	assert.Equal(t, "12.34", dec.String())
}

func TestUnknownSymbol(t *testing.T) {
	var unknownErr *UnknownSymbolError
	// Every registered tag succeeds.
	for tag := symbol.ELLIPSIS; symbol.Known(tag); tag++ {
		node, err := NewSymbol(tag)
		assert.NoError(t, err)
		assert.Equal(t, tag, node.Tag())
	}
	//
	_, err := NewSymbol(symbol.Tag(99))
	assert.True(t, errors.As(err, &unknownErr))
}

func TestZeroArityCall(t *testing.T) {
	var visited []Expr
	//
	call := NewCall("f")
	assert.Equal(t, uint(0), call.Arity())
	assert.Nil(t, call.Children())
	// Traversal visits the call itself, with no argument children.
	PostOrder(call, VisitorFunc(func(node Expr) {
		visited = append(visited, node)
	}))
	//
	assert.Len(t, visited, 1)
	assert.Same(t, call, visited[0])
}

func TestCallArgumentsCopied(t *testing.T) {
	args := []Expr{NewVariable("x"), NewVariable("y")}
	call := NewCall("f", args...)
	// Mutating the caller's slice must not affect the node.
	args[0] = NewVariable("z")
	//
	assert.Equal(t, "(f x y)", call.String())
}
