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
	"math/big"

	"github.com/consensys/go-mathexpr/pkg/expr/symbol"
)

// One constructor per node form.  Each validates its shape at construction
// time, so that a tree which exists is (by construction) finite, acyclic and
// arity-correct.  Constructors copy any mutable inputs, hence a caller
// cannot subsequently alter a node through a retained reference.

// NewInteger constructs an integer literal from a decimal digit string.
// This fails with MalformedLiteralError if the string does not denote an
// integer.
func NewInteger(literal string) (*Integer, error) {
	value, ok := new(big.Int).SetString(literal, 10)
	//
	if !ok {
		return nil, &MalformedLiteralError{literal, "not an integer"}
	}
	//
	return &Integer{value}, nil
}

// NewIntegerFromBig constructs an integer literal from a given (exact)
// value, which is copied.  This cannot fail, since every big.Int is
// representable.
func NewIntegerFromBig(value *big.Int) *Integer {
	return &Integer{new(big.Int).Set(value)}
}

// NewDecimal constructs a decimal literal from a digit string such as
// "12.34".  This fails with MalformedLiteralError if the string does not
// denote a decimal number, or denotes a non-finite value.
func NewDecimal(literal string) (*Decimal, error) {
	value, ok := new(big.Float).SetPrec(decimalPrecision).SetString(literal)
	//
	if !ok {
		return nil, &MalformedLiteralError{literal, "not a decimal"}
	} else if value.IsInf() {
		return nil, &MalformedLiteralError{literal, "not finite"}
	}
	//
	return &Decimal{canonicalZero(value)}, nil
}

// NewDecimalFromBig constructs a decimal literal from a given value, which
// is copied and rounded to the canonical precision.  This fails with
// MalformedLiteralError if the value is not finite.
func NewDecimalFromBig(value *big.Float) (*Decimal, error) {
	if value.IsInf() {
		return nil, &MalformedLiteralError{value.String(), "not finite"}
	}
	//
	copied := new(big.Float).SetPrec(decimalPrecision).Set(value)
	//
	return &Decimal{canonicalZero(copied)}, nil
}

// Normalise negative zero to positive zero.  Cmp considers the two equal,
// hence they must also share a canonical representation for hashing.
func canonicalZero(value *big.Float) *big.Float {
	if value.Sign() == 0 && value.Signbit() {
		return value.Neg(value)
	}
	//
	return value
}

// NewVariable constructs a free variable with a given identifier.  Any
// identifier is permitted, including Greek letter names and subscripted
// names; identity is simply string equality.
func NewVariable(name string) *Variable {
	return &Variable{name}
}

// NewSymbol constructs an opaque symbol leaf.  This fails with
// UnknownSymbolError if the tag is outside the registered vocabulary.
func NewSymbol(tag symbol.Tag) (*Symbol, error) {
	if !symbol.Known(tag) {
		return nil, &UnknownSymbolError{uint8(tag)}
	}
	//
	return &Symbol{tag}, nil
}

// NewBinary constructs the application of a binary operator.  This fails
// with UnknownOperatorError if the tag is outside the closed operator set,
// and with ArityError unless exactly two operands are supplied.  Operands
// are taken in left-then-right order.
func NewBinary(op BinaryOp, operands ...Expr) (*Binary, error) {
	if !op.Valid() {
		return nil, &UnknownOperatorError{uint8(op), false}
	} else if len(operands) != 2 {
		return nil, &ArityError{op.String(), 2, uint(len(operands))}
	}
	//
	return &Binary{op, operands[0], operands[1]}, nil
}

// NewUnary constructs the application of a unary operator.  This fails with
// UnknownOperatorError if the tag is outside the closed operator set, and
// with ArityError unless exactly one operand is supplied.
func NewUnary(op UnaryOp, operands ...Expr) (*Unary, error) {
	if !op.Valid() {
		return nil, &UnknownOperatorError{uint8(op), true}
	} else if len(operands) != 1 {
		return nil, &ArityError{op.String(), 1, uint(len(operands))}
	}
	//
	return &Unary{op, operands[0]}, nil
}

// NewCall constructs the application of a named function to zero or more
// arguments, given in source order.  Any arity is acceptable at this level,
// including zero; the argument slice is copied.
func NewCall(name string, args ...Expr) *Call {
	var copied []Expr
	//
	if len(args) > 0 {
		copied = make([]Expr, len(args))
		copy(copied, args)
	}
	//
	return &Call{name, copied}
}
