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

import "fmt"

// All construction failures are reported synchronously to the caller
// (typically a parser, or a rewrite pass) and are never retried internally.
// Error-recovery policy belongs to the caller.

// ArityError signals that the wrong number of operands was supplied to an
// operator constructor.
type ArityError struct {
	// Operator being constructed.
	Operator string
	// Number of operands the operator requires.
	Expected uint
	// Number of operands actually supplied.
	Actual uint
}

// Error implements the error interface.
func (p *ArityError) Error() string {
	return fmt.Sprintf("operator %s expects exactly %d operand(s), but was given %d",
		p.Operator, p.Expected, p.Actual)
}

// UnknownOperatorError signals an operator tag outside the closed set.
type UnknownOperatorError struct {
	// Tag which was not recognised.
	Tag uint8
	// Indicates whether the tag was used as a unary (rather than binary)
	// operator.
	Unary bool
}

// Error implements the error interface.
func (p *UnknownOperatorError) Error() string {
	if p.Unary {
		return fmt.Sprintf("unknown unary operator tag (%d)", p.Tag)
	}
	//
	return fmt.Sprintf("unknown binary operator tag (%d)", p.Tag)
}

// UnknownSymbolError signals an opaque symbol tag outside the registered
// vocabulary.
type UnknownSymbolError struct {
	// Tag which was not recognised.
	Tag uint8
}

// Error implements the error interface.
func (p *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol tag (%d)", p.Tag)
}

// MalformedLiteralError signals a numeric leaf whose underlying value is not
// representable, such as an unparseable digit string or a non-finite
// decimal.  This is the only place numeric validity is checked at the tree
// level; all other numeric semantics belong to the evaluator.
type MalformedLiteralError struct {
	// Literal which could not be represented.
	Literal string
	// Reason why it could not be represented.
	Reason string
}

// Error implements the error interface.
func (p *MalformedLiteralError) Error() string {
	return fmt.Sprintf("malformed literal \"%s\" (%s)", p.Literal, p.Reason)
}
