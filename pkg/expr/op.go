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

// BinaryOp identifies one of the closed set of binary operators.  Tags
// outside this set are rejected at construction time with
// UnknownOperatorError.
type BinaryOp uint8

const (
	// ADD indicates addition (+).
	ADD BinaryOp = iota
	// SUB indicates subtraction (-).
	SUB
	// MUL indicates multiplication (*).
	MUL
	// DIV indicates division (/).
	DIV
	// POW indicates exponentiation (^).
	POW
	// LOG indicates a logarithm, where the left operand is the base and the
	// right operand the argument.
	LOG
	// MOD indicates the modulo operation.
	MOD
	// LE indicates a less-than-or-equals (<=) relationship.
	LE
	// GE indicates a greater-than-or-equals (>=) relationship.
	GE
	// LT indicates a less-than (<) relationship.
	LT
	// GT indicates a greater-than (>) relationship.
	GT
	// EQ indicates an equals (=) relationship.
	EQ
	// NEQ indicates a not-equals (!=) relationship.
	NEQ
	// APPROX indicates an approximately-equals (~) relationship.
	APPROX
	// SUBSET indicates a subset-or-equals relationship.
	SUBSET
	// PROPER_SUBSET indicates a proper (strict) subset relationship.
	PROPER_SUBSET
	// AND indicates logical conjunction.
	AND
	// OR indicates logical disjunction.
	OR
	// XOR indicates exclusive disjunction.
	XOR
	// IMPLIES indicates logical implication.  This tag serves double duty as
	// a directional arrow between two sub-equations; the tree does not
	// record which reading applies.
	IMPLIES
)

// nbinops identifies the number of binary operator tags.
const nbinops = uint8(IMPLIES) + 1

// Valid checks whether this tag is within the closed operator set.
func (op BinaryOp) Valid() bool {
	return uint8(op) < nbinops
}

// Commutative checks whether operand order is irrelevant for this operator.
// Renderers and rewriters must preserve operand order for everything else.
func (op BinaryOp) Commutative() bool {
	switch op {
	case ADD, MUL, EQ, NEQ, APPROX, AND, OR, XOR:
		return true
	}
	//
	return false
}

// String returns the name of this operator.
func (op BinaryOp) String() string {
	switch op {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case POW:
		return "^"
	case LOG:
		return "log"
	case MOD:
		return "mod"
	case LE:
		return "<="
	case GE:
		return ">="
	case LT:
		return "<"
	case GT:
		return ">"
	case EQ:
		return "="
	case NEQ:
		return "!="
	case APPROX:
		return "~"
	case SUBSET:
		return "subset"
	case PROPER_SUBSET:
		return "proper-subset"
	case AND:
		return "and"
	case OR:
		return "or"
	case XOR:
		return "xor"
	case IMPLIES:
		return "=>"
	}
	//
	return "???"
}

// ============================================================================
// Unary Operators
// ============================================================================

// UnaryOp identifies one of the closed set of unary operators.  Tags for
// display control (bold, strikethrough, italic) are a reserved extension
// point here, but are not yet part of the set.
type UnaryOp uint8

const (
	// NEG indicates unary negation (-).
	NEG UnaryOp = iota
	// PLUS indicates the identity operation (+).
	PLUS
	// NOT indicates logical negation.
	NOT
)

// nunops identifies the number of unary operator tags.
const nunops = uint8(NOT) + 1

// Valid checks whether this tag is within the closed operator set.
func (op UnaryOp) Valid() bool {
	return uint8(op) < nunops
}

// String returns the name of this operator.
func (op UnaryOp) String() string {
	switch op {
	case NEG:
		return "-"
	case PLUS:
		return "+"
	case NOT:
		return "!"
	}
	//
	return "???"
}
