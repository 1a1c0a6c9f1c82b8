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

// Structural equality and hashing.  Two expressions are equal iff they have
// the same form, the same tag/value and (recursively) equal children; the
// structural hash is consistent with this, enabling consumers to memoise by
// subtree without further ado.  Hashing follows FNV-1a, matching the hash
// collection utilities.

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Each node form hashes under a distinct seed, so that (say) a variable
// named "1" cannot collide with the integer 1.
const (
	integerSeed uint64 = iota + 1
	decimalSeed
	variableSeed
	symbolSeed
	binarySeed
	unarySeed
	callSeed
)

// Equal checks structural equality of two expressions, either of which may
// be nil.
func Equal(lhs Expr, rhs Expr) bool {
	if lhs == nil || rhs == nil {
		return lhs == rhs
	}
	//
	return lhs.Equals(rhs)
}

// Equals checks whether this literal equals another expression.
func (p *Integer) Equals(other Expr) bool {
	if o, ok := other.(*Integer); ok {
		return p.value.Cmp(o.value) == 0
	}
	//
	return false
}

// Hash returns a structural hash of this literal.
func (p *Integer) Hash() uint64 {
	return hashString(hashWord(offset64, integerSeed), p.value.String())
}

// Equals checks whether this literal equals another expression.  Observe
// that a Decimal is never equal to an Integer, even when numerically equal.
func (p *Decimal) Equals(other Expr) bool {
	if o, ok := other.(*Decimal); ok {
		return p.value.Cmp(o.value) == 0
	}
	//
	return false
}

// Hash returns a structural hash of this literal.  Since all decimals are
// held at one canonical precision, equal values render (and hence hash)
// identically.
func (p *Decimal) Hash() uint64 {
	return hashString(hashWord(offset64, decimalSeed), p.value.Text('e', -1))
}

// Equals checks whether this variable equals another expression.
func (p *Variable) Equals(other Expr) bool {
	if o, ok := other.(*Variable); ok {
		return p.name == o.name
	}
	//
	return false
}

// Hash returns a structural hash of this variable.
func (p *Variable) Hash() uint64 {
	return hashString(hashWord(offset64, variableSeed), p.name)
}

// Equals checks whether this symbol equals another expression.
func (p *Symbol) Equals(other Expr) bool {
	if o, ok := other.(*Symbol); ok {
		return p.tag == o.tag
	}
	//
	return false
}

// Hash returns a structural hash of this symbol.
func (p *Symbol) Hash() uint64 {
	return hashWord(hashWord(offset64, symbolSeed), uint64(p.tag))
}

// Equals checks whether this node equals another expression.
func (p *Binary) Equals(other Expr) bool {
	if o, ok := other.(*Binary); ok {
		return p.op == o.op && p.left.Equals(o.left) && p.right.Equals(o.right)
	}
	//
	return false
}

// Hash returns a structural hash of this node.
func (p *Binary) Hash() uint64 {
	hash := hashWord(offset64, binarySeed)
	hash = hashWord(hash, uint64(p.op))
	hash = hashWord(hash, p.left.Hash())
	// Done
	return hashWord(hash, p.right.Hash())
}

// Equals checks whether this node equals another expression.
func (p *Unary) Equals(other Expr) bool {
	if o, ok := other.(*Unary); ok {
		return p.op == o.op && p.arg.Equals(o.arg)
	}
	//
	return false
}

// Hash returns a structural hash of this node.
func (p *Unary) Hash() uint64 {
	hash := hashWord(offset64, unarySeed)
	hash = hashWord(hash, uint64(p.op))
	// Done
	return hashWord(hash, p.arg.Hash())
}

// Equals checks whether this call equals another expression.
func (p *Call) Equals(other Expr) bool {
	o, ok := other.(*Call)
	//
	if !ok || p.name != o.name || len(p.args) != len(o.args) {
		return false
	}
	//
	for i, arg := range p.args {
		if !arg.Equals(o.args[i]) {
			return false
		}
	}
	//
	return true
}

// Hash returns a structural hash of this call.
func (p *Call) Hash() uint64 {
	hash := hashString(hashWord(offset64, callSeed), p.name)
	hash = hashWord(hash, uint64(len(p.args)))
	//
	for _, arg := range p.args {
		hash = hashWord(hash, arg.Hash())
	}
	//
	return hash
}

// ============================================================================
// Helpers
// ============================================================================

// Fold a 64-bit word into an FNV-1a hash, one byte at a time.
func hashWord(hash uint64, word uint64) uint64 {
	for i := 0; i < 8; i++ {
		hash ^= word & 0xff
		hash *= prime64
		word >>= 8
	}
	//
	return hash
}

// Fold a string into an FNV-1a hash.
func hashString(hash uint64, item string) uint64 {
	for i := 0; i < len(item); i++ {
		hash ^= uint64(item[i])
		hash *= prime64
	}
	//
	return hash
}
