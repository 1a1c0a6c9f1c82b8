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
package hash

// Set defines a generic set implementation backed by a map.  This is a true
// hashtable in that collisions are handled gracefully using buckets, rather
// than simply discarding them.
type Set[T Hasher[T]] struct {
	// buckets maps hashcodes to *buckets* of items.
	buckets map[uint64]setBucket[T]
}

// NewSet creates a new Set with a given underlying capacity.
func NewSet[T Hasher[T]](size uint) *Set[T] {
	buckets := make(map[uint64]setBucket[T], size)
	return &Set[T]{buckets}
}

// Size returns the number of unique items stored in this Set.
func (p *Set[T]) Size() uint {
	count := uint(0)
	for _, b := range p.buckets {
		count += uint(len(b.items))
	}

	return count
}

// Insert a new item into this set, returning true if it was already
// contained and false otherwise.
func (p *Set[T]) Insert(item T) bool {
	// Compute item's hashcode
	hash := item.Hash()
	// Lookup existing bucket
	bucket := p.buckets[hash]
	// Insert new item
	contained := bucket.insert(item)
	// Update map
	p.buckets[hash] = bucket
	// Done
	return contained
}

// Contains checks whether the given item is contained within this set, or
// not.
func (p *Set[T]) Contains(item T) bool {
	hash := item.Hash()

	if bucket, ok := p.buckets[hash]; ok {
		return bucket.contains(item)
	}

	return false
}

// ============================================================================
// Bucket
// ============================================================================

type setBucket[T Hasher[T]] struct {
	items []T
}

// Insert a new item into this bucket.
func (b *setBucket[T]) insert(item T) bool {
	if b.contains(item) {
		// Item already present, so nothing to do.
		return true
	}
	// Append item
	b.items = append(b.items, item)
	// Item not present
	return false
}

// Check whether this bucket contains a given item, or not.
func (b *setBucket[T]) contains(item T) bool {
	for _, i := range b.items {
		if item.Equals(i) {
			return true
		}
	}

	return false
}
