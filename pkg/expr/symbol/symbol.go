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
package symbol

// Tag identifies an opaque symbol from a fixed vocabulary.  The vocabulary is
// closed at any given time, but is expected to grow: adding a new tag is an
// explicit extension of this package rather than something callers can do on
// the fly.
type Tag uint8

const (
	// ELLIPSIS indicates the continuation symbol (e.g. in "1, 2, ...").
	ELLIPSIS Tag = iota
	// INFINITY indicates the infinity symbol.
	INFINITY
	// UNDEFINED indicates a value which does not exist (e.g. an undefined
	// limit).
	UNDEFINED
)

// ntags identifies the number of registered tags, and must be updated
// whenever a new tag is added above.
const ntags = uint8(UNDEFINED) + 1

// Known checks whether a given tag is part of the registered vocabulary.
func Known(tag Tag) bool {
	return uint8(tag) < ntags
}

// String returns the name of this tag.
func (t Tag) String() string {
	switch t {
	case ELLIPSIS:
		return "ellipsis"
	case INFINITY:
		return "infinity"
	case UNDEFINED:
		return "undefined"
	}
	//
	return "???"
}

// Unicode returns the preferred unicode rendering of this tag.
func (t Tag) Unicode() string {
	switch t {
	case ELLIPSIS:
		return "…"
	case INFINITY:
		return "∞"
	case UNDEFINED:
		return "DNE"
	}
	//
	return "???"
}

// Latex returns the preferred LaTeX rendering of this tag.
func (t Tag) Latex() string {
	switch t {
	case ELLIPSIS:
		return "\\dots"
	case INFINITY:
		return "\\infty"
	case UNDEFINED:
		return "\\text{DNE}"
	}
	//
	return "???"
}

// UnicodeName returns the preferred unicode form of a given identifier.
// Identifiers which name a Greek letter (e.g. "mu", "Sigma") map to the
// corresponding letter; anything else is returned as is.
func UnicodeName(name string) string {
	if letter, ok := GREEK_LETTERS[name]; ok {
		return letter.Unicode
	}
	//
	return name
}

// LatexName returns the preferred LaTeX form of a given identifier.  Greek
// letters map to their LaTeX commands, special function names are set in
// roman type, and anything else is returned as is.
func LatexName(name string) string {
	if letter, ok := GREEK_LETTERS[name]; ok {
		return letter.Latex
	} else if IsSpecialFunction(name) {
		return "\\" + name
	}
	//
	return name
}
