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

import "strings"

// Letter describes one case of a Greek letter, giving its ASCII name along
// with the preferred unicode and LaTeX renderings.
type Letter struct {
	// ASCII name of this letter (e.g. "pi" or "Pi").
	Ascii string
	// Unicode rendering of this letter (e.g. "π" or "Π").
	Unicode string
	// LaTeX command for this letter (e.g. "\pi" or "\Pi").
	Latex string
}

// GREEK_LETTERS maps every Greek letter (both cases) to its renderings,
// keyed by ASCII name.  The name is capitalised for the uppercase letter and
// lowercase otherwise: "pi" maps to π, whilst "Pi" maps to Π.
var GREEK_LETTERS map[string]Letter = buildGreekLetters()

// Greek alphabet, giving the ASCII name along with the lowercase and
// uppercase unicode forms.
var greekAlphabet = []struct {
	name  string
	lower string
	upper string
}{
	{"alpha", "α", "Α"},
	{"beta", "β", "Β"},
	{"gamma", "γ", "Γ"},
	{"delta", "δ", "Δ"},
	{"epsilon", "ε", "Ε"},
	{"zeta", "ζ", "Ζ"},
	{"eta", "η", "Η"},
	{"theta", "θ", "Θ"},
	{"iota", "ι", "Ι"},
	{"kappa", "κ", "Κ"},
	{"lambda", "λ", "Λ"},
	{"mu", "μ", "Μ"},
	{"nu", "ν", "Ν"},
	{"xi", "ξ", "Ξ"},
	{"omicron", "ο", "Ο"},
	{"pi", "π", "Π"},
	{"rho", "ρ", "Ρ"},
	{"sigma", "σ", "Σ"},
	{"tau", "τ", "Τ"},
	{"upsilon", "υ", "Υ"},
	{"phi", "φ", "Φ"},
	{"chi", "χ", "Χ"},
	{"psi", "ψ", "Ψ"},
	{"omega", "ω", "Ω"},
}

func buildGreekLetters() map[string]Letter {
	letters := make(map[string]Letter, 2*len(greekAlphabet))
	//
	for _, l := range greekAlphabet {
		capitalised := strings.ToUpper(l.name[:1]) + l.name[1:]
		// Lowercase form
		letters[l.name] = Letter{l.name, l.lower, "\\" + l.name}
		// Uppercase form
		letters[capitalised] = Letter{capitalised, l.upper, "\\" + capitalised}
	}
	//
	return letters
}
