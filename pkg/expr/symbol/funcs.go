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

import "slices"

// SPECIAL_FUNCS lists the function names which have a dedicated LaTeX command
// setting them in roman (rather than italic) type.  These are the amsmath
// operators which can sensibly be written using standard function syntax;
// limits, for example, are excluded since they cannot.
var SPECIAL_FUNCS = []string{
	"exp", "log", "ln", "lg",
	"sin", "cos", "tan", "sec", "csc", "cot",
	"arcsin", "arccos", "arctan",
	"sinh", "cosh", "tanh", "coth",
	"max", "min",
	"Pr",
	"gcd",
	"det", "dim", "ker",
	"inf", "sup",
}

// IsSpecialFunction checks whether a given function name has a dedicated
// LaTeX command.
func IsSpecialFunction(name string) bool {
	return slices.Contains(SPECIAL_FUNCS, name)
}
