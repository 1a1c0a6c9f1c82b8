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

import "strings"

func (p *Integer) String() string {
	return p.value.String()
}

func (p *Decimal) String() string {
	return p.value.Text('g', -1)
}

func (p *Variable) String() string {
	return p.name
}

func (p *Symbol) String() string {
	return p.tag.String()
}

func (p *Binary) String() string {
	return naryString(p.op.String(), p.left, p.right)
}

func (p *Unary) String() string {
	return naryString(p.op.String(), p.arg)
}

func (p *Call) String() string {
	return naryString(p.name, p.args...)
}

// NaryString produces an S-Expression style rendering of an operator applied
// to zero or more expressions, such as "(+ 1 x)".
func naryString(operator string, exprs ...Expr) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	builder.WriteString(operator)
	//
	for _, e := range exprs {
		builder.WriteString(" ")
		builder.WriteString(e.String())
	}
	//
	builder.WriteString(")")
	// Done
	return builder.String()
}
