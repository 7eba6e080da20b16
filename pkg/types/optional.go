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
package types

// Optional wraps another type, additionally permitting nil.  Most behaviour
// delegates to the wrapped type.
type Optional struct {
	// Inner is the wrapped type.
	Inner Type
}

// NewOptional wraps a given type.  Wrapping an optional (or nil) is the
// identity.
func NewOptional(inner Type) Type {
	if _, ok := inner.(*Optional); ok || inner == nil {
		return inner
	}
	//
	return &Optional{inner}
}

// Kind returns KindOptional.
func (p *Optional) Kind() Kind {
	return KindOptional
}

// Name returns "?" followed by the wrapped type's name.
func (p *Optional) Name() string {
	return "?" + p.Inner.Name()
}

// Attributes delegates to the wrapped type.
func (p *Optional) Attributes() *SymbolTable {
	return p.Inner.Attributes()
}

// Prototype delegates to the wrapped type.
func (p *Optional) Prototype() Type {
	return p.Inner.Prototype()
}

// TypeParameters delegates to the wrapped type.
func (p *Optional) TypeParameters() *ParameterTable {
	return p.Inner.TypeParameters()
}
