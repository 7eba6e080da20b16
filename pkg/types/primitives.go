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

// Primitive is an immutable wrapper for one of the built-in value types:
// integers, floats, strings and booleans.  Primitives carry attributes and a
// prototype like any other type, but are never mutated after construction of
// the lattice.
type Primitive struct {
	base
	kind Kind
}

// NewInteger constructs the integer primitive wrapper.
func NewInteger(prototype Type) *Primitive {
	return &Primitive{newBase("Integer", prototype), KindInteger}
}

// NewFloat constructs the float primitive wrapper.
func NewFloat(prototype Type) *Primitive {
	return &Primitive{newBase("Float", prototype), KindFloat}
}

// NewString constructs the string primitive wrapper.
func NewString(prototype Type) *Primitive {
	return &Primitive{newBase("String", prototype), KindString}
}

// NewBoolean constructs the boolean primitive wrapper.
func NewBoolean(prototype Type) *Primitive {
	return &Primitive{newBase("Boolean", prototype), KindBoolean}
}

// Kind returns the primitive's variant tag.
func (p *Primitive) Kind() Kind {
	return p.kind
}
