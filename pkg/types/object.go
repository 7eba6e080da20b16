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

// Object is a regular (prototype-based) object type.  Objects record the
// traits they implement, delegate failed lookups to their prototype, and may
// be generic.
type Object struct {
	base
	// implemented records the traits this object declares an implementation
	// of.
	implemented map[*Trait]bool
}

// NewObject constructs a fresh object type with a given name and prototype
// (which may be nil for a root object).
func NewObject(name string, prototype Type) *Object {
	return &Object{newBase(name, prototype), make(map[*Trait]bool)}
}

// Kind returns KindObject.
func (p *Object) Kind() Kind {
	return KindObject
}

// ImplementTrait records that this object implements a given trait, defining
// the trait's default methods on the object where not already present.
func (p *Object) ImplementTrait(trait *Trait) {
	p.implemented[trait] = true
	//
	for _, name := range trait.Attributes().Names() {
		if !p.attributes.Contains(name) {
			symbol, _ := trait.Attributes().Lookup(name)
			p.attributes.Define(name, symbol.Type)
		}
	}
}

// Implements reports whether this object has declared an implementation of a
// given trait.
func (p *Object) Implements(trait *Trait) bool {
	return p.implemented[trait]
}

// NewInstance creates a per-site instance of a generic object, assigning the
// given concrete types to its formal parameters positionally.  The instance
// shares the attribute table and prototype of the original.
func (p *Object) NewInstance(arguments ...Type) *Object {
	instance := &Object{
		base{p.name, p.attributes, p.prototype, NewParameterTable()},
		p.implemented,
	}
	//
	if p.typeParameters != nil {
		for i := uint(0); i < p.typeParameters.Size(); i++ {
			name := p.typeParameters.Names()[i]
			instance.typeParameters.parameters[name] = p.typeParameters.At(i)
			instance.typeParameters.names = append(instance.typeParameters.names, name)
			//
			if uint(len(arguments)) > i {
				instance.typeParameters.Init(name, arguments[i])
			}
		}
	}
	//
	return instance
}
