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

// TypeParameter is a formal type parameter of a generic type.  Parameters may
// require traits of their eventual instances.
type TypeParameter struct {
	base
	// RequiredTraits are the traits any instance of this parameter must
	// implement.
	RequiredTraits []*Trait
}

// NewTypeParameter constructs a fresh type parameter with a given name.
func NewTypeParameter(name string, required ...*Trait) *TypeParameter {
	return &TypeParameter{newBase(name, nil), required}
}

// Kind returns KindTypeParameter.
func (p *TypeParameter) Kind() Kind {
	return KindTypeParameter
}

// RequiresTrait reports whether this parameter requires a given trait,
// transitively.
func (p *TypeParameter) RequiresTrait(trait *Trait) bool {
	for _, required := range p.RequiredTraits {
		if required == trait || required.RequiresTrait(trait) {
			return true
		}
	}
	//
	return false
}

// ParameterTable is an ordered mapping from formal parameter names to
// parameters, with positional access and both positional and by-name
// instantiation.
type ParameterTable struct {
	// names, in declaration order.
	names []string
	// parameters maps each name to its formal parameter.
	parameters map[string]*TypeParameter
	// instances maps each name to the concrete type at this use site.
	instances map[string]Type
}

// NewParameterTable constructs an initially empty parameter table.
func NewParameterTable() *ParameterTable {
	return &ParameterTable{nil, make(map[string]*TypeParameter), make(map[string]Type)}
}

// Define registers a fresh formal parameter under a given name.
func (p *ParameterTable) Define(name string) *TypeParameter {
	param := NewTypeParameter(name)
	//
	if _, ok := p.parameters[name]; !ok {
		p.names = append(p.names, name)
	}
	//
	p.parameters[name] = param
	//
	return param
}

// Lookup returns the formal parameter declared under a given name, if any.
func (p *ParameterTable) Lookup(name string) (*TypeParameter, bool) {
	param, ok := p.parameters[name]
	return param, ok
}

// At returns the ith formal parameter in declaration order.
func (p *ParameterTable) At(index uint) *TypeParameter {
	return p.parameters[p.names[index]]
}

// Init assigns a concrete type to a formal parameter by name.
func (p *ParameterTable) Init(name string, instance Type) {
	p.instances[name] = instance
}

// InitAt assigns a concrete type to the ith formal parameter.
func (p *ParameterTable) InitAt(index uint, instance Type) {
	p.instances[p.names[index]] = instance
}

// Instance returns the concrete type assigned to a formal parameter, if any.
func (p *ParameterTable) Instance(name string) (Type, bool) {
	instance, ok := p.instances[name]
	return instance, ok
}

// Size returns the number of formal parameters declared.
func (p *ParameterTable) Size() uint {
	return uint(len(p.names))
}

// Names returns the declared parameter names in order.  The returned slice is
// shared with the table and must not be mutated.
func (p *ParameterTable) Names() []string {
	return p.names
}
