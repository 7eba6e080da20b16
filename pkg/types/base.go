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

import "strings"

// base carries the state shared by every named variant of the lattice: a
// name, an attribute table, an optional prototype, and optional type
// parameters.  Variants embed it and inherit the default accessor
// behaviours.
type base struct {
	name           string
	attributes     *SymbolTable
	prototype      Type
	typeParameters *ParameterTable
}

func newBase(name string, prototype Type) base {
	return base{name, NewSymbolTable(), prototype, nil}
}

// Name returns the display name of this type.  For generic types, the formal
// parameter names (or their instances, where initialised) are joined with
// commas after the base name.
func (p *base) Name() string {
	if p.typeParameters == nil || p.typeParameters.Size() == 0 {
		return p.name
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(p.name)
	builder.WriteString("!(")
	//
	for i := uint(0); i < p.typeParameters.Size(); i++ {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		param := p.typeParameters.At(i)
		//
		if instance, ok := p.typeParameters.Instance(param.Name()); ok {
			builder.WriteString(instance.Name())
		} else {
			builder.WriteString(param.Name())
		}
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// Attributes returns the attribute table of this type.
func (p *base) Attributes() *SymbolTable {
	return p.attributes
}

// Prototype returns the prototype this type delegates lookups to, or nil.
func (p *base) Prototype() Type {
	return p.prototype
}

// SetPrototype replaces the prototype of this type.
func (p *base) SetPrototype(prototype Type) {
	p.prototype = prototype
}

// TypeParameters returns the formal type parameters of this type, or nil.
func (p *base) TypeParameters() *ParameterTable {
	return p.typeParameters
}

// DefineTypeParameter registers a new formal type parameter on this type.
func (p *base) DefineTypeParameter(name string) *TypeParameter {
	if p.typeParameters == nil {
		p.typeParameters = NewParameterTable()
	}
	//
	return p.typeParameters.Define(name)
}

// InitTypeParameter assigns a concrete type to a formal parameter at this use
// site.
func (p *base) InitTypeParameter(name string, instance Type) {
	if p.typeParameters == nil {
		p.typeParameters = NewParameterTable()
	}
	//
	p.typeParameters.Init(name, instance)
}

// TypeParameterNames returns the formal parameter names declared by a type
// and its prototype chain, outermost last.
func TypeParameterNames(t Type) []string {
	var names []string
	//
	for current := t; current != nil; current = current.Prototype() {
		if params := current.TypeParameters(); params != nil {
			names = append(names, params.Names()...)
		}
	}
	//
	return names
}

// LookupTypeParameter finds a formal parameter by name on a type or its
// prototype chain.
func LookupTypeParameter(t Type, name string) (*TypeParameter, bool) {
	for current := t; current != nil; current = current.Prototype() {
		if params := current.TypeParameters(); params != nil {
			if param, ok := params.Lookup(name); ok {
				return param, true
			}
		}
	}
	//
	return nil, false
}

// LookupTypeParameterInstance finds the concrete type assigned to a formal
// parameter at this use site, if any.
func LookupTypeParameterInstance(t Type, name string) (Type, bool) {
	for current := t; current != nil; current = current.Prototype() {
		if params := current.TypeParameters(); params != nil {
			if instance, ok := params.Instance(name); ok {
				return instance, true
			}
		}
	}
	//
	return nil, false
}
