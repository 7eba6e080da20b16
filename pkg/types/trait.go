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

// Trait is a named set of required methods and required other traits.  A
// trait's attribute table holds its default methods; requirements are kept
// separately.
type Trait struct {
	base
	// requiredMethods are the methods any implementor must define, keyed by
	// name with block-typed entries.
	requiredMethods *SymbolTable
	// RequiredTraits are the traits any implementor must also implement.
	RequiredTraits []*Trait
}

// NewTrait constructs a fresh trait with a given name and prototype.
func NewTrait(name string, prototype Type) *Trait {
	return &Trait{newBase(name, prototype), NewSymbolTable(), nil}
}

// Kind returns KindTrait.
func (p *Trait) Kind() Kind {
	return KindTrait
}

// RequiredMethods returns the table of methods any implementor must define.
func (p *Trait) RequiredMethods() *SymbolTable {
	return p.requiredMethods
}

// DefineRequiredMethod adds a required method with a given signature.
func (p *Trait) DefineRequiredMethod(name string, signature *Block) Symbol {
	return p.requiredMethods.Define(name, signature)
}

// RequireTrait adds a required trait.
func (p *Trait) RequireTrait(trait *Trait) {
	p.RequiredTraits = append(p.RequiredTraits, trait)
}

// RequiresTrait reports whether this trait requires a given trait, taking the
// transitive closure over required traits.
func (p *Trait) RequiresTrait(trait *Trait) bool {
	for _, required := range p.RequiredTraits {
		if required == trait || required.RequiresTrait(trait) {
			return true
		}
	}
	//
	return false
}

// RequiresMethod reports whether this trait requires (or provides a default
// for) a method of a given name, taking the transitive closure over required
// traits.
func (p *Trait) RequiresMethod(name string) bool {
	if p.requiredMethods.Contains(name) || p.attributes.Contains(name) {
		return true
	}
	//
	for _, required := range p.RequiredTraits {
		if required.RequiresMethod(name) {
			return true
		}
	}
	//
	return false
}

// ImplementsTrait reports whether a given type implements a given trait.
// For objects, this checks the declared implementation set, the required
// trait closure, and required-method implementation by name.  Traits
// implement other traits through trait compatibility.
func ImplementsTrait(t Type, trait *Trait) bool {
	switch t := t.(type) {
	case *Trait:
		return traitCompatible(t, trait)
	case *TypeParameter:
		return t.RequiresTrait(trait)
	case *Constraint:
		if resolved, ok := t.Resolved(); ok {
			return ImplementsTrait(resolved, trait)
		}
		//
		return false
	case *Object:
		if t.Implements(trait) {
			return implementsRequirements(t, trait)
		}
	}
	//
	return implementsRequirements(t, trait)
}

// Check the required-trait closure and required-method set of a trait against
// a candidate implementor.
func implementsRequirements(t Type, trait *Trait) bool {
	for _, required := range trait.RequiredTraits {
		if !ImplementsTrait(t, required) {
			return false
		}
	}
	//
	for _, name := range trait.requiredMethods.Names() {
		if !RespondsTo(t, name) {
			return false
		}
	}
	//
	return true
}

// Trait-to-trait compatibility: the two traits have equal requirement sets,
// or the candidate is a subtrait whose requirements encompass those of the
// target.
func traitCompatible(candidate *Trait, target *Trait) bool {
	if candidate == target {
		return true
	}
	// Check every required trait of the target is covered.
	for _, required := range target.RequiredTraits {
		if candidate != required && !candidate.RequiresTrait(required) {
			return false
		}
	}
	// Check every required method of the target is covered.
	for _, name := range target.requiredMethods.Names() {
		if !candidate.RequiresMethod(name) {
			return false
		}
	}
	//
	return true
}
