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

// Constraint is a not-yet-resolved requirement that some type parameter
// eventually implements a particular set of methods.  A constraint can be
// partially resolved: inference against a target stores the inferred type
// and, once every required method has been satisfied, marks the constraint
// fully resolved.
type Constraint struct {
	base
	// requiredMethods are the methods the eventual type must respond to,
	// keyed by name with block-typed signatures.
	requiredMethods *SymbolTable
	// resolved is the inferred type, once inference succeeds.
	resolved Type
	// optional records whether inference went through an optional target.
	optional bool
}

// NewConstraint constructs a fresh, unresolved constraint.
func NewConstraint(name string) *Constraint {
	return &Constraint{newBase(name, nil), NewSymbolTable(), nil, false}
}

// Kind returns KindConstraint.
func (p *Constraint) Kind() Kind {
	return KindConstraint
}

// RequireMethod adds a method the eventual type must respond to.
func (p *Constraint) RequireMethod(name string, signature *Block) {
	p.requiredMethods.Define(name, signature)
}

// RequiredMethods returns the methods the eventual type must respond to.
func (p *Constraint) RequiredMethods() *SymbolTable {
	return p.requiredMethods
}

// UnmetRequirements returns the names of required methods a given target does
// not respond to.
func (p *Constraint) UnmetRequirements(target Type) []string {
	var unmet []string
	//
	for _, name := range p.requiredMethods.Names() {
		if !RespondsTo(target, name) {
			unmet = append(unmet, name)
		}
	}
	//
	return unmet
}

// InferTo attempts to resolve this constraint against a target type.  The
// inference succeeds, storing the target as the resolved type, when the
// target responds to every required method.
func (p *Constraint) InferTo(target Type) bool {
	if len(p.UnmetRequirements(target)) != 0 {
		return false
	}
	//
	p.resolved = target
	//
	return true
}

// InferAsOptional attempts to resolve this constraint against an optional of
// the target type.
func (p *Constraint) InferAsOptional(target Type) bool {
	if !p.InferTo(NewOptional(target)) {
		return false
	}
	//
	p.optional = true
	//
	return true
}

// InferredAsOptional reports whether inference went through an optional
// target.
func (p *Constraint) InferredAsOptional() bool {
	return p.optional
}

// Resolved returns the inferred type, once inference has succeeded.
func (p *Constraint) Resolved() (Type, bool) {
	return p.resolved, p.resolved != nil
}

// RespondsTo reports whether this constraint (or, once resolved, its
// inferred type) responds to a given message.
func (p *Constraint) RespondsTo(name string) bool {
	if p.resolved != nil {
		return RespondsTo(p.resolved, name)
	}
	//
	return p.requiredMethods.Contains(name)
}

// CompatibleWith determines compatibility for an unresolved constraint:
// until resolution, only type parameters, traits and dynamic match; once
// resolved, the inferred type decides.
func (p *Constraint) CompatibleWith(other Type) bool {
	if p.resolved != nil {
		return Compatible(p.resolved, other)
	}
	//
	switch other.Kind() {
	case KindTypeParameter, KindTrait, KindDynamic:
		return true
	}
	//
	return false
}
