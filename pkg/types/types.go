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

// Package types realises the Rook type lattice: a prototype-chain and trait
// system with optional generics.  The variant set is closed, and the shared
// operations (attribute lookup, method lookup, compatibility, message return
// types) are implemented once over the closed set rather than through open
// dispatch.
package types

// Kind identifies the variant of a type value.  The set is closed.
type Kind uint8

const (
	// KindObject is a regular object type.
	KindObject Kind = iota
	// KindTrait is a trait: a named set of required methods and traits.
	KindTrait
	// KindBlock is a callable (method or closure) type.
	KindBlock
	// KindTypeParameter is a formal type parameter.
	KindTypeParameter
	// KindOptional wraps another type, additionally permitting nil.
	KindOptional
	// KindConstraint is a not-yet-resolved trait constraint.
	KindConstraint
	// KindDynamic is the dynamically-typed wildcard.
	KindDynamic
	// KindNil is the type of nil.
	KindNil
	// KindVoid is the type of expressions which never produce a value.
	KindVoid
	// KindSelf stands for the type of the receiver at the call site.
	KindSelf
	// KindUnion is a union of two or more types.
	KindUnion
	// KindInteger is the immutable integer primitive wrapper.
	KindInteger
	// KindFloat is the immutable float primitive wrapper.
	KindFloat
	// KindString is the immutable string primitive wrapper.
	KindString
	// KindBoolean is the immutable boolean primitive wrapper.
	KindBoolean
)

// Type is the interface shared by every variant of the type lattice.  Beyond
// these accessors, all behaviour is implemented by the package-level
// operations, which dispatch over the closed variant set.
type Type interface {
	// Kind returns the variant tag of this type.
	Kind() Kind
	// Name returns the display name of this type.  For generic types with
	// initialised parameters, the name includes the instances.
	Name() string
	// Attributes returns the attribute table of this type.
	Attributes() *SymbolTable
	// Prototype returns the prototype this type delegates lookups to, or nil
	// if it has none.
	Prototype() Type
	// TypeParameters returns the formal type parameters of this type, or nil
	// if it has none.
	TypeParameters() *ParameterTable
}

// DefineAttribute defines an attribute on a given type.
func DefineAttribute(t Type, name string, typ Type) Symbol {
	return t.Attributes().Define(name, typ)
}

// LookupAttribute looks up an attribute by name, walking the prototype chain
// and returning the first hit.  Dynamic answers every lookup with a
// dynamically-typed symbol; Optional delegates to its wrapped type.
func LookupAttribute(t Type, name string) (Symbol, bool) {
	switch t := t.(type) {
	case *Dynamic:
		return Symbol{Name: name, Type: t}, true
	case *Optional:
		return LookupAttribute(t.Inner, name)
	}
	// Walk the prototype chain.
	for current := t; current != nil; current = current.Prototype() {
		if symbol, ok := current.Attributes().Lookup(name); ok {
			return symbol, true
		}
	}
	//
	return Symbol{}, false
}

// LookupMethod looks up a method by name.  Methods live in the attribute
// table, so this is attribute lookup restricted to block-typed hits; traits
// additionally expose their default methods through the same traversal.
func LookupMethod(t Type, name string) (Symbol, bool) {
	symbol, ok := LookupAttribute(t, name)
	//
	if !ok {
		return Symbol{}, false
	}
	//
	switch symbol.Type.(type) {
	case *Block, *Dynamic:
		return symbol, true
	}
	//
	return Symbol{}, false
}

// RespondsTo reports whether a given type responds to a given message.
// Dynamic responds to everything.
func RespondsTo(t Type, name string) bool {
	switch t := t.(type) {
	case *Dynamic:
		return true
	case *Optional:
		return RespondsTo(t.Inner, name)
	case *Constraint:
		return t.RespondsTo(name)
	}
	//
	_, ok := LookupMethod(t, name)
	//
	return ok
}

// ReturnTypeOf computes the type produced by sending a given message to a
// given receiver.  Self types in the method signature resolve to the
// receiver, so that a trait default method returning Self yields the
// implementing type.
func ReturnTypeOf(t Type, name string) (Type, bool) {
	symbol, ok := LookupMethod(t, name)
	//
	if !ok {
		return nil, false
	}
	//
	switch method := symbol.Type.(type) {
	case *Block:
		return ResolveType(method.Returns, t), true
	case *Dynamic:
		return method, true
	}
	//
	return nil, false
}

// ResolveType resolves occurrences of Self against a concrete self type.
// Optional wrappers resolve through to their wrapped type.
func ResolveType(t Type, self Type) Type {
	switch t := t.(type) {
	case *SelfType:
		return self
	case *Optional:
		return NewOptional(ResolveType(t.Inner, self))
	case nil:
		return nil
	}
	//
	return t
}
