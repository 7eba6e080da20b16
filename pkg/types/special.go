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

// Dynamic is the dynamically-typed wildcard.  It reports responding to every
// message, answers every attribute lookup with itself, and is compatible
// with everything except under strict compatibility.
type Dynamic struct {
	base
}

// NewDynamic constructs the dynamic type.
func NewDynamic() *Dynamic {
	return &Dynamic{newBase("Dynamic", nil)}
}

// Kind returns KindDynamic.
func (p *Dynamic) Kind() Kind {
	return KindDynamic
}

// Nil is the type of nil.  It is compatible with any optional.
type Nil struct {
	base
}

// NewNil constructs the nil type with a given prototype.
func NewNil(prototype Type) *Nil {
	return &Nil{newBase("Nil", prototype)}
}

// Kind returns KindNil.
func (p *Nil) Kind() Kind {
	return KindNil
}

// Void is the type of expressions which never produce a usable value.  It is
// universally compatible on the right-hand side, and all lookups on it
// report absence.
type Void struct {
	base
}

// NewVoid constructs the void type.
func NewVoid() *Void {
	return &Void{newBase("Void", nil)}
}

// Kind returns KindVoid.
func (p *Void) Kind() Kind {
	return KindVoid
}

// SelfType stands for the type of the receiver at the call site.  It
// propagates through method signatures on traits, so that a default method
// returning Self yields the implementing type when called on an implementor.
type SelfType struct {
	base
}

// NewSelfType constructs the self type.
func NewSelfType() *SelfType {
	return &SelfType{newBase("Self", nil)}
}

// Kind returns KindSelf.
func (p *SelfType) Kind() Kind {
	return KindSelf
}

// Union is a union of two or more member types.
type Union struct {
	base
	// Members are the member types, in declaration order.
	Members []Type
}

// NewUnion constructs a union over the given members.
func NewUnion(members ...Type) *Union {
	name := ""
	//
	for i, member := range members {
		if i != 0 {
			name += " | "
		}
		//
		name += member.Name()
	}
	//
	return &Union{newBase(name, nil), members}
}

// Kind returns KindUnion.
func (p *Union) Kind() Kind {
	return KindUnion
}
