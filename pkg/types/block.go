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

// Block is the type of a callable: a method or a closure.  The first
// argument of every block is the implicit self.
type Block struct {
	base
	// Arguments are the declared arguments, in order, including the implicit
	// self at position zero.
	Arguments *SymbolTable
	// RestArgument indicates a variadic trailing argument.
	RestArgument bool
	// Throws is the type of errors this block may throw, if any.
	Throws Type
	// Returns is the type of values this block produces.
	Returns Type
	// RequiredArgumentsCount is the number of arguments without defaults
	// (excluding the implicit self).
	RequiredArgumentsCount uint
}

// NewBlock constructs a fresh block type with a given name and prototype,
// defining the implicit self as its first argument.
func NewBlock(name string, prototype Type, self Type) *Block {
	block := &Block{
		base:      newBase(name, prototype),
		Arguments: NewSymbolTable(),
	}
	//
	block.Arguments.Define("self", self)
	//
	return block
}

// Kind returns KindBlock.
func (p *Block) Kind() Kind {
	return KindBlock
}

// DefineArgument declares an argument with a given name and type.
func (p *Block) DefineArgument(name string, typ Type) Symbol {
	return p.Arguments.Define(name, typ)
}

// ImplementationOf reports whether this block is a valid implementation of
// another block's signature: per-position compatibility of argument types
// (excluding the implicit self), combined with equality of type parameters,
// rest flag, throws and returns.
func (p *Block) ImplementationOf(other *Block) bool {
	if p.Arguments.Size() != other.Arguments.Size() ||
		p.RestArgument != other.RestArgument ||
		p.RequiredArgumentsCount != other.RequiredArgumentsCount {
		//
		return false
	}
	// Check argument types, skipping the implicit self.
	for i := uint(1); i < p.Arguments.Size(); i++ {
		if !Compatible(p.Arguments.At(i).Type, other.Arguments.At(i).Type) {
			return false
		}
	}
	// Check type parameters match by name.
	if !equalParameterNames(p.typeParameters, other.typeParameters) {
		return false
	}
	//
	return equalTypes(p.Throws, other.Throws) && equalTypes(p.Returns, other.Returns)
}

func equalParameterNames(a *ParameterTable, b *ParameterTable) bool {
	var (
		asize, bsize uint
	)
	//
	if a != nil {
		asize = a.Size()
	}
	//
	if b != nil {
		bsize = b.Size()
	}
	//
	if asize != bsize {
		return false
	}
	//
	for i := uint(0); i < asize; i++ {
		if a.Names()[i] != b.Names()[i] {
			return false
		}
	}
	//
	return true
}

func equalTypes(a Type, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	//
	return a == b || (a.Kind() == b.Kind() && a.Kind() >= KindDynamic)
}
