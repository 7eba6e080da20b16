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
package compiler

import (
	"github.com/consensys/go-rook/pkg/ast"
	"github.com/consensys/go-rook/pkg/bytecode"
)

// Lower an integer literal: pool the value, then load it into a fresh
// register.
func (p *Compiler) compileInteger(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	index := cco.Integers.Add(node.Int)
	register := cco.NextRegister()
	//
	cco.Emit(bytecode.OpSetInteger, node.Line, node.Column, register, index)
	//
	return register, true
}

// Lower a float literal.
func (p *Compiler) compileFloat(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	index := cco.Floats.Add(node.Float)
	register := cco.NextRegister()
	//
	cco.Emit(bytecode.OpSetFloat, node.Line, node.Column, register, index)
	//
	return register, true
}

// Lower a string literal.
func (p *Compiler) compileString(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	index := cco.Strings.Add(node.Text)
	register := cco.NextRegister()
	//
	cco.Emit(bytecode.OpSetString, node.Line, node.Column, register, index)
	//
	return register, true
}

// Lower an array literal.  The result register is allocated first; elements
// are then lowered strictly left to right, so side effects fire in source
// order.
func (p *Compiler) compileArray(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	register := cco.NextRegister()
	args := []uint{register, uint(len(node.Children))}
	//
	for _, element := range node.Children {
		value, _ := p.process(element, cco)
		args = append(args, value)
	}
	//
	cco.Emit(bytecode.OpSetArray, node.Line, node.Column, args...)
	//
	return register, true
}

// Lower a self reference.
func (p *Compiler) compileSelf(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	register := cco.NextRegister()
	cco.Emit(bytecode.OpGetSelf, node.Line, node.Column, register)
	//
	return register, true
}
