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

// Lower a message send.  The receiver is lowered first (or self loaded, for
// an implicit receiver), then each argument strictly left to right.  A
// trailing rest argument lowers its inner expression and raises the rest
// flag.
func (p *Compiler) compileSend(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	receiver := p.receiverRegister(node.Child(0), node, cco)
	index := cco.Strings.Add(node.Text)
	//
	var (
		rest      uint
		arguments []uint
	)
	//
	for _, argument := range node.Children[1:] {
		if argument.Kind == ast.KindRest {
			rest = 1
			argument = argument.Child(0)
		}
		//
		register, _ := p.process(argument, cco)
		arguments = append(arguments, register)
	}
	//
	register := cco.NextRegister()
	args := append([]uint{register, receiver, index, rest}, arguments...)
	//
	cco.Emit(bytecode.OpSendLiteral, node.Line, node.Column, args...)
	//
	return register, true
}

// Lower an explicit return.  A bare return yields nil.
func (p *Compiler) compileReturn(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	var register bytecode.Register
	//
	if value := node.Child(0); value != nil {
		register, _ = p.process(value, cco)
	} else {
		register = cco.NextRegister()
		cco.Emit(bytecode.OpGetNil, node.Line, node.Column, register)
	}
	//
	cco.Emit(bytecode.OpReturn, node.Line, node.Column, register)
	//
	return register, true
}

// Lower a module import: pool the path and load the module.
func (p *Compiler) compileImport(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	index := cco.Strings.Add(node.Text)
	register := cco.NextRegister()
	//
	cco.Emit(bytecode.OpLoadModule, node.Line, node.Column, register, index)
	//
	return register, true
}
