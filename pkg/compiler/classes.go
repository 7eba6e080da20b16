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

// The ambient parent class used when a class declares none.
const defaultParentClass = "Object"

// The runtime factory invoked to materialise a new class object.
const classFactory = "Class"

// Lower a class definition.  Classes are built (or reopened) at load time:
// the emitted code tests whether the class constant already exists, creates
// and binds a fresh class object when it does not, and then runs the class
// body against the class.  Reopening a class therefore runs its body again
// against the existing object.
func (p *Compiler) compileClass(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	var (
		receiver = node.Child(0)
		parent   = node.Child(1)
		body     = node.Child(2)
		name     = cco.Strings.Add(node.Text)
	)
	// Determine where the class constant lives.
	target := p.receiverRegister(receiver, node, cco)
	// Determine the parent class.
	parentreg := p.parentClassRegister(parent, node, cco)
	// Skip initialisation when reopening an existing class.
	exists := cco.NextRegister()
	forward := cco.Label()
	//
	cco.Emit(bytecode.OpLiteralConstExists, node.Line, node.Column, exists, target, name)
	cco.EmitBranch(bytecode.OpGotoIfTrue, forward, node.Line, node.Column, exists)
	// Materialise the class object via the runtime factory and bind it.
	factory := cco.NextRegister()
	cco.Emit(bytecode.OpGetLiteralConst, node.Line, node.Column,
		factory, target, cco.Strings.Add(classFactory))
	//
	truereg := cco.NextRegister()
	cco.Emit(bytecode.OpGetTrue, node.Line, node.Column, truereg)
	//
	fresh := cco.NextRegister()
	cco.Emit(bytecode.OpSendLiteral, node.Line, node.Column,
		fresh, factory, cco.Strings.Add("new"), 0, parentreg, truereg)
	cco.Emit(bytecode.OpSetLiteralConst, node.Line, node.Column, target, name, fresh)
	//
	cco.MarkLabel(forward)
	// Leave the class in a register, whichever path ran.
	class := cco.NextRegister()
	cco.Emit(bytecode.OpGetLiteralConst, node.Line, node.Column, class, target, name)
	// Lower the class body and run it with the class as receiver.
	trampoline := bytecode.NewCodeObject(node.Text, p.filename, node.Line, bytecode.Public, bytecode.KindClass)
	//
	saved := p.loops
	p.loops = nil
	register, produced := p.process(body, trampoline)
	p.loops = saved
	//
	p.finalize(trampoline, register, produced, node.Line, node.Column)
	//
	index := cco.AddCodeObject(trampoline)
	result := cco.NextRegister()
	//
	cco.Emit(bytecode.OpRunLiteralCode, node.Line, node.Column, result, index, class)
	//
	return class, true
}

// Compute the parent-class register: the explicit parent constant when
// given, and the ambient Object otherwise.
func (p *Compiler) parentClassRegister(parent *ast.Node, node *ast.Node, cco *bytecode.CodeObject) bytecode.Register {
	if parent != nil {
		register, _ := p.process(parent, cco)
		return register
	}
	//
	selfreg := cco.NextRegister()
	cco.Emit(bytecode.OpGetSelf, node.Line, node.Column, selfreg)
	//
	register := cco.NextRegister()
	cco.Emit(bytecode.OpGetLiteralConst, node.Line, node.Column,
		register, selfreg, cco.Strings.Add(defaultParentClass))
	//
	return register
}
