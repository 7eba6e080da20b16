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

// Lower an identifier reference.  Names resolving to a local of this routine
// read it directly; names resolving to a local of an enclosing routine read
// through the scope chain; all other names are treated as a zero-argument
// message send to the implicit self.
func (p *Compiler) compileIdent(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	if depth, index, ok := cco.ResolveLocal(node.Text); ok {
		register := cco.NextRegister()
		//
		if depth == 0 {
			cco.Emit(bytecode.OpGetLocal, node.Line, node.Column, register, index)
		} else {
			cco.Emit(bytecode.OpGetParentLocal, node.Line, node.Column, register, depth, index)
		}
		//
		return register, true
	}
	// Not a local, so send to self.
	send := &ast.Node{
		Kind:     ast.KindSend,
		Text:     node.Text,
		Children: []*ast.Node{nil},
		Line:     node.Line,
		Column:   node.Column,
	}
	//
	return p.compileSend(send, cco)
}

// Lower an instance-variable reference: read the named attribute off self.
func (p *Compiler) compileIVar(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	index := cco.Strings.Add(node.Text)
	//
	selfreg := cco.NextRegister()
	cco.Emit(bytecode.OpGetSelf, node.Line, node.Column, selfreg)
	//
	register := cco.NextRegister()
	cco.Emit(bytecode.OpGetLiteralAttr, node.Line, node.Column, register, selfreg, index)
	//
	return register, true
}

// Lower a constant reference.  The receiver is the explicit one if given,
// and the implicit self otherwise.
func (p *Compiler) compileConst(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	index := cco.Strings.Add(node.Text)
	receiver := p.receiverRegister(node.Child(0), node, cco)
	//
	register := cco.NextRegister()
	cco.Emit(bytecode.OpGetLiteralConst, node.Line, node.Column, register, receiver, index)
	//
	return register, true
}

// Lower a variable definition.  The value register is returned for the
// convenience of callers in expression position.
func (p *Compiler) compileLet(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	var (
		target = node.Child(0)
		value  = node.Child(1)
	)
	//
	register, _ := p.process(value, cco)
	//
	switch target.Kind {
	case ast.KindIdent:
		index := cco.Locals.Add(target.Text)
		cco.Emit(bytecode.OpSetLocal, node.Line, node.Column, index, register)
	case ast.KindConst:
		index := cco.Strings.Add(target.Text)
		selfreg := cco.NextRegister()
		//
		cco.Emit(bytecode.OpGetSelf, node.Line, node.Column, selfreg)
		cco.Emit(bytecode.OpSetLiteralConst, node.Line, node.Column, selfreg, index, register)
	case ast.KindIVar:
		index := cco.Strings.Add(target.Text)
		selfreg := cco.NextRegister()
		//
		cco.Emit(bytecode.OpGetSelf, node.Line, node.Column, selfreg)
		cco.Emit(bytecode.OpSetLiteralAttr, node.Line, node.Column, selfreg, index, register)
	default:
		p.errorf(node, "cannot define %s", target.Kind)
	}
	//
	return register, true
}

// Lower a reassignment of an existing local.  The name must resolve in the
// current routine or one of its enclosing routines; assignments crossing a
// routine boundary write through to the parent scope.
func (p *Compiler) compileAssign(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	var (
		target = node.Child(0)
		value  = node.Child(1)
	)
	//
	register, _ := p.process(value, cco)
	//
	depth, index, ok := cco.ResolveLocal(target.Text)
	//
	switch {
	case !ok:
		p.errorf(node, "cannot reassign undefined local \"%s\"", target.Text)
	case depth == 0:
		cco.Emit(bytecode.OpSetLocal, node.Line, node.Column, index, register)
	default:
		cco.Emit(bytecode.OpSetParentLocal, node.Line, node.Column, depth, index, register)
	}
	//
	return register, true
}

// Compute the receiver register for a node with an optional explicit
// receiver: lower the receiver if present, and load self otherwise.
func (p *Compiler) receiverRegister(receiver *ast.Node, node *ast.Node, cco *bytecode.CodeObject) bytecode.Register {
	if receiver != nil {
		register, _ := p.process(receiver, cco)
		return register
	}
	//
	register := cco.NextRegister()
	cco.Emit(bytecode.OpGetSelf, node.Line, node.Column, register)
	//
	return register
}
