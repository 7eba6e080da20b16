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

// The attribute under which every class object stores its prototype.
const prototypeAttribute = "prototype"

// The synthetic name given to closure code objects.
const closureName = "<closure>"

// Lower a method definition.  The method body is lowered into a fresh child
// code object, the implicit return inserted, and the method bound on the
// appropriate receiver: inside a class body that is the class's prototype,
// and the implicit self otherwise.  The elaborator yields the receiver for
// the convenience of callers.
func (p *Compiler) compileMethod(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	visibility := bytecode.Public
	if node.Int != 0 {
		visibility = bytecode.Private
	}
	//
	method := bytecode.NewCodeObject(node.Text, p.filename, node.Line, visibility, bytecode.KindMethod)
	p.compileRoutine(method, node.Child(0), node.Child(1), node)
	//
	index := cco.AddCodeObject(method)
	name := cco.Strings.Add(node.Text)
	receiver := p.methodReceiver(node, cco)
	//
	cco.Emit(bytecode.OpDefLiteralMethod, node.Line, node.Column, receiver, name, index)
	//
	return receiver, true
}

// Lower a closure literal.  Closures chain to the current code object via
// the outer-scope pointer, so free-variable lookups traverse outward.
func (p *Compiler) compileClosure(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	closure := bytecode.NewCodeObject(closureName, p.filename, node.Line, bytecode.Public, bytecode.KindClosure)
	closure.Outer = cco
	//
	p.compileRoutine(closure, node.Child(0), node.Child(1), node)
	//
	index := cco.AddCodeObject(closure)
	register := cco.NextRegister()
	//
	cco.Emit(bytecode.OpSetCompiledCode, node.Line, node.Column, register, index)
	//
	return register, true
}

// Lower the shared parts of a routine: register the formal arguments as
// locals in declaration order, lower the body, insert the implicit return
// and seal.  The enclosing loop stack does not cross the routine boundary.
func (p *Compiler) compileRoutine(routine *bytecode.CodeObject, params *ast.Node, body *ast.Node, node *ast.Node) {
	for _, param := range params.Children {
		routine.Locals.Add(param.Text)
		routine.Arguments++
		//
		if param.Kind == ast.KindRest {
			routine.RestArgument = true
		} else {
			routine.RequiredArguments++
		}
	}
	//
	saved := p.loops
	p.loops = nil
	//
	register, produced := p.process(body, routine)
	//
	p.loops = saved
	//
	p.finalize(routine, register, produced, node.Line, node.Column)
}

// Compute the register a method should be defined on.  Inside a class-body
// trampoline, methods are bound on the class's prototype, read off the class
// object itself.
func (p *Compiler) methodReceiver(node *ast.Node, cco *bytecode.CodeObject) bytecode.Register {
	selfreg := cco.NextRegister()
	cco.Emit(bytecode.OpGetSelf, node.Line, node.Column, selfreg)
	//
	if cco.Kind != bytecode.KindClass {
		return selfreg
	}
	//
	index := cco.Strings.Add(prototypeAttribute)
	register := cco.NextRegister()
	//
	cco.Emit(bytecode.OpGetLiteralAttr, node.Line, node.Column, register, selfreg, index)
	//
	return register
}
