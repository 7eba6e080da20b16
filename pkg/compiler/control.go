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

// Lower a statement sequence.  The block's value is the value of its last
// producing statement; an empty block yields nil.
func (p *Compiler) compileBlock(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	var (
		register bytecode.Register
		produced bool
	)
	//
	if len(node.Children) == 0 {
		register = cco.NextRegister()
		cco.Emit(bytecode.OpGetNil, node.Line, node.Column, register)
		//
		return register, true
	}
	//
	for _, child := range node.Children {
		if r, ok := p.process(child, cco); ok {
			register, produced = r, true
		}
	}
	//
	return register, produced
}

// Lower a conditional expression.  Both arms leave their value in a common
// result register; a missing else arm yields nil.
func (p *Compiler) compileIf(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	var (
		register = cco.NextRegister()
		otherwise = cco.Label()
		end       = cco.Label()
	)
	//
	condition, _ := p.process(node.Child(0), cco)
	cco.EmitBranch(bytecode.OpGotoIfFalse, otherwise, node.Line, node.Column, condition)
	// Then arm.
	value, _ := p.process(node.Child(1), cco)
	cco.Emit(bytecode.OpCopy, node.Line, node.Column, register, value)
	cco.EmitBranch(bytecode.OpGoto, end, node.Line, node.Column)
	// Else arm.
	cco.MarkLabel(otherwise)
	//
	if elseArm := node.Child(2); elseArm != nil {
		value, _ = p.process(elseArm, cco)
		cco.Emit(bytecode.OpCopy, node.Line, node.Column, register, value)
	} else {
		cco.Emit(bytecode.OpGetNil, node.Line, node.Column, register)
	}
	//
	cco.MarkLabel(end)
	//
	return register, true
}

// Lower a pre-tested loop.  The loop yields nil.
func (p *Compiler) compileWhile(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	var (
		head = cco.Label()
		exit = cco.Label()
	)
	//
	cco.MarkLabel(head)
	//
	condition, _ := p.process(node.Child(0), cco)
	cco.EmitBranch(bytecode.OpGotoIfFalse, exit, node.Line, node.Column, condition)
	//
	p.compileLoopBody(node.Child(1), cco, head, exit)
	//
	cco.EmitBranch(bytecode.OpGoto, head, node.Line, node.Column)
	cco.MarkLabel(exit)
	//
	register := cco.NextRegister()
	cco.Emit(bytecode.OpGetNil, node.Line, node.Column, register)
	//
	return register, true
}

// Lower an unconditional loop.  Control only leaves through break (or a
// terminator inside the body), so the loop yields nil at its exit label.
func (p *Compiler) compileLoop(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	var (
		head = cco.Label()
		exit = cco.Label()
	)
	//
	cco.MarkLabel(head)
	p.compileLoopBody(node.Child(0), cco, head, exit)
	cco.EmitBranch(bytecode.OpGoto, head, node.Line, node.Column)
	cco.MarkLabel(exit)
	//
	register := cco.NextRegister()
	cco.Emit(bytecode.OpGetNil, node.Line, node.Column, register)
	//
	return register, true
}

// Lower a loop body with its labels pushed onto the loop stack.
func (p *Compiler) compileLoopBody(body *ast.Node, cco *bytecode.CodeObject, head bytecode.Label, exit bytecode.Label) {
	p.loops = append(p.loops, loopLabels{head, exit})
	p.process(body, cco)
	p.loops = p.loops[:len(p.loops)-1]
}

// Lower a break: jump to the exit label of the innermost loop.
func (p *Compiler) compileBreak(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	if len(p.loops) == 0 {
		p.errorf(node, "break outside of a loop")
		return 0, false
	}
	//
	cco.EmitBranch(bytecode.OpGoto, p.loops[len(p.loops)-1].exit, node.Line, node.Column)
	//
	return 0, false
}

// Lower a next: jump to the head label of the innermost loop.
func (p *Compiler) compileNext(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	if len(p.loops) == 0 {
		p.errorf(node, "next outside of a loop")
		return 0, false
	}
	//
	cco.EmitBranch(bytecode.OpGoto, p.loops[len(p.loops)-1].next, node.Line, node.Column)
	//
	return 0, false
}

// Lower a match expression.  The subject is lowered once; each arm compares
// against it with an equality send and falls through to the next arm on
// mismatch.  All arms leave their value in a common result register, and a
// missing else arm yields nil.
func (p *Compiler) compileMatch(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	var (
		register = cco.NextRegister()
		end      = cco.Label()
		equals   = cco.Strings.Add("==")
	)
	//
	subject, _ := p.process(node.Child(0), cco)
	//
	arms := node.Children[1:]
	//
	for len(arms) >= 2 {
		pattern, body := arms[0], arms[1]
		arms = arms[2:]
		//
		value, _ := p.process(pattern, cco)
		//
		condition := cco.NextRegister()
		cco.Emit(bytecode.OpSendLiteral, pattern.Line, pattern.Column,
			condition, subject, equals, 0, value)
		//
		next := cco.Label()
		cco.EmitBranch(bytecode.OpGotoIfFalse, next, pattern.Line, pattern.Column, condition)
		//
		result, _ := p.process(body, cco)
		cco.Emit(bytecode.OpCopy, body.Line, body.Column, register, result)
		cco.EmitBranch(bytecode.OpGoto, end, body.Line, body.Column)
		//
		cco.MarkLabel(next)
	}
	// An odd trailing arm is the else body.
	if len(arms) == 1 {
		result, _ := p.process(arms[0], cco)
		cco.Emit(bytecode.OpCopy, arms[0].Line, arms[0].Column, register, result)
	} else {
		cco.Emit(bytecode.OpGetNil, node.Line, node.Column, register)
	}
	//
	cco.MarkLabel(end)
	//
	return register, true
}

// Lower a try expression: register a handler, run the body, and jump over
// the handler on success.  The handler (else) body yields the expression's
// value when the body throws.
func (p *Compiler) compileTry(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	var (
		register = cco.NextRegister()
		handler  = cco.Label()
		end      = cco.Label()
	)
	//
	cco.EmitBranch(bytecode.OpTry, handler, node.Line, node.Column)
	//
	value, _ := p.process(node.Child(0), cco)
	cco.Emit(bytecode.OpCopy, node.Line, node.Column, register, value)
	cco.EmitBranch(bytecode.OpGoto, end, node.Line, node.Column)
	//
	cco.MarkLabel(handler)
	//
	if elseBody := node.Child(1); elseBody != nil {
		value, _ = p.process(elseBody, cco)
		cco.Emit(bytecode.OpCopy, node.Line, node.Column, register, value)
	} else {
		cco.Emit(bytecode.OpGetNil, node.Line, node.Column, register)
	}
	//
	cco.MarkLabel(end)
	//
	return register, true
}
