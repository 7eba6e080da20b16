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

// Package compiler lowers abstract syntax trees into compiled-code objects.
// Lowering is a single left-to-right recursion over the tree: each node kind
// has a dedicated elaborator, and any node in value position produces the
// virtual register holding its result.  New code objects are allocated only
// at scope-creating constructs (class bodies, methods, closures).
package compiler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-rook/pkg/ast"
	"github.com/consensys/go-rook/pkg/bytecode"
	"github.com/consensys/go-rook/pkg/types"
	"github.com/consensys/go-rook/pkg/util/source"
)

// Compiler lowers one source unit into a tree of code objects.  It is not
// thread safe: each in-progress code object is owned exclusively by the
// lowering recursion.
type Compiler struct {
	// filename of the unit being compiled.
	filename string
	// nodemap maps AST nodes back to spans of the original text, for error
	// reporting.
	nodemap *source.Map[*ast.Node]
	// errors accumulated so far.
	errors []*source.SyntaxError
	// loops is the stack of enclosing loop labels within the current
	// routine.
	loops []loopLabels
	// typeScope records the types annotated in this unit, for use by
	// checking passes.
	typeScope *types.SymbolTable
}

// The break and continuation labels of one enclosing loop.
type loopLabels struct {
	next bytecode.Label
	exit bytecode.Label
}

// New constructs a compiler for a given source unit.
func New(filename string, nodemap *source.Map[*ast.Node]) *Compiler {
	return &Compiler{filename: filename, nodemap: nodemap, typeScope: types.NewSymbolTable()}
}

// TypeScope returns the types annotated in this unit.
func (p *Compiler) TypeScope() *types.SymbolTable {
	return p.typeScope
}

// Compile lowers a parsed source unit into a sealed code object tree.  User
// errors are accumulated and returned together; no code object is produced
// when any arise.  A violated compiler invariant surfaces as a fault, which
// indicates a bug in the compiler rather than in the source unit.
func (p *Compiler) Compile(root *ast.Node) (co *bytecode.CodeObject, errs []*source.SyntaxError, fault error) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(*bytecode.Fault); ok {
				co, errs, fault = nil, nil, f
				return
			}
			//
			panic(r)
		}
	}()
	//
	module := bytecode.NewCodeObject("main", p.filename, root.Line, bytecode.Public, bytecode.KindModule)
	//
	register, produced := p.process(root, module)
	p.finalize(module, register, produced, root.Line, root.Column)
	//
	if len(p.errors) != 0 {
		return nil, p.errors, nil
	}
	//
	log.Debugf("compiled %s: %d instructions, %d registers, %d children",
		p.filename, len(module.Instructions), module.Registers(), len(module.CodeObjects))
	//
	return module, nil, nil
}

// Process is the central dispatcher: it routes a node to the elaborator for
// its kind.  The returned register holds the node's value, where the node
// produces one.
func (p *Compiler) process(node *ast.Node, cco *bytecode.CodeObject) (bytecode.Register, bool) {
	switch node.Kind {
	case ast.KindInteger:
		return p.compileInteger(node, cco)
	case ast.KindFloat:
		return p.compileFloat(node, cco)
	case ast.KindString:
		return p.compileString(node, cco)
	case ast.KindArray:
		return p.compileArray(node, cco)
	case ast.KindIdent:
		return p.compileIdent(node, cco)
	case ast.KindIVar:
		return p.compileIVar(node, cco)
	case ast.KindConst:
		return p.compileConst(node, cco)
	case ast.KindSelf:
		return p.compileSelf(node, cco)
	case ast.KindLet:
		return p.compileLet(node, cco)
	case ast.KindAssign:
		return p.compileAssign(node, cco)
	case ast.KindSend:
		return p.compileSend(node, cco)
	case ast.KindMethod:
		return p.compileMethod(node, cco)
	case ast.KindClosure:
		return p.compileClosure(node, cco)
	case ast.KindClass:
		return p.compileClass(node, cco)
	case ast.KindReturn:
		return p.compileReturn(node, cco)
	case ast.KindBlock:
		return p.compileBlock(node, cco)
	case ast.KindIf:
		return p.compileIf(node, cco)
	case ast.KindWhile:
		return p.compileWhile(node, cco)
	case ast.KindLoop:
		return p.compileLoop(node, cco)
	case ast.KindBreak:
		return p.compileBreak(node, cco)
	case ast.KindNext:
		return p.compileNext(node, cco)
	case ast.KindMatch:
		return p.compileMatch(node, cco)
	case ast.KindTry:
		return p.compileTry(node, cco)
	case ast.KindImport:
		return p.compileImport(node, cco)
	case ast.KindType:
		return p.compileType(node)
	case ast.KindRest:
		p.errorf(node, "rest argument outside of a call")
		return 0, false
	}
	//
	bytecode.Faultf("no elaborator for node kind %s", node.Kind)
	//
	return 0, false
}

// Finalize a routine: insert the implicit return and seal the code object.
// When the body does not already end in a terminator, the routine returns
// the value of its final expression; a routine whose final instruction
// produces no value and whose body yielded no register is a compiler fault.
func (p *Compiler) finalize(cco *bytecode.CodeObject, register bytecode.Register, produced bool, line uint, column uint) {
	last, ok := cco.LastInstruction()
	//
	switch {
	case ok && last.Terminator():
		// Nothing to do.
	case produced:
		cco.Emit(bytecode.OpReturn, line, column, register)
	case ok:
		if result, has := last.Result(); has {
			cco.Emit(bytecode.OpReturn, line, column, result)
		} else {
			bytecode.Faultf("implicit return in %s has no result register", cco.Name)
		}
	default:
		// Empty routine: return nil.
		nilreg := cco.NextRegister()
		cco.Emit(bytecode.OpGetNil, line, column, nilreg)
		cco.Emit(bytecode.OpReturn, line, column, nilreg)
	}
	//
	cco.Seal()
}

// Consume a type annotation: the named type is registered in the unit's type
// scope.  Annotations emit no instructions.
func (p *Compiler) compileType(node *ast.Node) (bytecode.Register, bool) {
	if _, ok := p.typeScope.Lookup(node.Text); !ok {
		p.typeScope.Define(node.Text, types.NewObject(node.Text, nil))
	}
	//
	return 0, false
}

// Record a user error against a given node.
func (p *Compiler) errorf(node *ast.Node, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	//
	if p.nodemap != nil {
		p.errors = append(p.errors, p.nodemap.SyntaxError(node, msg))
		return
	}
	// No source map available (synthetic trees, e.g. in tests); report
	// against the start of the unit.
	srcfile := source.NewFile(p.filename, nil)
	p.errors = append(p.errors, srcfile.SyntaxError(source.NewSpan(0, 0), msg))
}
