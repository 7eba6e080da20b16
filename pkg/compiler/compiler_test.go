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
	"reflect"
	"testing"

	"github.com/consensys/go-rook/pkg/ast"
	"github.com/consensys/go-rook/pkg/bytecode"
)

func Test_Compile_Let_01(t *testing.T) {
	// let x = 10
	module := check_Compiles(t, block(let(ident("x"), integer(10))))
	//
	check_Opcodes(t, module, bytecode.OpSetInteger, bytecode.OpSetLocal, bytecode.OpReturn)
	check_Args(t, module, 0, 0, 0)
	check_Args(t, module, 1, 0, 0)
	//
	if !reflect.DeepEqual(module.Integers.Values(), []int64{10}) {
		t.Errorf("unexpected integer pool %v", module.Integers.Values())
	}
	//
	if !reflect.DeepEqual(module.Locals.Names(), []string{"x"}) {
		t.Errorf("unexpected locals %v", module.Locals.Names())
	}
}

func Test_Compile_Array_01(t *testing.T) {
	// [10, 20]
	module := check_Compiles(t, block(array(integer(10), integer(20))))
	//
	check_Opcodes(t, module,
		bytecode.OpSetInteger, bytecode.OpSetInteger, bytecode.OpSetArray, bytecode.OpReturn)
	// The result register is allocated before the elements are lowered.
	check_Args(t, module, 2, 0, 2, 1, 2)
	//
	if !reflect.DeepEqual(module.Integers.Values(), []int64{10, 20}) {
		t.Errorf("unexpected integer pool %v", module.Integers.Values())
	}
}

func Test_Compile_Array_02(t *testing.T) {
	// The empty array literal.
	module := check_Compiles(t, block(array()))
	//
	check_Opcodes(t, module, bytecode.OpSetArray, bytecode.OpReturn)
	check_Args(t, module, 0, 0, 0)
}

func Test_Compile_Send_01(t *testing.T) {
	// foo(10) where no local "foo" exists: a send to the implicit self.
	module := check_Compiles(t, block(send(nil, "foo", integer(10))))
	//
	check_Opcodes(t, module,
		bytecode.OpGetSelf, bytecode.OpSetInteger, bytecode.OpSendLiteral, bytecode.OpReturn)
	// send_literal dst, rec, name, rest, a0
	check_Args(t, module, 2, 2, 0, 0, 0, 1)
	//
	if !reflect.DeepEqual(module.Strings.Values(), []string{"foo"}) {
		t.Errorf("unexpected string pool %v", module.Strings.Values())
	}
}

func Test_Compile_Send_02(t *testing.T) {
	// A bare identifier without a matching local lowers as a zero-argument
	// send to self.
	module := check_Compiles(t, block(ident("foo")))
	//
	check_Opcodes(t, module,
		bytecode.OpGetSelf, bytecode.OpSendLiteral, bytecode.OpReturn)
}

func Test_Compile_Send_03(t *testing.T) {
	// A rest argument lowers its inner expression and raises the rest flag.
	module := check_Compiles(t, block(
		send(nil, "foo", integer(1), node(ast.KindRest, integer(2)))))
	//
	check_Opcodes(t, module,
		bytecode.OpGetSelf, bytecode.OpSetInteger, bytecode.OpSetInteger,
		bytecode.OpSendLiteral, bytecode.OpReturn)
	check_Args(t, module, 3, 3, 0, 0, 1, 1, 2)
}

func Test_Compile_Ident_01(t *testing.T) {
	// An identifier naming a local reads it with exactly one get_local.
	module := check_Compiles(t, block(
		let(ident("x"), integer(10)),
		ident("x")))
	//
	check_Opcodes(t, module,
		bytecode.OpSetInteger, bytecode.OpSetLocal, bytecode.OpGetLocal, bytecode.OpReturn)
	check_Args(t, module, 2, 1, 0)
}

func Test_Compile_IVar_01(t *testing.T) {
	// @x reads the attribute off self.
	module := check_Compiles(t, block(named(ast.KindIVar, "x")))
	//
	check_Opcodes(t, module,
		bytecode.OpGetSelf, bytecode.OpGetLiteralAttr, bytecode.OpReturn)
	check_Args(t, module, 1, 1, 0, 0)
	//
	if !reflect.DeepEqual(module.Strings.Values(), []string{"x"}) {
		t.Errorf("unexpected string pool %v", module.Strings.Values())
	}
}

func Test_Compile_Self_01(t *testing.T) {
	// Self at top level grows no literal pool.
	module := check_Compiles(t, block(node(ast.KindSelf)))
	//
	check_Opcodes(t, module, bytecode.OpGetSelf, bytecode.OpReturn)
	//
	if module.Strings.Size() != 0 || module.Integers.Size() != 0 {
		t.Errorf("unexpected pool growth")
	}
}

func Test_Compile_Assign_01(t *testing.T) {
	// Reassignment at depth zero emits exactly one set_local.
	module := check_Compiles(t, block(
		let(ident("x"), integer(10)),
		assign(ident("x"), integer(20))))
	//
	check_Opcodes(t, module,
		bytecode.OpSetInteger, bytecode.OpSetLocal,
		bytecode.OpSetInteger, bytecode.OpSetLocal, bytecode.OpReturn)
}

func Test_Compile_Assign_02(t *testing.T) {
	// Reassigning an undefined local is a user error.
	root := block(assign(ident("x"), integer(10)))
	//
	_, errs, fault := New("test.rk", nil).Compile(root)
	//
	if fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	//
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
}

func Test_Compile_Closure_01(t *testing.T) {
	// A closure reading an enclosing local goes through the scope chain.
	module := check_Compiles(t, block(
		let(ident("a"), integer(10)),
		closure(params(), block(ident("a")))))
	//
	inner := module.CodeObjects[0]
	//
	if inner.Kind != bytecode.KindClosure {
		t.Fatalf("expected a closure, got %s", inner.Kind)
	}
	//
	if inner.Outer != module {
		t.Errorf("closure does not chain to its enclosing scope")
	}
	//
	check_Opcodes(t, inner, bytecode.OpGetParentLocal, bytecode.OpReturn)
	check_Args(t, inner, 0, 0, 1, 0)
}

func Test_Compile_Closure_02(t *testing.T) {
	// Reassignment at depth one emits exactly one set_parent_local.
	module := check_Compiles(t, block(
		let(ident("a"), integer(10)),
		closure(params(), block(assign(ident("a"), integer(20))))))
	//
	inner := module.CodeObjects[0]
	//
	check_Opcodes(t, inner,
		bytecode.OpSetInteger, bytecode.OpSetParentLocal, bytecode.OpReturn)
	check_Args(t, inner, 1, 1, 0, 0)
}

func Test_Compile_Method_01(t *testing.T) {
	// Methods register their formals in declaration order, and record the
	// rest argument.
	module := check_Compiles(t, block(
		method("m", params(param("a"), param("b"), rest("c")), block(ident("a")))))
	//
	m := module.CodeObjects[0]
	//
	if !reflect.DeepEqual(m.Locals.Names(), []string{"a", "b", "c"}) {
		t.Errorf("unexpected locals %v", m.Locals.Names())
	}
	//
	if m.Arguments != 3 || m.RequiredArguments != 2 || !m.RestArgument {
		t.Errorf("unexpected argument counts (%d, %d, %v)",
			m.Arguments, m.RequiredArguments, m.RestArgument)
	}
	//
	check_Opcodes(t, m, bytecode.OpGetLocal, bytecode.OpReturn)
}

func Test_Compile_Method_02(t *testing.T) {
	// The implicit return yields the value of the method's final expression.
	module := check_Compiles(t, block(
		method("m", params(), block(integer(10)))))
	//
	m := module.CodeObjects[0]
	//
	check_Opcodes(t, m, bytecode.OpSetInteger, bytecode.OpReturn)
	check_Args(t, m, 1, 0)
}

func Test_Compile_Class_01(t *testing.T) {
	// class C { def m { 10 } }
	module := check_Compiles(t, block(class("C", nil, nil,
		block(method("m", params(), block(integer(10)))))))
	// The parent emits the class-build protocol.
	check_Opcodes(t, module,
		bytecode.OpGetSelf, bytecode.OpGetSelf, bytecode.OpGetLiteralConst,
		bytecode.OpLiteralConstExists, bytecode.OpGotoIfTrue,
		bytecode.OpGetLiteralConst, bytecode.OpGetTrue, bytecode.OpSendLiteral,
		bytecode.OpSetLiteralConst, bytecode.OpGetLiteralConst,
		bytecode.OpRunLiteralCode, bytecode.OpReturn)
	// The reopening branch skips to the final constant read.
	if target := module.Instructions[4].Args[0]; target != 9 {
		t.Errorf("reopening branch resolved to %d", target)
	}
	// The class body is a trampoline binding m on the class's prototype.
	trampoline := module.CodeObjects[0]
	//
	if trampoline.Kind != bytecode.KindClass {
		t.Fatalf("expected a class body, got %s", trampoline.Kind)
	}
	//
	check_Opcodes(t, trampoline,
		bytecode.OpGetSelf, bytecode.OpGetLiteralAttr,
		bytecode.OpDefLiteralMethod, bytecode.OpReturn)
	// The method body loads its literal and returns it.
	m := trampoline.CodeObjects[0]
	//
	check_Opcodes(t, m, bytecode.OpSetInteger, bytecode.OpReturn)
}

func Test_Compile_Class_02(t *testing.T) {
	// An empty class body still ends in a terminator.
	module := check_Compiles(t, block(class("C", nil, nil, block())))
	trampoline := module.CodeObjects[0]
	//
	if trampoline.Kind != bytecode.KindClass {
		t.Fatalf("expected a class body, got %s", trampoline.Kind)
	}
	//
	last := trampoline.Instructions[len(trampoline.Instructions)-1]
	//
	if !last.Terminator() {
		t.Errorf("class body does not end in a terminator")
	}
}

func Test_Compile_If_01(t *testing.T) {
	module := check_Compiles(t, block(
		node(ast.KindIf, integer(1), block(integer(2)), block(integer(3)))))
	//
	check_Opcodes(t, module,
		bytecode.OpSetInteger, bytecode.OpGotoIfFalse,
		bytecode.OpSetInteger, bytecode.OpCopy, bytecode.OpGoto,
		bytecode.OpSetInteger, bytecode.OpCopy, bytecode.OpReturn)
	// The false branch jumps over the then arm; the goto jumps over the else
	// arm.
	if target := module.Instructions[1].Args[0]; target != 5 {
		t.Errorf("goto_if_false resolved to %d", target)
	}
	//
	if target := module.Instructions[4].Args[0]; target != 7 {
		t.Errorf("goto resolved to %d", target)
	}
}

func Test_Compile_While_01(t *testing.T) {
	module := check_Compiles(t, block(
		node(ast.KindWhile, integer(1), block(integer(2)))))
	//
	check_Opcodes(t, module,
		bytecode.OpSetInteger, bytecode.OpGotoIfFalse,
		bytecode.OpSetInteger, bytecode.OpGoto, bytecode.OpGetNil, bytecode.OpReturn)
	//
	if target := module.Instructions[3].Args[0]; target != 0 {
		t.Errorf("loop back edge resolved to %d", target)
	}
	//
	if target := module.Instructions[1].Args[0]; target != 4 {
		t.Errorf("loop exit resolved to %d", target)
	}
}

func Test_Compile_Loop_01(t *testing.T) {
	// break and next jump to the loop's exit and head labels.
	module := check_Compiles(t, block(
		node(ast.KindLoop, block(
			node(ast.KindIf, integer(1), block(node(ast.KindBreak)), block(node(ast.KindNext)))))))
	//
	var breaks, nexts int
	//
	for _, instruction := range module.Instructions {
		if instruction.Opcode == bytecode.OpGoto {
			switch instruction.Args[0] {
			case 0:
				nexts++
			default:
				breaks++
			}
		}
	}
	//
	if nexts == 0 || breaks == 0 {
		t.Errorf("expected both a back edge and an exit edge (%d, %d)", nexts, breaks)
	}
}

func Test_Compile_Break_01(t *testing.T) {
	// break outside of a loop is a user error.
	_, errs, fault := New("test.rk", nil).Compile(block(node(ast.KindBreak)))
	//
	if fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	//
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
}

func Test_Compile_Match_01(t *testing.T) {
	// A match lowers to an equality chain over the subject.
	module := check_Compiles(t, block(
		node(ast.KindMatch, integer(1), integer(2), block(integer(3)), block(integer(4)))))
	//
	var sends int
	//
	for _, instruction := range module.Instructions {
		if instruction.Opcode == bytecode.OpSendLiteral {
			sends++
		}
	}
	//
	if sends != 1 {
		t.Errorf("expected one equality send, got %d", sends)
	}
	//
	if !reflect.DeepEqual(module.Strings.Values(), []string{"=="}) {
		t.Errorf("unexpected string pool %v", module.Strings.Values())
	}
}

func Test_Compile_Try_01(t *testing.T) {
	module := check_Compiles(t, block(
		node(ast.KindTry, block(integer(1)), block(integer(2)))))
	//
	check_Opcodes(t, module,
		bytecode.OpTry, bytecode.OpSetInteger, bytecode.OpCopy, bytecode.OpGoto,
		bytecode.OpSetInteger, bytecode.OpCopy, bytecode.OpReturn)
	//
	if target := module.Instructions[0].Args[0]; target != 4 {
		t.Errorf("handler resolved to %d", target)
	}
}

func Test_Compile_Import_01(t *testing.T) {
	module := check_Compiles(t, block(named(ast.KindImport, "std::fs")))
	//
	check_Opcodes(t, module, bytecode.OpLoadModule, bytecode.OpReturn)
	//
	if !reflect.DeepEqual(module.Strings.Values(), []string{"std::fs"}) {
		t.Errorf("unexpected string pool %v", module.Strings.Values())
	}
}

func Test_Compile_Type_01(t *testing.T) {
	// Type annotations emit no instructions, but register in the unit's
	// type scope.
	c := New("test.rk", nil)
	//
	module, errs, fault := c.Compile(block(
		named(ast.KindType, "List"),
		integer(10)))
	//
	if fault != nil || len(errs) != 0 {
		t.Fatalf("unexpected failure (%v, %v)", errs, fault)
	}
	//
	check_Opcodes(t, module, bytecode.OpSetInteger, bytecode.OpReturn)
	//
	if _, ok := c.TypeScope().Lookup("List"); !ok {
		t.Errorf("annotation not registered")
	}
}

func Test_Compile_Deterministic_01(t *testing.T) {
	// Lowering the same tree twice yields identical instruction sequences
	// and pools.
	root := block(
		let(ident("x"), integer(10)),
		array(integer(10), integer(20), ident("x")),
		send(nil, "foo", node(ast.KindRest, array())),
		class("C", nil, nil, block(method("m", params(), block(integer(1))))))
	//
	first := check_Compiles(t, root)
	second := check_Compiles(t, root)
	//
	check_Identical(t, first, second)
}

func Test_Compile_Registers_01(t *testing.T) {
	// Every register mentioned by any instruction is within the code
	// object's final register count.
	module := check_Compiles(t, block(
		let(ident("x"), integer(10)),
		node(ast.KindIf, ident("x"), block(integer(2)), block(integer(3))),
		send(nil, "foo", ident("x"))))
	//
	for _, instruction := range module.Instructions {
		for _, arg := range instruction.Args {
			if instruction.Opcode != bytecode.OpGoto && arg > module.Registers() {
				t.Errorf("argument %d beyond register count %d", arg, module.Registers())
			}
		}
	}
}

// ============================================================================
// Helpers
// ============================================================================

func check_Compiles(t *testing.T, root *ast.Node) *bytecode.CodeObject {
	t.Helper()
	//
	module, errs, fault := New("test.rk", nil).Compile(root)
	//
	if fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	//
	if !module.Sealed() {
		t.Fatalf("module not sealed")
	}
	//
	return module
}

func check_Opcodes(t *testing.T, co *bytecode.CodeObject, expected ...bytecode.Opcode) {
	t.Helper()
	//
	if len(co.Instructions) != len(expected) {
		t.Fatalf("expected %d instructions, got %d (%v)",
			len(expected), len(co.Instructions), co.Instructions)
	}
	//
	for i, op := range expected {
		if co.Instructions[i].Opcode != op {
			t.Errorf("instruction %d: expected %s, got %s", i, op, co.Instructions[i].Opcode)
		}
	}
}

func check_Args(t *testing.T, co *bytecode.CodeObject, index int, expected ...uint) {
	t.Helper()
	//
	if !reflect.DeepEqual(co.Instructions[index].Args, expected) {
		t.Errorf("instruction %d: expected args %v, got %v",
			index, expected, co.Instructions[index].Args)
	}
}

func check_Identical(t *testing.T, first *bytecode.CodeObject, second *bytecode.CodeObject) {
	t.Helper()
	//
	if !reflect.DeepEqual(first.Instructions, second.Instructions) {
		t.Errorf("instruction sequences differ")
	}
	//
	if !reflect.DeepEqual(first.Integers.Values(), second.Integers.Values()) ||
		!reflect.DeepEqual(first.Floats.Values(), second.Floats.Values()) ||
		!reflect.DeepEqual(first.Strings.Values(), second.Strings.Values()) {
		t.Errorf("literal pools differ")
	}
	//
	if len(first.CodeObjects) != len(second.CodeObjects) {
		t.Fatalf("child counts differ")
	}
	//
	for i := range first.CodeObjects {
		check_Identical(t, first.CodeObjects[i], second.CodeObjects[i])
	}
}

// AST construction helpers.

func node(kind ast.Kind, children ...*ast.Node) *ast.Node {
	return ast.NewNode(kind, 1, 1, children...)
}

func block(children ...*ast.Node) *ast.Node {
	return node(ast.KindBlock, children...)
}

func ident(name string) *ast.Node {
	return named(ast.KindIdent, name)
}

func integer(value int64) *ast.Node {
	n := node(ast.KindInteger)
	n.Int = value
	//
	return n
}

func array(elements ...*ast.Node) *ast.Node {
	return node(ast.KindArray, elements...)
}

func let(target *ast.Node, value *ast.Node) *ast.Node {
	return node(ast.KindLet, target, value)
}

func assign(target *ast.Node, value *ast.Node) *ast.Node {
	return node(ast.KindAssign, target, value)
}

func send(receiver *ast.Node, name string, arguments ...*ast.Node) *ast.Node {
	children := append([]*ast.Node{receiver}, arguments...)
	return named(ast.KindSend, name, children...)
}

func method(name string, params *ast.Node, body *ast.Node) *ast.Node {
	return named(ast.KindMethod, name, params, body)
}

func closure(params *ast.Node, body *ast.Node) *ast.Node {
	return node(ast.KindClosure, params, body)
}

func class(name string, receiver *ast.Node, parent *ast.Node, body *ast.Node) *ast.Node {
	return named(ast.KindClass, name, receiver, parent, body)
}

func params(names ...*ast.Node) *ast.Node {
	return node(ast.KindBlock, names...)
}

func param(name string) *ast.Node {
	return ident(name)
}

func rest(name string) *ast.Node {
	return named(ast.KindRest, name)
}

// Construct a node carrying a name payload.
func named(kind ast.Kind, text string, children ...*ast.Node) *ast.Node {
	n := node(kind, children...)
	n.Text = text
	//
	return n
}
