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
package image

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/consensys/go-rook/pkg/bytecode"
)

func Test_RoundTrip_01(t *testing.T) {
	// A minimal module: load an integer, return it.
	co := bytecode.NewCodeObject("main", "main.rk", 1, bytecode.Public, bytecode.KindModule)
	//
	r := co.NextRegister()
	co.Emit(bytecode.OpSetInteger, 1, 1, r, co.Integers.Add(10))
	co.Emit(bytecode.OpReturn, 1, 5, r)
	co.Seal()
	//
	check_RoundTrip(t, co)
}

func Test_RoundTrip_02(t *testing.T) {
	// All pools populated, including deduplicated entries.
	co := bytecode.NewCodeObject("main", "main.rk", 1, bytecode.Public, bytecode.KindModule)
	//
	co.Integers.Add(10)
	co.Integers.Add(-3)
	co.Integers.Add(10)
	co.Floats.Add(1.5)
	co.Floats.Add(-0.25)
	co.Strings.Add("foo")
	co.Strings.Add("")
	co.Locals.Add("x")
	co.Locals.Add("y")
	//
	r := co.NextRegister()
	co.Emit(bytecode.OpSetString, 2, 1, r, 0)
	co.Emit(bytecode.OpReturn, 2, 1, r)
	co.Seal()
	//
	decoded := check_RoundTrip(t, co)
	// The integer pool decodes back in insertion order.
	if !reflect.DeepEqual(decoded.Integers.Values(), []int64{10, -3}) {
		t.Errorf("unexpected integer pool %v", decoded.Integers.Values())
	}
}

func Test_RoundTrip_03(t *testing.T) {
	// A nested tree: module -> method -> closure, with argument metadata.
	var (
		module  = bytecode.NewCodeObject("main", "main.rk", 1, bytecode.Public, bytecode.KindModule)
		method  = bytecode.NewCodeObject("m", "main.rk", 2, bytecode.Private, bytecode.KindMethod)
		closure = bytecode.NewCodeObject("<closure>", "main.rk", 3, bytecode.Public, bytecode.KindClosure)
	)
	//
	closure.Outer = method
	//
	seal(closure)
	//
	method.Arguments = 2
	method.RequiredArguments = 1
	method.RestArgument = true
	method.Locals.Add("a")
	method.Locals.Add("b")
	//
	r := method.NextRegister()
	method.Emit(bytecode.OpSetCompiledCode, 2, 1, r, method.AddCodeObject(closure))
	method.Emit(bytecode.OpReturn, 2, 1, r)
	method.Seal()
	//
	module.AddCodeObject(method)
	seal(module)
	//
	check_RoundTrip(t, module)
}

func Test_RoundTrip_04(t *testing.T) {
	// Variable-arity instructions keep their full operand lists.
	co := bytecode.NewCodeObject("main", "main.rk", 1, bytecode.Public, bytecode.KindModule)
	//
	var regs []uint
	//
	for i := 0; i < 5; i++ {
		r := co.NextRegister()
		co.Emit(bytecode.OpSetInteger, 1, uint(i+1), r, co.Integers.Add(int64(i)))
		//
		regs = append(regs, r)
	}
	//
	dst := co.NextRegister()
	co.Emit(bytecode.OpSetArray, 2, 1, append([]uint{dst, 5}, regs...)...)
	co.Emit(bytecode.OpReturn, 2, 1, dst)
	co.Seal()
	//
	decoded := check_RoundTrip(t, co)
	//
	if got := decoded.Instructions[5].Args; len(got) != 7 {
		t.Errorf("variadic operands truncated to %v", got)
	}
}

func Test_Encode_01(t *testing.T) {
	// An unsealed tree is refused.
	co := bytecode.NewCodeObject("main", "main.rk", 1, bytecode.Public, bytecode.KindModule)
	//
	if err := Encode(&bytes.Buffer{}, co); err == nil {
		t.Errorf("unsealed encode accepted")
	}
}

func Test_Decode_01(t *testing.T) {
	// A bad signature is refused.
	var buf bytes.Buffer
	//
	co := sealedModule()
	//
	if err := Encode(&buf, co); err != nil {
		t.Fatal(err)
	}
	//
	data := buf.Bytes()
	data[0] = 'x'
	//
	if _, err := Decode(bytes.NewReader(data)); err == nil {
		t.Errorf("bad signature accepted")
	}
}

func Test_Decode_02(t *testing.T) {
	// An unrecognised version is refused.
	var buf bytes.Buffer
	//
	co := sealedModule()
	//
	if err := Encode(&buf, co); err != nil {
		t.Fatal(err)
	}
	//
	data := buf.Bytes()
	data[4] = Version + 1
	//
	if _, err := Decode(bytes.NewReader(data)); err == nil {
		t.Errorf("unrecognised version accepted")
	}
}

func Test_Decode_03(t *testing.T) {
	// A truncated image is refused.
	var buf bytes.Buffer
	//
	co := sealedModule()
	//
	if err := Encode(&buf, co); err != nil {
		t.Fatal(err)
	}
	//
	data := buf.Bytes()
	//
	if _, err := Decode(bytes.NewReader(data[:len(data)-4])); err == nil {
		t.Errorf("truncated image accepted")
	}
}

// ============================================================================
// Helpers
// ============================================================================

func check_RoundTrip(t *testing.T, co *bytecode.CodeObject) *bytecode.CodeObject {
	t.Helper()
	//
	var buf bytes.Buffer
	//
	if err := Encode(&buf, co); err != nil {
		t.Fatal(err)
	}
	//
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	//
	check_Equal(t, co, decoded)
	//
	return decoded
}

// Check all serialised fields survive the round trip.
func check_Equal(t *testing.T, before *bytecode.CodeObject, after *bytecode.CodeObject) {
	t.Helper()
	//
	if before.Name != after.Name || before.File != after.File || before.Line != after.Line {
		t.Errorf("identity fields differ")
	}
	//
	if before.Arguments != after.Arguments ||
		before.RequiredArguments != after.RequiredArguments ||
		before.RestArgument != after.RestArgument {
		t.Errorf("argument metadata differs")
	}
	//
	if !reflect.DeepEqual(before.Locals.Names(), after.Locals.Names()) {
		t.Errorf("locals differ: %v vs %v", before.Locals.Names(), after.Locals.Names())
	}
	//
	if !reflect.DeepEqual(before.Instructions, after.Instructions) {
		t.Errorf("instructions differ: %v vs %v", before.Instructions, after.Instructions)
	}
	//
	if !reflect.DeepEqual(before.Integers.Values(), after.Integers.Values()) ||
		!reflect.DeepEqual(before.Floats.Values(), after.Floats.Values()) ||
		!reflect.DeepEqual(before.Strings.Values(), after.Strings.Values()) {
		t.Errorf("pools differ")
	}
	//
	if len(before.CodeObjects) != len(after.CodeObjects) {
		t.Fatalf("child counts differ")
	}
	//
	for i := range before.CodeObjects {
		check_Equal(t, before.CodeObjects[i], after.CodeObjects[i])
	}
}

func sealedModule() *bytecode.CodeObject {
	co := bytecode.NewCodeObject("main", "main.rk", 1, bytecode.Public, bytecode.KindModule)
	seal(co)
	//
	return co
}

// Seal a code object by appending a trivial terminator.
func seal(co *bytecode.CodeObject) {
	r := co.NextRegister()
	co.Emit(bytecode.OpGetNil, 1, 1, r)
	co.Emit(bytecode.OpReturn, 1, 1, r)
	co.Seal()
}
