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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// The authoritative instruction set for image version 1.  Order matters: the
// position of an opcode in this list is its wire number, and changing the
// order is an image format break.
var opcodes = []opcodeSpec{
	{"get_self", 1, false, true, false, "loads the receiver of the enclosing routine"},
	{"get_nil", 1, false, true, false, "loads the nil singleton"},
	{"get_true", 1, false, true, false, "loads the true singleton"},
	{"get_false", 1, false, true, false, "loads the false singleton"},
	{"set_integer", 2, false, true, false, "loads an integer literal"},
	{"set_float", 2, false, true, false, "loads a float literal"},
	{"set_string", 2, false, true, false, "loads a string literal"},
	{"set_array", 2, true, true, false, "allocates an array of count values"},
	{"set_local", 2, false, false, false, "writes a local variable"},
	{"get_local", 2, false, true, false, "reads a local variable"},
	{"set_parent_local", 3, false, false, false, "writes a local of an enclosing routine"},
	{"get_parent_local", 3, false, true, false, "reads a local of an enclosing routine"},
	{"local_exists", 2, false, true, false, "tests whether a local has been assigned"},
	{"set_literal_attr", 3, false, false, false, "writes an attribute named by a string literal"},
	{"get_literal_attr", 3, false, true, false, "reads an attribute named by a string literal"},
	{"set_literal_const", 3, false, false, false, "binds a constant named by a string literal"},
	{"get_literal_const", 3, false, true, false, "reads a constant named by a string literal"},
	{"literal_const_exists", 3, false, true, false, "tests whether a constant is defined"},
	{"set_compiled_code", 2, false, true, false, "materialises a nested code object"},
	{"send_literal", 4, true, true, false, "sends a message named by a string literal"},
	{"def_literal_method", 3, false, false, false, "defines a method named by a string literal"},
	{"run_literal_code", 3, false, true, false, "runs a nested code object with a given receiver"},
	{"copy", 2, false, true, false, "copies one register into another"},
	{"goto", 1, false, false, false, "jumps unconditionally"},
	{"goto_if_true", 2, false, false, false, "jumps when cond is truthy"},
	{"goto_if_false", 2, false, false, false, "jumps when cond is falsy"},
	{"try", 1, false, false, false, "registers an error handler at a given index"},
	{"load_module", 2, false, true, false, "loads another module"},
	{"return", 1, false, false, true, "returns from the enclosing routine"},
	{"throw", 1, false, false, true, "raises an error value"},
	{"tail_call", 3, true, false, true, "replaces the current frame with a send"},
	{"panic", 1, false, false, true, "aborts the virtual machine"},
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2026, "go-rook")

	data := templateData{Opcodes: make([]opcodeData, len(opcodes))}
	for i, spec := range opcodes {
		data.Opcodes[i] = spec.data()
	}

	assertNoError(bgen.Generate(data, "bytecode", "templates",
		bavard.Entry{
			File:      "../../opcodes_gen.go",
			Templates: []string{"opcodes.go.tmpl"},
		},
	), "for the opcode table")

	// run gofmt on the generated output
	runCmd("gofmt", "-w", "../../opcodes_gen.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type opcodeSpec struct {
	Name       string
	Operands   uint8
	Variadic   bool
	Result     bool
	Terminator bool
	Doc        string
}

type opcodeData struct {
	opcodeSpec
	Const string
}

type templateData struct {
	Opcodes []opcodeData
}

// Compute the Go constant name of an opcode ("set_integer" -> "OpSetInteger").
func (o opcodeSpec) data() opcodeData {
	var builder strings.Builder
	//
	builder.WriteString("Op")
	//
	for _, word := range strings.Split(o.Name, "_") {
		builder.WriteString(strings.ToUpper(word[:1]))
		builder.WriteString(word[1:])
	}
	//
	return opcodeData{o, builder.String()}
}

func assertNoError(err error, format string, args ...any) {
	if err != nil {
		msg := fmt.Sprintf(format, args...)
		fmt.Printf("\n%s\n%s\n", msg, err.Error())
		os.Exit(-1)
	}
}
