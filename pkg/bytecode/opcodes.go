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

// Package bytecode defines the instruction set of the Rook virtual machine,
// along with the compiled-code objects which carry instructions, literal
// pools, local-variable tables and nested routines.
package bytecode

// Register identifies a virtual scratch slot within one code object.
// Registers are dense, zero-based and allocated strictly monotonically; they
// are never reused.
type Register = uint

// Opcode identifies a single virtual machine operation.  Opcodes are dense
// small integers whose numbering is part of the image format: the assignment
// in opcodes_gen.go is frozen for image version 1, and any reordering
// requires a version bump.
type Opcode uint16

// String returns the wire name of this opcode (e.g. "set_integer").
func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	//
	return "???"
}

// Valid reports whether this opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	return int(op) < len(opcodeNames)
}

// Operands returns the number of operands this opcode requires.  For variadic
// opcodes this is the size of the fixed prefix (see Variadic).
func (op Opcode) Operands() uint {
	return uint(opcodeOperands[op])
}

// Variadic reports whether this opcode accepts additional operands beyond its
// fixed prefix (e.g. the elements of an array allocation, or the arguments of
// a send).
func (op Opcode) Variadic() bool {
	return opcodeVariadic[op]
}

// HasResult reports whether this opcode writes a produced value into its
// first operand.
func (op Opcode) HasResult() bool {
	return opcodeResults[op]
}

// Terminator reports whether this opcode transfers control out of the
// enclosing routine.  Every sealed code object ends with a terminator.
func (op Opcode) Terminator() bool {
	return opcodeTerminators[op]
}

// Branch reports whether this opcode's first operand is a label (i.e. an
// instruction index within the enclosing code object).
func (op Opcode) Branch() bool {
	switch op {
	case OpGoto, OpGotoIfTrue, OpGotoIfFalse, OpTry:
		return true
	}
	//
	return false
}
