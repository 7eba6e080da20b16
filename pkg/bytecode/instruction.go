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
package bytecode

import (
	"fmt"
	"strings"
)

// Instruction is a single virtual machine operation, as stored in a code
// object.  Its arguments are short dense indices whose interpretation
// (register, literal index, local slot, instruction index) is determined by
// the opcode.  Every instruction records the source coordinates it was
// lowered from.
type Instruction struct {
	// Opcode determines the operation performed.
	Opcode Opcode
	// Args are the operands, in opcode-specific order.  Opcodes which produce
	// a value always write it into Args[0].
	Args []uint
	// Line is the 1-indexed source line this instruction was lowered from.
	Line uint
	// Column is the 1-indexed source column this instruction was lowered
	// from.
	Column uint
}

// Result returns the register this instruction produces a value into, if any.
func (p *Instruction) Result() (Register, bool) {
	if p.Opcode.HasResult() {
		return p.Args[0], true
	}
	//
	return 0, false
}

// Terminator reports whether this instruction transfers control out of the
// enclosing routine.
func (p *Instruction) Terminator() bool {
	return p.Opcode.Terminator()
}

// String returns a disassembly of this instruction.
func (p *Instruction) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Opcode.String())
	//
	for i, arg := range p.Args {
		if i == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}
		//
		fmt.Fprintf(&builder, "%d", arg)
	}
	//
	return builder.String()
}
