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
package tir

import (
	"fmt"
)

// Verify checks the structural invariants of an instruction stream: every
// result and operand register is within the routine's register count, every
// branch targets a real instruction, and the stream ends with an instruction
// which transfers control out of the routine.  A violation indicates a bug
// in whichever pass produced the stream.
func Verify(stream []Instruction, registers uint) error {
	if len(stream) == 0 {
		return fmt.Errorf("empty instruction stream")
	}
	//
	for i, instruction := range stream {
		if register, ok := instruction.Result(); ok && register >= registers {
			return errAt(instruction, "instruction %d writes out-of-range register %d", i, register)
		}
		//
		for _, register := range instruction.Operands() {
			if register >= registers {
				return errAt(instruction, "instruction %d reads out-of-range register %d", i, register)
			}
		}
		//
		if target, ok := branchTarget(instruction); ok && target >= uint(len(stream)) {
			return errAt(instruction, "instruction %d branches to out-of-range index %d", i, target)
		}
	}
	//
	if last := stream[len(stream)-1]; !Terminates(last) {
		return errAt(last, "stream does not end in a terminator")
	}
	//
	return nil
}

// Terminates reports whether an instruction transfers control out of the
// enclosing routine.
func Terminates(instruction Instruction) bool {
	switch instruction.Kind() {
	case KindReturn, KindThrow, KindTailCall, KindPanic, KindExit, KindProcessTerminateCurrent:
		return true
	}
	//
	return false
}

// Extract the branch target of an instruction, if it has one.
func branchTarget(instruction Instruction) (uint, bool) {
	switch instruction := instruction.(type) {
	case *Goto:
		return instruction.Index, true
	case *GotoIfTrue:
		return instruction.Index, true
	case *GotoIfFalse:
		return instruction.Index, true
	case *Try:
		return instruction.Index, true
	}
	//
	return 0, false
}

func errAt(instruction Instruction, format string, args ...any) error {
	loc := instruction.Location()
	return fmt.Errorf("%d:%d: %s", loc.Line, loc.Column, fmt.Sprintf(format, args...))
}
