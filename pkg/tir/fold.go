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
	"github.com/consensys/go-rook/pkg/bytecode"
)

// Fold performs constant folding over an instruction stream, rewriting
// integer arithmetic and comparisons whose operands are statically known
// into direct loads.  The input stream is left untouched; a new stream is
// returned.  Only registers with exactly one definition are folded, since a
// register written on multiple paths has no single static value.
func Fold(stream []Instruction) []Instruction {
	var (
		folded = make([]Instruction, 0, len(stream))
		known  = make(map[bytecode.Register]int64)
		defs   = countDefinitions(stream)
	)
	//
	for _, instruction := range stream {
		rewritten := foldInstruction(instruction, known, defs)
		//
		if set, ok := rewritten.(*SetInteger); ok && defs[set.Register] == 1 {
			known[set.Register] = set.Value
		}
		//
		folded = append(folded, rewritten)
	}
	//
	return folded
}

func countDefinitions(stream []Instruction) map[bytecode.Register]uint {
	defs := make(map[bytecode.Register]uint)
	//
	for _, instruction := range stream {
		if register, ok := instruction.Result(); ok {
			defs[register]++
		}
	}
	//
	return defs
}

func foldInstruction(instruction Instruction, known map[bytecode.Register]int64,
	defs map[bytecode.Register]uint) Instruction {
	//
	switch instruction := instruction.(type) {
	case *IntegerAdd:
		if left, right, ok := operands(instruction.Left, instruction.Right, known); ok {
			return &SetInteger{instruction.Base, instruction.Produces, left + right}
		}
	case *IntegerEquals:
		if left, right, ok := operands(instruction.Left, instruction.Right, known); ok {
			return boolean(instruction.Base, instruction.Produces, left == right)
		}
	case *IntegerGreater:
		if left, right, ok := operands(instruction.Left, instruction.Right, known); ok {
			return boolean(instruction.Base, instruction.Produces, left > right)
		}
	case *IntegerSmaller:
		if left, right, ok := operands(instruction.Left, instruction.Right, known); ok {
			return boolean(instruction.Base, instruction.Produces, left < right)
		}
	}
	//
	return instruction
}

func operands(left bytecode.Register, right bytecode.Register,
	known map[bytecode.Register]int64) (int64, int64, bool) {
	//
	lv, lok := known[left]
	rv, rok := known[right]
	//
	return lv, rv, lok && rok
}

func boolean(base Base, produces Produces, value bool) Instruction {
	if value {
		return &GetTrue{base, produces}
	}
	//
	return &GetFalse{base, produces}
}
