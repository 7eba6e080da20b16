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

// Package image serialises sealed code-object trees to the binary format
// consumed by the virtual machine, and reads such images back.  All
// fixed-width fields are big endian; strings and arrays are length prefixed
// with a u64.  The version byte is the contract-breaking field: readers
// refuse images with a version they do not recognise.
package image

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/consensys/go-rook/pkg/bytecode"
)

// Signature is the 4-byte tag opening every image.
var Signature = [4]byte{'r', 'o', 'o', 'k'}

// Version is the image format version written by this encoder.  The opcode
// numbering of pkg/bytecode is frozen against it.
const Version uint8 = 1

// Encode writes a sealed code-object tree to a given stream.  Encoding an
// unsealed tree is refused: the encoder only consumes finalised objects.
func Encode(w io.Writer, root *bytecode.CodeObject) error {
	if !root.Sealed() {
		return fmt.Errorf("cannot encode unsealed code object %q", root.Name)
	}
	//
	if _, err := w.Write(Signature[:]); err != nil {
		return err
	}
	//
	if err := writeU8(w, Version); err != nil {
		return err
	}
	//
	return encodeCodeObject(w, root)
}

func encodeCodeObject(w io.Writer, co *bytecode.CodeObject) error {
	if err := writeString(w, co.Name); err != nil {
		return err
	}
	//
	if err := writeString(w, co.File); err != nil {
		return err
	}
	//
	if err := writeU32(w, co.Line); err != nil {
		return err
	}
	//
	if err := binary.Write(w, binary.BigEndian, int32(co.Arguments)); err != nil {
		return err
	}
	//
	if err := writeU32(w, co.RequiredArguments); err != nil {
		return err
	}
	//
	if err := writeBool(w, co.RestArgument); err != nil {
		return err
	}
	//
	if err := writeStringArray(w, co.Locals.Names()); err != nil {
		return err
	}
	//
	if err := encodeInstructions(w, co.Instructions); err != nil {
		return err
	}
	//
	if err := writeLength(w, uint(co.Integers.Size())); err != nil {
		return err
	}
	//
	for _, value := range co.Integers.Values() {
		if err := binary.Write(w, binary.BigEndian, value); err != nil {
			return err
		}
	}
	//
	if err := writeLength(w, uint(co.Floats.Size())); err != nil {
		return err
	}
	//
	for _, value := range co.Floats.Values() {
		if err := binary.Write(w, binary.BigEndian, value); err != nil {
			return err
		}
	}
	//
	if err := writeStringArray(w, co.Strings.Values()); err != nil {
		return err
	}
	//
	if err := writeLength(w, uint(len(co.CodeObjects))); err != nil {
		return err
	}
	//
	for _, child := range co.CodeObjects {
		if err := encodeCodeObject(w, child); err != nil {
			return err
		}
	}
	//
	return nil
}

func encodeInstructions(w io.Writer, instructions []bytecode.Instruction) error {
	if err := writeLength(w, uint(len(instructions))); err != nil {
		return err
	}
	//
	for i := range instructions {
		if err := encodeInstruction(w, &instructions[i]); err != nil {
			return err
		}
	}
	//
	return nil
}

func encodeInstruction(w io.Writer, instruction *bytecode.Instruction) error {
	if err := binary.Write(w, binary.BigEndian, uint16(instruction.Opcode)); err != nil {
		return err
	}
	//
	if err := writeLength(w, uint(len(instruction.Args))); err != nil {
		return err
	}
	//
	for _, arg := range instruction.Args {
		if err := writeU32(w, arg); err != nil {
			return err
		}
	}
	//
	if err := writeU32(w, instruction.Line); err != nil {
		return err
	}
	//
	return writeU32(w, instruction.Column)
}

func writeU8(w io.Writer, value uint8) error {
	_, err := w.Write([]byte{value})
	return err
}

func writeU32(w io.Writer, value uint) error {
	if value > math.MaxUint32 {
		return fmt.Errorf("value %d exceeds u32", value)
	}
	//
	return binary.Write(w, binary.BigEndian, uint32(value))
}

func writeLength(w io.Writer, length uint) error {
	return binary.Write(w, binary.BigEndian, uint64(length))
}

func writeBool(w io.Writer, value bool) error {
	var b uint8
	//
	if value {
		b = 1
	}
	//
	return writeU8(w, b)
}

func writeString(w io.Writer, value string) error {
	if err := writeLength(w, uint(len(value))); err != nil {
		return err
	}
	//
	_, err := w.Write([]byte(value))
	//
	return err
}

func writeStringArray(w io.Writer, values []string) error {
	if err := writeLength(w, uint(len(values))); err != nil {
		return err
	}
	//
	for _, value := range values {
		if err := writeString(w, value); err != nil {
			return err
		}
	}
	//
	return nil
}
