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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/consensys/go-rook/pkg/bytecode"
)

// Upper bound on any single length prefix, guarding decode of corrupted or
// hostile images against unbounded allocation.
const maxLength = 1 << 24

// Decode reads a code-object tree back from a given stream, refusing images
// whose signature or version is not recognised.
func Decode(r io.Reader) (*bytecode.CodeObject, error) {
	var signature [4]byte
	//
	if _, err := io.ReadFull(r, signature[:]); err != nil {
		return nil, err
	} else if !bytes.Equal(signature[:], Signature[:]) {
		return nil, fmt.Errorf("not a code image (bad signature)")
	}
	//
	version, err := readU8(r)
	if err != nil {
		return nil, err
	} else if version != Version {
		return nil, fmt.Errorf("unsupported image version %d (expected %d)", version, Version)
	}
	//
	return decodeCodeObject(r)
}

func decodeCodeObject(r io.Reader) (*bytecode.CodeObject, error) {
	name, err := readString(r)
	if err != nil {
		return nil, err
	}
	//
	file, err := readString(r)
	if err != nil {
		return nil, err
	}
	//
	line, err := readU32(r)
	if err != nil {
		return nil, err
	}
	//
	co := bytecode.NewCodeObject(name, file, line, bytecode.Public, bytecode.KindModule)
	//
	var arguments int32
	if err := binary.Read(r, binary.BigEndian, &arguments); err != nil {
		return nil, err
	}
	//
	co.Arguments = uint(arguments)
	//
	if co.RequiredArguments, err = readU32(r); err != nil {
		return nil, err
	}
	//
	if co.RestArgument, err = readBool(r); err != nil {
		return nil, err
	}
	//
	locals, err := readStringArray(r)
	if err != nil {
		return nil, err
	}
	//
	for _, local := range locals {
		co.Locals.Add(local)
	}
	//
	if co.Instructions, err = decodeInstructions(r); err != nil {
		return nil, err
	}
	//
	if err := decodePool(r, co.Integers, readI64); err != nil {
		return nil, err
	}
	//
	if err := decodePool(r, co.Floats, readF64); err != nil {
		return nil, err
	}
	//
	if err := decodePool(r, co.Strings, readString); err != nil {
		return nil, err
	}
	//
	children, err := readLength(r)
	if err != nil {
		return nil, err
	}
	//
	for i := uint(0); i < children; i++ {
		child, err := decodeCodeObject(r)
		if err != nil {
			return nil, err
		}
		//
		co.AddCodeObject(child)
	}
	//
	return co, nil
}

func decodeInstructions(r io.Reader) ([]bytecode.Instruction, error) {
	length, err := readLength(r)
	if err != nil {
		return nil, err
	}
	//
	instructions := make([]bytecode.Instruction, length)
	//
	for i := range instructions {
		if instructions[i], err = decodeInstruction(r); err != nil {
			return nil, err
		}
	}
	//
	return instructions, nil
}

func decodeInstruction(r io.Reader) (bytecode.Instruction, error) {
	var (
		instruction bytecode.Instruction
		opcode      uint16
	)
	//
	if err := binary.Read(r, binary.BigEndian, &opcode); err != nil {
		return instruction, err
	}
	//
	instruction.Opcode = bytecode.Opcode(opcode)
	//
	if !instruction.Opcode.Valid() {
		return instruction, fmt.Errorf("unknown opcode %d", opcode)
	}
	//
	length, err := readLength(r)
	if err != nil {
		return instruction, err
	}
	//
	instruction.Args = make([]uint, length)
	//
	for i := range instruction.Args {
		if instruction.Args[i], err = readU32(r); err != nil {
			return instruction, err
		}
	}
	//
	if instruction.Line, err = readU32(r); err != nil {
		return instruction, err
	}
	//
	instruction.Column, err = readU32(r)
	//
	return instruction, err
}

func decodePool[T comparable](r io.Reader, pool *bytecode.Pool[T], read func(io.Reader) (T, error)) error {
	length, err := readLength(r)
	if err != nil {
		return err
	}
	//
	for i := uint(0); i < length; i++ {
		value, err := read(r)
		if err != nil {
			return err
		}
		//
		pool.Add(value)
	}
	//
	return nil
}

func readU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	//
	_, err := io.ReadFull(r, buf[:])
	//
	return buf[0], err
}

func readBool(r io.Reader) (bool, error) {
	b, err := readU8(r)
	//
	if err != nil {
		return false, err
	} else if b > 1 {
		return false, fmt.Errorf("malformed boolean %d", b)
	}
	//
	return b == 1, nil
}

func readU32(r io.Reader) (uint, error) {
	var value uint32
	//
	err := binary.Read(r, binary.BigEndian, &value)
	//
	return uint(value), err
}

func readI64(r io.Reader) (int64, error) {
	var value int64
	//
	err := binary.Read(r, binary.BigEndian, &value)
	//
	return value, err
}

func readF64(r io.Reader) (float64, error) {
	var value float64
	//
	err := binary.Read(r, binary.BigEndian, &value)
	//
	return value, err
}

func readLength(r io.Reader) (uint, error) {
	var length uint64
	//
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return 0, err
	} else if length > maxLength {
		return 0, fmt.Errorf("implausible length prefix %d", length)
	}
	//
	return uint(length), nil
}

func readString(r io.Reader) (string, error) {
	length, err := readLength(r)
	if err != nil {
		return "", err
	}
	//
	buf := make([]byte, length)
	//
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	//
	return string(buf), nil
}

func readStringArray(r io.Reader) ([]string, error) {
	length, err := readLength(r)
	if err != nil {
		return nil, err
	}
	//
	values := make([]string, length)
	//
	for i := range values {
		if values[i], err = readString(r); err != nil {
			return nil, err
		}
	}
	//
	return values, nil
}
