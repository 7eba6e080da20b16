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

// Package tir defines the typed intermediate representation: a second,
// lower-level instruction family used by the type checker and by optimisers
// sitting between lowering and encoding.  Each instruction is a value with a
// fixed, typed shape, and carries a designated visitor identifier (its Kind)
// on which analysis passes dispatch.  Streams are write-once: passes produce
// new streams rather than mutating in place.
package tir

import (
	"github.com/consensys/go-rook/pkg/bytecode"
)

// Kind is the visitor-dispatch identifier carried by every instruction.
// Passes walk an instruction stream and dispatch on this closed set to a
// per-kind handler.
type Kind uint8

// The closed set of instruction kinds.
const (
	KindAllocate Kind = iota
	KindAllocateArray
	KindAllocatePermanent
	KindSetInteger
	KindSetFloat
	KindSetString
	KindSetArray
	KindSetHashMap
	KindSetBlock
	KindSetObject
	KindSetAttribute
	KindGetAttribute
	KindGetLocal
	KindSetLocal
	KindGetParentLocal
	KindSetParentLocal
	KindGetGlobal
	KindSetGlobal
	KindGetToplevel
	KindGetTrue
	KindGetFalse
	KindLocalExists
	KindGoto
	KindGotoIfTrue
	KindGotoIfFalse
	KindGotoNextBlockIfFalse
	KindSkipNextBlock
	KindReturn
	KindThrow
	KindTry
	KindPanic
	KindSendObjectMessage
	KindRunBlock
	KindRunBlockWithReceiver
	KindTailCall
	KindExternalFunctionCall
	KindIntegerAdd
	KindIntegerEquals
	KindIntegerGreater
	KindIntegerSmaller
	KindIntegerToString
	KindObjectEquals
	KindUnary
	KindBinary
	KindTernary
	KindQuinary
	KindProcessSuspendCurrent
	KindProcessTerminateCurrent
	KindStdoutWrite
	KindStdoutFlush
	KindStderrFlush
	KindCopyBlocks
	KindSetPrototype
	KindLoadModule
	KindMoveToPool
	KindExit
	KindDrop
	KindGetBlockPrototype
	KindGetIntegerPrototype
	KindGetFloatPrototype
	KindGetBooleanPrototype
	KindGeneratorAllocate
)

// Location identifies the source coordinates an instruction was lowered
// from.
type Location struct {
	// Line is the 1-indexed source line.
	Line uint
	// Column is the 1-indexed source column.
	Column uint
}

// Predicates answers classification questions about an instruction.  The
// default implementation (provided by the embedded instruction base) answers
// false to everything; kinds override as appropriate.
type Predicates interface {
	// IsReturn reports whether this instruction returns from the enclosing
	// routine.
	IsReturn() bool
	// IsSendObjectMessage reports whether this instruction sends a message.
	IsSendObjectMessage() bool
	// IsRunBlock reports whether this instruction runs a block.
	IsRunBlock() bool
}

// Instruction is a single typed intermediate instruction.  Implementations
// form a closed set; consumers dispatch on Kind.
type Instruction interface {
	Predicates
	// Kind returns the visitor-dispatch identifier of this instruction.
	Kind() Kind
	// Result returns the register this instruction produces a value into, if
	// any.
	Result() (bytecode.Register, bool)
	// Operands returns the registers this instruction reads, in order.
	Operands() []bytecode.Register
	// Location returns the source coordinates of this instruction.
	Location() Location
}

// Base is the state and default behaviour shared by every instruction kind:
// a source location, and predicates answering false.
type Base struct {
	// Source coordinates this instruction was lowered from.
	Source Location
}

// At constructs the shared instruction state for a given source location.
func At(line uint, column uint) Base {
	return Base{Location{line, column}}
}

// Location returns the source coordinates of this instruction.
func (p *Base) Location() Location { return p.Source }

// IsReturn returns false by default.
func (p *Base) IsReturn() bool { return false }

// IsSendObjectMessage returns false by default.
func (p *Base) IsSendObjectMessage() bool { return false }

// IsRunBlock returns false by default.
func (p *Base) IsRunBlock() bool { return false }

// Produces provides the Result implementation for value-producing kinds.
// Every such kind writes into exactly one register.
type Produces struct {
	// Register receiving the produced value.
	Register bytecode.Register
}

// Result returns the register receiving the produced value.
func (p *Produces) Result() (bytecode.Register, bool) { return p.Register, true }

// NoValue provides the Result implementation for kinds which produce no
// value.
type NoValue struct{}

// Result reports that no value is produced.
func (p NoValue) Result() (bytecode.Register, bool) { return 0, false }
