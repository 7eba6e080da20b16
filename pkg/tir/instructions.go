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
	"github.com/consensys/go-rook/pkg/util"
)

// Reg abbreviates the register type for instruction shapes.
type Reg = bytecode.Register

// ============================================================================
// Allocation
// ============================================================================

// Allocate allocates a fresh object with a given prototype.
type Allocate struct {
	Base
	Produces
	// Prototype of the allocated object.
	Prototype Reg
}

// Kind returns KindAllocate.
func (p *Allocate) Kind() Kind { return KindAllocate }

// Operands returns the registers read.
func (p *Allocate) Operands() []Reg { return []Reg{p.Prototype} }

// AllocateArray allocates an array holding the given values.
type AllocateArray struct {
	Base
	Produces
	// Values stored in the array, in order.
	Values []Reg
}

// Kind returns KindAllocateArray.
func (p *AllocateArray) Kind() Kind { return KindAllocateArray }

// Operands returns the registers read.
func (p *AllocateArray) Operands() []Reg { return p.Values }

// AllocatePermanent allocates a fresh object in the permanent space.
type AllocatePermanent struct {
	Base
	Produces
	// Prototype of the allocated object.
	Prototype Reg
}

// Kind returns KindAllocatePermanent.
func (p *AllocatePermanent) Kind() Kind { return KindAllocatePermanent }

// Operands returns the registers read.
func (p *AllocatePermanent) Operands() []Reg { return []Reg{p.Prototype} }

// GeneratorAllocate allocates a generator over a given block.
type GeneratorAllocate struct {
	Base
	Produces
	// Block the generator resumes.
	Block Reg
}

// Kind returns KindGeneratorAllocate.
func (p *GeneratorAllocate) Kind() Kind { return KindGeneratorAllocate }

// Operands returns the registers read.
func (p *GeneratorAllocate) Operands() []Reg { return []Reg{p.Block} }

// ============================================================================
// Literals
// ============================================================================

// SetInteger loads an integer literal.
type SetInteger struct {
	Base
	Produces
	// Value loaded.
	Value int64
}

// Kind returns KindSetInteger.
func (p *SetInteger) Kind() Kind { return KindSetInteger }

// Operands returns the registers read.
func (p *SetInteger) Operands() []Reg { return nil }

// SetFloat loads a float literal.
type SetFloat struct {
	Base
	Produces
	// Value loaded.
	Value float64
}

// Kind returns KindSetFloat.
func (p *SetFloat) Kind() Kind { return KindSetFloat }

// Operands returns the registers read.
func (p *SetFloat) Operands() []Reg { return nil }

// SetString loads a string literal.
type SetString struct {
	Base
	Produces
	// Value loaded.
	Value string
}

// Kind returns KindSetString.
func (p *SetString) Kind() Kind { return KindSetString }

// Operands returns the registers read.
func (p *SetString) Operands() []Reg { return nil }

// SetArray materialises an array from the given values.
type SetArray struct {
	Base
	Produces
	// Values stored, in order.
	Values []Reg
}

// Kind returns KindSetArray.
func (p *SetArray) Kind() Kind { return KindSetArray }

// Operands returns the registers read.
func (p *SetArray) Operands() []Reg { return p.Values }

// SetHashMap materialises a hash map from alternating key/value registers.
type SetHashMap struct {
	Base
	Produces
	// Pairs are alternating key and value registers.
	Pairs []Reg
}

// Kind returns KindSetHashMap.
func (p *SetHashMap) Kind() Kind { return KindSetHashMap }

// Operands returns the registers read.
func (p *SetHashMap) Operands() []Reg { return p.Pairs }

// SetBlock materialises a nested code object as a runnable block.
type SetBlock struct {
	Base
	Produces
	// Code is the index of the nested code object.
	Code uint
}

// Kind returns KindSetBlock.
func (p *SetBlock) Kind() Kind { return KindSetBlock }

// Operands returns the registers read.
func (p *SetBlock) Operands() []Reg { return nil }

// SetObject allocates an object, optionally with an explicit prototype.
type SetObject struct {
	Base
	Produces
	// Permanent allocates in the permanent space.
	Permanent bool
	// Prototype of the allocated object, if any.
	Prototype util.Option[Reg]
}

// Kind returns KindSetObject.
func (p *SetObject) Kind() Kind { return KindSetObject }

// Operands returns the registers read.
func (p *SetObject) Operands() []Reg {
	if p.Prototype.HasValue() {
		return []Reg{p.Prototype.Unwrap()}
	}
	//
	return nil
}

// ============================================================================
// Attributes, locals and globals
// ============================================================================

// SetAttribute writes an attribute of a receiver.
type SetAttribute struct {
	Base
	NoValue
	// Receiver written to.
	Receiver Reg
	// Name of the attribute.
	Name Reg
	// Value written.
	Value Reg
}

// Kind returns KindSetAttribute.
func (p *SetAttribute) Kind() Kind { return KindSetAttribute }

// Operands returns the registers read.
func (p *SetAttribute) Operands() []Reg { return []Reg{p.Receiver, p.Name, p.Value} }

// GetAttribute reads an attribute of a receiver.
type GetAttribute struct {
	Base
	Produces
	// Receiver read from.
	Receiver Reg
	// Name of the attribute.
	Name Reg
}

// Kind returns KindGetAttribute.
func (p *GetAttribute) Kind() Kind { return KindGetAttribute }

// Operands returns the registers read.
func (p *GetAttribute) Operands() []Reg { return []Reg{p.Receiver, p.Name} }

// GetLocal reads a local variable.
type GetLocal struct {
	Base
	Produces
	// Local slot read.
	Local uint
}

// Kind returns KindGetLocal.
func (p *GetLocal) Kind() Kind { return KindGetLocal }

// Operands returns the registers read.
func (p *GetLocal) Operands() []Reg { return nil }

// SetLocal writes a local variable.
type SetLocal struct {
	Base
	NoValue
	// Local slot written.
	Local uint
	// Value written.
	Value Reg
}

// Kind returns KindSetLocal.
func (p *SetLocal) Kind() Kind { return KindSetLocal }

// Operands returns the registers read.
func (p *SetLocal) Operands() []Reg { return []Reg{p.Value} }

// GetParentLocal reads a local of an enclosing routine.
type GetParentLocal struct {
	Base
	Produces
	// Depth counts the outer hops taken.
	Depth uint
	// Local slot read.
	Local uint
}

// Kind returns KindGetParentLocal.
func (p *GetParentLocal) Kind() Kind { return KindGetParentLocal }

// Operands returns the registers read.
func (p *GetParentLocal) Operands() []Reg { return nil }

// SetParentLocal writes a local of an enclosing routine.
type SetParentLocal struct {
	Base
	NoValue
	// Depth counts the outer hops taken.
	Depth uint
	// Local slot written.
	Local uint
	// Value written.
	Value Reg
}

// Kind returns KindSetParentLocal.
func (p *SetParentLocal) Kind() Kind { return KindSetParentLocal }

// Operands returns the registers read.
func (p *SetParentLocal) Operands() []Reg { return []Reg{p.Value} }

// GetGlobal reads a global variable.
type GetGlobal struct {
	Base
	Produces
	// Global slot read.
	Global uint
}

// Kind returns KindGetGlobal.
func (p *GetGlobal) Kind() Kind { return KindGetGlobal }

// Operands returns the registers read.
func (p *GetGlobal) Operands() []Reg { return nil }

// SetGlobal writes a global variable.
type SetGlobal struct {
	Base
	NoValue
	// Global slot written.
	Global uint
	// Value written.
	Value Reg
}

// Kind returns KindSetGlobal.
func (p *SetGlobal) Kind() Kind { return KindSetGlobal }

// Operands returns the registers read.
func (p *SetGlobal) Operands() []Reg { return []Reg{p.Value} }

// GetToplevel loads the top-level object.
type GetToplevel struct {
	Base
	Produces
}

// Kind returns KindGetToplevel.
func (p *GetToplevel) Kind() Kind { return KindGetToplevel }

// Operands returns the registers read.
func (p *GetToplevel) Operands() []Reg { return nil }

// GetTrue loads the true singleton.
type GetTrue struct {
	Base
	Produces
}

// Kind returns KindGetTrue.
func (p *GetTrue) Kind() Kind { return KindGetTrue }

// Operands returns the registers read.
func (p *GetTrue) Operands() []Reg { return nil }

// GetFalse loads the false singleton.
type GetFalse struct {
	Base
	Produces
}

// Kind returns KindGetFalse.
func (p *GetFalse) Kind() Kind { return KindGetFalse }

// Operands returns the registers read.
func (p *GetFalse) Operands() []Reg { return nil }

// LocalExists tests whether a local has been assigned.
type LocalExists struct {
	Base
	Produces
	// Local slot tested.
	Local uint
}

// Kind returns KindLocalExists.
func (p *LocalExists) Kind() Kind { return KindLocalExists }

// Operands returns the registers read.
func (p *LocalExists) Operands() []Reg { return nil }

// ============================================================================
// Control flow
// ============================================================================

// Goto jumps unconditionally to an instruction index.
type Goto struct {
	Base
	NoValue
	// Index jumped to.
	Index uint
}

// Kind returns KindGoto.
func (p *Goto) Kind() Kind { return KindGoto }

// Operands returns the registers read.
func (p *Goto) Operands() []Reg { return nil }

// GotoIfTrue jumps when a condition is truthy.
type GotoIfTrue struct {
	Base
	NoValue
	// Index jumped to.
	Index uint
	// Condition tested.
	Condition Reg
}

// Kind returns KindGotoIfTrue.
func (p *GotoIfTrue) Kind() Kind { return KindGotoIfTrue }

// Operands returns the registers read.
func (p *GotoIfTrue) Operands() []Reg { return []Reg{p.Condition} }

// GotoIfFalse jumps when a condition is falsy.
type GotoIfFalse struct {
	Base
	NoValue
	// Index jumped to.
	Index uint
	// Condition tested.
	Condition Reg
}

// Kind returns KindGotoIfFalse.
func (p *GotoIfFalse) Kind() Kind { return KindGotoIfFalse }

// Operands returns the registers read.
func (p *GotoIfFalse) Operands() []Reg { return []Reg{p.Condition} }

// GotoNextBlockIfFalse jumps over the next block when a condition is falsy.
type GotoNextBlockIfFalse struct {
	Base
	NoValue
	// Condition tested.
	Condition Reg
}

// Kind returns KindGotoNextBlockIfFalse.
func (p *GotoNextBlockIfFalse) Kind() Kind { return KindGotoNextBlockIfFalse }

// Operands returns the registers read.
func (p *GotoNextBlockIfFalse) Operands() []Reg { return []Reg{p.Condition} }

// SkipNextBlock jumps over the next block unconditionally.
type SkipNextBlock struct {
	Base
	NoValue
}

// Kind returns KindSkipNextBlock.
func (p *SkipNextBlock) Kind() Kind { return KindSkipNextBlock }

// Operands returns the registers read.
func (p *SkipNextBlock) Operands() []Reg { return nil }

// Return returns a value from the enclosing routine.
type Return struct {
	Base
	NoValue
	// Value returned.
	Value Reg
}

// Kind returns KindReturn.
func (p *Return) Kind() Kind { return KindReturn }

// Operands returns the registers read.
func (p *Return) Operands() []Reg { return []Reg{p.Value} }

// IsReturn returns true.
func (p *Return) IsReturn() bool { return true }

// Throw raises an error value.
type Throw struct {
	Base
	NoValue
	// Value raised.
	Value Reg
}

// Kind returns KindThrow.
func (p *Throw) Kind() Kind { return KindThrow }

// Operands returns the registers read.
func (p *Throw) Operands() []Reg { return []Reg{p.Value} }

// Try registers an error handler at an instruction index.
type Try struct {
	Base
	NoValue
	// Index of the handler.
	Index uint
}

// Kind returns KindTry.
func (p *Try) Kind() Kind { return KindTry }

// Operands returns the registers read.
func (p *Try) Operands() []Reg { return nil }

// Panic aborts the virtual machine with a value.
type Panic struct {
	Base
	NoValue
	// Value reported.
	Value Reg
}

// Kind returns KindPanic.
func (p *Panic) Kind() Kind { return KindPanic }

// Operands returns the registers read.
func (p *Panic) Operands() []Reg { return []Reg{p.Value} }

// ============================================================================
// Calls
// ============================================================================

// SendObjectMessage sends a message to a receiver.
type SendObjectMessage struct {
	Base
	Produces
	// Receiver of the message.
	Receiver Reg
	// Name of the message.
	Name Reg
	// Arguments passed, in order.
	Arguments []Reg
}

// Kind returns KindSendObjectMessage.
func (p *SendObjectMessage) Kind() Kind { return KindSendObjectMessage }

// Operands returns the registers read.
func (p *SendObjectMessage) Operands() []Reg {
	return append([]Reg{p.Receiver, p.Name}, p.Arguments...)
}

// IsSendObjectMessage returns true.
func (p *SendObjectMessage) IsSendObjectMessage() bool { return true }

// RunBlock runs a block with the given arguments.
type RunBlock struct {
	Base
	Produces
	// Block run.
	Block Reg
	// Arguments passed, in order.
	Arguments []Reg
}

// Kind returns KindRunBlock.
func (p *RunBlock) Kind() Kind { return KindRunBlock }

// Operands returns the registers read.
func (p *RunBlock) Operands() []Reg {
	return append([]Reg{p.Block}, p.Arguments...)
}

// IsRunBlock returns true.
func (p *RunBlock) IsRunBlock() bool { return true }

// RunBlockWithReceiver runs a block with an explicit receiver.
type RunBlockWithReceiver struct {
	Base
	Produces
	// Block run.
	Block Reg
	// Receiver bound as self.
	Receiver Reg
	// Arguments passed, in order.
	Arguments []Reg
}

// Kind returns KindRunBlockWithReceiver.
func (p *RunBlockWithReceiver) Kind() Kind { return KindRunBlockWithReceiver }

// Operands returns the registers read.
func (p *RunBlockWithReceiver) Operands() []Reg {
	return append([]Reg{p.Block, p.Receiver}, p.Arguments...)
}

// IsRunBlock returns true.
func (p *RunBlockWithReceiver) IsRunBlock() bool { return true }

// TailCall replaces the current frame with a send.
type TailCall struct {
	Base
	NoValue
	// Receiver of the message.
	Receiver Reg
	// Name of the message.
	Name Reg
	// Arguments passed, in order.
	Arguments []Reg
}

// Kind returns KindTailCall.
func (p *TailCall) Kind() Kind { return KindTailCall }

// Operands returns the registers read.
func (p *TailCall) Operands() []Reg {
	return append([]Reg{p.Receiver, p.Name}, p.Arguments...)
}

// ExternalFunctionCall invokes a registered external function.
type ExternalFunctionCall struct {
	Base
	Produces
	// Function index invoked.
	Function uint
	// Arguments passed, in order.
	Arguments []Reg
}

// Kind returns KindExternalFunctionCall.
func (p *ExternalFunctionCall) Kind() Kind { return KindExternalFunctionCall }

// Operands returns the registers read.
func (p *ExternalFunctionCall) Operands() []Reg { return p.Arguments }

// ============================================================================
// Integer and object primitives
// ============================================================================

// IntegerAdd adds two integers.
type IntegerAdd struct {
	Base
	Produces
	// Left operand.
	Left Reg
	// Right operand.
	Right Reg
}

// Kind returns KindIntegerAdd.
func (p *IntegerAdd) Kind() Kind { return KindIntegerAdd }

// Operands returns the registers read.
func (p *IntegerAdd) Operands() []Reg { return []Reg{p.Left, p.Right} }

// IntegerEquals compares two integers for equality.
type IntegerEquals struct {
	Base
	Produces
	// Left operand.
	Left Reg
	// Right operand.
	Right Reg
}

// Kind returns KindIntegerEquals.
func (p *IntegerEquals) Kind() Kind { return KindIntegerEquals }

// Operands returns the registers read.
func (p *IntegerEquals) Operands() []Reg { return []Reg{p.Left, p.Right} }

// IntegerGreater compares two integers with >.
type IntegerGreater struct {
	Base
	Produces
	// Left operand.
	Left Reg
	// Right operand.
	Right Reg
}

// Kind returns KindIntegerGreater.
func (p *IntegerGreater) Kind() Kind { return KindIntegerGreater }

// Operands returns the registers read.
func (p *IntegerGreater) Operands() []Reg { return []Reg{p.Left, p.Right} }

// IntegerSmaller compares two integers with <.
type IntegerSmaller struct {
	Base
	Produces
	// Left operand.
	Left Reg
	// Right operand.
	Right Reg
}

// Kind returns KindIntegerSmaller.
func (p *IntegerSmaller) Kind() Kind { return KindIntegerSmaller }

// Operands returns the registers read.
func (p *IntegerSmaller) Operands() []Reg { return []Reg{p.Left, p.Right} }

// IntegerToString converts an integer to its decimal string.
type IntegerToString struct {
	Base
	Produces
	// Value converted.
	Value Reg
}

// Kind returns KindIntegerToString.
func (p *IntegerToString) Kind() Kind { return KindIntegerToString }

// Operands returns the registers read.
func (p *IntegerToString) Operands() []Reg { return []Reg{p.Value} }

// ObjectEquals compares two objects for identity.
type ObjectEquals struct {
	Base
	Produces
	// Left operand.
	Left Reg
	// Right operand.
	Right Reg
}

// Kind returns KindObjectEquals.
func (p *ObjectEquals) Kind() Kind { return KindObjectEquals }

// Operands returns the registers read.
func (p *ObjectEquals) Operands() []Reg { return []Reg{p.Left, p.Right} }

// ============================================================================
// Generic arity carriers
// ============================================================================

// Unary is a generic one-operand carrier for uniform dispatch.
type Unary struct {
	Base
	Produces
	// Operation performed.
	Operation string
	// Operand read.
	Operand Reg
}

// Kind returns KindUnary.
func (p *Unary) Kind() Kind { return KindUnary }

// Operands returns the registers read.
func (p *Unary) Operands() []Reg { return []Reg{p.Operand} }

// Binary is a generic two-operand carrier for uniform dispatch.
type Binary struct {
	Base
	Produces
	// Operation performed.
	Operation string
	// Left operand.
	Left Reg
	// Right operand.
	Right Reg
}

// Kind returns KindBinary.
func (p *Binary) Kind() Kind { return KindBinary }

// Operands returns the registers read.
func (p *Binary) Operands() []Reg { return []Reg{p.Left, p.Right} }

// Ternary is a generic three-operand carrier for uniform dispatch.
type Ternary struct {
	Base
	Produces
	// Operation performed.
	Operation string
	// Operands read, in order.
	A, B, C Reg
}

// Kind returns KindTernary.
func (p *Ternary) Kind() Kind { return KindTernary }

// Operands returns the registers read.
func (p *Ternary) Operands() []Reg { return []Reg{p.A, p.B, p.C} }

// Quinary is a generic five-operand carrier for uniform dispatch.
type Quinary struct {
	Base
	Produces
	// Operation performed.
	Operation string
	// Operands read, in order.
	A, B, C, D, E Reg
}

// Kind returns KindQuinary.
func (p *Quinary) Kind() Kind { return KindQuinary }

// Operands returns the registers read.
func (p *Quinary) Operands() []Reg { return []Reg{p.A, p.B, p.C, p.D, p.E} }

// ============================================================================
// Processes and I/O
// ============================================================================

// ProcessSuspendCurrent suspends the current process.
type ProcessSuspendCurrent struct {
	Base
	NoValue
	// Timeout register, if any.
	Timeout util.Option[Reg]
}

// Kind returns KindProcessSuspendCurrent.
func (p *ProcessSuspendCurrent) Kind() Kind { return KindProcessSuspendCurrent }

// Operands returns the registers read.
func (p *ProcessSuspendCurrent) Operands() []Reg {
	if p.Timeout.HasValue() {
		return []Reg{p.Timeout.Unwrap()}
	}
	//
	return nil
}

// ProcessTerminateCurrent terminates the current process.
type ProcessTerminateCurrent struct {
	Base
	NoValue
}

// Kind returns KindProcessTerminateCurrent.
func (p *ProcessTerminateCurrent) Kind() Kind { return KindProcessTerminateCurrent }

// Operands returns the registers read.
func (p *ProcessTerminateCurrent) Operands() []Reg { return nil }

// StdoutWrite writes a value to standard output, producing the number of
// bytes written.
type StdoutWrite struct {
	Base
	Produces
	// Value written.
	Value Reg
}

// Kind returns KindStdoutWrite.
func (p *StdoutWrite) Kind() Kind { return KindStdoutWrite }

// Operands returns the registers read.
func (p *StdoutWrite) Operands() []Reg { return []Reg{p.Value} }

// StdoutFlush flushes standard output.
type StdoutFlush struct {
	Base
	NoValue
}

// Kind returns KindStdoutFlush.
func (p *StdoutFlush) Kind() Kind { return KindStdoutFlush }

// Operands returns the registers read.
func (p *StdoutFlush) Operands() []Reg { return nil }

// StderrFlush flushes standard error.
type StderrFlush struct {
	Base
	NoValue
}

// Kind returns KindStderrFlush.
func (p *StderrFlush) Kind() Kind { return KindStderrFlush }

// Operands returns the registers read.
func (p *StderrFlush) Operands() []Reg { return nil }

// ============================================================================
// Miscellaneous
// ============================================================================

// CopyBlocks copies the blocks of one object onto another.
type CopyBlocks struct {
	Base
	NoValue
	// Target receiving the blocks.
	Target Reg
	// Source providing the blocks.
	Source Reg
}

// Kind returns KindCopyBlocks.
func (p *CopyBlocks) Kind() Kind { return KindCopyBlocks }

// Operands returns the registers read.
func (p *CopyBlocks) Operands() []Reg { return []Reg{p.Target, p.Source} }

// SetPrototype replaces the prototype of an object.
type SetPrototype struct {
	Base
	NoValue
	// Object modified.
	Object Reg
	// Prototype installed.
	Prototype Reg
}

// Kind returns KindSetPrototype.
func (p *SetPrototype) Kind() Kind { return KindSetPrototype }

// Operands returns the registers read.
func (p *SetPrototype) Operands() []Reg { return []Reg{p.Object, p.Prototype} }

// LoadModule loads another module by path.
type LoadModule struct {
	Base
	Produces
	// Path of the module loaded.
	Path Reg
}

// Kind returns KindLoadModule.
func (p *LoadModule) Kind() Kind { return KindLoadModule }

// Operands returns the registers read.
func (p *LoadModule) Operands() []Reg { return []Reg{p.Path} }

// MoveToPool moves a value into a given allocation pool.
type MoveToPool struct {
	Base
	NoValue
	// Value moved.
	Value Reg
	// Pool moved into.
	Pool uint
}

// Kind returns KindMoveToPool.
func (p *MoveToPool) Kind() Kind { return KindMoveToPool }

// Operands returns the registers read.
func (p *MoveToPool) Operands() []Reg { return []Reg{p.Value} }

// Exit terminates the virtual machine with a status.
type Exit struct {
	Base
	NoValue
	// Status reported.
	Status Reg
}

// Kind returns KindExit.
func (p *Exit) Kind() Kind { return KindExit }

// Operands returns the registers read.
func (p *Exit) Operands() []Reg { return []Reg{p.Status} }

// Drop releases a value.
type Drop struct {
	Base
	NoValue
	// Value released.
	Value Reg
}

// Kind returns KindDrop.
func (p *Drop) Kind() Kind { return KindDrop }

// Operands returns the registers read.
func (p *Drop) Operands() []Reg { return []Reg{p.Value} }

// GetBlockPrototype loads the block prototype.
type GetBlockPrototype struct {
	Base
	Produces
}

// Kind returns KindGetBlockPrototype.
func (p *GetBlockPrototype) Kind() Kind { return KindGetBlockPrototype }

// Operands returns the registers read.
func (p *GetBlockPrototype) Operands() []Reg { return nil }

// GetIntegerPrototype loads the integer prototype.
type GetIntegerPrototype struct {
	Base
	Produces
}

// Kind returns KindGetIntegerPrototype.
func (p *GetIntegerPrototype) Kind() Kind { return KindGetIntegerPrototype }

// Operands returns the registers read.
func (p *GetIntegerPrototype) Operands() []Reg { return nil }

// GetFloatPrototype loads the float prototype.
type GetFloatPrototype struct {
	Base
	Produces
}

// Kind returns KindGetFloatPrototype.
func (p *GetFloatPrototype) Kind() Kind { return KindGetFloatPrototype }

// Operands returns the registers read.
func (p *GetFloatPrototype) Operands() []Reg { return nil }

// GetBooleanPrototype loads the boolean prototype.
type GetBooleanPrototype struct {
	Base
	Produces
}

// Kind returns KindGetBooleanPrototype.
func (p *GetBooleanPrototype) Kind() Kind { return KindGetBooleanPrototype }

// Operands returns the registers read.
func (p *GetBooleanPrototype) Operands() []Reg { return nil }
