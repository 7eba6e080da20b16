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

// Kind identifies the flavour of routine a code object represents.
type Kind uint8

const (
	// KindModule is a top-level module body.
	KindModule Kind = iota
	// KindMethod is a method body.
	KindMethod
	// KindClosure is a closure body.
	KindClosure
	// KindClass is a class-body trampoline, run at load time with the class
	// as its receiver.
	KindClass
)

// String returns the conventional name of a code object kind.
func (k Kind) String() string {
	names := [...]string{"module", "method", "closure", "class"}
	return names[k]
}

// Visibility determines who may invoke a routine.
type Visibility uint8

const (
	// Public routines may be invoked by any sender.
	Public Visibility = iota
	// Private routines may only be invoked with an implicit receiver.
	Private
)

// Label is an opaque handle for a not-yet-known instruction index within one
// code object.  Branches are emitted against the handle, and all of them are
// backpatched to the marked index when the code object is sealed.
type Label uint

// A pending backpatch: the given operand of the given instruction must be
// replaced by the index marked against the given label.
type fixup struct {
	instruction uint
	operand     uint
	label       Label
}

// CodeObject is the unit of code emission, representing one routine: a
// top-level module body, a method, a closure, or a class-body trampoline.  It
// is constructed empty, mutated by the lowering walker, sealed, and then
// consumed read-only by the image encoder.
type CodeObject struct {
	// Name of the routine ("main" for module bodies).
	Name string
	// File is the source file this routine was compiled from.
	File string
	// Line is the 1-indexed line at which the routine starts.
	Line uint
	// Visibility of the routine.
	Visibility Visibility
	// Kind of the routine.
	Kind Kind
	// Arguments is the total number of declared arguments.
	Arguments uint
	// RequiredArguments is the number of arguments without defaults.
	RequiredArguments uint
	// RestArgument indicates a variadic trailing argument.
	RestArgument bool
	// Locals is the local-variable table.
	Locals *LocalTable
	// Instructions is the instruction list, in emission order.
	Instructions []Instruction
	// Integers is the integer literal pool.
	Integers *Pool[int64]
	// Floats is the float literal pool.
	Floats *Pool[float64]
	// Strings is the string literal pool.
	Strings *Pool[string]
	// CodeObjects are the nested routines, in definition order.  Unlike the
	// primitive pools, this pool is not deduplicated.
	CodeObjects []*CodeObject
	// Outer is the code object of the lexically enclosing routine, if any.
	// Closure bodies use this to resolve free variables outward.  This is a
	// back-reference only; ownership runs strictly parent to child.
	Outer *CodeObject
	// registers counts the virtual registers allocated so far.
	registers uint
	// labels records the marked instruction index of each label, or
	// unmarkedLabel while unmarked.
	labels []uint
	// fixups are the branches pending backpatch.
	fixups []fixup
	// sealed is set once the code object is finalised.
	sealed bool
}

const unmarkedLabel = ^uint(0)

// NewCodeObject constructs an empty code object for a given routine.
func NewCodeObject(name string, file string, line uint, visibility Visibility, kind Kind) *CodeObject {
	return &CodeObject{
		Name:       name,
		File:       file,
		Line:       line,
		Visibility: visibility,
		Kind:       kind,
		Locals:     NewLocalTable(),
		Integers:   NewPool[int64](),
		Floats:     NewPool[float64](),
		Strings:    NewPool[string](),
	}
}

// NextRegister allocates a fresh virtual register.  Allocation is strictly
// monotonic; registers are never reused.
func (p *CodeObject) NextRegister() Register {
	register := p.registers
	p.registers++
	//
	return register
}

// Registers returns the number of virtual registers allocated so far.
func (p *CodeObject) Registers() uint {
	return p.registers
}

// AddCodeObject appends a nested routine, returning its index in the child
// pool.  Children are never deduplicated.
func (p *CodeObject) AddCodeObject(child *CodeObject) uint {
	index := uint(len(p.CodeObjects))
	p.CodeObjects = append(p.CodeObjects, child)
	//
	return index
}

// ResolveLocal resolves a name against this code object and, failing that,
// the chain of enclosing code objects.  The returned depth counts the number
// of outer hops taken: zero means the local lives in this code object.
func (p *CodeObject) ResolveLocal(name string) (depth uint, index uint, ok bool) {
	for scope := p; scope != nil; scope = scope.Outer {
		if index, ok := scope.Locals.Lookup(name); ok {
			return depth, index, true
		}
		//
		depth++
	}
	//
	return 0, 0, false
}

// Emit appends an instruction, recording the source coordinates it was
// lowered from.  An operand count inconsistent with the opcode is a compiler
// fault.
func (p *CodeObject) Emit(op Opcode, line uint, column uint, args ...uint) *CodeObject {
	p.checkMutable()
	//
	if n := op.Operands(); uint(len(args)) < n || (!op.Variadic() && uint(len(args)) != n) {
		Faultf("%s emitted with %d operands (expected %d)", op, len(args), n)
	}
	//
	p.Instructions = append(p.Instructions, Instruction{op, args, line, column})
	//
	return p
}

// Label returns a fresh, unmarked label.
func (p *CodeObject) Label() Label {
	label := Label(len(p.labels))
	p.labels = append(p.labels, unmarkedLabel)
	//
	return label
}

// MarkLabel records the current instruction index against a label, such that
// branches to the label jump to the next instruction emitted.  Marking a
// label twice is a compiler fault.
func (p *CodeObject) MarkLabel(label Label) {
	p.checkMutable()
	//
	if p.labels[label] != unmarkedLabel {
		Faultf("label %d marked twice", label)
	}
	//
	p.labels[label] = uint(len(p.Instructions))
}

// EmitBranch appends a branching instruction against a label, recording a
// pending fixup for its label operand.  The label occupies the instruction's
// first operand slot and is backpatched on seal.
func (p *CodeObject) EmitBranch(op Opcode, label Label, line uint, column uint, args ...uint) *CodeObject {
	if !op.Branch() {
		Faultf("%s emitted as a branch", op)
	}
	//
	p.fixups = append(p.fixups, fixup{uint(len(p.Instructions)), 0, label})
	p.Emit(op, line, column, append([]uint{0}, args...)...)
	//
	return p
}

// Seal finalises this code object: all pending branches are backpatched to
// their marked labels, and the terminator invariant is checked.  A branch to
// an unmarked label, or a routine which does not end in a terminator, is a
// compiler fault.  Once sealed, a code object is read-only.
func (p *CodeObject) Seal() {
	p.checkMutable()
	//
	for _, f := range p.fixups {
		target := p.labels[f.label]
		//
		if target == unmarkedLabel {
			Faultf("branch to unmarked label %d in %s", f.label, p.Name)
		}
		//
		p.Instructions[f.instruction].Args[f.operand] = target
	}
	//
	n := len(p.Instructions)
	if n == 0 || !p.Instructions[n-1].Terminator() {
		Faultf("%s does not end in a terminator", p.Name)
	}
	//
	p.fixups = nil
	p.sealed = true
}

// Sealed reports whether this code object has been finalised.
func (p *CodeObject) Sealed() bool {
	return p.sealed
}

// LastInstruction returns the most recently emitted instruction, if any.
func (p *CodeObject) LastInstruction() (*Instruction, bool) {
	if n := len(p.Instructions); n > 0 {
		return &p.Instructions[n-1], true
	}
	//
	return nil, false
}

func (p *CodeObject) checkMutable() {
	if p.sealed {
		Faultf("%s mutated after seal", p.Name)
	}
}
