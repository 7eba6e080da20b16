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
	"testing"

	"github.com/consensys/go-rook/pkg/util"
)

func Test_Predicates_01(t *testing.T) {
	// The default predicates answer false; overriding kinds answer true.
	var (
		set  = &SetInteger{At(1, 1), Produces{0}, 10}
		ret  = &Return{At(2, 1), NoValue{}, 0}
		send = &SendObjectMessage{At(3, 1), Produces{1}, 0, 0, nil}
		run  = &RunBlock{At(4, 1), Produces{2}, 0, nil}
	)
	//
	if set.IsReturn() || set.IsSendObjectMessage() || set.IsRunBlock() {
		t.Errorf("default predicates answered true")
	}
	//
	if !ret.IsReturn() || ret.IsSendObjectMessage() {
		t.Errorf("return predicates wrong")
	}
	//
	if !send.IsSendObjectMessage() || send.IsReturn() {
		t.Errorf("send predicates wrong")
	}
	//
	if !run.IsRunBlock() {
		t.Errorf("run-block predicate wrong")
	}
	//
	if !(&RunBlockWithReceiver{At(5, 1), Produces{3}, 0, 1, nil}).IsRunBlock() {
		t.Errorf("run-block-with-receiver predicate wrong")
	}
}

func Test_Result_01(t *testing.T) {
	// Value-producing kinds report their register; others report absence.
	set := &SetInteger{At(1, 1), Produces{7}, 10}
	//
	if register, ok := set.Result(); !ok || register != 7 {
		t.Errorf("result missing (%d, %v)", register, ok)
	}
	//
	if _, ok := (&Return{At(1, 1), NoValue{}, 7}).Result(); ok {
		t.Errorf("return has a result")
	}
}

func Test_Operands_01(t *testing.T) {
	// Optional operands only appear when present.
	with := &SetObject{At(1, 1), Produces{1}, false, util.Some[Reg](3)}
	without := &SetObject{At(1, 1), Produces{2}, true, util.None[Reg]()}
	//
	if ops := with.Operands(); len(ops) != 1 || ops[0] != 3 {
		t.Errorf("unexpected operands %v", ops)
	}
	//
	if ops := without.Operands(); len(ops) != 0 {
		t.Errorf("unexpected operands %v", ops)
	}
	//
	suspend := &ProcessSuspendCurrent{At(2, 1), NoValue{}, util.None[Reg]()}
	//
	if len(suspend.Operands()) != 0 {
		t.Errorf("phantom timeout operand")
	}
}

func Test_Location_01(t *testing.T) {
	set := &SetInteger{At(3, 9), Produces{0}, 10}
	//
	if loc := set.Location(); loc.Line != 3 || loc.Column != 9 {
		t.Errorf("unexpected location %v", loc)
	}
}

func Test_Verify_01(t *testing.T) {
	// A well-formed stream verifies.
	stream := []Instruction{
		&SetInteger{At(1, 1), Produces{0}, 10},
		&Return{At(1, 1), NoValue{}, 0},
	}
	//
	if err := Verify(stream, 1); err != nil {
		t.Errorf("unexpected verification failure: %v", err)
	}
}

func Test_Verify_02(t *testing.T) {
	// Out-of-range result and operand registers are rejected.
	stream := []Instruction{
		&SetInteger{At(1, 1), Produces{5}, 10},
		&Return{At(1, 1), NoValue{}, 0},
	}
	//
	if err := Verify(stream, 1); err == nil {
		t.Errorf("out-of-range result accepted")
	}
	//
	stream = []Instruction{
		&SetInteger{At(1, 1), Produces{0}, 10},
		&Return{At(1, 1), NoValue{}, 3},
	}
	//
	if err := Verify(stream, 1); err == nil {
		t.Errorf("out-of-range operand accepted")
	}
}

func Test_Verify_03(t *testing.T) {
	// Branches must target real instructions, and streams must terminate.
	stream := []Instruction{
		&Goto{At(1, 1), NoValue{}, 9},
		&Return{At(1, 1), NoValue{}, 0},
	}
	//
	if err := Verify(stream, 1); err == nil {
		t.Errorf("out-of-range branch accepted")
	}
	//
	stream = []Instruction{
		&SetInteger{At(1, 1), Produces{0}, 10},
	}
	//
	if err := Verify(stream, 1); err == nil {
		t.Errorf("unterminated stream accepted")
	}
}

func Test_Fold_01(t *testing.T) {
	// Adding two known integers folds to a direct load.
	stream := []Instruction{
		&SetInteger{At(1, 1), Produces{0}, 10},
		&SetInteger{At(1, 5), Produces{1}, 32},
		&IntegerAdd{At(1, 3), Produces{2}, 0, 1},
		&Return{At(1, 1), NoValue{}, 2},
	}
	//
	folded := Fold(stream)
	//
	set, ok := folded[2].(*SetInteger)
	//
	if !ok || set.Value != 42 || set.Register != 2 {
		t.Errorf("addition not folded: %v", folded[2])
	}
	// The input stream is untouched.
	if _, ok := stream[2].(*IntegerAdd); !ok {
		t.Errorf("input stream mutated")
	}
}

func Test_Fold_02(t *testing.T) {
	// Comparisons fold to boolean loads, and folded results chain.
	stream := []Instruction{
		&SetInteger{At(1, 1), Produces{0}, 1},
		&SetInteger{At(1, 2), Produces{1}, 2},
		&IntegerAdd{At(1, 3), Produces{2}, 0, 1},
		&SetInteger{At(1, 4), Produces{3}, 3},
		&IntegerEquals{At(1, 5), Produces{4}, 2, 3},
		&IntegerGreater{At(1, 6), Produces{5}, 2, 3},
		&IntegerSmaller{At(1, 7), Produces{6}, 0, 3},
		&Return{At(1, 1), NoValue{}, 4},
	}
	//
	folded := Fold(stream)
	//
	if _, ok := folded[4].(*GetTrue); !ok {
		t.Errorf("equality not folded to true: %v", folded[4])
	}
	//
	if _, ok := folded[5].(*GetFalse); !ok {
		t.Errorf("comparison not folded to false: %v", folded[5])
	}
	//
	if _, ok := folded[6].(*GetTrue); !ok {
		t.Errorf("comparison not folded to true: %v", folded[6])
	}
}

func Test_Fold_03(t *testing.T) {
	// Registers with multiple definitions are never folded.
	stream := []Instruction{
		&SetInteger{At(1, 1), Produces{0}, 1},
		&SetInteger{At(2, 1), Produces{0}, 2},
		&SetInteger{At(3, 1), Produces{1}, 3},
		&IntegerAdd{At(4, 1), Produces{2}, 0, 1},
		&Return{At(5, 1), NoValue{}, 2},
	}
	//
	folded := Fold(stream)
	//
	if _, ok := folded[3].(*IntegerAdd); !ok {
		t.Errorf("multiply-defined register folded: %v", folded[3])
	}
}

func Test_Fold_04(t *testing.T) {
	// A folded stream still verifies.
	stream := []Instruction{
		&SetInteger{At(1, 1), Produces{0}, 10},
		&SetInteger{At(1, 2), Produces{1}, 20},
		&IntegerAdd{At(1, 3), Produces{2}, 0, 1},
		&Return{At(1, 1), NoValue{}, 2},
	}
	//
	if err := Verify(Fold(stream), 3); err != nil {
		t.Errorf("folded stream fails verification: %v", err)
	}
}
