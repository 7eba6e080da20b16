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
package ast

import (
	"testing"

	"github.com/consensys/go-rook/pkg/util/source"
)

func Test_Read_01(t *testing.T) {
	// (let (ident x) (integer 10))
	root := check_Reads(t, "(block (let (ident x) (integer 10)))")
	//
	if root.Kind != KindBlock || len(root.Children) != 1 {
		t.Fatalf("unexpected root %v", root)
	}
	//
	let := root.Children[0]
	//
	if let.Kind != KindLet {
		t.Fatalf("unexpected kind %s", let.Kind)
	}
	//
	if target := let.Child(0); target.Kind != KindIdent || target.Text != "x" {
		t.Errorf("unexpected target %v", target)
	}
	//
	if value := let.Child(1); value.Kind != KindInteger || value.Int != 10 {
		t.Errorf("unexpected value %v", value)
	}
}

func Test_Read_02(t *testing.T) {
	// Literal payloads: floats, strings, negative integers.
	root := check_Reads(t, "(block (float 1.5) (string \"hi\") (integer -3))")
	//
	if f := root.Children[0]; f.Kind != KindFloat || f.Float != 1.5 {
		t.Errorf("unexpected float %v", f)
	}
	//
	if s := root.Children[1]; s.Kind != KindString || s.Text != "hi" {
		t.Errorf("unexpected string %v", s)
	}
	//
	if i := root.Children[2]; i.Kind != KindInteger || i.Int != -3 {
		t.Errorf("unexpected integer %v", i)
	}
}

func Test_Read_03(t *testing.T) {
	// Sends: explicit receiver, implicit receiver, rest argument.
	root := check_Reads(t, "(block (send (ident a) foo (integer 1)) (send _ bar (rest (array))))")
	//
	explicit := root.Children[0]
	//
	if explicit.Kind != KindSend || explicit.Text != "foo" {
		t.Fatalf("unexpected send %v", explicit)
	}
	//
	if explicit.Child(0) == nil || explicit.Child(0).Kind != KindIdent {
		t.Errorf("explicit receiver lost")
	}
	//
	implicit := root.Children[1]
	//
	if implicit.Child(0) != nil {
		t.Errorf("implicit receiver not nil")
	}
	//
	if arg := implicit.Child(1); arg.Kind != KindRest || arg.Child(0).Kind != KindArray {
		t.Errorf("rest argument lost: %v", arg)
	}
}

func Test_Read_04(t *testing.T) {
	// Methods: name, parameters (with rest), body, visibility.
	root := check_Reads(t, "(block (method m (a b (rest c)) (block (ident a)) private))")
	//
	m := root.Children[0]
	//
	if m.Kind != KindMethod || m.Text != "m" || m.Int != 1 {
		t.Fatalf("unexpected method %v", m)
	}
	//
	params := m.Child(0)
	//
	if len(params.Children) != 3 {
		t.Fatalf("unexpected parameter count %d", len(params.Children))
	}
	//
	if p := params.Children[2]; p.Kind != KindRest || p.Text != "c" {
		t.Errorf("rest parameter lost: %v", p)
	}
	//
	if m.Child(1).Kind != KindBlock {
		t.Errorf("body lost")
	}
}

func Test_Read_05(t *testing.T) {
	// Classes: name, optional receiver and parent placeholders, body.
	root := check_Reads(t, "(block (class C _ (const Base) (block)))")
	//
	c := root.Children[0]
	//
	if c.Kind != KindClass || c.Text != "C" {
		t.Fatalf("unexpected class %v", c)
	}
	//
	if c.Child(0) != nil {
		t.Errorf("receiver placeholder not nil")
	}
	//
	if parent := c.Child(1); parent.Kind != KindConst || parent.Text != "Base" {
		t.Errorf("parent lost: %v", parent)
	}
}

func Test_Read_06(t *testing.T) {
	// Source coordinates are 1-indexed and survive reading.
	root := check_Reads(t, "(block\n  (self))")
	//
	self := root.Children[0]
	//
	if self.Line != 2 || self.Column != 3 {
		t.Errorf("unexpected position %d:%d", self.Line, self.Column)
	}
}

func Test_Read_07(t *testing.T) {
	check_ReadFails(t, "(widget)")
	check_ReadFails(t, "(ident)")
	check_ReadFails(t, "(integer ten)")
	check_ReadFails(t, "(integer 99999999999999999999)")
	check_ReadFails(t, "(let (ident x))")
	check_ReadFails(t, "(class C _ _)")
	check_ReadFails(t, "(method m (a) (block) protected)")
	check_ReadFails(t, "bare")
}

// ============================================================================
// Helpers
// ============================================================================

func check_Reads(t *testing.T, text string) *Node {
	t.Helper()
	//
	root, _, err := Read(source.NewFile("test.ast", []byte(text)))
	if err != nil {
		t.Fatalf("%q failed to read: %v", text, err)
	}
	//
	return root
}

func check_ReadFails(t *testing.T, text string) {
	t.Helper()
	//
	if _, _, err := Read(source.NewFile("test.ast", []byte(text))); err == nil {
		t.Errorf("%q read unexpectedly", text)
	}
}
