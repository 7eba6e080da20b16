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
package sexp

import (
	"testing"

	"github.com/consensys/go-rook/pkg/util/source"
)

func Test_Parse_01(t *testing.T) {
	sExp := check_Parses(t, "(block (integer 10))")
	//
	list := sExp.AsList()
	//
	if list == nil || list.Len() != 2 {
		t.Fatalf("unexpected shape %s", sExp)
	}
	//
	if list.Get(0).AsSymbol().Value != "block" {
		t.Errorf("unexpected head %s", list.Get(0))
	}
	//
	inner := list.Get(1).AsList()
	//
	if inner.Len() != 2 || inner.Get(1).AsSymbol().Value != "10" {
		t.Errorf("unexpected inner %s", inner)
	}
}

func Test_Parse_02(t *testing.T) {
	// Quoted strings keep their quotes; Unquote strips them.
	sExp := check_Parses(t, "(string \"hello world\")")
	//
	symbol := sExp.AsList().Get(1).AsSymbol()
	//
	if !symbol.IsQuoted() {
		t.Fatalf("string literal not quoted")
	}
	//
	if symbol.Unquote() != "hello world" {
		t.Errorf("unexpected contents %q", symbol.Unquote())
	}
}

func Test_Parse_03(t *testing.T) {
	// Comments and whitespace are skipped.
	sExp := check_Parses(t, "; leading comment\n(self) ; trailing\n")
	//
	if sExp.AsList().Get(0).AsSymbol().Value != "self" {
		t.Errorf("unexpected shape %s", sExp)
	}
}

func Test_Parse_04(t *testing.T) {
	// The source map covers every term.
	srcfile := source.NewFile("test.ast", []byte("(a (b))"))
	//
	sExp, srcmap, err := Parse(srcfile)
	if err != nil {
		t.Fatal(err)
	}
	//
	span, ok := srcmap.Get(sExp)
	//
	if !ok || span.Start() != 0 || span.End() != 7 {
		t.Errorf("unexpected outer span (%v, %v)", span, ok)
	}
	//
	inner := sExp.AsList().Get(1)
	//
	if span, ok := srcmap.Get(inner); !ok || span.Start() != 3 {
		t.Errorf("unexpected inner span (%v, %v)", span, ok)
	}
}

func Test_Parse_05(t *testing.T) {
	check_ParseFails(t, "(unclosed")
	check_ParseFails(t, "(a))")
	check_ParseFails(t, ")")
	check_ParseFails(t, "(a) trailing")
	check_ParseFails(t, "(\"unterminated)")
	check_ParseFails(t, "")
}

// ============================================================================
// Helpers
// ============================================================================

func check_Parses(t *testing.T, text string) SExp {
	t.Helper()
	//
	sExp, _, err := Parse(source.NewFile("test.ast", []byte(text)))
	if err != nil {
		t.Fatalf("%q failed to parse: %v", text, err)
	}
	//
	return sExp
}

func check_ParseFails(t *testing.T, text string) {
	t.Helper()
	//
	if _, _, err := Parse(source.NewFile("test.ast", []byte(text))); err == nil {
		t.Errorf("%q parsed unexpectedly", text)
	}
}
