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

import (
	"fmt"
	"strings"
)

// Disassemble renders a code object (and, recursively, its nested routines)
// as human-readable text.
func Disassemble(co *CodeObject) string {
	var builder strings.Builder
	//
	disassemble(&builder, co, 0)
	//
	return builder.String()
}

func disassemble(builder *strings.Builder, co *CodeObject, depth int) {
	indent := strings.Repeat("  ", depth)
	//
	fmt.Fprintf(builder, "%s%s %q (%s:%d)\n", indent, co.Kind, co.Name, co.File, co.Line)
	//
	if locals := co.Locals.Names(); len(locals) > 0 {
		fmt.Fprintf(builder, "%s  locals: %s\n", indent, strings.Join(locals, ", "))
	}
	//
	writePool(builder, indent, "integers", co.Integers)
	writePool(builder, indent, "floats", co.Floats)
	writePool(builder, indent, "strings", co.Strings)
	//
	for i := range co.Instructions {
		fmt.Fprintf(builder, "%s  %04d  %s\n", indent, i, co.Instructions[i].String())
	}
	//
	for _, child := range co.CodeObjects {
		disassemble(builder, child, depth+1)
	}
}

func writePool[T comparable](builder *strings.Builder, indent string, name string, pool *Pool[T]) {
	if pool.Size() == 0 {
		return
	}
	//
	fmt.Fprintf(builder, "%s  %s:", indent, name)
	//
	for i, v := range pool.Values() {
		if i != 0 {
			fmt.Fprintf(builder, ",")
		}
		//
		fmt.Fprintf(builder, " %v", v)
	}
	//
	fmt.Fprintf(builder, "\n")
}
