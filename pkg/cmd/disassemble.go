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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-rook/pkg/bytecode"
	"github.com/consensys/go-rook/pkg/image"
)

// disassembleCmd renders a compiled image as text.
var disassembleCmd = &cobra.Command{
	Use:   "disassemble [flags] file.rookc",
	Short: "Print a human-readable listing of a bytecode image.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		root := readImage(args[0])
		//
		width := 0
		if term.IsTerminal(int(os.Stdout.Fd())) {
			width, _, _ = term.GetSize(int(os.Stdout.Fd()))
		}
		//
		for _, line := range splitLines(bytecode.Disassemble(root)) {
			if width > 0 && len(line) > width {
				line = line[:width]
			}
			//
			fmt.Println(line)
		}
	},
}

// Read and decode an image file, or exit.
func readImage(filename string) *bytecode.CodeObject {
	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	defer file.Close()
	//
	root, err := image.Decode(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	return root
}

func splitLines(text string) []string {
	var (
		lines []string
		start int
	)
	//
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	//
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	//
	return lines
}

func init() {
	rootCmd.AddCommand(disassembleCmd)
}
