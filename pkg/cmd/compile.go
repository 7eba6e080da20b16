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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-rook/pkg/ast"
	"github.com/consensys/go-rook/pkg/compiler"
	"github.com/consensys/go-rook/pkg/image"
	"github.com/consensys/go-rook/pkg/util/source"
)

// compileCmd compiles a parsed source unit into a bytecode image.
var compileCmd = &cobra.Command{
	Use:   "compile [flags] file.ast",
	Short: "Compile a parsed source unit into a bytecode image.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var output = GetString(cmd, "output")
		//
		if output == "" {
			output = strings.TrimSuffix(args[0], ".ast") + ".rookc"
		}
		//
		compileInto(args[0], output)
	},
}

// Compile a given source unit, writing the image to a given file.  User
// errors are reported against their source lines; compiler faults are
// reported as bugs.  Either way the process exits non-zero.
func compileInto(filename string, output string) {
	srcfile, err := source.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	root, nodemap, serr := ast.Read(srcfile)
	if serr != nil {
		reportErrors(serr)
	}
	//
	module, errs, fault := compiler.New(filename, nodemap).Compile(root)
	//
	if fault != nil {
		fmt.Fprintf(os.Stderr, "%s (this is a bug in go-rook, not in %s)\n", fault, filename)
		os.Exit(2)
	} else if len(errs) != 0 {
		reportErrors(errs...)
	}
	//
	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	defer out.Close()
	//
	if err := image.Encode(out, module); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	log.Debugf("wrote %s", output)
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("output", "o", "", "write the image to a given file")
}
