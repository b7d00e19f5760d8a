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

	"github.com/consensys/go-strel/pkg/strel"
	"github.com/consensys/go-strel/pkg/util/source"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a formula given on the command line, printing any syntax errors with
// appropriate highlighting and exiting on failure.
func readFormula(input string) strel.Expr {
	expr, errs := strel.Parse(input)
	//
	if len(errs) != 0 {
		printSyntaxErrors(errs)
		os.Exit(2)
	}
	//
	return expr
}

// Print a set of syntax errors with appropriate highlighting.
func printSyntaxErrors(errs []source.SyntaxError) {
	for i := range errs {
		printSyntaxError(&errs[i])
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	var (
		line = err.FirstEnclosingLine()
		// Offset of the error span within the enclosing line
		offset = err.Span().Start() - line.Start()
		// Amount of highlight, clipped to the enclosing line
		width = max(1, min(err.Span().Length(), line.Length()-offset))
	)
	// Print error + line number
	fmt.Printf("%s:%d:%d: %s\n", err.SourceFile().Filename(), line.Number(), offset+1, err.Message())
	// Print line, truncated on a narrow terminal
	fmt.Println(truncateForTerminal(line.String()))
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", offset))
	// Print highlight
	fmt.Println(strings.Repeat("^", width))
}

// Truncate a line of output against the terminal width (when stdout actually
// is a terminal).
func truncateForTerminal(line string) string {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && len(line) > width {
			return line[0:width]
		}
	}
	//
	return line
}
