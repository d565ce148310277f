// Copyright the Mica Authors.
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

	"github.com/mica-lang/mica/pkg/util/source"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Print a diagnostic with appropriate highlighting.
func printDiagnostic(diagnostic *source.Diagnostic) {
	span := diagnostic.Span()
	line := diagnostic.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d [E%04d] %s\n", diagnostic.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, diagnostic.Code(),
		diagnostic.Message())
	// Print line
	fmt.Println(truncateLine(line.String()))
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}

// Truncate a source line to the width of the enclosing terminal (if there is
// one), since very long lines mangle the highlight underneath.
func truncateLine(line string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return line
	}
	//
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || len(line) <= width {
		return line
	}
	//
	return line[:width]
}
