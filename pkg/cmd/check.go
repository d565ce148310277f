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

	"github.com/mica-lang/mica/pkg/mica/analysis"
	"github.com/mica-lang/mica/pkg/mica/ast"
	"github.com/mica-lang/mica/pkg/mica/parser"
	"github.com/mica-lang/mica/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] source_file(s)",
	Short: "Check a given set of source files.",
	Long: `Parse and analyse a given set of source files, evaluating every
	constant declaration and reporting any errors encountered.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Parse source files
		unit, srcmap := readSourceFiles(args)
		// Analyse compilation unit
		reporter := source.NewReporter()
		constants, _ := analysis.CheckUnit(reporter, srcmap, unit)
		// Report any diagnostics
		if reporter.Count() > 0 {
			for _, diagnostic := range reporter.Diagnostics() {
				printDiagnostic(&diagnostic)
			}
			//
			os.Exit(1)
		}
		// Report evaluated constants
		if !getFlag(cmd, "quiet") {
			for _, constant := range constants {
				fmt.Printf("%s = %s : %s\n", constant.Decl.Name(),
					constant.Value.EvaluatedValue, constant.Value.SourceType)
			}
		}
	},
}

// Read and parse a given set of source files into a single compilation unit,
// exiting with an appropriate error should anything go wrong.
func readSourceFiles(filenames []string) (*ast.Unit, *source.Maps[ast.Node]) {
	var (
		unit   ast.Unit
		srcmap = source.NewSourceMaps[ast.Node]()
		failed = false
	)
	// Read source files
	srcfiles, err := source.ReadFiles(filenames...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Parse each file in turn, accumulating declarations.
	for i := range srcfiles {
		u, sm, diagnostics := parser.ParseSourceFile(&srcfiles[i])
		//
		for _, diagnostic := range diagnostics {
			printDiagnostic(&diagnostic)
			failed = true
		}
		//
		unit.Declarations = append(unit.Declarations, u.Declarations...)
		srcmap.Join(sm)
	}
	//
	if failed {
		os.Exit(1)
	}
	//
	return &unit, srcmap
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("quiet", "q", false, "suppress reporting of evaluated constants")
}
