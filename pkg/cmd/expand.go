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

	"github.com/consensys/go-strel/pkg/strel"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] formula",
	Short: "rewrite a STREL formula into interval-free canonical form.",
	Long: `Parse a given STREL formula, eliminate its bounded temporal operators and
print the canonical rendering of the result.  Observe that nested bounded
operators can blow up exponentially; this is inherent to the rewriting.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		stats := GetFlag(cmd, "stats")
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Parse formula, or print errors
		expr := readFormula(args[0])
		// Eliminate intervals
		expanded := expr.ExpandIntervals()
		//
		if stats {
			log.Infof("expanded %d nodes into %d nodes", strel.Size(expr), strel.Size(expanded))
		}
		//
		fmt.Println(expanded)
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.Flags().Bool("stats", false, "report formula size before and after expansion")
}
