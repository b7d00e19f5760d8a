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
	"github.com/consensys/go-strel/pkg/util/collection/iter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var instantsCmd = &cobra.Command{
	Use:   "instants [flags] interval",
	Short: "print the discrete instants covered by a time interval.",
	Long: `Print the discrete instants covered by a given time interval, such as
"[2,5]".  For an unbounded interval, only a bounded prefix of the (infinite)
enumeration is printed, as determined by --limit.`,
	Run: func(cmd *cobra.Command, args []string) {
		var instants []uint
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		limit := GetUint(cmd, "limit")
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Parse interval, or print errors
		interval, errs := strel.ParseTimeInterval(args[0])
		//
		if len(errs) != 0 {
			printSyntaxErrors(errs)
			os.Exit(2)
		}
		//
		if interval.IsUnbounded() {
			log.Debugf("interval %s is unbounded, printing %d instants", interval, limit)
			//
			instants = iter.Take(interval.Instants(), limit)
		} else {
			instants = iter.Collect(interval.Instants())
		}
		//
		for _, instant := range instants {
			fmt.Println(instant)
		}
	},
}

func init() {
	rootCmd.AddCommand(instantsCmd)
	instantsCmd.Flags().Uint("limit", 10, "maximum instants printed for an unbounded interval")
}
