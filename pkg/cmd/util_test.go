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
	"testing"

	"github.com/consensys/go-strel/pkg/strel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Cmd_01(t *testing.T) {
	expr := readFormula("a & b")
	assert.Equal(t, "(a & b)", expr.String())
}

func Test_Cmd_02(t *testing.T) {
	// Interval validation errors span the whole bracketed interval
	_, errs := strel.Parse("F[2, 2] p")
	require.NotEmpty(t, errs)
	//
	var (
		err  = errs[0]
		line = err.FirstEnclosingLine()
		span = err.Span()
	)
	//
	assert.Equal(t, 1, line.Number())
	assert.Equal(t, 1, span.Start())
	assert.Equal(t, 6, span.Length())
	// Full rendering remains panic free
	printSyntaxErrors(errs)
}

func Test_Cmd_03(t *testing.T) {
	// Lexical errors anchor on the unrecognised text
	_, errs := strel.Parse("a @ b")
	require.NotEmpty(t, errs)
	//
	assert.Equal(t, 2, errs[0].Span().Start())
	//
	printSyntaxErrors(errs)
}
