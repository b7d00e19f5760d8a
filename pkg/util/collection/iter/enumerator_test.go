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
package iter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// counter enumerates the naturals from a given value, optionally forever.
type counter struct {
	next  uint
	limit uint
	// unbounded enumerators ignore the limit
	unbounded bool
}

func (p *counter) HasNext() bool {
	return p.unbounded || p.next < p.limit
}

func (p *counter) Next() uint {
	next := p.next
	p.next++
	//
	return next
}

func Test_Enumerator_01(t *testing.T) {
	assert.Equal(t, []uint{0, 1, 2}, Collect[uint](&counter{0, 3, false}))
	assert.Equal(t, []uint{}, Collect[uint](&counter{0, 0, false}))
}

func Test_Enumerator_02(t *testing.T) {
	// Take is safe on an unbounded enumerator
	assert.Equal(t, []uint{0, 1, 2, 3}, Take[uint](&counter{0, 0, true}, 4))
	// Take caps at whatever is available
	assert.Equal(t, []uint{5, 6}, Take[uint](&counter{5, 7, false}, 100))
}

func Test_Enumerator_03(t *testing.T) {
	index, ok := Find[uint](&counter{0, 10, false}, func(n uint) bool { return n == 7 })
	assert.True(t, ok)
	assert.Equal(t, uint(7), index)
	//
	_, ok = Find[uint](&counter{0, 10, false}, func(n uint) bool { return n > 100 })
	assert.False(t, ok)
}

func Test_Enumerator_04(t *testing.T) {
	assert.Equal(t, uint(12), Nth[uint](&counter{10, 20, false}, 2))
	assert.Equal(t, uint(5), Count[uint](&counter{0, 5, false}))
}
