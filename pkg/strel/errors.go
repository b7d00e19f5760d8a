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
package strel

import "fmt"

// ValueError signals that an attempt was made to construct an interval or
// formula node violating one of its local invariants (e.g. a point time
// interval, or a blank identifier).  The offending value is never returned to
// the caller; construction is total-or-fail.
type ValueError struct {
	msg string
}

// Error implements the error interface.
func (p *ValueError) Error() string {
	return p.msg
}

// Construct a value error from a format string.
func valueErrorf(format string, args ...any) *ValueError {
	return &ValueError{fmt.Sprintf(format, args...)}
}
