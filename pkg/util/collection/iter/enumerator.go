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

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Enumerator abstracts the process of iterating over a sequence of elements.
// Observe that an enumerator is not required to terminate: for example, an
// enumerator over all natural numbers has a next element at every point.
// Callers which cannot rule out an unbounded enumerator should use Take rather
// than Collect.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.
	Next() T
}

// Find returns the index of the first match for a given predicate, or return
// false if no match is found.  This will mutate the enumerator.
//
//nolint:revive
func Find[T any, S Enumerator[T]](iter S, predicate Predicate[T]) (uint, bool) {
	index := uint(0)

	for iter.HasNext() {
		if predicate(iter.Next()) {
			return index, true
		}

		index++
	}
	// Failed to find it
	return 0, false
}

// Nth returns the nth item in this enumerator.  This will mutate the
// enumerator.
//
//nolint:revive
func Nth[T any, S Enumerator[T]](iter S, n uint) T {
	index := uint(0)

	for iter.HasNext() {
		ith := iter.Next()
		if index == n {
			return ith
		}

		index++
	}
	// Issue!
	panic("enumerator out-of-bounds")
}

// Count the number of items left.  Note, this drains the enumerator and will
// not terminate on an unbounded enumerator.
//
//nolint:revive
func Count[T any, S Enumerator[T]](iter S) uint {
	count := uint(0)

	for iter.HasNext() {
		iter.Next()
		//
		count++
	}
	//
	return count
}

// Collect allocates a new array containing all items of this enumerator.  This
// drains the enumerator and will not terminate on an unbounded enumerator.
//
//nolint:revive
func Collect[T any, S Enumerator[T]](iter S) []T {
	var items []T = make([]T, 0)
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}

// Take allocates a new array containing (at most) the first n items of this
// enumerator.  Unlike Collect, this is safe to apply to an unbounded
// enumerator.
//
//nolint:revive
func Take[T any, S Enumerator[T]](iter S, n uint) []T {
	var items []T = make([]T, 0, n)
	//
	for uint(len(items)) < n && iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}
