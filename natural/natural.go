/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package natural defines the arbitrary-precision non-negative integer
// capability that the radix packages compute with.
//
// Natural is a self-referential constraint: an implementation N provides
// arithmetic on values of its own type. Two implementations are supplied.
// Big is backed by math/big and is the one to use in production. Word is a
// fixed-width reference implementation that panics on overflow; it exists so
// the conversion algorithms can be checked against an independent arithmetic.
//
// All implementations have value semantics: no method modifies its receiver
// or its arguments, so values can be shared freely between goroutines.
package natural

// Natural is the arithmetic required of a non-negative integer type N.
//
// Sub panics if y is greater than the receiver. DivMod panics if y is zero.
// The zero value of N must denote 0 and must be usable as a receiver, so
// generic code can build constants with FromUint64 on a zero N.
type Natural[N any] interface {
	FromUint64(v uint64) N
	Add(y N) N
	Sub(y N) N
	Mul(y N) N
	DivMod(y N) (q, r N)
	Cmp(y N) int
	GCD(y N) N
	Pow(e uint64) N
	IsZero() bool
	Uint64() (uint64, bool)
	String() string
}

// Of returns v as an N.
func Of[N Natural[N]](v uint64) N {
	var z N
	return z.FromUint64(v)
}
