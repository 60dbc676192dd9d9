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

/*
Package radix converts numbers with arbitrarily many digits between numeral bases.

A Numeral holds a sign, the digits of its whole part in its base, and its
fractional part as an exact fraction. Converting to another base with ToBase
re-renders the whole part exactly and carries the fraction unchanged, so any
chain of conversions is lossless. Digits of the fraction are only produced on
demand by LossyFraction, which performs long division in the numeral's
current base and stops after a caller-supplied number of digits because the
expansion may not terminate in that base.

	x := radix.MustParse[natural.Big]("1234.42")
	y, _ := x.ToBase(natural.NewBig(16))
	y.WholePart()        // [4 13 2]
	y.LossyFraction(4)   // [6 11 8 5], truncated

Numerals are immutable values and may be used from any number of goroutines.
The arithmetic is supplied by any natural.Natural implementation; natural.Big
is the one to use outside tests.

The parallel sub-package converts many numerals on a bounded worker pool.
*/
package radix
