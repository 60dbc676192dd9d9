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

package natural

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Word is a Natural held in a single uint64. Operations whose result does
// not fit panic, which makes it a convenient oracle in tests: any result it
// produces is exact.
type Word uint64

func (Word) FromUint64(v uint64) Word {
	return Word(v)
}

func (x Word) Add(y Word) Word {
	s, carry := bits.Add64(uint64(x), uint64(y), 0)
	if carry != 0 {
		panic(fmt.Sprintf("natural: %d + %d overflows uint64", x, y))
	}
	return Word(s)
}

func (x Word) Sub(y Word) Word {
	d, borrow := bits.Sub64(uint64(x), uint64(y), 0)
	if borrow != 0 {
		panic(fmt.Sprintf("natural: %d - %d underflows", x, y))
	}
	return Word(d)
}

func (x Word) Mul(y Word) Word {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 {
		panic(fmt.Sprintf("natural: %d * %d overflows uint64", x, y))
	}
	return Word(lo)
}

func (x Word) DivMod(y Word) (q, r Word) {
	if y == 0 {
		panic("natural: division by zero")
	}
	return x / y, x % y
}

func (x Word) Cmp(y Word) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (x Word) GCD(y Word) Word {
	a, b := x, y
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Pow computes x**e by square-and-multiply.
func (x Word) Pow(e uint64) Word {
	result, base := Word(1), x
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		e >>= 1
		if e > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

func (x Word) IsZero() bool {
	return x == 0
}

func (x Word) Uint64() (uint64, bool) {
	return uint64(x), true
}

func (x Word) String() string {
	return strconv.FormatUint(uint64(x), 10)
}
