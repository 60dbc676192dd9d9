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
	"errors"
	"fmt"
	"math/big"
)

// ErrNegative is returned when a negative big.Int is offered as a Big.
var ErrNegative = errors.New("natural: negative value")

var zeroInt = new(big.Int)

// Big is a Natural backed by a *big.Int. The zero value is 0.
// The wrapped integer is never modified after construction.
type Big struct {
	i *big.Int
}

// NewBig returns v as a Big.
func NewBig(v uint64) Big {
	return Big{i: new(big.Int).SetUint64(v)}
}

// BigFromInt copies x into a Big. It fails if x is negative.
func BigFromInt(x *big.Int) (Big, error) {
	if x.Sign() < 0 {
		return Big{}, fmt.Errorf("%s: %w", x, ErrNegative)
	}
	return Big{i: new(big.Int).Set(x)}, nil
}

// ParseBig parses s as an unsigned integer in the given base (see big.Int.SetString).
func ParseBig(s string, base int) (Big, error) {
	i, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Big{}, fmt.Errorf("natural: cannot parse %q in base %d", s, base)
	}
	return BigFromInt(i)
}

func (x Big) get() *big.Int {
	if x.i == nil {
		return zeroInt
	}
	return x.i
}

// Int returns a copy of x as a *big.Int.
func (x Big) Int() *big.Int {
	return new(big.Int).Set(x.get())
}

func (Big) FromUint64(v uint64) Big {
	return NewBig(v)
}

func (x Big) Add(y Big) Big {
	return Big{i: new(big.Int).Add(x.get(), y.get())}
}

func (x Big) Sub(y Big) Big {
	if x.Cmp(y) < 0 {
		panic(fmt.Sprintf("natural: %s - %s underflows", x, y))
	}
	return Big{i: new(big.Int).Sub(x.get(), y.get())}
}

func (x Big) Mul(y Big) Big {
	return Big{i: new(big.Int).Mul(x.get(), y.get())}
}

// DivMod returns the floor quotient and remainder of x / y.
func (x Big) DivMod(y Big) (q, r Big) {
	if y.IsZero() {
		panic("natural: division by zero")
	}
	qi, ri := new(big.Int).QuoRem(x.get(), y.get(), new(big.Int))
	return Big{i: qi}, Big{i: ri}
}

func (x Big) Cmp(y Big) int {
	return x.get().Cmp(y.get())
}

// GCD returns the greatest common divisor of x and y. GCD(0, y) is y.
func (x Big) GCD(y Big) Big {
	return Big{i: new(big.Int).GCD(nil, nil, x.get(), y.get())}
}

func (x Big) Pow(e uint64) Big {
	return Big{i: new(big.Int).Exp(x.get(), new(big.Int).SetUint64(e), nil)}
}

func (x Big) IsZero() bool {
	return x.get().Sign() == 0
}

func (x Big) Uint64() (uint64, bool) {
	i := x.get()
	if !i.IsUint64() {
		return 0, false
	}
	return i.Uint64(), true
}

func (x Big) String() string {
	return x.get().String()
}
