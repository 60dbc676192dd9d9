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

package radix

import (
	"github.com/capitalone/radix/digits"
)

// ToBase returns x written in base. The whole part is re-rendered exactly;
// the fraction is carried over as is, since its value does not depend on
// the base it is displayed in. ToBase fails if base is smaller than 2.
func (x Numeral[N]) ToBase(base N) (Numeral[N], error) {
	if err := checkBase(base); err != nil {
		return Numeral[N]{}, err
	}
	value := digits.ValueOf(x.whole, x.base)
	return Numeral[N]{
		negative: x.negative,
		whole:    digits.ToArray(value, base),
		base:     base,
		num:      x.num,
		den:      x.den,
	}, nil
}

// Reduce returns x with its fraction in lowest terms. Every expansion of
// the result equals the corresponding expansion of x.
func (x Numeral[N]) Reduce() Numeral[N] {
	g := x.num.GCD(x.den)
	y := x
	y.num, _ = x.num.DivMod(g)
	y.den, _ = x.den.DivMod(g)
	return y
}
