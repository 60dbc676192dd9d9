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
	"fmt"
	"slices"

	"fortio.org/safecast"

	"github.com/capitalone/radix/digits"
	"github.com/capitalone/radix/natural"
)

// A Numeral is a number written in a particular base: a sign, the digits of
// the whole part, and the fractional part held exactly as num/den.
//
// The "fraction" here has nothing to do with base 10. For 0b101.111 the
// whole part is 101 and the fraction is 7/8.
//
// Numerals are values. No method modifies its receiver, and the whole-part
// digits are never written after construction. The zero Numeral is not
// valid; use one of the constructors.
type Numeral[N natural.Natural[N]] struct {
	negative bool
	whole    []N
	base     N
	num, den N
}

func checkBase[N natural.Natural[N]](base N) error {
	if base.Cmp(natural.Of[N](2)) < 0 {
		return fmt.Errorf("base %s: %w", base, ErrInvalidBase)
	}
	return nil
}

// New constructs a Numeral from the digits of its whole and fractional parts
// in base. It fails if base is smaller than 2 or if any digit is not less
// than base. An empty whole part denotes 0.
func New[N natural.Natural[N]](whole, frac []N, base N, negative bool) (Numeral[N], error) {
	if err := checkBase(base); err != nil {
		return Numeral[N]{}, err
	}
	if err := digits.Validate(whole, base); err != nil {
		return Numeral[N]{}, fmt.Errorf("whole part: %w", err)
	}
	if err := digits.Validate(frac, base); err != nil {
		return Numeral[N]{}, fmt.Errorf("fractional part: %w", err)
	}
	places, err := safecast.Conv[uint64](len(frac))
	if err != nil {
		return Numeral[N]{}, err
	}

	w := slices.Clone(whole)
	if len(w) == 0 {
		w = []N{natural.Of[N](0)}
	}
	return Numeral[N]{
		negative: negative,
		whole:    w,
		base:     base,
		num:      digits.ValueOf(frac, base),
		den:      base.Pow(places),
	}, nil
}

// FromFraction constructs a base 10 Numeral from the decimal digits of its
// whole part and a fraction num/den. When num >= den the integral part of the
// fraction is added to the whole part.
func FromFraction[N natural.Natural[N]](negative bool, whole []N, num, den N) (Numeral[N], error) {
	ten := natural.Of[N](10)
	if den.IsZero() {
		return Numeral[N]{}, ErrZeroDenominator
	}
	if err := digits.Validate(whole, ten); err != nil {
		return Numeral[N]{}, fmt.Errorf("whole part: %w", err)
	}

	value := digits.ValueOf(whole, ten)
	if num.Cmp(den) >= 0 {
		q, r := num.DivMod(den)
		value = value.Add(q)
		num = r
	}
	return Numeral[N]{
		negative: negative,
		whole:    digits.ToArray(value, ten),
		base:     ten,
		num:      num,
		den:      den,
	}, nil
}

// WholePart returns a copy of the digits of the whole part.
func (x Numeral[N]) WholePart() []N {
	return slices.Clone(x.whole)
}

// Base returns the base the numeral is written in.
func (x Numeral[N]) Base() N {
	return x.base
}

// Negative reports whether the numeral carries a minus sign.
func (x Numeral[N]) Negative() bool {
	return x.negative
}

// Fraction returns the fractional part as num/den, with num < den.
func (x Numeral[N]) Fraction() (num, den N) {
	return x.num, x.den
}

// IsZero reports whether the numeral's magnitude is zero.
func (x Numeral[N]) IsZero() bool {
	return x.num.IsZero() && digits.ValueOf(x.whole, x.base).IsZero()
}

// String returns a debugging form: the whole part in decimal plus the exact
// fraction and the base, e.g. "-1234 + 42/100 (base 16)".
func (x Numeral[N]) String() string {
	sign := ""
	if x.negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%s + %s/%s (base %s)", sign, digits.ValueOf(x.whole, x.base), x.num, x.den, x.base)
}
