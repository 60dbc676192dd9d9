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
	"github.com/capitalone/radix/natural"
)

// alignment is the state of one long-division step: the dividend grown from
// the running remainder one place at a time, and the number of places that
// took.
type alignment[N natural.Natural[N]] struct {
	dividend N
	places   int
}

// covers reports whether the dividend has reached the divisor.
func (a alignment[N]) covers(den N) bool {
	return a.dividend.Cmp(den) >= 0
}

// align multiplies r by base until it is at least den, consuming at most
// limit places. If the limit is hit first, the next limit digits of r/den
// are all zero.
func align[N natural.Natural[N]](r, den, base N, limit int) alignment[N] {
	a := alignment[N]{dividend: r}
	for !a.covers(den) && a.places < limit {
		a.dividend = a.dividend.Mul(base)
		a.places++
	}
	return a
}

// LossyFraction returns at most precision digits of the fraction written in
// the numeral's base. The expansion stops early if it terminates; otherwise
// it is truncated, which is not an error. A zero fraction has no digits.
func (x Numeral[N]) LossyFraction(precision int) []N {
	ds, _ := x.expand(precision)
	return ds
}

// LossyFractionExact is like LossyFraction and also reports whether the
// digits returned are the complete expansion.
func (x Numeral[N]) LossyFractionExact(precision int) ([]N, bool) {
	return x.expand(precision)
}

func (x Numeral[N]) expand(precision int) ([]N, bool) {
	if x.num.IsZero() {
		return []N{}, true
	}
	if precision <= 0 {
		return []N{}, false
	}

	zero := natural.Of[N](0)
	out := make([]N, 0, min(precision, 256))
	r := x.num
	for len(out) < precision {
		room := precision - len(out)
		a := align(r, x.den, x.base, room)
		if !a.covers(x.den) {
			for range room {
				out = append(out, zero)
			}
			return out, false
		}

		// Places skipped before the dividend covered the divisor hold zeros.
		for range a.places - 1 {
			out = append(out, zero)
		}

		q, b := a.dividend.DivMod(x.den)
		chunk := digits.ToArray(q, x.base)
		room = precision - len(out)
		if len(chunk) > room {
			return append(out, chunk[:room]...), false
		}
		out = append(out, chunk...)
		if b.IsZero() {
			return out, true
		}
		r = b
	}
	return out, false
}

// Terminates reports whether the fraction has a finite expansion in the
// numeral's base, that is whether every prime factor of its reduced
// denominator divides the base.
func (x Numeral[N]) Terminates() bool {
	if x.num.IsZero() {
		return true
	}
	one := natural.Of[N](1)
	d, _ := x.den.DivMod(x.num.GCD(x.den))
	for {
		g := d.GCD(x.base)
		if g.Cmp(one) == 0 {
			break
		}
		d, _ = d.DivMod(g)
	}
	return d.Cmp(one) == 0
}
