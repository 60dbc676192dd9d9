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
	"strings"

	"fortio.org/safecast"

	"github.com/capitalone/radix/digits"
	"github.com/capitalone/radix/natural"
)

// Parse constructs a base 10 Numeral from a literal of the form
// [-]digits['.'digits].
//
// Parse is meant for trusted input such as constant tables and test
// fixtures. It rejects bytes other than ASCII digits in either part, but
// does nothing else to harden the input: there are no exponents, separators
// or '+' signs. An empty whole part denotes 0 and an absent or empty
// fractional part denotes .0.
//
// The fractional digits are kept exactly as value/10^len, so nothing is
// lost whatever base the numeral is later converted to.
func Parse[N natural.Natural[N]](s string) (Numeral[N], error) {
	ten := natural.Of[N](10)
	lit := s

	negative := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		negative = true
		s = rest
	}

	wholeStr, fracStr, _ := strings.Cut(s, ".")
	if wholeStr == "" {
		wholeStr = "0"
	}
	if fracStr == "" {
		fracStr = "0"
	}

	whole, err := decimalDigits[N](wholeStr)
	if err != nil {
		return Numeral[N]{}, fmt.Errorf("%q: %w", lit, err)
	}
	frac, err := decimalDigits[N](fracStr)
	if err != nil {
		return Numeral[N]{}, fmt.Errorf("%q: %w", lit, err)
	}
	places, err := safecast.Conv[uint64](len(frac))
	if err != nil {
		return Numeral[N]{}, err
	}

	return Numeral[N]{
		negative: negative,
		whole:    whole,
		base:     ten,
		num:      digits.ValueOf(frac, ten),
		den:      ten.Pow(places),
	}, nil
}

// MustParse is like Parse but panics if the literal cannot be parsed.
// It simplifies the initialization of tables of constants.
func MustParse[N natural.Natural[N]](s string) Numeral[N] {
	x, err := Parse[N](s)
	if err != nil {
		panic(err)
	}
	return x
}

func decimalDigits[N natural.Natural[N]](s string) ([]N, error) {
	ds := make([]N, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("byte %d (%q) is not a decimal digit: %w", i, c, ErrMalformedLiteral)
		}
		ds[i] = natural.Of[N](uint64(c - '0'))
	}
	return ds, nil
}

// ParseRadix constructs a Numeral from a literal of the form
// [-]digits['.'digits] written with the runes of a. The base of the result
// is a.Radix(); use Alphabet.Prefix to select the digits of a smaller base.
func ParseRadix[N natural.Natural[N]](s string, a digits.Alphabet) (Numeral[N], error) {
	radix, err := safecast.Conv[uint64](a.Radix())
	if err != nil {
		return Numeral[N]{}, err
	}
	base := natural.Of[N](radix)
	if err := checkBase(base); err != nil {
		return Numeral[N]{}, err
	}
	lit := s

	negative := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		negative = true
		s = rest
	}
	wholeStr, fracStr, _ := strings.Cut(s, ".")

	whole, err := a.Encode(wholeStr)
	if err != nil {
		return Numeral[N]{}, fmt.Errorf("%q: %w: %w", lit, ErrMalformedLiteral, err)
	}
	frac, err := a.Encode(fracStr)
	if err != nil {
		return Numeral[N]{}, fmt.Errorf("%q: %w: %w", lit, ErrMalformedLiteral, err)
	}
	return New(digits.FromOrdinals[N](whole), digits.FromOrdinals[N](frac), base, negative)
}
