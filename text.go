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

// Text renders x as [-]whole[.fraction] using the runes of a, with at most
// precision fractional digits. The alphabet must hold at least as many runes
// as the numeral's base.
func (x Numeral[N]) Text(a digits.Alphabet, precision int) (string, error) {
	return x.TextDigits(a, x.LossyFraction(precision))
}

// TextDigits is like Text but spells the fractional digits frac, as returned
// by LossyFraction or LossyFractionExact, instead of expanding them again.
func (x Numeral[N]) TextDigits(a digits.Alphabet, frac []N) (string, error) {
	radix, err := safecast.Conv[uint64](a.Radix())
	if err != nil {
		return "", err
	}
	if x.base.Cmp(natural.Of[N](radix)) > 0 {
		return "", fmt.Errorf("base %s needs %s runes, alphabet has %d: %w", x.base, x.base, radix, digits.ErrAlphabetTooSmall)
	}

	var sb strings.Builder
	if x.negative {
		sb.WriteByte('-')
	}
	if err := writeDigits(&sb, a, x.whole); err != nil {
		return "", err
	}
	if len(frac) > 0 {
		sb.WriteByte('.')
		if err := writeDigits(&sb, a, frac); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func writeDigits[N natural.Natural[N]](sb *strings.Builder, a digits.Alphabet, ds []N) error {
	ords, err := digits.Ordinals(ds)
	if err != nil {
		return err
	}
	s, err := a.Decode(ords)
	if err != nil {
		return err
	}
	sb.WriteString(s)
	return nil
}
