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

package digits

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// DefaultDigits spells the digits of every base up to 36.
const DefaultDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

var (
	// ErrAlphabetTooSmall reports an alphabet with fewer runes than a base needs.
	ErrAlphabetTooSmall = errors.New("alphabet too small")

	// ErrReservedRune reports an alphabet using the sign or radix point.
	ErrReservedRune = errors.New("alphabet must not contain '-' or '.'")
)

// Alphabet supports the conversion of an arbitrary set of runes into digit
// ordinals from 0 to the size of the alphabet-1, and back.
// Element 'rtu' (rune-to-ordinal) supports the mapping from runes to ordinal values.
// Element 'utr' (ordinal-to-rune) supports the mapping from ordinal values to runes.
type Alphabet struct {
	rtu map[rune]uint64
	utr []rune
}

// NewAlphabet builds an Alphabet from the set of unique characters taken from
// the string s. It is an error for s to hold fewer than two unique runes,
// since no base is smaller than two.
func NewAlphabet(s string) (Alphabet, error) {
	var ret Alphabet
	ret.rtu = make(map[rune]uint64)
	ret.utr = make([]rune, 0, utf8.RuneCountInString(s))

	for _, rv := range s {
		if rv == '-' || rv == '.' {
			return Alphabet{}, ErrReservedRune
		}
		// duplicates are tolerated, but ignored.
		if _, ok := ret.rtu[rv]; !ok {
			ret.rtu[rv] = uint64(len(ret.utr))
			ret.utr = append(ret.utr, rv)
		}
	}
	if len(ret.utr) < 2 {
		return Alphabet{}, fmt.Errorf("%d unique rune(s): %w", len(ret.utr), ErrAlphabetTooSmall)
	}
	return ret, nil
}

// Default returns the alphabet of DefaultDigits.
func Default() Alphabet {
	a, err := NewAlphabet(DefaultDigits)
	if err != nil {
		panic(err)
	}
	return a
}

// Radix returns the size of the alphabet.
func (a Alphabet) Radix() int {
	return len(a.utr)
}

// Prefix returns the alphabet made of the first n runes of a, which spells
// the digits of base n.
func (a Alphabet) Prefix(n int) (Alphabet, error) {
	if n > len(a.utr) {
		return Alphabet{}, fmt.Errorf("base %d needs %d runes, alphabet has %d: %w", n, n, len(a.utr), ErrAlphabetTooSmall)
	}
	if n < 2 {
		return Alphabet{}, fmt.Errorf("base %d: %w", n, ErrAlphabetTooSmall)
	}
	return NewAlphabet(string(a.utr[:n]))
}

// Encode the supplied string as an array of ordinal values giving the
// position of each character in the alphabet.
// It is an error for the supplied string to contain characters that are not
// in the alphabet.
func (a Alphabet) Encode(s string) ([]uint64, error) {
	ret := make([]uint64, 0, utf8.RuneCountInString(s))
	i := 0
	for _, rv := range s {
		v, ok := a.rtu[rv]
		if !ok {
			return nil, fmt.Errorf("character %q at position %d is not in alphabet", rv, i)
		}
		ret = append(ret, v)
		i++
	}
	return ret, nil
}

// Decode constructs a string from an array of ordinal values where each
// value specifies the position of the character in the alphabet.
// It is an error for the array to contain values outside the boundary of the
// alphabet.
func (a Alphabet) Decode(n []uint64) (string, error) {
	var sb strings.Builder
	sb.Grow(len(n))
	for i, v := range n {
		idx, err := safecast.Conv[int](v)
		if err != nil || idx >= len(a.utr) {
			return "", fmt.Errorf("numeral at position %d out of range: %d not in [0..%d]", i, v, len(a.utr)-1)
		}
		sb.WriteRune(a.utr[idx])
	}
	return sb.String(), nil
}

// String returns the runes of the alphabet in ordinal order.
func (a Alphabet) String() string {
	return string(a.utr)
}
