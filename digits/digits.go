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

// Package digits converts between positional digit sequences and the
// natural numbers they denote, and maps digit ordinals to printable runes.
//
// A digit sequence is arranged with the most significant digit in element 0,
// down to the least significant digit in element len-1.
package digits

import (
	"errors"
	"fmt"
	"slices"

	"github.com/capitalone/radix/natural"
)

var (
	// ErrDigitOutOfRange reports a digit that is not less than its base.
	ErrDigitOutOfRange = errors.New("digit out of range")

	// ErrDigitTooLarge reports a digit that does not fit in a machine ordinal.
	ErrDigitTooLarge = errors.New("digit does not fit in uint64")
)

// ValueOf computes the number whose digits in base are ds, by Horner
// evaluation from the least significant digit upwards.
// An empty sequence denotes 0. ValueOf does not validate the digits.
func ValueOf[N natural.Natural[N]](ds []N, base N) N {
	switch len(ds) {
	case 0:
		return natural.Of[N](0)
	case 1:
		return ds[0]
	}

	place := natural.Of[N](1)
	sum := natural.Of[N](0)
	for i := len(ds) - 1; i >= 0; i-- {
		sum = sum.Add(place.Mul(ds[i]))
		if i > 0 {
			place = place.Mul(base)
		}
	}
	return sum
}

// ToArray returns the digits of v in base. The result always holds at least
// one digit, so ToArray(0, base) is [0].
// The caller must ensure base >= 2.
func ToArray[N natural.Natural[N]](v N, base N) []N {
	ds := make([]N, 0, 10)
	for v.Cmp(base) >= 0 {
		q, r := v.DivMod(base)
		ds = append(ds, r)
		v = q
	}
	ds = append(ds, v)
	slices.Reverse(ds)
	return ds
}

// Validate checks that every digit of ds is less than base.
func Validate[N natural.Natural[N]](ds []N, base N) error {
	for i, d := range ds {
		if d.Cmp(base) >= 0 {
			return fmt.Errorf("value at %d: got %s, base is %s: %w", i, d, base, ErrDigitOutOfRange)
		}
	}
	return nil
}

// Ordinals converts ds to machine-sized digit values.
func Ordinals[N natural.Natural[N]](ds []N) ([]uint64, error) {
	ords := make([]uint64, len(ds))
	for i, d := range ds {
		v, ok := d.Uint64()
		if !ok {
			return nil, fmt.Errorf("value at %d: %w", i, ErrDigitTooLarge)
		}
		ords[i] = v
	}
	return ords, nil
}

// FromOrdinals converts machine-sized digit values to a digit sequence.
func FromOrdinals[N natural.Natural[N]](ords []uint64) []N {
	ds := make([]N, len(ords))
	for i, v := range ords {
		ds[i] = natural.Of[N](v)
	}
	return ds
}
