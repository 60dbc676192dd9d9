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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalone/radix/digits"
	"github.com/capitalone/radix/natural"
)

func TestAlign(t *testing.T) {
	testSamples := []struct {
		r, den, base natural.Word
		limit        int
		dividend     natural.Word
		places       int
		covers       bool
	}{
		{5, 10, 2, 10, 10, 1, true},
		{2, 8, 2, 10, 8, 2, true},
		{1, 1000, 10, 10, 1000, 3, true},
		{1, 1000, 10, 3, 1000, 3, true},
		{1, 1000, 10, 2, 100, 2, false},
		{1, 3, 2, 10, 4, 2, true},
		{7, 3, 10, 5, 7, 0, true},
		{1, 1000, 10, 0, 1, 0, false},
	}

	for idx, sample := range testSamples {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			a := align(sample.r, sample.den, sample.base, sample.limit)
			assert.Equal(t, sample.dividend, a.dividend)
			assert.Equal(t, sample.places, a.places)
			assert.Equal(t, sample.covers, a.covers(sample.den))
		})
	}
}

// longDivision is the textbook one-digit-at-a-time expansion of num/den.
func longDivision(num, den, base uint64, precision int) ([]uint64, bool) {
	out := []uint64{}
	for num != 0 && len(out) < precision {
		num *= base
		out = append(out, num/den)
		num %= den
	}
	return out, num == 0
}

func wordNumeral(t *testing.T, num, den, base uint64) Numeral[natural.Word] {
	t.Helper()
	x, err := FromFraction(false, nil, natural.Word(num), natural.Word(den))
	require.NoError(t, err)
	x, err = x.ToBase(natural.Word(base))
	require.NoError(t, err)
	return x
}

func TestExpansionMatchesLongDivision(t *testing.T) {
	dens := []uint64{2, 3, 7, 8, 10, 12, 25, 49, 60, 97, 1000, 1024, 4096 * 3}
	bases := []uint64{2, 3, 5, 7, 10, 12, 16, 36, 60}
	precisions := []int{0, 1, 2, 3, 5, 8, 13, 40}

	for _, den := range dens {
		for num := uint64(0); num < den; num += 1 + den/7 {
			for _, b := range bases {
				x := wordNumeral(t, num, den, b)
				for _, p := range precisions {
					want, wantExact := longDivision(num, den, b, p)
					got, exact := x.LossyFractionExact(p)
					gotOrds, err := digits.Ordinals(got)
					require.NoError(t, err)

					label := fmt.Sprintf("%d/%d base %d precision %d", num, den, b, p)
					require.Equal(t, want, gotOrds, label)
					require.LessOrEqual(t, len(got), p, label)
					if num != 0 {
						require.Equal(t, wantExact, exact, label)
					}
				}
			}
		}
	}
}

func TestTinyFractionPadsZeros(t *testing.T) {
	x := MustParse[natural.Word]("0.000001")

	assert.Equal(t, []natural.Word{0, 0, 0, 0, 0, 1}, x.LossyFraction(10))
	assert.Equal(t, []natural.Word{0, 0, 0, 0}, x.LossyFraction(4))
	assert.Equal(t, []natural.Word{0, 0, 0, 0, 0, 1}, x.LossyFraction(6))

	bin, err := x.ToBase(2)
	require.NoError(t, err)
	ds, exact := bin.LossyFractionExact(19)
	assert.False(t, exact)
	assert.Equal(t, []natural.Word{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, ds)
	ds = bin.LossyFraction(20)
	assert.Equal(t, natural.Word(1), ds[19])
}

func TestPrecisionBound(t *testing.T) {
	x := MustParse[natural.Big]("0.142857142857142857142857")
	for p := range 64 {
		ds := x.LossyFraction(p)
		assert.LessOrEqual(t, len(ds), p)
	}
	assert.Empty(t, x.LossyFraction(-1))
}

func TestZeroFraction(t *testing.T) {
	x := MustParse[natural.Big]("12")
	ds, exact := x.LossyFractionExact(10)
	assert.Empty(t, ds)
	assert.True(t, exact)
	assert.True(t, x.Terminates())

	ds, exact = x.LossyFractionExact(0)
	assert.Empty(t, ds)
	assert.True(t, exact)
}

func TestTerminatesAgreesWithExpansion(t *testing.T) {
	for den := uint64(1); den <= 100; den++ {
		for _, b := range []uint64{2, 3, 6, 10, 12} {
			num := den / 3
			if num == 0 {
				continue
			}
			x := wordNumeral(t, num, den, b)
			_, exact := x.LossyFractionExact(200)
			assert.Equal(t, exact, x.Terminates(), "%d/%d base %d", num, den, b)
		}
	}
}

func TestWordAndBigAgree(t *testing.T) {
	lit := "3.14159"
	xw := MustParse[natural.Word](lit)
	xb := MustParse[natural.Big](lit)

	for b := uint64(2); b <= 20; b++ {
		yw, err := xw.ToBase(natural.Word(b))
		require.NoError(t, err)
		yb, err := xb.ToBase(natural.NewBig(b))
		require.NoError(t, err)

		ow, err := digits.Ordinals(yw.LossyFraction(30))
		require.NoError(t, err)
		ob, err := digits.Ordinals(yb.LossyFraction(30))
		require.NoError(t, err)
		assert.Equal(t, ow, ob, "base %d", b)
		assert.Equal(t, yw.Terminates(), yb.Terminates(), "base %d", b)
	}
}
