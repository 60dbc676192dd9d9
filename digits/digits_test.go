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
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalone/radix/natural"
)

func words(vs ...uint64) []natural.Word {
	return FromOrdinals[natural.Word](vs)
}

func TestToArray(t *testing.T) {
	testSamples := []struct {
		radix   uint64
		value   uint64
		numeral []natural.Word
	}{
		{2, 0b1010101, words(1, 0, 1, 0, 1, 0, 1)},
		{10, 123456789, words(1, 2, 3, 4, 5, 6, 7, 8, 9)},
		{10, 100, words(1, 0, 0)},
		{10, 0, words(0)},
		{16, 255, words(15, 15)},
		{43, 42, words(42)},
		{65536, 65536, words(1, 0)},
	}

	for idx, sample := range testSamples {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			base := natural.Word(sample.radix)
			got := ToArray(natural.Word(sample.value), base)
			assert.Equal(t, sample.numeral, got)
			assert.Equal(t, natural.Word(sample.value), ValueOf(got, base))
		})
	}
}

func TestValueOfEdges(t *testing.T) {
	assert.Equal(t, natural.Word(0), ValueOf([]natural.Word{}, 10))
	assert.Equal(t, natural.Word(7), ValueOf(words(7), 10))
	assert.Equal(t, natural.Word(1234), ValueOf(words(0, 0, 1, 2, 3, 4), 10))
}

func TestRoundTripBig(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		new(big.Int).Exp(big.NewInt(65536), big.NewInt(7), nil),
		new(big.Int).Exp(big.NewInt(10), big.NewInt(200), nil),
		new(big.Int).Sub(new(big.Int).Exp(big.NewInt(3), big.NewInt(333), nil), big.NewInt(1)),
	}
	bases := []uint64{2, 3, 10, 16, 36, 65535, 1 << 40}

	for _, v := range values {
		for _, b := range bases {
			n, err := natural.BigFromInt(v)
			require.NoError(t, err)
			base := natural.NewBig(b)

			ds := ToArray(n, base)
			require.NotEmpty(t, ds)
			require.NoError(t, Validate(ds, base))
			assert.Zero(t, n.Cmp(ValueOf(ds, base)), "value %s base %d", v, b)
		}
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(words(1, 0, 1), 2))
	require.NoError(t, Validate(words(), 2))

	err := Validate(words(1, 2, 1), 2)
	require.ErrorIs(t, err, ErrDigitOutOfRange)
	assert.Contains(t, err.Error(), "value at 1")
}

func TestOrdinals(t *testing.T) {
	ords, err := Ordinals(words(3, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 1, 4}, ords)

	huge := natural.NewBig(1).Add(natural.NewBig(1 << 63)).Mul(natural.NewBig(4))
	_, err = Ordinals([]natural.Big{huge})
	require.ErrorIs(t, err, ErrDigitTooLarge)
}
