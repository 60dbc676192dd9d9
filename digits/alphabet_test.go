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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAlphabet = []struct {
	alphabet string
	radix    int
	input    string
	output   []uint64
}{
	{
		"0123456789abcdefghijklmnopqrstuvwxyz ",
		37,
		"hello world",
		[]uint64{17, 14, 21, 21, 24, 36, 32, 24, 27, 21, 13},
	},
	{
		"hello world",
		8,
		"hello world",
		[]uint64{0, 1, 2, 2, 3, 4, 5, 3, 6, 2, 7},
	},
	{
		"hello world⌘",
		9,
		"⌘ hello world",
		[]uint64{8, 4, 0, 1, 2, 2, 3, 4, 5, 3, 6, 2, 7},
	},
}

func TestAlphabet(t *testing.T) {
	for idx, sample := range testAlphabet {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			al, err := NewAlphabet(sample.alphabet)
			require.NoError(t, err)
			assert.Equal(t, sample.radix, al.Radix())

			es, err := al.Encode(sample.input)
			require.NoError(t, err)
			assert.Equal(t, sample.output, es)

			s, err := al.Decode(es)
			require.NoError(t, err)
			assert.Equal(t, sample.input, s)
		})
	}
}

func TestAlphabetErrors(t *testing.T) {
	_, err := NewAlphabet("")
	require.ErrorIs(t, err, ErrAlphabetTooSmall)

	_, err = NewAlphabet("aaaa")
	require.ErrorIs(t, err, ErrAlphabetTooSmall)

	_, err = NewAlphabet("01.")
	require.ErrorIs(t, err, ErrReservedRune)

	al, err := NewAlphabet("helloworld")
	require.NoError(t, err)
	assert.Equal(t, 7, al.Radix())

	_, err = al.Encode("hello world")
	require.Error(t, err)

	_, err = al.Decode([]uint64{0, 7})
	require.Error(t, err)
}

func TestPrefix(t *testing.T) {
	hex, err := Default().Prefix(16)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", hex.String())

	_, err = hex.Encode("g")
	require.Error(t, err)

	_, err = Default().Prefix(37)
	require.ErrorIs(t, err, ErrAlphabetTooSmall)

	_, err = Default().Prefix(1)
	require.ErrorIs(t, err, ErrAlphabetTooSmall)
}
