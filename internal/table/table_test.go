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

package table

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/capitalone/radix"
	"github.com/capitalone/radix/digits"
)

const hexTable = `
base: 16
precision: 4
constants:
  - name: answer
    value: "1234.42"
  - name: minus-half
    value: "-0.5"
  - name: whole
    value: "255"
`

func TestRun(t *testing.T) {
	tbl, err := Parse([]byte(hexTable))
	require.NoError(t, err)

	results, err := Run(context.Background(), tbl, digits.Default(), 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, Result{
		Name:     "answer",
		Base:     16,
		Whole:    []uint64{4, 13, 2},
		Fraction: []uint64{6, 11, 8, 5},
		Exact:    false,
		Text:     "4d2.6b85",
	}, results[0])

	assert.Equal(t, "minus-half", results[1].Name)
	assert.True(t, results[1].Negative)
	assert.True(t, results[1].Exact)
	assert.Equal(t, "-0.8", results[1].Text)

	assert.Equal(t, "ff", results[2].Text)
	assert.Empty(t, results[2].Fraction)
	assert.True(t, results[2].Exact)
}

func TestRunWithoutSpelling(t *testing.T) {
	tbl, err := Parse([]byte("base: 60\nprecision: 3\nconstants:\n  - name: third\n    value: \"0.25\"\n"))
	require.NoError(t, err)

	results, err := Run(context.Background(), tbl, digits.Default(), 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []uint64{15}, results[0].Fraction)
	assert.Empty(t, results[0].Text)
}

func TestRunBadLiteral(t *testing.T) {
	tbl, err := Parse([]byte("base: 2\nconstants:\n  - name: bad\n    value: \"1x\"\n"))
	require.NoError(t, err)

	_, err = Run(context.Background(), tbl, digits.Default(), 1)
	require.ErrorIs(t, err, radix.ErrMalformedLiteral)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"small base":     "base: 1\n",
		"negative prec":  "base: 10\nprecision: -1\n",
		"missing name":   "base: 10\nconstants:\n  - value: \"1\"\n",
		"duplicate name": "base: 10\nconstants:\n  - {name: a, value: \"1\"}\n  - {name: a, value: \"2\"}\n",
		"not yaml":       "base: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constants.yaml")
	require.NoError(t, os.WriteFile(path, []byte(hexTable), 0o644))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, tbl.Base)
	assert.Len(t, tbl.Constants, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMsgpackRoundTrip(t *testing.T) {
	results := []Result{
		{Name: "a", Base: 16, Whole: []uint64{4, 13, 2}, Fraction: []uint64{6, 11}, Text: "4d2.6b"},
		{Name: "b", Base: 2, Negative: true, Whole: []uint64{1}, Fraction: []uint64{1}, Exact: true},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeMsgpack(&buf, results))

	got, err := DecodeMsgpack(&buf)
	require.NoError(t, err)
	assert.Equal(t, results, got)
}

func TestMsgpackSchemaMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&buf).Encode(payload{Schema: payloadSchemaVersion + 1}))

	_, err := DecodeMsgpack(&buf)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, []Result{{Name: "a", Base: 3, Whole: []uint64{1}, Fraction: []uint64{}}}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "a", decoded[0]["name"])
	assert.NotContains(t, decoded[0], "text")
}
