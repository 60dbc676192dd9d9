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
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the msgpack payload changes.
const payloadSchemaVersion uint16 = 1

// ErrSchemaMismatch is returned when decoding a payload of another schema.
var ErrSchemaMismatch = errors.New("result payload schema mismatch")

type payload struct {
	Schema  uint16   `msgpack:"schema"`
	Results []Result `msgpack:"results"`
}

// EncodeMsgpack writes results as a versioned msgpack payload.
func EncodeMsgpack(w io.Writer, results []Result) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(payload{Schema: payloadSchemaVersion, Results: results})
}

// DecodeMsgpack reads a payload written by EncodeMsgpack.
func DecodeMsgpack(r io.Reader) ([]Result, error) {
	var p payload
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	if p.Schema != payloadSchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, p.Schema, payloadSchemaVersion)
	}
	return p.Results, nil
}

// EncodeJSON writes results as indented JSON.
func EncodeJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
