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

// Package table converts a YAML table of named base 10 constants into
// another base and encodes the results.
package table

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fortio.org/safecast"
	"gopkg.in/yaml.v3"

	"github.com/capitalone/radix"
	"github.com/capitalone/radix/digits"
	"github.com/capitalone/radix/natural"
	"github.com/capitalone/radix/parallel"
)

// Constant is one named literal of a table.
type Constant struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Table is the decoded form of a constants file:
//
//	base: 16
//	precision: 40
//	constants:
//	  - name: pi
//	    value: "3.14159265358979323846"
type Table struct {
	Base      int        `yaml:"base"`
	Precision int        `yaml:"precision"`
	Constants []Constant `yaml:"constants"`
}

// Result is one converted constant.
type Result struct {
	Name     string   `json:"name" msgpack:"name"`
	Base     int      `json:"base" msgpack:"base"`
	Negative bool     `json:"negative" msgpack:"negative"`
	Whole    []uint64 `json:"whole" msgpack:"whole"`
	Fraction []uint64 `json:"fraction" msgpack:"fraction"`
	Exact    bool     `json:"exact" msgpack:"exact"`
	Text     string   `json:"text,omitempty" msgpack:"text,omitempty"`
}

var errInvalidTable = errors.New("invalid table")

// Load reads and validates the table at path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if t.Base < 2 {
		return nil, fmt.Errorf("%w: base must be at least 2, got %d", errInvalidTable, t.Base)
	}
	if t.Precision < 0 {
		return nil, fmt.Errorf("%w: precision must not be negative, got %d", errInvalidTable, t.Precision)
	}
	seen := make(map[string]bool, len(t.Constants))
	for i, c := range t.Constants {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: constant %d has no name", errInvalidTable, i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: duplicate constant %q", errInvalidTable, c.Name)
		}
		seen[c.Name] = true
	}
	return &t, nil
}

// Run converts every constant of t, using at most jobs goroutines.
// Text is filled in when a has enough runes for the target base.
func Run(ctx context.Context, t *Table, a digits.Alphabet, jobs int) ([]Result, error) {
	b, err := safecast.Conv[uint64](t.Base)
	if err != nil {
		return nil, err
	}
	base := natural.NewBig(b)
	spellable := t.Base <= a.Radix()

	results := make([]Result, len(t.Constants))
	err = parallel.ForEach(ctx, len(t.Constants), jobs, func(i int) error {
		c := t.Constants[i]
		x, err := radix.Parse[natural.Big](c.Value)
		if err != nil {
			return fmt.Errorf("constant %q: %w", c.Name, err)
		}
		y, err := x.ToBase(base)
		if err != nil {
			return fmt.Errorf("constant %q: %w", c.Name, err)
		}

		frac, exact := y.LossyFractionExact(t.Precision)
		whole, err := digits.Ordinals(y.WholePart())
		if err != nil {
			return fmt.Errorf("constant %q: %w", c.Name, err)
		}
		fracOrds, err := digits.Ordinals(frac)
		if err != nil {
			return fmt.Errorf("constant %q: %w", c.Name, err)
		}

		r := Result{
			Name:     c.Name,
			Base:     t.Base,
			Negative: y.Negative(),
			Whole:    whole,
			Fraction: fracOrds,
			Exact:    exact,
		}
		if spellable {
			if r.Text, err = y.TextDigits(a, frac); err != nil {
				return fmt.Errorf("constant %q: %w", c.Name, err)
			}
		}
		results[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
