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

// Package parallel converts and expands many independent numerals on a
// bounded pool of goroutines.
//
// Numerals are immutable, so the only coordination needed is the pool
// itself: every item writes its result to its own slot.
package parallel

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/capitalone/radix"
	"github.com/capitalone/radix/natural"
)

// ForEach calls fn(i) for every i in [0, n) using at most jobs goroutines.
// jobs <= 0 means GOMAXPROCS. Items not yet started when ctx is cancelled or
// an earlier item failed are skipped; the first error is returned.
func ForEach(ctx context.Context, n, jobs int, fn func(i int) error) error {
	if n == 0 {
		return ctx.Err()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))

	for i := range n {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(i)
		})
	}
	return g.Wait()
}

// ConvertAll returns xs converted to base, in order.
func ConvertAll[N natural.Natural[N]](ctx context.Context, xs []radix.Numeral[N], base N, jobs int) ([]radix.Numeral[N], error) {
	out := make([]radix.Numeral[N], len(xs))
	err := ForEach(ctx, len(xs), jobs, func(i int) error {
		y, err := xs[i].ToBase(base)
		if err != nil {
			return fmt.Errorf("numeral %d: %w", i, err)
		}
		out[i] = y
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExpandAll returns at most precision fractional digits of each of xs, in order.
func ExpandAll[N natural.Natural[N]](ctx context.Context, xs []radix.Numeral[N], precision, jobs int) ([][]N, error) {
	out := make([][]N, len(xs))
	err := ForEach(ctx, len(xs), jobs, func(i int) error {
		out[i] = xs[i].LossyFraction(precision)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
