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

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion outcomes used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics provides observability for the conversion endpoint.
type Metrics struct {
	Conversions        *prometheus.CounterVec
	ConversionDuration prometheus.Histogram
	DigitsRendered     prometheus.Counter
}

// NewMetrics creates the conversion metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "radix_conversions_total",
			Help: "Total number of conversion requests by outcome",
		}, []string{"outcome"}),
		ConversionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "radix_conversion_duration_seconds",
			Help:    "Duration of conversion requests, including fractional expansion",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		DigitsRendered: factory.NewCounter(prometheus.CounterOpts{
			Name: "radix_fraction_digits_rendered_total",
			Help: "Total number of fractional digits produced",
		}),
	}
}

// ObserveConversion records one finished request.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveConversion(start time.Time, outcome string, digits int) {
	m.Conversions.WithLabelValues(outcome).Inc()
	m.ConversionDuration.Observe(time.Since(start).Seconds())
	if digits > 0 {
		m.DigitsRendered.Add(float64(digits))
	}
}
