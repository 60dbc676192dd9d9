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

// Package server exposes numeral conversion over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fortio.org/safecast"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/capitalone/radix"
	"github.com/capitalone/radix/digits"
	"github.com/capitalone/radix/natural"
)

// ConvertRequest is the body of POST /convert. From defaults to 10 and
// Precision to the handler's default.
type ConvertRequest struct {
	Value     string `json:"value"`
	From      int    `json:"from,omitempty"`
	To        int    `json:"to"`
	Precision *int   `json:"precision,omitempty"`
}

// ConvertResponse is the body of a successful conversion.
type ConvertResponse struct {
	Base     int      `json:"base"`
	Negative bool     `json:"negative"`
	Whole    []uint64 `json:"whole"`
	Fraction []uint64 `json:"fraction"`
	Exact    bool     `json:"exact"`
	Text     string   `json:"text,omitempty"`
}

// maxRequestBytes bounds the body of POST /convert.
const maxRequestBytes = 1 << 20

var errInvalidPrecision = errors.New("invalid precision")

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Handler serves conversion requests.
type Handler struct {
	logger           *slog.Logger
	metrics          *Metrics
	alphabet         digits.Alphabet
	defaultPrecision int
	maxPrecision     int
}

// New creates a conversion Handler.
func New(logger *slog.Logger, metrics *Metrics, alphabet digits.Alphabet, defaultPrecision, maxPrecision int) *Handler {
	return &Handler{
		logger:           logger,
		metrics:          metrics,
		alphabet:         alphabet,
		defaultPrecision: defaultPrecision,
		maxPrecision:     maxPrecision,
	}
}

// Register registers the conversion routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/convert", h.handleConvert)
	r.Get("/healthz", h.handleHealth)
}

// NewRouter builds the full router: conversion routes plus /metrics served
// from gatherer.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	h.Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	requestID := middleware.GetReqID(ctx)

	var req ConvertRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.WarnContext(ctx, "convert request too large",
				"request_id", requestID,
				"limit", tooLarge.Limit,
			)
			h.metrics.ObserveConversion(start, OutcomeRejected, 0)
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Code: "too_large", Message: fmt.Sprintf("request body exceeds %d bytes", maxRequestBytes)})
			return
		}
		h.logger.WarnContext(ctx, "invalid convert request",
			"request_id", requestID,
			"error", err.Error(),
		)
		h.reject(w, start, "bad_request", "invalid request body")
		return
	}

	resp, err := h.convert(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			h.logger.WarnContext(ctx, "conversion abandoned",
				"request_id", requestID,
				"error", err.Error(),
			)
			h.metrics.ObserveConversion(start, OutcomeFailed, 0)
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Code: "timeout", Message: "conversion timed out"})
			return
		}
		if !isClientError(err) {
			h.logger.ErrorContext(ctx, "conversion failed",
				"request_id", requestID,
				"error", err.Error(),
			)
			h.metrics.ObserveConversion(start, OutcomeFailed, 0)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Code: "internal", Message: "conversion failed"})
			return
		}
		h.logger.WarnContext(ctx, "conversion rejected",
			"request_id", requestID,
			"value", req.Value,
			"to", req.To,
			"error", err.Error(),
		)
		h.reject(w, start, "invalid_input", err.Error())
		return
	}

	h.logger.DebugContext(ctx, "converted",
		"request_id", requestID,
		"from", req.From,
		"to", req.To,
		"digits", len(resp.Fraction),
		"exact", resp.Exact,
	)
	h.metrics.ObserveConversion(start, OutcomeOK, len(resp.Fraction))
	writeJSON(w, http.StatusOK, resp)
}

// convert checks ctx between stages. A single expansion is bounded by
// maxPrecision rather than by ctx.
func (h *Handler) convert(ctx context.Context, req ConvertRequest) (*ConvertResponse, error) {
	precision := h.defaultPrecision
	if req.Precision != nil {
		precision = *req.Precision
	}
	if precision < 0 || precision > h.maxPrecision {
		return nil, fmt.Errorf("%w: must be between 0 and %d, got %d", errInvalidPrecision, h.maxPrecision, precision)
	}
	from := req.From
	if from == 0 {
		from = 10
	}

	x, err := h.parse(req.Value, from)
	if err != nil {
		return nil, err
	}
	to, err := safecast.Conv[uint64](req.To)
	if err != nil {
		return nil, fmt.Errorf("base %d: %w", req.To, radix.ErrInvalidBase)
	}
	y, err := x.ToBase(natural.NewBig(to))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frac, exact := y.LossyFractionExact(precision)
	whole, err := digits.Ordinals(y.WholePart())
	if err != nil {
		return nil, err
	}
	fracOrds, err := digits.Ordinals(frac)
	if err != nil {
		return nil, err
	}
	resp := &ConvertResponse{
		Base:     req.To,
		Negative: y.Negative(),
		Whole:    whole,
		Fraction: fracOrds,
		Exact:    exact,
	}
	if req.To <= h.alphabet.Radix() {
		if resp.Text, err = y.TextDigits(h.alphabet, frac); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (h *Handler) parse(value string, from int) (radix.Numeral[natural.Big], error) {
	if from < 2 {
		return radix.Numeral[natural.Big]{}, fmt.Errorf("base %d: %w", from, radix.ErrInvalidBase)
	}
	a, err := h.alphabet.Prefix(from)
	if err != nil {
		return radix.Numeral[natural.Big]{}, err
	}
	return radix.ParseRadix[natural.Big](value, a)
}

func (h *Handler) reject(w http.ResponseWriter, start time.Time, code, message string) {
	h.metrics.ObserveConversion(start, OutcomeRejected, 0)
	writeJSON(w, http.StatusBadRequest, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// isClientError reports whether err stems from the request rather than the server.
func isClientError(err error) bool {
	return errors.Is(err, errInvalidPrecision) ||
		errors.Is(err, radix.ErrInvalidBase) ||
		errors.Is(err, radix.ErrDigitOutOfRange) ||
		errors.Is(err, radix.ErrMalformedLiteral) ||
		errors.Is(err, digits.ErrAlphabetTooSmall)
}
