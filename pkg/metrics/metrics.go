// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-pqsig.
//
// go-pqsig is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package metrics provides Prometheus instrumentation for go-pqsig
// operations: counters and latency histograms for key lifecycle and
// signing operations, plus keystore size gauges.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all go-pqsig metrics
	Namespace = "pqsig"

	// Label names
	LabelOperation = "operation"
	LabelAlgorithm = "algorithm"
	LabelStatus    = "status"
	LabelErrorType = "error_type"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"

	// Operation names
	OpGenerate = "generate"
	OpSign     = "sign"
	OpVerify   = "verify"
	OpEncode   = "encode"
	OpDecode   = "decode"
	OpStore    = "store"
	OpGet      = "get"
	OpDelete   = "delete"
	OpList     = "list"
	OpRotate   = "rotate"
)

var (
	// OperationsTotal tracks the total number of operations by type, algorithm, and status.
	// Use RecordOperation to increment this counter with the appropriate labels.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of operations by type, algorithm, and status",
		},
		[]string{LabelOperation, LabelAlgorithm, LabelStatus},
	)

	// OperationDuration tracks the duration of operations in seconds.
	// Buckets are sized for post-quantum keygen and signing latencies.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of operations in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{LabelOperation, LabelAlgorithm},
	)

	// ErrorsTotal tracks the total number of errors by operation, algorithm, and error type.
	// Error types should be specific (e.g., "not_found", "malformed_key", "size_mismatch").
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "errors_total",
			Help:      "Total number of errors by operation, algorithm, and error type",
		},
		[]string{LabelOperation, LabelAlgorithm, LabelErrorType},
	)

	// KeysTotal tracks the number of keys held in the keystore per algorithm.
	KeysTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "keys_total",
			Help:      "Number of keys held in the keystore per algorithm",
		},
		[]string{LabelAlgorithm},
	)

	// enabled tracks whether metrics collection is enabled
	enabled atomic.Bool
)

func init() {
	// Metrics are enabled by default
	enabled.Store(true)
}

// Enable turns metrics collection on or off at runtime.
func Enable(on bool) {
	enabled.Store(on)
}

// RecordOperation records an operation with its duration and status.
// This is the primary function for tracking operational metrics.
//
// Parameters:
//   - operation: The operation name (use Op* constants)
//   - algorithm: The signature algorithm identifier
//   - status: The operation status (use Status* constants)
//   - duration: The operation duration in seconds
func RecordOperation(operation, algorithm, status string, duration float64) {
	if !enabled.Load() {
		return
	}
	OperationsTotal.WithLabelValues(operation, algorithm, status).Inc()
	OperationDuration.WithLabelValues(operation, algorithm).Observe(duration)
}

// RecordError records an error event with context about where it occurred.
//
// Parameters:
//   - operation: The operation during which the error occurred (use Op* constants)
//   - algorithm: The signature algorithm identifier
//   - errorType: A specific error type identifier (e.g., "not_found", "malformed_key")
func RecordError(operation, algorithm, errorType string) {
	if !enabled.Load() {
		return
	}
	ErrorsTotal.WithLabelValues(operation, algorithm, errorType).Inc()
}

// SetKeysTotal sets the number of stored keys for an algorithm.
func SetKeysTotal(algorithm string, count float64) {
	if !enabled.Load() {
		return
	}
	KeysTotal.WithLabelValues(algorithm).Set(count)
}
