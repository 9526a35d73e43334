// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package stub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sheetstub_requests_total",
		Help: "Requests handled, labelled by wire action and outcome.",
	}, []string{"action", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sheetstub_request_duration_seconds",
		Help:    "Request handling time by wire action.",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})
)
