// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package host

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Host build metrics
	buildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "componenthost_build_duration_seconds",
			Help:    "Duration of lazy component instantiation per host in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	instancesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "componenthost_instances_created_total",
			Help: "Total number of component instances created",
		},
		[]string{"component"},
	)

	buildFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "componenthost_build_failures_total",
			Help: "Total number of host builds aborted by a failing component",
		},
		[]string{"component"},
	)

	// Enablement resolution metrics
	resolutionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "componenthost_resolution_errors_total",
			Help: "Total number of settings read failures during enablement resolution",
		},
		[]string{"scope"},
	)
)
