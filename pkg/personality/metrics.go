// Copyright (c) 2025, The mbti-quiz Authors.  All rights reserved.
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

package personality

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registryLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mbti_registry_lookups_total",
			Help: "Total number of personality type lookups by result",
		},
		[]string{"result"},
	)

	registryEnumerations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mbti_registry_enumerations_total",
			Help: "Total number of full catalog enumerations",
		},
	)

	registryLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mbti_registry_load_duration_seconds",
			Help:    "Duration of the one-time embedded catalog load in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1},
		},
	)
)
