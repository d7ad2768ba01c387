// Copyright 2023 Linkall Inc.
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

package refcount

import "github.com/prometheus/client_golang/prometheus"

const namespace = "refcount"

// Metrics is a bundle of Prometheus collectors tracking one Counter. Attach
// it with WithMetrics; a Counter without it records nothing.
type Metrics struct {
	acquires   prometheus.Counter
	releases   prometheus.Counter
	underflows prometheus.Counter
	current    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. The name
// label distinguishes counters when several are registered against the same
// registerer.
func NewMetrics(reg prometheus.Registerer, name string) *Metrics {
	labels := prometheus.Labels{"name": name}
	m := &Metrics{
		acquires: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "acquires_total",
			Help:        "The number of zero to positive transitions.",
			ConstLabels: labels,
		}),
		releases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "releases_total",
			Help:        "The number of positive to zero transitions.",
			ConstLabels: labels,
		}),
		underflows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "underflows_total",
			Help:        "The number of decrements rejected on a zero counter.",
			ConstLabels: labels,
		}),
		current: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "current",
			Help:        "The current reference count.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(m.acquires, m.releases, m.underflows, m.current)
	return m
}
