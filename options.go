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

import "github.com/sirupsen/logrus"

// Option configures a Counter at construction time.
type Option func(*options)

type options struct {
	initial int64
	acquire func()
	release func()
	logger  logrus.FieldLogger
	metrics *Metrics
}

func defaultOptions() *options {
	return &options{
		initial: 1,
	}
}

// WithInitialCount sets the starting count, which defaults to 1. A counter
// constructed with initial count 0 fires the acquire callback on the first
// successful increment, as usual.
func WithInitialCount(n int64) Option {
	return func(o *options) {
		o.initial = n
	}
}

// WithAcquire sets the callback invoked exactly once each time the count
// transitions from 0 to positive.
func WithAcquire(fn func()) Option {
	return func(o *options) {
		o.acquire = fn
	}
}

// WithRelease sets the callback invoked exactly once each time the count
// transitions from positive back to 0.
func WithRelease(fn func()) Option {
	return func(o *options) {
		o.release = fn
	}
}

// WithLogger makes the Counter log transitions and underflows at debug
// level. Without it the Counter is silent.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics attaches a Metrics bundle, see NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
