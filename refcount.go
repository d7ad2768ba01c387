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

// Package refcount provides a thread-safe reference counter with optional
// callbacks on the zero boundary: an acquire callback runs exactly once each
// time the count leaves 0, and a release callback runs exactly once each time
// it returns to 0. Changes that do not cross the zero boundary, such as 1→2
// or 2→1, trigger neither.
package refcount

import (
	"math"
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Counter is a reference counter safe for concurrent use by multiple
// goroutines. The count never goes negative: decrementing a zero counter
// fails with ErrUnderflow and leaves the count untouched.
//
// Callbacks run synchronously on the calling goroutine, inside the Counter's
// critical section, strictly after the count change is committed and before
// the triggering operation returns. Calling back into the same Counter from
// within a callback is not supported and will deadlock.
type Counter struct {
	mu    sync.Mutex
	count atomic.Int64

	acquire func()
	release func()

	logger  logrus.FieldLogger
	metrics *Metrics
}

// New creates a Counter. The count starts at 1 unless WithInitialCount says
// otherwise. Construction is not a transition: no callback fires for the
// initial value, whatever it is. A negative initial count fails with
// ErrInvalidInitialCount.
func New(opts ...Option) (*Counter, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(o)
	}
	if o.initial < 0 {
		return nil, ErrInvalidInitialCount
	}

	c := &Counter{
		acquire: o.acquire,
		release: o.release,
		logger:  o.logger,
		metrics: o.metrics,
	}
	c.count.Store(o.initial)
	if c.metrics != nil {
		c.metrics.current.Set(float64(o.initial))
	}
	return c, nil
}

// Increment adds one reference unconditionally and returns the previous
// count. If the previous count was 0, the acquire callback runs before
// Increment returns. Incrementing a counter at math.MaxInt64 panics with
// ErrOverflow rather than wrapping.
func (c *Counter) Increment() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.count.Load()
	if prev == math.MaxInt64 {
		panic(ErrOverflow)
	}
	c.count.Store(prev + 1)

	if c.metrics != nil {
		c.metrics.current.Inc()
	}
	if prev == 0 {
		c.onAcquire()
	}
	return prev
}

// IncrementIfNonzero adds one reference only if the count is currently
// nonzero, and reports whether it did. It never fires the acquire callback:
// a zero counter stays at zero. This is the safe way to take a reference
// when the caller cannot prove the underlying resource is still live.
func (c *Counter) IncrementIfNonzero() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.count.Load()
	if prev == 0 {
		return false
	}
	if prev == math.MaxInt64 {
		panic(ErrOverflow)
	}
	c.count.Store(prev + 1)

	if c.metrics != nil {
		c.metrics.current.Inc()
	}
	return true
}

// Decrement drops one reference. If the count is already 0 it fails with
// ErrUnderflow and mutates nothing. If the count reaches 0 as a result of
// this call, the release callback runs before Decrement returns.
func (c *Counter) Decrement() error {
	_, err := c.decrement()
	return err
}

// DecrementAndTest behaves exactly like Decrement, and additionally reports
// whether this call took the count to exactly 0, for callers that branch on
// "was this the last reference".
func (c *Counter) DecrementAndTest() (bool, error) {
	return c.decrement()
}

func (c *Counter) decrement() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.count.Load()
	if prev == 0 {
		if c.metrics != nil {
			c.metrics.underflows.Inc()
		}
		if c.logger != nil {
			c.logger.Debug("refcount: decrement of zero counter")
		}
		return false, ErrUnderflow
	}
	c.count.Store(prev - 1)

	if c.metrics != nil {
		c.metrics.current.Dec()
	}
	if prev == 1 {
		c.onRelease()
		return true, nil
	}
	return false, nil
}

// Count returns a point-in-time snapshot of the reference count. It never
// blocks and has no side effects.
func (c *Counter) Count() int64 {
	return c.count.Load()
}

// onAcquire and onRelease run with c.mu held, after the count change is
// committed. A panic from a user callback propagates to the caller of the
// triggering operation; the deferred unlock keeps the Counter usable and the
// committed count stands.

func (c *Counter) onAcquire() {
	if c.metrics != nil {
		c.metrics.acquires.Inc()
	}
	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"count": c.count.Load(),
		}).Debug("refcount: acquired")
	}
	if c.acquire != nil {
		c.acquire()
	}
}

func (c *Counter) onRelease() {
	if c.metrics != nil {
		c.metrics.releases.Inc()
	}
	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"count": c.count.Load(),
		}).Debug("refcount: released")
	}
	if c.release != nil {
		c.release()
	}
}
