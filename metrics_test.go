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

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("test metrics", t, func() {
		reg := prometheus.NewRegistry()
		m := NewMetrics(reg, "test")
		c, err := New(WithInitialCount(0), WithMetrics(m))
		So(err, ShouldBeNil)

		Convey("transitions and underflows are counted", func() {
			c.Increment()
			c.Increment()
			So(c.Decrement(), ShouldBeNil)
			So(c.Decrement(), ShouldBeNil)
			So(c.Decrement(), ShouldNotBeNil)

			So(testutil.ToFloat64(m.acquires), ShouldEqual, 1)
			So(testutil.ToFloat64(m.releases), ShouldEqual, 1)
			So(testutil.ToFloat64(m.underflows), ShouldEqual, 1)
			So(testutil.ToFloat64(m.current), ShouldEqual, 0)
		})

		Convey("gauge tracks the live count", func() {
			c.Increment()
			So(c.IncrementIfNonzero(), ShouldBeTrue)
			So(testutil.ToFloat64(m.current), ShouldEqual, 2)
		})

		Convey("gauge reflects the initial count", func() {
			reg2 := prometheus.NewRegistry()
			m2 := NewMetrics(reg2, "seeded")
			_, err := New(WithInitialCount(7), WithMetrics(m2))
			So(err, ShouldBeNil)
			So(testutil.ToFloat64(m2.current), ShouldEqual, 7)
		})
	})
}
