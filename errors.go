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

import "github.com/pkg/errors"

var (
	// ErrUnderflow is returned by Decrement and DecrementAndTest when the
	// count is already 0. The count is left untouched.
	ErrUnderflow = errors.New("refcount: underflow")

	// ErrInvalidInitialCount is returned by New when a negative initial
	// count is supplied.
	ErrInvalidInitialCount = errors.New("refcount: negative initial count")

	// ErrOverflow is the panic value when an increment would exceed
	// math.MaxInt64.
	ErrOverflow = errors.New("refcount: overflow")
)
