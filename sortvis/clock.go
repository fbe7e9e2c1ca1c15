// Copyright 2025 go-sortvis Authors
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

package sortvis

import (
	"errors"
	"time"
)

// ErrClock reports a clock reading that cannot be turned into a duration,
// such as an interval that runs backwards. TimeSort never returns a made-up
// duration in that case.
var ErrClock = errors.New("sortvis: clock failure")

// Clock is the time source of TimeSort.
type Clock interface {
	Now() time.Time
}

// systemClock reads time.Now, which carries a monotonic reading.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
