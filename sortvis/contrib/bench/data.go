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

package bench

import "math/rand/v2"

// GenerateData returns n values in [1, maxValue) drawn from a generator
// seeded with seed. The same arguments always give the same data.
func GenerateData(seed int64, n int, maxValue int32) []int32 {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(n)))
	data := make([]int32, n)
	for i := range data {
		data[i] = 1 + rng.Int32N(maxValue-1)
	}
	return data
}
