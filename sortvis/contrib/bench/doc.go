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

// Package bench times every sorting algorithm over growing random inputs.
//
// For each configured size, Samples random data sets are generated from
// deterministic seeds. Every algorithm sorts its own copy of every data set
// through TimeSort, and the (data set, algorithm) jobs are spread over a
// worker pool. Results are gathered per algorithm name into a sharded
// concurrent map, ready to be plotted:
//
//	h := bench.NewHarness(bench.DefaultConfig(), bench.WithLogger(logger))
//	res, err := h.Run(ctx)
//	for _, name := range res.Algorithms() {
//	    fmt.Println(name, res.Points(name))
//	}
package bench
