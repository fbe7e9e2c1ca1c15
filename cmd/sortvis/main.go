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

// Command sortvis times, traces, animates and streams the sortvis
// algorithms.
//
// Usage:
//
//	sortvis bench --sizes 100,1000,10000 --samples 5 --out output.svg
//	sortvis play --size 64
//	sortvis trace bubble 5 1 4 2 8
//	sortvis serve --addr :8080
//
// Every subcommand reads its defaults from the YAML file named by --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
