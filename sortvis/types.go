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

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Number is a constraint for element types that can be drawn as bars.
type Number interface {
	Floats | SignedInts | UnsignedInts
}

// Entry is one position of a slice together with the value it holds.
type Entry[T any] struct {
	Index int
	Value T
}

// SwapEvent records one swap: the two positions that were exchanged and the
// values they hold right after the exchange.
type SwapEvent[T any] [2]Entry[T]

// Apply writes both entries of the event into dst. It is the O(1) update a
// consumer mirroring the sorted slice needs per event.
func (e SwapEvent[T]) Apply(dst []T) {
	dst[e[0].Index] = e[0].Value
	dst[e[1].Index] = e[1].Value
}

// Indices returns the two positions touched by the event.
func (e SwapEvent[T]) Indices() (int, int) {
	return e[0].Index, e[1].Index
}
