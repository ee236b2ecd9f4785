// Copyright 2025 go-mathfu Authors
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

// Package vec provides fixed-size 2-component vectors for graphics and
// simulation code.
//
// Vector2 is the float32 vector. Its implementation is chosen when the
// module is built, never at runtime:
//
//   - amd64 and arm64 without the noasm tag: Vector2 wraps an
//     asm.Float32x2 register value and every arithmetic operation runs one
//     SSE2 or NEON kernel.
//   - every other build (or with -tags noasm): Vector2 is an alias of the
//     generic Vec2[float32], implemented with per-lane Go code.
//
// Both forms have the same methods, the same results (the kernels perform
// the same IEEE operations in the same order as the Go code) and the same
// memory layout: exactly two contiguous float32 values, x then y. Call
// sites never change between builds. Implementation reports which form
// was compiled.
//
// Preconditions are not validated on the arithmetic path. Out-of-range lane
// indices panic through Go's bounds checks; dividing by zero or normalizing
// a zero vector produces IEEE infinities or NaNs. Building with the vecdebug
// tag adds descriptive index assertions.
//
// Example:
//
//	v := vec.NewVector2(3, 4)
//	n := v.Normalized()            // (0.6, 0.8)
//	d := vec.DotProduct(v, n)      // 5
//	m := vec.Lerp(v, vec.Vector2{}, 0.5)
package vec
