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

package vec

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/viterin/vek/vek32"
)

// ErrOddLength is returned by Unflatten when a float buffer cannot be split
// into whole vectors.
var ErrOddLength = errors.New("vec: odd float count")

// Flatten returns vs viewed as 2*len(vs) floats, x0 y0 x1 y1 ... The result
// aliases vs: no copy is made, and writes through either view are visible
// in the other. This is the form render buffers are uploaded in.
func Flatten(vs []Vector2) []float32 {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&vs[0])), 2*len(vs))
}

// Unflatten returns fs viewed as len(fs)/2 vectors. The result aliases fs.
func Unflatten(fs []float32) ([]Vector2, error) {
	if len(fs)%2 != 0 {
		return nil, fmt.Errorf("unflatten %d floats: %w", len(fs), ErrOddLength)
	}
	if len(fs) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*Vector2)(unsafe.Pointer(&fs[0])), len(fs)/2), nil
}

// The bulk operations below run vek32 kernels over the flattened buffer.
// Each lane sees exactly one IEEE operation, so the results equal the
// per-vector methods. dst and src must have the same length; vek32 panics
// otherwise.

// ScaleAll multiplies every vector in vs by s in place.
func ScaleAll(vs []Vector2, s float32) {
	if len(vs) == 0 {
		return
	}
	vek32.MulNumber_Inplace(Flatten(vs), s)
}

// AddAll sets dst[i] = dst[i] + src[i].
func AddAll(dst, src []Vector2) {
	if len(dst) == 0 && len(src) == 0 {
		return
	}
	vek32.Add_Inplace(Flatten(dst), Flatten(src))
}

// SubAll sets dst[i] = dst[i] - src[i].
func SubAll(dst, src []Vector2) {
	if len(dst) == 0 && len(src) == 0 {
		return
	}
	vek32.Sub_Inplace(Flatten(dst), Flatten(src))
}

// HadamardAll sets dst[i] = dst[i] * src[i] lane-wise.
func HadamardAll(dst, src []Vector2) {
	if len(dst) == 0 && len(src) == 0 {
		return
	}
	vek32.Mul_Inplace(Flatten(dst), Flatten(src))
}

// SumAll returns the sum of vs, accumulated in order.
func SumAll(vs []Vector2) Vector2 {
	var sum Vector2
	for i := range vs {
		sum.AddAssign(vs[i])
	}
	return sum
}

// NormalizeAll normalizes every vector in place and returns the length each
// one had before, like Normalize. Zero vectors become NaN.
func NormalizeAll(vs []Vector2) []float32 {
	lengths := make([]float32, len(vs))
	for i := range vs {
		lengths[i] = vs[i].Normalize()
	}
	return lengths
}
