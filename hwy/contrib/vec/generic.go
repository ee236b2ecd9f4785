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
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/ajroetker/go-mathfu/hwy"
)

// Vec2 is the generic 2-component vector, implemented with per-lane Go
// code. It is always correct and is used for every scalar type without a
// SIMD fast path; in generic builds Vector2 is an alias of Vec2[float32].
//
// Products that feed a sum are converted to T before adding so the compiler
// never fuses them into a multiply-add. This keeps the rounding identical to
// the assembly kernels.
type Vec2[T hwy.Floats] struct {
	data [2]T
}

// NewVec2 returns the vector (x, y).
func NewVec2[T hwy.Floats](x, y T) Vec2[T] {
	return Vec2[T]{data: [2]T{x, y}}
}

// SplatVec2 returns the vector (s, s).
func SplatVec2[T hwy.Floats](s T) Vec2[T] {
	return Vec2[T]{data: [2]T{s, s}}
}

// LoadVec2 copies s[0] and s[1] into a new vector.
// s must hold at least 2 elements. The result does not alias s.
func LoadVec2[T hwy.Floats](s []T) Vec2[T] {
	return Vec2[T]{data: [2]T{s[0], s[1]}}
}

// DotProductOf returns the scalar dot product of v1 and v2.
func DotProductOf[T hwy.Floats](v1, v2 Vec2[T]) T {
	return v1.Dot(v2)
}

// HadamardProductOf returns the element-wise product of v1 and v2.
func HadamardProductOf[T hwy.Floats](v1, v2 Vec2[T]) Vec2[T] {
	return v1.Hadamard(v2)
}

// LerpOf returns v1*(1-percent) + v2*percent without clamping percent.
func LerpOf[T hwy.Floats](v1, v2 Vec2[T], percent T) Vec2[T] {
	return v1.Lerp(v2, percent)
}

// ===== Element access =====

// X returns lane 0.
func (v Vec2[T]) X() T { return v.data[0] }

// Y returns lane 1.
func (v Vec2[T]) Y() T { return v.data[1] }

// SetX writes lane 0.
func (v *Vec2[T]) SetX(x T) { v.data[0] = x }

// SetY writes lane 1.
func (v *Vec2[T]) SetY(y T) { v.data[1] = y }

// Get returns lane i, 0-based.
func (v Vec2[T]) Get(i int) T {
	checkIndex("Get", i, 0, 1)
	return v.data[i]
}

// Set writes lane i, 0-based.
func (v *Vec2[T]) Set(i int, val T) {
	checkIndex("Set", i, 0, 1)
	v.data[i] = val
}

// Ref returns a pointer to lane i, 0-based. Writes through it mutate v.
func (v *Vec2[T]) Ref(i int) *T {
	checkIndex("Ref", i, 0, 1)
	return &v.data[i]
}

// Elem returns component i, 1-based: Elem(1) is x, Elem(2) is y.
func (v Vec2[T]) Elem(i int) T {
	checkIndex("Elem", i, 1, 2)
	return v.data[i-1]
}

// SetElem writes component i, 1-based.
func (v *Vec2[T]) SetElem(i int, val T) {
	checkIndex("SetElem", i, 1, 2)
	v.data[i-1] = val
}

// ElemRef returns a pointer to component i, 1-based.
func (v *Vec2[T]) ElemRef(i int) *T {
	checkIndex("ElemRef", i, 1, 2)
	return &v.data[i-1]
}

// Array returns a copy of both lanes.
func (v Vec2[T]) Array() [2]T { return v.data }

// ===== Arithmetic =====

// Neg returns 0 - v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{data: [2]T{0 - v.data[0], 0 - v.data[1]}}
}

// Add performs element-wise addition.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{data: [2]T{v.data[0] + o.data[0], v.data[1] + o.data[1]}}
}

// Sub performs element-wise subtraction.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{data: [2]T{v.data[0] - o.data[0], v.data[1] - o.data[1]}}
}

// Mul performs element-wise multiplication.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{data: [2]T{v.data[0] * o.data[0], v.data[1] * o.data[1]}}
}

// Div performs element-wise division.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	return Vec2[T]{data: [2]T{v.data[0] / o.data[0], v.data[1] / o.data[1]}}
}

// AddScalar adds s to every lane.
func (v Vec2[T]) AddScalar(s T) Vec2[T] { return v.Add(SplatVec2(s)) }

// SubScalar subtracts s from every lane.
func (v Vec2[T]) SubScalar(s T) Vec2[T] { return v.Sub(SplatVec2(s)) }

// MulScalar multiplies every lane by s.
func (v Vec2[T]) MulScalar(s T) Vec2[T] { return v.Mul(SplatVec2(s)) }

// DivScalar multiplies v by 1/s. The reciprocal is computed once, so the
// result may differ from a per-lane divide in the last bit.
func (v Vec2[T]) DivScalar(s T) Vec2[T] { return v.Mul(SplatVec2(1 / s)) }

// AddAssign sets v to v.Add(o) and returns v.
func (v *Vec2[T]) AddAssign(o Vec2[T]) *Vec2[T] {
	*v = v.Add(o)
	return v
}

// SubAssign sets v to v.Sub(o) and returns v.
func (v *Vec2[T]) SubAssign(o Vec2[T]) *Vec2[T] {
	*v = v.Sub(o)
	return v
}

// MulAssign sets v to v.Mul(o) and returns v.
func (v *Vec2[T]) MulAssign(o Vec2[T]) *Vec2[T] {
	*v = v.Mul(o)
	return v
}

// DivAssign sets v to v.Div(o) and returns v.
func (v *Vec2[T]) DivAssign(o Vec2[T]) *Vec2[T] {
	*v = v.Div(o)
	return v
}

// AddScalarAssign sets v to v.AddScalar(s) and returns v.
func (v *Vec2[T]) AddScalarAssign(s T) *Vec2[T] {
	*v = v.AddScalar(s)
	return v
}

// SubScalarAssign sets v to v.SubScalar(s) and returns v.
func (v *Vec2[T]) SubScalarAssign(s T) *Vec2[T] {
	*v = v.SubScalar(s)
	return v
}

// MulScalarAssign sets v to v.MulScalar(s) and returns v.
func (v *Vec2[T]) MulScalarAssign(s T) *Vec2[T] {
	*v = v.MulScalar(s)
	return v
}

// DivScalarAssign sets v to v.DivScalar(s) and returns v.
func (v *Vec2[T]) DivScalarAssign(s T) *Vec2[T] {
	*v = v.DivScalar(s)
	return v
}

// ===== Geometry =====

// LengthSquared returns x*x + y*y.
func (v Vec2[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vec2[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Normalize scales v to unit length and returns the length it had before.
// A zero vector is not checked for and becomes NaN.
func (v *Vec2[T]) Normalize() T {
	length := v.Length()
	*v = v.MulScalar(1 / length)
	return length
}

// Normalized returns v scaled to unit length.
func (v Vec2[T]) Normalized() Vec2[T] {
	return v.MulScalar(1 / v.Length())
}

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return T(v.data[0]*o.data[0]) + T(v.data[1]*o.data[1])
}

// Hadamard returns the element-wise product of v and o.
func (v Vec2[T]) Hadamard(o Vec2[T]) Vec2[T] {
	return v.Mul(o)
}

// Lerp returns v*(1-percent) + o*percent, computing 1-percent once.
func (v Vec2[T]) Lerp(o Vec2[T], percent T) Vec2[T] {
	omp := 1 - percent
	return Vec2[T]{data: [2]T{
		T(omp*v.data[0]) + T(percent*o.data[0]),
		T(omp*v.data[1]) + T(percent*o.data[1]),
	}}
}

// Min returns the lane-wise minimum. When a lane compares unordered (NaN)
// the lane from v is kept.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	return Vec2[T]{data: [2]T{lesser(v.data[0], o.data[0]), lesser(v.data[1], o.data[1])}}
}

// Max returns the lane-wise maximum. When a lane compares unordered (NaN)
// the lane from v is kept.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	return Vec2[T]{data: [2]T{greater(v.data[0], o.data[0]), greater(v.data[1], o.data[1])}}
}

// ===== Comparison =====

// Equal reports whether both lanes compare equal.
func (v Vec2[T]) Equal(o Vec2[T]) bool {
	return v.data[0] == o.data[0] && v.data[1] == o.data[1]
}

// Near reports whether each lane differs from o by at most tolerance.
func (v Vec2[T]) Near(o Vec2[T], tolerance T) bool {
	return abs(v.data[0]-o.data[0]) <= tolerance && abs(v.data[1]-o.data[1]) <= tolerance
}

// String formats v as "(x, y)".
func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%g, %g)", v.data[0], v.data[1])
}

// ===== Scalar helpers =====

func sqrt[T hwy.Floats](x T) T {
	switch f := any(x).(type) {
	case float32:
		return T(math32.Sqrt(f))
	case float64:
		return T(math.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

func abs[T hwy.Floats](x T) T {
	switch f := any(x).(type) {
	case float32:
		return T(math32.Abs(f))
	case float64:
		return T(math.Abs(f))
	}
	return T(math.Abs(float64(x)))
}

func lesser[T hwy.Floats](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func greater[T hwy.Floats](a, b T) T {
	if b > a {
		return b
	}
	return a
}
