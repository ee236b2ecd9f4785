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

import "github.com/ajroetker/go-mathfu/hwy"

// Vector is the value-receiver contract shared by every 2-component vector
// in this package: Vector2 in both of its builds, and Vec2[T]. V is the
// implementing type itself and T its scalar.
type Vector[V any, T hwy.Floats] interface {
	X() T
	Y() T
	Get(i int) T
	Elem(i int) T
	Array() [2]T

	Neg() V
	Add(o V) V
	Sub(o V) V
	Mul(o V) V
	Div(o V) V
	AddScalar(s T) V
	SubScalar(s T) V
	MulScalar(s T) V
	DivScalar(s T) V

	LengthSquared() T
	Length() T
	Normalized() V
	Dot(o V) T
	Hadamard(o V) V
	Lerp(o V, percent T) V
	Min(o V) V
	Max(o V) V

	Equal(o V) bool
	Near(o V, tolerance T) bool
	String() string
}

// MutableVector is the pointer-receiver half of the contract: lane writes,
// lane references and the compound assignments.
type MutableVector[V any, T hwy.Floats] interface {
	Vector[V, T]

	SetX(x T)
	SetY(y T)
	Set(i int, val T)
	SetElem(i int, val T)
	Ref(i int) *T
	ElemRef(i int) *T

	AddAssign(o V) *V
	SubAssign(o V) *V
	MulAssign(o V) *V
	DivAssign(o V) *V
	AddScalarAssign(s T) *V
	SubScalarAssign(s T) *V
	MulScalarAssign(s T) *V
	DivScalarAssign(s T) *V

	Normalize() T
}

var (
	_ Vector[Vector2, float32]              = Vector2{}
	_ MutableVector[Vector2, float32]       = (*Vector2)(nil)
	_ MutableVector[Vec2[float32], float32] = (*Vec2[float32])(nil)
	_ MutableVector[Vec2[float64], float64] = (*Vec2[float64])(nil)
)

// Implementation returns the name of the compiled Vector2 implementation:
// "sse2", "neon" or "generic".
func Implementation() string {
	return implementation
}

// DotProduct returns the scalar dot product of v1 and v2.
func DotProduct(v1, v2 Vector2) float32 {
	return v1.Dot(v2)
}

// HadamardProduct returns the element-wise product of v1 and v2.
// It is the same as v1.Mul(v2).
func HadamardProduct(v1, v2 Vector2) Vector2 {
	return v1.Hadamard(v2)
}

// Lerp returns v1*(1-percent) + v2*percent. percent is not clamped, so
// values outside [0, 1] extrapolate.
func Lerp(v1, v2 Vector2, percent float32) Vector2 {
	return v1.Lerp(v2, percent)
}

// Distance returns the length of v1 - v2.
func Distance(v1, v2 Vector2) float32 {
	return v1.Sub(v2).Length()
}

// Min returns the lane-wise minimum of v1 and v2.
func Min(v1, v2 Vector2) Vector2 {
	return v1.Min(v2)
}

// Max returns the lane-wise maximum of v1 and v2.
func Max(v1, v2 Vector2) Vector2 {
	return v1.Max(v2)
}
