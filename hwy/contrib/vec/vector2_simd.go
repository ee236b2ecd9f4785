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

//go:build !noasm && (amd64 || arm64)

package vec

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/ajroetker/go-mathfu/hwy/asm"
)

// Vector2 is a 2-component float32 vector held in a 64-bit SIMD register
// value. Lane 0 is x and lane 1 is y; the struct is exactly those 8 bytes
// with float32 alignment, so a []Vector2 is also a flat []float32.
//
// The zero value is (0, 0).
type Vector2 struct {
	_   [0]float32 // float32 alignment for the byte-array register
	reg asm.Float32x2
}

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float32) Vector2 {
	return Vector2{reg: asm.NewFloat32x2(x, y)}
}

// SplatVector2 returns the vector (s, s).
func SplatVector2(s float32) Vector2 {
	return Vector2{reg: asm.BroadcastFloat32x2(s)}
}

// LoadVector2 copies s[0] and s[1] into a new vector.
// s must hold at least 2 elements. The result does not alias s.
func LoadVector2(s []float32) Vector2 {
	return Vector2{reg: asm.LoadFloat32x2(s)}
}

// fromReg wraps a kernel result.
func fromReg(r asm.Float32x2) Vector2 {
	return Vector2{reg: r}
}

// ===== Element access =====
//
// The lane pointers alias the register bytes; see asm.Float32x2.Lanes.

// X returns the first component.
func (v Vector2) X() float32 { return v.reg.Lanes()[0] }

// Y returns the second component.
func (v Vector2) Y() float32 { return v.reg.Lanes()[1] }

// SetX sets the first component.
func (v *Vector2) SetX(x float32) { v.reg.Lanes()[0] = x }

// SetY sets the second component.
func (v *Vector2) SetY(y float32) { v.reg.Lanes()[1] = y }

// Get returns lane i, 0-based.
func (v Vector2) Get(i int) float32 {
	checkIndex("Get", i, 0, 1)
	return v.reg.Get(i)
}

// Set writes lane i, 0-based.
func (v *Vector2) Set(i int, val float32) {
	checkIndex("Set", i, 0, 1)
	v.reg.Set(i, val)
}

// Ref returns a pointer to lane i, 0-based. Writes through it mutate v.
func (v *Vector2) Ref(i int) *float32 {
	checkIndex("Ref", i, 0, 1)
	return &v.reg.Lanes()[i]
}

// Elem returns component i, 1-based: Elem(1) is x, Elem(2) is y.
func (v Vector2) Elem(i int) float32 {
	checkIndex("Elem", i, 1, 2)
	return v.reg.Get(i - 1)
}

// SetElem writes component i, 1-based.
func (v *Vector2) SetElem(i int, val float32) {
	checkIndex("SetElem", i, 1, 2)
	v.reg.Set(i-1, val)
}

// ElemRef returns a pointer to component i, 1-based.
func (v *Vector2) ElemRef(i int) *float32 {
	checkIndex("ElemRef", i, 1, 2)
	return &v.reg.Lanes()[i-1]
}

// Array returns a copy of both lanes.
func (v Vector2) Array() [2]float32 { return *v.reg.Lanes() }

// ===== Arithmetic =====

// Neg returns 0 - v.
func (v Vector2) Neg() Vector2 { return fromReg(v.reg.Neg()) }

// Add performs element-wise addition.
func (v Vector2) Add(o Vector2) Vector2 { return fromReg(v.reg.Add(o.reg)) }

// Sub performs element-wise subtraction.
func (v Vector2) Sub(o Vector2) Vector2 { return fromReg(v.reg.Sub(o.reg)) }

// Mul performs element-wise multiplication.
func (v Vector2) Mul(o Vector2) Vector2 { return fromReg(v.reg.Mul(o.reg)) }

// Div performs element-wise division.
func (v Vector2) Div(o Vector2) Vector2 { return fromReg(v.reg.Div(o.reg)) }

// AddScalar adds s to every lane.
func (v Vector2) AddScalar(s float32) Vector2 {
	return fromReg(v.reg.Add(asm.BroadcastFloat32x2(s)))
}

// SubScalar subtracts s from every lane.
func (v Vector2) SubScalar(s float32) Vector2 {
	return fromReg(v.reg.Sub(asm.BroadcastFloat32x2(s)))
}

// MulScalar multiplies every lane by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return fromReg(v.reg.Mul(asm.BroadcastFloat32x2(s)))
}

// DivScalar multiplies v by 1/s. The reciprocal is computed once, so the
// result may differ from a per-lane divide in the last bit.
func (v Vector2) DivScalar(s float32) Vector2 {
	return fromReg(v.reg.Mul(asm.BroadcastFloat32x2(1 / s)))
}

// AddAssign sets v to v.Add(o) and returns v.
func (v *Vector2) AddAssign(o Vector2) *Vector2 {
	v.reg = v.reg.Add(o.reg)
	return v
}

// SubAssign sets v to v.Sub(o) and returns v.
func (v *Vector2) SubAssign(o Vector2) *Vector2 {
	v.reg = v.reg.Sub(o.reg)
	return v
}

// MulAssign sets v to v.Mul(o) and returns v.
func (v *Vector2) MulAssign(o Vector2) *Vector2 {
	v.reg = v.reg.Mul(o.reg)
	return v
}

// DivAssign sets v to v.Div(o) and returns v.
func (v *Vector2) DivAssign(o Vector2) *Vector2 {
	v.reg = v.reg.Div(o.reg)
	return v
}

// AddScalarAssign sets v to v.AddScalar(s) and returns v.
func (v *Vector2) AddScalarAssign(s float32) *Vector2 {
	v.reg = v.reg.Add(asm.BroadcastFloat32x2(s))
	return v
}

// SubScalarAssign sets v to v.SubScalar(s) and returns v.
func (v *Vector2) SubScalarAssign(s float32) *Vector2 {
	v.reg = v.reg.Sub(asm.BroadcastFloat32x2(s))
	return v
}

// MulScalarAssign sets v to v.MulScalar(s) and returns v.
func (v *Vector2) MulScalarAssign(s float32) *Vector2 {
	v.reg = v.reg.Mul(asm.BroadcastFloat32x2(s))
	return v
}

// DivScalarAssign sets v to v.DivScalar(s) and returns v.
func (v *Vector2) DivScalarAssign(s float32) *Vector2 {
	v.reg = v.reg.Mul(asm.BroadcastFloat32x2(1 / s))
	return v
}

// ===== Geometry =====

// LengthSquared returns x*x + y*y.
func (v Vector2) LengthSquared() float32 { return v.reg.Dot(v.reg) }

// Length returns the Euclidean length of v using the fused length kernel.
func (v Vector2) Length() float32 { return v.reg.Length() }

// Normalize scales v to unit length and returns the length it had before.
// A zero vector is not checked for and becomes NaN.
func (v *Vector2) Normalize() float32 {
	length := v.reg.Length()
	v.reg = v.reg.Mul(asm.BroadcastFloat32x2(1 / length))
	return length
}

// Normalized returns v scaled to unit length using the normalize kernel.
func (v Vector2) Normalized() Vector2 { return fromReg(v.reg.Normalize()) }

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float32 { return v.reg.Dot(o.reg) }

// Hadamard returns the element-wise product of v and o.
func (v Vector2) Hadamard(o Vector2) Vector2 { return fromReg(v.reg.Mul(o.reg)) }

// Lerp returns v*(1-percent) + o*percent. percent is broadcast once and
// 1-percent computed once, then both lanes are combined in two multiplies
// and one add.
func (v Vector2) Lerp(o Vector2, percent float32) Vector2 {
	p := asm.BroadcastFloat32x2(percent)
	omp := asm.BroadcastFloat32x2(1).Sub(p)
	return fromReg(omp.Mul(v.reg).Add(p.Mul(o.reg)))
}

// Min returns the lane-wise minimum. When a lane compares unordered (NaN)
// the lane from v is kept.
func (v Vector2) Min(o Vector2) Vector2 {
	a, b := v.reg.Lanes(), o.reg.Lanes()
	return NewVector2(lesser(a[0], b[0]), lesser(a[1], b[1]))
}

// Max returns the lane-wise maximum. When a lane compares unordered (NaN)
// the lane from v is kept.
func (v Vector2) Max(o Vector2) Vector2 {
	a, b := v.reg.Lanes(), o.reg.Lanes()
	return NewVector2(greater(a[0], b[0]), greater(a[1], b[1]))
}

// ===== Comparison =====

// Equal reports whether both lanes compare equal.
func (v Vector2) Equal(o Vector2) bool {
	a, b := v.reg.Lanes(), o.reg.Lanes()
	return a[0] == b[0] && a[1] == b[1]
}

// Near reports whether each lane differs from o by at most tolerance.
func (v Vector2) Near(o Vector2, tolerance float32) bool {
	diff := v.reg.Sub(o.reg)
	d := diff.Lanes()
	return math32.Abs(d[0]) <= tolerance && math32.Abs(d[1]) <= tolerance
}

// String formats v as "(x, y)".
func (v Vector2) String() string {
	a := v.reg.Lanes()
	return fmt.Sprintf("(%g, %g)", a[0], a[1])
}
