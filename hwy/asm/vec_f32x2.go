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

package asm

import "unsafe"

// Float32x2 represents a 64-bit SIMD vector of 2 float32 values.
// Lane 0 occupies the low 4 bytes. Uses [8]byte backing so it is passed to
// the assembly kernels as a single 64-bit argument (see arg and fromArg).
type Float32x2 [8]byte

// ===== Float32x2 constructors =====

// BroadcastFloat32x2 creates a vector with all lanes set to the given value.
func BroadcastFloat32x2(v float32) Float32x2 {
	arr := [2]float32{v, v}
	return *(*Float32x2)(unsafe.Pointer(&arr))
}

// NewFloat32x2 creates a vector from two lane values.
func NewFloat32x2(lane0, lane1 float32) Float32x2 {
	arr := [2]float32{lane0, lane1}
	return *(*Float32x2)(unsafe.Pointer(&arr))
}

// LoadFloat32x2 loads 2 float32 values from a slice.
// The slice must hold at least 2 elements.
func LoadFloat32x2(s []float32) Float32x2 {
	return NewFloat32x2(s[0], s[1])
}

// ZeroFloat32x2 returns a zero vector.
func ZeroFloat32x2() Float32x2 {
	return Float32x2{}
}

// ===== Float32x2 accessors =====

// Lanes returns the vector as a pointer to [2]float32 for element access.
// The pointer aliases v: writes through it change the register contents.
func (v *Float32x2) Lanes() *[2]float32 {
	return (*[2]float32)(unsafe.Pointer(v))
}

// Get returns the element at the given index.
func (v Float32x2) Get(i int) float32 {
	return v.Lanes()[i]
}

// Set sets the element at the given index.
func (v *Float32x2) Set(i int, val float32) {
	v.Lanes()[i] = val
}

// ===== Float32x2 methods =====

// Add performs element-wise addition.
func (v Float32x2) Add(other Float32x2) Float32x2 {
	return fromArg(add_f32x2(v.arg(), other.arg()))
}

// Sub performs element-wise subtraction.
func (v Float32x2) Sub(other Float32x2) Float32x2 {
	return fromArg(sub_f32x2(v.arg(), other.arg()))
}

// Mul performs element-wise multiplication.
func (v Float32x2) Mul(other Float32x2) Float32x2 {
	return fromArg(mul_f32x2(v.arg(), other.arg()))
}

// Div performs element-wise division.
func (v Float32x2) Div(other Float32x2) Float32x2 {
	return fromArg(div_f32x2(v.arg(), other.arg()))
}

// Neg negates every lane by subtracting it from zero, so a zero lane
// becomes +0 rather than -0.
func (v Float32x2) Neg() Float32x2 {
	return ZeroFloat32x2().Sub(v)
}

// Dot returns the dot product of two vectors.
func (v Float32x2) Dot(other Float32x2) float32 {
	return dot_f32x2(v.arg(), other.arg())
}

// Length returns sqrt(v.Dot(v)) computed in a single kernel.
func (v Float32x2) Length() float32 {
	return length_f32x2(v.arg())
}

// Normalize returns v multiplied by the reciprocal of its length.
// A zero vector yields non-finite lanes.
func (v Float32x2) Normalize() Float32x2 {
	return fromArg(normalize_f32x2(v.arg()))
}
