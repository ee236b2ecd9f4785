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

//go:build !noasm

package asm

// Kernels implemented in f32x2_arm64.s. Vectors cross the call boundary as
// their raw 8 bytes, loaded into a D register.
// Every kernel performs one IEEE operation per lane, in lane order, with no
// fused multiply-add, so results match the generic Go code bit for bit.

func (v Float32x2) arg() [8]byte { return v }

func fromArg(b [8]byte) Float32x2 { return Float32x2(b) }

//go:noescape
func add_f32x2(a, b [8]byte) [8]byte

//go:noescape
func sub_f32x2(a, b [8]byte) [8]byte

//go:noescape
func mul_f32x2(a, b [8]byte) [8]byte

//go:noescape
func div_f32x2(a, b [8]byte) [8]byte

//go:noescape
func dot_f32x2(a, b [8]byte) float32

//go:noescape
func length_f32x2(a [8]byte) float32

//go:noescape
func normalize_f32x2(a [8]byte) [8]byte
