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

import "encoding/binary"

// Kernels implemented in f32x2_amd64.s. Vectors cross the call boundary as a
// single uint64 stack word, loaded into the low half of an XMM register.
// Every kernel performs one IEEE operation per lane, in lane order, with no
// fused multiply-add, so results match the generic Go code bit for bit.

func (v Float32x2) arg() uint64 { return binary.LittleEndian.Uint64(v[:]) }

func fromArg(bits uint64) Float32x2 {
	var v Float32x2
	binary.LittleEndian.PutUint64(v[:], bits)
	return v
}

//go:noescape
func add_f32x2(a, b uint64) uint64

//go:noescape
func sub_f32x2(a, b uint64) uint64

//go:noescape
func mul_f32x2(a, b uint64) uint64

//go:noescape
func div_f32x2(a, b uint64) uint64

//go:noescape
func dot_f32x2(a, b uint64) float32

//go:noescape
func length_f32x2(a uint64) float32

//go:noescape
func normalize_f32x2(a uint64) uint64
