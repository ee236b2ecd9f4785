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

// Package asm holds the register types and assembly kernels behind the
// vector fast paths.
//
// Float32x2 models a 64-bit SIMD register carrying two float32 lanes: the
// low half of an XMM register on amd64 (SSE2) or a D register viewed as
// V.2S on arm64 (NEON). Its arithmetic methods call hand-written kernels in
// f32x2_amd64.s and f32x2_arm64.s. The kernels are only compiled on those
// architectures and only without the noasm build tag; in every other build
// this package contains no code and callers use their generic Go paths.
package asm
