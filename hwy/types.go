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

// Package hwy reports which SIMD target the module was compiled for and holds
// the numeric constraints shared by the vector packages.
//
// Unlike runtime-dispatching SIMD libraries, the fast paths built on top of
// hwy are selected by build constraints: amd64 and arm64 builds use the
// hand-written kernels in hwy/asm unless the noasm tag is set, every other
// build uses the generic Go code. CurrentLevel reports the result of that
// choice together with what golang.org/x/sys/cpu detected.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-mathfu/hwy"
//
//	fmt.Println(hwy.CurrentName()) // "sse2", "neon" or "scalar"
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}
