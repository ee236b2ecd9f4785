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

//go:build amd64 && !noasm

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// SSE2 is part of the x86-64 baseline, so the kernels in hwy/asm can
	// always run. The check keeps the reported level honest on emulators
	// that hide the feature bit.
	if !cpu.X86.HasSSE2 {
		setScalarMode()
		return
	}
	currentLevel = DispatchSSE2
	currentWidth = 16
	currentName = "sse2"
}
