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

//go:build noasm || (!amd64 && !arm64)

package vec

const implementation = "generic"

// Vector2 is a 2-component float32 vector. In this build it is the generic
// Vec2[float32]; amd64 and arm64 builds without the noasm tag replace it
// with a register-backed type that has the same methods and layout.
type Vector2 = Vec2[float32]

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float32) Vector2 {
	return NewVec2(x, y)
}

// SplatVector2 returns the vector (s, s).
func SplatVector2(s float32) Vector2 {
	return SplatVec2(s)
}

// LoadVector2 copies s[0] and s[1] into a new vector.
// s must hold at least 2 elements. The result does not alias s.
func LoadVector2(s []float32) Vector2 {
	return LoadVec2(s)
}
