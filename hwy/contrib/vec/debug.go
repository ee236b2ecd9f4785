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

import "fmt"

// checkIndex panics when i is outside [lo, hi]. It compiles to nothing
// unless the vecdebug build tag is set.
func checkIndex(op string, i, lo, hi int) {
	if debugChecks && (i < lo || i > hi) {
		panic(fmt.Sprintf("vec: %s index %d out of range [%d, %d]", op, i, lo, hi))
	}
}
