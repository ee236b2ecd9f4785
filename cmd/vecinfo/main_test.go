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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ajroetker/go-mathfu/hwy/contrib/vec"
)

func runVecinfo(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("vecinfo %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestVecinfoReportsBuild(t *testing.T) {
	out := runVecinfo(t)
	for _, want := range []string{
		"Vector2 implementation: " + vec.Implementation(),
		"Vector2 size: 8 bytes, align 4",
		"Dispatch level: ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVecinfoDemo(t *testing.T) {
	out := runVecinfo(t, "--demo", "--features")
	for _, want := range []string{
		"Length(3, 4) = 5",
		"Normalized(3, 4) = (0.6, 0.8)",
		"DotProduct((1, 2), (3, 4)) = 11",
		"HadamardProduct((1, 2), (3, 4)) = (3, 8)",
		"(1, 2) + (3, 4) = (4, 6)",
		"Lerp((1, 2), (3, 4), 0.5) = (2, 3)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q:\n%s", want, out)
		}
	}
}

func TestVecinfoRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for positional arguments")
	}
}
