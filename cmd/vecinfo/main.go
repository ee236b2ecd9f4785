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

// Package main provides a diagnostic tool that reports which Vector2
// implementation this build selected and what the CPU supports.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"unsafe"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-mathfu/hwy"
	"github.com/ajroetker/go-mathfu/hwy/contrib/vec"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var showFeatures, runDemo bool

	cmd := &cobra.Command{
		Use:   "vecinfo",
		Short: "Report the Vector2 implementation compiled into this build",
		Long: `vecinfo prints the SIMD target the vector fast path was compiled for
(sse2, neon, or generic with -tags noasm), the memory layout of Vector2 and
the acceleration available to the bulk slice operations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			printBuild(w)
			if showFeatures {
				fmt.Fprintln(w)
				printFeatures(w)
			}
			if runDemo {
				fmt.Fprintln(w)
				return printDemo(w)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showFeatures, "features", false, "Print the golang.org/x/sys/cpu flags relevant to the fast path")
	cmd.Flags().BoolVar(&runDemo, "demo", false, "Evaluate the reference scenarios with Vector2")
	return cmd
}

func printBuild(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(w, "Vector2 implementation: %s\n", vec.Implementation())
	fmt.Fprintf(w, "Vector2 size: %d bytes, align %d\n", unsafe.Sizeof(vec.Vector2{}), unsafe.Alignof(vec.Vector2{}))

	info := vek32.Info()
	fmt.Fprintf(w, "Bulk ops accelerated: %v %v\n", info.Acceleration, info.CPUFeatures)
}

func printFeatures(w io.Writer) {
	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFP:    %v (Floating point)\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasSVE:   %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	case "amd64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasSSE2: %v\n", cpu.X86.HasSSE2)
		fmt.Fprintf(w, "  HasSSE3: %v\n", cpu.X86.HasSSE3)
		fmt.Fprintf(w, "  HasAVX:  %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2: %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasFMA:  %v\n", cpu.X86.HasFMA)
	default:
		fmt.Fprintf(w, "no SIMD feature report for %s\n", runtime.GOARCH)
	}
}

func printDemo(w io.Writer) error {
	v := vec.NewVector2(3, 4)
	a := vec.NewVector2(1, 2)
	b := vec.NewVector2(3, 4)

	fmt.Fprintf(w, "Length%v = %g\n", v, v.Length())
	fmt.Fprintf(w, "Normalized%v = %v\n", v, v.Normalized())
	fmt.Fprintf(w, "DotProduct(%v, %v) = %g\n", a, b, vec.DotProduct(a, b))
	fmt.Fprintf(w, "HadamardProduct(%v, %v) = %v\n", a, b, vec.HadamardProduct(a, b))
	fmt.Fprintf(w, "%v + %v = %v\n", a, b, a.Add(b))
	fmt.Fprintf(w, "Lerp(%v, %v, 0.5) = %v\n", a, b, vec.Lerp(a, b, 0.5))

	if v.Length() != 5 || vec.DotProduct(a, b) != 11 {
		return fmt.Errorf("reference scenarios disagree on %s build", vec.Implementation())
	}
	return nil
}
