// Copyright 2026 rvv-intrinsic-emulation Authors
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

// Package main provides a diagnostic tool printing the emulated vector
// configuration and the host CPU features detected by Go.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/nibrunie/rvv-intrinsic-emulation/rvv"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Target: %s\n", rvv.CurrentName())
	fmt.Printf("VLEN: %d bits (override with RVV_VLEN)\n", rvv.VLEN())
	fmt.Println()

	fmt.Println("Lane capacity per register group:")
	fmt.Printf("  %-8s %6s %6s %6s %6s\n", "SEW", "m1", "m2", "m4", "m8")
	printLanes[uint8]("e8")
	printLanes[uint16]("e16")
	printLanes[uint32]("e32")
	printLanes[uint64]("e64")

	if runtime.GOARCH == "riscv64" {
		fmt.Println()
		fmt.Println("=== golang.org/x/sys/cpu.RISCV64 ===")
		fmt.Printf("  HasV:              %v (vector extension 1.0)\n", cpu.RISCV64.HasV)
		fmt.Printf("  HasFastMisaligned: %v\n", cpu.RISCV64.HasFastMisaligned)
	}
}

func printLanes[T rvv.Integer](sew string) {
	fmt.Printf("  %-8s %6d %6d %6d %6d\n", sew,
		rvv.MaxLanes[T](rvv.M1),
		rvv.MaxLanes[T](rvv.M2),
		rvv.MaxLanes[T](rvv.M4),
		rvv.MaxLanes[T](rvv.M8))
}
