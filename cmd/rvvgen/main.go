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

// Command rvvgen generates the per-mnemonic intrinsic wrappers of the zvbb
// package from a table of instruction descriptors. Each (mnemonic, mode,
// width) triple becomes a thin wrapper over the generic implementation,
// named after the intrinsic spelling: vror.vv at SEW=32 becomes VrorVVU32.
//
// Usage:
//
//	rvvgen -out z_intrinsics.go
//
// Or via go:generate from the target package:
//
//	//go:generate go run ../../cmd/rvvgen -out z_intrinsics.go
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outFile = flag.String("out", "z_intrinsics.go", "Output file")
	pkgName = flag.String("pkg", "zvbb", "Output package name")
)

func main() {
	flag.Parse()

	src, err := generate(*pkgName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rvvgen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "rvvgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("rvvgen: wrote %s\n", *outFile)
}
