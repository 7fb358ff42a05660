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

// Package zvbb emulates the Zvbb (vector basic bit-manipulation) extension
// on top of base RVV 1.0 integer primitives. A hart without Zvbb can run
// Zvbb-dependent code through this package with identical results.
//
// The rotates are decomposed into shift/or sequences:
//
//	vror(x, n) = vsrl(x, n) | vsll(x, W-n)
//	vrol(x, n) = vsll(x, n) | vsrl(x, W-n)
//
// Because the base shifts read only the low log2(W) bits of their amount,
// the decomposition is exact for every amount, including n = 0 (the left
// term degenerates to x | x) and amounts at or beyond the element width.
//
// Two surfaces are provided: generic functions (RotateRightVV and friends)
// over any unsigned element type, and per-mnemonic wrappers in
// z_intrinsics.go (VrorVVU32, ...) generated by cmd/rvvgen, mirroring the
// vror.vv/vror.vx/vror.vi intrinsic spellings.
package zvbb
