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

// Package zvdot emulates the packed 8-bit dot product instructions of the
// proposed Zvdot4a8i extension. Each uint32 lane is treated as four packed
// unsigned bytes; a dot product of the four byte pairs is accumulated into
// the lane, wrapping in uint32.
package zvdot

import (
	"github.com/nibrunie/rvv-intrinsic-emulation/rvv"
)

// Dot4AddUVX emulates vdot4au.vx: for each lane,
//
//	acc[i] + sum over l<4 of byte_l(vs2[i]) * byte_l(rs1)
//
// with byte_l the l-th least significant byte.
func Dot4AddUVX(acc, vs2 rvv.Vec[uint32], rs1 uint32, vl int) rvv.Vec[uint32] {
	r := acc
	for l := uint(0); l < 4; l++ {
		a := rvv.AndScalar(rvv.ShiftRightScalar(vs2, 8*l, vl), 0xFF, vl)
		b := (rs1 >> (8 * l)) & 0xFF
		r = rvv.MulAddScalar(r, a, b, vl)
	}
	return r
}

// Dot4AddUVV emulates vdot4au.vv: like Dot4AddUVX but the second operand's
// four bytes come from the corresponding lane of vs1.
func Dot4AddUVV(acc, vs2, vs1 rvv.Vec[uint32], vl int) rvv.Vec[uint32] {
	r := acc
	for l := uint(0); l < 4; l++ {
		a := rvv.AndScalar(rvv.ShiftRightScalar(vs2, 8*l, vl), 0xFF, vl)
		b := rvv.AndScalar(rvv.ShiftRightScalar(vs1, 8*l, vl), 0xFF, vl)
		r = rvv.MulAdd(r, a, b, vl)
	}
	return r
}
