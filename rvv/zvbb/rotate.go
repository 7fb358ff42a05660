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

package zvbb

//go:generate go run ../../cmd/rvvgen -out z_intrinsics.go

import (
	"github.com/nibrunie/rvv-intrinsic-emulation/rvv"
)

// RotateRightVV rotates each lane of vs2 right by the amount in the
// corresponding lane of vs1 (vror.vv).
//
// Amounts are interpreted modulo the element width W. The complement
// W - n is formed with an unreduced vrsub, so it may wrap in T's range for
// amounts above W; the mod-W masking inside the base shifts makes the
// result exact regardless.
func RotateRightVV[T rvv.Unsigned](vs2, vs1 rvv.Vec[T], vl int) rvv.Vec[T] {
	w := rvv.ElemBits[T]()
	sr := rvv.ShiftRight(vs2, vs1, vl)
	comp := rvv.ReverseSubScalar(vs1, T(w), vl)
	sl := rvv.ShiftLeft(vs2, comp, vl)
	return rvv.Or(sr, sl, vl)
}

// RotateRightVX rotates each lane of vs2 right by the scalar amount rs1
// (vror.vx). rs1 is interpreted modulo the element width.
func RotateRightVX[T rvv.Unsigned](vs2 rvv.Vec[T], rs1 uint, vl int) rvv.Vec[T] {
	w := rvv.ElemBits[T]()
	n := rs1 & (w - 1)
	sr := rvv.ShiftRightScalar(vs2, n, vl)
	sl := rvv.ShiftLeftScalar(vs2, w-n, vl)
	return rvv.Or(sr, sl, vl)
}

// RotateRightVI rotates each lane of vs2 right by the immediate imm
// (vror.vi). The hardware instruction encodes a 6-bit immediate; here any
// uint is accepted and reduced modulo the element width.
func RotateRightVI[T rvv.Unsigned](vs2 rvv.Vec[T], imm uint, vl int) rvv.Vec[T] {
	return RotateRightVX(vs2, imm, vl)
}

// RotateLeftVV rotates each lane of vs2 left by the amount in the
// corresponding lane of vs1 (vrol.vv). Amounts are interpreted modulo the
// element width; see RotateRightVV for the wraparound contract.
func RotateLeftVV[T rvv.Unsigned](vs2, vs1 rvv.Vec[T], vl int) rvv.Vec[T] {
	w := rvv.ElemBits[T]()
	sl := rvv.ShiftLeft(vs2, vs1, vl)
	comp := rvv.ReverseSubScalar(vs1, T(w), vl)
	sr := rvv.ShiftRight(vs2, comp, vl)
	return rvv.Or(sl, sr, vl)
}

// RotateLeftVX rotates each lane of vs2 left by the scalar amount rs1
// (vrol.vx). rs1 is interpreted modulo the element width.
func RotateLeftVX[T rvv.Unsigned](vs2 rvv.Vec[T], rs1 uint, vl int) rvv.Vec[T] {
	w := rvv.ElemBits[T]()
	n := rs1 & (w - 1)
	sl := rvv.ShiftLeftScalar(vs2, n, vl)
	sr := rvv.ShiftRightScalar(vs2, w-n, vl)
	return rvv.Or(sl, sr, vl)
}
