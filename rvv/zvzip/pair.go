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

// Package zvzip emulates the element-pairing instructions of the proposed
// Zvzip extension (vpaire/vpairo) on base RVV 1.0 primitives. Pairing two
// vectors at SEW interleaves their even (or odd) elements:
//
//	vpaire: out[2i] = vs2[2i],   out[2i+1] = vs1[2i]
//	vpairo: out[2i] = vs2[2i+1], out[2i+1] = vs1[2i+1]
//
// Two rounds of pairing at successively doubled SEW implement a 4x4
// matrix transpose; see examples/transpose.
package zvzip

import (
	"github.com/nibrunie/rvv-intrinsic-emulation/rvv"
)

// pairIndices derives the gather index and odd-lane mask shared by both
// pairings: idx[i] is i with the low bit forced to odd's value, and the
// mask selects lanes that should read from vs1.
func pairIndices[T rvv.Unsigned](vl int, odd bool) (rvv.Vec[T], rvv.Mask[T]) {
	iota := rvv.Iota[T](vl)
	low := rvv.AndScalar(iota, 1, vl)
	fromVs1 := rvv.NotEqualScalar(low, 0, vl)
	idx := rvv.Sub(iota, low, vl)
	if odd {
		idx = rvv.OrScalar(idx, 1, vl)
	}
	return idx, fromVs1
}

// PairEven interleaves the even elements of vs2 and vs1 (vpaire.vv):
// lane 2i of the result is vs2[2i] and lane 2i+1 is vs1[2i].
func PairEven[T rvv.Unsigned](vs2, vs1 rvv.Vec[T], vl int) rvv.Vec[T] {
	idx, fromVs1 := pairIndices[T](vl, false)
	a := rvv.Gather(vs1, idx, vl)
	b := rvv.Gather(vs2, idx, vl)
	return rvv.Merge(fromVs1, a, b, vl)
}

// PairOdd interleaves the odd elements of vs2 and vs1 (vpairo.vv):
// lane 2i of the result is vs2[2i+1] and lane 2i+1 is vs1[2i+1].
func PairOdd[T rvv.Unsigned](vs2, vs1 rvv.Vec[T], vl int) rvv.Vec[T] {
	idx, fromVs1 := pairIndices[T](vl, true)
	a := rvv.Gather(vs1, idx, vl)
	b := rvv.Gather(vs2, idx, vl)
	return rvv.Merge(fromVs1, a, b, vl)
}
