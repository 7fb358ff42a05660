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

// Package zvabd emulates the absolute-value and absolute-difference
// instructions of the proposed Zvabd extension on base RVV 1.0 primitives.
package zvabd

import (
	"github.com/nibrunie/rvv-intrinsic-emulation/rvv"
)

// Abs computes the absolute value of each lane (vabs.v), decomposed as a
// sign comparison, a vrsub negation and a merge. Two's complement: the
// minimum value negates to itself.
func Abs[T rvv.Signed](v rvv.Vec[T], vl int) rvv.Vec[T] {
	negative := rvv.LessThanScalar(v, 0, vl)
	negated := rvv.ReverseSubScalar(v, 0, vl)
	return rvv.Merge(negative, negated, v, vl)
}

// AbsDiff computes |a[i] - b[i]| for each lane (vabd.vv), with the
// difference taken in T and its absolute value in two's complement.
func AbsDiff[T rvv.Signed](a, b rvv.Vec[T], vl int) rvv.Vec[T] {
	return Abs(rvv.Sub(a, b, vl), vl)
}
