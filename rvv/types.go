// Package rvv provides a pure Go emulation of the RISC-V Vector (RVV 1.0)
// integer intrinsics used as building blocks by the extension emulation
// layers in the subpackages (zvbb, zvzip, zvdot, zvabd).
//
// Vectors are opaque value types over generic lane constraints, every
// operation is a total, stateless function, and the scalar implementations
// here are the reference the extension layers are decomposed onto.
//
// Basic usage:
//
//	vl := rvv.SetVL[uint32](len(data), rvv.M1)
//	v := rvv.Load(data, vl)
//	v = rvv.ShiftRightScalar(v, 8, vl)
//	rvv.Store(v, out, vl)
//
// Every operation takes an explicit active length vl, mirroring the RVV
// intrinsic calling convention. Lanes beyond vl do not participate; the
// result of an operation carries exactly the participating lanes.
package rvv

// Unsigned is a constraint for the unsigned element types RVV supports.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is a constraint for the signed element types RVV supports.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Integer is a constraint for all supported element types.
type Integer interface {
	Unsigned | Signed
}

// Vec is an opaque vector register group value. It is created by Load,
// Splat, Zero or Iota and holds one unsigned or signed integer per lane.
//
// Vec values are copy-in, copy-out: no operation retains a reference to its
// operands or aliases its result with them, so values may be freely shared
// across goroutines.
type Vec[T Integer] struct {
	data []T
}

// NumLanes returns the number of lanes held by this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and diagnostics.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask represents a per-lane predicate produced by the comparison
// operations and consumed by Merge.
type Mask[T Integer] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// LMUL is the register grouping multiplier. It is a capacity class: it
// scales how many lanes a vector register group can hold, and has no effect
// on per-lane semantics.
type LMUL int

const (
	M1 LMUL = 1
	M2 LMUL = 2
	M4 LMUL = 4
	M8 LMUL = 8
)

// String returns the RVV assembly spelling of the grouping.
func (m LMUL) String() string {
	switch m {
	case M1:
		return "m1"
	case M2:
		return "m2"
	case M4:
		return "m4"
	case M8:
		return "m8"
	default:
		return "m?"
	}
}
