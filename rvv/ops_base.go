package rvv

// This file provides pure Go (scalar) implementations of the RVV 1.0
// integer primitives the extension emulation layers are built on. Every
// operation is total: short slices and out-of-range lengths clamp instead
// of failing, and no operation retains state between calls.

// activeLanes returns the number of lanes an operation touches: the
// requested vl clamped to zero and to the shortest operand.
func activeLanes(vl int, operands ...int) int {
	n := max(vl, 0)
	for _, l := range operands {
		n = min(n, l)
	}
	return n
}

// Load creates a vector from the first vl elements of src (vle).
func Load[T Integer](src []T, vl int) Vec[T] {
	n := activeLanes(vl, len(src))
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes the first vl lanes of v to dst (vse).
func Store[T Integer](v Vec[T], dst []T, vl int) {
	n := activeLanes(vl, len(v.data), len(dst))
	copy(dst[:n], v.data[:n])
}

// LoadStrided creates a vector from src[0], src[stride], src[2*stride], ...
// (vlse, with the stride expressed in elements rather than bytes).
// A stride of 0 broadcasts src[0]; negative strides load nothing.
func LoadStrided[T Integer](src []T, stride, vl int) Vec[T] {
	if vl < 0 || stride < 0 || len(src) == 0 {
		return Vec[T]{data: []T{}}
	}
	n := vl
	if stride > 0 {
		n = min(n, (len(src)-1)/stride+1)
	}
	data := make([]T, n)
	for i := range data {
		data[i] = src[i*stride]
	}
	return Vec[T]{data: data}
}

// StoreStrided writes lane i of v to dst[i*stride] (vsse).
// The stride is in elements; negative strides store nothing.
func StoreStrided[T Integer](v Vec[T], dst []T, stride, vl int) {
	if stride < 0 || len(dst) == 0 {
		return
	}
	n := activeLanes(vl, len(v.data))
	if stride > 0 {
		n = min(n, (len(dst)-1)/stride+1)
	}
	for i := 0; i < n; i++ {
		dst[i*stride] = v.data[i]
	}
}

// Splat creates a vector with all vl lanes set to x (vmv.v.x).
func Splat[T Integer](x T, vl int) Vec[T] {
	n := max(vl, 0)
	data := make([]T, n)
	for i := range data {
		data[i] = x
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all vl lanes set to zero.
func Zero[T Integer](vl int) Vec[T] {
	return Vec[T]{data: make([]T, max(vl, 0))}
}

// Iota creates a vector with lane i holding i (vid.v). Lane indices wrap in
// T's range for narrow types and long vectors.
func Iota[T Integer](vl int) Vec[T] {
	n := max(vl, 0)
	data := make([]T, n)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// Add performs element-wise addition (vadd.vv), wrapping on overflow.
func Add[T Integer](a, b Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// AddScalar adds x to every lane (vadd.vx).
func AddScalar[T Integer](v Vec[T], x T, vl int) Vec[T] {
	n := activeLanes(vl, len(v.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] + x
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction (vsub.vv), wrapping on underflow.
func Sub[T Integer](a, b Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// ReverseSubScalar computes x - lane for every lane (vrsub.vx), wrapping in
// T's range. This is the primitive the rotate emulation uses to derive the
// complementary shift amount W - n.
func ReverseSubScalar[T Integer](v Vec[T], x T, vl int) Vec[T] {
	n := activeLanes(vl, len(v.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = x - v.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication (vmul.vv), keeping the low half.
func Mul[T Integer](a, b Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// MulScalar multiplies every lane by x (vmul.vx).
func MulScalar[T Integer](v Vec[T], x T, vl int) Vec[T] {
	n := activeLanes(vl, len(v.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] * x
	}
	return Vec[T]{data: result}
}

// MulAdd computes acc + a*b element-wise (vmacc.vv).
func MulAdd[T Integer](acc, a, b Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(acc.data), len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = acc.data[i] + a.data[i]*b.data[i]
	}
	return Vec[T]{data: result}
}

// MulAddScalar computes acc + v*x element-wise (vmacc.vx).
func MulAddScalar[T Integer](acc, v Vec[T], x T, vl int) Vec[T] {
	n := activeLanes(vl, len(acc.data), len(v.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = acc.data[i] + v.data[i]*x
	}
	return Vec[T]{data: result}
}

// Shift operations. RVV shifts read only the low log2(W) bits of the shift
// amount: shifting a W-bit element by W behaves exactly like shifting by 0,
// and shifting by W+k like shifting by k. The rotate emulation in zvbb
// depends on this masking; it is part of this package's contract, not an
// implementation accident.

// ShiftRight performs an element-wise logical right shift (vsrl.vv).
// Each shift amount is masked to the low log2(W) bits.
func ShiftRight[T Unsigned](v, amounts Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(v.data), len(amounts.data))
	mask := T(ElemBits[T]() - 1)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] >> (amounts.data[i] & mask)
	}
	return Vec[T]{data: result}
}

// ShiftRightScalar performs a logical right shift of every lane by the same
// amount (vsrl.vx). The amount is masked to the low log2(W) bits.
func ShiftRightScalar[T Unsigned](v Vec[T], amount uint, vl int) Vec[T] {
	n := activeLanes(vl, len(v.data))
	amount &= ElemBits[T]() - 1
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] >> amount
	}
	return Vec[T]{data: result}
}

// ShiftLeft performs an element-wise left shift (vsll.vv).
// Each shift amount is masked to the low log2(W) bits.
func ShiftLeft[T Unsigned](v, amounts Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(v.data), len(amounts.data))
	mask := T(ElemBits[T]() - 1)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] << (amounts.data[i] & mask)
	}
	return Vec[T]{data: result}
}

// ShiftLeftScalar shifts every lane left by the same amount (vsll.vx).
// The amount is masked to the low log2(W) bits.
func ShiftLeftScalar[T Unsigned](v Vec[T], amount uint, vl int) Vec[T] {
	n := activeLanes(vl, len(v.data))
	amount &= ElemBits[T]() - 1
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] << amount
	}
	return Vec[T]{data: result}
}

// And performs element-wise bitwise AND (vand.vv).
func And[T Integer](a, b Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] & b.data[i]
	}
	return Vec[T]{data: result}
}

// AndScalar ANDs every lane with x (vand.vx).
func AndScalar[T Integer](v Vec[T], x T, vl int) Vec[T] {
	n := activeLanes(vl, len(v.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] & x
	}
	return Vec[T]{data: result}
}

// Or performs element-wise bitwise OR (vor.vv).
func Or[T Integer](a, b Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] | b.data[i]
	}
	return Vec[T]{data: result}
}

// OrScalar ORs every lane with x (vor.vx).
func OrScalar[T Integer](v Vec[T], x T, vl int) Vec[T] {
	n := activeLanes(vl, len(v.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] | x
	}
	return Vec[T]{data: result}
}

// Xor performs element-wise bitwise XOR (vxor.vv).
func Xor[T Integer](a, b Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] ^ b.data[i]
	}
	return Vec[T]{data: result}
}

// XorScalar XORs every lane with x (vxor.vx).
func XorScalar[T Integer](v Vec[T], x T, vl int) Vec[T] {
	n := activeLanes(vl, len(v.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[i] ^ x
	}
	return Vec[T]{data: result}
}

// Not inverts every lane (vnot, the vxor.vi v, -1 alias).
func Not[T Integer](v Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(v.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = ^v.data[i]
	}
	return Vec[T]{data: result}
}

// Gather builds result[i] = v[idx[i]] (vrgather.vv). Indices beyond the
// source vector's lanes yield zero, matching vrgather's out-of-range rule.
func Gather[T Unsigned](v, idx Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(idx.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		j := int(idx.data[i])
		if j >= 0 && j < len(v.data) {
			result[i] = v.data[j]
		}
	}
	return Vec[T]{data: result}
}

// LessThanScalar compares each lane against x, signed (vmslt.vx).
func LessThanScalar[T Signed](v Vec[T], x T, vl int) Mask[T] {
	n := activeLanes(vl, len(v.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = v.data[i] < x
	}
	return Mask[T]{bits: bits}
}

// NotEqualScalar compares each lane against x (vmsne.vx).
func NotEqualScalar[T Integer](v Vec[T], x T, vl int) Mask[T] {
	n := activeLanes(vl, len(v.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = v.data[i] != x
	}
	return Mask[T]{bits: bits}
}

// Merge selects a where the mask is set and b elsewhere (vmerge.vvm).
func Merge[T Integer](mask Mask[T], a, b Vec[T], vl int) Vec[T] {
	n := activeLanes(vl, len(mask.bits), len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}
