package rvv

// Reinterpret reinterprets the bits of v as lanes of type D, the emulated
// counterpart of viewing the same register group at a different SEW. The
// packing is little-endian, matching how a RISC-V hart lays out elements in
// a vector register: source lane 0 occupies the lowest-order bits of
// destination lane 0.
//
// The total bit width is preserved: reinterpreting 4 uint32 lanes as uint64
// yields 2 lanes; the reverse yields 8. When the source bits do not fill a
// whole destination lane, the trailing partial lane is dropped.
func Reinterpret[D, S Unsigned](v Vec[S], vl int) Vec[D] {
	n := activeLanes(vl, len(v.data))
	srcBits := ElemBits[S]()
	dstBits := ElemBits[D]()

	if srcBits == dstBits {
		data := make([]D, n)
		for i := 0; i < n; i++ {
			data[i] = D(v.data[i])
		}
		return Vec[D]{data: data}
	}

	if srcBits < dstBits {
		// Pack several narrow lanes into each wide lane, lane 0 lowest.
		ratio := int(dstBits / srcBits)
		data := make([]D, n/ratio)
		for i := range data {
			var acc D
			for j := ratio - 1; j >= 0; j-- {
				acc = acc<<srcBits | D(v.data[i*ratio+j])
			}
			data[i] = acc
		}
		return Vec[D]{data: data}
	}

	// Split each wide lane into several narrow lanes, low bits first.
	ratio := int(srcBits / dstBits)
	data := make([]D, n*ratio)
	for i := 0; i < n; i++ {
		x := v.data[i]
		for j := 0; j < ratio; j++ {
			data[i*ratio+j] = D(x)
			x >>= dstBits
		}
	}
	return Vec[D]{data: data}
}
