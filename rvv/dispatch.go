package rvv

import (
	"os"
	"strconv"
	"unsafe"
)

// The emulation models a hart with a fixed vector register length VLEN.
// Real hardware fixes VLEN at design time; here it defaults to 128 bits and
// can be overridden through the RVV_VLEN environment variable for testing
// wider or narrower configurations.

const defaultVLEN = 128

// vlenBits is the emulated register width in bits. Set once at init.
var vlenBits = defaultVLEN

// hasNativeV reports whether the host actually implements the V extension.
// Set by init() in dispatch_*.go files. The emulation does not change
// behavior based on it; it is surfaced for diagnostics (internal/cpuinfo)
// and benchmark labeling.
var hasNativeV bool

func init() {
	if s := os.Getenv("RVV_VLEN"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && validVLEN(n) {
			vlenBits = n
		}
	}
}

// validVLEN reports whether n is a legal VLEN: a power of two in [64, 65536],
// the range the V specification permits.
func validVLEN(n int) bool {
	return n >= 64 && n <= 65536 && n&(n-1) == 0
}

// VLEN returns the emulated vector register length in bits.
func VLEN() int {
	return vlenBits
}

// HasNativeVector reports whether the host CPU implements the V extension.
// Always false on non-riscv64 hosts.
func HasNativeVector() bool {
	return hasNativeV
}

// CurrentName returns a human-readable name for the execution target:
// "emulated", or "emulated (native V present)" when the host has real
// vector hardware this library is standing in for.
func CurrentName() string {
	if hasNativeV {
		return "emulated (native V present)"
	}
	return "emulated"
}

// ElemBits returns the width W of element type T in bits.
func ElemBits[T Integer]() uint {
	var dummy T
	return uint(unsafe.Sizeof(dummy)) * 8
}

// MaxLanes returns the register group capacity for element type T under
// grouping m: VLEN/8 * LMUL / sizeof(T).
//
// For example, with the default VLEN of 128:
//   - uint32, m1: 16*1/4 = 4 lanes
//   - uint8, m8: 16*8/1 = 128 lanes
func MaxLanes[T Integer](m LMUL) int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 || m <= 0 {
		return 0
	}
	return vlenBits / 8 * int(m) / elementSize
}

// SetVL is the vsetvl collaborator: it returns the active length granted
// for a requested application vector length, never exceeding the capacity
// for (T, m). Negative requests are treated as zero.
func SetVL[T Integer](avl int, m LMUL) int {
	if avl < 0 {
		avl = 0
	}
	return min(avl, MaxLanes[T](m))
}
