//go:build !riscv64

package rvv

func init() {
	// Non-riscv64 hosts never have the V extension.
	hasNativeV = false
}
