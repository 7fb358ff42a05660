//go:build riscv64

package rvv

import "golang.org/x/sys/cpu"

func init() {
	// On riscv64 hosts the kernel exposes the V extension through hwprobe;
	// x/sys/cpu surfaces it as RISCV64.HasV. The emulation still runs in
	// pure Go, but diagnostics can tell the user real hardware exists.
	hasNativeV = cpu.RISCV64.HasV
}
