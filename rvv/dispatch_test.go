package rvv

import "testing"

func TestElemBits(t *testing.T) {
	if got := ElemBits[uint8](); got != 8 {
		t.Errorf("uint8: got %d", got)
	}
	if got := ElemBits[int16](); got != 16 {
		t.Errorf("int16: got %d", got)
	}
	if got := ElemBits[uint32](); got != 32 {
		t.Errorf("uint32: got %d", got)
	}
	if got := ElemBits[uint64](); got != 64 {
		t.Errorf("uint64: got %d", got)
	}
}

func TestMaxLanes(t *testing.T) {
	// These expectations hold at the default VLEN; skip under RVV_VLEN
	// overrides so the suite stays runnable at any configuration.
	if VLEN() != defaultVLEN {
		t.Skipf("VLEN overridden to %d", VLEN())
	}
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"uint8 m1", MaxLanes[uint8](M1), 16},
		{"uint8 m8", MaxLanes[uint8](M8), 128},
		{"uint16 m2", MaxLanes[uint16](M2), 16},
		{"uint32 m1", MaxLanes[uint32](M1), 4},
		{"uint32 m4", MaxLanes[uint32](M4), 16},
		{"uint64 m1", MaxLanes[uint64](M1), 2},
		{"uint64 m8", MaxLanes[uint64](M8), 16},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestSetVL(t *testing.T) {
	capacity := MaxLanes[uint32](M1)

	if got := SetVL[uint32](capacity/2, M1); got != capacity/2 {
		t.Errorf("under capacity: got %d, want %d", got, capacity/2)
	}
	if got := SetVL[uint32](capacity*10, M1); got != capacity {
		t.Errorf("over capacity: got %d, want %d", got, capacity)
	}
	if got := SetVL[uint32](0, M1); got != 0 {
		t.Errorf("zero: got %d", got)
	}
	if got := SetVL[uint32](-3, M1); got != 0 {
		t.Errorf("negative: got %d", got)
	}

	// Doubling LMUL doubles the grant for the same request.
	big := MaxLanes[uint32](M2) * 2
	if got := SetVL[uint32](big, M2); got != 2*capacity {
		t.Errorf("m2: got %d, want %d", got, 2*capacity)
	}
}

func TestValidVLEN(t *testing.T) {
	for _, n := range []int{64, 128, 256, 65536} {
		if !validVLEN(n) {
			t.Errorf("validVLEN(%d) = false", n)
		}
	}
	for _, n := range []int{0, 32, 100, 131072, -128} {
		if validVLEN(n) {
			t.Errorf("validVLEN(%d) = true", n)
		}
	}
}

func TestLMULString(t *testing.T) {
	if M1.String() != "m1" || M8.String() != "m8" {
		t.Errorf("LMUL.String: got %q, %q", M1.String(), M8.String())
	}
	if LMUL(3).String() != "m?" {
		t.Errorf("invalid LMUL: got %q", LMUL(3).String())
	}
}
