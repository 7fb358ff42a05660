package zvzip

import (
	"math/rand"
	"testing"

	"github.com/nibrunie/rvv-intrinsic-emulation/rvv"
)

func TestPairEven(t *testing.T) {
	vl := 8
	vs2 := rvv.Load([]uint32{0, 1, 2, 3, 4, 5, 6, 7}, vl)
	vs1 := rvv.Load([]uint32{10, 11, 12, 13, 14, 15, 16, 17}, vl)

	r := PairEven(vs2, vs1, vl)
	want := []uint32{0, 10, 2, 12, 4, 14, 6, 16}
	for i, w := range want {
		if r.Data()[i] != w {
			t.Errorf("lane %d: got %d, want %d", i, r.Data()[i], w)
		}
	}
}

func TestPairOdd(t *testing.T) {
	vl := 8
	vs2 := rvv.Load([]uint32{0, 1, 2, 3, 4, 5, 6, 7}, vl)
	vs1 := rvv.Load([]uint32{10, 11, 12, 13, 14, 15, 16, 17}, vl)

	r := PairOdd(vs2, vs1, vl)
	want := []uint32{1, 11, 3, 13, 5, 15, 7, 17}
	for i, w := range want {
		if r.Data()[i] != w {
			t.Errorf("lane %d: got %d, want %d", i, r.Data()[i], w)
		}
	}
}

func TestPairRandomOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	vl := 16
	for iter := 0; iter < 500; iter++ {
		a := make([]uint16, vl)
		b := make([]uint16, vl)
		for i := range a {
			a[i] = uint16(rng.Uint32())
			b[i] = uint16(rng.Uint32())
		}
		vs2 := rvv.Load(a, vl)
		vs1 := rvv.Load(b, vl)

		even := PairEven(vs2, vs1, vl)
		odd := PairOdd(vs2, vs1, vl)
		for i := 0; i < vl/2; i++ {
			if even.Data()[2*i] != a[2*i] || even.Data()[2*i+1] != b[2*i] {
				t.Fatalf("iter %d pair %d: even got (%d, %d), want (%d, %d)",
					iter, i, even.Data()[2*i], even.Data()[2*i+1], a[2*i], b[2*i])
			}
			if odd.Data()[2*i] != a[2*i+1] || odd.Data()[2*i+1] != b[2*i+1] {
				t.Fatalf("iter %d pair %d: odd got (%d, %d), want (%d, %d)",
					iter, i, odd.Data()[2*i], odd.Data()[2*i+1], a[2*i+1], b[2*i+1])
			}
		}
	}
}

// TestPairSelfInterleave pairs a vector with itself, duplicating each
// even (or odd) element.
func TestPairSelfInterleave(t *testing.T) {
	vl := 4
	v := rvv.Load([]uint8{9, 8, 7, 6}, vl)
	even := PairEven(v, v, vl)
	want := []uint8{9, 9, 7, 7}
	for i, w := range want {
		if even.Data()[i] != w {
			t.Errorf("lane %d: got %d, want %d", i, even.Data()[i], w)
		}
	}
}

func TestPairRespectsVL(t *testing.T) {
	vs2 := rvv.Load([]uint32{1, 2, 3, 4, 5, 6, 7, 8}, 8)
	vs1 := rvv.Load([]uint32{11, 12, 13, 14, 15, 16, 17, 18}, 8)
	r := PairEven(vs2, vs1, 4)
	if r.NumLanes() != 4 {
		t.Fatalf("vl=4: got %d lanes", r.NumLanes())
	}
	want := []uint32{1, 11, 3, 13}
	for i, w := range want {
		if r.Data()[i] != w {
			t.Errorf("lane %d: got %d, want %d", i, r.Data()[i], w)
		}
	}
}
