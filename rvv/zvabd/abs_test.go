package zvabd

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nibrunie/rvv-intrinsic-emulation/rvv"
)

func TestAbsKnown(t *testing.T) {
	vl := 5
	v := rvv.Load([]int32{-5, 0, 7, math.MinInt32, math.MaxInt32}, vl)
	r := Abs(v, vl)
	// MinInt32 negates to itself in two's complement.
	want := []int32{5, 0, 7, math.MinInt32, math.MaxInt32}
	for i, w := range want {
		if r.Data()[i] != w {
			t.Errorf("lane %d: got %d, want %d", i, r.Data()[i], w)
		}
	}
}

func TestAbsRandomOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	vl := 16
	for iter := 0; iter < 500; iter++ {
		xs := make([]int16, vl)
		for i := range xs {
			xs[i] = int16(rng.Uint32())
		}
		r := Abs(rvv.Load(xs, vl), vl)
		for i, x := range xs {
			want := x
			if want < 0 {
				want = -want
			}
			if r.Data()[i] != want {
				t.Fatalf("iter %d lane %d: abs(%d) = %d, want %d", iter, i, x, r.Data()[i], want)
			}
		}
	}
}

func TestAbsDiff(t *testing.T) {
	vl := 4
	a := rvv.Load([]int8{10, -10, 100, -100}, vl)
	b := rvv.Load([]int8{3, 3, -27, 27}, vl)
	r := AbsDiff(a, b, vl)
	want := []int8{7, 13, 127, 127} // -100-27 = -127 in int8
	for i, w := range want {
		if r.Data()[i] != w {
			t.Errorf("lane %d: got %d, want %d", i, r.Data()[i], w)
		}
	}
}
