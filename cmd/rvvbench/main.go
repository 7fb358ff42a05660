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

// Command rvvbench times the emulated instruction sequences. Each variant
// runs a dependency chain: the result of one operation feeds the next, so
// the measured loop reflects sequential latency rather than independent
// throughput.
//
// Usage:
//
//	rvvbench -iters 10000 -warmup 100 -elems 16 -lmul m1
//	rvvbench -csv > results.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/nibrunie/rvv-intrinsic-emulation/rvv"
	"github.com/nibrunie/rvv-intrinsic-emulation/rvv/zvbb"
	"github.com/nibrunie/rvv-intrinsic-emulation/rvv/zvdot"
	"github.com/nibrunie/rvv-intrinsic-emulation/rvv/zvzip"
)

var (
	iters   = flag.Int("iters", 10000, "Timed iterations per variant")
	warmup  = flag.Int("warmup", 100, "Untimed warmup iterations per variant")
	elems   = flag.Int("elems", 16, "Requested elements per operation")
	lmulArg = flag.String("lmul", "m1", "Register grouping (m1, m2, m4, m8)")
	csvOut  = flag.Bool("csv", false, "Emit CSV instead of the human-readable report")
)

// result is one variant's timing.
type result struct {
	Name  string
	Width int
	Elems int
	Iters int
	Total time.Duration
}

func (r result) nsPerOp() float64 {
	return float64(r.Total.Nanoseconds()) / float64(r.Iters)
}

func (r result) nsPerElem() float64 {
	return r.nsPerOp() / float64(r.Elems)
}

func parseLMUL(s string) (rvv.LMUL, error) {
	for _, m := range []rvv.LMUL{rvv.M1, rvv.M2, rvv.M4, rvv.M8} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid lmul %q", s)
}

// benchRotate times one rotate variant for element type T. mode selects the
// addressing: "vv", "vx" or "vi".
func benchRotate[T rvv.Unsigned](mode string, m rvv.LMUL) result {
	vl := rvv.SetVL[T](*elems, m)
	w := rvv.ElemBits[T]()
	rng := rand.New(rand.NewSource(int64(w)))

	xs := make([]T, vl)
	ns := make([]T, vl)
	for i := range xs {
		xs[i] = T(rng.Uint64())
		ns[i] = T(rng.Uint64() % uint64(w))
	}
	v := rvv.Load(xs, vl)
	amounts := rvv.Load(ns, vl)

	run := func(n int) {
		switch mode {
		case "vv":
			for i := 0; i < n; i++ {
				v = zvbb.RotateRightVV(v, amounts, vl)
			}
		case "vx":
			for i := 0; i < n; i++ {
				v = zvbb.RotateRightVX(v, 13, vl)
			}
		case "vi":
			for i := 0; i < n; i++ {
				v = zvbb.RotateRightVI(v, 7, vl)
			}
		}
	}

	run(*warmup)
	start := time.Now()
	run(*iters)
	total := time.Since(start)
	keepAlive(uint64(v.Data()[0]))

	return result{Name: "vror." + mode, Width: int(w), Elems: vl, Iters: *iters, Total: total}
}

func benchRotateLeft[T rvv.Unsigned](mode string, m rvv.LMUL) result {
	vl := rvv.SetVL[T](*elems, m)
	w := rvv.ElemBits[T]()
	rng := rand.New(rand.NewSource(int64(w) + 100))

	xs := make([]T, vl)
	ns := make([]T, vl)
	for i := range xs {
		xs[i] = T(rng.Uint64())
		ns[i] = T(rng.Uint64() % uint64(w))
	}
	v := rvv.Load(xs, vl)
	amounts := rvv.Load(ns, vl)

	run := func(n int) {
		if mode == "vv" {
			for i := 0; i < n; i++ {
				v = zvbb.RotateLeftVV(v, amounts, vl)
			}
		} else {
			for i := 0; i < n; i++ {
				v = zvbb.RotateLeftVX(v, 5, vl)
			}
		}
	}

	run(*warmup)
	start := time.Now()
	run(*iters)
	total := time.Since(start)
	keepAlive(uint64(v.Data()[0]))

	return result{Name: "vrol." + mode, Width: int(w), Elems: vl, Iters: *iters, Total: total}
}

func benchPair(m rvv.LMUL) result {
	vl := rvv.SetVL[uint32](*elems, m)
	rng := rand.New(rand.NewSource(7))
	xs := make([]uint32, vl)
	ys := make([]uint32, vl)
	for i := range xs {
		xs[i] = rng.Uint32()
		ys[i] = rng.Uint32()
	}
	a := rvv.Load(xs, vl)
	b := rvv.Load(ys, vl)

	run := func(n int) {
		for i := 0; i < n; i++ {
			a = zvzip.PairEven(a, b, vl)
		}
	}
	run(*warmup)
	start := time.Now()
	run(*iters)
	total := time.Since(start)
	keepAlive(uint64(a.Data()[0]))

	return result{Name: "vpaire", Width: 32, Elems: vl, Iters: *iters, Total: total}
}

func benchDot(m rvv.LMUL) result {
	vl := rvv.SetVL[uint32](*elems, m)
	rng := rand.New(rand.NewSource(9))
	xs := make([]uint32, vl)
	for i := range xs {
		xs[i] = rng.Uint32()
	}
	acc := rvv.Zero[uint32](vl)
	v := rvv.Load(xs, vl)

	run := func(n int) {
		for i := 0; i < n; i++ {
			acc = zvdot.Dot4AddUVX(acc, v, 0x01020304, vl)
		}
	}
	run(*warmup)
	start := time.Now()
	run(*iters)
	total := time.Since(start)
	keepAlive(uint64(acc.Data()[0]))

	return result{Name: "vdot4au.vx", Width: 32, Elems: vl, Iters: *iters, Total: total}
}

var sink uint64

func keepAlive(x uint64) { sink = x }

func runAll(m rvv.LMUL) []result {
	var rs []result
	for _, mode := range []string{"vv", "vx", "vi"} {
		rs = append(rs,
			benchRotate[uint8](mode, m),
			benchRotate[uint16](mode, m),
			benchRotate[uint32](mode, m),
			benchRotate[uint64](mode, m),
		)
	}
	for _, mode := range []string{"vv", "vx"} {
		rs = append(rs,
			benchRotateLeft[uint8](mode, m),
			benchRotateLeft[uint16](mode, m),
			benchRotateLeft[uint32](mode, m),
			benchRotateLeft[uint64](mode, m),
		)
	}
	rs = append(rs, benchPair(m), benchDot(m))
	return rs
}

func writeCSV(rs []result) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"variant", "width", "elems", "iters", "total_ns", "ns_per_op", "ns_per_elem"}); err != nil {
		return err
	}
	for _, r := range rs {
		rec := []string{
			r.Name,
			strconv.Itoa(r.Width),
			strconv.Itoa(r.Elems),
			strconv.Itoa(r.Iters),
			strconv.FormatInt(r.Total.Nanoseconds(), 10),
			strconv.FormatFloat(r.nsPerOp(), 'f', 2, 64),
			strconv.FormatFloat(r.nsPerElem(), 'f', 4, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func main() {
	flag.Parse()

	m, err := parseLMUL(*lmulArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rvvbench: %v\n", err)
		os.Exit(1)
	}

	rs := runAll(m)

	if *csvOut {
		if err := writeCSV(rs); err != nil {
			fmt.Fprintf(os.Stderr, "rvvbench: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("target: %s, VLEN=%d, lmul=%s, %d iters (%d warmup)\n\n",
		rvv.CurrentName(), rvv.VLEN(), m, *iters, *warmup)
	fmt.Printf("%-12s %6s %6s %12s %12s\n", "variant", "width", "elems", "ns/op", "ns/elem")
	for _, r := range rs {
		fmt.Printf("%-12s %6d %6d %12.2f %12.4f\n", r.Name, r.Width, r.Elems, r.nsPerOp(), r.nsPerElem())
	}
}
