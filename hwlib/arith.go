// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"math/bits"
	"strconv"

	hw "github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// HalfAdder is a half adder built from a XOR and an AND gate.
//
//	Points: A, B (in), S, C (in, driven by the internal gates)
//	Function: S = lsb(A + B)
//	          C = msb(A + B)
//
type HalfAdder struct {
	hw.Chip
	A, B, S, C *hw.Point
}

// NewHalfAdder returns a new half adder.
//
func NewHalfAdder(name string) *HalfAdder {
	h := &HalfAdder{Chip: hw.MakeChip(nameOr(name, "HalfAdder"))}
	xor := NewXor(h.Sub("xor"), 1)
	and := NewAnd(h.Sub("and"), 1)
	h.Mount(xor, and)
	h.A = hw.NewSignalPoint(h.Sub(pA))
	h.B = hw.NewSignalPoint(h.Sub(pB))
	h.S = hw.NewSignalPoint(h.Sub("s"))
	h.C = hw.NewSignalPoint(h.Sub("c"))
	h.Wiring().
		Connect(h.A, xor.A).Connect(h.B, xor.B).Connect(xor.Out, h.S).
		Connect(h.A, and.A).Connect(h.B, and.B).Connect(and.Out, h.C)
	return h
}

// FullAdder is a 3 bits adder built from two half adders and a OR gate.
//
//	Points: A, B, Cin (in), S, Cout (in, driven by the internal gates)
//	Function: S = lsb(A + B + Cin)
//	          Cout = msb(A + B + Cin)
//
type FullAdder struct {
	hw.Chip
	A, B, Cin *hw.Point
	S, Cout   *hw.Point
}

// NewFullAdder returns a new full adder.
//
func NewFullAdder(name string) *FullAdder {
	f := &FullAdder{Chip: hw.MakeChip(nameOr(name, "FullAdder"))}
	ha1 := NewHalfAdder(f.Sub("ha1"))
	ha2 := NewHalfAdder(f.Sub("ha2"))
	or := NewOr(f.Sub("or"), 1)
	f.Mount(ha1, ha2, or)
	f.A = hw.NewSignalPoint(f.Sub(pA))
	f.B = hw.NewSignalPoint(f.Sub(pB))
	f.Cin = hw.NewSignalPoint(f.Sub("cin"))
	f.S = hw.NewSignalPoint(f.Sub("s"))
	f.Cout = hw.NewSignalPoint(f.Sub("cout"))
	f.Wiring().
		Connect(f.A, ha1.A).Connect(f.B, ha1.B).
		Connect(f.Cin, ha2.A).Connect(ha1.S, ha2.B).
		Connect(ha2.S, f.S).
		Connect(ha1.C, or.A).Connect(ha2.C, or.B).
		Connect(or.Out, f.Cout)
	return f
}

// RippleAdder is an N-bits ripple carry adder built from full adders.
//
//	Points: A[width], B[width], CarryIn (in), Sum[width], CarryOut (in, driven by the internal parts)
//	Function: Sum = lsb(A + B + CarryIn)
//	          CarryOut = msb(A + B + CarryIn)
//
type RippleAdder struct {
	hw.Chip
	A, B, CarryIn *hw.Point
	Sum, CarryOut *hw.Point
}

// NewRippleAdder returns a new ripple carry adder.
//
func NewRippleAdder(name string, width int) *RippleAdder {
	r := &RippleAdder{Chip: hw.MakeChip(nameOr(name, "RippleAdder"+strconv.Itoa(width)))}
	r.A = hw.NewWidePoint(r.Sub(pA), width)
	r.B = hw.NewWidePoint(r.Sub(pB), width)
	r.CarryIn = hw.NewSignalPoint(r.Sub("cin"))
	r.Sum = hw.NewWidePoint(r.Sub("sum"), width)
	r.CarryOut = hw.NewSignalPoint(r.Sub("cout"))

	ones := make([]int, width)
	for i := range ones {
		ones[i] = 1
	}
	sa := NewSplitter(r.Sub("splitA"), ones...)
	sb := NewSplitter(r.Sub("splitB"), ones...)
	ms := NewMerger(r.Sub("merge"), ones...)
	r.Mount(sa, sb, ms)
	w := r.Wiring()
	w.Connect(r.A, sa.Wide).Connect(r.B, sb.Wide).Connect(ms.Wide, r.Sum)

	// bit 0 is the MSB, carry ripples from the last adder up to the first.
	carry := r.CarryIn
	for i := width - 1; i >= 0; i-- {
		fa := NewFullAdder(r.Sub("fa" + strconv.Itoa(i)))
		r.Mount(fa)
		w.Connect(sa.Narrow[i], fa.A).
			Connect(sb.Narrow[i], fa.B).
			Connect(carry, fa.Cin).
			Connect(fa.S, ms.Narrow[i])
		carry = fa.Cout
	}
	w.Connect(carry, r.CarryOut)
	return r
}

// Adder is a behavioural N-bits adder, up to 64 bits.
//
//	Points: A[width], B[width], Cin (in), Sum[width], Cout (out)
//	Function: Sum = lsb(A + B + Cin)
//	          Cout = msb(A + B + Cin)
//
// Sum and Cout are all Floating if any input is not concrete.
//
type Adder struct {
	hw.Chip
	A, B, Cin *hw.Point
	Sum, Cout *hw.Point
}

// NewAdder returns a new behavioural adder.
//
func NewAdder(name string, width int) *Adder {
	if width < 1 || width > 64 {
		panic(errors.Errorf("%s: unsupported adder width %d", name, width))
	}
	a := &Adder{Chip: hw.MakeChip(nameOr(name, "Adder"+strconv.Itoa(width)))}
	a.A = hw.NewWidePoint(a.Sub(pA), width)
	a.B = hw.NewWidePoint(a.Sub(pB), width)
	a.Cin = hw.NewSignalPoint(a.Sub("cin"))
	a.Sum = hw.NewWidePoint(a.Sub("sum"), width).AsOutput(hw.AllFloating(width))
	a.Cout = hw.NewSignalPoint(a.Sub("cout")).AsOutput(hw.AllFloating(1))
	return a
}

// Generate implements logicsim.Component.
//
func (a *Adder) Generate() {
	w := a.Sum.Width()
	va, errA := a.A.Get().Uint64()
	vb, errB := a.B.Get().Uint64()
	vc, errC := a.Cin.Get().Uint64()
	if errA != nil || errB != nil || errC != nil {
		a.Sum.AsOutput(hw.AllFloating(w))
		a.Cout.AsOutput(hw.AllFloating(1))
		return
	}
	s, c := bits.Add64(va, vb, vc)
	if w < 64 {
		c = s >> uint(w) & 1
	}
	a.Sum.AsOutput(hw.FromUint64(s, w))
	a.Cout.AsOutput(hw.FromUint64(c, 1))
}
