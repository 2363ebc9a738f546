// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	hw "github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

const pSel = "sel"

// Mux is an N-bits multiplexer.
//
//	Points: A[width], B[width], Sel (in), Out[width] (out)
//	Function: if Sel == 0 { Out = A } else { Out = B }
//
// Out is all Floating while Sel is neither Low nor High.
//
type Mux struct {
	hw.Chip
	A, B, Sel, Out *hw.Point
}

// NewMux returns a new multiplexer.
//
func NewMux(name string, width int) *Mux {
	m := &Mux{Chip: hw.MakeChip(nameOr(name, "MUX"))}
	m.A = hw.NewWidePoint(m.Sub(pA), width)
	m.B = hw.NewWidePoint(m.Sub(pB), width)
	m.Sel = hw.NewSignalPoint(m.Sub(pSel))
	m.Out = hw.NewWidePoint(m.Sub(pOut), width).AsOutput(hw.AllFloating(width))
	return m
}

// Generate implements logicsim.Component.
//
func (m *Mux) Generate() {
	switch {
	case m.Sel.IsLow():
		m.Out.AsOutput(m.A.Get())
	case m.Sel.IsHigh():
		m.Out.AsOutput(m.B.Get())
	default:
		m.Out.AsOutput(hw.AllFloating(m.Out.Width()))
	}
}

func busPoints(c *hw.Chip, prefix string, widths []int) ([]*hw.Point, int) {
	ps := make([]*hw.Point, len(widths))
	total := 0
	for i, w := range widths {
		ps[i] = hw.NewWidePoint(c.Sub(prefix+"_"+strconv.Itoa(i)), w)
		total += w
	}
	if total == 0 {
		panic(errors.Errorf("%s: empty bus", c.Name()))
	}
	return ps, total
}

// Splitter splits a wide bus into narrower ones. Narrow[0] receives the most
// significant bits of Wide.
//
//	Points: Wide[sum(widths)] (in), Narrow[i][widths[i]] (out)
//
type Splitter struct {
	hw.Chip
	Wide   *hw.Point
	Narrow []*hw.Point
}

// NewSplitter returns a new splitter with narrow buses of the given widths.
//
func NewSplitter(name string, widths ...int) *Splitter {
	s := &Splitter{Chip: hw.MakeChip(nameOr(name, "SPLIT"))}
	var total int
	s.Narrow, total = busPoints(&s.Chip, "narrow", widths)
	for _, n := range s.Narrow {
		n.AsOutput(hw.AllFloating(n.Width()))
	}
	s.Wide = hw.NewWidePoint(s.Sub("wide"), total)
	return s
}

// Generate implements logicsim.Component.
//
func (s *Splitter) Generate() {
	v := s.Wide.Get()
	for _, n := range s.Narrow {
		w := n.Width()
		n.AsOutput(v[:w])
		v = v[w:]
	}
}

// Merger joins narrow buses into a wider one. Narrow[0] provides the most
// significant bits of Wide.
//
//	Points: Narrow[i][widths[i]] (in), Wide[sum(widths)] (out)
//
type Merger struct {
	hw.Chip
	Narrow []*hw.Point
	Wide   *hw.Point
}

// NewMerger returns a new merger of narrow buses of the given widths.
//
func NewMerger(name string, widths ...int) *Merger {
	m := &Merger{Chip: hw.MakeChip(nameOr(name, "MERGE"))}
	var total int
	m.Narrow, total = busPoints(&m.Chip, "narrow", widths)
	m.Wide = hw.NewWidePoint(m.Sub("wide"), total).AsOutput(hw.AllFloating(total))
	return m
}

// Generate implements logicsim.Component.
//
func (m *Merger) Generate() {
	v := make(hw.Value, 0, m.Wide.Width())
	for _, n := range m.Narrow {
		v = append(v, n.Get()...)
	}
	m.Wide.AsOutput(v)
}
