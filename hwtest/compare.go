// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	hw "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwlib"
	"github.com/stretchr/testify/require"
)

// maxExhaustive is the maximum total input width for which ComparePart tests
// all input combinations. Above it, inputs are picked at random.
//
const maxExhaustive = 12

// A Part is a component under test together with its input and output
// points, in a fixed order.
//
type Part struct {
	hw.Component
	In, Out []*hw.Point
}

func widths(ps []*hw.Point) []int {
	ws := make([]int, len(ps))
	for i, p := range ps {
		ws[i] = p.Width()
	}
	return ws
}

// Split splits the total(widths) lsbs of n into values of the given widths.
// The first value receives the most significant bits.
//
func Split(n uint64, widths []int) []hw.Value {
	vs := make([]hw.Value, len(widths))
	for i := len(widths) - 1; i >= 0; i-- {
		w := widths[i]
		vs[i] = hw.FromUint64(n, w)
		if w >= 64 {
			n = 0
		} else {
			n >>= uint(w)
		}
	}
	return vs
}

// Inputs returns all the concrete values of the given width in ascending
// order.
//
func Inputs(width int) []hw.Value {
	vs := make([]hw.Value, 1<<uint(width))
	for i := range vs {
		vs[i] = hw.FromUint64(uint64(i), width)
	}
	return vs
}

// ForEachInput calls fn with every combination of concrete inputs of the given
// widths if their total width is small enough. Otherwise, fn is called with
// all inputs Low, all inputs High, then with 2^12 random combinations.
//
func ForEachInput(widths []int, fn func(in []hw.Value)) {
	total := 0
	for _, w := range widths {
		total += w
	}
	if total <= maxExhaustive {
		for n := uint64(0); n < 1<<uint(total); n++ {
			fn(Split(n, widths))
		}
		return
	}

	all := func(s hw.State) []hw.Value {
		vs := make([]hw.Value, len(widths))
		for i, w := range widths {
			vs[i] = hw.Fill(w, s)
		}
		return vs
	}
	fn(all(hw.Low))
	fn(all(hw.High))
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 1<<maxExhaustive; i++ {
		vs := make([]hw.Value, len(widths))
		for j, w := range widths {
			v := make(hw.Value, w)
			for k := range v {
				v[k] = hw.State(rnd.Intn(2))
			}
			vs[j] = v
		}
		fn(vs)
	}
}

func inputString(ps []*hw.Point, vs []hw.Value) string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name())
		b.WriteRune('=')
		b.WriteString(vs[i].String())
	}
	return b.String()
}

// ComparePart takes two parts and compares their outputs given the same inputs.
// Both parts must have the same number of inputs and outputs, with matching
// widths.
//
func ComparePart(t testing.TB, p1, p2 Part) {
	t.Helper()

	require.Equal(t, widths(p1.In), widths(p2.In), "input widths")
	require.Equal(t, widths(p1.Out), widths(p2.Out), "output widths")

	c := hw.NewCircuit("compare")
	c.Add(p1.Component, p2.Component)
	srcs := make([]*hwlib.Source, len(p1.In))
	for i, p := range p1.In {
		srcs[i] = hwlib.NewSource("in"+strconv.Itoa(i), p.Width())
		c.Add(srcs[i])
		c.Connect(srcs[i].Out, p)
		c.Connect(srcs[i].Out, p2.In[i])
	}

	start := time.Now()
	count := 0
	ForEachInput(widths(p1.In), func(in []hw.Value) {
		for i, v := range in {
			srcs[i].Drive(v)
		}
		Settle(t, c)
		count++
		for i, o := range p1.Out {
			ex, got := o.Get(), p2.Out[i].Get()
			if !ex.Equal(got) {
				t.Fatalf("\nInputs %s\nExpected %s=%v\nGot %s=%v", inputString(p1.In, in), o.Name(), ex, p2.Out[i].Name(), got)
			}
		}
	})
	t.Logf("%d components. %d input combinations in %v", len(hw.Components(c)), count, time.Since(start))
}
