// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for logicsim.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
// Active low control pins have their name prefixed with N, e.g. Register.NOE
// is the active low output enable of a Register.
//
package hwlib

import (
	hw "github.com/db47h/logicsim"
)

// common point names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pOut = "out"
)

func nameOr(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

// A TruthTable maps a pair of input bit states to an output bit state.
//
type TruthTable [hw.NumStates][hw.NumStates]hw.State

// undefined is the output for any input pair with a non-concrete state:
// Conflict wins over Undecided, which wins over everything else. Floating and
// HighZ inputs yield Floating.
//
func undefined(a, b hw.State) hw.State {
	switch {
	case a == hw.Conflict || b == hw.Conflict:
		return hw.Conflict
	case a == hw.Undecided || b == hw.Undecided:
		return hw.Undecided
	}
	return hw.Floating
}

// NewTruthTable returns a truth table for the given outputs for the concrete
// input pairs. All other input pairs are resolved to Floating, Conflict or
// Undecided.
//
func NewTruthTable(ll, lh, hl, hh hw.State) *TruthTable {
	var t TruthTable
	for a := range t {
		for b := range t[a] {
			t[a][b] = undefined(hw.State(a), hw.State(b))
		}
	}
	t[hw.Low][hw.Low] = ll
	t[hw.Low][hw.High] = lh
	t[hw.High][hw.Low] = hl
	t[hw.High][hw.High] = hh
	return &t
}

// Truth tables for common gates.
//
var (
	AndTable  = NewTruthTable(hw.Low, hw.Low, hw.Low, hw.High)
	NandTable = NewTruthTable(hw.High, hw.High, hw.High, hw.Low)
	OrTable   = NewTruthTable(hw.Low, hw.High, hw.High, hw.High)
	NorTable  = NewTruthTable(hw.High, hw.Low, hw.Low, hw.Low)
	XorTable  = NewTruthTable(hw.Low, hw.High, hw.High, hw.Low)
	XnorTable = NewTruthTable(hw.High, hw.Low, hw.Low, hw.High)
)

// Gate is an N-bits two input logic gate.
//
//	Points: A[width], B[width] (in), Out[width] (out)
//	Function: for i := range Out { Out[i] = table[A[i]][B[i]] }
//
type Gate struct {
	hw.Chip
	A, B, Out *hw.Point
	table     *TruthTable
}

// NewGate returns a new gate using the given truth table.
//
func NewGate(name string, width int, t *TruthTable) *Gate {
	g := &Gate{Chip: hw.MakeChip(name), table: t}
	g.A = hw.NewWidePoint(g.Sub(pA), width)
	g.B = hw.NewWidePoint(g.Sub(pB), width)
	g.Out = hw.NewWidePoint(g.Sub(pOut), width).AsOutput(hw.AllFloating(width))
	return g
}

// Generate implements logicsim.Component.
//
func (g *Gate) Generate() {
	a, b := g.A.Get(), g.B.Get()
	out := make(hw.Value, len(a))
	for i := range out {
		out[i] = g.table[a[i]][b[i]]
	}
	g.Out.AsOutput(out)
}

// NewAnd returns a AND gate.
//
func NewAnd(name string, width int) *Gate { return NewGate(nameOr(name, "AND"), width, AndTable) }

// NewNand returns a NAND gate.
//
func NewNand(name string, width int) *Gate { return NewGate(nameOr(name, "NAND"), width, NandTable) }

// NewOr returns a OR gate.
//
func NewOr(name string, width int) *Gate { return NewGate(nameOr(name, "OR"), width, OrTable) }

// NewNor returns a NOR gate.
//
func NewNor(name string, width int) *Gate { return NewGate(nameOr(name, "NOR"), width, NorTable) }

// NewXor returns a XOR gate.
//
func NewXor(name string, width int) *Gate { return NewGate(nameOr(name, "XOR"), width, XorTable) }

// NewXnor returns a XNOR gate.
//
func NewXnor(name string, width int) *Gate { return NewGate(nameOr(name, "XNOR"), width, XnorTable) }

// Inverter is an N-bits NOT gate.
//
//	Points: In[width] (in), Out[width] (out)
//	Function: for i := range Out { Out[i] = !In[i] }
//
type Inverter struct {
	hw.Chip
	In, Out *hw.Point
}

// NewInverter returns a new inverter.
//
func NewInverter(name string, width int) *Inverter {
	n := &Inverter{Chip: hw.MakeChip(nameOr(name, "NOT"))}
	n.In = hw.NewWidePoint(n.Sub(pIn), width)
	n.Out = hw.NewWidePoint(n.Sub(pOut), width).AsOutput(hw.AllFloating(width))
	return n
}

// Generate implements logicsim.Component.
//
func (n *Inverter) Generate() {
	out := n.In.Get()
	for i, s := range out {
		switch s {
		case hw.Low:
			out[i] = hw.High
		case hw.High:
			out[i] = hw.Low
		default:
			out[i] = undefined(s, s)
		}
	}
	n.Out.AsOutput(out)
}
