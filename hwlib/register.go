// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/logicsim"
)

// Buffer is an N-bits tri-state buffer (74x541).
//
//	Points: Input[width], NOE (in), Output[width] (hiZ/out)
//	Function: if NOE == 0 { Output = Input } else { Output = HighZ }
//
type Buffer struct {
	hw.Chip
	Input, Output *hw.Point
	NOE           *hw.Point
}

// NewBuffer returns a new tri-state buffer.
//
func NewBuffer(name string, width int) *Buffer {
	b := &Buffer{Chip: hw.MakeChip(nameOr(name, "541"))}
	b.Input = hw.NewWidePoint(b.Sub("input"), width)
	b.Output = hw.NewWidePoint(b.Sub("output"), width).AsHighZ()
	b.NOE = hw.NewSignalPoint(b.Sub("/oe"))
	return b
}

// Generate implements logicsim.Component.
//
func (b *Buffer) Generate() {
	if b.NOE.IsLow() {
		b.Output.AsOutput(b.Input.Get())
	} else {
		b.Output.AsHighZ()
	}
}

// Register is an N-bits D-type register with tri-state outputs (74x173).
//
//	Points: Input[width], NLoad, NOE, Reset, Clock (in), Output[width] (hiZ/out)
//	Function:
//		if NOE != 0 { Output = HighZ }
//		else if Reset == 1 { Output = 0 }
//		else if NLoad == 0 && rising edge on Clock { Output = Input }
//
// The register ignores Reset and Clock while its output is disabled and keeps
// its state, which is all Floating until the register is first reset or
// loaded.
//
type Register struct {
	hw.Chip
	Input, Output *hw.Point
	NLoad, NOE    *hw.Point
	Reset         *hw.Point
	Clock         *hw.Trigger
	state         hw.Value
}

// NewRegister returns a new register.
//
func NewRegister(name string, width int) *Register {
	r := &Register{Chip: hw.MakeChip(nameOr(name, "173")), state: hw.AllFloating(width)}
	r.Input = hw.NewWidePoint(r.Sub("input"), width)
	r.Output = hw.NewWidePoint(r.Sub("output"), width).AsHighZ()
	r.NLoad = hw.NewSignalPoint(r.Sub("/ie"))
	r.NOE = hw.NewSignalPoint(r.Sub("/oe"))
	r.Reset = hw.NewSignalPoint(r.Sub("reset"))
	r.Clock = hw.NewTrigger(r.Sub("clock"))
	return r
}

// State returns the current register state.
//
func (r *Register) State() hw.Value { return r.state.Clone() }

// Generate implements logicsim.Component.
//
func (r *Register) Generate() {
	if r.NOE.IsLow() {
		switch {
		case r.Reset.IsHigh():
			r.state = hw.AllLow(r.Output.Width())
		case r.NLoad.IsLow() && r.Clock.Triggered():
			r.state = r.Input.Get()
		}
		r.Output.AsOutput(r.state)
	} else {
		r.Output.AsHighZ()
	}
	r.Clock.Tick()
}
