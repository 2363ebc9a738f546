// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/logicsim"
)

// add returns v + delta mod 2^width. If v is not concrete, the result is all
// Floating.
//
func add(v hw.Value, delta int64) hw.Value {
	n, err := v.Uint64()
	if err != nil {
		return hw.AllFloating(v.Width())
	}
	return hw.FromUint64(n+uint64(delta), v.Width())
}

// Counter is an N-bits synchronous binary counter (74x161).
//
//	Points: Input[width], NReset, NLoad, CEP, CET, Clock (in), Output[width], TC (out)
//	Function:
//		if NReset == 0 { Output = 0 }
//		else if NLoad == 0 { on rising edge: Output = Input }
//		else if CEP == 1 && CET == 1 { on rising edge: Output++ }
//		TC = NReset == 1 && Output == 1...1 ? CET : 0
//
type Counter struct {
	hw.Chip
	Input, Output *hw.Point
	NReset, NLoad *hw.Point
	CEP, CET      *hw.Point
	Clock         *hw.Trigger
	TC            *hw.Point
}

// NewCounter returns a new counter. Its output is all Floating until reset or
// loaded.
//
func NewCounter(name string, width int) *Counter {
	c := &Counter{Chip: hw.MakeChip(nameOr(name, "161"))}
	c.Input = hw.NewWidePoint(c.Sub("input"), width)
	c.Output = hw.NewWidePoint(c.Sub("output"), width).AsOutput(hw.AllFloating(width))
	c.NReset = hw.NewSignalPoint(c.Sub("/reset"))
	c.NLoad = hw.NewSignalPoint(c.Sub("/ie"))
	c.CEP = hw.NewSignalPoint(c.Sub("cep"))
	c.CET = hw.NewSignalPoint(c.Sub("cet"))
	c.Clock = hw.NewTrigger(c.Sub("clock"))
	c.TC = hw.NewSignalPoint(c.Sub("tc")).AsOutput(hw.AllFloating(1))
	return c
}

// Generate implements logicsim.Component.
//
func (c *Counter) Generate() {
	w := c.Output.Width()
	tc := hw.AllLow(1)
	if c.NReset.IsLow() {
		c.Output.AsOutput(hw.AllLow(w))
	} else {
		switch {
		case c.NLoad.IsLow():
			if c.Clock.Triggered() {
				c.Output.AsOutput(c.Input.Get())
			}
		case c.CEP.IsHigh() && c.CET.IsHigh():
			if c.Clock.Triggered() {
				c.Output.AsOutput(add(c.Output.Get(), 1))
			}
		}
		if c.Output.Get().Is(hw.High) {
			tc = c.CET.Get()
		}
	}
	c.TC.AsOutput(tc)
	c.Clock.Tick()
}

// UpDownCounter is an N-bits synchronous up/down binary counter (74x193).
//
//	Points: Input[width], Reset, NLoad, CPU, CPD (in), Output[width], NTCU, NTCD (out)
//	Function:
//		if Reset == 1 { Output = 0 }
//		else if NLoad == 0 { Output = Input }
//		else if rising edge on CPU && CPD == 1 { Output++ }
//		else if rising edge on CPD && CPU == 1 { Output-- }
//		NTCU = Output == 1...1 ? CPU : 1
//		NTCD = Output == 0...0 ? CPD : 1
//
// Counting up wins if both clocks rise at the same time.
//
type UpDownCounter struct {
	hw.Chip
	Input, Output *hw.Point
	Reset, NLoad  *hw.Point
	CPU, CPD      *hw.Trigger
	NTCU, NTCD    *hw.Point
}

// NewUpDownCounter returns a new up/down counter. Its output is all Floating
// until reset or loaded.
//
func NewUpDownCounter(name string, width int) *UpDownCounter {
	c := &UpDownCounter{Chip: hw.MakeChip(nameOr(name, "193"))}
	c.Input = hw.NewWidePoint(c.Sub("input"), width)
	c.Output = hw.NewWidePoint(c.Sub("output"), width).AsOutput(hw.AllFloating(width))
	c.Reset = hw.NewSignalPoint(c.Sub("reset"))
	c.NLoad = hw.NewSignalPoint(c.Sub("/ie"))
	c.CPU = hw.NewTrigger(c.Sub("cpu"))
	c.CPD = hw.NewTrigger(c.Sub("cpd"))
	c.NTCU = hw.NewSignalPoint(c.Sub("/tcu")).AsOutput(hw.AllFloating(1))
	c.NTCD = hw.NewSignalPoint(c.Sub("/tcd")).AsOutput(hw.AllFloating(1))
	return c
}

// Generate implements logicsim.Component.
//
func (c *UpDownCounter) Generate() {
	w := c.Output.Width()
	switch {
	case c.Reset.IsHigh():
		c.Output.AsOutput(hw.AllLow(w))
	case c.NLoad.IsLow():
		c.Output.AsOutput(c.Input.Get())
	case c.CPU.Triggered() && c.CPD.IsHigh():
		c.Output.AsOutput(add(c.Output.Get(), 1))
	case c.CPU.IsHigh() && c.CPD.Triggered():
		c.Output.AsOutput(add(c.Output.Get(), -1))
	}

	out := c.Output.Get()
	tcu, tcd := hw.AllHigh(1), hw.AllHigh(1)
	if out.Is(hw.High) {
		tcu = c.CPU.Get()
	}
	if out.Is(hw.Low) {
		tcd = c.CPD.Get()
	}
	c.NTCU.AsOutput(tcu)
	c.NTCD.AsOutput(tcd)

	c.CPU.Tick()
	c.CPD.Tick()
}
