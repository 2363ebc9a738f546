// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/logicsim"
)

// Source is a settable input for a circuit. It starts released (HighZ).
//
//	Points: Out[width] (out)
//	Function: Out = the last driven value, or HighZ if released.
//
// Drive, DriveUint64 and Release update Out immediately. Other points only see
// the change after the next Circuit.Step.
//
type Source struct {
	hw.Chip
	Out   *hw.Point
	value hw.Value
}

// NewSource returns a new released source.
//
func NewSource(name string, width int) *Source {
	s := &Source{Chip: hw.MakeChip(nameOr(name, "Input"))}
	s.Out = hw.NewWidePoint(s.Sub(pOut), width).AsHighZ()
	return s
}

// Drive sets the value driven by s.
//
func (s *Source) Drive(v hw.Value) *Source {
	s.value = s.Out.AsOutput(v).Get()
	return s
}

// DriveUint64 drives the binary representation of n (mod 2^width).
//
func (s *Source) DriveUint64(n uint64) *Source {
	return s.Drive(hw.FromUint64(n, s.Out.Width()))
}

// High drives all High.
//
func (s *Source) High() *Source { return s.Drive(hw.AllHigh(s.Out.Width())) }

// Low drives all Low.
//
func (s *Source) Low() *Source { return s.Drive(hw.AllLow(s.Out.Width())) }

// Release stops driving.
//
func (s *Source) Release() *Source {
	s.value = nil
	s.Out.AsHighZ()
	return s
}

// Generate implements logicsim.Component.
//
func (s *Source) Generate() {
	if s.value == nil {
		s.Out.AsHighZ()
		return
	}
	s.Out.AsOutput(s.value)
}

// Constant drives a fixed value.
//
//	Points: Out (out)
//
type Constant struct {
	hw.Chip
	Out *hw.Point
}

// NewConstant returns a new constant driving v.
//
func NewConstant(name string, v hw.Value) *Constant {
	c := &Constant{Chip: hw.MakeChip(nameOr(name, "Constant"))}
	c.Out = hw.NewWidePoint(c.Sub(pOut), v.Width()).AsOutput(v)
	return c
}
