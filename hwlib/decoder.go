// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	hw "github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// Decoder is an N to 2^N line decoder with active low outputs (74x139).
//
//	Points: Input[width], NEnable (in), Outputs[2^width] (out)
//	Function:
//		for i := range Outputs { Outputs[i] = 1 }
//		if NEnable == 0 { Outputs[Input] = 0 }
//
// While enabled with a non-concrete Input, all outputs are Floating.
//
type Decoder struct {
	hw.Chip
	Input   *hw.Point
	NEnable *hw.Point
	Outputs []*hw.Point
}

// NewDecoder returns a new decoder.
//
func NewDecoder(name string, width int) *Decoder {
	if width < 1 || width > 16 {
		panic(errors.Errorf("%s: unsupported decoder width %d", name, width))
	}
	d := &Decoder{Chip: hw.MakeChip(nameOr(name, "139"))}
	d.Input = hw.NewWidePoint(d.Sub("input"), width)
	d.NEnable = hw.NewSignalPoint(d.Sub("/ie"))
	d.Outputs = make([]*hw.Point, 1<<uint(width))
	for i := range d.Outputs {
		d.Outputs[i] = hw.NewSignalPoint(d.Sub("output_" + strconv.Itoa(i))).AsOutput(hw.AllFloating(1))
	}
	return d
}

// Generate implements logicsim.Component.
//
func (d *Decoder) Generate() {
	for _, o := range d.Outputs {
		o.AsOutput(hw.AllHigh(1))
	}
	if !d.NEnable.IsLow() {
		return
	}
	n, err := d.Input.Get().Uint64()
	if err != nil {
		for _, o := range d.Outputs {
			o.AsOutput(hw.AllFloating(1))
		}
		return
	}
	d.Outputs[n].AsOutput(hw.AllLow(1))
}
