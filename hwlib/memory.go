// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// ROM is a read-only memory with active low chip and output enables (28C256).
//
//	Points: Address[addressWidth], NCE, NOE (in), Data[dataWidth] (hiZ/out)
//	Function: if NCE == 0 && NOE == 0 { Data = content[Address] } else { Data = HighZ }
//
// While enabled with a non-concrete Address, Data is all Floating.
//
type ROM struct {
	hw.Chip
	Address, Data *hw.Point
	NCE, NOE      *hw.Point
	content       []uint64
}

// NewROM returns a new ROM filled with zeroes.
//
func NewROM(name string, dataWidth, addressWidth int) *ROM {
	if dataWidth < 1 || dataWidth > 64 {
		panic(errors.Errorf("%s: unsupported data width %d", name, dataWidth))
	}
	if addressWidth < 1 || addressWidth > 24 {
		panic(errors.Errorf("%s: unsupported address width %d", name, addressWidth))
	}
	r := &ROM{Chip: hw.MakeChip(nameOr(name, "ROM")), content: make([]uint64, 1<<uint(addressWidth))}
	r.Address = hw.NewWidePoint(r.Sub("address"), addressWidth)
	r.Data = hw.NewWidePoint(r.Sub("data"), dataWidth).AsHighZ()
	r.NCE = hw.NewSignalPoint(r.Sub("/ce"))
	r.NOE = hw.NewSignalPoint(r.Sub("/oe"))
	return r
}

// SetContent sets the ROM content. content must have exactly 2^addressWidth
// entries, all less than 2^dataWidth.
//
func (r *ROM) SetContent(content []uint64) error {
	if len(content) != len(r.content) {
		return errors.Errorf("%s: invalid content size %d, expected %d", r.Name(), len(content), len(r.content))
	}
	if dw := uint(r.Data.Width()); dw < 64 {
		for i, v := range content {
			if v >= 1<<dw {
				return errors.Errorf("%s: value %#x at address %#x out of range for %d bits data", r.Name(), v, i, dw)
			}
		}
	}
	copy(r.content, content)
	return nil
}

// Content returns a copy of the ROM content.
//
func (r *ROM) Content() []uint64 {
	c := make([]uint64, len(r.content))
	copy(c, r.content)
	return c
}

// Generate implements logicsim.Component.
//
func (r *ROM) Generate() {
	if !r.NCE.IsLow() || !r.NOE.IsLow() {
		r.Data.AsHighZ()
		return
	}
	a, err := r.Address.Get().Uint64()
	if err != nil {
		r.Data.AsOutput(hw.AllFloating(r.Data.Width()))
		return
	}
	r.Data.AsOutput(hw.FromUint64(r.content[a], r.Data.Width()))
}
