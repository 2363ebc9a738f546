// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"fmt"

	hw "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwlib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type countFlags struct {
	width  int
	load   uint64
	pulses int
	down   bool
}

func newCountCmd(g *globalFlags) *cobra.Command {
	f := &countFlags{}
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Load a counter and clock it",
		Long: `Load a value into a binary counter, then send clock pulses and print the
counter output and terminal count after each pulse.

Counting up uses a 74x161 model, counting down a 74x193 model.`,
		Args: cobra.NoArgs,
		RunE: run(g, func(cmd *cobra.Command, _ []string, s *session) error {
			if f.width < 1 || f.width > 64 {
				return errors.Errorf("invalid counter width %d", f.width)
			}
			if f.pulses < 0 {
				return errors.Errorf("invalid pulse count %d", f.pulses)
			}
			if f.down {
				return countDown(cmd, s, f)
			}
			return countUp(cmd, s, f)
		}),
	}
	cmd.Flags().IntVarP(&f.width, "width", "w", 4, "counter width in bits")
	cmd.Flags().Uint64VarP(&f.load, "load", "l", 0, "initial counter value")
	cmd.Flags().IntVarP(&f.pulses, "pulses", "n", 1, "number of clock pulses")
	cmd.Flags().BoolVarP(&f.down, "down", "d", false, "count down")
	return cmd
}

// pulse drives clk Low, High, then Low again and settles c after each change.
//
func pulse(c *hw.Circuit, clk *hwlib.Source) error {
	for _, s := range []hw.State{hw.Low, hw.High, hw.Low} {
		clk.Drive(hw.MakeValue(s))
		if err := c.Settle(); err != nil {
			return err
		}
	}
	return nil
}

func countUp(cmd *cobra.Command, s *session, f *countFlags) error {
	w := cmd.OutOrStdout()
	c := s.circuit("count_up")
	cnt := hwlib.NewCounter("", f.width)
	in := hwlib.NewSource("in", f.width).DriveUint64(f.load)
	nLoad := hwlib.NewSource("/load", 1).Low()
	clk := hwlib.NewSource("clk", 1).Low()
	high := hwlib.NewConstant("vcc", hw.AllHigh(1))
	c.Add(cnt, in, nLoad, clk, high).
		Connect(in.Out, cnt.Input).
		Connect(nLoad.Out, cnt.NLoad).
		Connect(clk.Out, cnt.Clock.Point).
		Connect(high.Out, cnt.NReset).
		Connect(high.Out, cnt.CEP).
		Connect(high.Out, cnt.CET)

	if err := pulse(c, clk); err != nil {
		return err
	}
	nLoad.High()
	fmt.Fprintf(w, "load: %v tc=%v\n", cnt.Output.Get(), cnt.TC.Get())
	for i := 1; i <= f.pulses; i++ {
		if err := pulse(c, clk); err != nil {
			return err
		}
		fmt.Fprintf(w, "%4d: %v tc=%v\n", i, cnt.Output.Get(), cnt.TC.Get())
	}
	return nil
}

func countDown(cmd *cobra.Command, s *session, f *countFlags) error {
	w := cmd.OutOrStdout()
	c := s.circuit("count_down")
	cnt := hwlib.NewUpDownCounter("", f.width)
	in := hwlib.NewSource("in", f.width).DriveUint64(f.load)
	nLoad := hwlib.NewSource("/load", 1).Low()
	clk := hwlib.NewSource("clk", 1).Low()
	high := hwlib.NewConstant("vcc", hw.AllHigh(1))
	low := hwlib.NewConstant("gnd", hw.AllLow(1))
	c.Add(cnt, in, nLoad, clk, high, low).
		Connect(in.Out, cnt.Input).
		Connect(nLoad.Out, cnt.NLoad).
		Connect(low.Out, cnt.Reset).
		Connect(high.Out, cnt.CPU.Point).
		Connect(clk.Out, cnt.CPD.Point)

	if err := c.Settle(); err != nil {
		return err
	}
	nLoad.High()
	if err := c.Settle(); err != nil {
		return err
	}
	fmt.Fprintf(w, "load: %v /tcd=%v\n", cnt.Output.Get(), cnt.NTCD.Get())
	for i := 1; i <= f.pulses; i++ {
		if err := pulse(c, clk); err != nil {
			return err
		}
		fmt.Fprintf(w, "%4d: %v /tcd=%v\n", i, cnt.Output.Get(), cnt.NTCD.Get())
	}
	return nil
}
