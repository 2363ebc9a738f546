// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"fmt"

	hw "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwlib"
	"github.com/spf13/cobra"
)

func newAdderCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "adder",
		Short: "Print half and full adder truth tables",
		Args:  cobra.NoArgs,
		RunE:  run(g, runAdder),
	}
}

// truthTable drives every combination of srcs, settles c and prints the
// inputs followed by outs.
//
func truthTable(cmd *cobra.Command, c *hw.Circuit, srcs []*hwlib.Source, outs []*hw.Point) error {
	w := cmd.OutOrStdout()
	for n := uint64(0); n < 1<<uint(len(srcs)); n++ {
		in := hw.FromUint64(n, len(srcs))
		for i, b := range in {
			srcs[i].Drive(hw.MakeValue(b))
		}
		if err := c.Settle(); err != nil {
			return err
		}
		for _, b := range in {
			fmt.Fprintf(w, "%v ", b)
		}
		fmt.Fprint(w, "|")
		for _, o := range outs {
			fmt.Fprintf(w, " %v", o.Get())
		}
		fmt.Fprintln(w)
	}
	return nil
}

func runAdder(cmd *cobra.Command, _ []string, s *session) error {
	w := cmd.OutOrStdout()
	a, b, cin := hwlib.NewSource("a", 1), hwlib.NewSource("b", 1), hwlib.NewSource("cin", 1)

	ha := hwlib.NewHalfAdder("")
	c := s.circuit("half_adder")
	c.Add(a, b, ha).Connect(a.Out, ha.A).Connect(b.Out, ha.B)
	fmt.Fprintln(w, "HalfAdder\na b | s c")
	if err := truthTable(cmd, c, []*hwlib.Source{a, b}, []*hw.Point{ha.S, ha.C}); err != nil {
		return err
	}

	fa := hwlib.NewFullAdder("")
	c = s.circuit("full_adder")
	c.Add(a, b, cin, fa).Connect(a.Out, fa.A).Connect(b.Out, fa.B).Connect(cin.Out, fa.Cin)
	fmt.Fprintln(w, "\nFullAdder\na b cin | s cout")
	return truthTable(cmd, c, []*hwlib.Source{a, b, cin}, []*hw.Point{fa.S, fa.Cout})
}
