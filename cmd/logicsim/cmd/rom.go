// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"fmt"

	hw "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwlib"
	"github.com/db47h/logicsim/internal/romfile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newROMCmd(g *globalFlags) *cobra.Command {
	var address int
	cmd := &cobra.Command{
		Use:   "rom IMAGE.yaml",
		Short: "Read a ROM image through a simulated ROM",
		Long: `Program a ROM model with a YAML image and read it back through a circuit.

Image format:
  data_width: 8
  address_width: 4
  fill: 0xff
  content: [0x00, 0x01, 0x02]`,
		Args: cobra.ExactArgs(1),
		RunE: run(g, func(cmd *cobra.Command, args []string, s *session) error {
			img, err := romfile.Load(args[0])
			if err != nil {
				return err
			}
			if address >= img.Size() {
				return errors.Errorf("address %#x out of range", address)
			}
			return readROM(cmd, s, img, address)
		}),
	}
	cmd.Flags().IntVarP(&address, "address", "a", -1, "read a single address")
	return cmd
}

func readROM(cmd *cobra.Command, s *session, img *romfile.Image, address int) error {
	w := cmd.OutOrStdout()
	rom, err := img.ROM("")
	if err != nil {
		return err
	}
	c := s.circuit("rom")
	addr := hwlib.NewSource("addr", img.AddressWidth)
	low := hwlib.NewConstant("gnd", hw.AllLow(1))
	c.Add(rom, addr, low).
		Connect(addr.Out, rom.Address).
		Connect(low.Out, rom.NCE).
		Connect(low.Out, rom.NOE)

	first, last := 0, img.Size()-1
	if address >= 0 {
		first, last = address, address
	}
	for a := first; a <= last; a++ {
		addr.DriveUint64(uint64(a))
		if err := c.Settle(); err != nil {
			return err
		}
		d := rom.Data.Get()
		n, err := d.Uint64()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%#06x: %v %#x\n", a, d, n)
	}
	return nil
}
