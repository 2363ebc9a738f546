// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"testing"

	hw "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwlib"
	"github.com/stretchr/testify/require"
)

// Settle settles c and fails the test if it does not converge.
//
func Settle(t testing.TB, c *hw.Circuit) {
	t.Helper()
	require.NoError(t, c.Settle())
}

// Rise drives clk Low, then High, settling c after each change.
//
func Rise(t testing.TB, c *hw.Circuit, clk *hwlib.Source) {
	t.Helper()
	clk.Low()
	Settle(t, c)
	clk.High()
	Settle(t, c)
}

// Pulse drives clk Low, High, then Low again, settling c after each change.
//
func Pulse(t testing.TB, c *hw.Circuit, clk *hwlib.Source) {
	t.Helper()
	Rise(t, c, clk)
	clk.Low()
	Settle(t, c)
}

// Edge primes tr with a pending rising edge: the next call to tr.Triggered
// returns true. tr must be an Input.
//
func Edge(tr *hw.Trigger) {
	tr.Set(hw.AllLow(1))
	tr.Tick()
	tr.Set(hw.AllHigh(1))
}

// Level sets tr to s without a pending edge.
//
func Level(tr *hw.Trigger, s hw.State) {
	tr.Set(hw.MakeValue(s))
	tr.Tick()
}
