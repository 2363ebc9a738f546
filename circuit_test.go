package logicsim_test

import (
	"bytes"
	"log/slog"
	"testing"

	hw "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwlib"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuit_halfAdder(t *testing.T) {
	a, b := hwlib.NewSource("a", 1), hwlib.NewSource("b", 1)
	and, xor := hwlib.NewAnd("", 1), hwlib.NewXor("", 1)
	c := hw.NewCircuit("half_adder")
	c.Add(a, b, and, xor).
		Connect(a.Out, and.A).Connect(b.Out, and.B).
		Connect(a.Out, xor.A).Connect(b.Out, xor.B)

	for _, va := range []hw.State{hw.Low, hw.High} {
		for _, vb := range []hw.State{hw.Low, hw.High} {
			a.Drive(hw.MakeValue(va))
			b.Drive(hw.MakeValue(vb))
			ok, n := c.Step(c.Limit())
			require.True(t, ok)
			assert.Less(t, n, c.Limit())
			sum, carry := va != vb, va == hw.High && vb == hw.High
			assert.Equal(t, sum, xor.Out.IsHigh(), "sum %v %v", va, vb)
			assert.Equal(t, carry, and.Out.IsHigh(), "carry %v %v", va, vb)
		}
	}
}

func TestCircuit_Step(t *testing.T) {
	src := hwlib.NewSource("src", 1).Low()
	inv1, inv2 := hwlib.NewInverter("inv1", 1), hwlib.NewInverter("inv2", 1)
	c := hw.NewCircuit("chain")
	c.Add(src, inv1, inv2).Connect(src.Out, inv1.In).Connect(inv1.Out, inv2.In)

	ok, n := c.Step(10)
	require.True(t, ok)
	// one iteration per gate, plus one to observe that nothing changes
	assert.Equal(t, 3, n)
	assert.True(t, inv2.Out.IsLow())

	ok, n = c.Step(10)
	assert.True(t, ok)
	assert.Equal(t, 1, n, "already settled")

	assert.Panics(t, func() { c.Step(0) })
}

func TestCircuit_oscillation(t *testing.T) {
	src := hwlib.NewSource("seed", 1).Low()
	inv := hwlib.NewInverter("", 1)
	var results []hw.StepResult
	c := hw.NewCircuit("ring", hw.WithStepLimit(25), hw.WithObserver(func(r hw.StepResult) {
		results = append(results, r)
	}))
	c.Add(src, inv).Connect(src.Out, inv.In)
	require.NoError(t, c.Settle())

	// close the loop
	require.NoError(t, c.Disconnect(src.Out, inv.In))
	c.Connect(inv.Out, inv.In)

	ok, n := c.Step(17)
	assert.False(t, ok)
	assert.Equal(t, 17, n)

	err := c.Settle()
	assert.Equal(t, hw.ErrUnstable, errors.Cause(err))
	assert.EqualError(t, err, "ring: after 25 iterations: circuit did not settle")

	require.Len(t, results, 3)
	assert.Equal(t, hw.StepResult{Circuit: "ring", Settled: false, Iterations: 17}, results[1])
	assert.Equal(t, hw.StepResult{Circuit: "ring", Settled: false, Iterations: 25}, results[2])
}

func TestCircuit_Add(t *testing.T) {
	g := hwlib.NewAnd("", 1)
	c := hw.NewCircuit("c")
	c.Add(g, g, c).Add(g)
	assert.Len(t, c.Parts(), 1)
	assert.Equal(t, hw.DefaultStepLimit, c.Limit())

	a, b := hw.NewPoint("a"), hw.NewPoint("b")
	err := c.Disconnect(a, b)
	assert.Equal(t, hw.ErrNotConnected, errors.Cause(err))
	assert.Contains(t, err.Error(), "c: ")
}

func TestCircuit_composite(t *testing.T) {
	ha := hwlib.NewHalfAdder("ha")
	c := hw.NewCircuit("c")
	c.Add(ha)
	cs := hw.Components(c)
	require.Len(t, cs, 4)
	assert.Equal(t, hw.Component(c), cs[0])
	assert.Equal(t, hw.Component(ha), cs[1])
	assert.Len(t, hw.Wirings(c), 4)
}

func TestCircuit_logger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	o1 := hwlib.NewConstant("one", hw.AllHigh(1))
	o2 := hwlib.NewConstant("zero", hw.AllLow(1))
	c := hw.NewCircuit("short", hw.WithLogger(log))
	c.Add(o1, o2).Connect(o1.Out, o2.Out)
	require.NoError(t, c.Settle())

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG msg=\"circuit settled\" circuit=short iterations=1")
	assert.Contains(t, out, "level=WARN msg=\"conflicting drivers\" circuit=short drivers=\"[one.out zero.out]\"")
}

// Evaluation order must not matter.
func TestCircuit_order(t *testing.T) {
	build := func(reverse bool) (*hw.Circuit, *hwlib.Gate) {
		a, b := hwlib.NewSource("a", 2).DriveUint64(2), hwlib.NewSource("b", 2).DriveUint64(3)
		and, or := hwlib.NewAnd("", 2), hwlib.NewOr("", 2)
		c := hw.NewCircuit("c")
		parts := []hw.Component{a, b, and, or}
		if reverse {
			parts = []hw.Component{or, and, b, a}
		}
		c.Add(parts...).
			Connect(a.Out, and.A).Connect(b.Out, and.B).
			Connect(and.Out, or.A).Connect(a.Out, or.B)
		return c, or
	}
	c1, or1 := build(false)
	c2, or2 := build(true)
	ok1, n1 := c1.Step(10)
	ok2, n2 := c2.Step(10)
	assert.True(t, ok1 && ok2)
	assert.Equal(t, n1, n2)
	assert.Equal(t, or1.Out.Get(), or2.Out.Get())
	assert.Equal(t, "10", or1.Out.Get().String())
}

func TestCircuit_workers(t *testing.T) {
	run := func(opts ...hw.Option) []string {
		a, b := hwlib.NewSource("a", 8), hwlib.NewSource("b", 8)
		cin := hwlib.NewConstant("cin", hw.AllLow(1))
		add := hwlib.NewRippleAdder("", 8)
		c := hw.NewCircuit("adder", opts...)
		c.Add(a, b, cin, add).
			Connect(a.Out, add.A).Connect(b.Out, add.B).Connect(cin.Out, add.CarryIn)
		var out []string
		for _, n := range []uint64{0, 1, 127, 200, 255} {
			a.DriveUint64(n)
			b.DriveUint64(n * 3)
			require.NoError(t, c.Settle())
			out = append(out, add.CarryOut.Get().String()+add.Sum.Get().String())
		}
		return out
	}
	want := []string{"000000000", "000000100", "011111100", "100100000", "111111100"}
	assert.Equal(t, want, run())
	assert.Equal(t, want, run(hw.WithWorkers(4)))
	assert.Equal(t, want, run(hw.WithWorkers(0)))
}
