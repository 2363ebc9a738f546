package logicsim_test

import (
	"testing"

	hw "github.com/db47h/logicsim"
	"github.com/stretchr/testify/assert"
)

func TestPoint_width(t *testing.T) {
	p := hw.NewWidePoint("p", 4)
	assert.Equal(t, "FFFF", p.Get().String())
	assert.Panics(t, func() { p.Set(hw.AllLow(3)) })
	assert.Panics(t, func() { p.AsOutput(hw.AllLow(5)) })
	assert.Panics(t, func() { hw.NewWidePoint("bad", 0) })

	// a single Floating bit is widened
	p.Set(hw.AllLow(4))
	p.Set(hw.AllFloating(1))
	assert.Equal(t, "FFFF", p.Get().String())

	free := hw.NewPoint("free")
	assert.Equal(t, 1, free.Width())
	free.Set(hw.MustParseValue("101"))
	assert.Equal(t, 3, free.Width())
	assert.Equal(t, "101", free.Get().String())
}

func TestPoint_Set(t *testing.T) {
	p := hw.NewSignalPoint("p")
	assert.Equal(t, hw.Input, p.Direction())
	p.Set(hw.AllHigh(1))
	assert.True(t, p.IsHigh())

	p.AsOutput(hw.AllLow(1))
	p.Set(hw.AllHigh(1))
	assert.True(t, p.IsLow(), "Set on an output")
	assert.Equal(t, hw.Output, p.Direction())

	p.AsHighZ()
	p.Set(hw.AllHigh(1))
	assert.Equal(t, "Z", p.Get().String(), "Set on a HighZ point")
	assert.False(t, p.IsHigh() || p.IsLow())

	p.AsInput()
	assert.Equal(t, "Z", p.Get().String())
	p.Set(hw.AllHigh(1))
	assert.True(t, p.IsHigh())
}

func TestPoint_Get(t *testing.T) {
	p := hw.NewWidePoint("p", 2).AsOutput(hw.AllLow(2))
	v := p.Get()
	v[0] = hw.High
	assert.Equal(t, "00", p.Get().String())

	src := hw.AllLow(2)
	p.AsOutput(src)
	src[1] = hw.High
	assert.Equal(t, "00", p.Get().String())
	assert.Equal(t, "<p> out 00", p.String())
	assert.Equal(t, "hiZ", hw.HighImpedance.String())
}

func TestTrigger(t *testing.T) {
	tr := hw.NewTrigger("clk")
	tr.Set(hw.AllHigh(1))
	assert.False(t, tr.Triggered(), "High without prior Low")
	tr.Tick()

	tr.Set(hw.AllLow(1))
	assert.False(t, tr.Triggered())
	tr.Tick()

	// holding the clock High fires only on the first evaluation
	tr.Set(hw.AllHigh(1))
	fired := 0
	for i := 0; i < 10; i++ {
		if tr.Triggered() {
			fired++
		}
		tr.Tick()
	}
	assert.Equal(t, 1, fired)

	// Floating is not Low
	tr.Set(hw.AllFloating(1))
	tr.Tick()
	tr.Set(hw.AllHigh(1))
	assert.False(t, tr.Triggered())
}
