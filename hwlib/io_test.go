package hwlib_test

import (
	"testing"

	hw "github.com/db47h/logicsim"
	hl "github.com/db47h/logicsim/hwlib"
	"github.com/db47h/logicsim/hwtest"
	"github.com/stretchr/testify/assert"
)

func TestSource(t *testing.T) {
	s := hl.NewSource("", 3)
	assert.Equal(t, "Input", s.Name())
	assert.Equal(t, hw.HighImpedance, s.Out.Direction())

	s.DriveUint64(10)
	assert.Equal(t, "010", s.Out.Get().String())
	s.Generate()
	assert.Equal(t, "010", s.Out.Get().String())
	assert.Equal(t, "111", s.High().Out.Get().String())
	assert.Equal(t, "000", s.Low().Out.Get().String())
	assert.Panics(t, func() { s.Drive(hw.AllLow(2)) })

	s.Release()
	s.Generate()
	assert.Equal(t, "ZZZ", s.Out.Get().String())
	assert.Equal(t, hw.HighImpedance, s.Out.Direction())
}

func TestConstant(t *testing.T) {
	k := hl.NewConstant("", hw.MustParseValue("101"))
	p := hw.NewWidePoint("p", 3)
	c := hw.NewCircuit("c")
	c.Add(k).Connect(k.Out, p)
	hwtest.Settle(t, c)
	assert.Equal(t, "101", p.Get().String())
}
