package hwlib_test

import (
	"testing"

	hw "github.com/db47h/logicsim"
	hl "github.com/db47h/logicsim/hwlib"
	"github.com/db47h/logicsim/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestROM_SetContent(t *testing.T) {
	r := hl.NewROM("", 4, 2)
	assert.Equal(t, []uint64{0, 0, 0, 0}, r.Content())

	assert.Error(t, r.SetContent([]uint64{1, 2, 3}))
	assert.Error(t, r.SetContent([]uint64{1, 2, 3, 4, 5}))
	assert.Error(t, r.SetContent([]uint64{1, 2, 16, 4}))
	assert.Equal(t, []uint64{0, 0, 0, 0}, r.Content(), "failed SetContent leaves content unchanged")

	content := []uint64{1, 2, 15, 4}
	require.NoError(t, r.SetContent(content))
	content[0] = 7
	assert.Equal(t, []uint64{1, 2, 15, 4}, r.Content())

	wide := hl.NewROM("", 64, 1)
	assert.NoError(t, wide.SetContent([]uint64{^uint64(0), 0}))

	assert.Panics(t, func() { hl.NewROM("", 0, 4) })
	assert.Panics(t, func() { hl.NewROM("", 8, 0) })
}

func TestROM(t *testing.T) {
	r := hl.NewROM("", 4, 2)
	require.NoError(t, r.SetContent([]uint64{1, 2, 15, 4}))
	r.Address.Set(hw.MustParseValue("10"))

	data := []struct {
		nce, noe, out string
	}{
		{"0", "0", "1111"},
		{"1", "0", "ZZZZ"},
		{"0", "1", "ZZZZ"},
		{"1", "1", "ZZZZ"},
		{"F", "0", "ZZZZ"},
	}
	for _, d := range data {
		r.NCE.Set(hw.MustParseValue(d.nce))
		r.NOE.Set(hw.MustParseValue(d.noe))
		r.Generate()
		assert.Equal(t, d.out, r.Data.Get().String(), "/ce=%s /oe=%s", d.nce, d.noe)
	}

	r.NCE.Set(hw.AllLow(1))
	r.NOE.Set(hw.AllLow(1))
	r.Address.Set(hw.MustParseValue("F0"))
	r.Generate()
	assert.Equal(t, "FFFF", r.Data.Get().String())
}

func TestROM_circuit(t *testing.T) {
	r := hl.NewROM("rom", 8, 3)
	content := []uint64{0x10, 0x21, 0x32, 0x43, 0x54, 0x65, 0x76, 0x87}
	require.NoError(t, r.SetContent(content))
	addr := hl.NewSource("addr", 3)
	gnd := hl.NewConstant("gnd", hw.AllLow(1))
	c := hw.NewCircuit("c")
	c.Add(r, addr, gnd).Connect(addr.Out, r.Address).Connect(gnd.Out, r.NCE).Connect(gnd.Out, r.NOE)
	for i, v := range hwtest.Inputs(3) {
		addr.Drive(v)
		hwtest.Settle(t, c)
		n, err := r.Data.Get().Uint64()
		require.NoError(t, err)
		assert.Equal(t, content[i], n)
	}
}
