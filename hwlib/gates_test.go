package hwlib_test

import (
	"testing"
	"testing/quick"

	hw "github.com/db47h/logicsim"
	hl "github.com/db47h/logicsim/hwlib"
	"github.com/stretchr/testify/assert"
)

func TestGates(t *testing.T) {
	data := []struct {
		name string
		gate func(string, int) *hl.Gate
		want string // outputs for 00, 01, 10, 11
	}{
		{"AND", hl.NewAnd, "0001"},
		{"NAND", hl.NewNand, "1110"},
		{"OR", hl.NewOr, "0111"},
		{"NOR", hl.NewNor, "1000"},
		{"XOR", hl.NewXor, "0110"},
		{"XNOR", hl.NewXnor, "1001"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			g := d.gate("", 4)
			assert.Equal(t, d.name, g.Name())
			g.A.Set(hw.MustParseValue("0011"))
			g.B.Set(hw.MustParseValue("0101"))
			g.Generate()
			assert.Equal(t, d.want, g.Out.Get().String())
		})
	}
}

func TestGates_undefined(t *testing.T) {
	g := hl.NewAnd("", 6)
	g.A.Set(hw.MustParseValue("F1Z!?0"))
	g.B.Set(hw.MustParseValue("1F?1Z!"))
	g.Generate()
	assert.Equal(t, "FF?!?!", g.Out.Get().String())

	// every non-concrete pair is undefined for every table
	for _, tt := range []*hl.TruthTable{hl.AndTable, hl.OrTable, hl.XorTable, hl.NandTable, hl.NorTable, hl.XnorTable} {
		for a := hw.State(0); a < hw.NumStates; a++ {
			for b := hw.State(0); b < hw.NumStates; b++ {
				if a.Concrete() && b.Concrete() {
					assert.True(t, tt[a][b].Concrete())
				} else {
					assert.False(t, tt[a][b].Concrete(), "%v %v", a, b)
				}
			}
		}
	}
}

func TestNewGate(t *testing.T) {
	imply := hl.NewGate("IMPLY", 1, hl.NewTruthTable(hw.High, hw.High, hw.Low, hw.High))
	for _, d := range []struct{ a, b, out string }{{"0", "0", "1"}, {"0", "1", "1"}, {"1", "0", "0"}, {"1", "1", "1"}} {
		imply.A.Set(hw.MustParseValue(d.a))
		imply.B.Set(hw.MustParseValue(d.b))
		imply.Generate()
		assert.Equal(t, d.out, imply.Out.Get().String(), "%s -> %s", d.a, d.b)
	}
}

func TestInverter(t *testing.T) {
	n := hl.NewInverter("", 6)
	assert.Equal(t, "NOT", n.Name())
	n.In.Set(hw.MustParseValue("01FZ!?"))
	n.Generate()
	assert.Equal(t, "10FF!?", n.Out.Get().String())

	n = hl.NewInverter("", 16)
	if err := quick.Check(func(v uint16) bool {
		n.In.Set(hw.FromUint64(uint64(v), 16))
		n.Generate()
		out, err := n.Out.Get().Uint64()
		return err == nil && uint16(out) == ^v
	}, nil); err != nil {
		t.Fatal(err)
	}
}
