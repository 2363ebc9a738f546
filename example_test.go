package logicsim_test

import (
	"fmt"

	hw "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwlib"
)

// A half adder built from a XOR and an AND gate.
func Example() {
	a, b := hwlib.NewSource("a", 1), hwlib.NewSource("b", 1)
	xor, and := hwlib.NewXor("", 1), hwlib.NewAnd("", 1)

	c := hw.NewCircuit("half_adder")
	c.Add(a, b, xor, and).
		Connect(a.Out, xor.A).Connect(b.Out, xor.B).
		Connect(a.Out, and.A).Connect(b.Out, and.B)

	for n := uint64(0); n < 4; n++ {
		v := hw.FromUint64(n, 2)
		a.Drive(v[:1])
		b.Drive(v[1:])
		if err := c.Settle(); err != nil {
			panic(err)
		}
		fmt.Println(v, "sum:", xor.Out.Get(), "carry:", and.Out.Get())
	}

	// Output:
	// 00 sum: 0 carry: 0
	// 01 sum: 1 carry: 0
	// 10 sum: 1 carry: 0
	// 11 sum: 0 carry: 1
}
