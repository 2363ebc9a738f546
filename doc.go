// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package logicsim provides a gate level digital circuit simulator.

Circuits are built from components that own named points. Points carry
multi-bit values in a six state logic (Low, High, Floating, HighZ, Conflict
and Undecided) and are connected to each other through wirings. Connected
points form nets: a net with a single driver (an Output point) takes the
driver's value, a net with no driver floats, and a net with several drivers is
in conflict. HighZ points never drive their net, which is how tri-state buses
are shared.

A simulation step repeatedly evaluates every component, then propagates the
result over the wiring of the whole component tree, until nothing changes:

	c := logicsim.NewCircuit("demo")
	c.Add(parts...).Connect(a, b)
	if err := c.Settle(); err != nil {
		// the circuit oscillates
	}

Behavioural models of common ICs live in the hwlib package. Clocked parts use
a Trigger point for edge detection.

The simulator is not safe for concurrent use.
*/
package logicsim
