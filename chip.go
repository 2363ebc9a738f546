// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// A Component is a node in a circuit tree.
//
// Leaf components implement Generate as a function of their input points (and
// internal state) that updates their output points. Composite components only
// mount sub-parts and connect their points in their own Wiring; their
// behaviour emerges from settling the whole tree.
//
// Generate must only read the component's own points, never the points of
// other components, so that the evaluation order of components within a
// settling iteration does not matter.
//
type Component interface {
	Name() string
	Generate()
	Parts() []Component
	Wiring() *Wiring
}

// Chip implements the bookkeeping part of Component: name, sub-parts and
// internal wiring. It is meant to be embedded in custom components:
//
//	type Not struct {
//		logicsim.Chip
//		In, Out *logicsim.Point
//	}
//
//	func NewNot(name string) *Not {
//		n := &Not{Chip: logicsim.MakeChip(name)}
//		n.In = logicsim.NewSignalPoint(n.Sub("in"))
//		n.Out = logicsim.NewSignalPoint(n.Sub("out")).AsOutput(logicsim.AllFloating(1))
//		return n
//	}
//
//	func (n *Not) Generate() { ... }
//
type Chip struct {
	name   string
	parts  []Component
	wiring *Wiring
}

// MakeChip returns a new Chip value with the given name.
//
func MakeChip(name string) Chip {
	return Chip{name: name, wiring: NewWiring()}
}

// Name returns the component name.
//
func (c *Chip) Name() string { return c.name }

// Sub returns the name of a point or sub-part of c.
//
func (c *Chip) Sub(name string) string {
	return c.name + "." + name
}

// Generate does nothing.
//
func (c *Chip) Generate() {}

// Parts returns the direct sub-parts of c.
//
func (c *Chip) Parts() []Component { return c.parts }

// Wiring returns the internal wiring of c.
//
func (c *Chip) Wiring() *Wiring {
	if c.wiring == nil {
		c.wiring = NewWiring()
	}
	return c.wiring
}

// Mount adds sub-parts to c.
//
func (c *Chip) Mount(parts ...Component) {
	c.parts = append(c.parts, parts...)
}

// Components returns root followed by all its descendants.
//
func Components(root Component) []Component {
	cs := []Component{root}
	for i := 0; i < len(cs); i++ {
		cs = append(cs, cs[i].Parts()...)
	}
	return cs
}

// Wirings returns the wiring of root and of all its descendants.
//
func Wirings(root Component) []*Wiring {
	cs := Components(root)
	ws := make([]*Wiring, len(cs))
	for i, c := range cs {
		ws[i] = c.Wiring()
	}
	return ws
}
