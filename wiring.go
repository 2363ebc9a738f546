// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// ErrNotConnected is returned by Disconnect for points that are not directly
// connected.
//
var ErrNotConnected = errors.New("points not connected")

// Wiring is an undirected graph of connections between points.
//
// A point that has been connected at least once belongs to the wiring, even
// after all its connections have been removed.
//
type Wiring struct {
	conns map[*Point]map[*Point]struct{}
	order []*Point // insertion order, for deterministic iteration
}

// NewWiring returns a new empty wiring.
//
func NewWiring() *Wiring {
	return &Wiring{conns: make(map[*Point]map[*Point]struct{})}
}

func (w *Wiring) node(p *Point) map[*Point]struct{} {
	n, ok := w.conns[p]
	if !ok {
		n = map[*Point]struct{}{p: {}}
		w.conns[p] = n
		w.order = append(w.order, p)
	}
	return n
}

// Connect connects a and b.
//
func (w *Wiring) Connect(a, b *Point) *Wiring {
	if a == nil || b == nil {
		panic(errors.New("connect: nil point"))
	}
	w.node(a)[b] = struct{}{}
	w.node(b)[a] = struct{}{}
	return w
}

// Disconnect removes the connection between a and b. It returns an error if
// no such connection exists.
//
func (w *Wiring) Disconnect(a, b *Point) error {
	na, nb := w.conns[a], w.conns[b]
	if _, ok := na[b]; !ok || a == b {
		return errors.Wrapf(ErrNotConnected, "disconnect %s:%s", a.Name(), b.Name())
	}
	delete(na, b)
	delete(nb, a)
	return nil
}

// Connected returns true if a and b are directly connected.
//
func (w *Wiring) Connected(a, b *Point) bool {
	_, ok := w.conns[a][b]
	return ok && a != b
}

// Points returns all the points in w.
//
func (w *Wiring) Points() []*Point {
	ps := make([]*Point, len(w.order))
	copy(ps, w.order)
	return ps
}

// Neighbours returns all the points reachable from p, excluding p itself.
//
func (w *Wiring) Neighbours(p *Point) []*Point {
	net := w.reach(p)
	out := net[:0]
	for _, n := range net {
		if n != p {
			out = append(out, n)
		}
	}
	return out
}

// reach does a breadth first traversal of w starting at p and returns all
// visited points, p included.
//
func (w *Wiring) reach(p *Point) []*Point {
	visited := map[*Point]struct{}{p: {}}
	queue := []*Point{p}
	for i := 0; i < len(queue); i++ {
		for n := range w.conns[queue[i]] {
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return queue
}

// Merge returns a new wiring with the connections of all ws.
//
func Merge(ws ...*Wiring) *Wiring {
	m := NewWiring()
	for _, w := range ws {
		for _, p := range w.order {
			n := m.node(p)
			for o := range w.conns[p] {
				n[o] = struct{}{}
			}
		}
	}
	// nodes referenced only as neighbours are always registered in their own
	// wiring, so m.order is complete.
	return m
}

// A Net is a maximal set of connected points.
//
type Net struct {
	Points  []*Point
	Drivers []*Point // Output points in Points
}

// Value returns the value observed by the members of the net: all Floating
// if nothing drives it, the driver's value if there is exactly one driver, or
// all Conflict.
//
// For nets with no driver or more than one, the returned value has the width of
// the first point in the net.
//
func (n *Net) Value() Value {
	switch len(n.Drivers) {
	case 0:
		return AllFloating(n.Points[0].Width())
	case 1:
		return n.Drivers[0].Get()
	default:
		return AllConflict(n.Points[0].Width())
	}
}

// Nets partitions the points in w into nets.
//
func (w *Wiring) Nets() []Net {
	var nets []Net
	done := make(map[*Point]struct{}, len(w.order))
	for _, p := range w.order {
		if _, ok := done[p]; ok {
			continue
		}
		net := Net{Points: w.reach(p)}
		for _, n := range net.Points {
			done[n] = struct{}{}
			if n.dir == Output {
				net.Drivers = append(net.Drivers, n)
			}
		}
		nets = append(nets, net)
	}
	return nets
}

// Propagate resolves the value of every net in w and sets it on the net's
// points. Since values are assigned with Point.Set, only Input points are
// updated.
//
func (w *Wiring) Propagate() {
	for _, net := range w.Nets() {
		switch len(net.Drivers) {
		case 0:
			for _, p := range net.Points {
				p.Set(AllFloating(p.Width()))
			}
		case 1:
			d := net.Drivers[0]
			for _, p := range net.Points {
				if p != d {
					p.Set(d.value)
				}
			}
		default:
			for _, p := range net.Points {
				p.Set(AllConflict(p.Width()))
			}
		}
	}
}
