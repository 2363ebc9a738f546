// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// Direction is the direction of a Point.
//
type Direction uint8

// Point directions.
//
const (
	Input         Direction = iota // receives its value from its net
	Output                         // drives its net
	HighImpedance                  // does not drive its net nor receive from it
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "in"
	case Output:
		return "out"
	case HighImpedance:
		return "hiZ"
	}
	return "invalid"
}

// A Point is a named terminal holding a Value.
//
// A point is either width-checked, in which case every value assigned to it
// must match its declared width, or free, in which case it adopts the width
// of the last value assigned to it. Assigning a Value of the wrong width to a
// checked point is a programming error and panics. The single bit all Floating
// Value is the only exception: it is silently widened to the point's width.
//
// Set only changes the value of Input points: the value of Output and
// HighImpedance points is under the sole control of their owning component.
//
type Point struct {
	name    string
	width   int
	checked bool
	dir     Direction
	value   Value
}

// NewPoint returns a new free width point. The point starts as an Input with
// a single Floating bit.
//
func NewPoint(name string) *Point {
	return &Point{name: name, width: 1, dir: Input, value: AllFloating(1)}
}

// NewWidePoint returns a new width-checked point. The point starts as an
// Input, all Floating.
//
func NewWidePoint(name string, width int) *Point {
	if width <= 0 {
		panic(errors.Errorf("%s: invalid point width %d", name, width))
	}
	return &Point{name: name, width: width, checked: true, dir: Input, value: AllFloating(width)}
}

// NewSignalPoint returns a new width-checked single bit point.
//
func NewSignalPoint(name string) *Point {
	return NewWidePoint(name, 1)
}

// Name returns the point name.
//
func (p *Point) Name() string { return p.name }

// Width returns the point width.
//
func (p *Point) Width() int { return p.width }

// Direction returns the point's direction.
//
func (p *Point) Direction() Direction { return p.dir }

func (p *Point) assign(v Value) {
	if p.checked {
		if len(v) == 1 && v[0] == Floating && p.width != 1 {
			v = AllFloating(p.width)
		} else if len(v) != p.width {
			panic(errors.Errorf("%s: invalid data width, expected %d, received %v", p.name, p.width, v))
		}
	} else {
		p.width = len(v)
	}
	p.value = v.Clone()
}

// AsInput turns p into an Input. Its value is left unchanged.
//
func (p *Point) AsInput() *Point {
	p.dir = Input
	return p
}

// AsOutput turns p into an Output driving v.
//
func (p *Point) AsOutput(v Value) *Point {
	p.assign(v)
	p.dir = Output
	return p
}

// AsHighZ turns p into a HighImpedance point. Its value is set to all HighZ.
//
func (p *Point) AsHighZ() *Point {
	p.value = AllHighZ(p.width)
	p.dir = HighImpedance
	return p
}

// Get returns a copy of the point's value.
//
func (p *Point) Get() Value {
	return p.value.Clone()
}

// Set sets the value of p if p is an Input. It does nothing otherwise.
//
func (p *Point) Set(v Value) *Point {
	if p.dir == Input {
		p.assign(v)
	}
	return p
}

// IsHigh returns true if the point's value is a single High bit.
//
func (p *Point) IsHigh() bool {
	return len(p.value) == 1 && p.value[0] == High
}

// IsLow returns true if the point's value is a single Low bit.
//
func (p *Point) IsLow() bool {
	return len(p.value) == 1 && p.value[0] == Low
}

func (p *Point) String() string {
	return "<" + p.name + "> " + p.dir.String() + " " + p.value.String()
}

// A Trigger is a single bit point with edge detection for clock inputs.
//
// The owning component must call Tick exactly once at the end of every
// Generate call, after having checked Triggered, whatever the branch taken.
// This way, a rising edge fires Triggered only once no matter how many times
// the component is evaluated while the clock stays High.
//
type Trigger struct {
	*Point
	wasLow bool
}

// NewTrigger returns a new Trigger.
//
func NewTrigger(name string) *Trigger {
	return &Trigger{Point: NewSignalPoint(name)}
}

// Triggered returns true on a rising edge: the point was Low as of the last
// call to Tick and is now High.
//
func (t *Trigger) Triggered() bool {
	return t.wasLow && t.IsHigh()
}

// Tick records the current state of the trigger.
//
func (t *Trigger) Tick() {
	t.wasLow = t.IsLow()
}
