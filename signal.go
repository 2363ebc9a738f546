// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A State is the state of a single bit.
//
type State uint8

// Bit states.
//
const (
	Low       State = iota // logic 0
	High                   // logic 1
	Floating               // not driven
	HighZ                  // output explicitly not driving
	Conflict               // driven by two or more sources
	Undecided              // truth table hole

	// NumStates is the number of distinct states.
	NumStates = 6
)

var stateChars = [NumStates]byte{'0', '1', 'F', 'Z', '!', '?'}

func (s State) String() string {
	if int(s) >= NumStates {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return string(stateChars[s])
}

// Concrete returns true if s is either Low or High.
//
func (s State) Concrete() bool { return s == Low || s == High }

// Errors returned by Value conversions.
//
var (
	ErrNotConcrete = errors.New("value is not concrete")
	ErrOverflow    = errors.New("value overflows uint64")
)

// A Value is a fixed width vector of bit states, most significant bit first.
//
// Values returned by Point.Get are copies and can be freely modified.
//
type Value []State

// MakeValue returns a Value made of the given states, msb first.
//
func MakeValue(states ...State) Value {
	v := make(Value, len(states))
	copy(v, states)
	return v
}

// Fill returns a Value of the given width with all bits set to s.
//
func Fill(width int, s State) Value {
	if width < 0 {
		panic(errors.Errorf("invalid value width %d", width))
	}
	v := make(Value, width)
	for i := range v {
		v[i] = s
	}
	return v
}

// AllLow returns an all Low Value.
func AllLow(width int) Value { return Fill(width, Low) }

// AllHigh returns an all High Value.
func AllHigh(width int) Value { return Fill(width, High) }

// AllFloating returns an all Floating Value.
func AllFloating(width int) Value { return Fill(width, Floating) }

// AllHighZ returns an all HighZ Value.
func AllHighZ(width int) Value { return Fill(width, HighZ) }

// AllConflict returns an all Conflict Value.
func AllConflict(width int) Value { return Fill(width, Conflict) }

// AllUndecided returns an all Undecided Value.
func AllUndecided(width int) Value { return Fill(width, Undecided) }

// Width returns the bit count of v.
//
func (v Value) Width() int { return len(v) }

// Equal returns true if v and o have the same width and states.
//
func (v Value) Equal(o Value) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Is returns true if every bit in v is in state s.
//
func (v Value) Is(s State) bool {
	for _, b := range v {
		if b != s {
			return false
		}
	}
	return true
}

// Concrete returns true if every bit in v is Low or High.
//
func (v Value) Concrete() bool {
	for _, b := range v {
		if !b.Concrete() {
			return false
		}
	}
	return true
}

// Clone returns a copy of v.
//
func (v Value) Clone() Value {
	if v == nil {
		return nil
	}
	return MakeValue(v...)
}

// Uint64 returns v as an unsigned integer, reading v as a base 2 numeral with
// the msb first. It fails if any bit of v is not concrete.
//
func (v Value) Uint64() (uint64, error) {
	var n uint64
	for i, b := range v {
		if !b.Concrete() {
			return 0, errors.Wrapf(ErrNotConcrete, "bit %d of %v", i, v)
		}
		if n&(1<<63) != 0 {
			return 0, errors.Wrapf(ErrOverflow, "%v", v)
		}
		n = n<<1 | uint64(b)
	}
	return n, nil
}

// FromUint64 returns the width bits binary representation of n mod 2^width.
//
func FromUint64(n uint64, width int) Value {
	v := AllLow(width)
	for i := width - 1; i >= 0 && n != 0; i-- {
		v[i] = State(n & 1)
		n >>= 1
	}
	return v
}

func (v Value) String() string {
	var b strings.Builder
	b.Grow(len(v))
	for _, s := range v {
		b.WriteString(s.String())
	}
	return b.String()
}

// ParseValue parses a Value in the format returned by Value.String. An
// underscore can be used as a digit separator.
//
//	v, _ := ParseValue("10_ZZ") // Value{High, Low, HighZ, HighZ}
//
func ParseValue(s string) (Value, error) {
	v := make(Value, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			continue
		}
		if c == 'f' || c == 'z' {
			c -= 'a' - 'A'
		}
		st := strings.IndexByte(string(stateChars[:]), c)
		if st < 0 {
			return nil, errors.Errorf("in %q at pos %d: invalid bit state %q", s, i+1, c)
		}
		v = append(v, State(st))
	}
	return v, nil
}

// MustParseValue is like ParseValue but panics on error.
//
func MustParseValue(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		panic(err)
	}
	return v
}
