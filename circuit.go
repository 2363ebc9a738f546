// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// DefaultStepLimit is the default iteration limit used by Circuit.Settle.
//
const DefaultStepLimit = 100

// ErrUnstable is returned by Circuit.Settle when a circuit does not settle
// within its step limit.
//
var ErrUnstable = errors.New("circuit did not settle")

// StepResult describes the outcome of a call to Circuit.Step.
//
type StepResult struct {
	Circuit    string
	Settled    bool
	Iterations int
}

// An Option configures a Circuit.
//
type Option func(*Circuit)

// WithLogger sets the logger used to report settling diagnostics.
//
func WithLogger(l *slog.Logger) Option {
	return func(c *Circuit) {
		if l != nil {
			c.log = l
		}
	}
}

// WithStepLimit sets the iteration limit used by Settle.
//
func WithStepLimit(n int) Option {
	return func(c *Circuit) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithObserver registers a function called with the result of every step.
//
func WithObserver(fn func(StepResult)) Option {
	return func(c *Circuit) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithWorkers sets the number of goroutines used to call Generate on the
// circuit's components during each settling iteration. If n <= 0, the value of
// GOMAXPROCS is used. The default is 1: components are evaluated on the
// calling goroutine.
//
func WithWorkers(n int) Option {
	return func(c *Circuit) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(-1)
		}
		c.workers = n
	}
}

// Circuit is the root component of a simulation. Unlike other components,
// parts and connections can be added and removed after construction.
//
// A Circuit is not safe for concurrent use.
//
type Circuit struct {
	Chip
	limit     int
	workers   int
	log       *slog.Logger
	observers []func(StepResult)
}

// NewCircuit returns a new empty circuit.
//
func NewCircuit(name string, opts ...Option) *Circuit {
	c := &Circuit{
		Chip:    MakeChip(name),
		limit:   DefaultStepLimit,
		workers: 1,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Add adds parts to the circuit. Adding the circuit to itself or adding the
// same part twice has no effect.
//
func (c *Circuit) Add(parts ...Component) *Circuit {
L:
	for _, p := range parts {
		if p == Component(c) {
			continue
		}
		for _, e := range c.parts {
			if e == p {
				continue L
			}
		}
		c.Mount(p)
	}
	return c
}

// Connect connects points a and b.
//
func (c *Circuit) Connect(a, b *Point) *Circuit {
	c.Wiring().Connect(a, b)
	return c
}

// Disconnect removes the connection between a and b.
//
func (c *Circuit) Disconnect(a, b *Point) error {
	return errors.Wrap(c.Wiring().Disconnect(a, b), c.Name())
}

// Limit returns the iteration limit used by Settle.
//
func (c *Circuit) Limit() int { return c.limit }

// Step runs settling iterations until the circuit converges or limit
// iterations have run. It returns true if the circuit converged, together
// with the number of iterations used.
//
// An iteration calls Generate on every component of the circuit tree, then
// propagates values over the merged wiring of the whole tree. It converges if
// no point in the wiring changed value.
//
func (c *Circuit) Step(limit int) (settled bool, iterations int) {
	if limit < 1 {
		panic(errors.Errorf("%s: invalid step limit %d", c.Name(), limit))
	}
	w := Merge(Wirings(c)...)
	generate, done := c.generator(Components(c))
	defer done()
	ps := w.Points()
	before := make([]Value, len(ps))

	for iterations < limit && !settled {
		iterations++
		for i, p := range ps {
			// values are never modified in place, no need to copy.
			before[i] = p.value
		}
		generate()
		w.Propagate()
		settled = true
		for i, p := range ps {
			if !p.value.Equal(before[i]) {
				settled = false
				break
			}
		}
	}

	c.report(w, settled, iterations)
	return settled, iterations
}

// generator returns a function that calls Generate on all cs, and a function
// that releases the worker goroutines it uses, if any.
//
func (c *Circuit) generator(cs []Component) (generate, done func()) {
	if c.workers <= 1 || len(cs) < 2 {
		return func() {
			for _, p := range cs {
				p.Generate()
			}
		}, func() {}
	}

	var wg sync.WaitGroup
	var wcs []chan struct{}
	for len(cs) > 0 {
		size := len(cs) / c.workers
		if size*c.workers < len(cs) {
			size++
		}
		wc := make(chan struct{}, 1)
		wcs = append(wcs, wc)
		go worker(cs[:size], wc, &wg)
		cs = cs[size:]
	}
	generate = func() {
		wg.Add(len(wcs))
		for _, wc := range wcs {
			wc <- struct{}{}
		}
		wg.Wait()
	}
	done = func() {
		for _, wc := range wcs {
			close(wc)
		}
	}
	return generate, done
}

func worker(cs []Component, wc <-chan struct{}, wg *sync.WaitGroup) {
	for range wc {
		for _, p := range cs {
			p.Generate()
		}
		wg.Done()
	}
}

// Settle runs Step with the circuit's limit and returns an error if the
// circuit did not settle.
//
func (c *Circuit) Settle() error {
	if ok, n := c.Step(c.limit); !ok {
		return errors.Wrapf(ErrUnstable, "%s: after %d iterations", c.Name(), n)
	}
	return nil
}

func (c *Circuit) report(w *Wiring, settled bool, n int) {
	ctx := context.Background()
	if !settled {
		c.log.Warn("circuit did not settle", "circuit", c.Name(), "iterations", n)
	} else {
		c.log.Debug("circuit settled", "circuit", c.Name(), "iterations", n)
		if c.log.Enabled(ctx, slog.LevelWarn) {
			for _, net := range w.Nets() {
				if len(net.Drivers) < 2 {
					continue
				}
				names := make([]string, len(net.Drivers))
				for i, d := range net.Drivers {
					names[i] = d.Name()
				}
				c.log.Warn("conflicting drivers", "circuit", c.Name(), "drivers", names)
			}
		}
	}
	r := StepResult{Circuit: c.Name(), Settled: settled, Iterations: n}
	for _, fn := range c.observers {
		fn(r)
	}
}
