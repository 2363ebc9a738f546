// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package metrics exports circuit settling statistics as prometheus metrics.
//
package metrics

import (
	"strconv"

	hw "github.com/db47h/logicsim"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector records the results of Circuit.Step calls.
//
type Collector struct {
	steps      *prometheus.CounterVec
	iterations *prometheus.HistogramVec
}

// New returns a new Collector with its metrics registered in reg.
//
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logicsim_steps_total",
				Help: "Total number of circuit steps",
			},
			[]string{"circuit", "settled"},
		),
		iterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "logicsim_step_iterations",
				Help:    "Number of settling iterations per circuit step",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
			[]string{"circuit"},
		),
	}
	reg.MustRegister(c.steps, c.iterations)
	return c
}

// Observe records r. It can be passed to logicsim.WithObserver.
//
func (c *Collector) Observe(r hw.StepResult) {
	c.steps.WithLabelValues(r.Circuit, strconv.FormatBool(r.Settled)).Inc()
	c.iterations.WithLabelValues(r.Circuit).Observe(float64(r.Iterations))
}
