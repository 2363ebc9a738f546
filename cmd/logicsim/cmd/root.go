// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cmd implements the logicsim commands.
//
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	hw "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	verbose bool
	limit   int
	metrics string
}

// session holds the per-command simulation settings.
//
type session struct {
	log       *slog.Logger
	limit     int
	reg       *prometheus.Registry
	collector *metrics.Collector
	path      string
}

func newSession(cmd *cobra.Command, g *globalFlags) (*session, error) {
	if g.limit < 1 {
		return nil, errors.Errorf("invalid step limit %d", g.limit)
	}
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	s := &session{
		log:   slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})),
		limit: g.limit,
		path:  g.metrics,
	}
	if s.path != "" {
		s.reg = prometheus.NewRegistry()
		s.collector = metrics.New(s.reg)
	}
	return s, nil
}

func (s *session) circuit(name string) *hw.Circuit {
	opts := []hw.Option{hw.WithLogger(s.log), hw.WithStepLimit(s.limit)}
	if s.collector != nil {
		opts = append(opts, hw.WithObserver(s.collector.Observe))
	}
	return hw.NewCircuit(name, opts...)
}

// close writes the collected metrics, if any.
//
func (s *session) close() error {
	if s.reg == nil {
		return nil
	}
	return errors.Wrap(prometheus.WriteToTextfile(s.path, s.reg), "write metrics")
}

// run wraps a command body with session setup and teardown.
//
func run(g *globalFlags, fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, g)
		if err != nil {
			return err
		}
		if err = fn(cmd, args, s); err != nil {
			return err
		}
		return s.close()
	}
}

// NewRootCmd returns the logicsim root command.
//
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "logicsim",
		Short: "Gate level digital circuit simulator",
		Long: `Run demonstration circuits built from logicsim parts.

Examples:
  logicsim adder                             # Half and full adder truth tables
  logicsim count --width 4 --load 13 -n 5    # Count up from 13
  logicsim count --down --load 2 -n 4        # Count down from 2
  logicsim rom image.yaml --address 3        # Read address 3 of a ROM image`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log settling diagnostics")
	root.PersistentFlags().IntVar(&g.limit, "limit", hw.DefaultStepLimit, "maximum settling iterations per step")
	root.PersistentFlags().StringVar(&g.metrics, "metrics", "", "write prometheus metrics to this file")

	root.AddCommand(newAdderCmd(g), newCountCmd(g), newROMCmd(g))
	return root
}

// Execute runs the root command.
//
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
