// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Benchmark configuration: defaults, flag binding and validation.

package control

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/momentics/hioload-ring/api"
)

// DefaultElements matches the bulk size of the reference benchmark.
const DefaultElements = 1_000_000

// Config holds parameters immutable per benchmark run.
type Config struct {
	Elements int    // Number of records pushed and then popped per round
	Capacity int    // Ring slot count; 0 means Elements
	Rounds   int    // Number of push/pop rounds
	CPU      int    // CPU to pin the benchmark thread to; -1 disables pinning
	LogLevel string // logrus level name
	Metrics  bool   // Print Prometheus text exposition after the run
	Baseline bool   // Also time the same passes on an unbounded queue
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Elements: DefaultElements,
		Capacity: 0,
		Rounds:   1,
		CPU:      -1,
		LogLevel: "info",
		Metrics:  false,
		Baseline: false,
	}
}

// BindFlags registers every field on fs, using the current values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Elements, "elements", "n", c.Elements, "records pushed and popped per round")
	fs.IntVarP(&c.Capacity, "capacity", "c", c.Capacity, "ring slot count (0 = elements)")
	fs.IntVarP(&c.Rounds, "rounds", "r", c.Rounds, "number of push/pop rounds")
	fs.IntVar(&c.CPU, "cpu", c.CPU, "pin the benchmark thread to this CPU (-1 = no pinning)")
	fs.StringVarP(&c.LogLevel, "log-level", "L", c.LogLevel, "log verbosity (debug, info, warn, error)")
	fs.BoolVar(&c.Metrics, "metrics", c.Metrics, "print metrics in Prometheus text format")
	fs.BoolVar(&c.Baseline, "baseline", c.Baseline, "also time an unbounded queue for comparison")
}

// EffectiveCapacity resolves the ring size used by a run.
func (c *Config) EffectiveCapacity() int {
	if c.Capacity == 0 {
		return c.Elements
	}
	return c.Capacity
}

// Validate checks the configuration for values a run cannot use.
func (c *Config) Validate() error {
	if c.Elements <= 0 {
		return errors.Wrapf(api.ErrInvalidArgument, "elements must be positive, got %d", c.Elements)
	}
	if c.Rounds <= 0 {
		return errors.Wrapf(api.ErrInvalidArgument, "rounds must be positive, got %d", c.Rounds)
	}
	if capacity := c.EffectiveCapacity(); capacity <= 1 {
		return errors.Wrapf(api.ErrInvalidArgument, "capacity must be greater than 1, got %d", capacity)
	}
	if c.CPU < -1 {
		return errors.Wrapf(api.ErrInvalidArgument, "cpu must be -1 or a CPU index, got %d", c.CPU)
	}
	return nil
}
