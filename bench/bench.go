// Package bench
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Benchmark harness for the ring store: one timed bulk push pass followed by
// one timed bulk pop pass per round, optionally against an unbounded queue
// baseline.

package bench

import (
	"context"
	"runtime"
	"time"

	"github.com/eapache/queue"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/ring"
)

// PayloadWords is the number of 32-bit payload words in a Record.
const PayloadWords = 128

// Record is the fixed-size element moved through the ring.
type Record struct {
	Header  uint32
	Payload [PayloadWords]uint32
}

// MakeRecord returns the reference record: header 1, payload[i] = i.
func MakeRecord() Record {
	r := Record{Header: 1}
	for i := range r.Payload {
		r.Payload[i] = uint32(i)
	}
	return r
}

// Result captures one round.
type Result struct {
	Round        int
	Pushed       int
	Popped       int
	Size         int // occupancy after the push pass
	Evicted      int
	PushTime     time.Duration
	PopTime      time.Duration
	BaselinePush time.Duration
	BaselinePop  time.Duration
}

// PushNsPerOp returns the mean push latency in nanoseconds.
func (r Result) PushNsPerOp() float64 {
	return nsPerOp(r.PushTime, r.Pushed)
}

// PopNsPerOp returns the mean pop latency in nanoseconds over attempted pops.
func (r Result) PopNsPerOp() float64 {
	return nsPerOp(r.PopTime, r.Pushed)
}

func nsPerOp(d time.Duration, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(d.Nanoseconds()) / float64(n)
}

// Options carries the optional collaborators of a Runner.
type Options struct {
	Log     logrus.FieldLogger
	Metrics *control.MetricsRegistry
	Probes  *control.DebugProbes
	Pinner  api.Affinity
}

// Runner executes benchmark rounds for a validated Config.
type Runner struct {
	cfg     control.Config
	log     logrus.FieldLogger
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
	pinner  api.Affinity
}

// NewRunner validates cfg and fills missing options with defaults.
func NewRunner(cfg *control.Config, opts Options) (*Runner, error) {
	if cfg == nil {
		cfg = control.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "bench: invalid config")
	}
	r := &Runner{
		cfg:     *cfg,
		log:     opts.Log,
		metrics: opts.Metrics,
		probes:  opts.Probes,
		pinner:  opts.Pinner,
	}
	if r.log == nil {
		r.log = logrus.StandardLogger()
	}
	if r.metrics == nil {
		r.metrics = control.NewMetricsRegistry()
	}
	if r.probes == nil {
		r.probes = control.NewDebugProbes()
	}
	return r, nil
}

// Metrics returns the registry results are recorded in.
func (r *Runner) Metrics() *control.MetricsRegistry { return r.metrics }

// Probes returns the debug probe registry.
func (r *Runner) Probes() *control.DebugProbes { return r.probes }

// Run executes cfg.Rounds rounds, pinning the calling goroutine first if a
// CPU is configured. It stops at the first error or context cancellation.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if r.cfg.CPU >= 0 && r.pinner != nil {
		if err := r.pinner.Pin(r.cfg.CPU); err != nil {
			return nil, errors.Wrapf(err, "bench: pin to cpu %d", r.cfg.CPU)
		}
		defer runtime.UnlockOSThread()
		r.log.WithField("cpu", r.cfg.CPU).Debug("benchmark thread pinned")
	}

	results := make([]Result, 0, r.cfg.Rounds)
	for round := 1; round <= r.cfg.Rounds; round++ {
		res, err := r.RunRound(ctx, round)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RunRound performs one push pass and one pop pass on a fresh store.
func (r *Runner) RunRound(ctx context.Context, round int) (Result, error) {
	res := Result{Round: round}
	if err := ctx.Err(); err != nil {
		return res, errors.Wrap(err, "bench: round not started")
	}

	store, err := ring.New[Record](r.cfg.EffectiveCapacity())
	if err != nil {
		return res, errors.Wrap(err, "bench: create store")
	}
	defer store.Destroy()
	r.probes.RegisterStore("bench", store)

	log := r.log.WithFields(logrus.Fields{
		"round":    round,
		"elements": r.cfg.Elements,
		"capacity": store.Capacity(),
		"elem_sz":  store.ElementSize(),
	})
	log.Debug("starting round")

	rec := MakeRecord()
	start := time.Now()
	for i := 0; i < r.cfg.Elements; i++ {
		store.Push(rec)
	}
	res.PushTime = time.Since(start)
	res.Pushed = r.cfg.Elements
	res.Size = store.Size()
	res.Evicted = res.Pushed - res.Size
	r.metrics.ObservePush(res.PushTime, res.Pushed, res.Evicted, res.Size)

	if err := ctx.Err(); err != nil {
		return res, errors.Wrap(err, "bench: interrupted after push pass")
	}

	var out Record
	start = time.Now()
	for i := 0; i < r.cfg.Elements; i++ {
		res.Popped += store.Pop(&out)
	}
	res.PopTime = time.Since(start)
	r.metrics.ObservePop(res.PopTime, res.Pushed)

	if r.cfg.Baseline {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrap(err, "bench: interrupted before baseline")
		}
		res.BaselinePush, res.BaselinePop = baseline(rec, r.cfg.Elements)
	}

	log.WithFields(logrus.Fields{
		"push":    res.PushTime,
		"pop":     res.PopTime,
		"size":    res.Size,
		"evicted": res.Evicted,
	}).Debug("round complete")
	return res, nil
}

// baseline times the same passes on an unbounded FIFO with no eviction.
func baseline(rec Record, n int) (push, pop time.Duration) {
	q := queue.New()
	start := time.Now()
	for i := 0; i < n; i++ {
		q.Add(rec)
	}
	push = time.Since(start)

	start = time.Now()
	for q.Length() > 0 {
		_ = q.Remove().(Record)
	}
	pop = time.Since(start)
	return push, pop
}
