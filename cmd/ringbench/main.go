// File: cmd/ringbench/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ringbench times bulk push and pop passes over the ring store.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/pkg/errors"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/momentics/hioload-ring/affinity"
	"github.com/momentics/hioload-ring/bench"
	"github.com/momentics/hioload-ring/control"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(logrus.StandardLogger()).ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("ringbench failed")
		os.Exit(1)
	}
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	cfg := control.DefaultConfig()
	cmd := &cobra.Command{
		Use:           "ringbench",
		Short:         "Benchmark bulk push/pop cycles on the ring store",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := configureLogger(log, cfg.LogLevel); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, log, cmd.OutOrStdout())
		},
	}
	cfg.BindFlags(cmd.Flags())
	return cmd
}

func configureLogger(log *logrus.Logger, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func run(ctx context.Context, cfg *control.Config, log *logrus.Logger, out io.Writer) error {
	probes := control.NewDebugProbes()
	control.RegisterPlatformProbes(probes)

	runner, err := bench.NewRunner(cfg, bench.Options{
		Log:    log,
		Probes: probes,
		Pinner: affinity.Pinner{},
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"goos":      runtime.GOOS,
		"goarch":    runtime.GOARCH,
		"cacheline": control.CacheLineSize,
		"features":  control.CPUFeatures(),
		"elements":  cfg.Elements,
		"capacity":  cfg.EffectiveCapacity(),
		"rounds":    cfg.Rounds,
	}).Info("starting ring benchmark")

	log.WithField("probes", probes.Names()).Debug("debug probes registered")

	results, err := runner.Run(ctx)
	for _, res := range results {
		fmt.Fprintf(out, "Total seconds, adding=%.6f\n", res.PushTime.Seconds())
		fmt.Fprintf(out, "Total seconds, retrieving=%.6f\n", res.PopTime.Seconds())
		if cfg.Baseline {
			fmt.Fprintf(out, "Baseline seconds, adding=%.6f retrieving=%.6f\n",
				res.BaselinePush.Seconds(), res.BaselinePop.Seconds())
		}
		log.WithFields(logrus.Fields{
			"round":     res.Round,
			"push_ns":   res.PushNsPerOp(),
			"pop_ns":    res.PopNsPerOp(),
			"evicted":   res.Evicted,
			"remaining": res.Size,
		}).Info("round finished")
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields(probes.DumpState())).Debug("final state")

	snapshot, err := runner.Metrics().Snapshot()
	if err != nil {
		log.WithError(err).Warn("metrics snapshot incomplete")
	}
	fields := make(logrus.Fields, len(snapshot))
	for k, v := range snapshot {
		fields[k] = v
	}
	log.WithFields(fields).Debug("metrics")

	if cfg.Metrics {
		return writeMetrics(runner.Metrics(), out)
	}
	return nil
}

func writeMetrics(mr *control.MetricsRegistry, out io.Writer) error {
	families, err := mr.Gatherer().Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	enc := expfmt.NewEncoder(out, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrap(err, "encode metrics")
		}
	}
	return nil
}
