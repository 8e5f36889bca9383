// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_PrintsTimingsAndMetrics(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cmd := newRootCmd(logger)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-n", "64", "-c", "8", "--metrics", "--baseline"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Total seconds, adding=")
	assert.Contains(t, s, "Total seconds, retrieving=")
	assert.Contains(t, s, "Baseline seconds")
	assert.Contains(t, s, "ringbench_evictions_total 57")
	assert.Contains(t, s, `ringbench_ops_total{op="push"} 64`)
	assert.NotEmpty(t, hook.AllEntries())
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	logger, _ := test.NewNullLogger()

	cmd := newRootCmd(logger)
	cmd.SetArgs([]string{"--capacity", "1", "-n", "4"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))

	cmd = newRootCmd(logger)
	cmd.SetArgs([]string{"--log-level", "chatty"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
