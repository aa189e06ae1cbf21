// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObserver_RunIDIsUUID(t *testing.T) {
	obs := NewObserver(false, &bytes.Buffer{})
	_, err := uuid.Parse(obs.RunID())
	require.NoError(t, err)
	assert.Equal(t, ObservabilityMetrics, obs.Level())
	assert.Nil(t, obs.DebugObserver)
}

func TestStartTiming_MetricsLevelIsSilent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewObserver(false, &buf)
	obs.StartTiming("classifier", "classify", "x.csv")(true, nil)
	obs.LogDetail("classifier", "ignored")
	assert.Empty(t, buf.String())
}

func TestStartTiming_DebugWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	obs := NewObserver(true, &buf)
	require.NotNil(t, obs.DebugObserver)

	obs.StartTiming("classifier", "classify", "x.csv")(true, map[string]interface{}{"rows": 3})

	var data StandardObservabilityData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "classifier", data.Component)
	assert.Equal(t, obs.RunID(), data.RunID)
	assert.True(t, data.Success)
}

func TestDebugObserver_Steps(t *testing.T) {
	var buf bytes.Buffer
	d := NewDebugObserver(&buf)

	finish := d.StartStep("reader", "parse", "x.csv")
	d.LogDetail("reader", "3 rows")
	finish(false, "bad quote")

	out := buf.String()
	assert.Contains(t, out, "reader: parse (x.csv)")
	assert.Contains(t, out, "  -> reader: 3 rows")
	assert.Contains(t, out, "failed")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestLogDetail_NilObserver(t *testing.T) {
	var obs *StandardObserver
	obs.LogDetail("x", "y")
}
