// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()

	c, err := New(reg)
	require.NoError(t, err)

	c.Section(OperationAdd)
	c.Section(OperationAdd)
	c.Section(OperationDisable)
	c.Round()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.sections.WithLabelValues(string(OperationAdd))))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sections.WithLabelValues(string(OperationDisable))))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.sections.WithLabelValues(string(OperationReplace))))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.rounds))
}

func TestCollectorSharedRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := New(reg)
	require.NoError(t, err)
	second, err := New(reg)
	require.NoError(t, err)

	first.Round()
	second.Round()
	second.Section(OperationRemoveTrack)

	assert.Equal(t, 2.0, testutil.ToFloat64(first.rounds))
	assert.Equal(t, 1.0, testutil.ToFloat64(first.sections.WithLabelValues(string(OperationRemoveTrack))))

	count, err := testutil.GatherAndCount(reg, "remotesdp_negotiation_rounds_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilCollector(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.Section(OperationAdd)
		c.Round()
	})
}
