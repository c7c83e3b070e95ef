// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package metrics provides prometheus counters for remote session
// description operations.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pion/remotesdp/internal/util"
)

// Operation labels a media section change.
type Operation string

// Media section operations.
const (
	OperationAdd         Operation = "add"
	OperationReplace     Operation = "replace"
	OperationDisable     Operation = "disable"
	OperationAddTrack    Operation = "add_track"
	OperationRemoveTrack Operation = "remove_track"
)

// Collector counts RemoteSDP operations. A nil *Collector is valid and
// records nothing.
type Collector struct {
	sections *prometheus.CounterVec
	rounds   prometheus.Counter
}

// New creates a Collector and registers it with reg. Collectors that are
// already registered with reg are reused, so every RemoteSDP sharing a
// registerer reports to the same series. On any other registration error
// the returned Collector still counts but is not exported.
func New(reg prometheus.Registerer) (*Collector, error) {
	sections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "remotesdp_media_sections_total",
		Help: "Media section changes by operation",
	}, []string{"operation"})
	rounds := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "remotesdp_negotiation_rounds_total",
		Help: "Remote session descriptions serialized",
	})

	sections, sectionsErr := register(reg, sections)
	rounds, roundsErr := register(reg, rounds)

	return &Collector{sections: sections, rounds: rounds}, util.FlattenErrs([]error{sectionsErr, roundsErr})
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	return c, err
}

// Section records a media section change.
func (c *Collector) Section(op Operation) {
	if c == nil {
		return
	}
	c.sections.WithLabelValues(string(op)).Inc()
}

// Round records a serialized session description.
func (c *Collector) Round() {
	if c == nil {
		return
	}
	c.rounds.Inc()
}
