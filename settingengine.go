// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"github.com/pion/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// SettingEngine allows influencing behavior in ways that are not
// needed by most users of a RemoteSDP. This allows us to support
// additional use-cases without complicating the default API.
type SettingEngine struct {
	origin struct {
		Username  string
		SessionID *uint64
	}
	metrics struct {
		Registerer prometheus.Registerer
	}
	LoggerFactory logging.LoggerFactory
}

// SetSessionID sets the sess-id written on the o= line. By default a
// random 63 bit value is generated for every RemoteSDP.
func (e *SettingEngine) SetSessionID(id uint64) {
	e.origin.SessionID = &id
}

// SetOriginUsername sets the username written on the o= line.
func (e *SettingEngine) SetOriginUsername(username string) {
	e.origin.Username = username
}

// SetMetricsRegisterer makes every RemoteSDP created through the API report
// its operations to the given registerer. Metrics are not collected when no
// registerer is set.
func (e *SettingEngine) SetMetricsRegisterer(registerer prometheus.Registerer) {
	e.metrics.Registerer = registerer
}
