// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"github.com/pion/logging"

	"github.com/pion/remotesdp/internal/metrics"
)

// API bundles the settings shared by every RemoteSDP it creates.
// The global NewRemoteSDP uses an API with default settings.
type API struct {
	settingEngine *SettingEngine
	metrics       *metrics.Collector
	log           logging.LeveledLogger
}

// NewAPI creates a new API object for keeping semi-global settings.
func NewAPI(options ...func(*API)) *API {
	api := &API{}

	for _, o := range options {
		o(api)
	}

	if api.settingEngine == nil {
		api.settingEngine = &SettingEngine{}
	}

	if api.settingEngine.LoggerFactory == nil {
		api.settingEngine.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	api.log = api.settingEngine.LoggerFactory.NewLogger("api")

	if reg := api.settingEngine.metrics.Registerer; reg != nil {
		collector, err := metrics.New(reg)
		if err != nil {
			api.log.Warnf("Failed to register metrics: %v", err)
		}
		api.metrics = collector
	}

	return api
}

// WithSettingEngine allows providing a SettingEngine to the API.
// Settings should not be changed after passing the engine to an API.
func WithSettingEngine(s SettingEngine) func(a *API) {
	return func(a *API) {
		a.settingEngine = &s
	}
}
