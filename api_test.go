// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"testing"

	"github.com/pion/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestNewAPI(t *testing.T) {
	api := NewAPI()
	assert.NotNil(t, api.settingEngine, "failed to init settings engine")
	assert.NotNil(t, api.settingEngine.LoggerFactory, "failed to init logger factory")
	assert.NotNil(t, api.log)
	assert.Nil(t, api.metrics)
}

func TestNewAPI_Options(t *testing.T) {
	s := SettingEngine{}
	s.SetOriginUsername("mediasoup-client")
	s.SetMetricsRegisterer(prometheus.NewRegistry())
	s.LoggerFactory = logging.NewDefaultLoggerFactory()

	api := NewAPI(WithSettingEngine(s))

	assert.Equal(t, "mediasoup-client", api.settingEngine.origin.Username, "failed to set settings engine")
	assert.Same(t, s.LoggerFactory, api.settingEngine.LoggerFactory)
	assert.NotNil(t, api.metrics)
}
