// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"regexp"
	"strconv"
)

var scalabilityModeRegex = regexp.MustCompile(`^L(\d+)T(\d+)`)

// ScalabilityMode is the number of spatial and temporal layers of an
// encoding.
//
// https://www.w3.org/TR/webrtc-svc/#scalabilitymodes*
type ScalabilityMode struct {
	SpatialLayers  int
	TemporalLayers int
}

// ParseScalabilityMode parses modes such as "L1T3" or "L3T3_KEY". Anything
// else is a single layer mode.
func ParseScalabilityMode(mode string) ScalabilityMode {
	match := scalabilityModeRegex.FindStringSubmatch(mode)
	if match == nil {
		return ScalabilityMode{SpatialLayers: 1, TemporalLayers: 1}
	}

	spatial, err := strconv.Atoi(match[1])
	if err != nil {
		return ScalabilityMode{SpatialLayers: 1, TemporalLayers: 1}
	}
	temporal, err := strconv.Atoi(match[2])
	if err != nil {
		return ScalabilityMode{SpatialLayers: 1, TemporalLayers: 1}
	}

	return ScalabilityMode{SpatialLayers: spatial, TemporalLayers: temporal}
}
