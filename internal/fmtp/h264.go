// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import (
	"strconv"
	"strings"

	"github.com/jiyeyuran/mediasoup-go/h264"
)

const (
	h264PacketizationMode     = "packetization-mode"
	h264ProfileLevelID        = "profile-level-id"
	h264LevelAsymmetryAllowed = "level-asymmetry-allowed"
)

// RFC 6184: when packetization-mode is not present the value 0 MUST be used.
func h264PacketizationModeOf(parameters map[string]string) string {
	v, ok := parameters[h264PacketizationMode]
	if !ok || v == "" {
		return "0"
	}
	if n, err := strconv.Atoi(v); err == nil {
		return strconv.Itoa(n)
	}

	return strings.TrimSpace(v)
}

func h264RtpParameter(parameters map[string]string) h264.RtpParameter {
	param := h264.RtpParameter{
		ProfileLevelId: parameters[h264ProfileLevelID],
	}
	if n, err := strconv.Atoi(parameters[h264PacketizationMode]); err == nil {
		param.PacketizationMode = n
	}
	if n, err := strconv.Atoi(parameters[h264LevelAsymmetryAllowed]); err == nil {
		param.LevelAsymmetryAllowed = n
	}

	return param
}

func negotiateH264(local, remote map[string]string, strict bool) (map[string]string, bool) {
	if h264PacketizationModeOf(local) != h264PacketizationModeOf(remote) {
		return nil, false
	}

	out := Clone(local)
	if !strict {
		return out, true
	}

	// Answer generation fails on a profile mismatch or an unparsable
	// profile-level-id. Both are a non-match here.
	selected, err := h264.GenerateProfileLevelIdForAnswer(h264RtpParameter(local), h264RtpParameter(remote))
	if err != nil {
		return nil, false
	}

	if selected != "" {
		out[h264ProfileLevelID] = selected
	} else {
		delete(out, h264ProfileLevelID)
	}

	return out, true
}
