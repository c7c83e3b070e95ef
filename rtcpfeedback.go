// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

const (
	// TypeRTCPFBTransportCC ..
	TypeRTCPFBTransportCC = "transport-cc"

	// TypeRTCPFBGoogREMB ..
	TypeRTCPFBGoogREMB = "goog-remb"

	// TypeRTCPFBACK ..
	TypeRTCPFBACK = "ack"

	// TypeRTCPFBCCM ..
	TypeRTCPFBCCM = "ccm"

	// TypeRTCPFBNACK ..
	TypeRTCPFBNACK = "nack"
)

// RTCPFeedback signals the connection to use additional RTCP packet types.
// https://draft.ortc.org/#dom-rtcrtcpfeedback
type RTCPFeedback struct {
	// Type is the type of feedback.
	// see: https://draft.ortc.org/#dom-rtcrtcpfeedback
	// valid: ack, ccm, nack, goog-remb, transport-cc
	Type string

	// The parameter value depends on the type.
	// For example, type="nack" parameter="pli" will send Picture Loss Indicator packets.
	Parameter string
}

// String renders the feedback as it appears after the payload type of an
// a=rtcp-fb line.
func (f RTCPFeedback) String() string {
	if f.Parameter == "" {
		return f.Type
	}

	return f.Type + " " + f.Parameter
}

func cloneRTCPFeedback(feedback []RTCPFeedback) []RTCPFeedback {
	if feedback == nil {
		return nil
	}

	return append([]RTCPFeedback{}, feedback...)
}

func withoutRTCPFeedback(feedback []RTCPFeedback, types ...string) []RTCPFeedback {
	out := make([]RTCPFeedback, 0, len(feedback))
	for _, fb := range feedback {
		drop := false
		for _, typ := range types {
			if fb.Type == typ {
				drop = true

				break
			}
		}
		if !drop {
			out = append(out, fb)
		}
	}

	return out
}
