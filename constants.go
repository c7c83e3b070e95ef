// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

const (
	// Unknown defines default public constant to use for "enum" like struct
	// comparisons when no value was defined.
	Unknown    = iota
	unknownStr = "unknown"

	// Origin defaults used when the SettingEngine doesn't override them.
	defaultOriginUsername = "pion-remotesdp"
	defaultSessionName    = "-"

	// Connection placeholders for sections that carry ICE (the real address
	// comes from candidates).
	placeholderAddress = "127.0.0.1"
	placeholderPort    = 7

	protoWebRTC   = "UDP/TLS/RTP/SAVPF"
	protoPlainRTP = "RTP/AVP"

	attrKeyRTPMap          = "rtpmap"
	attrKeyExtMap          = "extmap"
	attrKeyMsid            = "msid"
	attrKeyMsidSemantic    = "msid-semantic"
	attrKeyFmtp            = "fmtp"
	attrKeyRTCPFeedback    = "rtcp-fb"
	attrKeyFingerprint     = "fingerprint"
	attrKeyICEUfrag        = "ice-ufrag"
	attrKeyICEPwd          = "ice-pwd"
	attrKeyICEOptions      = "ice-options"
	attrKeyCandidate       = "candidate"
	attrKeyEndOfCandidates = "end-of-candidates"
	attrKeyRID             = "rid"
	attrKeySimulcast       = "simulcast"
	attrKeyXGoogleFlag     = "x-google-flag"

	ssrcAttributeCNAME = "cname"
	ssrcAttributeMSID  = "msid"

	iceOptionRenomination = "renomination"
	bundleSemantic        = "BUNDLE"
	msidSemanticWMS       = "WMS *"
)
