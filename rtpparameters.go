// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

// RTPCodecParameters is a codec entry of RTPParameters, including the
// PayloadType that has been negotiated. RTX entries follow the codec they
// retransmit.
//
// https://w3c.github.io/webrtc-pc/#rtcrtpcodecparameters
type RTPCodecParameters struct {
	MimeType     string
	PayloadType  PayloadType
	ClockRate    uint32
	Channels     uint16
	RTCPFeedback []RTCPFeedback
	Parameters   CodecParameters
}

func (c RTPCodecParameters) isRTX() bool {
	return isRTXMimeType(c.MimeType)
}

// RTPHeaderExtensionParameters enables an application to determine whether a header extension is configured for
// use within an RTPSender or RTPReceiver.
//
// https://w3c.github.io/webrtc-pc/#rtcrtpheaderextensionparameters
type RTPHeaderExtensionParameters struct {
	URI string
	ID  int
}

// RTPRtxParameters dictionary contains information relating to retransmission (RTX) settings.
// https://draft.ortc.org/#dom-rtcrtprtxparameters
type RTPRtxParameters struct {
	// SSRC zero means the encoding has no RTX stream.
	SSRC SSRC
}

// RTPEncodingParameters provides information relating to the encoding of one
// stream. SSRCs are filled in by the caller, they are never invented here.
//
// https://draft.ortc.org/#dom-rtcrtpencodingparameters
type RTPEncodingParameters struct {
	SSRC            SSRC
	RID             string
	RTX             RTPRtxParameters
	// ScalabilityMode is carried for the caller, e.g. "L1T3". Media sections
	// do not render it, use ParseScalabilityMode to read its layers.
	ScalabilityMode string
}

// RTCPParameters contains the RTCP configuration of a stream.
type RTCPParameters struct {
	CNAME       string
	ReducedSize bool
}

// RTPParameters is the role specific result of a negotiation: what one
// side sends or receives for a single track.
type RTPParameters struct {
	MID              string
	Codecs           []RTPCodecParameters
	HeaderExtensions []RTPHeaderExtensionParameters
	Encodings        []RTPEncodingParameters
	RTCP             RTCPParameters
}
