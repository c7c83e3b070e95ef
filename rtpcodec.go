// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"strconv"
	"strings"

	"github.com/pion/remotesdp/internal/fmtp"
)

// RTPCodecType determines the type of a codec.
// The zero value means kind-agnostic, it is used by header extensions that
// apply to both audio and video.
type RTPCodecType int

const (

	// RTPCodecTypeAudio indicates this is an audio codec
	RTPCodecTypeAudio RTPCodecType = iota + 1

	// RTPCodecTypeVideo indicates this is a video codec
	RTPCodecTypeVideo
)

func (t RTPCodecType) String() string {
	switch t {
	case RTPCodecTypeAudio:
		return "audio"
	case RTPCodecTypeVideo:
		return "video" //nolint: goconst
	default:
		return ErrUnknownType.Error()
	}
}

// NewRTPCodecType creates a RTPCodecType from a string
func NewRTPCodecType(r string) RTPCodecType {
	switch {
	case strings.EqualFold(r, RTPCodecTypeAudio.String()):
		return RTPCodecTypeAudio
	case strings.EqualFold(r, RTPCodecTypeVideo.String()):
		return RTPCodecTypeVideo
	default:
		return RTPCodecType(0)
	}
}

// PayloadType identifies the format of the RTP payload and determines
// its interpretation by the application. Each codec in a RTP Session
// will have a different PayloadType
// https://tools.ietf.org/html/rfc3550#section-3
type PayloadType uint8

// SSRC represents a synchronization source
// A synchronization source is a randomly chosen
// value meant to be globally unique within a particular
// RTP session. Used to identify a single stream of media.
//
// https://tools.ietf.org/html/rfc3550#section-3
type SSRC uint32

// CodecParameters are the codec specific fmtp parameters, keyed by parameter
// name. Values are kept as their textual SDP form.
type CodecParameters map[string]string

// ParseCodecParameters parses an fmtp parameter string.
func ParseCodecParameters(line string) CodecParameters {
	return CodecParameters(fmtp.Parse(line))
}

// Clone returns a deep copy of p.
func (p CodecParameters) Clone() CodecParameters {
	return CodecParameters(fmtp.Clone(p))
}

// String renders p as an fmtp parameter string with sorted keys.
func (p CodecParameters) String() string {
	return fmtp.Format(p)
}

const codecParameterApt = "apt"

// apt returns the payload type an RTX codec retransmits.
func (p CodecParameters) apt() (PayloadType, bool) {
	v, ok := p[codecParameterApt]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return 0, false
	}

	return PayloadType(n), true
}

func rtxParameters(apt PayloadType) CodecParameters {
	return CodecParameters{codecParameterApt: strconv.Itoa(int(apt))}
}

// RTPCodecCapability provides information about one codec an endpoint can
// play.
//
// https://w3c.github.io/webrtc-pc/#dictionary-rtcrtpcodeccapability-members
type RTPCodecCapability struct {
	// Kind may be left zero, it is then taken from the MimeType.
	Kind                 RTPCodecType
	MimeType             string
	ClockRate            uint32
	PreferredPayloadType PayloadType
	// Channels is only meaningful for audio, zero means unspecified.
	Channels     uint16
	RTCPFeedback []RTCPFeedback
	Parameters   CodecParameters
}

func (c RTPCodecCapability) kind() RTPCodecType {
	if c.Kind != 0 {
		return c.Kind
	}
	kind, _, _ := strings.Cut(c.MimeType, "/")

	return NewRTPCodecType(kind)
}

func (c RTPCodecCapability) isRTX() bool {
	return isRTXMimeType(c.MimeType)
}

// RTPHeaderExtensionCapability is used to define a RFC5285 RTP header
// extension supported by an endpoint.
//
// https://w3c.github.io/webrtc-pc/#dom-rtcrtpcapabilities-headerextensions
type RTPHeaderExtensionCapability struct {
	// Kind zero means the extension applies to every kind.
	Kind        RTPCodecType
	URI         string
	PreferredID int
	// Direction is only set on remote capabilities. Unset is treated as
	// sendrecv.
	Direction RTPTransceiverDirection
}

// RTPCapabilities is a list of supported codecs and header extensions
//
// https://w3c.github.io/webrtc-pc/#rtcrtpcapabilities
type RTPCapabilities struct {
	Codecs           []RTPCodecCapability
	HeaderExtensions []RTPHeaderExtensionCapability
}
