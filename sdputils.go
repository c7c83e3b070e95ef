// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/sdp/v3"

	"github.com/pion/remotesdp/pkg/rtcerr"
)

// Helpers reading a local session description, the counterpart of what
// RemoteSDP writes.

const rtcpFeedbackWildcard = "*"

// ExtractRTPCapabilities returns the codecs and header extensions of the
// first audio and the first video section of d.
func ExtractRTPCapabilities(d *sdp.SessionDescription) (RTPCapabilities, error) {
	caps := RTPCapabilities{
		Codecs:           []RTPCodecCapability{},
		HeaderExtensions: []RTPHeaderExtensionCapability{},
	}

	gotKind := map[RTPCodecType]bool{}
	for _, m := range d.MediaDescriptions {
		kind := NewRTPCodecType(m.MediaName.Media)
		if kind == RTPCodecType(0) || gotKind[kind] {
			continue
		}
		gotKind[kind] = true

		codecs, err := sdpParseCodecCapabilities(m, kind)
		if err != nil {
			return RTPCapabilities{}, err
		}
		caps.Codecs = append(caps.Codecs, codecs...)

		err = sdpMatchAttributePrefixFunc(m, attrKeyExtMap, "", func(a sdp.Attribute) error {
			ext, err := sdpParseExtmap(a)
			if err != nil {
				return err
			}
			ext.Kind = kind
			caps.HeaderExtensions = append(caps.HeaderExtensions, ext)

			return nil
		})
		if err != nil {
			return RTPCapabilities{}, err
		}
	}

	return caps, nil
}

// sdpParseCodecCapabilities reads the rtpmap, fmtp and rtcp-fb lines of one
// section.
func sdpParseCodecCapabilities(m *sdp.MediaDescription, kind RTPCodecType) ([]RTPCodecCapability, error) {
	codecs := []RTPCodecCapability{}
	byPayloadType := map[PayloadType]int{}

	err := sdpMatchAttributePrefixFunc(m, attrKeyRTPMap, "", func(a sdp.Attribute) error {
		codec, err := sdpParseRtpMap(a)
		if err != nil {
			return err
		}

		codec.Kind = kind
		codec.MimeType = kind.String() + "/" + codec.MimeType
		if kind != RTPCodecTypeAudio {
			codec.Channels = 0
		} else if codec.Channels == 0 {
			codec.Channels = 1
		}

		byPayloadType[codec.PreferredPayloadType] = len(codecs)
		codecs = append(codecs, codec)

		return nil
	})
	if err != nil {
		return nil, err
	}

	err = sdpMatchAttributePrefixFunc(m, attrKeyFmtp, "", func(a sdp.Attribute) error {
		payloadType, config, err := sdpSplitPayloadType(a)
		if err != nil {
			return err
		}
		if i, ok := byPayloadType[payloadType]; ok {
			codecs[i].Parameters = ParseCodecParameters(config)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	err = sdpMatchAttributePrefixFunc(m, attrKeyRTCPFeedback, "", func(a sdp.Attribute) error {
		target, fb, err := sdpParseRtcpFeedback(a)
		if err != nil {
			return err
		}

		if target == rtcpFeedbackWildcard {
			for i := range codecs {
				if !codecs[i].isRTX() {
					codecs[i].RTCPFeedback = append(codecs[i].RTCPFeedback, fb)
				}
			}

			return nil
		}

		payloadType, err := strconv.ParseUint(target, 10, 8)
		if err != nil {
			return &rtcerr.SyntaxError{Err: fmt.Errorf("%w: rtcp-fb payload type %q", ErrInvalidRTPMap, target)}
		}
		if i, ok := byPayloadType[PayloadType(payloadType)]; ok {
			codecs[i].RTCPFeedback = append(codecs[i].RTCPFeedback, fb)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range codecs {
		if codecs[i].Parameters == nil {
			codecs[i].Parameters = CodecParameters{}
		}
		if codecs[i].RTCPFeedback == nil {
			codecs[i].RTCPFeedback = []RTCPFeedback{}
		}
	}

	return codecs, nil
}

// ExtractDTLSParameters reads the DTLS role and fingerprint of the first
// section that has ICE credentials and a non-zero port.
func ExtractDTLSParameters(d *sdp.SessionDescription) (DTLSParameters, error) {
	var active *sdp.MediaDescription
	for _, m := range d.MediaDescriptions {
		if _, ok := m.Attribute(attrKeyICEUfrag); ok && m.MediaName.Port.Value != 0 {
			active = m

			break
		}
	}
	if active == nil {
		return DTLSParameters{}, &rtcerr.SyntaxError{Err: ErrNoActiveMediaSection}
	}

	raw, ok := active.Attribute(attrKeyFingerprint)
	if !ok {
		raw, ok = d.Attribute(attrKeyFingerprint)
	}
	if !ok {
		return DTLSParameters{}, &rtcerr.SyntaxError{Err: ErrNoFingerprint}
	}

	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return DTLSParameters{}, &rtcerr.SyntaxError{Err: fmt.Errorf("%w: %q", ErrInvalidFingerprint, raw)}
	}

	role := DTLSRoleAuto
	if setup, ok := active.Attribute(sdp.AttrKeyConnectionSetup); ok {
		var err error
		if role, err = dtlsRoleFromConnectionRole(setup); err != nil {
			return DTLSParameters{}, &rtcerr.SyntaxError{Err: err}
		}
	}

	return DTLSParameters{
		Role: role,
		Fingerprints: []DTLSFingerprint{
			{Algorithm: parts[0], Value: parts[1]},
		},
	}, nil
}

// CNAMEFromMediaDescription returns the first a=ssrc cname of m, or an
// empty string.
func CNAMEFromMediaDescription(m *sdp.MediaDescription) string {
	for _, a := range m.Attributes {
		if a.Key != sdp.AttrKeySSRC {
			continue
		}

		ssrc, err := sdpParseSSRCMedia(a)
		if err != nil {
			continue
		}
		if ssrc.Attribute == ssrcAttributeCNAME {
			return ssrc.Value
		}
	}

	return ""
}

// RTPEncodingsFromMediaDescription returns one encoding per media SSRC of m.
// SSRCs paired by an FID ssrc-group become the RTX SSRC of their encoding.
func RTPEncodingsFromMediaDescription(m *sdp.MediaDescription) ([]RTPEncodingParameters, error) {
	ssrcs := []SSRC{}
	seen := map[SSRC]bool{}

	err := sdpMatchAttributePrefixFunc(m, sdp.AttrKeySSRC, "", func(a sdp.Attribute) error {
		ssrc, err := sdpParseSSRCMedia(a)
		if err != nil {
			return err
		}
		if !seen[ssrc.SSRC] {
			seen[ssrc.SSRC] = true
			ssrcs = append(ssrcs, ssrc.SSRC)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(ssrcs) == 0 {
		return nil, &rtcerr.SyntaxError{Err: ErrNoSSRC}
	}

	encodings := []RTPEncodingParameters{}
	err = sdpMatchAttributePrefixFunc(m, sdp.AttrKeySSRCGroup, sdp.SemanticTokenFlowIdentification+" ",
		func(a sdp.Attribute) error {
			fields := strings.Fields(a.Value)
			if len(fields) != 3 {
				return &rtcerr.SyntaxError{Err: fmt.Errorf("%w: %q", ErrInvalidSSRC, a.Value)}
			}

			media, err := sdpParseSSRC(fields[1])
			if err != nil {
				return err
			}
			rtx, err := sdpParseSSRC(fields[2])
			if err != nil {
				return err
			}

			if !seen[media] {
				return nil
			}
			delete(seen, media)
			delete(seen, rtx)

			encodings = append(encodings, RTPEncodingParameters{
				SSRC: media,
				RTX:  RTPRtxParameters{SSRC: rtx},
			})

			return nil
		})
	if err != nil {
		return nil, err
	}

	for _, ssrc := range ssrcs {
		if seen[ssrc] {
			encodings = append(encodings, RTPEncodingParameters{SSRC: ssrc})
		}
	}

	return encodings, nil
}

// ApplyCodecParameters rewrites the answer section so that the stereo
// parameter of each Opus codec follows the sprop-stereo parameter of the
// offered codec.
func ApplyCodecParameters(offer RTPParameters, answer *sdp.MediaDescription) error {
	if answer == nil {
		return &rtcerr.InvalidAccessError{Err: ErrMissingOfferMediaDescription}
	}

	for _, codec := range offer.Codecs {
		if !strings.EqualFold(codec.MimeType, MimeTypeOpus) {
			continue
		}

		prefix := fmt.Sprintf("%d ", codec.PayloadType)
		if _, err := sdpFindAttributePrefix(answer, attrKeyRTPMap, prefix); err != nil {
			continue
		}

		spropStereo, ok := codec.Parameters[fmtpSpropStereo]
		if !ok {
			continue
		}

		index := sdpFindAttributeIndex(answer, attrKeyFmtp, prefix)
		if index < 0 {
			answer.Attributes = append(answer.Attributes, sdp.NewAttribute(attrKeyFmtp, prefix))
			index = len(answer.Attributes) - 1
		}

		_, config, err := sdpSplitPayloadType(answer.Attributes[index])
		if err != nil {
			return err
		}

		parameters := ParseCodecParameters(config)
		parameters[fmtpStereo] = boolParameter(spropStereo != "" && spropStereo != "0")

		answer.Attributes[index].Value = prefix + parameters.String()
	}

	return nil
}

// Parses an rtpmap line into a codec capability whose MimeType only holds
// the encoding name. Sample input:
// a=rtpmap:109 opus/48000/2
func sdpParseRtpMap(a sdp.Attribute) (RTPCodecCapability, error) {
	payloadType, codecStr, err := sdpSplitPayloadType(a)
	if err != nil {
		return RTPCodecCapability{}, err
	}

	parts := strings.Split(codecStr, "/")
	if len(parts) < 2 {
		return RTPCodecCapability{}, &rtcerr.SyntaxError{Err: fmt.Errorf("%w: codec %q", ErrInvalidRTPMap, codecStr)}
	}

	clockRate, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return RTPCodecCapability{}, &rtcerr.SyntaxError{Err: fmt.Errorf("%w: clock rate %q", ErrInvalidRTPMap, parts[1])}
	}

	channels := uint64(0)
	if len(parts) == 3 {
		channels, err = strconv.ParseUint(parts[2], 10, 16)
		if err != nil {
			return RTPCodecCapability{}, &rtcerr.SyntaxError{Err: fmt.Errorf("%w: channels %q", ErrInvalidRTPMap, parts[2])}
		}
	}

	return RTPCodecCapability{
		MimeType:             parts[0],
		ClockRate:            uint32(clockRate),
		PreferredPayloadType: payloadType,
		Channels:             uint16(channels),
	}, nil
}

// Parses an rtcp-fb line and returns the payload type it targets, which may
// be "*". Sample input:
// a=rtcp-fb:98 nack rpsi
func sdpParseRtcpFeedback(a sdp.Attribute) (string, RTCPFeedback, error) {
	fields := strings.Fields(a.Value)
	if len(fields) < 2 {
		return "", RTCPFeedback{}, &rtcerr.SyntaxError{Err: fmt.Errorf("%w: rtcp-fb %q", ErrInvalidRTPMap, a.Value)}
	}

	fb := RTCPFeedback{Type: fields[1]}
	if len(fields) > 2 {
		fb.Parameter = strings.Join(fields[2:], " ")
	}

	return fields[0], fb, nil
}

// Parses an a=extmap line (headerextension from RFC 5285). Sample input:
// a=extmap:2 urn:ietf:params:rtp-hdrext:toffset
// a=extmap:2/sendonly urn:ietf:params:rtp-hdrext:toffset
func sdpParseExtmap(a sdp.Attribute) (RTPHeaderExtensionCapability, error) {
	fields := strings.Fields(a.Value)
	if len(fields) < 2 {
		return RTPHeaderExtensionCapability{}, &rtcerr.SyntaxError{Err: fmt.Errorf("%w: %q", ErrInvalidExtMap, a.Value)}
	}

	idStr, directionStr, hasDirection := strings.Cut(fields[0], "/")
	id, err := strconv.ParseUint(idStr, 10, 8)
	if err != nil {
		return RTPHeaderExtensionCapability{}, &rtcerr.SyntaxError{Err: fmt.Errorf("%w: id %q", ErrInvalidExtMap, idStr)}
	}

	ext := RTPHeaderExtensionCapability{
		URI:         fields[1],
		PreferredID: int(id),
	}
	if hasDirection {
		ext.Direction = NewRTPTransceiverDirection(directionStr)
	}

	return ext, nil
}

func sdpSplitPayloadType(a sdp.Attribute) (PayloadType, string, error) {
	payloadTypeStr, rest, _ := strings.Cut(a.Value, " ")
	payloadType, err := strconv.ParseUint(payloadTypeStr, 10, 8)
	if err != nil {
		return 0, "", &rtcerr.SyntaxError{Err: fmt.Errorf("%w: payload type %q", ErrInvalidRTPMap, payloadTypeStr)}
	}

	return PayloadType(payloadType), strings.TrimSpace(rest), nil
}

// sdpSSRCMedia represents an RFC 5576 ssrc media attribute.
type sdpSSRCMedia struct {
	SSRC      SSRC
	Attribute string
	Value     string
}

// Parses an RFC 5576 ssrc media attribute. Sample input:
// a=ssrc:<ssrc-id> <attribute>
// a=ssrc:<ssrc-id> <attribute>:<value>
func sdpParseSSRCMedia(a sdp.Attribute) (sdpSSRCMedia, error) {
	ssrcStr, rest, ok := strings.Cut(a.Value, " ")
	if !ok {
		return sdpSSRCMedia{}, &rtcerr.SyntaxError{Err: fmt.Errorf("%w: %q", ErrInvalidSSRC, a.Value)}
	}

	ssrc, err := sdpParseSSRC(ssrcStr)
	if err != nil {
		return sdpSSRCMedia{}, err
	}

	attribute, value, _ := strings.Cut(rest, ":")

	return sdpSSRCMedia{
		SSRC:      ssrc,
		Attribute: attribute,
		Value:     value,
	}, nil
}

func sdpParseSSRC(raw string) (SSRC, error) {
	ssrc, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &rtcerr.SyntaxError{Err: fmt.Errorf("%w: %q", ErrInvalidSSRC, raw)}
	}

	return SSRC(ssrc), nil
}

type sdpAttributeParser func(sdp.Attribute) error

func sdpMatchAttributePrefixFunc(d *sdp.MediaDescription, key, prefix string, p sdpAttributeParser) error {
	for _, a := range d.Attributes {
		if a.Key != key || !strings.HasPrefix(a.Value, prefix) {
			continue
		}

		if err := p(a); err != nil {
			return err
		}
	}

	return nil
}

func sdpFindAttributePrefix(d *sdp.MediaDescription, key, prefix string) (sdp.Attribute, error) {
	if i := sdpFindAttributeIndex(d, key, prefix); i >= 0 {
		return d.Attributes[i], nil
	}

	return sdp.Attribute{}, fmt.Errorf("attribute %s:%s not found", key, prefix)
}

func sdpFindAttributeIndex(d *sdp.MediaDescription, key, prefix string) int {
	for i, a := range d.Attributes {
		if a.Key == key && strings.HasPrefix(a.Value, prefix) {
			return i
		}
	}

	return -1
}
