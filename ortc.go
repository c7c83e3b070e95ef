// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"strings"

	"github.com/pion/rtp"
	"github.com/pion/sdp/v3"

	"github.com/pion/remotesdp/internal/fmtp"
)

// ExtendedCodec is the negotiated view of one codec both sides support.
// Local and remote payload types and parameters are kept apart since the two
// sides may number and configure the same codec differently.
type ExtendedCodec struct {
	MimeType  string
	Kind      RTPCodecType
	ClockRate uint32
	Channels  uint16

	LocalPayloadType  PayloadType
	RemotePayloadType PayloadType

	// RTX payload types are either both set or both nil.
	LocalRTXPayloadType  *PayloadType
	RemoteRTXPayloadType *PayloadType

	RTCPFeedback     []RTCPFeedback
	LocalParameters  CodecParameters
	RemoteParameters CodecParameters
}

// HasRTX reports whether retransmission was negotiated for the codec.
func (c ExtendedCodec) HasRTX() bool {
	return c.LocalRTXPayloadType != nil && c.RemoteRTXPayloadType != nil
}

// ExtendedHeaderExtension is a header extension both sides support. SendID
// is the id the local side prefers, RecvID the one the remote prefers.
// Direction is expressed from the local point of view.
type ExtendedHeaderExtension struct {
	Kind      RTPCodecType
	URI       string
	SendID    int
	RecvID    int
	Direction RTPTransceiverDirection
}

// ExtendedRTPCapabilities is the result of a negotiation. Codecs are
// ordered by remote preference.
type ExtendedRTPCapabilities struct {
	Codecs           []ExtendedCodec
	HeaderExtensions []ExtendedHeaderExtension
}

// ComputeExtendedCapabilities intersects the local and remote capabilities.
// Remote codecs without a local match are dropped. Neither argument is
// modified.
func ComputeExtendedCapabilities(local, remote RTPCapabilities) ExtendedRTPCapabilities {
	extended := ExtendedRTPCapabilities{
		Codecs:           []ExtendedCodec{},
		HeaderExtensions: []ExtendedHeaderExtension{},
	}

	for _, remoteCodec := range remote.Codecs {
		if remoteCodec.isRTX() {
			continue
		}

		for _, localCodec := range local.Codecs {
			matched, ok := matchCodec(localCodec, remoteCodec, true)
			if !ok {
				continue
			}

			extended.Codecs = append(extended.Codecs, ExtendedCodec{
				MimeType:          matched.MimeType,
				Kind:              matched.kind(),
				ClockRate:         matched.ClockRate,
				Channels:          matched.Channels,
				LocalPayloadType:  matched.PreferredPayloadType,
				RemotePayloadType: remoteCodec.PreferredPayloadType,
				RTCPFeedback:      reduceRTCPFeedback(matched, remoteCodec),
				LocalParameters:   matched.Parameters,
				RemoteParameters:  remoteCodec.Parameters.Clone(),
			})

			break
		}
	}

	// RTX payload types can only be paired once the media payload types of
	// both sides are known.
	for i := range extended.Codecs {
		codec := &extended.Codecs[i]

		localRTX, hasLocal := findRTXCodec(local.Codecs, codec.LocalPayloadType)
		remoteRTX, hasRemote := findRTXCodec(remote.Codecs, codec.RemotePayloadType)
		if !hasLocal || !hasRemote {
			continue
		}

		localPayloadType := localRTX.PreferredPayloadType
		remotePayloadType := remoteRTX.PreferredPayloadType
		codec.LocalRTXPayloadType = &localPayloadType
		codec.RemoteRTXPayloadType = &remotePayloadType
	}

	for _, remoteExt := range remote.HeaderExtensions {
		for _, localExt := range local.HeaderExtensions {
			if !matchHeaderExtension(localExt, remoteExt) {
				continue
			}

			extended.HeaderExtensions = append(extended.HeaderExtensions, ExtendedHeaderExtension{
				Kind:      remoteExt.Kind,
				URI:       remoteExt.URI,
				SendID:    localExt.PreferredID,
				RecvID:    remoteExt.PreferredID,
				Direction: remoteExt.Direction.Revers(),
			})

			break
		}
	}

	return extended
}

// DeriveReceivingCapabilities returns the capabilities the local side can
// receive with. Codecs use the remote payload types so inbound RTP matches
// them.
func DeriveReceivingCapabilities(extended ExtendedRTPCapabilities) RTPCapabilities {
	caps := RTPCapabilities{
		Codecs:           []RTPCodecCapability{},
		HeaderExtensions: []RTPHeaderExtensionCapability{},
	}

	for _, codec := range extended.Codecs {
		caps.Codecs = append(caps.Codecs, RTPCodecCapability{
			Kind:                 codec.Kind,
			MimeType:             codec.MimeType,
			ClockRate:            codec.ClockRate,
			PreferredPayloadType: codec.RemotePayloadType,
			Channels:             codec.Channels,
			RTCPFeedback:         cloneRTCPFeedback(codec.RTCPFeedback),
			Parameters:           codec.LocalParameters.Clone(),
		})

		if codec.RemoteRTXPayloadType != nil {
			caps.Codecs = append(caps.Codecs, RTPCodecCapability{
				Kind:                 codec.Kind,
				MimeType:             rtxMimeType(codec.Kind),
				ClockRate:            codec.ClockRate,
				PreferredPayloadType: *codec.RemoteRTXPayloadType,
				RTCPFeedback:         []RTCPFeedback{},
				Parameters:           rtxParameters(codec.RemotePayloadType),
			})
		}
	}

	for _, ext := range extended.HeaderExtensions {
		if !ext.Direction.canReceive() {
			continue
		}

		caps.HeaderExtensions = append(caps.HeaderExtensions, RTPHeaderExtensionCapability{
			Kind:        ext.Kind,
			URI:         ext.URI,
			PreferredID: ext.RecvID,
		})
	}

	return caps
}

// DeriveSendingParameters returns the parameters used to send media of the
// given kind. Only the first codec of that kind is used, followed by its
// RTX codec when negotiated.
func DeriveSendingParameters(kind RTPCodecType, extended ExtendedRTPCapabilities) RTPParameters {
	return sendingParameters(kind, extended, false)
}

// DeriveRemoteSendingParameters is DeriveSendingParameters with the remote
// codec parameters, for the description handed to the remote side. Only
// one congestion control feedback survives: transport-cc when the
// transport-wide-cc extension is negotiated, goog-remb when abs-send-time
// is, none otherwise.
func DeriveRemoteSendingParameters(kind RTPCodecType, extended ExtendedRTPCapabilities) RTPParameters {
	params := sendingParameters(kind, extended, true)

	var strip []string
	switch {
	case hasHeaderExtension(params.HeaderExtensions, sdp.TransportCCURI):
		strip = []string{TypeRTCPFBGoogREMB}
	case hasHeaderExtension(params.HeaderExtensions, sdp.ABSSendTimeURI):
		strip = []string{TypeRTCPFBTransportCC}
	default:
		strip = []string{TypeRTCPFBTransportCC, TypeRTCPFBGoogREMB}
	}

	for i := range params.Codecs {
		params.Codecs[i].RTCPFeedback = withoutRTCPFeedback(params.Codecs[i].RTCPFeedback, strip...)
	}

	return params
}

// CanSendKind reports whether any negotiated codec is of the given kind.
func CanSendKind(kind RTPCodecType, extended ExtendedRTPCapabilities) bool {
	for _, codec := range extended.Codecs {
		if codec.Kind == kind {
			return true
		}
	}

	return false
}

// CanReceiveParameters reports whether the first codec of params was
// negotiated, comparing against the remote payload types.
func CanReceiveParameters(params RTPParameters, extended ExtendedRTPCapabilities) bool {
	if len(params.Codecs) == 0 {
		return false
	}

	first := params.Codecs[0]
	for _, codec := range extended.Codecs {
		if codec.RemotePayloadType == first.PayloadType {
			return true
		}
	}

	return false
}

// CodecForPacket resolves the codec of an RTP packet sent by the remote
// side. rtx is set when the payload type is the codec's RTX payload type.
func (e ExtendedRTPCapabilities) CodecForPacket(header *rtp.Header) (codec ExtendedCodec, rtx bool, ok bool) {
	if header == nil {
		return ExtendedCodec{}, false, false
	}

	payloadType := PayloadType(header.PayloadType)
	for _, c := range e.Codecs {
		if c.RemotePayloadType == payloadType {
			return c, false, true
		}
		if c.RemoteRTXPayloadType != nil && *c.RemoteRTXPayloadType == payloadType {
			return c, true, true
		}
	}

	return ExtendedCodec{}, false, false
}

func sendingParameters(kind RTPCodecType, extended ExtendedRTPCapabilities, remoteParameters bool) RTPParameters {
	params := RTPParameters{
		Codecs:           []RTPCodecParameters{},
		HeaderExtensions: []RTPHeaderExtensionParameters{},
	}

	for _, codec := range extended.Codecs {
		if codec.Kind != kind {
			continue
		}

		parameters := codec.LocalParameters
		if remoteParameters {
			parameters = codec.RemoteParameters
		}

		params.Codecs = append(params.Codecs, RTPCodecParameters{
			MimeType:     codec.MimeType,
			PayloadType:  codec.LocalPayloadType,
			ClockRate:    codec.ClockRate,
			Channels:     codec.Channels,
			RTCPFeedback: cloneRTCPFeedback(codec.RTCPFeedback),
			Parameters:   parameters.Clone(),
		})

		if codec.LocalRTXPayloadType != nil {
			params.Codecs = append(params.Codecs, RTPCodecParameters{
				MimeType:     rtxMimeType(codec.Kind),
				PayloadType:  *codec.LocalRTXPayloadType,
				ClockRate:    codec.ClockRate,
				RTCPFeedback: []RTCPFeedback{},
				Parameters:   rtxParameters(codec.LocalPayloadType),
			})
		}

		break
	}

	for _, ext := range extended.HeaderExtensions {
		if (ext.Kind != 0 && ext.Kind != kind) || !ext.Direction.canSend() {
			continue
		}

		params.HeaderExtensions = append(params.HeaderExtensions, RTPHeaderExtensionParameters{
			URI: ext.URI,
			ID:  ext.SendID,
		})
	}

	return params
}

// matchCodec reports whether local can be paired with remote. The returned
// capability is a copy of local carrying the parameters selected during
// matching (the H.264 answer profile-level-id when strict).
func matchCodec(local, remote RTPCodecCapability, strict bool) (RTPCodecCapability, bool) {
	mimeType := strings.ToLower(local.MimeType)
	if mimeType != strings.ToLower(remote.MimeType) {
		return RTPCodecCapability{}, false
	}

	if local.ClockRate != remote.ClockRate {
		return RTPCodecCapability{}, false
	}

	// Zero and one channel are both the mono default.
	if strings.HasPrefix(mimeType, "audio/") &&
		((local.Channels != 0 && local.Channels != 1) || (remote.Channels != 0 && remote.Channels != 1)) &&
		local.Channels != remote.Channels {
		return RTPCodecCapability{}, false
	}

	parameters, ok := fmtp.Negotiate(mimeType, local.Parameters, remote.Parameters, strict)
	if !ok {
		return RTPCodecCapability{}, false
	}

	matched := local
	matched.Parameters = CodecParameters(parameters)
	matched.RTCPFeedback = cloneRTCPFeedback(local.RTCPFeedback)

	return matched, true
}

func matchHeaderExtension(local, remote RTPHeaderExtensionCapability) bool {
	if local.Kind != 0 && remote.Kind != 0 && local.Kind != remote.Kind {
		return false
	}

	return local.URI == remote.URI
}

// reduceRTCPFeedback keeps the local feedback the remote also supports, in
// local order.
func reduceRTCPFeedback(local, remote RTPCodecCapability) []RTCPFeedback {
	reduced := []RTCPFeedback{}
	for _, localFb := range local.RTCPFeedback {
		for _, remoteFb := range remote.RTCPFeedback {
			if remoteFb.Type == localFb.Type && remoteFb.Parameter == localFb.Parameter {
				reduced = append(reduced, remoteFb)

				break
			}
		}
	}

	return reduced
}

func findRTXCodec(codecs []RTPCodecCapability, apt PayloadType) (RTPCodecCapability, bool) {
	for _, codec := range codecs {
		if !codec.isRTX() {
			continue
		}
		if codecApt, ok := codec.Parameters.apt(); ok && codecApt == apt {
			return codec, true
		}
	}

	return RTPCodecCapability{}, false
}

func hasHeaderExtension(exts []RTPHeaderExtensionParameters, uri string) bool {
	for _, ext := range exts {
		if ext.URI == uri {
			return true
		}
	}

	return false
}
