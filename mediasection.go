// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/logging"
	"github.com/pion/sdp/v3"

	"github.com/pion/remotesdp/pkg/rtcerr"
)

// MediaSectionRole tells how a MediaSection was built.
type MediaSectionRole int

const (
	// MediaSectionRoleAnswer is a section answering a local offer: it
	// describes what the remote side receives from a local sender.
	MediaSectionRoleAnswer MediaSectionRole = iota + 1

	// MediaSectionRoleOffer is a section offered on behalf of the remote
	// side: it describes what the remote sends to a local receiver.
	MediaSectionRoleOffer
)

func (r MediaSectionRole) String() string {
	switch r {
	case MediaSectionRoleAnswer:
		return "answer"
	case MediaSectionRoleOffer:
		return "offer"
	default:
		return ErrUnknownType.Error()
	}
}

// SendSectionParameters describe the answer to one m= section of a local
// offer.
type SendSectionParameters struct {
	// OfferMediaDescription is the m= section of the local offer. Its mid,
	// media type, protocol, extmap and simulcast attributes are used.
	OfferMediaDescription *sdp.MediaDescription

	// OfferRTPParameters are the parameters the local side offered. When
	// CodecOptions are given, overrides that the local encoder must know
	// about are written back into their codec parameters.
	OfferRTPParameters *RTPParameters

	// AnswerRTPParameters are the parameters of the answer, usually from
	// DeriveRemoteSendingParameters.
	AnswerRTPParameters RTPParameters

	CodecOptions *CodecOptions
}

// RecvSectionParameters describe a track the remote side is asked to send.
type RecvSectionParameters struct {
	MID  string
	Kind RTPCodecType

	// OfferRTPParameters must carry at least one encoding, its SSRC and RTX
	// SSRC are announced.
	OfferRTPParameters RTPParameters

	// StreamID defaults to "-".
	StreamID string
	TrackID  string
}

// sectionTransport is the session level state every section carries a copy
// of.
type sectionTransport struct {
	ice        *ICEParameters
	candidates []string
	dtls       *DTLSParameters
	plainRTP   *PlainRTPParameters
	planB      bool
}

type mediaCodec struct {
	payloadType PayloadType
	name        string
	clockRate   uint32
	channels    uint16
	fmtp        string
	feedback    []RTCPFeedback
}

type ssrcAttribute struct {
	ssrc      SSRC
	attribute string
	value     string
}

type ssrcGroup struct {
	semantics string
	ssrcs     string
}

func (g ssrcGroup) String() string {
	return g.semantics + " " + g.ssrcs
}

// MediaSection is one m= section of the remote session description.
type MediaSection struct {
	role  MediaSectionRole
	planB bool

	mid         string
	media       string
	protos      []string
	port        int
	addressType string
	address     string
	direction   RTPTransceiverDirection

	iceUfrag      string
	icePwd        string
	hasCandidates bool
	candidates    []string
	setup         sdp.ConnectionRole

	msid        string
	codecs      []mediaCodec
	extensions  []RTPHeaderExtensionParameters
	ssrcs       []ssrcAttribute
	ssrcGroups  []ssrcGroup
	simulcast   string
	rids        []string
	xGoogleFlag string
}

func newMediaSection(role MediaSectionRole, transport sectionTransport) *MediaSection {
	m := &MediaSection{
		role:        role,
		planB:       transport.planB,
		port:        placeholderPort,
		addressType: "IP4",
		address:     placeholderAddress,
	}

	if transport.plainRTP != nil {
		m.port = transport.plainRTP.Port
		m.addressType = transport.plainRTP.addressType()
		m.address = transport.plainRTP.IP
		m.protos = strings.Split(protoPlainRTP, "/")
	}

	if transport.ice != nil {
		m.setICEParameters(*transport.ice)
	}

	if transport.candidates != nil {
		m.hasCandidates = true
		m.candidates = append([]string{}, transport.candidates...)
	}

	if transport.dtls != nil {
		m.setDTLSRole(transport.dtls.Role)
	}

	return m
}

func newAnswerMediaSection(
	transport sectionTransport,
	params SendSectionParameters,
	log logging.LeveledLogger,
) (*MediaSection, error) {
	offer := params.OfferMediaDescription
	if offer == nil {
		return nil, &rtcerr.InvalidAccessError{Err: ErrMissingOfferMediaDescription}
	}
	if params.CodecOptions != nil && params.OfferRTPParameters == nil {
		return nil, &rtcerr.InvalidAccessError{Err: ErrMissingOfferRTPParameters}
	}

	mid, ok := offer.Attribute(sdp.AttrKeyMID)
	if !ok || mid == "" {
		return nil, &rtcerr.InvalidAccessError{Err: ErrMissingMID}
	}
	if len(params.AnswerRTPParameters.Codecs) == 0 {
		return nil, &rtcerr.InvalidAccessError{Err: fmt.Errorf("%w: mid %s", ErrNoCodecs, mid)}
	}

	m := newMediaSection(MediaSectionRoleAnswer, transport)
	m.mid = mid
	m.media = offer.MediaName.Media
	if transport.plainRTP == nil {
		m.protos = append([]string{}, offer.MediaName.Protos...)
	}
	m.direction = RTPTransceiverDirectionRecvonly

	for _, codec := range params.AnswerRTPParameters.Codecs {
		parameters := codec.Parameters.Clone()

		if params.CodecOptions != nil {
			offerParameters := offerCodecParameters(params.OfferRTPParameters, codec.PayloadType)
			if offerParameters == nil {
				log.Warnf("mid %s: offer has no codec with payload type %d, codec options only applied to the answer",
					mid, codec.PayloadType)
			}
			params.CodecOptions.apply(codec.MimeType, parameters, offerParameters)
		}

		m.codecs = append(m.codecs, mediaCodec{
			payloadType: codec.PayloadType,
			name:        mimeSubtype(codec.MimeType),
			clockRate:   codec.ClockRate,
			channels:    codec.Channels,
			fmtp:        parameters.String(),
			feedback:    cloneRTCPFeedback(codec.RTCPFeedback),
		})
	}

	offeredURIs := extMapURIs(offer)
	for _, ext := range params.AnswerRTPParameters.HeaderExtensions {
		if _, offered := offeredURIs[ext.URI]; !offered {
			continue
		}
		m.extensions = append(m.extensions, ext)
	}

	if simulcast, ok := offer.Attribute(attrKeySimulcast); ok {
		if answer, ok := answerSimulcast(simulcast); ok {
			m.simulcast = answer
			m.rids = answerRIDs(offer)
		} else {
			log.Warnf("mid %s: ignoring unparsable simulcast attribute %q", mid, simulcast)
		}
	}

	if m.planB && m.media == RTPCodecTypeVideo.String() {
		m.xGoogleFlag = "conference"
	}

	return m, nil
}

func newOfferMediaSection(transport sectionTransport, params RecvSectionParameters) (*MediaSection, error) {
	if params.MID == "" {
		return nil, &rtcerr.InvalidAccessError{Err: ErrMissingMID}
	}
	if len(params.OfferRTPParameters.Codecs) == 0 {
		return nil, &rtcerr.InvalidAccessError{Err: fmt.Errorf("%w: mid %s", ErrNoCodecs, params.MID)}
	}
	if len(params.OfferRTPParameters.Encodings) == 0 {
		return nil, &rtcerr.InvalidAccessError{Err: fmt.Errorf("%w: mid %s", ErrNoEncodings, params.MID)}
	}

	m := newMediaSection(MediaSectionRoleOffer, transport)
	m.mid = params.MID
	m.media = params.Kind.String()
	if transport.plainRTP == nil {
		m.protos = strings.Split(protoWebRTC, "/")
	}
	m.direction = RTPTransceiverDirectionSendonly

	if !m.planB {
		m.msid = msidValue(params.StreamID, params.TrackID)
	}

	for _, codec := range params.OfferRTPParameters.Codecs {
		m.codecs = append(m.codecs, mediaCodec{
			payloadType: codec.PayloadType,
			name:        mimeSubtype(codec.MimeType),
			clockRate:   codec.ClockRate,
			channels:    codec.Channels,
			fmtp:        codec.Parameters.String(),
			feedback:    cloneRTCPFeedback(codec.RTCPFeedback),
		})
	}

	m.extensions = append([]RTPHeaderExtensionParameters{}, params.OfferRTPParameters.HeaderExtensions...)

	m.addTrackSSRCs(params.OfferRTPParameters, params.StreamID, params.TrackID, m.planB)

	return m, nil
}

// MID returns the media stream identification of the section.
func (m *MediaSection) MID() string {
	return m.mid
}

// Kind returns the media kind of the section.
func (m *MediaSection) Kind() RTPCodecType {
	return NewRTPCodecType(m.media)
}

// Role returns how the section was built.
func (m *MediaSection) Role() MediaSectionRole {
	return m.role
}

// Direction returns the direction written for the remote side.
func (m *MediaSection) Direction() RTPTransceiverDirection {
	return m.direction
}

// SSRCs returns the distinct SSRCs announced in the section, in order.
func (m *MediaSection) SSRCs() []SSRC {
	seen := map[SSRC]struct{}{}
	out := []SSRC{}
	for _, s := range m.ssrcs {
		if _, ok := seen[s.ssrc]; ok {
			continue
		}
		seen[s.ssrc] = struct{}{}
		out = append(out, s.ssrc)
	}

	return out
}

func (m *MediaSection) setICEParameters(params ICEParameters) {
	m.iceUfrag = params.UsernameFragment
	m.icePwd = params.Password
}

func (m *MediaSection) setDTLSRole(role DTLSRole) {
	if m.role == MediaSectionRoleOffer {
		// An offer always lets the answerer pick.
		m.setup = sdp.ConnectionRoleActpass

		return
	}

	m.setup = role.connectionRole()
}

func (m *MediaSection) disable() {
	m.direction = RTPTransceiverDirectionInactive
	m.extensions = nil
	m.ssrcs = nil
	m.ssrcGroups = nil
	m.simulcast = ""
	m.rids = nil
}

func (m *MediaSection) planBReceive(params RTPParameters, streamID, trackID string) error {
	if m.role != MediaSectionRoleOffer {
		return &rtcerr.InvalidStateError{Err: fmt.Errorf("%w: mid %s is %s", ErrMediaSectionRole, m.mid, m.role)}
	}
	if len(params.Encodings) == 0 {
		return &rtcerr.InvalidAccessError{Err: fmt.Errorf("%w: mid %s", ErrNoEncodings, m.mid)}
	}

	m.addTrackSSRCs(params, streamID, trackID, true)

	return nil
}

func (m *MediaSection) planBStopReceiving(params RTPParameters) error {
	if m.role != MediaSectionRoleOffer {
		return &rtcerr.InvalidStateError{Err: fmt.Errorf("%w: mid %s is %s", ErrMediaSectionRole, m.mid, m.role)}
	}
	if len(params.Encodings) == 0 {
		return &rtcerr.InvalidAccessError{Err: fmt.Errorf("%w: mid %s", ErrNoEncodings, m.mid)}
	}

	encoding := params.Encodings[0]
	ssrcs := m.ssrcs[:0]
	for _, s := range m.ssrcs {
		if s.ssrc == encoding.SSRC || (encoding.RTX.SSRC != 0 && s.ssrc == encoding.RTX.SSRC) {
			continue
		}
		ssrcs = append(ssrcs, s)
	}
	m.ssrcs = ssrcs

	if encoding.RTX.SSRC != 0 {
		pair := fidSSRCs(encoding)
		groups := m.ssrcGroups[:0]
		for _, g := range m.ssrcGroups {
			if g.ssrcs == pair {
				continue
			}
			groups = append(groups, g)
		}
		m.ssrcGroups = groups
	}

	return nil
}

// addTrackSSRCs announces the first encoding of params. withMSID adds the
// Plan-B style a=ssrc msid lines.
func (m *MediaSection) addTrackSSRCs(params RTPParameters, streamID, trackID string, withMSID bool) {
	encoding := params.Encodings[0]
	msid := msidValue(streamID, trackID)

	add := func(ssrc SSRC) {
		if params.RTCP.CNAME != "" {
			m.ssrcs = append(m.ssrcs, ssrcAttribute{ssrc, ssrcAttributeCNAME, params.RTCP.CNAME})
		}
		if withMSID {
			m.ssrcs = append(m.ssrcs, ssrcAttribute{ssrc, ssrcAttributeMSID, msid})
		}
	}

	add(encoding.SSRC)

	if encoding.RTX.SSRC != 0 {
		add(encoding.RTX.SSRC)
		m.ssrcGroups = append(m.ssrcGroups, ssrcGroup{
			semantics: sdp.SemanticTokenFlowIdentification,
			ssrcs:     fidSSRCs(encoding),
		})
	}
}

// MediaDescription renders the section.
func (m *MediaSection) MediaDescription() *sdp.MediaDescription {
	formats := make([]string, 0, len(m.codecs))
	for _, c := range m.codecs {
		formats = append(formats, strconv.Itoa(int(c.payloadType)))
	}

	d := &sdp.MediaDescription{
		MediaName: sdp.MediaName{
			Media:   m.media,
			Port:    sdp.RangedPort{Value: m.port},
			Protos:  append([]string{}, m.protos...),
			Formats: formats,
		},
		ConnectionInformation: &sdp.ConnectionInformation{
			NetworkType: "IN",
			AddressType: m.addressType,
			Address:     &sdp.Address{Address: m.address},
		},
	}

	d.WithValueAttribute(sdp.AttrKeyMID, m.mid)

	if m.iceUfrag != "" || m.icePwd != "" {
		d.WithICECredentials(m.iceUfrag, m.icePwd)
	}
	if m.hasCandidates {
		for _, c := range m.candidates {
			d.WithValueAttribute(attrKeyCandidate, c)
		}
		d.WithPropertyAttribute(attrKeyEndOfCandidates)
		d.WithValueAttribute(attrKeyICEOptions, iceOptionRenomination)
	}

	if m.setup != sdp.ConnectionRole(0) {
		d.WithValueAttribute(sdp.AttrKeyConnectionSetup, m.setup.String())
	}

	if m.msid != "" {
		d.WithValueAttribute(attrKeyMsid, m.msid)
	}

	d.WithPropertyAttribute(m.direction.String())

	for _, ext := range m.extensions {
		d.WithValueAttribute(attrKeyExtMap, fmt.Sprintf("%d %s", ext.ID, ext.URI))
	}

	d.WithPropertyAttribute(sdp.AttrKeyRTCPMux)
	d.WithPropertyAttribute(sdp.AttrKeyRTCPRsize)

	for _, c := range m.codecs {
		rtpmap := fmt.Sprintf("%d %s/%d", c.payloadType, c.name, c.clockRate)
		if c.channels > 1 {
			rtpmap += fmt.Sprintf("/%d", c.channels)
		}
		d.WithValueAttribute(attrKeyRTPMap, rtpmap)

		for _, fb := range c.feedback {
			d.WithValueAttribute(attrKeyRTCPFeedback, fmt.Sprintf("%d %s", c.payloadType, fb))
		}

		if c.fmtp != "" {
			d.WithValueAttribute(attrKeyFmtp, fmt.Sprintf("%d %s", c.payloadType, c.fmtp))
		}
	}

	for _, g := range m.ssrcGroups {
		d.WithValueAttribute(sdp.AttrKeySSRCGroup, g.String())
	}
	for _, s := range m.ssrcs {
		d.WithValueAttribute(sdp.AttrKeySSRC, fmt.Sprintf("%d %s:%s", s.ssrc, s.attribute, s.value))
	}

	for _, rid := range m.rids {
		d.WithValueAttribute(attrKeyRID, rid)
	}
	if m.simulcast != "" {
		d.WithValueAttribute(attrKeySimulcast, m.simulcast)
	}

	if m.xGoogleFlag != "" {
		d.WithValueAttribute(attrKeyXGoogleFlag, m.xGoogleFlag)
	}

	return d
}

func msidValue(streamID, trackID string) string {
	if streamID == "" {
		streamID = "-"
	}

	return streamID + " " + trackID
}

func fidSSRCs(encoding RTPEncodingParameters) string {
	return fmt.Sprintf("%d %d", encoding.SSRC, encoding.RTX.SSRC)
}

func offerCodecParameters(params *RTPParameters, payloadType PayloadType) CodecParameters {
	for i := range params.Codecs {
		if params.Codecs[i].PayloadType != payloadType {
			continue
		}
		if params.Codecs[i].Parameters == nil {
			params.Codecs[i].Parameters = CodecParameters{}
		}

		return params.Codecs[i].Parameters
	}

	return nil
}

// extMapURIs returns the URIs of the a=extmap lines of d.
func extMapURIs(d *sdp.MediaDescription) map[string]struct{} {
	uris := map[string]struct{}{}
	for _, a := range d.Attributes {
		if a.Key != attrKeyExtMap {
			continue
		}
		fields := strings.Fields(a.Value)
		if len(fields) < 2 {
			continue
		}
		uris[fields[1]] = struct{}{}
	}

	return uris
}

// answerSimulcast turns the simulcast attribute of an offer into the one of
// the answer. The draft-03 form ("simulcast: send rid=...") keeps its syntax
// with directions swapped, the RFC 8853 form becomes "recv <send list>".
// pion/sdp keeps the space after the colon of the draft-03 form, and only
// draft-03 prefixes the stream list with "rid=".
func answerSimulcast(offer string) (string, bool) {
	if strings.HasPrefix(offer, " ") || strings.HasPrefix(offer, "\t") || strings.Contains(offer, "rid=") {
		return strings.ReplaceAll(offer, "send", "recv"), true
	}

	fields := strings.Fields(offer)
	if len(fields) < 2 {
		return "", false
	}

	return "recv " + fields[1], true
}

// answerRIDs returns the a=rid values of the answer: every rid the offer
// sends, received.
func answerRIDs(offer *sdp.MediaDescription) []string {
	rids := []string{}
	for _, a := range offer.Attributes {
		if a.Key != attrKeyRID {
			continue
		}
		fields := strings.Fields(a.Value)
		if len(fields) < 2 || fields[1] != "send" {
			continue
		}
		rids = append(rids, fields[0]+" recv")
	}

	return rids
}
