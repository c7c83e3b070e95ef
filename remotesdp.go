// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"fmt"
	"strings"

	"github.com/pion/logging"
	"github.com/pion/randutil"
	"github.com/pion/sdp/v3"

	"github.com/pion/remotesdp/internal/metrics"
	"github.com/pion/remotesdp/internal/util"
	"github.com/pion/remotesdp/pkg/rtcerr"
)

// RemoteSDPParameters are the transport parameters of the remote side.
type RemoteSDPParameters struct {
	ICEParameters *ICEParameters

	// ICECandidates are written to every section followed by
	// a=end-of-candidates. A nil slice writes no candidate attributes at all.
	ICECandidates []ICECandidate

	DTLSParameters *DTLSParameters

	// PlainRTPParameters describe a remote side without ICE or DTLS. The
	// connection address of every section is taken from it.
	PlainRTPParameters *PlainRTPParameters

	PlanB bool
}

// RemoteSDP builds the session description of a remote side that never
// runs offer/answer itself. Sections are kept in the order they were added
// and are never removed, only disabled.
//
// A RemoteSDP is not safe for concurrent use.
type RemoteSDP struct {
	iceParameters  *ICEParameters
	iceCandidates  []string
	dtlsParameters *DTLSParameters
	plainRTP       *PlainRTPParameters
	planB          bool

	originUsername string
	sessionID      uint64
	sessionVersion uint64

	bundleMIDs []string
	sections   []*MediaSection
	midToIndex map[string]int

	log     logging.LeveledLogger
	metrics *metrics.Collector
}

// NewRemoteSDP creates a RemoteSDP with default settings.
func NewRemoteSDP(params RemoteSDPParameters) (*RemoteSDP, error) {
	return NewAPI().NewRemoteSDP(params)
}

// NewRemoteSDP creates a RemoteSDP using the settings of the API.
func (api *API) NewRemoteSDP(params RemoteSDPParameters) (*RemoteSDP, error) {
	r := &RemoteSDP{
		planB:          params.PlanB,
		originUsername: defaultOriginUsername,
		midToIndex:     map[string]int{},
		log:            api.settingEngine.LoggerFactory.NewLogger("remotesdp"),
		metrics:        api.metrics,
	}

	var errs []error

	if params.ICEParameters != nil {
		ice := *params.ICEParameters
		r.iceParameters = &ice
	}

	if params.ICECandidates != nil {
		lines, err := marshalICECandidates(params.ICECandidates)
		errs = append(errs, err)
		r.iceCandidates = lines
	}

	if params.DTLSParameters != nil {
		errs = append(errs, params.DTLSParameters.validate())
		dtls := params.DTLSParameters.clone()
		r.dtlsParameters = &dtls
	}

	if params.PlainRTPParameters != nil {
		errs = append(errs, params.PlainRTPParameters.validate())
		plainRTP := *params.PlainRTPParameters
		r.plainRTP = &plainRTP
	}

	if err := util.FlattenErrs(errs); err != nil {
		return nil, err
	}

	if username := api.settingEngine.origin.Username; username != "" {
		r.originUsername = username
	}

	if id := api.settingEngine.origin.SessionID; id != nil {
		r.sessionID = *id
	} else {
		id, err := newSessionID()
		if err != nil {
			return nil, err
		}
		r.sessionID = id
	}

	return r, nil
}

func newSessionID() (uint64, error) {
	// https://tools.ietf.org/html/draft-ietf-rtcweb-jsep-26#section-5.2.1
	// Session ID is recommended to be constructed by generating a 64-bit
	// quantity with the highest bit set to zero and the remaining 63-bits
	// being cryptographically random.
	id, err := randutil.CryptoUint64()

	return id & (^(uint64(1) << 63)), err
}

func (r *RemoteSDP) transport() sectionTransport {
	return sectionTransport{
		ice:        r.iceParameters,
		candidates: r.iceCandidates,
		dtls:       r.dtlsParameters,
		plainRTP:   r.plainRTP,
		planB:      r.planB,
	}
}

// UpdateICEParameters replaces the ICE credentials, for example after an ICE
// restart, in the session and every section.
func (r *RemoteSDP) UpdateICEParameters(params ICEParameters) {
	r.log.Debugf("Updating ICE parameters, ufrag %s", params.UsernameFragment)

	r.iceParameters = &params
	for _, section := range r.sections {
		section.setICEParameters(params)
	}
}

// UpdateDTLSRole changes the DTLS role in the session and every answer
// section. Offer sections keep advertising actpass.
func (r *RemoteSDP) UpdateDTLSRole(role DTLSRole) error {
	if r.dtlsParameters == nil {
		return &rtcerr.InvalidStateError{Err: ErrNoDTLSParameters}
	}

	r.log.Debugf("Updating DTLS role to %s", role)

	r.dtlsParameters.Role = role
	for _, section := range r.sections {
		section.setDTLSRole(role)
	}

	return nil
}

// AddOrUpdateSendSection answers one section of the local offer. A section
// that already exists for the mid is replaced in place.
func (r *RemoteSDP) AddOrUpdateSendSection(params SendSectionParameters) error {
	section, err := newAnswerMediaSection(r.transport(), params, r.log)
	if err != nil {
		return err
	}

	if index, ok := r.midToIndex[section.mid]; ok {
		r.log.Debugf("Replacing answer section mid %s", section.mid)
		r.sections[index] = section
		r.metrics.Section(metrics.OperationReplace)

		return nil
	}

	r.log.Debugf("Adding answer section mid %s", section.mid)
	r.addSection(section)
	r.metrics.Section(metrics.OperationAdd)

	return nil
}

// AddOrUpdateRecvSection offers a track the remote side is asked to send.
// With Plan-B the SSRCs of a further track are appended to the section of an
// existing mid, with Unified-Plan an existing mid is an error.
func (r *RemoteSDP) AddOrUpdateRecvSection(params RecvSectionParameters) error {
	if index, ok := r.midToIndex[params.MID]; ok {
		if !r.planB {
			return &rtcerr.InvalidStateError{Err: fmt.Errorf("%w: %s", ErrMIDAlreadyExists, params.MID)}
		}

		r.log.Debugf("Adding Plan-B track %s to mid %s", params.TrackID, params.MID)
		if err := r.sections[index].planBReceive(params.OfferRTPParameters, params.StreamID, params.TrackID); err != nil {
			return err
		}
		r.metrics.Section(metrics.OperationAddTrack)

		return nil
	}

	section, err := newOfferMediaSection(r.transport(), params)
	if err != nil {
		return err
	}

	r.log.Debugf("Adding offer section mid %s", section.mid)
	r.addSection(section)
	r.metrics.Section(metrics.OperationAdd)

	return nil
}

// DisableSection makes the section of mid inactive. The section stays in
// place to keep the mid order of later rounds.
func (r *RemoteSDP) DisableSection(mid string) error {
	section, err := r.MediaSection(mid)
	if err != nil {
		return err
	}

	r.log.Debugf("Disabling section mid %s", mid)
	section.disable()
	r.metrics.Section(metrics.OperationDisable)

	return nil
}

// RemovePlanBTrack removes the SSRCs of the first encoding of params from
// the shared Plan-B section of mid.
func (r *RemoteSDP) RemovePlanBTrack(mid string, params RTPParameters) error {
	if !r.planB {
		return &rtcerr.InvalidStateError{Err: fmt.Errorf("%w: mid %s", ErrNotPlanB, mid)}
	}

	section, err := r.MediaSection(mid)
	if err != nil {
		return err
	}

	r.log.Debugf("Removing Plan-B track from mid %s", mid)
	if err := section.planBStopReceiving(params); err != nil {
		return err
	}
	r.metrics.Section(metrics.OperationRemoveTrack)

	return nil
}

// Serialize renders the session description. Every call starts a new
// negotiation round and increments the session version, so it must not be
// used to inspect the current state.
func (r *RemoteSDP) Serialize() (string, error) {
	r.sessionVersion++
	r.metrics.Round()

	raw, err := r.sessionDescription().Marshal()
	if err != nil {
		return "", err
	}

	r.log.Tracef("Serialized remote description version %d:\n%s", r.sessionVersion, raw)

	return string(raw), nil
}

// MediaSection returns the section of mid.
func (r *RemoteSDP) MediaSection(mid string) (*MediaSection, error) {
	index, ok := r.midToIndex[mid]
	if !ok {
		return nil, &rtcerr.InvalidStateError{Err: fmt.Errorf("%w: %s", ErrMediaSectionNotFound, mid)}
	}

	return r.sections[index], nil
}

// MIDs returns the mids of all sections in order.
func (r *RemoteSDP) MIDs() []string {
	mids := make([]string, 0, len(r.sections))
	for _, section := range r.sections {
		mids = append(mids, section.mid)
	}

	return mids
}

// SessionVersion returns the version written by the last Serialize.
func (r *RemoteSDP) SessionVersion() uint64 {
	return r.sessionVersion
}

func (r *RemoteSDP) addSection(section *MediaSection) {
	r.midToIndex[section.mid] = len(r.sections)
	r.sections = append(r.sections, section)

	if r.dtlsParameters != nil {
		r.bundleMIDs = append(r.bundleMIDs, section.mid)
	}
}

func (r *RemoteSDP) sessionDescription() *sdp.SessionDescription {
	addressType, address := "IP4", "0.0.0.0"
	if r.plainRTP != nil {
		addressType, address = r.plainRTP.addressType(), r.plainRTP.IP
	}

	d := &sdp.SessionDescription{
		Version: 0,
		Origin: sdp.Origin{
			Username:       r.originUsername,
			SessionID:      r.sessionID,
			SessionVersion: r.sessionVersion,
			NetworkType:    "IN",
			AddressType:    addressType,
			UnicastAddress: address,
		},
		SessionName: defaultSessionName,
		TimeDescriptions: []sdp.TimeDescription{
			{
				Timing: sdp.Timing{
					StartTime: 0,
					StopTime:  0,
				},
			},
		},
	}

	if r.iceParameters != nil && r.iceParameters.ICELite {
		d.WithPropertyAttribute(sdp.AttrKeyICELite)
	}

	if r.dtlsParameters != nil {
		fingerprint := r.dtlsParameters.lastFingerprint()
		d.WithFingerprint(fingerprint.Algorithm, fingerprint.Value)
		if len(r.bundleMIDs) > 0 {
			d.WithValueAttribute(sdp.AttrKeyGroup, bundleSemantic+" "+strings.Join(r.bundleMIDs, " "))
		}
		d.WithValueAttribute(attrKeyMsidSemantic, msidSemanticWMS)
	}

	for _, section := range r.sections {
		d.WithMedia(section.MediaDescription())
	}

	return d
}
