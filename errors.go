// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"errors"
)

var (
	// ErrUnknownType indicates an error with Unknown info.
	ErrUnknownType = errors.New("unknown")

	// ErrMediaSectionNotFound indicates an operation referenced a mid that
	// was never added to the RemoteSDP.
	ErrMediaSectionNotFound = errors.New("media section not found")

	// ErrMIDAlreadyExists indicates a Unified-Plan session was asked to add a
	// second receiving section for a mid it already holds.
	ErrMIDAlreadyExists = errors.New("media section already exists for mid")

	// ErrMediaSectionRole indicates the operation is only valid for a
	// section built with a different role.
	ErrMediaSectionRole = errors.New("operation not valid for media section role")

	// ErrNoDTLSParameters indicates a DTLS update was requested on a
	// session that was created without DTLS parameters.
	ErrNoDTLSParameters = errors.New("remote sdp has no dtls parameters")

	// ErrNoDTLSFingerprints indicates DTLSParameters carried no fingerprint.
	ErrNoDTLSFingerprints = errors.New("dtls parameters have no fingerprints")

	// ErrNoCodecs indicates RTPParameters without any codec were used to
	// build a media section.
	ErrNoCodecs = errors.New("rtp parameters have no codecs")

	// ErrNotPlanB indicates a Plan-B only operation was used on a
	// Unified-Plan session.
	ErrNotPlanB = errors.New("session is not in Plan-B mode")

	// ErrNoEncodings indicates RTPParameters without any encoding were used
	// where an SSRC is required.
	ErrNoEncodings = errors.New("rtp parameters have no encodings")

	// ErrMissingOfferMediaDescription indicates an answer section was
	// requested without the local offer's media description.
	ErrMissingOfferMediaDescription = errors.New("offer media description is required")

	// ErrMissingOfferRTPParameters indicates an answer section was requested
	// without the RTP parameters the local side offered.
	ErrMissingOfferRTPParameters = errors.New("offer rtp parameters are required")

	// ErrMissingMID indicates a media section would have no mid.
	ErrMissingMID = errors.New("media section has no mid")

	// ErrInvalidPlainRTPParameters indicates PlainRTPParameters with an
	// unsupported IP version or an empty address.
	ErrInvalidPlainRTPParameters = errors.New("invalid plain rtp parameters")

	// ErrNoActiveMediaSection indicates no media section with ICE
	// credentials and a non-zero port was found.
	ErrNoActiveMediaSection = errors.New("no active media section found")

	// ErrNoFingerprint indicates a session description without any
	// fingerprint attribute.
	ErrNoFingerprint = errors.New("no fingerprint found in session description")

	// ErrInvalidFingerprint indicates a malformed fingerprint attribute.
	ErrInvalidFingerprint = errors.New("invalid fingerprint attribute")

	// ErrUnknownConnectionRole indicates a setup attribute with a value other
	// than active, passive or actpass.
	ErrUnknownConnectionRole = errors.New("unknown connection role")

	// ErrNoSSRC indicates a media description without any a=ssrc line.
	ErrNoSSRC = errors.New("no a=ssrc lines found")

	// ErrInvalidRTPMap indicates a malformed rtpmap attribute.
	ErrInvalidRTPMap = errors.New("invalid rtpmap attribute")

	// ErrInvalidExtMap indicates a malformed extmap attribute.
	ErrInvalidExtMap = errors.New("invalid extmap attribute")

	// ErrInvalidSSRC indicates a malformed ssrc or ssrc-group attribute.
	ErrInvalidSSRC = errors.New("invalid ssrc attribute")

	errICECandidateTypeUnknown = errors.New("unknown candidate type")
	errICEProtocolUnknown      = errors.New("unknown protocol")
)
