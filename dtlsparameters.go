// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"fmt"
	"strings"

	"github.com/pion/dtls/v3/pkg/crypto/fingerprint"

	"github.com/pion/remotesdp/pkg/rtcerr"
)

// DTLSFingerprint specifies the hash function algorithm and certificate
// fingerprint as described in https://tools.ietf.org/html/rfc4572.
type DTLSFingerprint struct {
	// Algorithm specifies one of the the hash function algorithms defined in
	// the 'Hash function Textual Names' registry.
	Algorithm string `json:"algorithm"`

	// Value specifies the value of the certificate fingerprint in lowercase
	// hex string as expressed utilizing the syntax of 'fingerprint' in
	// https://tools.ietf.org/html/rfc4572#section-5.
	Value string `json:"value"`
}

// DTLSParameters holds information relating to DTLS configuration.
type DTLSParameters struct {
	Role         DTLSRole          `json:"role"`
	Fingerprints []DTLSFingerprint `json:"fingerprints"`
}

func (p DTLSParameters) validate() error {
	if len(p.Fingerprints) == 0 {
		return &rtcerr.InvalidAccessError{Err: ErrNoDTLSFingerprints}
	}

	for _, fp := range p.Fingerprints {
		if _, err := fingerprint.HashFromString(strings.ToLower(fp.Algorithm)); err != nil {
			return &rtcerr.NotSupportedError{Err: fmt.Errorf("%w: %s: %v", ErrInvalidFingerprint, fp.Algorithm, err)}
		}
		if fp.Value == "" {
			return &rtcerr.InvalidAccessError{Err: fmt.Errorf("%w: empty %s value", ErrInvalidFingerprint, fp.Algorithm)}
		}
	}

	return nil
}

// lastFingerprint is the fingerprint written to the session description.
func (p DTLSParameters) lastFingerprint() DTLSFingerprint {
	return p.Fingerprints[len(p.Fingerprints)-1]
}

func (p DTLSParameters) clone() DTLSParameters {
	return DTLSParameters{
		Role:         p.Role,
		Fingerprints: append([]DTLSFingerprint{}, p.Fingerprints...),
	}
}
