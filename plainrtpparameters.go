// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"fmt"
	"net"

	"github.com/pion/remotesdp/pkg/rtcerr"
)

// PlainRTPParameters describe a remote side reached over plain RTP, without
// DTLS, SRTP or BUNDLE.
type PlainRTPParameters struct {
	IP string
	// IPVersion is 4 or 6.
	IPVersion int
	Port      int
}

func (p PlainRTPParameters) validate() error {
	if p.IPVersion != 4 && p.IPVersion != 6 {
		return &rtcerr.InvalidAccessError{Err: fmt.Errorf("%w: ip version %d", ErrInvalidPlainRTPParameters, p.IPVersion)}
	}
	if net.ParseIP(p.IP) == nil {
		return &rtcerr.InvalidAccessError{Err: fmt.Errorf("%w: ip %q", ErrInvalidPlainRTPParameters, p.IP)}
	}
	if p.Port <= 0 || p.Port > 65535 {
		return &rtcerr.InvalidAccessError{Err: fmt.Errorf("%w: port %d", ErrInvalidPlainRTPParameters, p.Port)}
	}

	return nil
}

func (p PlainRTPParameters) addressType() string {
	if p.IPVersion == 6 {
		return "IP6"
	}

	return "IP4"
}
