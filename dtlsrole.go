// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"fmt"

	"github.com/pion/sdp/v3"
)

// DTLSRole indicates the role of the DTLS transport of the remote side.
type DTLSRole byte

const (
	// DTLSRoleAuto defines the DTLS role is determined based on
	// the resolved ICE role: the ICE controlled role acts as the DTLS
	// client and the ICE controlling role acts as the DTLS server.
	DTLSRoleAuto DTLSRole = iota + 1

	// DTLSRoleClient defines the DTLS client role.
	DTLSRoleClient

	// DTLSRoleServer defines the DTLS server role.
	DTLSRoleServer
)

func (r DTLSRole) String() string {
	switch r {
	case DTLSRoleAuto:
		return "auto"
	case DTLSRoleClient:
		return "client"
	case DTLSRoleServer:
		return "server"
	default:
		return unknownStr
	}
}

// connectionRole is the setup attribute a side in role r writes in an
// answer.
func (r DTLSRole) connectionRole() sdp.ConnectionRole {
	switch r {
	case DTLSRoleClient:
		return sdp.ConnectionRoleActive
	case DTLSRoleServer:
		return sdp.ConnectionRolePassive
	case DTLSRoleAuto:
		return sdp.ConnectionRoleActpass
	default:
		return sdp.ConnectionRole(0)
	}
}

// dtlsRoleFromConnectionRole returns the role of the side that wrote the
// setup attribute.
func dtlsRoleFromConnectionRole(raw string) (DTLSRole, error) {
	switch raw {
	case sdp.ConnectionRoleActive.String():
		return DTLSRoleClient, nil
	case sdp.ConnectionRolePassive.String():
		return DTLSRoleServer, nil
	case sdp.ConnectionRoleActpass.String():
		return DTLSRoleAuto, nil
	default:
		return DTLSRole(Unknown), fmt.Errorf("%w: %q", ErrUnknownConnectionRole, raw)
	}
}
