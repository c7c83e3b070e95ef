// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"fmt"

	"github.com/pion/ice/v4"

	"github.com/pion/remotesdp/pkg/rtcerr"
)

// iceComponentRTP is the only component written, rtcp-mux is mandatory.
const iceComponentRTP = 1

// ICECandidate represents a candidate of the remote side.
type ICECandidate struct {
	Foundation     string           `json:"foundation"`
	Priority       uint32           `json:"priority"`
	Address        string           `json:"address"`
	Protocol       ICEProtocol      `json:"protocol"`
	Port           uint16           `json:"port"`
	Typ            ICECandidateType `json:"type"`
	RelatedAddress string           `json:"relatedAddress"`
	RelatedPort    uint16           `json:"relatedPort"`
	TCPType        string           `json:"tcpType"`
}

func (c ICECandidate) toICE() (cand ice.Candidate, err error) {
	switch c.Typ {
	case ICECandidateTypeHost:
		config := ice.CandidateHostConfig{
			Network:    c.Protocol.String(),
			Address:    c.Address,
			Port:       int(c.Port),
			Component:  iceComponentRTP,
			TCPType:    ice.NewTCPType(c.TCPType),
			Foundation: c.Foundation,
			Priority:   c.Priority,
		}

		cand, err = ice.NewCandidateHost(&config)
	case ICECandidateTypeSrflx:
		config := ice.CandidateServerReflexiveConfig{
			Network:    c.Protocol.String(),
			Address:    c.Address,
			Port:       int(c.Port),
			Component:  iceComponentRTP,
			Foundation: c.Foundation,
			Priority:   c.Priority,
			RelAddr:    c.RelatedAddress,
			RelPort:    int(c.RelatedPort),
		}

		cand, err = ice.NewCandidateServerReflexive(&config)
	case ICECandidateTypePrflx:
		config := ice.CandidatePeerReflexiveConfig{
			Network:    c.Protocol.String(),
			Address:    c.Address,
			Port:       int(c.Port),
			Component:  iceComponentRTP,
			Foundation: c.Foundation,
			Priority:   c.Priority,
			RelAddr:    c.RelatedAddress,
			RelPort:    int(c.RelatedPort),
		}

		cand, err = ice.NewCandidatePeerReflexive(&config)
	case ICECandidateTypeRelay:
		config := ice.CandidateRelayConfig{
			Network:    c.Protocol.String(),
			Address:    c.Address,
			Port:       int(c.Port),
			Component:  iceComponentRTP,
			Foundation: c.Foundation,
			Priority:   c.Priority,
			RelAddr:    c.RelatedAddress,
			RelPort:    int(c.RelatedPort),
		}

		cand, err = ice.NewCandidateRelay(&config)
	default:
		return nil, fmt.Errorf("%w: %s", errICECandidateTypeUnknown, c.Typ)
	}

	return cand, err
}

// marshal renders the value of an a=candidate attribute.
func (c ICECandidate) marshal() (string, error) {
	if _, err := NewICEProtocol(c.Protocol.String()); err != nil {
		return "", &rtcerr.NotSupportedError{Err: err}
	}

	cand, err := c.toICE()
	if err != nil {
		return "", &rtcerr.InvalidAccessError{Err: err}
	}

	return cand.Marshal(), nil
}

func marshalICECandidates(candidates []ICECandidate) ([]string, error) {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		line, err := c.marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}

	return out, nil
}
