// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

// RTPTransceiverDirection indicates the direction of a media section or a
// header extension.
type RTPTransceiverDirection int

const (
	// RTPTransceiverDirectionSendrecv indicates media is both sent and
	// received.
	RTPTransceiverDirectionSendrecv RTPTransceiverDirection = iota + 1

	// RTPTransceiverDirectionSendonly indicates media is only sent.
	RTPTransceiverDirectionSendonly

	// RTPTransceiverDirectionRecvonly indicates media is only received.
	RTPTransceiverDirectionRecvonly

	// RTPTransceiverDirectionInactive indicates media is neither sent nor
	// received.
	RTPTransceiverDirectionInactive
)

// This is done this way because of a linter.
const (
	rtpTransceiverDirectionSendrecvStr = "sendrecv"
	rtpTransceiverDirectionSendonlyStr = "sendonly"
	rtpTransceiverDirectionRecvonlyStr = "recvonly"
	rtpTransceiverDirectionInactiveStr = "inactive"
)

// NewRTPTransceiverDirection defines a procedure for creating a new
// RTPTransceiverDirection from a raw string naming the transceiver direction.
func NewRTPTransceiverDirection(raw string) RTPTransceiverDirection {
	switch raw {
	case rtpTransceiverDirectionSendrecvStr:
		return RTPTransceiverDirectionSendrecv
	case rtpTransceiverDirectionSendonlyStr:
		return RTPTransceiverDirectionSendonly
	case rtpTransceiverDirectionRecvonlyStr:
		return RTPTransceiverDirectionRecvonly
	case rtpTransceiverDirectionInactiveStr:
		return RTPTransceiverDirectionInactive
	default:
		return RTPTransceiverDirection(Unknown)
	}
}

func (t RTPTransceiverDirection) String() string {
	switch t {
	case RTPTransceiverDirectionSendrecv:
		return rtpTransceiverDirectionSendrecvStr
	case RTPTransceiverDirectionSendonly:
		return rtpTransceiverDirectionSendonlyStr
	case RTPTransceiverDirectionRecvonly:
		return rtpTransceiverDirectionRecvonlyStr
	case RTPTransceiverDirectionInactive:
		return rtpTransceiverDirectionInactiveStr
	default:
		return ErrUnknownType.Error()
	}
}

// Revers converts a direction stated by the remote into the local frame of
// reference. Unknown is treated as sendrecv.
func (t RTPTransceiverDirection) Revers() RTPTransceiverDirection {
	switch t {
	case RTPTransceiverDirectionSendonly:
		return RTPTransceiverDirectionRecvonly
	case RTPTransceiverDirectionRecvonly:
		return RTPTransceiverDirectionSendonly
	case RTPTransceiverDirectionInactive:
		return RTPTransceiverDirectionInactive
	default:
		return RTPTransceiverDirectionSendrecv
	}
}

func (t RTPTransceiverDirection) canSend() bool {
	return t == RTPTransceiverDirectionSendrecv || t == RTPTransceiverDirectionSendonly
}

func (t RTPTransceiverDirection) canReceive() bool {
	return t == RTPTransceiverDirectionSendrecv || t == RTPTransceiverDirectionRecvonly
}
