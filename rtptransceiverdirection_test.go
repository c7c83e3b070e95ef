// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRTPTransceiverDirection(t *testing.T) {
	testCases := []struct {
		directionString   string
		expectedDirection RTPTransceiverDirection
	}{
		{unknownStr, RTPTransceiverDirection(Unknown)},
		{"sendrecv", RTPTransceiverDirectionSendrecv},
		{"sendonly", RTPTransceiverDirectionSendonly},
		{"recvonly", RTPTransceiverDirectionRecvonly},
		{"inactive", RTPTransceiverDirectionInactive},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expectedDirection,
			NewRTPTransceiverDirection(testCase.directionString),
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestRTPTransceiverDirection_String(t *testing.T) {
	testCases := []struct {
		direction      RTPTransceiverDirection
		expectedString string
	}{
		{RTPTransceiverDirection(Unknown), unknownStr},
		{RTPTransceiverDirectionSendrecv, "sendrecv"},
		{RTPTransceiverDirectionSendonly, "sendonly"},
		{RTPTransceiverDirectionRecvonly, "recvonly"},
		{RTPTransceiverDirectionInactive, "inactive"},
	}

	for i, testCase := range testCases {
		assert.Equal(t,
			testCase.expectedString,
			testCase.direction.String(),
			"testCase: %d %v", i, testCase,
		)
	}
}

func TestRTPTransceiverDirection_Revers(t *testing.T) {
	testCases := []struct {
		direction  RTPTransceiverDirection
		reversed   RTPTransceiverDirection
		canSend    bool
		canReceive bool
	}{
		{RTPTransceiverDirectionSendrecv, RTPTransceiverDirectionSendrecv, true, true},
		{RTPTransceiverDirectionSendonly, RTPTransceiverDirectionRecvonly, true, false},
		{RTPTransceiverDirectionRecvonly, RTPTransceiverDirectionSendonly, false, true},
		{RTPTransceiverDirectionInactive, RTPTransceiverDirectionInactive, false, false},
	}

	for i, testCase := range testCases {
		assert.Equal(t, testCase.reversed, testCase.direction.Revers(), "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.canSend, testCase.direction.canSend(), "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.canReceive, testCase.direction.canReceive(), "testCase: %d %v", i, testCase)
	}
}
