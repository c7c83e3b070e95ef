// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import (
	"testing"
)

func TestH264Negotiate(t *testing.T) {
	consistString := map[bool]string{true: "consist", false: "inconsist"}

	testCases := map[string]struct {
		local, remote    string
		strict           bool
		consist          bool
		profileLevelID   string
		noProfileLevelID bool
	}{
		"Equal": {
			local:          "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f",
			remote:         "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f",
			strict:         true,
			consist:        true,
			profileLevelID: "42e01f",
		},
		"EqualWithWhitespaceVariants": {
			local:          "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f",
			remote:         "  level-asymmetry-allowed=1;  \npacketization-mode=1;\t\nprofile-level-id=42e01f",
			strict:         true,
			consist:        true,
			profileLevelID: "42e01f",
		},
		"LowerRemoteLevelWithoutAsymmetry": {
			local:          "packetization-mode=1;profile-level-id=42e01f",
			remote:         "packetization-mode=1;profile-level-id=42e015",
			strict:         true,
			consist:        true,
			profileLevelID: "42e015",
		},
		"LowerRemoteLevelWithAsymmetry": {
			local:          "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f",
			remote:         "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e015",
			strict:         true,
			consist:        true,
			profileLevelID: "42e01f",
		},
		"NoProfileLevelIDOnEitherSide": {
			local:            "packetization-mode=1",
			remote:           "packetization-mode=1",
			strict:           true,
			consist:          true,
			noProfileLevelID: true,
		},
		"PacketizationModeMismatch": {
			local:   "packetization-mode=1;profile-level-id=42e029",
			remote:  "packetization-mode=0;profile-level-id=42e029",
			strict:  true,
			consist: false,
		},
		"MissingPacketizationModeIsZero": {
			local:          "packetization-mode=0;profile-level-id=42e01f",
			remote:         "profile-level-id=42e01f",
			strict:         true,
			consist:        true,
			profileLevelID: "42e01f",
		},
		"MissingPacketizationModeMismatch": {
			local:   "packetization-mode=1;profile-level-id=42e029",
			remote:  "profile-level-id=42e029",
			strict:  true,
			consist: false,
		},
		"ProfileMismatch": {
			local:   "packetization-mode=1;profile-level-id=42e01f",
			remote:  "packetization-mode=1;profile-level-id=640032",
			strict:  true,
			consist: false,
		},
		"ProfileMismatchIgnoredWhenNotStrict": {
			local:          "packetization-mode=1;profile-level-id=42e01f",
			remote:         "packetization-mode=1;profile-level-id=640032",
			strict:         false,
			consist:        true,
			profileLevelID: "42e01f",
		},
		"InvalidProfileLevelID": {
			local:   "packetization-mode=1;profile-level-id=42e029",
			remote:  "packetization-mode=1;profile-level-id=zzzzzz",
			strict:  true,
			consist: false,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			local := Parse(testCase.local)
			out, c := Negotiate("video/H264", local, Parse(testCase.remote), testCase.strict)
			if c != testCase.consist {
				t.Fatalf(
					"'%s' and '%s' are expected to be %s, but treated as %s",
					testCase.local, testCase.remote, consistString[testCase.consist], consistString[c],
				)
			}
			if !c {
				return
			}

			got, ok := out[h264ProfileLevelID]
			switch {
			case testCase.noProfileLevelID && ok:
				t.Errorf("expected no profile-level-id, got '%s'", got)
			case !testCase.noProfileLevelID && got != testCase.profileLevelID:
				t.Errorf("expected profile-level-id '%s', got '%s'", testCase.profileLevelID, got)
			}

			if local[h264ProfileLevelID] != Parse(testCase.local)[h264ProfileLevelID] {
				t.Error("local parameters must not be modified")
			}
		})
	}
}
