// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodecOptionsApply(t *testing.T) {
	stereo, fec, dtx := true, false, true
	playback, start, maxRate, minRate := uint32(24000), uint32(1000), uint32(2000), uint32(300)

	options := &CodecOptions{
		OpusStereo:              &stereo,
		OpusFEC:                 &fec,
		OpusDTX:                 &dtx,
		OpusMaxPlaybackRate:     &playback,
		VideoGoogleStartBitrate: &start,
		VideoGoogleMaxBitrate:   &maxRate,
		VideoGoogleMinBitrate:   &minRate,
	}

	t.Run("Opus", func(t *testing.T) {
		answer, offer := CodecParameters{}, CodecParameters{}
		options.apply("audio/OPUS", answer, offer)

		assert.Equal(t, CodecParameters{
			"stereo":          "1",
			"useinbandfec":    "0",
			"usedtx":          "1",
			"maxplaybackrate": "24000",
		}, answer)
		assert.Equal(t, CodecParameters{
			"sprop-stereo": "1",
			"useinbandfec": "0",
			"usedtx":       "1",
		}, offer)
	})

	t.Run("Opus without offer", func(t *testing.T) {
		answer := CodecParameters{}
		options.apply(MimeTypeOpus, answer, nil)
		assert.Equal(t, "1", answer["stereo"])
	})

	t.Run("Video", func(t *testing.T) {
		for _, mimeType := range []string{MimeTypeVP8, MimeTypeVP9, MimeTypeH264, MimeTypeH265} {
			answer, offer := CodecParameters{}, CodecParameters{}
			options.apply(mimeType, answer, offer)

			assert.Equal(t, CodecParameters{
				"x-google-start-bitrate": "1000",
				"x-google-max-bitrate":   "2000",
				"x-google-min-bitrate":   "300",
			}, answer, mimeType)
			assert.Empty(t, offer, mimeType)
		}
	})

	t.Run("Other", func(t *testing.T) {
		answer := CodecParameters{}
		options.apply(MimeTypePCMU, answer, nil)
		assert.Empty(t, answer)
	})
}
