// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"strconv"
	"strings"
)

// CodecOptions are optional overrides applied to the codecs of a sending
// media section. A nil field leaves the codec untouched.
type CodecOptions struct {
	OpusStereo          *bool
	OpusFEC             *bool
	OpusDTX             *bool
	OpusMaxPlaybackRate *uint32

	VideoGoogleStartBitrate *uint32
	VideoGoogleMaxBitrate   *uint32
	VideoGoogleMinBitrate   *uint32
}

const (
	fmtpSpropStereo         = "sprop-stereo"
	fmtpStereo              = "stereo"
	fmtpUseInbandFEC        = "useinbandfec"
	fmtpUseDTX              = "usedtx"
	fmtpMaxPlaybackRate     = "maxplaybackrate"
	fmtpXGoogleStartBitrate = "x-google-start-bitrate"
	fmtpXGoogleMaxBitrate   = "x-google-max-bitrate"
	fmtpXGoogleMinBitrate   = "x-google-min-bitrate"
)

func boolParameter(v bool) string {
	if v {
		return "1"
	}

	return "0"
}

// apply writes the overrides for a codec of the given mime type. answer is
// the fmtp emitted in the answer, offer the parameters of the offered codec.
// offer may be nil when the offer has no codec with that payload type.
func (o *CodecOptions) apply(mimeType string, answer, offer CodecParameters) {
	setOffer := func(key, value string) {
		if offer != nil {
			offer[key] = value
		}
	}

	switch strings.ToLower(mimeType) {
	case strings.ToLower(MimeTypeOpus):
		if o.OpusStereo != nil {
			setOffer(fmtpSpropStereo, boolParameter(*o.OpusStereo))
			answer[fmtpStereo] = boolParameter(*o.OpusStereo)
		}
		if o.OpusFEC != nil {
			setOffer(fmtpUseInbandFEC, boolParameter(*o.OpusFEC))
			answer[fmtpUseInbandFEC] = boolParameter(*o.OpusFEC)
		}
		if o.OpusDTX != nil {
			setOffer(fmtpUseDTX, boolParameter(*o.OpusDTX))
			answer[fmtpUseDTX] = boolParameter(*o.OpusDTX)
		}
		if o.OpusMaxPlaybackRate != nil {
			answer[fmtpMaxPlaybackRate] = strconv.FormatUint(uint64(*o.OpusMaxPlaybackRate), 10)
		}
	case strings.ToLower(MimeTypeVP8), strings.ToLower(MimeTypeVP9),
		strings.ToLower(MimeTypeH264), strings.ToLower(MimeTypeH265):
		if o.VideoGoogleStartBitrate != nil {
			answer[fmtpXGoogleStartBitrate] = strconv.FormatUint(uint64(*o.VideoGoogleStartBitrate), 10)
		}
		if o.VideoGoogleMaxBitrate != nil {
			answer[fmtpXGoogleMaxBitrate] = strconv.FormatUint(uint64(*o.VideoGoogleMaxBitrate), 10)
		}
		if o.VideoGoogleMinBitrate != nil {
			answer[fmtpXGoogleMinBitrate] = strconv.FormatUint(uint64(*o.VideoGoogleMinBitrate), 10)
		}
	}
}
