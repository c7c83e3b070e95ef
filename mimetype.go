// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package remotesdp

import (
	"strings"
)

const (
	// MimeTypeH264 H264 MIME type.
	// Note: Matching should be case insensitive.
	MimeTypeH264 = "video/H264"
	// MimeTypeH265 H265 MIME type
	// Note: Matching should be case insensitive.
	MimeTypeH265 = "video/H265"
	// MimeTypeOpus Opus MIME type
	// Note: Matching should be case insensitive.
	MimeTypeOpus = "audio/opus"
	// MimeTypeVP8 VP8 MIME type
	// Note: Matching should be case insensitive.
	MimeTypeVP8 = "video/VP8"
	// MimeTypeVP9 VP9 MIME type
	// Note: Matching should be case insensitive.
	MimeTypeVP9 = "video/VP9"
	// MimeTypeAV1 AV1 MIME type
	// Note: Matching should be case insensitive.
	MimeTypeAV1 = "video/AV1"
	// MimeTypePCMU PCMU MIME type
	// Note: Matching should be case insensitive.
	MimeTypePCMU = "audio/PCMU"
	// MimeTypePCMA PCMA MIME type
	// Note: Matching should be case insensitive.
	MimeTypePCMA = "audio/PCMA"
	// MimeTypeRTX RTX MIME type for video
	// Note: Matching should be case insensitive.
	MimeTypeRTX = "video/rtx"
	// MimeTypeAudioRTX RTX MIME type for audio
	// Note: Matching should be case insensitive.
	MimeTypeAudioRTX = "audio/rtx"
)

const rtxSubtype = "rtx"

func isRTXMimeType(mimeType string) bool {
	_, subtype, ok := strings.Cut(mimeType, "/")

	return ok && strings.EqualFold(subtype, rtxSubtype)
}

// mimeSubtype returns the encoding name part of a MIME type, "VP8" for
// "video/VP8".
func mimeSubtype(mimeType string) string {
	if _, subtype, ok := strings.Cut(mimeType, "/"); ok {
		return subtype
	}

	return mimeType
}

func rtxMimeType(kind RTPCodecType) string {
	return kind.String() + "/" + rtxSubtype
}
