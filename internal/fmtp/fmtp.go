// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package fmtp implements parsing, formatting and per codec matching of
// fmtp parameters.
package fmtp

import (
	"sort"
	"strings"
)

// Parse parses an fmtp parameter string such as "minptime=10;useinbandfec=1"
// into a map. Keys are lower cased, a key without value maps to "".
func Parse(line string) map[string]string {
	parameters := make(map[string]string)

	for _, p := range strings.Split(line, ";") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		pp := strings.SplitN(p, "=", 2)
		key := strings.ToLower(strings.TrimSpace(pp[0]))
		var value string
		if len(pp) > 1 {
			value = strings.TrimSpace(pp[1])
		}
		parameters[key] = value
	}

	return parameters
}

// Format renders parameters as an fmtp parameter string. Keys are sorted so
// the output is stable across calls.
func Format(parameters map[string]string) string {
	keys := make([]string, 0, len(parameters))
	for k := range parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		if v := parameters[k]; v != "" {
			b.WriteByte('=')
			b.WriteString(v)
		}
	}

	return b.String()
}

// Clone returns a copy of parameters. A nil map yields an empty map.
func Clone(parameters map[string]string) map[string]string {
	out := make(map[string]string, len(parameters))
	for k, v := range parameters {
		out[k] = v
	}

	return out
}

// Negotiate compares the codec specific parameters of a local and a remote
// codec that already agree on mime type and clock rate. It reports whether
// they are compatible and returns the parameters the local codec carries
// after negotiation. The returned map is always a copy; local is never
// modified.
//
// With strict set, codecs that select an answer level (H.264) do so and the
// selected value is written into the returned parameters.
func Negotiate(mimeType string, local, remote map[string]string, strict bool) (map[string]string, bool) {
	switch strings.ToLower(mimeType) {
	case "video/h264":
		return negotiateH264(local, remote, strict)
	default:
		return Clone(local), true
	}
}
