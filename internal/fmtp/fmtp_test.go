// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	for _, ca := range []struct {
		name       string
		line       string
		parameters map[string]string
	}{
		{
			"empty",
			"",
			map[string]string{},
		},
		{
			"one param",
			"key-name=value",
			map[string]string{
				"key-name": "value",
			},
		},
		{
			"one param with white spaces",
			"\tkey-name=value ",
			map[string]string{
				"key-name": "value",
			},
		},
		{
			"two params",
			"key-name=value;key2=value2",
			map[string]string{
				"key-name": "value",
				"key2":     "value2",
			},
		},
		{
			"two params with white spaces",
			"key-name=value;  \n\tkey2=value2 ",
			map[string]string{
				"key-name": "value",
				"key2":     "value2",
			},
		},
		{
			"trailing separator and key normalization",
			"Key=value;flag;",
			map[string]string{
				"key":  "value",
				"flag": "",
			},
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			parameters := Parse(ca.line)
			if !reflect.DeepEqual(parameters, ca.parameters) {
				t.Errorf("expected '%v', got '%v'", ca.parameters, parameters)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	for _, ca := range []struct {
		name       string
		parameters map[string]string
		line       string
	}{
		{"nil", nil, ""},
		{"one param", map[string]string{"apt": "96"}, "apt=96"},
		{
			"sorted keys",
			map[string]string{"useinbandfec": "1", "minptime": "10", "stereo": "1"},
			"minptime=10;stereo=1;useinbandfec=1",
		},
		{"flag without value", map[string]string{"flag": "", "a": "b"}, "a=b;flag"},
	} {
		t.Run(ca.name, func(t *testing.T) {
			if line := Format(ca.parameters); line != ca.line {
				t.Errorf("expected '%s', got '%s'", ca.line, line)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	in := map[string]string{
		"level-asymmetry-allowed": "1",
		"packetization-mode":      "1",
		"profile-level-id":        "42e01f",
	}
	if out := Parse(Format(in)); !reflect.DeepEqual(in, out) {
		t.Errorf("expected '%v', got '%v'", in, out)
	}
}

func TestClone(t *testing.T) {
	in := map[string]string{"apt": "96"}
	out := Clone(in)
	out["apt"] = "100"
	if in["apt"] != "96" {
		t.Errorf("Clone must not share storage, source changed to '%s'", in["apt"])
	}

	if empty := Clone(nil); empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil map, got '%v'", empty)
	}
}

func TestNegotiateGeneric(t *testing.T) {
	local := map[string]string{"minptime": "10", "useinbandfec": "1"}
	remote := map[string]string{"useinbandfec": "0"}

	out, ok := Negotiate("audio/opus", local, remote, true)
	if !ok {
		t.Fatal("generic codecs never fail parameter negotiation")
	}
	if !reflect.DeepEqual(out, local) {
		t.Errorf("expected '%v', got '%v'", local, out)
	}

	out["minptime"] = "20"
	if local["minptime"] != "10" {
		t.Error("Negotiate must return a copy of the local parameters")
	}
}
