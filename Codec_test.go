package protocon

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"bytes"
	"errors"
	"testing"
)

func TestExpand(t *testing.T) {
	vars := map[string]string{"x": "v", "url.host": "127.0.0.1"}
	tests := []struct {
		in   string
		want string
	}{
		{`plain text`, "plain text"},
		{`\\${x}`, `\v`},
		{`\${x}`, `${x}`},
		{`\\\${x}`, `\${x}`},
		{`${url.host}:${x}`, "127.0.0.1:v"},
		{`a\nb\r\t`, "a\nb\r\t"},
		{`\0\a\b\f\v`, "\x00\a\b\f\v"},
		{`\x41\x0d\x0a`, "A\r\n"},
		{`\q\"`, `q"`},
		{`$5 and $`, "$5 and $"},
		{`end\`, `end\`},
		{`\\\\`, `\\`},
	}
	for _, tt := range tests {
		got, err := Expand(tt.in, vars, "utf-8")
		if err != nil {
			t.Errorf("Expand(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandErrors(t *testing.T) {
	tests := []struct {
		in  string
		enc string
	}{
		{`${missing}`, "utf-8"},
		{`\x4`, "utf-8"},
		{`\xzz`, "utf-8"},
		{`\x41`, "hex"},
		{`\x41`, "utf-16"},
	}
	for _, tt := range tests {
		if _, err := Expand(tt.in, nil, tt.enc); !errors.Is(err, ErrDataExpansion) {
			t.Errorf("Expand(%q, %s): expected expansion error, got %v", tt.in, tt.enc, err)
		}
	}
}

func TestExpandIsStable(t *testing.T) {
	for _, in := range []string{`hello\r\n`, `\x00\x01`, `a\\b`, `tab\there`} {
		a, err := ExpandAndDecode(in, nil, "utf-8")
		if err != nil {
			t.Fatalf("ExpandAndDecode(%q) failed: %v", in, err)
		}
		b, _ := ExpandAndDecode(in, nil, "utf-8")
		if !bytes.Equal(a, b) {
			t.Errorf("ExpandAndDecode(%q) is not stable: %x != %x", in, a, b)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		enc  string
		want []byte
	}{
		{"deadbeef", "hex", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"de:ad:be:ef", "hex", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"de ad be ef", "base16", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"DEADBEEF", "HEX", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"aGk=", "base64", []byte("hi")},
		{"hi", "utf-8", []byte("hi")},
		{"hi", "utf-16le", []byte{'h', 0, 'i', 0}},
		{"hi", "utf-16be", []byte{0, 'h', 0, 'i'}},
		{"A", "utf-32be", []byte{0, 0, 0, 'A'}},
		{"A", "utf-32le", []byte{'A', 0, 0, 0}},
	}
	for _, tt := range tests {
		got, err := Decode(tt.in, tt.enc)
		if err != nil {
			t.Errorf("Decode(%q, %s) failed: %v", tt.in, tt.enc, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("Decode(%q, %s) = %x, want %x", tt.in, tt.enc, got, tt.want)
		}
	}
}

func TestDecodeUTF16WithBOM(t *testing.T) {
	got, err := Decode("A", "utf-16")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0xff, 0xfe, 'A', 0}) {
		t.Errorf("got %x", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		in  string
		enc string
	}{
		{"abc", "hex"},
		{"zz", "hex"},
		{"de:ad:b", "hex"},
		{"!!", "base64"},
		{"hi", "ebcdic"},
	}
	for _, tt := range tests {
		if _, err := Decode(tt.in, tt.enc); !errors.Is(err, ErrDataDecode) {
			t.Errorf("Decode(%q, %s): expected decode error, got %v", tt.in, tt.enc, err)
		}
	}
}

func TestIsEncoding(t *testing.T) {
	for _, name := range Encodings {
		if !IsEncoding(name) {
			t.Errorf("IsEncoding(%q) = false", name)
		}
	}
	if !IsEncoding("UTF-8") {
		t.Error("encoding names are case insensitive")
	}
	if IsEncoding("latin-1") {
		t.Error("latin-1 is not supported")
	}
}

func TestEvalToken(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"FALSE", false},
		{"null", nil},
		{"0b101", 5},
		{"0o17", 15},
		{"0x1F", 31},
		{"42", 42},
		{"0.2", 0.2},
		{"3.", 3.0},
		{`"quoted"`, "quoted"},
		{`'single'`, "single"},
		{`"mismatched'`, `"mismatched'`},
		{"utf-16", "utf-16"},
		{"-1", "-1"},
		{"99999999999999999999", "99999999999999999999"},
	}
	for _, tt := range tests {
		if got := EvalToken(tt.in); got != tt.want {
			t.Errorf("EvalToken(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
