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
	"testing"
)

func TestCRC(t *testing.T) {
	check := []byte("123456789")
	tests := []struct {
		algorithm string
		want      string
	}{
		{"CRC_CCITT", "0x29b1"},
		{"crc_ccitt", "0x29b1"},
		{"XMODEM", "0x31c3"},
		{"CRC16", "0xbb3d"},
		{"CRC32", "0xcbf43926"},
		{"CRC32C", "0xe3069283"},
	}
	var c CRC
	for _, tt := range tests {
		got, err := c.Checksum(tt.algorithm, check)
		if err != nil {
			t.Errorf("%s failed: %v", tt.algorithm, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s = %s, want %s", tt.algorithm, got, tt.want)
		}
	}
	if got, _ := c.Checksum("CRC64_ISO", nil); len(got) != 18 {
		t.Errorf("CRC64 must be 16 hex digits wide, got %s", got)
	}
	if _, err := c.Checksum("MD5", check); err == nil {
		t.Error("expected error for unknown algorithm")
	}
	if c.Supports("MD5") || !c.Supports("x25") {
		t.Error("unexpected Supports result")
	}
	if len(c.Algorithms()) != len(crcAlgorithms) {
		t.Errorf("algorithms %v", c.Algorithms())
	}
}
