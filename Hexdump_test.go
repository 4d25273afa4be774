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
	"strings"
	"testing"
)

func TestHexdump(t *testing.T) {
	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i)
	}
	data = append(data, 'Q', 'R')
	want := "0000  00 01 02 03 04 05 06 07  08 09 0a 0b 0c 0d 0e 0f  ................\n" +
		"0010  51 52" + strings.Repeat(" ", 45) + "QR" + strings.Repeat(".", 14) + "\n"
	if got := Hexdump(data); got != want {
		t.Errorf("Hexdump mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestHexdumpPrintable(t *testing.T) {
	got := Hexdump([]byte("Hello, World!\x7f\x80~"))
	if !strings.HasSuffix(got, "  Hello, World!..~\n") {
		t.Errorf("unexpected ascii column: %q", got)
	}
	if Hexdump(nil) != "" {
		t.Error("empty input should render nothing")
	}
}
