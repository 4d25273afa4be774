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
	"fmt"
	"io"
	"strings"
)

// Hexdump renders data as rows of 16 bytes: a 4 digit hex offset, the hex
// bytes with an extra space after the eighth, and the printable ASCII
// characters with '.' for everything else.
func Hexdump(data []byte) string {
	var b strings.Builder
	_ = WriteHexdump(&b, data)
	return b.String()
}

// WriteHexdump writes the Hexdump of data to w.
func WriteHexdump(w io.Writer, data []byte) error {
	const rowSize = 16
	for offset := 0; offset < len(data); offset += rowSize {
		var hexCol, asciiCol strings.Builder
		for pos := 0; pos < rowSize; pos++ {
			i := offset + pos
			if i < len(data) {
				fmt.Fprintf(&hexCol, "%02x ", data[i])
				c := data[i]
				if c < 32 || c > 126 {
					c = '.'
				}
				asciiCol.WriteByte(c)
			} else {
				hexCol.WriteString("   ")
				asciiCol.WriteByte('.')
			}
			if pos == 7 {
				hexCol.WriteByte(' ')
			}
		}
		line := fmt.Sprintf("%04x  %s  %s\n", offset, strings.TrimSuffix(hexCol.String(), " "), asciiCol.String())
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
