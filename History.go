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

// History is the append-only record of one session: the command lines that
// ran and every byte sequence sent and received.
type History struct {
	commands []string
	tx       [][]byte
	rx       [][]byte
}

func (h *History) addCommand(line string) {
	h.commands = append(h.commands, line)
}

func (h *History) addTX(data []byte) {
	h.tx = append(h.tx, append([]byte(nil), data...))
}

func (h *History) addRX(data []byte) {
	h.rx = append(h.rx, append([]byte(nil), data...))
}

// Commands returns the command lines that ran, oldest first.
func (h *History) Commands() []string {
	return append([]string(nil), h.commands...)
}

// TX returns a copy of every sent byte sequence, oldest first.
func (h *History) TX() [][]byte {
	return copyAll(h.tx)
}

// RX returns a copy of every received byte sequence, oldest first.
func (h *History) RX() [][]byte {
	return copyAll(h.rx)
}

func copyAll(src [][]byte) [][]byte {
	ret := make([][]byte, len(src))
	for i, it := range src {
		ret[i] = append([]byte(nil), it...)
	}
	return ret
}
