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
	"sort"
	"strings"

	"github.com/snksoft/crc"
)

// Checksummer computes a named checksum and renders it as hex.
type Checksummer interface {
	// Checksum returns the checksum of data as 0x prefixed, zero padded hex.
	Checksum(algorithm string, data []byte) (string, error)
	// Supports reports whether the algorithm name is known.
	Supports(algorithm string) bool
}

// crcAlgorithms maps algorithm names to CRC parameters.
var crcAlgorithms = map[string]*crc.Parameters{
	"CRC_CCITT":  crc.CCITT,
	"CRC16":      crc.CRC16,
	"XMODEM":     crc.XMODEM,
	"X25":        crc.X25,
	"CRC32":      crc.CRC32,
	"CRC32C":     crc.CRC32C,
	"KOOPMAN":    crc.Koopman,
	"CRC64_ISO":  crc.CRC64ISO,
	"CRC64_ECMA": crc.CRC64ECMA,
}

// CRC is the default Checksummer.
type CRC struct{}

// Algorithms returns the supported algorithm names, sorted.
func (CRC) Algorithms() []string {
	ret := make([]string, 0, len(crcAlgorithms))
	for name := range crcAlgorithms {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Supports implements Checksummer
func (CRC) Supports(algorithm string) bool {
	_, ok := crcAlgorithms[strings.ToUpper(algorithm)]
	return ok
}

// Checksum implements Checksummer
func (CRC) Checksum(algorithm string, data []byte) (string, error) {
	params, ok := crcAlgorithms[strings.ToUpper(algorithm)]
	if !ok {
		return "", fmt.Errorf("unknown crc algorithm: %s", algorithm)
	}
	value := crc.CalculateCRC(params, data)
	return fmt.Sprintf("0x%0*x", int(params.Width/4), value), nil
}
