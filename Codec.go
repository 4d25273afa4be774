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
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encodings lists the encoding names accepted by Decode.
var Encodings = []string{
	"base16", "base64", "hex",
	"utf-8", "utf-16", "utf-16be", "utf-16le", "utf-32", "utf-32be", "utf-32le",
}

var textEncodings = map[string]encoding.Encoding{
	"utf-16":   unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-32":   utf32.UTF32(utf32.LittleEndian, utf32.UseBOM),
	"utf-32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"utf-32le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
}

var (
	// variableRef matches ${name} and ${dotted.name} at the start of the text.
	variableRef = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_-]*(?:\.[A-Za-z_][A-Za-z0-9_-]*)*)\}`)
	// delimitedHex matches "de:ad:be:ef" and "de ad be ef".
	delimitedHex = regexp.MustCompile(`^[0-9a-fA-F]{2}([^0-9a-fA-F])`)
)

var escapes = map[byte]byte{
	'0': 0x00,
	'a': '\a',
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
}

// IsEncoding reports whether name is a supported encoding.
func IsEncoding(name string) bool {
	name = strings.ToLower(name)
	for _, it := range Encodings {
		if it == name {
			return true
		}
	}
	return false
}

// Expand resolves backslash escapes and ${name} references in text.
//
// A run of backslashes emits half of its length as literal backslashes.
// When the run is odd the token that follows is escaped: a variable
// reference is kept literally, \xHH becomes the byte HH (utf-8 only) and any
// other character is replaced by its escape value or kept as is.
func Expand(text string, vars map[string]string, enc string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(text) {
		c := text[i]
		if c != '\\' && c != '$' {
			b.WriteByte(c)
			i++
			continue
		}
		n := 0
		for i < len(text) && text[i] == '\\' {
			n++
			i++
		}
		b.WriteString(strings.Repeat(`\`, n/2))
		if n%2 == 0 {
			m := variableRef.FindStringSubmatch(text[i:])
			if m == nil {
				if n == 0 {
					// lone '$'
					b.WriteByte(text[i])
					i++
				}
				continue
			}
			value, ok := vars[m[1]]
			if !ok {
				return "", fmt.Errorf("%w: undefined variable: %s", ErrDataExpansion, m[1])
			}
			b.WriteString(value)
			i += len(m[0])
			continue
		}
		if i == len(text) {
			b.WriteByte('\\')
			break
		}
		if m := variableRef.FindString(text[i:]); m != "" {
			b.WriteString(m)
			i += len(m)
			continue
		}
		switch c = text[i]; {
		case c == 'x':
			if !strings.EqualFold(enc, "utf-8") {
				return "", fmt.Errorf("%w: hex escapes require the utf-8 encoding", ErrDataExpansion)
			}
			if i+3 > len(text) {
				return "", fmt.Errorf("%w: truncated hex escape", ErrDataExpansion)
			}
			v, err := hex.DecodeString(text[i+1 : i+3])
			if err != nil {
				return "", fmt.Errorf("%w: invalid hex escape: \\%s", ErrDataExpansion, text[i:i+3])
			}
			b.Write(v)
			i += 3
		case escapes[c] != 0 || c == '0':
			b.WriteByte(escapes[c])
			i++
		default:
			_, size := utf8.DecodeRuneInString(text[i:])
			b.WriteString(text[i : i+size])
			i += size
		}
	}
	return b.String(), nil
}

// Decode converts expanded text to bytes using the named encoding.
func Decode(text string, enc string) ([]byte, error) {
	enc = strings.ToLower(enc)
	switch enc {
	case "utf-8":
		return []byte(text), nil
	case "base64":
		ret, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataDecode, err)
		}
		return ret, nil
	case "hex", "base16":
		return decodeHex(text)
	}
	if e, ok := textEncodings[enc]; ok {
		ret, err := e.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataDecode, err)
		}
		return ret, nil
	}
	return nil, fmt.Errorf("%w: unsupported encoding: %s", ErrDataDecode, enc)
}

func decodeHex(text string) ([]byte, error) {
	if len(text) > 2 {
		if m := delimitedHex.FindStringSubmatch(text); m != nil {
			text = strings.ReplaceAll(text, m[1], "")
		}
	}
	if len(text)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length hex string", ErrDataDecode)
	}
	ret, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataDecode, err)
	}
	return ret, nil
}

// ExpandAndDecode runs expansion and then the encoding step.
func ExpandAndDecode(text string, vars map[string]string, enc string) ([]byte, error) {
	expanded, err := Expand(text, vars, enc)
	if err != nil {
		return nil, err
	}
	return Decode(expanded, enc)
}
