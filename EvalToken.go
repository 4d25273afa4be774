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
	"regexp"
	"strconv"
	"strings"
)

var (
	binaryToken  = regexp.MustCompile(`^0b[01]+$`)
	octalToken   = regexp.MustCompile(`^0o[0-7]+$`)
	hexToken     = regexp.MustCompile(`^0x[a-fA-F0-9]+$`)
	floatToken   = regexp.MustCompile(`^[0-9]+\.[0-9]*$`)
	decimalToken = regexp.MustCompile(`^[0-9]+$`)
	quotedToken  = regexp.MustCompile(`^(?:".+"|'.+')$`)
)

// EvalToken interprets a bare token from a command argument.
//
// The result is a bool for true/false, nil for null, an int for binary,
// octal, hex and decimal literals, a float64 for decimals with a point,
// the inner string for quoted strings and otherwise the token unchanged.
// Integer literals that overflow an int are returned unchanged.
func EvalToken(value string) any {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	var base int
	digits := value
	switch {
	case binaryToken.MatchString(value):
		base, digits = 2, value[2:]
	case octalToken.MatchString(value):
		base, digits = 8, value[2:]
	case hexToken.MatchString(value):
		base, digits = 16, value[2:]
	case floatToken.MatchString(value):
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		return value
	case decimalToken.MatchString(value):
		base = 10
	case quotedToken.MatchString(value) && value[0] == value[len(value)-1]:
		return value[1 : len(value)-1]
	default:
		return value
	}
	n, err := strconv.ParseInt(digits, base, strconv.IntSize)
	if err != nil {
		return value
	}
	return int(n)
}

// unquote strips one pair of matching quotes around the value.
func unquote(value string) string {
	if len(value) >= 2 && quotedToken.MatchString(value) && value[0] == value[len(value)-1] {
		return value[1 : len(value)-1]
	}
	return value
}
