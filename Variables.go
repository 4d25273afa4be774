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
)

// Variables are the runtime settings of an engine. Changes apply to the
// commands that follow.
type Variables struct {
	Encoding  string
	CRC       string
	PrintSend bool
	PrintRecv bool
}

// DefaultVariables returns the variables a new engine starts with.
func DefaultVariables() Variables {
	return Variables{
		Encoding:  "utf-8",
		CRC:       "CRC_CCITT",
		PrintSend: true,
		PrintRecv: true,
	}
}

// variableSetter checks a new value and stores it. It must leave the
// variables unchanged when it fails.
type variableSetter func(e *Engine, value any) error

var variableSetters = map[string]variableSetter{
	"encoding": func(e *Engine, value any) error {
		s, ok := value.(string)
		if !ok || !IsEncoding(s) {
			return fmt.Errorf("encoding must be one of: %s", strings.Join(Encodings, ", "))
		}
		e.vars.Encoding = strings.ToLower(s)
		return nil
	},
	"crc": func(e *Engine, value any) error {
		s, ok := value.(string)
		if !ok || !e.checksum.Supports(s) {
			return fmt.Errorf("crc must name a supported algorithm")
		}
		e.vars.CRC = strings.ToUpper(s)
		return nil
	},
	"print-send": func(e *Engine, value any) error {
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("print-send must be a boolean")
		}
		e.vars.PrintSend = b
		return nil
	},
	"print-recv": func(e *Engine, value any) error {
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("print-recv must be a boolean")
		}
		e.vars.PrintRecv = b
		return nil
	},
}

// VariableNames returns the names accepted by the set command, sorted.
func VariableNames() []string {
	ret := make([]string, 0, len(variableSetters))
	for name := range variableSetters {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Get returns the value of a variable by name.
func (v Variables) Get(name string) (any, bool) {
	switch name {
	case "encoding":
		return v.Encoding, true
	case "crc":
		return v.CRC, true
	case "print-send":
		return v.PrintSend, true
	case "print-recv":
		return v.PrintRecv, true
	}
	return nil, false
}
