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
	"strconv"
	"strings"
)

// Setting declares one configurable parameter of a driver.
type Setting struct {
	Name string
	// Default is used when the query does not name the setting.
	Default any
	// Required settings have no default; leaving them out is an error.
	Required bool
	// Coerce converts the raw query value. Nil keeps the string.
	Coerce func(string) (any, error)
	// Choices, when set, lists every accepted coerced value.
	Choices []any
}

// Settings holds the values resolved for one driver.
type Settings map[string]any

// ResolveSettings resolves the target query against the definitions.
//
// Each definition claims its query parameter; when the parameter is given
// more than once the last value wins. Parameters that no definition claims
// are an error.
func ResolveSettings(t *Target, defs []Setting) (Settings, error) {
	pending := make([]QueryParam, len(t.Query))
	copy(pending, t.Query)
	ret := make(Settings, len(defs))
	for _, def := range defs {
		raw, found := "", false
		rest := pending[:0]
		for _, p := range pending {
			if p.Name == def.Name {
				raw, found = p.Value, true
				continue
			}
			rest = append(rest, p)
		}
		pending = rest
		if !found {
			if def.Required {
				return nil, configErrorf("missing required setting: %s", def.Name)
			}
			ret[def.Name] = def.Default
			continue
		}
		var value any = raw
		if def.Coerce != nil {
			v, err := def.Coerce(raw)
			if err != nil {
				return nil, configErrorf("invalid value for %s: %q (%v)", def.Name, raw, err)
			}
			value = v
		}
		if len(def.Choices) != 0 && !containsChoice(def.Choices, value) {
			return nil, configErrorf("unsupported value for %s: %q", def.Name, raw)
		}
		ret[def.Name] = value
	}
	if len(pending) != 0 {
		var names []string
		seen := map[string]bool{}
		for _, p := range pending {
			if !seen[p.Name] {
				seen[p.Name] = true
				names = append(names, p.Name)
			}
		}
		return nil, unknownSettingsError(names)
	}
	return ret, nil
}

func containsChoice(choices []any, value any) bool {
	for _, c := range choices {
		if c == value {
			return true
		}
	}
	return false
}

// String returns the named setting as a string.
func (s Settings) String(name string) string {
	switch v := s[name].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the named setting as an int.
func (s Settings) Int(name string) int {
	switch v := s[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// Float returns the named setting as a float64.
func (s Settings) Float(name string) float64 {
	switch v := s[name].(type) {
	case int:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// Bool returns the named setting as a bool.
func (s Settings) Bool(name string) bool {
	v, _ := s[name].(bool)
	return v
}

// IntValue coerces a literal integer token (decimal, 0x, 0o or 0b).
func IntValue(raw string) (any, error) {
	v, ok := EvalToken(raw).(int)
	if !ok {
		return nil, fmt.Errorf("value is not an int")
	}
	return v, nil
}

// FloatValue coerces a literal number token into a float64.
func FloatValue(raw string) (any, error) {
	switch v := EvalToken(raw).(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return nil, fmt.Errorf("value is not a number")
}

// BoolValue coerces true/false tokens.
func BoolValue(raw string) (any, error) {
	v, ok := EvalToken(raw).(bool)
	if !ok {
		if b, err := strconv.ParseBool(raw); err == nil {
			return b, nil
		}
		return nil, fmt.Errorf("value is not a bool")
	}
	return v, nil
}

// UpperValue upper cases the raw value.
func UpperValue(raw string) (any, error) {
	return strings.ToUpper(raw), nil
}
