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
	"net/url"
	"strconv"
	"strings"
)

// QueryParam is one key=value pair of the URL query, in the order it was given.
type QueryParam struct {
	Name  string
	Value string
}

// Target is a parsed connection URL. It is not modified after ParseTarget.
type Target struct {
	raw      string
	Scheme   string
	Username string
	Password string
	Host     string
	Port     int
	Path     string
	Query    []QueryParam
}

// ParseTarget parses a connection URL of the form
// scheme://[userinfo@]host[:port][/path][?query].
func ParseTarget(raw string) (*Target, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, configErrorf("invalid url %q: %v", raw, err)
	}
	if u.Scheme == "" {
		return nil, configErrorf("invalid url %q: missing scheme", raw)
	}
	t := &Target{
		raw:    raw,
		Scheme: strings.ToLower(u.Scheme),
		Host:   u.Hostname(),
		Path:   u.Path,
	}
	if u.User != nil {
		t.Username = u.User.Username()
		t.Password, _ = u.User.Password()
	}
	if p := u.Port(); p != "" {
		t.Port, err = strconv.Atoi(p)
		if err != nil || t.Port < 0 || t.Port > 0xffff {
			return nil, configErrorf("invalid port: %s", p)
		}
	}
	rawQuery := u.RawQuery
	if u.Opaque != "" {
		// "null:" style targets carry everything in the opaque part.
		t.Path = u.Opaque
	}
	t.Query, err = parseQuery(rawQuery)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func parseQuery(raw string) ([]QueryParam, error) {
	var ret []QueryParam
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		n, err := url.QueryUnescape(name)
		if err != nil {
			return nil, configErrorf("invalid query parameter %q: %v", part, err)
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, configErrorf("invalid query parameter %q: %v", part, err)
		}
		ret = append(ret, QueryParam{Name: n, Value: v})
	}
	return ret, nil
}

// String returns the URL the target was parsed from.
func (t *Target) String() string {
	return t.raw
}

// Variables returns the url.* names available to data expansion.
func (t *Target) Variables() map[string]string {
	port := ""
	if t.Port != 0 {
		port = strconv.Itoa(t.Port)
	}
	return map[string]string{
		"url.scheme":   t.Scheme,
		"url.username": t.Username,
		"url.password": t.Password,
		"url.host":     t.Host,
		"url.port":     port,
		"url.path":     t.Path,
	}
}

// requireHost fails when the URL has no host.
func (t *Target) requireHost() error {
	if t.Host == "" {
		return configErrorf("%s: missing required url attribute: host", t.Scheme)
	}
	return nil
}

// requirePort fails when the URL has no port.
func (t *Target) requirePort() error {
	if t.Port == 0 {
		return configErrorf("%s: missing required url attribute: port", t.Scheme)
	}
	return nil
}

// requirePath fails when the URL has no path.
func (t *Target) requirePath() error {
	if t.Path == "" || t.Path == "/" {
		return configErrorf("%s: missing required url attribute: path", t.Scheme)
	}
	return nil
}
