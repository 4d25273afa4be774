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
	"errors"
	"fmt"
	"strings"

	"github.com/Gurux/gxcommon-go"
)

var (
	// ErrConfiguration is returned when a connection URL or one of its
	// settings is missing, unknown or out of range.
	ErrConfiguration = errors.New("configuration error")
	// ErrDriver is returned when no driver handles the URL scheme.
	ErrDriver = &driverError{}
	// ErrPrivilege is returned when a raw socket driver is constructed
	// by an unprivileged process.
	ErrPrivilege = errors.New("privilege error")
	// ErrDataDecode is returned for malformed hex or base64 input.
	ErrDataDecode = errors.New("data decode error")
	// ErrDataExpansion is returned for bad escapes and undefined variables.
	ErrDataExpansion = errors.New("data expansion error")
	// ErrCommand is returned for unknown commands and bad command arguments.
	ErrCommand = errors.New("command error")
	// ErrUnsupported is returned when the platform can not provide a transport.
	ErrUnsupported = errors.New("unsupported on this platform")
	// ErrConnectionClosed is returned when the connection is used after
	// it has been closed locally or by the peer.
	ErrConnectionClosed = gxcommon.ErrConnectionClosed
)

// driverError is a configuration error. errors.Is matches both ErrDriver
// and ErrConfiguration.
type driverError struct{}

func (e *driverError) Error() string {
	return "driver error"
}

func (e *driverError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, a...))
}

// unknownSettingsError names every query parameter no definition claimed.
func unknownSettingsError(names []string) error {
	if len(names) == 1 {
		return configErrorf("unsupported setting: %s", names[0])
	}
	return configErrorf("unsupported settings: %s", strings.Join(names, ", "))
}
