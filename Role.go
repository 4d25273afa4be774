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
	"strings"

	"github.com/Gurux/gxcommon-go"
)

// Role determines which side of a stream connection the driver takes.
type Role int

const (
	// RoleClient connects to the target address.
	RoleClient Role = iota
	// RoleServer binds the target address and waits for one peer.
	RoleServer
)

var roleNames = map[Role]string{
	RoleClient: "client",
	RoleServer: "server",
}

// RoleParse converts the value of the type setting into a Role.
func RoleParse(value string) (Role, error) {
	for role, name := range roleNames {
		if strings.EqualFold(name, value) {
			return role, nil
		}
	}
	return RoleClient, fmt.Errorf("%w: %q", gxcommon.ErrUnknownEnum, value)
}

func (r Role) String() string {
	return roleNames[r]
}
