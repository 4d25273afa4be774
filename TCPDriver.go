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
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/Gurux/gxcommon-go"
)

var tcpSettings = []Setting{
	{Name: "type", Default: RoleClient, Coerce: func(raw string) (any, error) { return RoleParse(raw) }},
	{Name: "ip6-scope-id", Default: ""},
	{Name: "connect-timeout", Default: 10.0, Coerce: FloatValue},
}

// TCPDriver is a stream socket driver for the tcp, tcp4 and tcp6 schemes.
type TCPDriver struct {
	driverBase
	role    Role
	timeout time.Duration
	conn    net.Conn

	lmu      sync.Mutex
	onListen func(addr net.Addr)
}

// NewTCPDriver validates the target and settings of a stream driver.
func NewTCPDriver(t *Target) (*TCPDriver, error) {
	d := &TCPDriver{}
	if err := d.init(d, t, tcpSettings); err != nil {
		return nil, err
	}
	d.role = d.settings["type"].(Role)
	d.timeout = secondsValue(d.settings.Float("connect-timeout"))
	if err := t.requireHost(); err != nil {
		return nil, err
	}
	if d.role == RoleClient {
		if err := t.requirePort(); err != nil {
			return nil, err
		}
	}
	if d.settings.String("ip6-scope-id") != "" && t.Scheme != "tcp6" {
		return nil, configErrorf("ip6-scope-id requires the tcp6 scheme")
	}
	return d, nil
}

// SetOnListen sets the handler called with the bound address in server role.
func (d *TCPDriver) SetOnListen(value func(addr net.Addr)) {
	d.lmu.Lock()
	d.onListen = value
	d.lmu.Unlock()
}

// Role returns the client or server role of the driver.
func (d *TCPDriver) Role() Role {
	return d.role
}

func (d *TCPDriver) address() string {
	host := d.target.Host
	if scope := d.settings.String("ip6-scope-id"); scope != "" {
		host += "%" + scope
	}
	return net.JoinHostPort(host, strconv.Itoa(d.target.Port))
}

// Open implements Driver
//
// In server role Open blocks until one peer connects.
func (d *TCPDriver) Open() error {
	if d.conn != nil {
		return nil
	}
	if err := d.beginOpen(); err != nil {
		return err
	}
	network := d.target.Scheme
	if d.role == RoleServer {
		ln, err := net.Listen(network, d.address())
		if err != nil {
			d.trace(gxcommon.TraceTypesError, d.p.Sprintf("msg.connect_failed", d.address(), err))
			return err
		}
		defer ln.Close()
		d.trace(gxcommon.TraceTypesInfo, d.p.Sprintf("msg.listening_on", ln.Addr().String()))
		d.lmu.Lock()
		cb := d.onListen
		d.lmu.Unlock()
		if cb != nil {
			cb(ln.Addr())
		}
		c, err := ln.Accept()
		if err != nil {
			return err
		}
		d.trace(gxcommon.TraceTypesInfo, d.p.Sprintf("msg.accepted_from", c.RemoteAddr().String()))
		d.conn = c
	} else {
		d.trace(gxcommon.TraceTypesInfo, d.p.Sprintf("msg.connecting_to", network, d.address(), d.timeout.Milliseconds()))
		c, err := net.DialTimeout(network, d.address(), d.timeout)
		if err != nil {
			d.trace(gxcommon.TraceTypesError, d.p.Sprintf("msg.connect_failed", d.address(), err))
			return err
		}
		d.conn = c
	}
	d.opened()
	return nil
}

// Close implements Driver
func (d *TCPDriver) Close() error {
	if !d.beginClose() {
		return nil
	}
	var err error
	if d.conn != nil {
		err = d.conn.Close()
		d.conn = nil
	}
	d.closedf()
	return err
}

// Send implements Driver
func (d *TCPDriver) Send(data []byte) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if err := writeAll(d.conn, data); err != nil {
		return err
	}
	d.sent(data)
	return nil
}

// RecvSize implements Driver
func (d *TCPDriver) RecvSize(size int) ([]byte, error) {
	return d.recv(connReader{d.conn}, sizeRequest(size))
}

// RecvTimeout implements Driver
func (d *TCPDriver) RecvTimeout(timeout time.Duration) ([]byte, error) {
	return d.recv(connReader{d.conn}, timeoutRequest(timeout))
}

// RecvUntil implements Driver
func (d *TCPDriver) RecvUntil(terminator []byte) ([]byte, error) {
	return d.recv(connReader{d.conn}, untilRequest(terminator))
}
