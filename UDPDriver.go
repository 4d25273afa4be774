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
	"time"

	"github.com/Gurux/gxcommon-go"
)

var udpSettings = []Setting{
	{Name: "size", Default: 0xffff, Coerce: IntValue},
}

// datagramDriver holds what the udp and dtls drivers share: a connected
// datagram conn read one datagram at a time.
type datagramDriver struct {
	driverBase
	conn net.Conn
}

func (d *datagramDriver) address() string {
	return net.JoinHostPort(d.target.Host, strconv.Itoa(d.target.Port))
}

func (d *datagramDriver) validate() error {
	if err := d.target.requireHost(); err != nil {
		return err
	}
	if err := d.target.requirePort(); err != nil {
		return err
	}
	if size := d.settings.Int("size"); size <= 0 || size > 0xffff {
		return configErrorf("unsupported value for size: %d", size)
	}
	return nil
}

func (d *datagramDriver) request(r receiveRequest) receiveRequest {
	r.framed = true
	r.perFrame = true
	r.frameSize = d.settings.Int("size")
	return r
}

// Close implements Driver
func (d *datagramDriver) Close() error {
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
func (d *datagramDriver) Send(data []byte) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if _, err := d.conn.Write(data); err != nil {
		return err
	}
	d.sent(data)
	return nil
}

// RecvSize implements Driver
func (d *datagramDriver) RecvSize(size int) ([]byte, error) {
	return d.recv(connReader{d.conn}, d.request(sizeRequest(size)))
}

// RecvTimeout implements Driver
func (d *datagramDriver) RecvTimeout(timeout time.Duration) ([]byte, error) {
	return d.recv(connReader{d.conn}, d.request(timeoutRequest(timeout)))
}

// RecvUntil implements Driver
//
// Each datagram is searched on its own. Datagrams without the terminator
// are dropped even when the terminator spans two of them.
func (d *datagramDriver) RecvUntil(terminator []byte) ([]byte, error) {
	return d.recv(connReader{d.conn}, d.request(untilRequest(terminator)))
}

// UDPDriver is a datagram socket driver for the udp, udp4 and udp6 schemes.
// The peer never signals that it closed.
type UDPDriver struct {
	datagramDriver
}

// NewUDPDriver validates the target and settings of a datagram driver.
func NewUDPDriver(t *Target) (*UDPDriver, error) {
	d := &UDPDriver{}
	if err := d.init(d, t, udpSettings); err != nil {
		return nil, err
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Open implements Driver
func (d *UDPDriver) Open() error {
	if d.conn != nil {
		return nil
	}
	if err := d.beginOpen(); err != nil {
		return err
	}
	c, err := net.Dial(d.target.Scheme, d.address())
	if err != nil {
		d.trace(gxcommon.TraceTypesError, d.p.Sprintf("msg.connect_failed", d.address(), err))
		return err
	}
	d.conn = c
	d.opened()
	return nil
}
