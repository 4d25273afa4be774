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
	"os"
	"time"

	"github.com/Gurux/gxcommon-go"
)

// UnixDriver is a unix domain stream socket driver, for example
// unix:///run/app.sock.
type UnixDriver struct {
	driverBase
	conn net.Conn
}

// NewUnixDriver validates the target of a unix socket driver.
func NewUnixDriver(t *Target) (*UnixDriver, error) {
	d := &UnixDriver{}
	if err := d.init(d, t, nil); err != nil {
		return nil, err
	}
	if err := t.requirePath(); err != nil {
		return nil, err
	}
	return d, nil
}

// Open implements Driver
//
// The path must exist and be a socket before anything is dialed.
func (d *UnixDriver) Open() error {
	if d.conn != nil {
		return nil
	}
	if err := d.beginOpen(); err != nil {
		return err
	}
	path := d.target.Path
	st, err := os.Stat(path)
	if err != nil || st.Mode()&os.ModeSocket == 0 {
		return configErrorf("invalid unix socket path: %s", path)
	}
	c, err := net.Dial("unix", path)
	if err != nil {
		d.trace(gxcommon.TraceTypesError, d.p.Sprintf("msg.connect_failed", path, err))
		return err
	}
	d.conn = c
	d.opened()
	return nil
}

// Close implements Driver
func (d *UnixDriver) Close() error {
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
func (d *UnixDriver) Send(data []byte) error {
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
func (d *UnixDriver) RecvSize(size int) ([]byte, error) {
	return d.recv(connReader{d.conn}, sizeRequest(size))
}

// RecvTimeout implements Driver
func (d *UnixDriver) RecvTimeout(timeout time.Duration) ([]byte, error) {
	return d.recv(connReader{d.conn}, timeoutRequest(timeout))
}

// RecvUntil implements Driver
func (d *UnixDriver) RecvUntil(terminator []byte) ([]byte, error) {
	return d.recv(connReader{d.conn}, untilRequest(terminator))
}
