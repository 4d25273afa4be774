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
	"time"
)

// etherTypeAll receives frames of every protocol.
const etherTypeAll = 0x0003

var l2Settings = []Setting{
	{Name: "size", Default: 0xffff, Coerce: IntValue},
}

// rawDriver holds what the socket based drivers outside the net package share.
type rawDriver struct {
	driverBase
	sock rawSocket
}

// Close implements Driver
func (d *rawDriver) Close() error {
	if !d.beginClose() {
		return nil
	}
	var err error
	if d.sock != nil {
		err = d.sock.close()
		d.sock = nil
	}
	d.closedf()
	return err
}

func (d *rawDriver) writeData(data []byte, traced []byte) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if err := d.sock.write(data); err != nil {
		return err
	}
	d.sent(traced)
	return nil
}

func (d *rawDriver) frameRequest(r receiveRequest, size int, accept func([]byte) ([]byte, bool)) receiveRequest {
	r.framed = true
	r.frameSize = size
	r.accept = accept
	return r
}

// L2Driver sends and receives raw link layer frames on one interface,
// for example l2://eth0. Frames are received without any filtering.
type L2Driver struct {
	rawDriver
}

// NewL2Driver validates the target of a link layer driver. The process
// must be privileged.
func NewL2Driver(t *Target) (*L2Driver, error) {
	if err := requireRoot(t.Scheme); err != nil {
		return nil, err
	}
	d := &L2Driver{}
	if err := d.init(d, t, l2Settings); err != nil {
		return nil, err
	}
	if err := t.requireHost(); err != nil {
		return nil, err
	}
	if size := d.settings.Int("size"); size <= 0 || size > 0xffff {
		return nil, configErrorf("unsupported value for size: %d", size)
	}
	return d, nil
}

// Open implements Driver
func (d *L2Driver) Open() error {
	if d.sock != nil {
		return nil
	}
	if err := d.beginOpen(); err != nil {
		return err
	}
	sock, err := openPacketSocket(d.target.Host, etherTypeAll)
	if err != nil {
		return err
	}
	d.sock = sock
	d.opened()
	return nil
}

// Send implements Driver
func (d *L2Driver) Send(data []byte) error {
	return d.writeData(data, data)
}

func (d *L2Driver) request(r receiveRequest) receiveRequest {
	size := d.settings.Int("size")
	if r.size >= 0 && r.size < size {
		size = r.size
	}
	return d.frameRequest(r, size, nil)
}

// RecvSize implements Driver
func (d *L2Driver) RecvSize(size int) ([]byte, error) {
	return d.recv(d.sock, d.request(sizeRequest(size)))
}

// RecvTimeout implements Driver
func (d *L2Driver) RecvTimeout(timeout time.Duration) ([]byte, error) {
	return d.recv(d.sock, d.request(timeoutRequest(timeout)))
}

// RecvUntil implements Driver
func (d *L2Driver) RecvUntil(terminator []byte) ([]byte, error) {
	return d.recv(d.sock, d.request(untilRequest(terminator)))
}
