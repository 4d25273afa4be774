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

var rfcommSettings = []Setting{
	{Name: "dst", Required: true},
	{Name: "channel", Required: true, Coerce: IntValue},
}

// RFCOMMDriver is a Bluetooth RFCOMM stream driver, for example
// rfcomm://?dst=00:11:22:33:44:55&channel=1. It reads like the tcp driver.
type RFCOMMDriver struct {
	rawDriver
	addr    [6]byte
	channel int
}

// NewRFCOMMDriver validates the settings of a Bluetooth driver.
func NewRFCOMMDriver(t *Target) (*RFCOMMDriver, error) {
	d := &RFCOMMDriver{}
	if err := d.init(d, t, rfcommSettings); err != nil {
		return nil, err
	}
	mac, err := parseMAC("dst", d.settings.String("dst"))
	if err != nil {
		return nil, err
	}
	copy(d.addr[:], mac)
	d.channel = d.settings.Int("channel")
	if d.channel < 1 || d.channel > 30 {
		return nil, configErrorf("unsupported value for channel: %d", d.channel)
	}
	return d, nil
}

// Open implements Driver
func (d *RFCOMMDriver) Open() error {
	if d.sock != nil {
		return nil
	}
	if err := d.beginOpen(); err != nil {
		return err
	}
	sock, err := openRFCOMMSocket(d.addr, d.channel)
	if err != nil {
		return err
	}
	d.sock = sock
	d.opened()
	return nil
}

// Send implements Driver
func (d *RFCOMMDriver) Send(data []byte) error {
	return d.writeData(data, data)
}

// RecvSize implements Driver
func (d *RFCOMMDriver) RecvSize(size int) ([]byte, error) {
	return d.recv(d.sock, sizeRequest(size))
}

// RecvTimeout implements Driver
func (d *RFCOMMDriver) RecvTimeout(timeout time.Duration) ([]byte, error) {
	return d.recv(d.sock, timeoutRequest(timeout))
}

// RecvUntil implements Driver
func (d *RFCOMMDriver) RecvUntil(terminator []byte) ([]byte, error) {
	return d.recv(d.sock, untilRequest(terminator))
}
