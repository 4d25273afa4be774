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

// NullDriver discards everything it is sent and receives zero bytes.
type NullDriver struct {
	driverBase
}

// NewNullDriver creates a null driver. It takes no settings.
func NewNullDriver(t *Target) (*NullDriver, error) {
	d := &NullDriver{}
	if err := d.init(d, t, nil); err != nil {
		return nil, err
	}
	return d, nil
}

// Open implements Driver
func (d *NullDriver) Open() error {
	if err := d.beginOpen(); err != nil {
		return err
	}
	d.opened()
	return nil
}

// Close implements Driver
func (d *NullDriver) Close() error {
	if d.beginClose() {
		d.closedf()
	}
	return nil
}

// Send implements Driver
func (d *NullDriver) Send(data []byte) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	d.sent(data)
	return nil
}

// RecvSize implements Driver
func (d *NullDriver) RecvSize(size int) ([]byte, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}
	if size < 0 {
		size = 0
	}
	return d.received(receiveResult{data: make([]byte, size)}), nil
}

// RecvTimeout implements Driver
func (d *NullDriver) RecvTimeout(timeout time.Duration) ([]byte, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}
	return d.received(receiveResult{data: []byte{0}}), nil
}

// RecvUntil implements Driver
func (d *NullDriver) RecvUntil(terminator []byte) ([]byte, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}
	return d.received(receiveResult{data: append([]byte(nil), terminator...)}), nil
}
