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
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestNullDriver(t *testing.T) {
	d, err := NewNullDriver(mustTarget(t, "null:"))
	if err != nil {
		t.Fatalf("NewNullDriver failed: %v", err)
	}
	if d.Connected() {
		t.Fatal("driver must not be connected before Open")
	}
	if err := d.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	data, err := d.RecvSize(4)
	if err != nil || !bytes.Equal(data, []byte{0, 0, 0, 0}) {
		t.Errorf("RecvSize(4) = %x, %v", data, err)
	}
	data, err = d.RecvTimeout(time.Second)
	if err != nil || !bytes.Equal(data, []byte{0}) {
		t.Errorf("RecvTimeout = %x, %v", data, err)
	}
	data, err = d.RecvUntil([]byte("\r\n"))
	if err != nil || string(data) != "\r\n" {
		t.Errorf("RecvUntil = %q, %v", data, err)
	}
	if err := d.Send([]byte("hi")); err != nil {
		t.Errorf("Send failed: %v", err)
	}
	if d.BytesSent() != 2 || d.BytesReceived() != 7 {
		t.Errorf("counters sent=%d received=%d", d.BytesSent(), d.BytesReceived())
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if _, err := d.RecvSize(1); !errors.Is(err, ErrConnectionClosed) {
		t.Errorf("expected closed error, got %v", err)
	}
	if err := d.Open(); !errors.Is(err, ErrConnectionClosed) {
		t.Errorf("reopen: expected closed error, got %v", err)
	}
}

func TestNullDriverRejectsSettings(t *testing.T) {
	if _, err := NewNullDriver(mustTarget(t, "null:?size=1")); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}
