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
	"net"
	"testing"
)

// asRoot makes the raw socket drivers believe the process is privileged.
func asRoot(t *testing.T, euid int) {
	t.Helper()
	old := geteuid
	geteuid = func() int { return euid }
	t.Cleanup(func() { geteuid = old })
}

func TestRawDriversRequirePrivilege(t *testing.T) {
	asRoot(t, 1000)
	if _, err := NewL2Driver(mustTarget(t, "l2://eth0")); !errors.Is(err, ErrPrivilege) {
		t.Errorf("l2: expected privilege error, got %v", err)
	}
	if _, err := NewEtherDriver(mustTarget(t, "ether://eth0?src=00:11:22:33:44:55")); !errors.Is(err, ErrPrivilege) {
		t.Errorf("ether: expected privilege error, got %v", err)
	}
	// Privilege is checked before the settings.
	if _, err := NewL2Driver(mustTarget(t, "l2://eth0?bogus=1")); !errors.Is(err, ErrPrivilege) {
		t.Errorf("l2: expected privilege error, got %v", err)
	}
}

func TestEtherDriverSettings(t *testing.T) {
	asRoot(t, 0)
	d, err := NewEtherDriver(mustTarget(t, "ether://eth0?src=00:11:22:33:44:55&dst=66:77:88:99:aa:bb&type=0x88b5"))
	if err != nil {
		t.Fatalf("NewEtherDriver failed: %v", err)
	}
	want := []byte{
		0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb,
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
		0x88, 0xb5,
	}
	if !bytes.Equal(d.Header(), want) {
		t.Errorf("header %x, want %x", d.Header(), want)
	}
	for _, raw := range []string{
		"ether://eth0?src=00:11:22:33:44",
		"ether://eth0?src=00:11:22:33:44:55&dst=broadcast",
		"ether://eth0?src=00:11:22:33:44:55&type=0x10000",
		"ether://eth0?src=00:11:22:33:44:55&size=0",
		"ether://?src=00:11:22:33:44:55",
	} {
		if _, err := NewEtherDriver(mustTarget(t, raw)); !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: expected configuration error, got %v", raw, err)
		}
	}
}

func TestEtherDriverInterfaceMAC(t *testing.T) {
	asRoot(t, 0)
	old := interfaceMAC
	interfaceMAC = func(name string) (net.HardwareAddr, error) {
		if name != "eth7" {
			return nil, errors.New("no such interface")
		}
		return net.HardwareAddr{2, 0, 0, 0, 0, 1}, nil
	}
	defer func() { interfaceMAC = old }()

	d, err := NewEtherDriver(mustTarget(t, "ether://eth7"))
	if err != nil {
		t.Fatalf("NewEtherDriver failed: %v", err)
	}
	if got := d.Settings().String("src"); got != "02:00:00:00:00:01" {
		t.Errorf("src %s", got)
	}
	if !bytes.Equal(d.Header()[:6], broadcastMAC) {
		t.Errorf("dst should default to broadcast, header %x", d.Header())
	}
	if _, err := NewEtherDriver(mustTarget(t, "ether://eth8")); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestAcceptFrame(t *testing.T) {
	own := net.HardwareAddr{0, 0x11, 0x22, 0x33, 0x44, 0x55}
	peer := net.HardwareAddr{0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb}
	other := net.HardwareAddr{1, 2, 3, 4, 5, 6}
	frame := func(to, from net.HardwareAddr) []byte {
		return append(etherHeader(to, from, 0x0800), "data"...)
	}
	tests := []struct {
		name  string
		frame []byte
		dst   net.HardwareAddr
		ok    bool
	}{
		{"to us from peer", frame(own, peer), peer, true},
		{"broadcast from peer", frame(broadcastMAC, peer), peer, true},
		{"to other host", frame(other, peer), peer, false},
		{"from other host", frame(own, other), peer, false},
		{"any source when dst is broadcast", frame(own, other), broadcastMAC, true},
		{"runt frame", []byte{1, 2, 3}, broadcastMAC, false},
	}
	for _, tt := range tests {
		payload, ok := acceptFrame(tt.frame, own, tt.dst)
		if ok != tt.ok {
			t.Errorf("%s: accepted=%v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && string(payload) != "data" {
			t.Errorf("%s: payload %q", tt.name, payload)
		}
	}
}

func TestL2DriverSettings(t *testing.T) {
	asRoot(t, 0)
	if _, err := NewL2Driver(mustTarget(t, "l2://eth0?size=1500")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, raw := range []string{"l2://", "l2://eth0?size=0", "l2://eth0?dst=ff:ff:ff:ff:ff:ff"} {
		if _, err := NewL2Driver(mustTarget(t, raw)); !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: expected configuration error, got %v", raw, err)
		}
	}
}

func TestRFCOMMDriverSettings(t *testing.T) {
	d, err := NewRFCOMMDriver(mustTarget(t, "rfcomm://?dst=00:11:22:33:44:55&channel=3"))
	if err != nil {
		t.Fatalf("NewRFCOMMDriver failed: %v", err)
	}
	if d.channel != 3 || d.addr != [6]byte{0, 0x11, 0x22, 0x33, 0x44, 0x55} {
		t.Errorf("addr %x channel %d", d.addr, d.channel)
	}
	for _, raw := range []string{
		"rfcomm://?channel=1",
		"rfcomm://?dst=00:11:22:33:44:55",
		"rfcomm://?dst=00:11:22:33:44:55&channel=31",
		"rfcomm://?dst=nope&channel=1",
	} {
		if _, err := NewRFCOMMDriver(mustTarget(t, raw)); !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: expected configuration error, got %v", raw, err)
		}
	}
}

func TestSerialDriverSettings(t *testing.T) {
	d, err := NewSerialDriver(mustTarget(t, "serial:///dev/ttyUSB0?baudrate=115200&bytesize=7&parity=e&stopbits=1.5"))
	if err != nil {
		t.Fatalf("NewSerialDriver failed: %v", err)
	}
	mode := d.Mode()
	if mode.BaudRate != 115200 || mode.DataBits != 7 {
		t.Errorf("unexpected mode %+v", mode)
	}
	for _, raw := range []string{
		"serial://",
		"serial:///dev/ttyS0?baudrate=12345",
		"serial:///dev/ttyS0?bytesize=9",
		"serial:///dev/ttyS0?parity=X",
		"serial:///dev/ttyS0?stopbits=3",
	} {
		if _, err := NewSerialDriver(mustTarget(t, raw)); !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: expected configuration error, got %v", raw, err)
		}
	}
}
