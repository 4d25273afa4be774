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
	"fmt"
	"io"
	"net"
	"testing"
	"time"
)

func openServer(t *testing.T) (*TCPDriver, net.Conn) {
	t.Helper()
	d, err := NewTCPDriver(mustTarget(t, "tcp://127.0.0.1:0/?type=server"))
	if err != nil {
		t.Fatalf("NewTCPDriver failed: %v", err)
	}
	addrs := make(chan net.Addr, 1)
	d.SetOnListen(func(addr net.Addr) {
		addrs <- addr
	})
	errs := make(chan error, 1)
	go func() {
		errs <- d.Open()
	}()
	var addr net.Addr
	select {
	case addr = <-addrs:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}
	peer, err := net.Dial("tcp", addr.String())
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	if err := <-errs; err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		peer.Close()
		d.Close()
	})
	return d, peer
}

func openClient(t *testing.T) (*TCPDriver, net.Conn) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port
	d, err := NewTCPDriver(mustTarget(t, fmt.Sprintf("tcp://127.0.0.1:%d/?connect-timeout=2", port)))
	if err != nil {
		t.Fatalf("NewTCPDriver failed: %v", err)
	}
	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err == nil {
			accepted <- c
		}
	}()
	if err := d.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	var peer net.Conn
	select {
	case peer = <-accepted:
	case <-time.After(5 * time.Second):
		t.Fatal("no connection accepted")
	}
	t.Cleanup(func() {
		peer.Close()
		d.Close()
	})
	return d, peer
}

func TestTCPServerRole(t *testing.T) {
	d, peer := openServer(t)
	if d.Role() != RoleServer || !d.Connected() {
		t.Fatalf("role %v connected %v", d.Role(), d.Connected())
	}
	if _, err := peer.Write([]byte("ping\nextra")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := d.RecvUntil([]byte("\n"))
	if err != nil || string(data) != "ping\n" {
		t.Fatalf("RecvUntil = %q, %v", data, err)
	}
	data, err = d.RecvSize(5)
	if err != nil || string(data) != "extra" {
		t.Fatalf("RecvSize = %q, %v", data, err)
	}
	if err := d.Send([]byte("pong")); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(peer, buf); err != nil || string(buf) != "pong" {
		t.Fatalf("peer read %q, %v", buf, err)
	}
}

func TestTCPPeerClose(t *testing.T) {
	d, peer := openClient(t)
	peer.Write([]byte("bye"))
	peer.Close()
	data, err := d.RecvSize(10)
	if err != nil {
		t.Fatalf("RecvSize failed: %v", err)
	}
	if string(data) != "bye" {
		t.Errorf("got %q", data)
	}
	if d.Connected() {
		t.Error("driver should be disconnected after the peer closed")
	}
	if _, err := d.RecvSize(1); !errors.Is(err, ErrConnectionClosed) {
		t.Errorf("expected closed error, got %v", err)
	}
}

func TestTCPRecvTimeout(t *testing.T) {
	d, peer := openClient(t)
	peer.Write([]byte{1, 2, 3})
	data, err := d.RecvTimeout(200 * time.Millisecond)
	if err != nil {
		t.Fatalf("RecvTimeout failed: %v", err)
	}
	if !bytes.Equal(data, []byte{1, 2, 3}) {
		t.Errorf("got %x", data)
	}
	if !d.Connected() {
		t.Error("timeout must not disconnect")
	}
}

func TestTCPSettings(t *testing.T) {
	tests := []struct {
		url string
		ok  bool
	}{
		{"tcp://127.0.0.1:80", true},
		{"tcp4://0.0.0.0:123/?type=server", true},
		{"tcp6://[fe80::1]:4444/?ip6-scope-id=eth0", true},
		{"tcp://127.0.0.1", false},
		{"tcp://:80", false},
		{"tcp://127.0.0.1:80/?type=peer", false},
		{"tcp://127.0.0.1:80/?ip6-scope-id=eth0", false},
		{"tcp://127.0.0.1:80/?connect-timeout=soon", false},
		{"tcp://127.0.0.1:80/?size=1", false},
	}
	for _, tt := range tests {
		_, err := NewTCPDriver(mustTarget(t, tt.url))
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.url, err)
		}
		if !tt.ok && !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: expected configuration error, got %v", tt.url, err)
		}
	}
}
