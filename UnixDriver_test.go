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
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
)

func TestUnixDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Skipf("unix sockets not available: %v", err)
	}
	defer ln.Close()
	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		defer c.Close()
		buf := make([]byte, 4)
		n, _ := c.Read(buf)
		c.Write(append(buf[:n], "!\n"...))
	}()

	d, err := NewUnixDriver(mustTarget(t, "unix://"+path))
	if err != nil {
		t.Fatalf("NewUnixDriver failed: %v", err)
	}
	if err := d.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer d.Close()
	if err := d.Send([]byte("ping")); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	data, err := d.RecvUntil([]byte("\n"))
	if err != nil || string(data) != "ping!\n" {
		t.Fatalf("RecvUntil = %q, %v", data, err)
	}
	data, err = d.RecvSize(1)
	if err != nil || len(data) != 0 || d.Connected() {
		t.Errorf("after peer close: %q, %v, connected=%v", data, err, d.Connected())
	}
}

func TestUnixDriverRejectsNonSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{path, filepath.Join(t.TempDir(), "missing")} {
		d, err := NewUnixDriver(mustTarget(t, "unix://"+p))
		if err != nil {
			t.Fatalf("NewUnixDriver failed: %v", err)
		}
		if err := d.Open(); !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: expected configuration error, got %v", p, err)
		}
		if d.Connected() {
			t.Errorf("%s: driver must not be connected", p)
		}
	}
	if _, err := NewUnixDriver(mustTarget(t, "unix://")); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error for missing path, got %v", err)
	}
}
