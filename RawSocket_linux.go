//go:build linux

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
	"encoding/binary"
	"errors"
	"io"
	"net"
	"time"

	"golang.org/x/sys/unix"
)

// fdSocket is a socket the net package can not wrap: AF_PACKET and
// AF_BLUETOOTH. Readiness is waited for with poll(2).
type fdSocket struct {
	fd     int
	stream bool
}

// htons returns v with its bytes in network order as seen by the host.
func htons(v uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return binary.NativeEndian.Uint16(b[:])
}

func openPacketSocket(ifname string, protocol uint16) (rawSocket, error) {
	iface, err := net.InterfaceByName(ifname)
	if err != nil {
		return nil, configErrorf("invalid interface %q: %v", ifname, err)
	}
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW|unix.SOCK_CLOEXEC, int(htons(protocol)))
	if err != nil {
		return nil, err
	}
	sa := &unix.SockaddrLinklayer{Protocol: htons(protocol), Ifindex: iface.Index}
	if err := unix.Bind(fd, sa); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	return &fdSocket{fd: fd}, nil
}

func openRFCOMMSocket(addr [6]byte, channel int) (rawSocket, error) {
	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, unix.BTPROTO_RFCOMM)
	if err != nil {
		return nil, err
	}
	// bdaddr_t is stored least significant byte first.
	sa := &unix.SockaddrRFCOMM{Channel: uint8(channel)}
	for i := range addr {
		sa.Addr[i] = addr[len(addr)-1-i]
	}
	if err := unix.Connect(fd, sa); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	return &fdSocket{fd: fd, stream: true}, nil
}

// pollTimeout converts what is left of the deadline to poll milliseconds.
func pollTimeout(deadline time.Time) int {
	if deadline.IsZero() {
		return -1
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Millisecond - 1) / time.Millisecond)
}

func (s *fdSocket) readChunk(buf []byte, deadline time.Time) (int, error) {
	for {
		fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, pollTimeout(deadline))
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			if !deadline.IsZero() && !time.Now().Before(deadline) {
				return 0, errTimeout
			}
			continue
		}
		r, err := unix.Read(s.fd, buf)
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			continue
		}
		if errors.Is(err, unix.ECONNRESET) && s.stream {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		if r == 0 && s.stream {
			return 0, io.EOF
		}
		return r, nil
	}
}

func (s *fdSocket) write(data []byte) error {
	for len(data) != 0 {
		n, err := unix.Write(s.fd, data)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

func (s *fdSocket) close() error {
	return unix.Close(s.fd)
}
