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
	"encoding/binary"
	"net"
	"regexp"
	"time"
)

// etherHeaderSize is dst MAC + src MAC + ethertype.
const etherHeaderSize = 14

var (
	broadcastMAC = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	macPattern   = regexp.MustCompile(`^([0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2}$`)
)

var etherSettings = []Setting{
	{Name: "src", Default: ""},
	{Name: "dst", Default: "ff:ff:ff:ff:ff:ff"},
	{Name: "type", Default: 0x0800, Coerce: IntValue},
	{Name: "size", Default: 0xffff, Coerce: IntValue},
}

// EtherDriver sends and receives Ethernet II frames on one interface,
// for example ether://eth0?dst=00:11:22:33:44:55&type=0x88b5.
//
// Send prepends the header built from the settings. Receive drops frames
// not addressed to src or broadcast and frames not coming from dst, unless
// dst is the broadcast address.
type EtherDriver struct {
	rawDriver
	src       net.HardwareAddr
	dst       net.HardwareAddr
	etherType uint16
}

func parseMAC(name, value string) (net.HardwareAddr, error) {
	if !macPattern.MatchString(value) {
		return nil, configErrorf("bad mac address for %s: %s", name, value)
	}
	mac, err := net.ParseMAC(value)
	if err != nil {
		return nil, configErrorf("bad mac address for %s: %s", name, value)
	}
	return mac, nil
}

// interfaceMAC is replaced in tests.
var interfaceMAC = func(name string) (net.HardwareAddr, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil, err
	}
	return iface.HardwareAddr, nil
}

// NewEtherDriver validates the target and settings of an Ethernet driver.
// The process must be privileged. When src is not given the hardware
// address of the interface is used.
func NewEtherDriver(t *Target) (*EtherDriver, error) {
	if err := requireRoot(t.Scheme); err != nil {
		return nil, err
	}
	d := &EtherDriver{}
	if err := d.init(d, t, etherSettings); err != nil {
		return nil, err
	}
	if err := t.requireHost(); err != nil {
		return nil, err
	}
	var err error
	if d.dst, err = parseMAC("dst", d.settings.String("dst")); err != nil {
		return nil, err
	}
	if src := d.settings.String("src"); src != "" {
		if d.src, err = parseMAC("src", src); err != nil {
			return nil, err
		}
	} else {
		mac, err := interfaceMAC(t.Host)
		if err != nil {
			return nil, configErrorf("invalid interface %q: %v", t.Host, err)
		}
		if len(mac) != 6 {
			return nil, configErrorf("interface %q has no ethernet address", t.Host)
		}
		d.src = mac
		d.settings["src"] = mac.String()
	}
	etherType := d.settings.Int("type")
	if etherType < 0 || etherType > 0xffff {
		return nil, configErrorf("unsupported value for type: %#x", etherType)
	}
	d.etherType = uint16(etherType)
	if size := d.settings.Int("size"); size <= 0 || size > 0xffff {
		return nil, configErrorf("unsupported value for size: %d", size)
	}
	return d, nil
}

// Header returns the 14 byte Ethernet header put in front of sent data.
func (d *EtherDriver) Header() []byte {
	return etherHeader(d.dst, d.src, d.etherType)
}

func etherHeader(dst, src net.HardwareAddr, etherType uint16) []byte {
	ret := make([]byte, etherHeaderSize)
	copy(ret[0:6], dst)
	copy(ret[6:12], src)
	binary.BigEndian.PutUint16(ret[12:], etherType)
	return ret
}

// acceptFrame returns the payload of a frame that src may receive from dst.
func acceptFrame(frame []byte, src, dst net.HardwareAddr) ([]byte, bool) {
	if len(frame) < etherHeaderSize {
		return nil, false
	}
	to, from := frame[0:6], frame[6:12]
	if !bytes.Equal(to, src) && !bytes.Equal(to, broadcastMAC) {
		return nil, false
	}
	if !bytes.Equal(from, dst) && !bytes.Equal(dst, broadcastMAC) {
		return nil, false
	}
	return frame[etherHeaderSize:], true
}

// Open implements Driver
func (d *EtherDriver) Open() error {
	if d.sock != nil {
		return nil
	}
	if err := d.beginOpen(); err != nil {
		return err
	}
	sock, err := openPacketSocket(d.target.Host, d.etherType)
	if err != nil {
		return err
	}
	d.sock = sock
	d.opened()
	return nil
}

// Send implements Driver
func (d *EtherDriver) Send(data []byte) error {
	frame := append(d.Header(), data...)
	return d.writeData(frame, data)
}

func (d *EtherDriver) request(r receiveRequest) receiveRequest {
	size := d.settings.Int("size")
	if r.size >= 0 && r.size < size {
		size = r.size
	}
	return d.frameRequest(r, etherHeaderSize+size, func(frame []byte) ([]byte, bool) {
		return acceptFrame(frame, d.src, d.dst)
	})
}

// RecvSize implements Driver
func (d *EtherDriver) RecvSize(size int) ([]byte, error) {
	return d.recv(d.sock, d.request(sizeRequest(size)))
}

// RecvTimeout implements Driver
func (d *EtherDriver) RecvTimeout(timeout time.Duration) ([]byte, error) {
	return d.recv(d.sock, d.request(timeoutRequest(timeout)))
}

// RecvUntil implements Driver
func (d *EtherDriver) RecvUntil(terminator []byte) ([]byte, error) {
	return d.recv(d.sock, d.request(untilRequest(terminator)))
}
