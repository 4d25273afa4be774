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
	"fmt"
)

// DriverFactory constructs a driver for a parsed target without doing I/O.
type DriverFactory func(t *Target) (Driver, error)

// DriverType is one entry of a Registry.
type DriverType struct {
	Name     string
	Schemes  []string
	Examples []string
	New      DriverFactory
}

// Registry maps URL schemes to driver types. Types are tried in
// registration order and the first one claiming the scheme wins.
type Registry struct {
	types []DriverType
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a driver type.
func (r *Registry) Register(t DriverType) {
	r.types = append(r.types, t)
}

// Types returns the registered driver types in registration order.
func (r *Registry) Types() []DriverType {
	return append([]DriverType(nil), r.types...)
}

// Lookup returns the driver type handling the scheme.
func (r *Registry) Lookup(scheme string) (DriverType, error) {
	for _, t := range r.types {
		for _, s := range t.Schemes {
			if s == scheme {
				return t, nil
			}
		}
	}
	return DriverType{}, fmt.Errorf("%w: no driver for scheme: %s", ErrDriver, scheme)
}

// NewDriver parses the URL and constructs the matching driver.
func (r *Registry) NewDriver(rawURL string) (Driver, error) {
	t, err := ParseTarget(rawURL)
	if err != nil {
		return nil, err
	}
	dt, err := r.Lookup(t.Scheme)
	if err != nil {
		return nil, err
	}
	return dt.New(t)
}

// DefaultRegistry returns a registry with every built-in driver.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(DriverType{
		Name:     "null",
		Schemes:  []string{"null"},
		Examples: []string{"null:"},
		New:      func(t *Target) (Driver, error) { return wrap[*NullDriver](NewNullDriver(t)) },
	})
	r.Register(DriverType{
		Name:    "tcp",
		Schemes: []string{"tcp", "tcp4", "tcp6"},
		Examples: []string{
			"tcp://1.2.3.4:123",
			"tcp4://0.0.0.0:123/?type=server",
			"tcp6://[fe80::800:27ff:fe00:10]:4444/?ip6-scope-id=eth0",
		},
		New: func(t *Target) (Driver, error) { return wrap[*TCPDriver](NewTCPDriver(t)) },
	})
	r.Register(DriverType{
		Name:     "udp",
		Schemes:  []string{"udp", "udp4", "udp6"},
		Examples: []string{"udp://1.2.3.4:123", "udp4://1.2.3.4:123/?size=8192"},
		New:      func(t *Target) (Driver, error) { return wrap[*UDPDriver](NewUDPDriver(t)) },
	})
	r.Register(DriverType{
		Name:     "dtls",
		Schemes:  []string{"dtls", "dtls4", "dtls6"},
		Examples: []string{"dtls://1.2.3.4:5684/?psk=73656372657421&psk-identity=client"},
		New:      func(t *Target) (Driver, error) { return wrap[*DTLSDriver](NewDTLSDriver(t)) },
	})
	r.Register(DriverType{
		Name:     "serial",
		Schemes:  []string{"serial"},
		Examples: []string{"serial:///dev/ttyUSB0?baudrate=9600&bytesize=8&parity=N&stopbits=1"},
		New:      func(t *Target) (Driver, error) { return wrap[*SerialDriver](NewSerialDriver(t)) },
	})
	r.Register(DriverType{
		Name:     "l2",
		Schemes:  []string{"l2"},
		Examples: []string{"l2://eth0"},
		New:      func(t *Target) (Driver, error) { return wrap[*L2Driver](NewL2Driver(t)) },
	})
	r.Register(DriverType{
		Name:     "ether",
		Schemes:  []string{"ether"},
		Examples: []string{"ether://eth0?dst=00:11:22:33:44:55&type=0x88b5"},
		New:      func(t *Target) (Driver, error) { return wrap[*EtherDriver](NewEtherDriver(t)) },
	})
	r.Register(DriverType{
		Name:     "rfcomm",
		Schemes:  []string{"rfcomm"},
		Examples: []string{"rfcomm://?dst=00:11:22:33:44:55&channel=1"},
		New:      func(t *Target) (Driver, error) { return wrap[*RFCOMMDriver](NewRFCOMMDriver(t)) },
	})
	r.Register(DriverType{
		Name:     "unix",
		Schemes:  []string{"unix"},
		Examples: []string{"unix:///run/app.sock"},
		New:      func(t *Target) (Driver, error) { return wrap[*UnixDriver](NewUnixDriver(t)) },
	})
	return r
}

// wrap keeps a typed nil driver out of the Driver interface.
func wrap[T Driver](d T, err error) (Driver, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}
