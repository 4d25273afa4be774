// Package protocon is a protocol prototyping engine. It opens a connection
// described by a URL, then runs line oriented commands that send encoded data
// and receive by size, by time or up to a terminator.
//
// Features
//
//   - Transports: null, TCP (client and server), UDP, DTLS, serial, unix
//     sockets, raw link layer (l2), Ethernet II (ether) and Bluetooth RFCOMM.
//   - Settings: transport options are URL query parameters. Unknown
//     parameters are rejected.
//   - Data: ${name} variables, backslash escapes and hex, base64 or UTF
//     encodings.
//   - Tracing: configurable trace level for sent, received, error and info
//     messages, plus media state callbacks.
//
// # Construction
//
// Use a Registry to pick a driver by URL scheme. Construction validates the
// settings and does no I/O.
//
// Example
//
//	d, err := protocon.DefaultRegistry().NewDriver("tcp://127.0.0.1:4059")
//	if err != nil {
//	    // errors.Is(err, protocon.ErrConfiguration)
//	}
//	if err := d.Open(); err != nil {
//	    // handle connect error
//	}
//	defer d.Close()
//
//	e := protocon.NewEngine(d, protocon.NewTextPrinter(os.Stdout))
//	_ = e.RunCommand(`send: "hello\r\n"`)
//	_ = e.RunCommand(`recv-until: \r\n`)
//
// # Receiving
//
// Receives never fail on timeout. They return whatever arrived before the
// deadline. When the peer closes the connection the data read so far is
// returned and Connected reports false.
//
// # Notes
//
// The l2, ether and rfcomm drivers need raw sockets. They are available on
// Linux only and must run as root.
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
