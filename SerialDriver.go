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
	"io"
	"time"

	"go.bug.st/serial"
)

// BaudRates lists the baud rates the serial driver accepts.
var BaudRates = []any{
	50, 75, 110, 134, 150, 200, 300, 600, 1200, 1800, 2400, 4800, 9600, 19200, 38400, 57600, 115200,
	230400, 460800, 500000, 576000, 921600, 1000000, 1152000, 1500000, 2000000, 2500000, 3000000, 3500000, 4000000,
}

var serialParity = map[string]serial.Parity{
	"N": serial.NoParity,
	"E": serial.EvenParity,
	"O": serial.OddParity,
	"M": serial.MarkParity,
	"S": serial.SpaceParity,
}

var serialStopBits = map[float64]serial.StopBits{
	1:   serial.OneStopBit,
	1.5: serial.OnePointFiveStopBits,
	2:   serial.TwoStopBits,
}

var serialSettings = []Setting{
	{Name: "baudrate", Default: 9600, Coerce: IntValue, Choices: BaudRates},
	{Name: "bytesize", Default: 8, Coerce: IntValue, Choices: []any{5, 6, 7, 8}},
	{Name: "parity", Default: "N", Coerce: UpperValue, Choices: []any{"N", "E", "O", "M", "S"}},
	{Name: "stopbits", Default: 1.0, Coerce: FloatValue, Choices: []any{1.0, 1.5, 2.0}},
}

// SerialDriver is a serial port driver. The device path comes from the URL
// path, for example serial:///dev/ttyUSB0?baudrate=115200.
type SerialDriver struct {
	driverBase
	port serial.Port
}

// NewSerialDriver validates the target and settings of a serial driver.
func NewSerialDriver(t *Target) (*SerialDriver, error) {
	d := &SerialDriver{}
	if err := d.init(d, t, serialSettings); err != nil {
		return nil, err
	}
	if err := t.requirePath(); err != nil {
		return nil, err
	}
	return d, nil
}

// Mode returns the serial line settings used by Open.
func (d *SerialDriver) Mode() *serial.Mode {
	return &serial.Mode{
		BaudRate: d.settings.Int("baudrate"),
		DataBits: d.settings.Int("bytesize"),
		Parity:   serialParity[d.settings.String("parity")],
		StopBits: serialStopBits[d.settings.Float("stopbits")],
	}
}

// Open implements Driver
//
// RTS is asserted and DTR deasserted once the port is open.
func (d *SerialDriver) Open() error {
	if d.port != nil {
		return nil
	}
	if err := d.beginOpen(); err != nil {
		return err
	}
	port, err := serial.Open(d.target.Path, d.Mode())
	if err != nil {
		return err
	}
	if err = port.SetRTS(true); err == nil {
		err = port.SetDTR(false)
	}
	if err != nil {
		_ = port.Close()
		return err
	}
	d.port = port
	d.opened()
	return nil
}

// Close implements Driver
func (d *SerialDriver) Close() error {
	if !d.beginClose() {
		return nil
	}
	var err error
	if d.port != nil {
		err = d.port.Close()
		d.port = nil
	}
	d.closedf()
	return err
}

// Send implements Driver
func (d *SerialDriver) Send(data []byte) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if err := writeAll(d.port, data); err != nil {
		return err
	}
	d.sent(data)
	return nil
}

// RecvSize implements Driver
func (d *SerialDriver) RecvSize(size int) ([]byte, error) {
	return d.recv(portReader{d.port}, sizeRequest(size))
}

// RecvTimeout implements Driver
func (d *SerialDriver) RecvTimeout(timeout time.Duration) ([]byte, error) {
	return d.recv(portReader{d.port}, timeoutRequest(timeout))
}

// RecvUntil implements Driver
func (d *SerialDriver) RecvUntil(terminator []byte) ([]byte, error) {
	return d.recv(portReader{d.port}, untilRequest(terminator))
}

// portReader adapts a serial port to the receive loop. The port read
// timeout is set to what is left of the deadline before every read.
type portReader struct {
	port serial.Port
}

func (r portReader) readChunk(buf []byte, deadline time.Time) (int, error) {
	for {
		timeout := serial.NoTimeout
		if !deadline.IsZero() {
			timeout = time.Until(deadline)
			if timeout <= 0 {
				return 0, errTimeout
			}
		}
		if err := r.port.SetReadTimeout(timeout); err != nil {
			return 0, err
		}
		n, err := r.port.Read(buf)
		if err != nil {
			var pe *serial.PortError
			if errors.As(err, &pe) && pe.Code() == serial.PortClosed {
				return 0, io.EOF
			}
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
	}
}
