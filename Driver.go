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
	"fmt"
	"sync"
	"time"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Driver is the contract every transport implements.
//
// A driver is constructed without doing any I/O, acquires its resource in
// Open and releases it in Close. Receives return short data on timeout and
// mark the driver disconnected when the peer closes the stream.
type Driver interface {
	// Open acquires the transport resource.
	Open() error
	// Close releases the transport resource. Closing twice is a no-op.
	Close() error
	// Connected reports whether the driver is open and the peer has not closed.
	Connected() bool
	// Send writes data to the peer.
	Send(data []byte) error
	// RecvSize reads exactly size bytes unless the peer closes first.
	RecvSize(size int) ([]byte, error)
	// RecvTimeout reads whatever arrives within timeout.
	RecvTimeout(timeout time.Duration) ([]byte, error)
	// RecvUntil reads until the first occurrence of terminator.
	RecvUntil(terminator []byte) ([]byte, error)
	// Target returns the connection URL.
	Target() *Target
	// Settings returns the resolved URL settings.
	Settings() Settings
	// BytesSent returns the number of bytes written.
	BytesSent() uint64
	// BytesReceived returns the number of bytes read.
	BytesReceived() uint64
	// SetTrace sets the trace level of the driver.
	SetTrace(traceLevel gxcommon.TraceLevel) error
	// SetOnTrace sets the trace event handler.
	SetOnTrace(value TraceEventHandler)
	// SetOnMediaStateChange sets the state event handler.
	SetOnMediaStateChange(value MediaStateHandler)
	// Localize sets the language of trace messages.
	Localize(language language.Tag)
}

// TraceEventHandler is called when the driver emits a trace message.
type TraceEventHandler func(d Driver, e gxcommon.TraceEventArgs)

// MediaStateHandler is called when the driver changes state.
type MediaStateHandler func(d Driver, e gxcommon.MediaStateEventArgs)

// driverBase holds the state shared by every driver implementation.
type driverBase struct {
	self      Driver
	target    *Target
	settings  Settings
	connected bool
	closed    bool

	traceLevel gxcommon.TraceLevel
	mu         sync.RWMutex
	onTrace    TraceEventHandler
	onState    MediaStateHandler

	bytesSent     uint64
	bytesReceived uint64

	// Printer for localized messages.
	p *message.Printer
}

// init resolves the settings of the driver. It does no I/O.
func (d *driverBase) init(self Driver, t *Target, defs []Setting) error {
	settings, err := ResolveSettings(t, defs)
	if err != nil {
		return err
	}
	d.self = self
	d.target = t
	d.settings = settings
	d.p = message.NewPrinter(language.AmericanEnglish)
	return nil
}

// Target implements Driver
func (d *driverBase) Target() *Target {
	return d.target
}

// Settings implements Driver
func (d *driverBase) Settings() Settings {
	return d.settings
}

// Connected implements Driver
func (d *driverBase) Connected() bool {
	return d.connected
}

// BytesSent implements Driver
func (d *driverBase) BytesSent() uint64 {
	return d.bytesSent
}

// BytesReceived implements Driver
func (d *driverBase) BytesReceived() uint64 {
	return d.bytesReceived
}

// SetTrace implements Driver
func (d *driverBase) SetTrace(traceLevel gxcommon.TraceLevel) error {
	d.traceLevel = traceLevel
	return nil
}

// SetOnTrace implements Driver
func (d *driverBase) SetOnTrace(value TraceEventHandler) {
	d.mu.Lock()
	d.onTrace = value
	d.mu.Unlock()
}

// SetOnMediaStateChange implements Driver
func (d *driverBase) SetOnMediaStateChange(value MediaStateHandler) {
	d.mu.Lock()
	d.onState = value
	d.mu.Unlock()
}

// Localize messages for the specified language.
// No errors is returned if language is not supported.
func (d *driverBase) Localize(language language.Tag) {
	d.p = message.NewPrinter(language)
}

// beginOpen fails when the driver was already used and closed.
func (d *driverBase) beginOpen() error {
	if d.closed {
		return ErrConnectionClosed
	}
	d.statef(gxcommon.MediaStateOpening)
	return nil
}

func (d *driverBase) opened() {
	d.connected = true
	d.trace(gxcommon.TraceTypesInfo, d.p.Sprintf("msg.connected_to", d.target.String()))
	d.statef(gxcommon.MediaStateOpen)
}

// beginClose reports whether a resource still has to be released.
func (d *driverBase) beginClose() bool {
	if d.closed {
		return false
	}
	d.trace(gxcommon.TraceTypesInfo, d.p.Sprintf("msg.closing_connection", d.target.String()))
	d.statef(gxcommon.MediaStateClosing)
	return true
}

func (d *driverBase) closedf() {
	d.closed = true
	d.connected = false
	d.trace(gxcommon.TraceTypesInfo, d.p.Sprintf("msg.connection_closed", d.target.String()))
	d.statef(gxcommon.MediaStateClosed)
}

// peerClosed records that the peer closed the stream.
func (d *driverBase) peerClosed() {
	if d.connected {
		d.connected = false
		d.trace(gxcommon.TraceTypesInfo, d.p.Sprintf("msg.peer_closed", d.target.String()))
	}
}

// checkOpen fails when the driver can not be used for I/O.
func (d *driverBase) checkOpen() error {
	if !d.connected {
		return ErrConnectionClosed
	}
	return nil
}

func (d *driverBase) sent(data []byte) {
	d.bytesSent += uint64(len(data))
	d.traceData(gxcommon.TraceTypesSent, "TX", data)
}

func (d *driverBase) received(r receiveResult) []byte {
	d.bytesReceived += uint64(len(r.data))
	if len(r.data) != 0 {
		d.traceData(gxcommon.TraceTypesReceived, "RX", r.data)
	}
	if r.closed {
		d.peerClosed()
	}
	return r.data
}

func (d *driverBase) traceData(traceType gxcommon.TraceTypes, direction string, data []byte) {
	if !d.tracing(traceType) {
		return
	}
	str, err := gxcommon.ToString(data)
	if err != nil {
		d.tracef(gxcommon.TraceTypesError, "%s failed: %v", direction, err)
		return
	}
	d.tracef(traceType, "%s: %s", direction, str)
}

func (d *driverBase) tracing(traceType gxcommon.TraceTypes) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.onTrace != nil && !(int(d.traceLevel) < int(traceType))
}

func (d *driverBase) tracef(traceType gxcommon.TraceTypes, fmtStr string, a ...any) {
	d.trace(traceType, fmt.Sprintf(fmtStr, a...))
}

func (d *driverBase) trace(traceType gxcommon.TraceTypes, message string) {
	d.mu.RLock()
	trace := !(int(d.traceLevel) < int(traceType))
	cb := d.onTrace
	d.mu.RUnlock()
	if cb != nil && trace {
		p := gxcommon.NewTraceEventArgs(traceType, message, "")
		cb(d.self, *p)
	}
}

func (d *driverBase) statef(state gxcommon.MediaState) {
	d.mu.RLock()
	cb := d.onState
	d.mu.RUnlock()
	if cb != nil {
		cb(d.self, *gxcommon.NewMediaStateEventArgs(state))
	}
}

// recv runs one receive request against the transport.
func (d *driverBase) recv(src chunkReader, r receiveRequest) ([]byte, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}
	if r.size < 0 && r.timeout < 0 && len(r.terminator) == 0 {
		return nil, errors.New("receive needs a size, a timeout or a terminator")
	}
	res, err := receive(src, r)
	return d.received(res), err
}

func sizeRequest(size int) receiveRequest {
	if size < 0 {
		size = 0
	}
	return receiveRequest{size: size, timeout: -1}
}

func timeoutRequest(timeout time.Duration) receiveRequest {
	if timeout < 0 {
		timeout = 0
	}
	return receiveRequest{size: -1, timeout: timeout}
}

func untilRequest(terminator []byte) receiveRequest {
	return receiveRequest{size: -1, timeout: -1, terminator: terminator}
}

// secondsValue converts a duration setting given in seconds.
func secondsValue(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
