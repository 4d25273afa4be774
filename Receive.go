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
	"io"
	"time"
)

// errTimeout is returned by a chunkReader when the deadline passed
// before any data was available.
var errTimeout = errors.New("receive timeout")

// chunkReader is the readiness-wait plus read primitive of one transport.
//
// readChunk waits until data is available or the deadline passes and then
// reads at most len(buf) bytes. A zero deadline waits forever. It returns
// errTimeout when the deadline passes and io.EOF when the peer closed.
type chunkReader interface {
	readChunk(buf []byte, deadline time.Time) (int, error)
}

// receiveRequest describes one logical receive.
type receiveRequest struct {
	// size is the number of bytes wanted, -1 for no limit.
	size int
	// timeout bounds the whole receive, -1 for no limit.
	timeout time.Duration
	// terminator ends the receive at its first occurrence.
	terminator []byte
	// framed readers return one datagram or frame per read.
	framed bool
	// frameSize is the read buffer size of a framed reader.
	frameSize int
	// accept filters and strips framed reads. Nil accepts everything.
	accept func(frame []byte) ([]byte, bool)
	// perFrame looks for the terminator in each frame on its own and
	// drops frames that do not contain it.
	perFrame bool
}

// receiveResult is the data read and whether the peer closed the stream.
type receiveResult struct {
	data   []byte
	closed bool
}

// pendingTerminator returns how many more bytes must be read before the
// terminator can possibly be found at the end of data.
func pendingTerminator(data, terminator []byte) int {
	k := len(terminator) - 1
	if k > len(data) {
		k = len(data)
	}
	for ; k > 0; k-- {
		if bytes.HasSuffix(data, terminator[:k]) {
			break
		}
	}
	return len(terminator) - k
}

// nextReadSize returns the number of bytes a byte oriented reader asks for.
func (r *receiveRequest) nextReadSize(data []byte) int {
	switch {
	case len(r.terminator) != 0:
		n := pendingTerminator(data, r.terminator)
		if r.size >= 0 && r.size-len(data) < n {
			n = r.size - len(data)
		}
		return n
	case r.size >= 0:
		return r.size - len(data)
	default:
		return 1
	}
}

// receive runs the receive loop of one request over a reader.
//
// The deadline is fixed when the receive starts and every wait uses what
// is left of it. A timeout returns the bytes read so far.
func receive(src chunkReader, r receiveRequest) (receiveResult, error) {
	var ret receiveResult
	if r.size == 0 {
		return ret, nil
	}
	var deadline time.Time
	if r.timeout >= 0 {
		deadline = time.Now().Add(r.timeout)
	}
	var buf []byte
	if r.framed {
		size := r.frameSize
		if size <= 0 {
			size = 0xffff
		}
		buf = make([]byte, size)
	}
	data := []byte{}
	for r.size < 0 || len(data) < r.size {
		// A frame is always read whole; the size limit cuts it afterwards.
		chunk := buf
		if !r.framed {
			chunk = make([]byte, r.nextReadSize(data))
		}
		n, err := src.readChunk(chunk, deadline)
		if errors.Is(err, errTimeout) {
			break
		}
		if errors.Is(err, io.EOF) {
			ret.closed = true
			break
		}
		if err != nil {
			ret.data = data
			return ret, err
		}
		if r.framed && n == 0 && r.accept == nil {
			continue
		}
		chunk = chunk[:n]
		if r.accept != nil {
			var ok bool
			if chunk, ok = r.accept(chunk); !ok {
				continue
			}
		}
		if r.perFrame && len(r.terminator) != 0 {
			if i := bytes.Index(chunk, r.terminator); i != -1 {
				data = append(data, chunk[:i+len(r.terminator)]...)
				break
			}
			continue
		}
		data = append(data, chunk...)
		if len(r.terminator) != 0 {
			if i := bytes.Index(data, r.terminator); i != -1 {
				data = data[:i+len(r.terminator)]
				break
			}
		}
	}
	if r.size >= 0 && len(data) > r.size {
		data = data[:r.size]
	}
	ret.data = data
	return ret, nil
}
