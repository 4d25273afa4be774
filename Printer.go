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
	"io"
	"sync"
)

// Printer renders the user facing output of an engine.
type Printer interface {
	// Good prints a success message.
	Good(msg string)
	// Error prints a failure message.
	Error(msg string)
	// Status prints an informational message.
	Status(msg string)
	// Hexdump prints data as a hex dump.
	Hexdump(data []byte)
}

// TextPrinter writes plain text lines prefixed with [+], [-] and [*].
type TextPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTextPrinter returns a printer writing to w.
func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{w: w}
}

// Good implements Printer
func (p *TextPrinter) Good(msg string) {
	p.line("[+] ", msg)
}

// Error implements Printer
func (p *TextPrinter) Error(msg string) {
	p.line("[-] ", msg)
}

// Status implements Printer
func (p *TextPrinter) Status(msg string) {
	p.line("[*] ", msg)
}

// Hexdump implements Printer
func (p *TextPrinter) Hexdump(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = WriteHexdump(p.w, data)
}

func (p *TextPrinter) line(prefix, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, prefix+msg)
}
