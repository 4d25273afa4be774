package main

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

	"github.com/Gurux/protocon-go"
	"github.com/charmbracelet/lipgloss"
)

var (
	goodStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dumpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// stylePrinter is a protocon.Printer with colored prefixes.
type stylePrinter struct {
	mu sync.Mutex
	w  io.Writer
}

var _ protocon.Printer = (*stylePrinter)(nil)

func newStylePrinter(w io.Writer) *stylePrinter {
	return &stylePrinter{w: w}
}

func (p *stylePrinter) Good(msg string) {
	p.line(goodStyle.Render("[+]"), msg)
}

func (p *stylePrinter) Error(msg string) {
	p.line(errorStyle.Render("[-]"), msg)
}

func (p *stylePrinter) Status(msg string) {
	p.line(statusStyle.Render("[*]"), msg)
}

func (p *stylePrinter) Hexdump(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.w, dumpStyle.Render(protocon.Hexdump(data)))
}

func (p *stylePrinter) line(prefix, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, prefix, msg)
}
