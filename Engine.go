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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// commandHandler runs one command with its argument text.
type commandHandler func(e *Engine, arg string) error

var commands = map[string]commandHandler{
	"close":        (*Engine).cmdClose,
	"send":         (*Engine).cmdSend,
	"recv-size":    (*Engine).cmdRecvSize,
	"recv-time":    (*Engine).cmdRecvTime,
	"recv-until":   (*Engine).cmdRecvUntil,
	"set":          (*Engine).cmdSet,
	"sleep":        (*Engine).cmdSleep,
	"print-error":  (*Engine).cmdPrintError,
	"print-good":   (*Engine).cmdPrintGood,
	"print-status": (*Engine).cmdPrintStatus,
}

// Commands returns the names of every engine command, sorted.
func Commands() []string {
	ret := make([]string, 0, len(commands))
	for name := range commands {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Engine runs line oriented commands against one open driver.
type Engine struct {
	driver   Driver
	out      Printer
	vars     Variables
	history  History
	checksum Checksummer
	log      zerolog.Logger
	sleep    func(time.Duration)
	// Closed by a close command.
	closedLocally bool

	// Printer for localized messages.
	p *message.Printer
}

// NewEngine returns an engine for an open driver.
func NewEngine(driver Driver, out Printer) *Engine {
	return &Engine{
		driver:   driver,
		out:      out,
		vars:     DefaultVariables(),
		checksum: CRC{},
		log:      zerolog.Nop(),
		sleep:    time.Sleep,
		p:        message.NewPrinter(language.AmericanEnglish),
	}
}

// SetLogger sets the diagnostic logger.
func (e *Engine) SetLogger(log zerolog.Logger) {
	e.log = log
}

// SetChecksummer replaces the checksum service.
func (e *Engine) SetChecksummer(value Checksummer) {
	e.checksum = value
}

// Localize messages for the specified language.
func (e *Engine) Localize(language language.Tag) {
	e.p = message.NewPrinter(language)
}

// Driver returns the driver of the engine.
func (e *Engine) Driver() Driver {
	return e.driver
}

// Variables returns the current runtime variables.
func (e *Engine) Variables() Variables {
	return e.vars
}

// History returns the session history.
func (e *Engine) History() *History {
	return &e.history
}

// Set assigns a runtime variable. The value is type checked and the
// variable is left unchanged when the check fails.
func (e *Engine) Set(name string, value any) error {
	setter, ok := variableSetters[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: unknown variable: %s (expected one of %s)", ErrCommand, name, strings.Join(VariableNames(), ", "))
	}
	if err := setter(e, value); err != nil {
		return fmt.Errorf("%w: %v", ErrCommand, err)
	}
	return nil
}

// Banner prints the start time and the connection URL.
func (e *Engine) Banner() {
	e.out.Status(e.p.Sprintf("msg.engine_started", time.Now().Format(time.DateTime)))
	e.out.Good(e.p.Sprintf("msg.engine_connected", e.driver.Target().String()))
}

// Done reports whether the session is over.
func (e *Engine) Done() bool {
	return !e.driver.Connected()
}

// RunCommand runs one command line. Blank lines and lines starting with
// '#' are ignored. The command name ends at the first ':'.
func (e *Engine) RunCommand(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	name, arg, _ := strings.Cut(line, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	arg = strings.TrimSpace(arg)
	handler, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCommand, e.p.Sprintf("msg.unknown_command", name))
	}
	e.log.Debug().Str("command", name).Str("argument", arg).Msg("run command")
	if err := handler(e, arg); err != nil {
		ev := e.log.Error()
		if IsCommandError(err) {
			ev = e.log.Warn()
		}
		ev.Err(err).Str("command", name).Msg("command failed")
		return err
	}
	e.history.addCommand(line)
	return nil
}

// RunScript runs every line of r. Failing commands are reported and the
// script goes on until the connection is closed.
func (e *Engine) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for !e.Done() && scanner.Scan() {
		if err := e.RunCommand(scanner.Text()); err != nil {
			e.out.Error(err.Error())
		}
		if e.Done() {
			e.reportClosed()
		}
	}
	return scanner.Err()
}

// RunScriptFile runs the script stored at path.
func (e *Engine) RunScriptFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return e.RunScript(f)
}

func (e *Engine) reportClosed() {
	if e.closedLocally {
		e.out.Status(e.p.Sprintf("msg.engine_closed"))
	} else {
		e.out.Error(e.p.Sprintf("msg.engine_peer_closed"))
	}
}

// expansionVariables are the names ${...} may refer to.
func (e *Engine) expansionVariables() map[string]string {
	vars := e.driver.Target().Variables()
	vars["encoding"] = e.vars.Encoding
	vars["crc"] = e.vars.CRC
	return vars
}

// decode expands and decodes a data argument with the current encoding.
func (e *Engine) decode(arg string) ([]byte, error) {
	return ExpandAndDecode(unquote(arg), e.expansionVariables(), e.vars.Encoding)
}

func (e *Engine) processSend(data []byte) {
	e.history.addTX(data)
	e.out.Status(fmt.Sprintf("TX: %6d bytes (CRC: %s)", len(data), e.crc(data)))
	if e.vars.PrintSend {
		e.out.Hexdump(data)
	}
}

func (e *Engine) processRecv(data []byte) {
	e.history.addRX(data)
	e.out.Status(fmt.Sprintf("RX: %6d bytes (CRC: %s)", len(data), e.crc(data)))
	if e.vars.PrintRecv {
		e.out.Hexdump(data)
	}
}

func (e *Engine) crc(data []byte) string {
	value, err := e.checksum.Checksum(e.vars.CRC, data)
	if err != nil {
		return "n/a"
	}
	return value
}

// seconds reads a non negative number of seconds.
func seconds(command, arg string) (time.Duration, error) {
	switch v := EvalToken(arg).(type) {
	case int:
		if v >= 0 {
			return time.Duration(v) * time.Second, nil
		}
	case float64:
		if v >= 0 {
			return secondsValue(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %s must specify a valid timeout in seconds", ErrCommand, command)
}

func (e *Engine) cmdClose(string) error {
	e.closedLocally = true
	return e.driver.Close()
}

func (e *Engine) cmdSend(arg string) error {
	data, err := e.decode(arg)
	if err != nil {
		return err
	}
	if err := e.driver.Send(data); err != nil {
		return err
	}
	e.processSend(data)
	return nil
}

func (e *Engine) cmdRecvSize(arg string) error {
	size, ok := EvalToken(arg).(int)
	if !ok || size < 0 {
		return fmt.Errorf("%w: recv-size must specify a valid size", ErrCommand)
	}
	data, err := e.driver.RecvSize(size)
	return e.afterRecv(data, err)
}

func (e *Engine) cmdRecvTime(arg string) error {
	timeout, err := seconds("recv-time", arg)
	if err != nil {
		return err
	}
	data, err := e.driver.RecvTimeout(timeout)
	return e.afterRecv(data, err)
}

func (e *Engine) cmdRecvUntil(arg string) error {
	terminator, err := e.decode(arg)
	if err != nil {
		return err
	}
	if len(terminator) == 0 {
		return fmt.Errorf("%w: recv-until must specify a valid terminator", ErrCommand)
	}
	data, err := e.driver.RecvUntil(terminator)
	return e.afterRecv(data, err)
}

// afterRecv records whatever arrived before a receive failed.
func (e *Engine) afterRecv(data []byte, err error) error {
	if err == nil || len(data) != 0 {
		e.processRecv(data)
	}
	return err
}

func (e *Engine) cmdSet(arg string) error {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("%w: set must be in the form name=value", ErrCommand)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	v := EvalToken(strings.TrimSpace(value))
	if err := e.Set(name, v); err != nil {
		return err
	}
	current, _ := e.vars.Get(name)
	e.out.Status(e.p.Sprintf("msg.variable_set", name, current))
	return nil
}

func (e *Engine) cmdSleep(arg string) error {
	d, err := seconds("sleep", arg)
	if err != nil {
		return err
	}
	e.sleep(d)
	return nil
}

func (e *Engine) cmdPrintError(arg string) error {
	e.out.Error(unquote(arg))
	return nil
}

func (e *Engine) cmdPrintGood(arg string) error {
	e.out.Good(unquote(arg))
	return nil
}

func (e *Engine) cmdPrintStatus(arg string) error {
	e.out.Status(unquote(arg))
	return nil
}

// IsCommandError reports whether err came from a bad command line rather
// than from the transport.
func IsCommandError(err error) bool {
	return errors.Is(err, ErrCommand) || errors.Is(err, ErrDataDecode) || errors.Is(err, ErrDataExpansion)
}
