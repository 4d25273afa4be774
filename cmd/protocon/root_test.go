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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// executeCommand runs the root command with fresh flag values.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := RootCmd()
	root.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--lang", "en-US"}, args...))
	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s failed: %v", name, err)
	}
	return path
}

func TestRunScriptAgainstNullDriver(t *testing.T) {
	cfg := writeFile(t, "config.toml", "encoding = \"utf-8\"\ncrc = \"CRC32\"\n")
	script := writeFile(t, "script.txt", "send: hello\nrecv-size: 2\nprint-status: done\n")
	history := filepath.Join(t.TempDir(), "history.yaml")
	out, err := executeCommand(t, "", "--config", cfg, "--history-file", history, "null:", script)
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	for _, it := range []string{"connected to: null:", "TX:      5 bytes (CRC: 0x3610a686)", "RX:      2 bytes", "done"} {
		if !strings.Contains(out, it) {
			t.Errorf("output does not contain %q:\n%s", it, out)
		}
	}

	data, err := os.ReadFile(history)
	if err != nil {
		t.Fatalf("history not written: %v", err)
	}
	var record historyRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		t.Fatalf("history is not yaml: %v", err)
	}
	if record.URL != "null:" || len(record.Commands) != 3 {
		t.Errorf("unexpected history %+v", record)
	}
	if len(record.TX) != 1 || record.TX[0] != "68656c6c6f" {
		t.Errorf("tx %v", record.TX)
	}
	if len(record.RX) != 1 || record.RX[0] != "0000" {
		t.Errorf("rx %v", record.RX)
	}
}

func TestRunFromStdin(t *testing.T) {
	cfg := writeFile(t, "config.toml", "")
	out, err := executeCommand(t, "set: encoding=hex\nsend: 01:02\nclose\nsend: 03\n", "--config", cfg, "-q", "null:")
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "TX:      2 bytes") {
		t.Errorf("missing TX line:\n%s", out)
	}
	if strings.Contains(out, "0000  01 02") {
		t.Errorf("quiet mode must not print hex dumps:\n%s", out)
	}
	if strings.Count(out, "TX:") != 1 {
		t.Errorf("commands after close must not run:\n%s", out)
	}
}

func TestDriverErrors(t *testing.T) {
	cfg := writeFile(t, "config.toml", "")
	for _, url := range []string{"bogus://host", "tcp://127.0.0.1", "null:?x=1"} {
		_, err := executeCommand(t, "", "--config", cfg, url)
		if err == nil || !strings.HasPrefix(err.Error(), "Driver error: ") {
			t.Errorf("%s: expected driver error, got %v", url, err)
		}
	}
}

func TestConfigErrors(t *testing.T) {
	tests := map[string]string{
		"bad encoding": "encoding = \"latin-1\"\n",
		"bad crc":      "crc = \"MD5\"\n",
		"unknown key":  "volume = 11\n",
		"bad toml":     "encoding = \n",
	}
	for name, content := range tests {
		cfg := writeFile(t, "config.toml", content)
		if _, err := executeCommand(t, "", "--config", cfg, "null:"); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := executeCommand(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "null:"); err == nil {
		t.Error("an explicit missing config file must fail")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.toml", "print_send = false\nlog_level = \"debug\"\nlanguage = \"fi\"\n")
	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.PrintSend || !cfg.PrintRecv || cfg.LogLevel != "debug" || cfg.Language != "fi" || cfg.Encoding != "utf-8" {
		t.Errorf("unexpected config %+v", cfg)
	}
	cfg, err = loadConfig(filepath.Join(t.TempDir(), "none.toml"), false)
	if err != nil || cfg != defaultConfig() {
		t.Errorf("missing default file: %+v, %v", cfg, err)
	}
}
