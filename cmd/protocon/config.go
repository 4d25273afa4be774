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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// config holds the CLI defaults. Flags override file values.
type config struct {
	Encoding    string
	CRC         string
	PrintSend   bool
	PrintRecv   bool
	LogLevel    string
	Trace       string
	Language    string
	HistoryFile string
}

type fileConfig struct {
	Encoding    string `toml:"encoding"`
	CRC         string `toml:"crc"`
	PrintSend   bool   `toml:"print_send"`
	PrintRecv   bool   `toml:"print_recv"`
	LogLevel    string `toml:"log_level"`
	Trace       string `toml:"trace"`
	Language    string `toml:"language"`
	HistoryFile string `toml:"history_file"`
}

func defaultConfig() config {
	return config{
		Encoding:  "utf-8",
		CRC:       "CRC_CCITT",
		PrintSend: true,
		PrintRecv: true,
		LogLevel:  "warn",
	}
}

// defaultConfigPath returns $HOME/.config/protocon/config.toml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "protocon", "config.toml")
}

// loadConfig reads the config file at path. A missing file is only an
// error when the path was given explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return config{}, fmt.Errorf("load config: unknown key %s", undecoded[0].String())
	}
	if meta.IsDefined("encoding") {
		cfg.Encoding = strings.TrimSpace(raw.Encoding)
	}
	if meta.IsDefined("crc") {
		cfg.CRC = strings.TrimSpace(raw.CRC)
	}
	if meta.IsDefined("print_send") {
		cfg.PrintSend = raw.PrintSend
	}
	if meta.IsDefined("print_recv") {
		cfg.PrintRecv = raw.PrintRecv
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("trace") {
		cfg.Trace = strings.TrimSpace(raw.Trace)
	}
	if meta.IsDefined("language") {
		cfg.Language = strings.TrimSpace(raw.Language)
	}
	if meta.IsDefined("history_file") {
		cfg.HistoryFile = strings.TrimSpace(raw.HistoryFile)
	}
	return cfg, nil
}
