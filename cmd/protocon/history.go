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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/Gurux/protocon-go"
	"gopkg.in/yaml.v3"
)

// historyRecord is the YAML document written by --history-file.
type historyRecord struct {
	URL      string   `yaml:"url"`
	Commands []string `yaml:"commands"`
	TX       []string `yaml:"tx"`
	RX       []string `yaml:"rx"`
}

func newHistoryRecord(url string, h *protocon.History) historyRecord {
	return historyRecord{
		URL:      url,
		Commands: h.Commands(),
		TX:       hexAll(h.TX()),
		RX:       hexAll(h.RX()),
	}
}

func hexAll(data [][]byte) []string {
	ret := make([]string, len(data))
	for i, it := range data {
		ret[i] = hex.EncodeToString(it)
	}
	return ret
}

func writeHistory(path string, record historyRecord) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
