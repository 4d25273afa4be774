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
	"context"
	"encoding/hex"
	"net"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/pion/dtls/v2"
)

var dtlsSettings = []Setting{
	{Name: "size", Default: 0xffff, Coerce: IntValue},
	{Name: "verify", Default: false, Coerce: BoolValue},
	{Name: "server-name", Default: ""},
	{Name: "psk", Default: ""},
	{Name: "psk-identity", Default: ""},
}

const dtlsHandshakeTimeout = 10 * time.Second

var dtlsNetworks = map[string]string{
	"dtls":  "udp",
	"dtls4": "udp4",
	"dtls6": "udp6",
}

// DTLSDriver is a datagram driver secured with DTLS. The handshake is done
// by pion/dtls; framing and receives are those of the udp driver.
type DTLSDriver struct {
	datagramDriver
	psk []byte
}

// NewDTLSDriver validates the target and settings of a DTLS driver.
func NewDTLSDriver(t *Target) (*DTLSDriver, error) {
	d := &DTLSDriver{}
	if err := d.init(d, t, dtlsSettings); err != nil {
		return nil, err
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	if raw := d.settings.String("psk"); raw != "" {
		psk, err := hex.DecodeString(raw)
		if err != nil || len(psk) == 0 {
			return nil, configErrorf("unsupported value for psk: %q", raw)
		}
		d.psk = psk
	}
	return d, nil
}

func (d *DTLSDriver) config() *dtls.Config {
	cfg := &dtls.Config{
		InsecureSkipVerify: !d.settings.Bool("verify"),
		ServerName:         d.settings.String("server-name"),
	}
	if cfg.ServerName == "" {
		cfg.ServerName = d.target.Host
	}
	if d.psk != nil {
		psk := d.psk
		cfg.PSK = func([]byte) ([]byte, error) {
			return psk, nil
		}
		cfg.PSKIdentityHint = []byte(d.settings.String("psk-identity"))
		cfg.CipherSuites = []dtls.CipherSuiteID{dtls.TLS_PSK_WITH_AES_128_CCM_8, dtls.TLS_PSK_WITH_AES_128_GCM_SHA256}
	}
	return cfg
}

// Open implements Driver
func (d *DTLSDriver) Open() error {
	if d.conn != nil {
		return nil
	}
	if err := d.beginOpen(); err != nil {
		return err
	}
	network := dtlsNetworks[d.target.Scheme]
	raddr, err := net.ResolveUDPAddr(network, d.address())
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), dtlsHandshakeTimeout)
	defer cancel()
	c, err := dtls.DialWithContext(ctx, network, raddr, d.config())
	if err != nil {
		d.trace(gxcommon.TraceTypesError, d.p.Sprintf("msg.connect_failed", d.address(), err))
		return err
	}
	d.conn = c
	d.opened()
	return nil
}
