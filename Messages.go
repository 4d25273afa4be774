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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:errcheck
func init() {
	// --- English (default) ---
	message.SetString(language.AmericanEnglish, "msg.closing_connection", "Closing connection to %s")
	message.SetString(language.AmericanEnglish, "msg.connection_closed", "Connection closed to %s")
	message.SetString(language.AmericanEnglish, "msg.peer_closed", "Peer closed the connection to %s")
	message.SetString(language.AmericanEnglish, "msg.connected_to", "Connected to %s")
	message.SetString(language.AmericanEnglish, "msg.connecting_to", "%s connecting to %s timeout %d ms")
	message.SetString(language.AmericanEnglish, "msg.connect_failed", "connect to %s failed: %v")
	message.SetString(language.AmericanEnglish, "msg.listening_on", "Listening on %s")
	message.SetString(language.AmericanEnglish, "msg.accepted_from", "Accepted connection from %s")
	message.SetString(language.AmericanEnglish, "msg.engine_started", "initialized protocon engine at %s")
	message.SetString(language.AmericanEnglish, "msg.engine_connected", "connected to: %s")
	message.SetString(language.AmericanEnglish, "msg.engine_closed", "the connection has been closed")
	message.SetString(language.AmericanEnglish, "msg.engine_peer_closed", "the connection was closed by the peer")
	message.SetString(language.AmericanEnglish, "msg.unknown_command", "unknown command: %s")
	message.SetString(language.AmericanEnglish, "msg.variable_set", "set %s = %v")

	// --- German (de) ---
	message.SetString(language.German, "msg.closing_connection", "Verbindung zu %s wird geschlossen")
	message.SetString(language.German, "msg.connection_closed", "Verbindung zu %s wurde geschlossen")
	message.SetString(language.German, "msg.peer_closed", "Gegenstelle hat die Verbindung zu %s geschlossen")
	message.SetString(language.German, "msg.connected_to", "Verbunden mit %s")
	message.SetString(language.German, "msg.connecting_to", "%s verbindet sich mit %s timeout %d ms")
	message.SetString(language.German, "msg.connect_failed", "Verbindung zu %s fehlgeschlagen: %v")
	message.SetString(language.German, "msg.listening_on", "Warte auf Verbindungen an %s")
	message.SetString(language.German, "msg.accepted_from", "Verbindung von %s angenommen")
	message.SetString(language.German, "msg.engine_started", "protocon engine initialisiert um %s")
	message.SetString(language.German, "msg.engine_connected", "verbunden mit: %s")
	message.SetString(language.German, "msg.engine_closed", "die Verbindung wurde geschlossen")
	message.SetString(language.German, "msg.engine_peer_closed", "die Verbindung wurde von der Gegenstelle geschlossen")
	message.SetString(language.German, "msg.unknown_command", "unbekannter Befehl: %s")
	message.SetString(language.German, "msg.variable_set", "%s = %v gesetzt")

	// --- Finnish (fi) ---
	message.SetString(language.Finnish, "msg.closing_connection", "Suljetaan yhteys kohteeseen %s")
	message.SetString(language.Finnish, "msg.connection_closed", "Yhteys suljettu kohteeseen %s")
	message.SetString(language.Finnish, "msg.peer_closed", "Vastapää sulki yhteyden kohteeseen %s")
	message.SetString(language.Finnish, "msg.connected_to", "Yhdistetty kohteeseen %s")
	message.SetString(language.Finnish, "msg.connecting_to", "%s yhdistetään kohteeseen %s timeout %d ms")
	message.SetString(language.Finnish, "msg.connect_failed", "Yhteyden muodostus kohteeseen %s epäonnistui: %v")
	message.SetString(language.Finnish, "msg.listening_on", "Odotetaan yhteyttä osoitteessa %s")
	message.SetString(language.Finnish, "msg.accepted_from", "Hyväksytty yhteys osoitteesta %s")
	message.SetString(language.Finnish, "msg.engine_started", "protocon moottori alustettu %s")
	message.SetString(language.Finnish, "msg.engine_connected", "yhdistetty: %s")
	message.SetString(language.Finnish, "msg.engine_closed", "yhteys on suljettu")
	message.SetString(language.Finnish, "msg.engine_peer_closed", "vastapää sulki yhteyden")
	message.SetString(language.Finnish, "msg.unknown_command", "tuntematon komento: %s")
	message.SetString(language.Finnish, "msg.variable_set", "%s = %v asetettu")

	// --- Swedish (sv) ---
	message.SetString(language.Swedish, "msg.closing_connection", "Stänger anslutning till %s")
	message.SetString(language.Swedish, "msg.connection_closed", "Anslutning stängd till %s")
	message.SetString(language.Swedish, "msg.peer_closed", "Motparten stängde anslutningen till %s")
	message.SetString(language.Swedish, "msg.connected_to", "Ansluten till %s")
	message.SetString(language.Swedish, "msg.connecting_to", "%s ansluter till %s timeout %d ms")
	message.SetString(language.Swedish, "msg.connect_failed", "Anslutning till %s misslyckades: %v")
	message.SetString(language.Swedish, "msg.listening_on", "Väntar på anslutning på %s")
	message.SetString(language.Swedish, "msg.accepted_from", "Accepterade anslutning från %s")
	message.SetString(language.Swedish, "msg.engine_started", "protocon motor initierad %s")
	message.SetString(language.Swedish, "msg.engine_connected", "ansluten till: %s")
	message.SetString(language.Swedish, "msg.engine_closed", "anslutningen har stängts")
	message.SetString(language.Swedish, "msg.engine_peer_closed", "anslutningen stängdes av motparten")
	message.SetString(language.Swedish, "msg.unknown_command", "okänt kommando: %s")
	message.SetString(language.Swedish, "msg.variable_set", "%s = %v satt")
}
