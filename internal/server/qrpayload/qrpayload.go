// Package qrpayload builds the WIFI configuration URI that phone cameras
// understand and wraps it into the payload stored alongside a credential.
package qrpayload

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// nopass networks carry no password in the URI.
const securityNone = "nopass"

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

// escape protects the characters that are special inside a WIFI URI.
func escape(s string) string {
	return escaper.Replace(s)
}

// BuildString renders the WIFI configuration URI for the given network.
// Open networks lose their password, hidden networks carry H:true.
func BuildString(ssid, password, securityType string, hidden bool) string {
	if securityType == securityNone {
		password = ""
	}

	h := ""
	if hidden {
		h = "true"
	}

	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:%s;;",
		escape(securityType), escape(ssid), escape(password), h)
}

// Encode returns the stored form of the QR payload for a credential.
func Encode(ssid, password, securityType string, hidden bool) string {
	return base64.StdEncoding.EncodeToString([]byte(BuildString(ssid, password, securityType, hidden)))
}
