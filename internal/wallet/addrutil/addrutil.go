// Package addrutil holds pure address helpers shared by the wallet services.
package addrutil

import "regexp"

var addressRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsValidAddress reports whether s is a well-formed EVM address: "0x"
// followed by exactly 40 hex characters. Format check only, no checksum.
func IsValidAddress(s string) bool {
	return addressRegexp.MatchString(s)
}
