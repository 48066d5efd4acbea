package credentials

import (
	"crypto/subtle"

	"wordadventure/internal/security"
)

// DemoUsername opens the offline demo account
const DemoUsername = "demo"

// demoPasswordHash is the bcrypt hash of the demo account password
const demoPasswordHash = "$2a$10$toIOT3Jh5n/gGzqoVt8WKOq6D0enPajelMRcQFdFAresCq3d0pVyK"

// IsDemo reports whether username and password are the demo pair.
// The password is only checked once the username matches.
func IsDemo(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(DemoUsername)) != 1 {
		return false
	}
	return security.CheckPassword(password, demoPasswordHash)
}
