// Package avatar maps identity strings (wallet addresses, user ids) onto the
// fixed set of sixteen avatar images.
package avatar

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Count is the number of avatar images shipped with the client.
const Count = 16

// Hash is the 32-bit rolling hash h = h*31 + c over the UTF-16 code units of
// s, wrapping like two's-complement int32 arithmetic.
func Hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	return h
}

// For returns the avatar index in [1, Count] for identity. The empty string maps to 1.
func For(identity string) int {
	return bucket(Hash(identity), Count) + 1
}

// ForWallet only looks at the last eight characters of the address so that
// shortened and full forms of the same wallet render the same avatar.
func ForWallet(address string) int {
	if len(address) > 8 {
		address = address[len(address)-8:]
	}
	return For(address)
}

// ColorIndex picks one of n sender colours for identity.
func ColorIndex(identity string, n int) int {
	if n <= 0 {
		return 0
	}
	return bucket(Hash(identity), n)
}

func bucket(h int32, n int) int {
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % int64(n))
}

// Path renders the asset path of an avatar index under prefix ("" or "/hushr").
func Path(prefix string, index int) string {
	return fmt.Sprintf("%s/avatars/%d.webp", strings.TrimSuffix(prefix, "/"), index)
}
