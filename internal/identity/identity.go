// Package identity derives the viewer profile from a connected wallet address.
package identity

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/pelusa-v/hushr/internal/avatar"
)

// FallbackAddress stands in for the viewer when no wallet is connected.
const FallbackAddress = "0x5B...42A8"

type Profile struct {
	ID            string `json:"id"`
	WalletAddress string `json:"wallet_address"`
	DisplayName   string `json:"display_name"`
	Handle        string `json:"handle"`
	Avatar        int    `json:"avatar"`
	Bio           string `json:"bio"`
}

// Normalize trims the address and, when it is a well-formed hex address,
// returns its EIP-55 checksummed form. Anything else is returned trimmed.
func Normalize(address string) string {
	a := strings.TrimSpace(address)
	if common.IsHexAddress(a) {
		return common.HexToAddress(a).Hex()
	}
	return a
}

// Short renders 0x1234...abcd. Inputs that are already short are returned unchanged.
func Short(address string) string {
	if len(address) <= 10 || strings.Contains(address, "...") {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// Handle renders @ plus the first eight characters of the address.
func Handle(address string) string {
	if len(address) > 8 {
		address = address[:8]
	}
	return "@" + address
}

func FromAddress(address string) Profile {
	a := Normalize(address)
	if a == "" {
		a = FallbackAddress
	}
	return Profile{
		ID:            "user-" + a,
		WalletAddress: a,
		DisplayName:   Short(a),
		Handle:        Handle(a),
		Avatar:        avatar.For(a),
		Bio:           "Hushr user",
	}
}
