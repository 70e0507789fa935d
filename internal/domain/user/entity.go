// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

// User is one connected wallet. wallet_address is unique; GemBalance
// tracks purchased gems for the gem store.
type User struct {
	ID            int       `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	GemBalance    int       `json:"gemBalance"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

var (
	ErrInvalidWalletAddress = errors.New("user: invalid walletAddress")
	ErrNotFound             = errors.New("user: not found")
)

// ValidAddress accepts GalaChain identities (eth|..., client|...) and
// plain Ethereum hex addresses (0x...).
func ValidAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	return strings.HasPrefix(addr, "eth|") ||
		strings.HasPrefix(addr, "client|") ||
		strings.HasPrefix(addr, "0x")
}

// New builds a User for persistence; ID and timestamps come from the store.
func New(walletAddress string) (User, error) {
	addr := strings.TrimSpace(walletAddress)
	if !ValidAddress(addr) {
		return User{}, ErrInvalidWalletAddress
	}
	return User{WalletAddress: addr}, nil
}
