// internal/domain/user/repository_port.go
package user

import "context"

// Repository is the output port for the users table.
type Repository interface {
	// FindByWallet returns ErrNotFound when no user exists for the address.
	FindByWallet(ctx context.Context, walletAddress string) (User, error)

	// Create persists a new User and returns it with the store-assigned
	// ID and timestamps.
	Create(ctx context.Context, u User) (User, error)
}
