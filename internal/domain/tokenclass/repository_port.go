// internal/domain/tokenclass/repository_port.go
package tokenclass

import (
	"context"

	"galamint/internal/domain/common"
)

// Repository is the output port for the token_classes table.
type Repository interface {
	// Create persists a new TokenClass and returns it with the
	// store-assigned ID and timestamps. A unique-constraint violation
	// on the composite natural key surfaces as ErrExists.
	Create(ctx context.Context, tc TokenClass) (TokenClass, error)

	// FindByKey returns ErrNotFound when no record matches the
	// composite natural key.
	FindByKey(ctx context.Context, key Key) (TokenClass, error)

	// ListByWallet returns the caller's token classes, newest first.
	ListByWallet(ctx context.Context, walletAddress string) ([]TokenClass, error)

	// ListByCollection returns a collection's token classes, newest first.
	ListByCollection(ctx context.Context, collection string) ([]TokenClass, error)

	// UpdateSupply overwrites current_supply (and image, when non-nil)
	// from chain data.
	UpdateSupply(ctx context.Context, id int, currentSupply string, image *string) error

	// UpdateStatus moves the class lifecycle forward and records the
	// transaction that completed it.
	UpdateStatus(ctx context.Context, id int, status common.Status, transactionID string) error
}
