// internal/domain/collection/repository_port.go
package collection

import "context"

// ------------------------------------------------------
// Repository Port for Collection (collections テーブル)
// ------------------------------------------------------
//
// Hexagonal output port: the Postgres implementation lives under
// adapters/out/db, the usecase layer only sees this interface.

type Repository interface {
	// Create persists a new Collection and returns it with the
	// store-assigned ID and timestamps filled in.
	// A unique-constraint violation on collection_name surfaces as
	// ErrAlreadyClaimed.
	Create(ctx context.Context, c Collection) (Collection, error)

	// FindByNameAndWallet returns ErrNotFound when no record matches.
	FindByNameAndWallet(ctx context.Context, collectionName, walletAddress string) (Collection, error)

	// FindByName returns ErrNotFound when no record matches.
	FindByName(ctx context.Context, collectionName string) (Collection, error)

	// ListByWallet returns the caller's collections, newest first.
	ListByWallet(ctx context.Context, walletAddress string) ([]Collection, error)
}
