// internal/domain/mint/repository_port.go
package mint

import "context"

// Repository is the output port for the mint_transactions table.
// The table is an append-only log: no update or delete operations.
type Repository interface {
	// Create persists a new MintTransaction and returns it with the
	// store-assigned ID and CreatedAt.
	Create(ctx context.Context, m MintTransaction) (MintTransaction, error)

	// ListByWallet returns the caller's mint transactions, newest first.
	ListByWallet(ctx context.Context, walletAddress string) ([]MintTransaction, error)
}
