// internal/domain/transaction/repository_port.go
package transaction

import "context"

// Repository is the output port for the transactions table.
type Repository interface {
	// Create persists a new Transaction and returns it with the
	// store-assigned ID and CreatedAt.
	Create(ctx context.Context, t Transaction) (Transaction, error)

	// ListByWallet returns the wallet's burn history, newest first.
	ListByWallet(ctx context.Context, walletAddress string) ([]Transaction, error)
}
