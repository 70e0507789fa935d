// internal/domain/transaction/entity.go
package transaction

import (
	"errors"
	"strings"
	"time"

	"galamint/internal/domain/common"
)

// Transaction is one GALA burn submitted through the gem store.
// Failed submissions are recorded too, with a failed-<ts> placeholder
// transaction id, so the history stays complete.
type Transaction struct {
	ID                int           `json:"id"`
	UserWalletAddress string        `json:"userWalletAddress"`
	GalaAmount        float64       `json:"galaAmount"`
	TransactionID     string        `json:"transactionId"`
	Status            common.Status `json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
}

var (
	ErrInvalidWallet = errors.New("transaction: invalid walletAddress")
	ErrInvalidAmount = errors.New("transaction: amount must be positive")
)

// New builds a Transaction for persistence.
func New(walletAddress string, galaAmount float64, transactionID string, status common.Status) (Transaction, error) {
	addr := strings.TrimSpace(walletAddress)
	if addr == "" {
		return Transaction{}, ErrInvalidWallet
	}
	if galaAmount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	return Transaction{
		UserWalletAddress: addr,
		GalaAmount:        galaAmount,
		TransactionID:     strings.TrimSpace(transactionID),
		Status:            status,
	}, nil
}
