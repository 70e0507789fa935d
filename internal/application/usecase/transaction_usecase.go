// internal/application/usecase/transaction_usecase.go
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"galamint/internal/adapters/out/gala"
	"galamint/internal/domain/common"
	txdom "galamint/internal/domain/transaction"
)

// BurnGateway is the slice of the GalaChain client this usecase needs.
type BurnGateway interface {
	Submit(ctx context.Context, method string, payload json.RawMessage) (gala.Response, error)
}

// TransactionUsecase submits GALA burns and keeps the burn history.
// Failed submissions are recorded too so the history stays complete.
type TransactionUsecase struct {
	Transactions txdom.Repository
	Gateway      BurnGateway
}

func NewTransactionUsecase(transactions txdom.Repository, gateway BurnGateway) *TransactionUsecase {
	return &TransactionUsecase{Transactions: transactions, Gateway: gateway}
}

// Burn forwards a signed BurnTokens payload and records the outcome.
// On gateway failure a failed row with a placeholder transaction id is
// written and the original error is returned.
func (uc *TransactionUsecase) Burn(ctx context.Context, walletAddress string, galaAmount float64, payload json.RawMessage) (txdom.Transaction, error) {
	wallet := strings.TrimSpace(walletAddress)
	if wallet == "" {
		return txdom.Transaction{}, txdom.ErrInvalidWallet
	}
	if galaAmount <= 0 {
		return txdom.Transaction{}, txdom.ErrInvalidAmount
	}

	res, err := uc.Gateway.Submit(ctx, gala.MethodBurnTokens, payload)
	if err != nil {
		failed, mkErr := txdom.New(wallet, galaAmount, fmt.Sprintf("failed-%d", time.Now().UnixMilli()), common.StatusFailed)
		if mkErr == nil {
			if _, createErr := uc.Transactions.Create(ctx, failed); createErr != nil {
				log.Printf("[burn] record failed burn: %v", createErr)
			}
		}
		return txdom.Transaction{}, fmt.Errorf("submit burn: %w", err)
	}

	txID := res.TransactionID()
	if txID == "" {
		txID = fmt.Sprintf("tx-%d", time.Now().UnixMilli())
	}
	t, err := txdom.New(wallet, galaAmount, txID, common.StatusCompleted)
	if err != nil {
		return txdom.Transaction{}, err
	}
	return uc.Transactions.Create(ctx, t)
}

// History returns the wallet's burn transactions, newest first.
func (uc *TransactionUsecase) History(ctx context.Context, walletAddress string) ([]txdom.Transaction, error) {
	wallet := strings.TrimSpace(walletAddress)
	if wallet == "" {
		return nil, txdom.ErrInvalidWallet
	}
	return uc.Transactions.ListByWallet(ctx, wallet)
}
