package db

import (
	"context"
	"database/sql"
	"strings"

	dbcommon "galamint/internal/adapters/out/db/common"
	domcommon "galamint/internal/domain/common"
	txdom "galamint/internal/domain/transaction"
)

type TransactionRepositoryPG struct {
	DB *sql.DB
}

func NewTransactionRepositoryPG(db *sql.DB) *TransactionRepositoryPG {
	return &TransactionRepositoryPG{DB: db}
}

var _ txdom.Repository = (*TransactionRepositoryPG)(nil)

func (r *TransactionRepositoryPG) Create(ctx context.Context, t txdom.Transaction) (txdom.Transaction, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO transactions (user_wallet_address, gala_amount, transaction_id, status)
VALUES ($1, $2, $3, $4)
RETURNING id, user_wallet_address, gala_amount, transaction_id, status, created_at`
	var (
		out    txdom.Transaction
		status string
	)
	err := run.QueryRowContext(ctx, q,
		t.UserWalletAddress, t.GalaAmount, t.TransactionID, string(t.Status),
	).Scan(&out.ID, &out.UserWalletAddress, &out.GalaAmount, &out.TransactionID, &status, &out.CreatedAt)
	if err != nil {
		return txdom.Transaction{}, err
	}
	out.Status = domcommon.Status(status)
	return out, nil
}

func (r *TransactionRepositoryPG) ListByWallet(ctx context.Context, walletAddress string) ([]txdom.Transaction, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT id, user_wallet_address, gala_amount, transaction_id, status, created_at
FROM transactions
WHERE user_wallet_address = $1
ORDER BY created_at DESC`
	rows, err := run.QueryContext(ctx, q, strings.TrimSpace(walletAddress))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []txdom.Transaction
	for rows.Next() {
		var (
			t      txdom.Transaction
			status string
		)
		if err := rows.Scan(&t.ID, &t.UserWalletAddress, &t.GalaAmount, &t.TransactionID, &status, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Status = domcommon.Status(status)
		out = append(out, t)
	}
	return out, rows.Err()
}
