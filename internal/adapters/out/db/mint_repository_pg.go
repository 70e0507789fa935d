package db

import (
	"context"
	"database/sql"
	"strings"

	dbcommon "galamint/internal/adapters/out/db/common"
	domcommon "galamint/internal/domain/common"
	mdom "galamint/internal/domain/mint"
)

type MintRepositoryPG struct {
	DB *sql.DB
}

func NewMintRepositoryPG(db *sql.DB) *MintRepositoryPG {
	return &MintRepositoryPG{DB: db}
}

var _ mdom.Repository = (*MintRepositoryPG)(nil)

const mintColumns = `
  id, wallet_address, collection, type, category, additional_key,
  owner, quantity, token_instance, transaction_id, status, created_at`

func (r *MintRepositoryPG) Create(ctx context.Context, m mdom.MintTransaction) (mdom.MintTransaction, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO mint_transactions (
  wallet_address, collection, type, category, additional_key,
  owner, quantity, token_instance, transaction_id, status
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING` + mintColumns

	row := run.QueryRowContext(ctx, q,
		m.WalletAddress, m.Collection, m.Type, m.Category, m.AdditionalKey,
		m.Owner, m.Quantity, m.TokenInstance, m.TransactionID, string(m.Status),
	)
	return scanMint(row)
}

func (r *MintRepositoryPG) ListByWallet(ctx context.Context, walletAddress string) ([]mdom.MintTransaction, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT` + mintColumns + `
FROM mint_transactions
WHERE wallet_address = $1
ORDER BY created_at DESC`
	rows, err := run.QueryContext(ctx, q, strings.TrimSpace(walletAddress))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []mdom.MintTransaction
	for rows.Next() {
		m, err := scanMint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMint(s scanner) (mdom.MintTransaction, error) {
	var (
		m        mdom.MintTransaction
		status   string
		instance sql.NullString
	)
	err := s.Scan(
		&m.ID, &m.WalletAddress, &m.Collection, &m.Type, &m.Category,
		&m.AdditionalKey, &m.Owner, &m.Quantity, &instance,
		&m.TransactionID, &status, &m.CreatedAt,
	)
	if err != nil {
		return mdom.MintTransaction{}, err
	}
	m.Status = domcommon.Status(status)
	if instance.Valid {
		m.TokenInstance = instance.String
	} else {
		m.TokenInstance = "0"
	}
	return m, nil
}
