package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dbcommon "galamint/internal/adapters/out/db/common"
	domcommon "galamint/internal/domain/common"
	tcdom "galamint/internal/domain/tokenclass"
)

type TokenClassRepositoryPG struct {
	DB *sql.DB
}

func NewTokenClassRepositoryPG(db *sql.DB) *TokenClassRepositoryPG {
	return &TokenClassRepositoryPG{DB: db}
}

var _ tcdom.Repository = (*TokenClassRepositoryPG)(nil)

const tokenClassColumns = `
  id, collection, type, category, additional_key, wallet_address,
  transaction_id, status, current_supply, image, created_at, updated_at`

func (r *TokenClassRepositoryPG) Create(ctx context.Context, tc tcdom.TokenClass) (tcdom.TokenClass, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO token_classes (
  collection, type, category, additional_key, wallet_address,
  transaction_id, status, current_supply, image
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING` + tokenClassColumns

	row := run.QueryRowContext(ctx, q,
		tc.Collection, tc.Type, tc.Category, tc.AdditionalKey,
		tc.WalletAddress, tc.TransactionID, string(tc.Status),
		tc.CurrentSupply, tc.Image,
	)
	out, err := scanTokenClass(row)
	if err != nil {
		if dbcommon.IsUniqueViolation(err) {
			return tcdom.TokenClass{}, tcdom.ErrExists
		}
		return tcdom.TokenClass{}, err
	}
	return out, nil
}

func (r *TokenClassRepositoryPG) FindByKey(ctx context.Context, key tcdom.Key) (tcdom.TokenClass, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT` + tokenClassColumns + `
FROM token_classes
WHERE collection = $1 AND type = $2 AND category = $3 AND additional_key = $4
LIMIT 1`
	row := run.QueryRowContext(ctx, q, key.Collection, key.Type, key.Category, key.AdditionalKey)
	out, err := scanTokenClass(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tcdom.TokenClass{}, tcdom.ErrNotFound
		}
		return tcdom.TokenClass{}, err
	}
	return out, nil
}

func (r *TokenClassRepositoryPG) ListByWallet(ctx context.Context, walletAddress string) ([]tcdom.TokenClass, error) {
	const q = `
SELECT` + tokenClassColumns + `
FROM token_classes
WHERE wallet_address = $1
ORDER BY created_at DESC`
	return r.list(ctx, q, strings.TrimSpace(walletAddress))
}

func (r *TokenClassRepositoryPG) ListByCollection(ctx context.Context, collection string) ([]tcdom.TokenClass, error) {
	const q = `
SELECT` + tokenClassColumns + `
FROM token_classes
WHERE collection = $1
ORDER BY created_at DESC`
	return r.list(ctx, q, strings.TrimSpace(collection))
}

func (r *TokenClassRepositoryPG) UpdateSupply(ctx context.Context, id int, currentSupply string, image *string) error {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
UPDATE token_classes
SET current_supply = $2,
    image = COALESCE($3, image),
    updated_at = NOW()
WHERE id = $1`
	_, err := run.ExecContext(ctx, q, id, currentSupply, image)
	return err
}

func (r *TokenClassRepositoryPG) UpdateStatus(ctx context.Context, id int, status domcommon.Status, transactionID string) error {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
UPDATE token_classes
SET status = $2,
    transaction_id = $3,
    updated_at = NOW()
WHERE id = $1`
	_, err := run.ExecContext(ctx, q, id, string(status), transactionID)
	return err
}

func (r *TokenClassRepositoryPG) list(ctx context.Context, q string, arg any) ([]tcdom.TokenClass, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	rows, err := run.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []tcdom.TokenClass
	for rows.Next() {
		tc, err := scanTokenClass(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

func scanTokenClass(s scanner) (tcdom.TokenClass, error) {
	var (
		tc     tcdom.TokenClass
		status string
		supply sql.NullString
	)
	err := s.Scan(
		&tc.ID, &tc.Collection, &tc.Type, &tc.Category, &tc.AdditionalKey,
		&tc.WalletAddress, &tc.TransactionID, &status, &supply, &tc.Image,
		&tc.CreatedAt, &tc.UpdatedAt,
	)
	if err != nil {
		return tcdom.TokenClass{}, err
	}
	tc.Status = domcommon.Status(status)
	if supply.Valid {
		tc.CurrentSupply = supply.String
	} else {
		tc.CurrentSupply = "0"
	}
	return tc, nil
}
