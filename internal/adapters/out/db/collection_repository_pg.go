package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dbcommon "galamint/internal/adapters/out/db/common"
	cdom "galamint/internal/domain/collection"
	domcommon "galamint/internal/domain/common"
)

type CollectionRepositoryPG struct {
	DB *sql.DB
}

func NewCollectionRepositoryPG(db *sql.DB) *CollectionRepositoryPG {
	return &CollectionRepositoryPG{DB: db}
}

var _ cdom.Repository = (*CollectionRepositoryPG)(nil)

const collectionColumns = `
  id, collection_name, wallet_address, description, image, category, symbol,
  contract_address, name, type, rarity, max_supply, max_capacity,
  metadata_address, transaction_id, status, created_at, updated_at`

func (r *CollectionRepositoryPG) Create(ctx context.Context, c cdom.Collection) (cdom.Collection, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO collections (
  collection_name, wallet_address, description, image, category, symbol,
  contract_address, name, type, rarity, max_supply, max_capacity,
  metadata_address, transaction_id, status
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
RETURNING` + collectionColumns

	row := run.QueryRowContext(ctx, q,
		c.CollectionName, c.WalletAddress, c.Description, c.Image, c.Category,
		c.Symbol, c.ContractAddress, c.Name, c.Type, c.Rarity, c.MaxSupply,
		c.MaxCapacity, c.MetadataAddress, c.TransactionID, string(c.Status),
	)
	out, err := scanCollection(row)
	if err != nil {
		if dbcommon.IsUniqueViolation(err) {
			return cdom.Collection{}, cdom.ErrAlreadyClaimed
		}
		return cdom.Collection{}, err
	}
	return out, nil
}

func (r *CollectionRepositoryPG) FindByNameAndWallet(ctx context.Context, collectionName, walletAddress string) (cdom.Collection, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT` + collectionColumns + `
FROM collections
WHERE collection_name = $1 AND wallet_address = $2
LIMIT 1`
	row := run.QueryRowContext(ctx, q, strings.TrimSpace(collectionName), strings.TrimSpace(walletAddress))
	out, err := scanCollection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cdom.Collection{}, cdom.ErrNotFound
		}
		return cdom.Collection{}, err
	}
	return out, nil
}

func (r *CollectionRepositoryPG) FindByName(ctx context.Context, collectionName string) (cdom.Collection, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT` + collectionColumns + `
FROM collections
WHERE collection_name = $1
LIMIT 1`
	row := run.QueryRowContext(ctx, q, strings.TrimSpace(collectionName))
	out, err := scanCollection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cdom.Collection{}, cdom.ErrNotFound
		}
		return cdom.Collection{}, err
	}
	return out, nil
}

func (r *CollectionRepositoryPG) ListByWallet(ctx context.Context, walletAddress string) ([]cdom.Collection, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT` + collectionColumns + `
FROM collections
WHERE wallet_address = $1
ORDER BY created_at DESC`
	rows, err := run.QueryContext(ctx, q, strings.TrimSpace(walletAddress))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []cdom.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCollection(s scanner) (cdom.Collection, error) {
	var (
		c      cdom.Collection
		status string
	)
	err := s.Scan(
		&c.ID, &c.CollectionName, &c.WalletAddress, &c.Description, &c.Image,
		&c.Category, &c.Symbol, &c.ContractAddress, &c.Name, &c.Type,
		&c.Rarity, &c.MaxSupply, &c.MaxCapacity, &c.MetadataAddress,
		&c.TransactionID, &status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return cdom.Collection{}, err
	}
	c.Status = domcommon.Status(status)
	return c, nil
}
