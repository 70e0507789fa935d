package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dbcommon "galamint/internal/adapters/out/db/common"
	udom "galamint/internal/domain/user"
)

type UserRepositoryPG struct {
	DB *sql.DB
}

func NewUserRepositoryPG(db *sql.DB) *UserRepositoryPG {
	return &UserRepositoryPG{DB: db}
}

var _ udom.Repository = (*UserRepositoryPG)(nil)

func (r *UserRepositoryPG) FindByWallet(ctx context.Context, walletAddress string) (udom.User, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
SELECT id, wallet_address, gem_balance, created_at, updated_at
FROM users
WHERE wallet_address = $1
LIMIT 1`
	var u udom.User
	err := run.QueryRowContext(ctx, q, strings.TrimSpace(walletAddress)).
		Scan(&u.ID, &u.WalletAddress, &u.GemBalance, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return udom.User{}, udom.ErrNotFound
		}
		return udom.User{}, err
	}
	return u, nil
}

func (r *UserRepositoryPG) Create(ctx context.Context, u udom.User) (udom.User, error) {
	run := dbcommon.GetRunner(ctx, r.DB)
	const q = `
INSERT INTO users (wallet_address, gem_balance)
VALUES ($1, $2)
RETURNING id, wallet_address, gem_balance, created_at, updated_at`
	var out udom.User
	err := run.QueryRowContext(ctx, q, u.WalletAddress, u.GemBalance).
		Scan(&out.ID, &out.WalletAddress, &out.GemBalance, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return udom.User{}, err
	}
	return out, nil
}
