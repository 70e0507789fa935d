// internal/adapters/out/db/collection_repository_pg_test.go
package db

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	cdom "galamint/internal/domain/collection"
	domcommon "galamint/internal/domain/common"
)

var collectionCols = []string{
	"id", "collection_name", "wallet_address", "description", "image",
	"category", "symbol", "contract_address", "name", "type", "rarity",
	"max_supply", "max_capacity", "metadata_address", "transaction_id",
	"status", "created_at", "updated_at",
}

func collectionRow(id int, name, wallet, txID, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(collectionCols).AddRow(
		id, name, wallet, nil, nil, nil, nil, nil, nil, nil, nil,
		nil, nil, nil, txID, status, now, now,
	)
}

func TestCollectionCreate(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := NewCollectionRepositoryPG(mockDB)

	mock.ExpectQuery("INSERT INTO collections").
		WithArgs("Art", "eth|abc", nil, nil, nil, nil, nil, nil, nil, nil,
			nil, nil, nil, "tx-1", "completed").
		WillReturnRows(collectionRow(1, "Art", "eth|abc", "tx-1", "completed"))

	c, err := cdom.New("Art", "eth|abc", "tx-1", domcommon.StatusCompleted)
	require.NoError(t, err)

	saved, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, 1, saved.ID)
	require.Equal(t, domcommon.StatusCompleted, saved.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionCreateUniqueViolation(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := NewCollectionRepositoryPG(mockDB)

	mock.ExpectQuery("INSERT INTO collections").
		WillReturnError(&pq.Error{Code: "23505"})

	c, err := cdom.New("Art", "eth|abc", "tx-1", domcommon.StatusCompleted)
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), c)
	require.ErrorIs(t, err, cdom.ErrAlreadyClaimed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionFindByNameNotFound(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := NewCollectionRepositoryPG(mockDB)

	mock.ExpectQuery("FROM collections").
		WithArgs("Ghost").
		WillReturnRows(sqlmock.NewRows(collectionCols))

	_, err = repo.FindByName(context.Background(), "Ghost")
	require.ErrorIs(t, err, cdom.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionListByWalletNewestFirst(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := NewCollectionRepositoryPG(mockDB)

	rows := collectionRow(2, "Newer", "eth|abc", "tx-2", "completed")
	now := time.Now()
	rows.AddRow(1, "Older", "eth|abc", nil, nil, nil, nil, nil, nil, nil, nil,
		nil, nil, nil, "tx-1", "completed", now, now)

	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs("eth|abc").
		WillReturnRows(rows)

	out, err := repo.ListByWallet(context.Background(), "eth|abc")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "Newer", out[0].CollectionName)
	require.NoError(t, mock.ExpectationsWereMet())
}
