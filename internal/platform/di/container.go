// internal/platform/di/container.go
package di

import (
	"fmt"

	httpin "galamint/internal/adapters/in/http"
	"galamint/internal/adapters/out/db"
	"galamint/internal/adapters/out/gala"
	"galamint/internal/application/usecase"
	"galamint/internal/infra/config"
	"galamint/internal/infra/database"
)

// Container bundles every dependency main.go needs, keeping main thin.
type Container struct {
	Config *config.Config

	db   *database.DB
	gala *gala.Client

	collectionUC  *usecase.CollectionUsecase
	tokenClassUC  *usecase.TokenClassUsecase
	mintUC        *usecase.MintUsecase
	walletUC      *usecase.WalletUsecase
	transactionUC *usecase.TransactionUsecase
	gemUC         *usecase.GemUsecase
}

// NewContainer reads config, opens the database and wires repositories,
// the gateway client and all usecases.
func NewContainer() (*Container, error) {
	cfg := config.Load()

	conn, err := database.NewConnection(
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseName,
		cfg.DatabaseSSL,
	)
	if err != nil {
		return nil, fmt.Errorf("di: database: %w", err)
	}

	client := gala.NewClient(cfg.GalaChainAPI)

	collections := db.NewCollectionRepositoryPG(conn.Client)
	classes := db.NewTokenClassRepositoryPG(conn.Client)
	mints := db.NewMintRepositoryPG(conn.Client)
	users := db.NewUserRepositoryPG(conn.Client)
	transactions := db.NewTransactionRepositoryPG(conn.Client)

	return &Container{
		Config:        cfg,
		db:            conn,
		gala:          client,
		collectionUC:  usecase.NewCollectionUsecase(collections, client),
		tokenClassUC:  usecase.NewTokenClassUsecase(classes, collections, client),
		mintUC:        usecase.NewMintUsecase(mints, classes, client),
		walletUC:      usecase.NewWalletUsecase(users),
		transactionUC: usecase.NewTransactionUsecase(transactions, client),
		gemUC:         usecase.NewGemUsecase(float64(cfg.GemExchangeRate)),
	}, nil
}

// RouterDeps exposes the wired usecases to the HTTP router.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		CollectionUC:  c.collectionUC,
		TokenClassUC:  c.tokenClassUC,
		MintUC:        c.mintUC,
		WalletUC:      c.walletUC,
		TransactionUC: c.transactionUC,
		GemUC:         c.gemUC,
		DB:            c.db,
	}
}

// Close releases held resources.
func (c *Container) Close() {
	if c.db != nil {
		_ = c.db.Close()
	}
}
