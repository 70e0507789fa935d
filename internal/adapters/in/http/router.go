// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"galamint/internal/adapters/in/http/handlers"
	"galamint/internal/application/usecase"
)

// RouterDeps collects the usecases (and the DB pinger) injected from
// the DI container.
type RouterDeps struct {
	CollectionUC  *usecase.CollectionUsecase
	TokenClassUC  *usecase.TokenClassUsecase
	MintUC        *usecase.MintUsecase
	WalletUC      *usecase.WalletUsecase
	TransactionUC *usecase.TransactionUsecase
	GemUC         *usecase.GemUsecase

	DB handlers.Pinger
}

// NewRouter mounts the API under /api plus the bare /healthz liveness
// probe. Handlers that have no usecase stay unmounted.
func NewRouter(deps RouterDeps) http.Handler {
	api := http.NewServeMux()

	if deps.CollectionUC != nil {
		api.Handle("/collections/", handlers.NewCollectionHandler(deps.CollectionUC))
	}
	if deps.TokenClassUC != nil {
		api.Handle("/token-classes/", handlers.NewTokenClassHandler(deps.TokenClassUC))
	}
	if deps.MintUC != nil {
		api.Handle("/mint/", handlers.NewMintHandler(deps.MintUC))
	}
	if deps.WalletUC != nil {
		api.Handle("/wallet/", handlers.NewWalletHandler(deps.WalletUC))
	}
	if deps.TransactionUC != nil {
		api.Handle("/transactions/", handlers.NewTransactionHandler(deps.TransactionUC))
	}
	if deps.GemUC != nil {
		api.Handle("/gems/", handlers.NewGemHandler(deps.GemUC))
	}
	api.Handle("/health", handlers.NewHealthHandler(deps.DB))

	mux := http.NewServeMux()

	// Liveness probe (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/api/", http.StripPrefix("/api", api))

	return mux
}
