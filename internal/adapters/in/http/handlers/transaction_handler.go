// internal/adapters/in/http/handlers/transaction_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"galamint/internal/application/usecase"
)

type TransactionHandler struct {
	uc *usecase.TransactionUsecase
}

func NewTransactionHandler(uc *usecase.TransactionUsecase) http.Handler {
	return &TransactionHandler{uc: uc}
}

func (h *TransactionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/transactions/burn":
		h.burn(w, r)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/transactions/history/"):
		h.history(w, r, strings.TrimPrefix(r.URL.Path, "/transactions/history/"))

	default:
		methodNotAllowed(w)
	}
}

type burnRequest struct {
	SignedTransaction json.RawMessage `json:"signedTransaction"`
	GalaAmount        float64         `json:"galaAmount"`
	WalletAddress     string          `json:"walletAddress"`
}

func (h *TransactionHandler) burn(w http.ResponseWriter, r *http.Request) {
	var req burnRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if len(req.SignedTransaction) == 0 {
		badRequest(w, "signedTransaction is required")
		return
	}
	if req.GalaAmount <= 0 {
		badRequest(w, "Amount must be positive")
		return
	}

	t, err := h.uc.Burn(r.Context(), req.WalletAddress, req.GalaAmount, req.SignedTransaction)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{
		"message":       "Transaction processed successfully",
		"transaction":   t,
		"transactionId": t.TransactionID,
	})
}

func (h *TransactionHandler) history(w http.ResponseWriter, r *http.Request, address string) {
	if address == "" || strings.Contains(address, "/") {
		notFound(w)
		return
	}
	transactions, err := h.uc.History(r.Context(), address)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{"transactions": transactions})
}
