// internal/adapters/in/http/handlers/wallet_handler.go
package handlers

import (
	"net/http"

	"galamint/internal/application/usecase"
)

type WalletHandler struct {
	uc *usecase.WalletUsecase
}

func NewWalletHandler(uc *usecase.WalletUsecase) http.Handler {
	return &WalletHandler{uc: uc}
}

func (h *WalletHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/wallet/connect" {
		methodNotAllowed(w)
		return
	}

	var req struct {
		WalletAddress string `json:"walletAddress"`
	}
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	u, err := h.uc.Connect(r.Context(), req.WalletAddress)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{
		"message":       "Wallet connected successfully",
		"walletAddress": u.WalletAddress,
	})
}
