// internal/adapters/in/http/handlers/mint_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"galamint/internal/application/usecase"
)

type MintHandler struct {
	uc *usecase.MintUsecase
}

func NewMintHandler(uc *usecase.MintUsecase) http.Handler {
	return &MintHandler{uc: uc}
}

func (h *MintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/mint/tokens":
		h.mint(w, r)

	case r.Method == http.MethodPost && r.URL.Path == "/mint/estimate-fee":
		h.estimateFee(w, r)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/mint/transactions/"):
		h.listByWallet(w, r, strings.TrimPrefix(r.URL.Path, "/mint/transactions/"))

	default:
		methodNotAllowed(w)
	}
}

type mintTokensRequest struct {
	Collection        string          `json:"collection"`
	Type              string          `json:"type"`
	Category          string          `json:"category"`
	AdditionalKey     string          `json:"additionalKey,omitempty"`
	Owner             string          `json:"owner"`
	Quantity          string          `json:"quantity"`
	WalletAddress     string          `json:"walletAddress"`
	SignedTransaction json.RawMessage `json:"signedTransaction,omitempty"`
}

func (r mintTokensRequest) toInput() usecase.MintInput {
	return usecase.MintInput{
		Collection:    r.Collection,
		Type:          r.Type,
		Category:      r.Category,
		AdditionalKey: r.AdditionalKey,
		WalletAddress: r.WalletAddress,
		Owner:         r.Owner,
		Quantity:      r.Quantity,
		SignedPayload: r.SignedTransaction,
	}
}

func (h *MintHandler) mint(w http.ResponseWriter, r *http.Request) {
	var req mintTokensRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out, err := h.uc.Mint(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if out.Unsigned != nil {
		writeOK(w, map[string]any{
			"transaction":     nil,
			"transactionId":   nil,
			"unsignedMintDto": out.Unsigned,
		})
		return
	}
	writeOK(w, map[string]any{
		"message":       "Tokens minted successfully",
		"transaction":   out.Mint,
		"transactionId": out.TransactionID,
	})
}

func (h *MintHandler) estimateFee(w http.ResponseWriter, r *http.Request) {
	var req mintTokensRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	fee, err := h.uc.EstimateMintFee(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{"estimatedFee": fee})
}

func (h *MintHandler) listByWallet(w http.ResponseWriter, r *http.Request, address string) {
	if address == "" || strings.Contains(address, "/") {
		notFound(w)
		return
	}
	transactions, err := h.uc.ListByWallet(r.Context(), address)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{"transactions": transactions})
}
