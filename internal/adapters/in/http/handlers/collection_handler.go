// internal/adapters/in/http/handlers/collection_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"galamint/internal/application/usecase"
)

type CollectionHandler struct {
	uc *usecase.CollectionUsecase
}

func NewCollectionHandler(uc *usecase.CollectionUsecase) http.Handler {
	return &CollectionHandler{uc: uc}
}

func (h *CollectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/collections/claim":
		h.claim(w, r)

	case r.Method == http.MethodPost && r.URL.Path == "/collections/estimate-fee":
		h.estimateFee(w, r)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/collections/single/"):
		h.getSingle(w, r, strings.TrimPrefix(r.URL.Path, "/collections/single/"))

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/collections/"):
		h.listByWallet(w, r, strings.TrimPrefix(r.URL.Path, "/collections/"))

	default:
		methodNotAllowed(w)
	}
}

type claimRequest struct {
	Collection          string          `json:"collection"`
	WalletAddress       string          `json:"walletAddress"`
	SignedAuthorization json.RawMessage `json:"signedAuthorization,omitempty"`
}

func (h *CollectionHandler) claim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out, err := h.uc.Claim(r.Context(), usecase.ClaimInput{
		CollectionName: req.Collection,
		WalletAddress:  req.WalletAddress,
		SignedPayload:  req.SignedAuthorization,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if out.Unsigned != nil {
		writeOK(w, map[string]any{
			"collection":      nil,
			"transactionId":   nil,
			"unsignedAuthDto": out.Unsigned,
		})
		return
	}
	writeOK(w, map[string]any{
		"message":       "Collection claimed successfully",
		"collection":    out.Collection,
		"transactionId": out.TransactionID,
	})
}

func (h *CollectionHandler) estimateFee(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	fee, err := h.uc.EstimateClaimFee(r.Context(), req.Collection, req.WalletAddress)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{"estimatedFee": fee})
}

func (h *CollectionHandler) getSingle(w http.ResponseWriter, r *http.Request, name string) {
	if name == "" {
		badRequest(w, "collection name is required")
		return
	}
	c, err := h.uc.GetByName(r.Context(), name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{"collection": c})
}

// listByWallet syncs from chain best-effort first, then returns local rows.
func (h *CollectionHandler) listByWallet(w http.ResponseWriter, r *http.Request, address string) {
	if address == "" || strings.Contains(address, "/") {
		notFound(w)
		return
	}

	h.uc.SyncFromChain(r.Context(), address)

	collections, err := h.uc.ListByWallet(r.Context(), address)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{"collections": collections})
}
