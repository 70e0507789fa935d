// internal/adapters/in/http/handlers/tokenclass_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"galamint/internal/application/usecase"
)

// symbol and rarity travel to the chain as identifiers; letters only.
var lettersOnly = regexp.MustCompile(`^[A-Za-z]+$`)

type TokenClassHandler struct {
	uc *usecase.TokenClassUsecase
}

func NewTokenClassHandler(uc *usecase.TokenClassUsecase) http.Handler {
	return &TokenClassHandler{uc: uc}
}

func (h *TokenClassHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/token-classes/create":
		h.create(w, r)

	case r.Method == http.MethodPost && r.URL.Path == "/token-classes/estimate-fee":
		h.estimateFee(w, r)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/token-classes/user/"):
		h.listByWallet(w, r, strings.TrimPrefix(r.URL.Path, "/token-classes/user/"))

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/token-classes/collection/"):
		h.listByCollection(w, r, strings.TrimPrefix(r.URL.Path, "/token-classes/collection/"))

	default:
		methodNotAllowed(w)
	}
}

type createTokenClassRequest struct {
	Collection        string          `json:"collection"`
	Type              string          `json:"type"`
	Category          string          `json:"category"`
	AdditionalKey     string          `json:"additionalKey,omitempty"`
	Name              string          `json:"name,omitempty"`
	Description       string          `json:"description,omitempty"`
	Image             string          `json:"image,omitempty"`
	Symbol            string          `json:"symbol,omitempty"`
	Rarity            string          `json:"rarity,omitempty"`
	MaxSupply         string          `json:"maxSupply,omitempty"`
	MaxCapacity       string          `json:"maxCapacity,omitempty"`
	MetadataAddress   string          `json:"metadataAddress,omitempty"`
	WalletAddress     string          `json:"walletAddress"`
	SignedTransaction json.RawMessage `json:"signedTransaction,omitempty"`
}

func (r createTokenClassRequest) toInput() usecase.CreateClassInput {
	return usecase.CreateClassInput{
		Collection:      r.Collection,
		Type:            r.Type,
		Category:        r.Category,
		AdditionalKey:   r.AdditionalKey,
		WalletAddress:   r.WalletAddress,
		Name:            r.Name,
		Description:     r.Description,
		Image:           r.Image,
		Symbol:          r.Symbol,
		Rarity:          r.Rarity,
		MaxSupply:       r.MaxSupply,
		MaxCapacity:     r.MaxCapacity,
		MetadataAddress: r.MetadataAddress,
		SignedPayload:   r.SignedTransaction,
	}
}

func (h *TokenClassHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createTokenClassRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.Description == "" || req.Image == "" || req.MaxSupply == "" ||
		req.MaxCapacity == "" || req.Symbol == "" || req.Rarity == "" {
		badRequest(w, "Missing required fields: description, image, symbol, rarity, maxSupply, and maxCapacity are required")
		return
	}
	if !lettersOnly.MatchString(req.Symbol) {
		badRequest(w, "Symbol must contain only letters (a-z, A-Z)")
		return
	}
	if !lettersOnly.MatchString(req.Rarity) {
		badRequest(w, "Rarity must contain only letters (a-z, A-Z)")
		return
	}

	out, err := h.uc.Create(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if out.Unsigned != nil {
		writeOK(w, map[string]any{
			"tokenClass":        nil,
			"transactionId":     nil,
			"unsignedCreateDto": out.Unsigned,
		})
		return
	}
	writeOK(w, map[string]any{
		"message":       "Token class created successfully",
		"tokenClass":    out.TokenClass,
		"transactionId": out.TransactionID,
	})
}

func (h *TokenClassHandler) estimateFee(w http.ResponseWriter, r *http.Request) {
	var req createTokenClassRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	fee, err := h.uc.EstimateCreateFee(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{"estimatedFee": fee})
}

// listByWallet refreshes supply from chain best-effort, then lists local rows.
func (h *TokenClassHandler) listByWallet(w http.ResponseWriter, r *http.Request, address string) {
	if address == "" || strings.Contains(address, "/") {
		notFound(w)
		return
	}

	h.uc.SyncSupply(r.Context(), address)

	classes, err := h.uc.ListByWallet(r.Context(), address)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{"tokenClasses": classes})
}

func (h *TokenClassHandler) listByCollection(w http.ResponseWriter, r *http.Request, collection string) {
	if collection == "" || strings.Contains(collection, "/") {
		notFound(w)
		return
	}
	classes, err := h.uc.ListByCollection(r.Context(), collection)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeOK(w, map[string]any{"tokenClasses": classes})
}
