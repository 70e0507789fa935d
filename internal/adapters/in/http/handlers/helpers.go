// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"galamint/internal/adapters/out/gala"
	cdom "galamint/internal/domain/collection"
	mintdom "galamint/internal/domain/mint"
	txdom "galamint/internal/domain/transaction"
	tcdom "galamint/internal/domain/tokenclass"
	userdom "galamint/internal/domain/user"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeOK wraps a payload in the {"success": true, ...} envelope.
func writeOK(w http.ResponseWriter, payload map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message, "message": message})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, message)
}

// writeDomainError maps sentinel errors to HTTP statuses: validation,
// duplicates and unknown mint tuples are 4xx, missing records 404,
// ownership mismatch 403, upstream gateway failures 500 with the
// upstream status and body in the message, everything else a generic 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var apiErr *gala.APIError
	switch {
	case errors.Is(err, cdom.ErrInvalidCollectionName),
		errors.Is(err, cdom.ErrInvalidWalletAddress),
		errors.Is(err, cdom.ErrAlreadyClaimed),
		errors.Is(err, tcdom.ErrInvalidCollection),
		errors.Is(err, tcdom.ErrInvalidType),
		errors.Is(err, tcdom.ErrInvalidCategory),
		errors.Is(err, tcdom.ErrInvalidWallet),
		errors.Is(err, tcdom.ErrExists),
		errors.Is(err, tcdom.ErrNotFound),
		errors.Is(err, mintdom.ErrInvalidWallet),
		errors.Is(err, mintdom.ErrInvalidOwner),
		errors.Is(err, mintdom.ErrInvalidQuantity),
		errors.Is(err, txdom.ErrInvalidWallet),
		errors.Is(err, txdom.ErrInvalidAmount),
		errors.Is(err, userdom.ErrInvalidWalletAddress):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, tcdom.ErrNotOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, cdom.ErrNotFound),
		errors.Is(err, userdom.ErrNotFound),
		errors.Is(err, mintdom.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &apiErr):
		writeError(w, http.StatusInternalServerError, apiErr.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeBody reads a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
