// internal/adapters/in/http/handlers/gem_handler.go
package handlers

import (
	"net/http"

	"galamint/internal/application/usecase"
)

type GemHandler struct {
	uc *usecase.GemUsecase
}

func NewGemHandler(uc *usecase.GemUsecase) http.Handler {
	return &GemHandler{uc: uc}
}

func (h *GemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/gems/packages":
		writeOK(w, map[string]any{
			"packages":     h.uc.Packages(),
			"exchangeRate": h.uc.ExchangeRate,
		})

	case r.Method == http.MethodGet && r.URL.Path == "/gems/exchange-rate":
		writeOK(w, map[string]any{
			"exchangeRate": h.uc.ExchangeRate,
			"description":  "Gems per GALA token",
		})

	default:
		methodNotAllowed(w)
	}
}
