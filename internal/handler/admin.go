package handler

import (
	"log/slog"
	"net/http"

	"github.com/vaultpass/passcheck-go/internal/leak"
	"github.com/vaultpass/passcheck-go/internal/middleware"
)

// AdminHandler handles operator endpoints.
type AdminHandler struct {
	leaks *leak.Checker
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(leaks *leak.Checker) *AdminHandler {
	return &AdminHandler{leaks: leaks}
}

// HandleReloadLeaks handles POST /api/v1/admin/leaks/reload requests.
func (h *AdminHandler) HandleReloadLeaks(w http.ResponseWriter, r *http.Request) {
	h.leaks.Reload()

	attrs := []any{}
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		attrs = append(attrs, "subject", claims.Subject)
	}
	slog.InfoContext(r.Context(), "leak corpus reloaded", attrs...)

	w.WriteHeader(http.StatusNoContent)
}
