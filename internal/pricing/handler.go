// AngelaMos | 2026
// handler.go

package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/c-jay69/hydraseo/internal/core"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/pricing", h.List)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	core.OK(w, map[string]any{"plans": Plans})
}
