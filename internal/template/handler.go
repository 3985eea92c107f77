// AngelaMos | 2026
// handler.go

package template

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/c-jay69/hydraseo/internal/core"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/templates", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/categories", h.ListCategories)
		r.Get("/{templateID}", h.Get)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		core.OK(w, h.catalog.ByCategory(category))
		return
	}
	core.OK(w, h.catalog.All())
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.catalog.Categories())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, ok := h.catalog.ByID(chi.URLParam(r, "templateID"))
	if !ok {
		core.NotFound(w, "template")
		return
	}
	core.OK(w, t)
}
