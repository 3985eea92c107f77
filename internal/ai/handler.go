// AngelaMos | 2026
// handler.go

package ai

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/c-jay69/hydraseo/internal/core"
)

type Handler struct {
	generator *Generator
	validator *validator.Validate
}

func NewHandler(generator *Generator) *Handler {
	return &Handler{
		generator: generator,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/ai", func(r chi.Router) {
		r.Post("/keywords", h.GenerateKeywords)
		r.Post("/competitors", h.AnalyzeCompetitors)
		r.Post("/seo-analysis", h.AnalyzeSEO)
		r.Post("/rewrite", h.RewriteContent)
		r.Post("/plagiarism-check", h.CheckPlagiarism)
	})
}

func (h *Handler) GenerateKeywords(w http.ResponseWriter, r *http.Request) {
	var req KeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	core.OK(w, h.generator.GenerateKeywords(
		r.Context(),
		req.SeedKeyword,
		req.Count,
	))
}

func (h *Handler) AnalyzeCompetitors(w http.ResponseWriter, r *http.Request) {
	var req CompetitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if req.Count == 0 {
		req.Count = 10
	}

	analysis := h.generator.AnalyzeCompetitors(
		r.Context(),
		req.Keyword,
		req.Count,
	)

	core.OK(w, CompetitorResponse{
		Keyword:            req.Keyword,
		CompetitorAnalysis: *analysis,
	})
}

func (h *Handler) AnalyzeSEO(w http.ResponseWriter, r *http.Request) {
	var req SEOAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	core.OK(w, h.generator.AnalyzeSEO(
		r.Context(),
		req.Content,
		req.TargetKeyword,
	))
}

func (h *Handler) RewriteContent(w http.ResponseWriter, r *http.Request) {
	var req RewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.generator.RewriteContent(
		r.Context(),
		req.Content,
		req.Tone,
		req.Humanize,
		req.PreserveKeywords,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) CheckPlagiarism(w http.ResponseWriter, r *http.Request) {
	var req PlagiarismRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	core.OK(w, h.generator.CheckPlagiarism(r.Context(), req.Content))
}
