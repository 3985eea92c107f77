// AngelaMos | 2026
// handler.go

package calendar

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/c-jay69/hydraseo/internal/core"
	"github.com/c-jay69/hydraseo/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/calendar", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Delete("/{eventID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	params := ListEventsParams{UserID: userID}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		start, err := parseDateQuery(raw)
		if err != nil {
			core.BadRequest(w, "invalid start_date: "+raw)
			return
		}
		params.StartDate = &start
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		end, err := parseDateQuery(raw)
		if err != nil {
			core.BadRequest(w, "invalid end_date: "+raw)
			return
		}
		params.EndDate = &end
	}

	events, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if events == nil {
		events = []Event{}
	}

	core.OK(w, events)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	event, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if core.IsAppError(err) {
			core.JSONError(w, err)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, event)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		core.NotFound(w, "calendar event")
		return
	}

	if err := h.service.Delete(r.Context(), eventID, userID); err != nil {
		if core.IsAppError(err) {
			core.JSONError(w, err)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func requestUserID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(middleware.GetUserID(r.Context()))
	if err != nil {
		return uuid.Nil, core.UnauthorizedError("authentication required")
	}
	return id, nil
}

// parseDateQuery accepts RFC 3339 timestamps or bare dates (2006-01-02).
func parseDateQuery(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
