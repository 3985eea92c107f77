// AngelaMos | 2026
// service.go

package calendar

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/c-jay69/hydraseo/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	req CreateEventRequest,
) (*Event, error) {
	event := &Event{
		ID:          uuid.New(),
		UserID:      userID,
		ArticleID:   req.ArticleID,
		Title:       req.Title,
		EventType:   req.EventType,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *Service) List(
	ctx context.Context,
	params ListEventsParams,
) ([]Event, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	err := s.repo.DeleteByOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("calendar event")
		}
		return err
	}

	return nil
}

func (s *Service) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return s.repo.DeleteByUser(ctx, userID)
}
