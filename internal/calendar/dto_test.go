// AngelaMos | 2026
// dto_test.go

package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventRequestAcceptsAnyEventType(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	for _, eventType := range []string{
		EventTypePublish,
		EventTypeReview,
		EventTypeDeadline,
		"brainstorm",
	} {
		req := CreateEventRequest{
			Title:       "Q3 content push",
			EventType:   eventType,
			ScheduledAt: time.Now().Add(24 * time.Hour),
		}
		assert.NoError(t, v.Struct(req), "event type %q", eventType)
	}
}

func TestCreateEventRequestValidation(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	req := CreateEventRequest{
		Title:       "Missing type",
		ScheduledAt: time.Now(),
	}
	require.Error(t, v.Struct(req))

	req = CreateEventRequest{
		Title:       "Oversized type",
		EventType:   strings.Repeat("x", 51),
		ScheduledAt: time.Now(),
	}
	require.Error(t, v.Struct(req))
}
