// AngelaMos | 2026
// handler_test.go

package article

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-jay69/hydraseo/internal/middleware"
)

func authenticatedRequest(method, target string, userID string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
	return r.WithContext(ctx)
}

func TestListZeroLimitFallsBackToDefault(t *testing.T) {
	u := freeUser()
	svc, repo, _ := newTestService(u, &fakeModel{})
	handler := NewHandler(svc)

	rec := httptest.NewRecorder()
	req := authenticatedRequest(
		http.MethodGet, "/articles?limit=0", u.ID.String(),
	)

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultListLimit, repo.lastParams.Limit)

	var body struct {
		Success bool `json:"success"`
		Meta    struct {
			Page     int `json:"page"`
			PageSize int `json:"page_size"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Meta.Page)
	assert.Equal(t, defaultListLimit, body.Meta.PageSize)
}

func TestListClampsNegativeSkipAndOversizedLimit(t *testing.T) {
	u := freeUser()
	svc, repo, _ := newTestService(u, &fakeModel{})
	handler := NewHandler(svc)

	rec := httptest.NewRecorder()
	req := authenticatedRequest(
		http.MethodGet, "/articles?skip=-10&limit=9999", u.ID.String(),
	)

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, repo.lastParams.Skip)
	assert.Equal(t, maxListLimit, repo.lastParams.Limit)
}
