//go:build integration

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/service"
)

func TestJobsHandler_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	repo := newJobsRepository(t)
	now := time.Now().UTC()
	require.NoError(t, repo.CreateMany(ctx, []*model.JobRecord{
		{Kind: model.JobText, Status: model.JobStatusSuccess, TargetLang: "zh", Chunks: 1, CreatedAt: now.Add(-2 * time.Minute)},
		{Kind: model.JobDocument, Status: model.JobStatusFailed, ErrorCode: "transport", Files: 2, CreatedAt: now.Add(-time.Minute)},
		{Kind: model.JobImage, Status: model.JobStatusDegraded, Files: 1, CreatedAt: now},
	}))

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	router, stop := NewRouter(Handlers{Jobs: NewJobsHandler(service.NewJobHistoryService(repo))}, nil, cfg)
	defer stop()

	t.Run("newest first", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeJobs(t, w)
		assert.Equal(t, int64(3), resp.Total)
		require.Len(t, resp.Jobs, 3)
		assert.Equal(t, model.JobImage, resp.Jobs[0].Kind)
		assert.Equal(t, model.JobText, resp.Jobs[2].Kind)
	})

	t.Run("filter by status", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs?status=failed", nil))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeJobs(t, w)
		assert.Equal(t, int64(1), resp.Total)
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, "transport", resp.Jobs[0].ErrorCode)
	})

	t.Run("paging", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs?limit=1&skip=1", nil))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeJobs(t, w)
		assert.Equal(t, int64(3), resp.Total)
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, model.JobDocument, resp.Jobs[0].Kind)
	})
}

func decodeJobs(t *testing.T, w *httptest.ResponseRecorder) dto.JobsResponse {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var jobs dto.JobsResponse
	require.NoError(t, json.Unmarshal(raw, &jobs))
	return jobs
}
