package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/i18n"
	"github.com/guttosm/translate-service/internal/service"
)

// JobsHandler serves the job history.
type JobsHandler struct {
	history service.JobHistory
}

// NewJobsHandler creates a JobsHandler. A nil history means job storage is disabled.
func NewJobsHandler(history service.JobHistory) *JobsHandler {
	return &JobsHandler{history: history}
}

// ListJobs handles GET /api/jobs requests.
//
// @Summary      List recent jobs
// @Description  Returns job records, newest first. Records hold counts and status only, never text.
// @Tags         Jobs
// @Produce      json
// @Param        kind query string false "Job kind" Enums(text, document, image)
// @Param        status query string false "Job status" Enums(success, failed, degraded, noop)
// @Param        request_id query string false "Request id"
// @Param        since query string false "RFC 3339 lower bound on creation time"
// @Param        limit query int false "Page size" default(50)
// @Param        skip query int false "Offset"
// @Success      200 {object} dto.SuccessResponse{data=dto.JobsResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse "Job storage disabled or unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/jobs [get]
func (h *JobsHandler) ListJobs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.history == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, nil)
		return
	}

	var query dto.JobsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	opts, err := query.ToModel()
	if err != nil {
		builder.Fail(err)
		return
	}
	opts = service.NormalizeJobQuery(opts)

	records, total, err := h.history.List(c.Request.Context(), opts)
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.JobsResponse{
		Jobs:  records,
		Total: total,
		Limit: opts.Limit,
		Skip:  opts.Skip,
	})
}
