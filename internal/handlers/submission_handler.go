package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rank-matters/backend/internal/models"
	"github.com/rank-matters/backend/internal/services"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "submissions_total",
		Help: "Answer-key submissions processed, by board and outcome",
	}, []string{"board", "outcome"})

	fetchFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "upstream_fetch_failures_total",
		Help: "Answer-key fetches that failed against the board portal",
	})
)

type SubmissionHandler struct {
	service *services.SubmissionService
}

func NewSubmissionHandler(service *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

type submissionRequest struct {
	URL         string `json:"url" binding:"required"`
	ExamID      uint   `json:"examId" binding:"required"`
	Category    string `json:"category"`
	RegionValue string `json:"regionValue"`
}

// Calculate returns the submission endpoint for one board family.
func (h *SubmissionHandler) Calculate(board models.Board) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			submissionsTotal.WithLabelValues(string(board), "invalid_input").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing URL or Exam ID"})
			return
		}

		outcome, err := h.service.Submit(c.Request.Context(), board, services.SubmissionInput{
			URL:      req.URL,
			ExamID:   req.ExamID,
			Category: req.Category,
			Region:   req.RegionValue,
		})
		if err != nil {
			h.renderError(c, board, err)
			return
		}

		outcomeLabel := "scored"
		if outcome.Cached {
			outcomeLabel = "cached"
		}
		submissionsTotal.WithLabelValues(string(board), outcomeLabel).Inc()

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"isCached": outcome.Cached,
			"dbData":   outcome.Result,
		})
	}
}

// renderError maps the service failure taxonomy onto HTTP responses.
// Every branch records an outcome, so submissionsTotal partitions all
// submissions across scored/cached and the failure classes.
func (h *SubmissionHandler) renderError(c *gin.Context, board models.Board, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		submissionsTotal.WithLabelValues(string(board), "invalid_input").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrExamNotConfigured):
		submissionsTotal.WithLabelValues(string(board), "exam_not_configured").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "Exam settings not found"})
	case errors.Is(err, services.ErrFetchFailed):
		submissionsTotal.WithLabelValues(string(board), "fetch_failed").Inc()
		fetchFailuresTotal.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not retrieve the answer key. Check the URL and try again."})
	case errors.Is(err, services.ErrIdentityNotFound):
		submissionsTotal.WithLabelValues(string(board), "identity_not_found").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not find Roll Number in URL"})
	default:
		submissionsTotal.WithLabelValues(string(board), "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Calculation failed"})
	}
}
