package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rank-matters/backend/internal/models"
	"github.com/rank-matters/backend/internal/store"
)

type ExamHandler struct {
	exams *store.ExamStore
}

func NewExamHandler(exams *store.ExamStore) *ExamHandler {
	return &ExamHandler{exams: exams}
}

func (h *ExamHandler) List(c *gin.Context) {
	exams, err := h.exams.List()
	if err != nil {
		log.Printf("list exams failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exams"})
		return
	}
	c.JSON(http.StatusOK, exams)
}

type createExamRequest struct {
	Name           string       `json:"name" binding:"required"`
	Board          models.Board `json:"board" binding:"required"`
	Description    string       `json:"description"`
	ImageURL       string       `json:"image_url"`
	Slug           string       `json:"slug" binding:"required"`
	TotalQuestions int          `json:"total_questions"`
	PositiveMark   *float64     `json:"positive_mark"`
	NegativeMark   *float64     `json:"negative_mark"`
}

// Create registers a new answer-key entry. The marking scheme is treated
// as write-once after results start referencing it. Omitted marks stay
// null and fall back to the board defaults at scoring time; an explicit
// zero is stored as zero, which is how a no-negative-marking exam is
// configured.
func (h *ExamHandler) Create(c *gin.Context) {
	var req createExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Board {
	case models.BoardSSC, models.BoardRailway, models.BoardBank, models.BoardOthers:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "board must be one of SSC, RAILWAY, BANK, OTHERS"})
		return
	}

	exam := &models.Exam{
		Name:           req.Name,
		Board:          req.Board,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		Slug:           req.Slug,
		TotalQuestions: req.TotalQuestions,
		PositiveMark:   req.PositiveMark,
		NegativeMark:   req.NegativeMark,
	}
	if exam.TotalQuestions == 0 {
		exam.TotalQuestions = 100
	}

	if err := h.exams.Create(exam); err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, gin.H{"error": "This URL slug already exists. Please choose a unique one."})
			return
		}
		log.Printf("create exam failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exam"})
		return
	}

	c.JSON(http.StatusCreated, exam)
}

func (h *ExamHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exam ID"})
		return
	}

	if err := h.exams.Delete(uint(id)); err != nil {
		log.Printf("delete exam %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete exam"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exam deleted"})
}
