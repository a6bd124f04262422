package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rank-matters/backend/internal/ranking"
	"github.com/rank-matters/backend/internal/store"
)

type ResultHandler struct {
	exams   *store.ExamStore
	results *store.ResultStore
}

func NewResultHandler(exams *store.ExamStore, results *store.ResultStore) *ResultHandler {
	return &ResultHandler{exams: exams, results: results}
}

// GetWithRank returns one candidate's stored result together with a rank
// snapshot computed fresh from the exam's live result set. Nothing is
// cached: the population grows with every submission, so a stored rank
// would be stale the moment it was written.
func (h *ResultHandler) GetWithRank(c *gin.Context) {
	slug := c.Param("slug")
	rollNo := c.Query("roll")
	if rollNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roll query parameter is required"})
		return
	}

	exam, err := h.exams.FindBySlug(slug)
	if err != nil {
		log.Printf("exam lookup failed for slug %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exam"})
		return
	}
	if exam == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exam not found"})
		return
	}

	result, err := h.results.FindExisting(exam.ID, rollNo)
	if err != nil {
		log.Printf("result lookup failed for exam %d roll %s: %v", exam.ID, rollNo, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load result"})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found for this roll number"})
		return
	}

	all, err := h.results.ListByExam(exam.ID)
	if err != nil {
		log.Printf("rank scan failed for exam %d: %v", exam.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rank"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exam":   exam,
		"result": result,
		"stats":  ranking.Compute(all, result),
	})
}

// Delete removes a stored result, typically after a candidate reports a
// bad submission. The delete is soft: the roll-number slot stays blocked
// until the cleanup job purges soft-deleted rows, which stops an
// immediate resubmit from racing the removal.
func (h *ResultHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	deleted, err := h.results.Delete(uint(id))
	if err != nil {
		log.Printf("delete result %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete result"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Result deleted"})
}
