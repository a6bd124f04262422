package store

import (
	"errors"
	"fmt"

	"github.com/rank-matters/backend/internal/models"
	"gorm.io/gorm"
)

// ResultStore is the persistence adapter for candidate results. Scores
// are write-once: only category and region may change after insert.
type ResultStore struct {
	db *gorm.DB
}

func NewResultStore(db *gorm.DB) *ResultStore {
	return &ResultStore{db: db}
}

// FindExisting returns the stored result for (examID, rollNo), or nil
// when no submission has been recorded yet.
func (s *ResultStore) FindExisting(examID uint, rollNo string) (*models.CandidateResult, error) {
	var result models.CandidateResult
	err := s.db.Where("exam_id = ? AND roll_no = ?", examID, rollNo).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find result %d/%s: %w", examID, rollNo, err)
	}
	return &result, nil
}

// Insert writes a freshly scored result. Two submissions for the same
// roll number can race here; the loser hits the (exam_id, roll_no)
// unique index, and the correct recovery is to re-read and hand back the
// winner's row as an existing record, never to surface the violation.
func (s *ResultStore) Insert(result *models.CandidateResult) (*models.CandidateResult, bool, error) {
	err := s.db.Create(result).Error
	if err == nil {
		return result, false, nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, ferr := s.FindExisting(result.ExamID, result.RollNo)
		if ferr != nil {
			return nil, false, ferr
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	return nil, false, fmt.Errorf("insert result %d/%s: %w", result.ExamID, result.RollNo, err)
}

// RefreshMutableFields updates category and region in place when the
// caller asserts different values. Counts and score are never touched:
// they derive from the source document, and rewriting them would
// invalidate rank snapshots already computed against this row.
func (s *ResultStore) RefreshMutableFields(existing *models.CandidateResult, category, region string) error {
	updates := map[string]interface{}{}

	if category != "" && existing.Category != category {
		updates["category"] = category
	}
	if region != "" && existing.Region != region {
		updates["region"] = region
	}

	if len(updates) == 0 {
		return nil
	}

	if err := s.db.Model(existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("refresh result %d: %w", existing.ID, err)
	}

	if v, ok := updates["category"]; ok {
		existing.Category = v.(string)
	}
	if v, ok := updates["region"]; ok {
		existing.Region = v.(string)
	}
	return nil
}

// Delete soft-deletes one result and reports whether a row was hit.
// The soft-deleted row keeps its (exam_id, roll_no) slot in the unique
// index, so the candidate cannot resubmit until the cleanup purge runs.
func (s *ResultStore) Delete(id uint) (bool, error) {
	res := s.db.Delete(&models.CandidateResult{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete result %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListByExam loads the full result set for an exam. Ranking re-scans
// this on every request; the population is small enough that
// correctness beats caching.
func (s *ResultStore) ListByExam(examID uint) ([]models.CandidateResult, error) {
	var results []models.CandidateResult
	if err := s.db.Where("exam_id = ?", examID).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("list results for exam %d: %w", examID, err)
	}
	return results, nil
}
