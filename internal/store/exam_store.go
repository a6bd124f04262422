package store

import (
	"errors"
	"fmt"

	"github.com/rank-matters/backend/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateSlug signals an exam create with a slug that is already
// taken. Surfaced to the admin as a conflict, not retried.
var ErrDuplicateSlug = errors.New("exam slug already exists")

// ExamStore manages the admin-configured exam entries.
type ExamStore struct {
	db *gorm.DB
}

func NewExamStore(db *gorm.DB) *ExamStore {
	return &ExamStore{db: db}
}

func (s *ExamStore) Create(exam *models.Exam) error {
	err := s.db.Create(exam).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSlug
	}
	if err != nil {
		return fmt.Errorf("create exam %q: %w", exam.Slug, err)
	}
	return nil
}

func (s *ExamStore) Find(id uint) (*models.Exam, error) {
	var exam models.Exam
	err := s.db.First(&exam, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find exam %d: %w", id, err)
	}
	return &exam, nil
}

func (s *ExamStore) FindBySlug(slug string) (*models.Exam, error) {
	var exam models.Exam
	err := s.db.Where("slug = ?", slug).First(&exam).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find exam %q: %w", slug, err)
	}
	return &exam, nil
}

// List returns exams newest first, matching the landing page ordering.
func (s *ExamStore) List() ([]models.Exam, error) {
	var exams []models.Exam
	if err := s.db.Order("created_at DESC").Find(&exams).Error; err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	return exams, nil
}

func (s *ExamStore) Delete(id uint) error {
	if err := s.db.Delete(&models.Exam{}, id).Error; err != nil {
		return fmt.Errorf("delete exam %d: %w", id, err)
	}
	return nil
}
