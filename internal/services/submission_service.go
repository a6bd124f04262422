package services

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/rank-matters/backend/internal/extractor"
	"github.com/rank-matters/backend/internal/fetcher"
	"github.com/rank-matters/backend/internal/models"
	"github.com/rank-matters/backend/internal/scoring"
	"github.com/rank-matters/backend/internal/store"
)

// SubmissionInput is one candidate's answer-key submission.
type SubmissionInput struct {
	URL      string
	ExamID   uint
	Category string
	Region   string
}

// SubmissionOutcome carries the stored result. Cached means an existing
// record was found (or won a racing insert) and no re-scoring happened.
type SubmissionOutcome struct {
	Result *models.CandidateResult
	Cached bool
}

// SubmissionService runs the fetch → extract → score → upsert pipeline.
// Each call is an independent unit of work; correctness under concurrent
// duplicate submissions rests on the store's uniqueness constraint alone.
type SubmissionService struct {
	exams   *store.ExamStore
	results *store.ResultStore
	fetcher *fetcher.Fetcher
}

func NewSubmissionService(exams *store.ExamStore, results *store.ResultStore, f *fetcher.Fetcher) *SubmissionService {
	return &SubmissionService{exams: exams, results: results, fetcher: f}
}

// Submit processes one answer-key URL for the given board family.
func (s *SubmissionService) Submit(ctx context.Context, board models.Board, in SubmissionInput) (*SubmissionOutcome, error) {
	if in.URL == "" || in.ExamID == 0 {
		return nil, fmt.Errorf("%w: missing URL or exam ID", ErrInvalidInput)
	}
	if parsed, err := url.Parse(in.URL); err != nil || !parsed.IsAbs() {
		return nil, fmt.Errorf("%w: URL must be absolute", ErrInvalidInput)
	}

	exam, err := s.exams.Find(in.ExamID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, fmt.Errorf("%w: exam %d", ErrExamNotConfigured, in.ExamID)
	}
	if exam.Board != board {
		return nil, fmt.Errorf("%w: exam %d is not a %s exam", ErrInvalidInput, in.ExamID, board)
	}

	ext := extractor.ForBoard(board)

	pages, err := s.fetcher.FetchAll(ctx, ext.SourceURLs(in.URL))
	if err != nil {
		log.Printf("fetch failed for exam %d url %s: %v", in.ExamID, in.URL, err)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	extraction, err := ext.Extract(pages)
	if err != nil {
		log.Printf("extraction failed for exam %d url %s: %v", in.ExamID, in.URL, err)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if extraction.Meta.RollNo == "" {
		return nil, fmt.Errorf("%w (exam %d, url %s)", ErrIdentityNotFound, in.ExamID, in.URL)
	}

	region := ""
	if board.HasRegion() {
		region = in.Region
	}

	// Re-submission refreshes only the user-asserted fields; the score
	// derives from the source document and stays as first computed.
	existing, err := s.results.FindExisting(exam.ID, extraction.Meta.RollNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.results.RefreshMutableFields(existing, in.Category, region); err != nil {
			return nil, err
		}
		return &SubmissionOutcome{Result: existing, Cached: true}, nil
	}

	scored := scoring.Score(extraction.Sections, scoring.SchemeFor(exam, ext))

	category := in.Category
	if category == "" {
		category = "UR"
	}

	result := &models.CandidateResult{
		ExamID:           exam.ID,
		RollNo:           extraction.Meta.RollNo,
		Board:            board,
		CandidateName:    extraction.Meta.CandidateName,
		Category:         category,
		Region:           region,
		TestDate:         extraction.Meta.TestDate,
		Shift:            extraction.Meta.Shift,
		CentreName:       extraction.Meta.CentreName,
		SourceURL:        in.URL,
		TotalCorrect:     scored.TotalCorrect,
		TotalWrong:       scored.TotalWrong,
		TotalUnattempted: scored.TotalUnattempted,
		TotalScore:       scored.TotalScore,
		Sections:         scored.Sections,
	}

	stored, existed, err := s.results.Insert(result)
	if err != nil {
		return nil, err
	}
	if existed {
		// Lost a racing insert for the same roll number; fold into the
		// winner's record like any other re-submission.
		if err := s.results.RefreshMutableFields(stored, in.Category, region); err != nil {
			return nil, err
		}
	}

	return &SubmissionOutcome{Result: stored, Cached: existed}, nil
}
