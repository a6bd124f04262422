package extractor

import (
	"github.com/rank-matters/backend/internal/models"
)

// Metadata holds the candidate identity fields read from the answer-key
// document. Everything except the roll number may legitimately be empty;
// an empty roll number makes the record impossible to deduplicate and is
// treated as fatal by the caller.
type Metadata struct {
	RollNo        string
	CandidateName string
	TestDate      string
	Shift         string
	CentreName    string
}

// SectionTally is the raw per-subject outcome count, before any marking
// scheme is applied. Order follows the source document.
type SectionTally struct {
	Subject     string
	Right       int
	Wrong       int
	Unattempted int
}

// Extraction is the immutable intermediate representation handed to the
// scorer. The scorer never touches the parsed document.
type Extraction struct {
	Meta     Metadata
	Sections []SectionTally
}

// Extractor turns fetched answer-key HTML into an Extraction. Each exam
// board publishes a structurally different document, so there is one
// concrete extractor per layout family.
type Extractor interface {
	// SourceURLs expands the candidate-supplied URL into the full set of
	// documents to fetch. The first entry is the base page carrying the
	// candidate identity; the rest may fail individually.
	SourceURLs(url string) []string

	// Extract parses the fetched pages (same order as SourceURLs, empty
	// string for a page that could not be fetched).
	Extract(pages []string) (Extraction, error)

	// MarkingDefaults returns the board's fallback marking scheme, used
	// when the exam configuration omits explicit marks.
	MarkingDefaults() (positive, negative float64)

	// MarkedOverlapsWrong reports whether the board renders wrong and
	// marked-for-review answers with the same marker, in which case the
	// raw unattempted tally double-counts wrong answers.
	MarkedOverlapsWrong() bool
}

// ForBoard returns the extractor for a board's document layout.
func ForBoard(b models.Board) Extractor {
	switch b {
	case models.BoardSSC:
		return &ColorCellExtractor{Subjects: sscSubjects}
	case models.BoardRailway:
		return &QuestionPanelExtractor{defaultNegative: 1.0 / 3.0}
	case models.BoardBank, models.BoardOthers:
		return &QuestionPanelExtractor{defaultNegative: 0.25}
	default:
		return &QuestionPanelExtractor{defaultNegative: 0.25}
	}
}
