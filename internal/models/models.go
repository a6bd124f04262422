package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Board identifies the exam-conducting body. The board determines the
// answer-key document layout and whether a region rank dimension exists.
type Board string

const (
	BoardSSC     Board = "SSC"
	BoardRailway Board = "RAILWAY"
	BoardBank    Board = "BANK"
	BoardOthers  Board = "OTHERS"
)

// HasRegion reports whether results for this board carry a geographic
// grouping (state for banking exams, zone for railway exams).
func (b Board) HasRegion() bool {
	return b == BoardRailway || b == BoardBank
}

// SectionBreakdown holds per-subject counts and score, in the order the
// sections appear in the source document.
type SectionBreakdown struct {
	Subject     string  `json:"subject"`
	Right       int     `json:"right"`
	Wrong       int     `json:"wrong"`
	Unattempted int     `json:"unattempted"`
	Score       float64 `json:"score"`
}

// SectionList is stored as a JSON column on the result row.
type SectionList []SectionBreakdown

func (s SectionList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SectionList) Scan(value interface{}) error {
	if value == nil {
		*s = SectionList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return nil
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, s)
}

// Exam is the admin-configured answer-key entry. Marking scheme fields are
// treated as write-once: stored results were scored against them and are
// never re-scored. A nil mark means "not configured" and the board default
// applies at scoring time; an explicit zero is honored, so an exam with no
// negative marking stores NegativeMark = 0, not nil.
type Exam struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Board          Board     `gorm:"type:varchar(20);not null" json:"board"`
	Description    string    `gorm:"type:text" json:"description"`
	ImageURL       string    `gorm:"type:text" json:"image_url"`
	Slug           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	TotalQuestions int       `gorm:"default:100" json:"total_questions"`
	PositiveMark   *float64  `gorm:"type:decimal(6,4)" json:"positive_mark"`
	NegativeMark   *float64  `gorm:"type:decimal(6,4)" json:"negative_mark"`
	CreatedAt      time.Time `json:"created_at"`
}

// CandidateResult is one scored answer sheet. Roll numbers are only unique
// within an exam, so the (exam_id, roll_no) composite index is the
// uniqueness guard; it is also the sole defence against racing duplicate
// submissions for the same roll number.
type CandidateResult struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	ExamID           uint           `gorm:"not null;uniqueIndex:idx_exam_roll" json:"exam_id"`
	RollNo           string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_exam_roll" json:"roll_no"`
	Board            Board          `gorm:"type:varchar(20);not null;index" json:"board"`
	CandidateName    string         `gorm:"type:varchar(255)" json:"candidate_name"`
	Category         string         `gorm:"type:varchar(20);default:'UR'" json:"category"`
	Region           string         `gorm:"type:varchar(100)" json:"region,omitempty"`
	TestDate         string         `gorm:"type:varchar(50)" json:"test_date"`
	Shift            string         `gorm:"type:varchar(100)" json:"shift"`
	CentreName       string         `gorm:"type:varchar(255)" json:"centre_name"`
	SourceURL        string         `gorm:"type:text;not null" json:"source_url"`
	TotalCorrect     int            `json:"total_correct"`
	TotalWrong       int            `json:"total_wrong"`
	TotalUnattempted int            `json:"total_unattempted"`
	TotalScore       float64        `json:"total_score"`
	Sections         SectionList    `gorm:"type:json" json:"sections"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	Exam             *Exam          `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"exam,omitempty"`
}

// RankSnapshot is derived on every read from the live result set; it is
// never persisted because the population grows with each submission.
type RankSnapshot struct {
	TotalStudents      int    `json:"total_students"`
	OverallRank        int    `json:"overall_rank"`
	CategoryRank       int    `json:"category_rank"`
	ShiftRank          int    `json:"shift_rank"`
	RegionRank         int    `json:"region_rank,omitempty"`
	RegionCategoryRank int    `json:"region_category_rank,omitempty"`
	Percentile         string `json:"percentile"`
}
