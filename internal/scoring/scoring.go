package scoring

import (
	"math"

	"github.com/rank-matters/backend/internal/extractor"
	"github.com/rank-matters/backend/internal/models"
)

// Scheme is the marking configuration applied to raw tallies.
type Scheme struct {
	PositiveMark float64
	NegativeMark float64
	// MarkedOverlapsWrong: the board's raw unattempted tally includes
	// wrong answers (shared marker color), so wrong is subtracted back
	// out, floored at zero.
	MarkedOverlapsWrong bool
}

// SchemeFor resolves the scheme from the exam configuration, falling back
// to the board defaults where the exam omits marks. Only a nil mark is
// treated as omitted: an exam configured with NegativeMark = 0 has no
// negative marking and must not inherit the board's penalty.
func SchemeFor(exam *models.Exam, ext extractor.Extractor) Scheme {
	pos, neg := ext.MarkingDefaults()
	if exam.PositiveMark != nil {
		pos = *exam.PositiveMark
	}
	if exam.NegativeMark != nil {
		neg = *exam.NegativeMark
	}
	return Scheme{
		PositiveMark:        pos,
		NegativeMark:        neg,
		MarkedOverlapsWrong: ext.MarkedOverlapsWrong(),
	}
}

// Result is the scored form of an extraction.
type Result struct {
	Sections         models.SectionList
	TotalCorrect     int
	TotalWrong       int
	TotalUnattempted int
	TotalScore       float64
}

// Score applies the marking scheme to the extracted tallies. The total is
// computed from the summed raw counts and rounded once, not by summing
// per-section scores, so rounding error never compounds.
func Score(tallies []extractor.SectionTally, s Scheme) Result {
	res := Result{Sections: make(models.SectionList, 0, len(tallies))}

	for _, t := range tallies {
		unattempted := t.Unattempted
		if s.MarkedOverlapsWrong {
			unattempted = t.Unattempted - t.Wrong
			if unattempted < 0 {
				unattempted = 0
			}
		}

		res.Sections = append(res.Sections, models.SectionBreakdown{
			Subject:     t.Subject,
			Right:       t.Right,
			Wrong:       t.Wrong,
			Unattempted: unattempted,
			Score:       Round4(float64(t.Right)*s.PositiveMark - float64(t.Wrong)*s.NegativeMark),
		})

		res.TotalCorrect += t.Right
		res.TotalWrong += t.Wrong
		res.TotalUnattempted += unattempted
	}

	res.TotalScore = Round4(float64(res.TotalCorrect)*s.PositiveMark - float64(res.TotalWrong)*s.NegativeMark)
	return res
}

// Round4 rounds half away from zero at the fourth decimal place.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
