package ranking

import (
	"fmt"

	"github.com/rank-matters/backend/internal/models"
)

// Compute derives the rank snapshot for one candidate against the full
// result set of the same exam. Standard competition ranking: a rank is
// one plus the count of strictly greater scores, so tied scores share a
// rank and the next distinct score jumps by the size of the tie group.
//
// Region ranks are only computed for boards with a region dimension;
// for the rest they stay zero rather than comparing against a column
// that has no meaning.
func Compute(results []models.CandidateResult, current *models.CandidateResult) models.RankSnapshot {
	snap := models.RankSnapshot{
		TotalStudents: len(results),
		OverallRank:   1,
		CategoryRank:  1,
		ShiftRank:     1,
	}

	hasRegion := current.Board.HasRegion() && current.Region != ""
	if hasRegion {
		snap.RegionRank = 1
		snap.RegionCategoryRank = 1
	}

	for _, r := range results {
		if r.TotalScore <= current.TotalScore {
			continue
		}
		snap.OverallRank++
		if r.Category == current.Category {
			snap.CategoryRank++
		}
		if r.Shift == current.Shift {
			snap.ShiftRank++
		}
		if hasRegion && r.Region == current.Region {
			snap.RegionRank++
			if r.Category == current.Category {
				snap.RegionCategoryRank++
			}
		}
	}

	snap.Percentile = percentile(snap.TotalStudents, snap.OverallRank)
	return snap
}

// percentile is (students below the rank / total) * 100, two decimals.
// A singleton population is defined as "100.00" to keep the value
// meaningful and the division safe.
func percentile(totalStudents, overallRank int) string {
	if totalStudents <= 1 {
		return "100.00"
	}
	p := (float64(totalStudents-overallRank) / float64(totalStudents)) * 100
	return fmt.Sprintf("%.2f", p)
}
