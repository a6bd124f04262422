package ranking

import (
	"testing"

	"github.com/rank-matters/backend/internal/models"
)

func result(score float64, category, shift, region string) models.CandidateResult {
	return models.CandidateResult{
		Board:      models.BoardBank,
		TotalScore: score,
		Category:   category,
		Shift:      shift,
		Region:     region,
	}
}

func TestCompute_OverallRankAndTies(t *testing.T) {
	pool := []models.CandidateResult{
		result(90, "UR", "Shift 1", ""),
		result(80, "UR", "Shift 1", ""),
		result(80, "OBC", "Shift 2", ""),
		result(70, "UR", "Shift 1", ""),
	}

	tests := []struct {
		name         string
		current      models.CandidateResult
		expectedRank int
	}{
		{"Topper", pool[0], 1},
		{"Tied Pair Shares Rank", pool[1], 2},
		{"Other Half Of Tie", pool[2], 2},
		{"After Tie Group Jumps", pool[3], 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := tt.current
			snap := Compute(pool, &cur)
			if snap.OverallRank != tt.expectedRank {
				t.Errorf("Expected overall rank %d, got %d", tt.expectedRank, snap.OverallRank)
			}
		})
	}
}

func TestCompute_Monotonicity(t *testing.T) {
	pool := []models.CandidateResult{
		result(55.25, "UR", "Shift 1", ""),
		result(42.5, "OBC", "Shift 1", ""),
		result(42.5, "UR", "Shift 2", ""),
		result(30, "EWS", "Shift 2", ""),
		result(12.75, "UR", "Shift 3", ""),
	}

	for i := range pool {
		for j := range pool {
			a, b := pool[i], pool[j]
			rankA := Compute(pool, &a).OverallRank
			rankB := Compute(pool, &b).OverallRank
			if a.TotalScore > b.TotalScore && rankA > rankB {
				t.Errorf("score %v ranked %d behind score %v ranked %d", a.TotalScore, rankA, b.TotalScore, rankB)
			}
			if a.TotalScore == b.TotalScore && rankA != rankB {
				t.Errorf("equal scores %v got ranks %d and %d", a.TotalScore, rankA, rankB)
			}
		}
	}
}

func TestCompute_DimensionalRanks(t *testing.T) {
	pool := []models.CandidateResult{
		result(90, "UR", "Shift 1", "South Zone"),
		result(85, "OBC", "Shift 2", "North Zone"),
		result(80, "OBC", "Shift 2", "North Zone"),
		result(75, "UR", "Shift 1", "North Zone"),
	}

	cur := pool[3] // UR, Shift 1, North Zone, 75
	snap := Compute(pool, &cur)

	if snap.OverallRank != 4 {
		t.Errorf("Expected overall rank 4, got %d", snap.OverallRank)
	}
	if snap.CategoryRank != 2 { // only the 90 UR is ahead
		t.Errorf("Expected category rank 2, got %d", snap.CategoryRank)
	}
	if snap.ShiftRank != 2 { // only the 90 shares Shift 1
		t.Errorf("Expected shift rank 2, got %d", snap.ShiftRank)
	}
	if snap.RegionRank != 3 { // two North Zone scores ahead
		t.Errorf("Expected region rank 3, got %d", snap.RegionRank)
	}
	if snap.RegionCategoryRank != 1 { // no North Zone UR ahead
		t.Errorf("Expected region+category rank 1, got %d", snap.RegionCategoryRank)
	}
}

func TestCompute_RegionRanksOnlyWhenApplicable(t *testing.T) {
	pool := []models.CandidateResult{
		{Board: models.BoardSSC, TotalScore: 90, Category: "UR", Shift: "Shift 1"},
		{Board: models.BoardSSC, TotalScore: 80, Category: "UR", Shift: "Shift 1"},
	}

	cur := pool[1]
	snap := Compute(pool, &cur)

	if snap.RegionRank != 0 || snap.RegionCategoryRank != 0 {
		t.Errorf("Expected zero region ranks for a board without regions, got %d/%d",
			snap.RegionRank, snap.RegionCategoryRank)
	}
}

func TestCompute_Percentile(t *testing.T) {
	tests := []struct {
		name       string
		poolScores []float64
		current    float64
		expected   string
	}{
		{"Singleton Population", []float64{50}, 50, "100.00"},
		{"Top Of Four", []float64{90, 70, 60, 50}, 90, "75.00"},
		{"Bottom Of Four", []float64{90, 70, 60, 50}, 50, "0.00"},
		{"Middle", []float64{90, 70, 60, 50}, 70, "50.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pool []models.CandidateResult
			for _, s := range tt.poolScores {
				pool = append(pool, result(s, "UR", "Shift 1", ""))
			}
			cur := result(tt.current, "UR", "Shift 1", "")
			snap := Compute(pool, &cur)
			if snap.Percentile != tt.expected {
				t.Errorf("Expected percentile %s, got %s", tt.expected, snap.Percentile)
			}
		})
	}
}
