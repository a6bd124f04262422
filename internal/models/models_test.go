package models

import (
	"reflect"
	"strings"
	"testing"
)

// Admin deletes depend on two schema details: exam deletion must cascade
// to its results, and result deletion must be soft so the roll-number
// slot stays blocked until the cleanup purge.
func TestCandidateResultSchema(t *testing.T) {
	typ := reflect.TypeOf(CandidateResult{})

	exam, ok := typ.FieldByName("Exam")
	if !ok {
		t.Fatal("CandidateResult has no Exam association")
	}
	if !strings.Contains(exam.Tag.Get("gorm"), "OnDelete:CASCADE") {
		t.Error("Expected exam deletion to cascade to its results")
	}

	deletedAt, ok := typ.FieldByName("DeletedAt")
	if !ok {
		t.Fatal("CandidateResult has no DeletedAt column")
	}
	if deletedAt.Type.String() != "gorm.DeletedAt" {
		t.Errorf("Expected gorm soft-delete column, got %s", deletedAt.Type)
	}
}

func TestBoardHasRegion(t *testing.T) {
	tests := []struct {
		board    Board
		expected bool
	}{
		{BoardSSC, false},
		{BoardRailway, true},
		{BoardBank, true},
		{BoardOthers, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.board), func(t *testing.T) {
			if tt.board.HasRegion() != tt.expected {
				t.Errorf("Expected HasRegion=%v for %s", tt.expected, tt.board)
			}
		})
	}
}
