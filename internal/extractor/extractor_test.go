package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/rank-matters/backend/internal/models"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestScanLabel(t *testing.T) {
	html := `<table>
		<tr><td>  Roll   Number </td><td> 1234567 </td></tr>
		<tr><td>Participant Name</td><td>A. Kumar</td></tr>
		<tr><td>Test Date</td><td>: 15/03/2025</td></tr>
		<tr><td>Test Center Name</td><td>ION Digital Zone</td></tr>
	</table>`
	doc := mustDoc(t, html)

	tests := []struct {
		name     string
		synonyms []string
		expected string
	}{
		{"Exact Label", []string{"Roll Number"}, "1234567"},
		{"Whitespace Normalized", []string{"roll number"}, "1234567"},
		{"Synonym List First Match Wins", []string{"Candidate Name", "Participant Name"}, "A. Kumar"},
		{"Leading Colon Stripped", []string{"Test Date"}, "15/03/2025"},
		{"Substring Match", []string{"Center Name"}, "ION Digital Zone"},
		{"No Match Yields Empty", []string{"Venue Code"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanLabel(doc.Selection, tt.synonyms...)
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestScanLabel_FirstMatchingCellWins(t *testing.T) {
	html := `<table>
		<tr><td>Test Time</td><td>9:00 AM - 10:00 AM</td></tr>
		<tr><td>Test Time</td><td>2:00 PM - 3:00 PM</td></tr>
	</table>`
	got := ScanLabel(mustDoc(t, html).Selection, "Test Time")
	if got != "9:00 AM - 10:00 AM" {
		t.Errorf("Expected the first occurrence, got %q", got)
	}
}

const questionPanelFixture = `
<div class="main-info-pnl"><table>
	<tr><td>Roll Number</td><td>22490108</td></tr>
	<tr><td>Candidate Name</td><td>Priya Sharma</td></tr>
	<tr><td>Test Date</td><td>12/01/2025</td></tr>
	<tr><td>Test Time</td><td>9:00 AM - 10:30 AM</td></tr>
	<tr><td>Test Center Name</td><td>Digital Zone Jaipur</td></tr>
</table></div>
<div class="section-cntnr">
	<div class="section-lbl"><span class="bold">Reasoning Ability</span></div>
	<div class="question-pnl">
		<table><tr><td class="rightAns">2. Option Text</td></tr></table>
		<table class="menu-tbl"><tr><td>Chosen Option :</td><td>2</td></tr></table>
	</div>
	<div class="question-pnl">
		<table><tr><td class="rightAns">1. Option Text</td></tr></table>
		<table class="menu-tbl"><tr><td>Chosen Option :</td><td>3</td></tr></table>
	</div>
	<div class="question-pnl">
		<table><tr><td class="rightAns">4. Option Text</td></tr></table>
		<table class="menu-tbl"><tr><td>Chosen Option :</td><td>--</td></tr></table>
	</div>
</div>
<div class="section-cntnr">
	<div class="section-lbl"></div>
	<div class="question-pnl">
		<table><tr><td class="rightAns">3. Option Text</td></tr></table>
		<table class="menu-tbl"><tr><td>Chosen Option :</td><td>3</td></tr></table>
	</div>
</div>`

func TestQuestionPanelExtractor(t *testing.T) {
	ext := &QuestionPanelExtractor{defaultNegative: 0.25}

	extraction, err := ext.Extract([]string{questionPanelFixture})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	meta := extraction.Meta
	if meta.RollNo != "22490108" {
		t.Errorf("Expected roll 22490108, got %q", meta.RollNo)
	}
	if meta.CandidateName != "Priya Sharma" {
		t.Errorf("Expected candidate name, got %q", meta.CandidateName)
	}
	if meta.Shift != "9:00 AM - 10:30 AM" {
		t.Errorf("Expected shift from Test Time, got %q", meta.Shift)
	}

	if len(extraction.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(extraction.Sections))
	}

	first := extraction.Sections[0]
	if first.Subject != "Reasoning Ability" {
		t.Errorf("Expected subject label, got %q", first.Subject)
	}
	if first.Right != 1 || first.Wrong != 1 || first.Unattempted != 1 {
		t.Errorf("Expected 1/1/1, got %d/%d/%d", first.Right, first.Wrong, first.Unattempted)
	}

	second := extraction.Sections[1]
	if second.Subject != "General" {
		t.Errorf("Expected default subject General, got %q", second.Subject)
	}
	if second.Right != 1 {
		t.Errorf("Expected 1 right in second section, got %d", second.Right)
	}
}

func TestQuestionPanelExtractor_MissingMetadata(t *testing.T) {
	html := `<div class="main-info-pnl"><table>
		<tr><td>Roll Number</td><td>777</td></tr>
	</table></div>`

	ext := &QuestionPanelExtractor{defaultNegative: 0.25}
	extraction, err := ext.Extract([]string{html})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if extraction.Meta.CandidateName != "Unknown Candidate" {
		t.Errorf("Expected fallback name, got %q", extraction.Meta.CandidateName)
	}
	if extraction.Meta.TestDate != "" || extraction.Meta.CentreName != "" {
		t.Error("Expected unmatched labels to come back empty, not fail")
	}
}

const colorCellBasePage = `
<table>
	<tr><td>Roll No.</td><td>: 9001234</td></tr>
	<tr><td>Candidate Name</td><td>: R Verma</td></tr>
	<tr><td>Test Date</td><td>: 02/02/2025</td></tr>
	<tr><td>Test Time</td><td>: 10:00 AM</td></tr>
	<tr><td>Centre Name</td><td>: Digital Zone Delhi</td></tr>
</table>
<table>
	<tr><td bgcolor="green">A</td><td bgcolor="red">B</td></tr>
	<tr><td bgcolor="GREEN">C</td><td bgcolor="#ffffff">D</td></tr>
</table>
<table class="menu-tbl"><tr><td>Status :</td><td>Not Answered</td></tr></table>
<table class="menu-tbl"><tr><td>Status :</td><td>Answered</td></tr></table>`

const colorCellSubjectPage = `
<table>
	<tr><td bgcolor="red">A</td><td bgcolor="red">B</td><td bgcolor="green">C</td></tr>
</table>`

func TestColorCellExtractor(t *testing.T) {
	ext := &ColorCellExtractor{Subjects: sscSubjects}

	extraction, err := ext.Extract([]string{colorCellBasePage, colorCellSubjectPage, "", ""})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if extraction.Meta.RollNo != "9001234" {
		t.Errorf("Expected roll 9001234, got %q", extraction.Meta.RollNo)
	}
	if extraction.Meta.CentreName != "Digital Zone Delhi" {
		t.Errorf("Expected centre name, got %q", extraction.Meta.CentreName)
	}

	if len(extraction.Sections) != 4 {
		t.Fatalf("Expected 4 sections, got %d", len(extraction.Sections))
	}

	base := extraction.Sections[0]
	if base.Subject != "Reasoning" {
		t.Errorf("Expected first subject Reasoning, got %q", base.Subject)
	}
	if base.Right != 2 || base.Wrong != 1 {
		t.Errorf("Expected 2 right / 1 wrong from color tally, got %d/%d", base.Right, base.Wrong)
	}
	if base.Unattempted != 1 {
		t.Errorf("Expected 1 Not Answered table, got %d", base.Unattempted)
	}

	second := extraction.Sections[1]
	if second.Right != 1 || second.Wrong != 2 {
		t.Errorf("Expected 1/2 on subject page, got %d/%d", second.Right, second.Wrong)
	}

	// Missing sibling pages degrade to zero-question sections.
	for i := 2; i < 4; i++ {
		sec := extraction.Sections[i]
		if sec.Right != 0 || sec.Wrong != 0 || sec.Unattempted != 0 {
			t.Errorf("Expected empty section %d for missing page, got %+v", i, sec)
		}
	}
}

func TestColorCellExtractor_SourceURLs(t *testing.T) {
	ext := ForBoard(models.BoardSSC)

	tests := []struct {
		name  string
		input string
	}{
		{"Base URL", "https://ssc.digialm.com/per/g27/pub/ViewCandResponse?x=1"},
		{"Suffixed URL Normalized", "https://ssc.digialm.com/per/g27/pub/ViewCandResponse3?x=1"},
		{"Case Insensitive", "https://ssc.digialm.com/per/g27/pub/viewcandresponse2?x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls := ext.SourceURLs(tt.input)
			if len(urls) != 4 {
				t.Fatalf("Expected 4 sibling URLs, got %d", len(urls))
			}
			expected := []string{
				"https://ssc.digialm.com/per/g27/pub/ViewCandResponse?x=1",
				"https://ssc.digialm.com/per/g27/pub/ViewCandResponse2?x=1",
				"https://ssc.digialm.com/per/g27/pub/ViewCandResponse3?x=1",
				"https://ssc.digialm.com/per/g27/pub/ViewCandResponse4?x=1",
			}
			for i, want := range expected {
				if urls[i] != want {
					t.Errorf("URL %d: expected %s, got %s", i, want, urls[i])
				}
			}
		})
	}
}

func TestForBoard(t *testing.T) {
	tests := []struct {
		board      models.Board
		negative   float64
		overlaps   bool
		singlePage bool
	}{
		{models.BoardSSC, 0.25, true, false},
		{models.BoardRailway, 1.0 / 3.0, false, true},
		{models.BoardBank, 0.25, false, true},
		{models.BoardOthers, 0.25, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.board), func(t *testing.T) {
			ext := ForBoard(tt.board)
			_, neg := ext.MarkingDefaults()
			if neg != tt.negative {
				t.Errorf("Expected default negative %v, got %v", tt.negative, neg)
			}
			if ext.MarkedOverlapsWrong() != tt.overlaps {
				t.Errorf("Expected overlap flag %v", tt.overlaps)
			}
			urls := ext.SourceURLs("https://example.com/key")
			if tt.singlePage && len(urls) != 1 {
				t.Errorf("Expected a single source URL, got %d", len(urls))
			}
		})
	}
}

func TestExtract_NoBasePage(t *testing.T) {
	for _, ext := range []Extractor{
		&QuestionPanelExtractor{defaultNegative: 0.25},
		&ColorCellExtractor{Subjects: sscSubjects},
	} {
		if _, err := ext.Extract([]string{""}); err == nil {
			t.Errorf("%T: expected error for empty base page", ext)
		}
	}
}
