package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	colorCorrect = "green"
	colorWrong   = "red"
)

var sscSubjects = []string{
	"Reasoning",
	"General Awareness",
	"Quantitative Aptitude",
	"English Comprehension",
}

var candResponsePattern = regexp.MustCompile(`(?i)ViewCandResponse\d*`)

// ColorCellExtractor handles the SSC layout: the portal splits a
// candidate's answers across one page per subject, addressed by a numeric
// suffix on the same path, and pre-renders correctness as a background
// color on the answer cells. Chosen-vs-correct option pairs are not
// exposed; only the color tally is available.
type ColorCellExtractor struct {
	Subjects []string
}

func (e *ColorCellExtractor) SourceURLs(url string) []string {
	base := candResponsePattern.ReplaceAllString(url, "ViewCandResponse")
	urls := []string{base}
	for i := 2; i <= len(e.Subjects); i++ {
		urls = append(urls, candResponsePattern.ReplaceAllString(url, fmt.Sprintf("ViewCandResponse%d", i)))
	}
	return urls
}

func (e *ColorCellExtractor) MarkingDefaults() (float64, float64) {
	return 1, 0.25
}

// The marked-for-review color on SSC pages overlaps the wrong marker, so
// the raw unattempted tally double-counts wrong answers and the scorer
// must subtract them back out.
func (e *ColorCellExtractor) MarkedOverlapsWrong() bool {
	return true
}

func (e *ColorCellExtractor) Extract(pages []string) (Extraction, error) {
	if len(pages) == 0 || pages[0] == "" {
		return Extraction{}, fmt.Errorf("no document to extract")
	}

	var meta Metadata
	sections := make([]SectionTally, 0, len(pages))

	for i, page := range pages {
		tally := SectionTally{Subject: e.subjectFor(i)}
		if page == "" {
			// Missing subject page: zero questions for that subject.
			sections = append(sections, tally)
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
		if err != nil {
			return Extraction{}, fmt.Errorf("parse subject page %d: %w", i+1, err)
		}

		doc.Find("td[bgcolor]").Each(func(_ int, cell *goquery.Selection) {
			color, _ := cell.Attr("bgcolor")
			switch strings.ToLower(color) {
			case colorCorrect:
				tally.Right++
			case colorWrong:
				tally.Wrong++
			}
		})

		doc.Find("table.menu-tbl").Each(func(_ int, tbl *goquery.Selection) {
			if strings.Contains(tbl.Text(), "Not Answered") {
				tally.Unattempted++
			}
		})

		if i == 0 {
			meta = Metadata{
				RollNo:        ScanLabel(doc.Selection, "Roll No."),
				CandidateName: ScanLabel(doc.Selection, "Candidate Name"),
				TestDate:      ScanLabel(doc.Selection, "Test Date"),
				Shift:         ScanLabel(doc.Selection, "Test Time"),
				CentreName:    ScanLabel(doc.Selection, "Centre Name"),
			}
		}

		sections = append(sections, tally)
	}

	return Extraction{Meta: meta, Sections: sections}, nil
}

func (e *ColorCellExtractor) subjectFor(i int) string {
	if i < len(e.Subjects) {
		return e.Subjects[i]
	}
	return "General"
}
