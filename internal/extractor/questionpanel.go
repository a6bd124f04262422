package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var rightAnsPattern = regexp.MustCompile(`^(\d+)\.`)

// QuestionPanelExtractor handles the CBT portal layout used by railway,
// banking and most other boards: an info panel table with label/value
// rows, and one self-contained panel per question exposing the correct
// option and the candidate's chosen option.
type QuestionPanelExtractor struct {
	defaultNegative float64
}

func (e *QuestionPanelExtractor) SourceURLs(url string) []string {
	return []string{url}
}

func (e *QuestionPanelExtractor) MarkingDefaults() (float64, float64) {
	return 1, e.defaultNegative
}

func (e *QuestionPanelExtractor) MarkedOverlapsWrong() bool {
	return false
}

func (e *QuestionPanelExtractor) Extract(pages []string) (Extraction, error) {
	if len(pages) == 0 || pages[0] == "" {
		return Extraction{}, fmt.Errorf("no document to extract")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pages[0]))
	if err != nil {
		return Extraction{}, fmt.Errorf("parse document: %w", err)
	}

	info := doc.Find(".main-info-pnl table")
	meta := Metadata{
		RollNo:        ScanLabel(info, "Roll Number"),
		CandidateName: ScanLabel(info, "Candidate Name", "Participant Name"),
		TestDate:      ScanLabel(info, "Test Date"),
		Shift:         ScanLabel(info, "Test Time"),
		CentreName:    ScanLabel(info, "Test Center Name"),
	}
	if meta.CandidateName == "" {
		meta.CandidateName = "Unknown Candidate"
	}

	var sections []SectionTally
	doc.Find(".section-cntnr").Each(func(_ int, sec *goquery.Selection) {
		subject := normalizeSpace(sec.Find(".section-lbl .bold").Text())
		if subject == "" {
			subject = "General"
		}

		tally := SectionTally{Subject: subject}
		sec.Find(".question-pnl").Each(func(_ int, q *goquery.Selection) {
			switch classifyQuestion(q) {
			case outcomeRight:
				tally.Right++
			case outcomeWrong:
				tally.Wrong++
			default:
				tally.Unattempted++
			}
		})
		sections = append(sections, tally)
	})

	return Extraction{Meta: meta, Sections: sections}, nil
}

type outcome int

const (
	outcomeUnattempted outcome = iota
	outcomeRight
	outcomeWrong
)

// classifyQuestion reads one question panel. The correct option index is
// rendered with a leading "N." inside the rightAns element; the chosen
// option sits in the panel's small key-value table, where "--" or an
// empty value means the question was skipped.
func classifyQuestion(q *goquery.Selection) outcome {
	correctOption := -1
	q.Find(".rightAns").Each(func(_ int, r *goquery.Selection) {
		if m := rightAnsPattern.FindStringSubmatch(strings.TrimSpace(r.Text())); m != nil {
			correctOption, _ = strconv.Atoi(m[1])
		}
	})

	chosenOption := 0
	q.Find(".menu-tbl tr").Each(func(_ int, row *goquery.Selection) {
		tds := row.Find("td")
		if strings.Contains(tds.First().Text(), "Chosen Option") {
			val := strings.TrimSpace(tds.Eq(1).Text())
			if val != "--" && val != "" {
				chosenOption, _ = strconv.Atoi(val)
			}
		}
	})

	switch {
	case chosenOption == 0:
		return outcomeUnattempted
	case correctOption != -1 && chosenOption == correctOption:
		return outcomeRight
	default:
		return outcomeWrong
	}
}
