package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ScanLabel walks every table cell in the selection looking for one whose
// text contains any of the label synonyms (case-insensitive), and returns
// the text of the immediately following cell. First match wins. A label
// that never matches yields the empty string; callers decide which fields
// are allowed to be missing.
func ScanLabel(sel *goquery.Selection, synonyms ...string) string {
	value := ""
	sel.Find("td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		text := normalizeSpace(cell.Text())
		if text == "" {
			return true
		}
		lower := strings.ToLower(text)
		for _, syn := range synonyms {
			if strings.Contains(lower, strings.ToLower(syn)) {
				value = normalizeSpace(cell.Next().Text())
				value = strings.TrimSpace(strings.TrimPrefix(value, ":"))
				return false
			}
		}
		return true
	})
	return value
}

// normalizeSpace collapses internal whitespace runs to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
