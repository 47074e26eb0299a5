package ai

import (
	"regexp"
	"strconv"
	"strings"
)

// CodeSuggestion is one extracted (code, description, fee) triple.
type CodeSuggestion struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Fee         float64 `json:"fee"`
}

// suggestionRe matches lines like:
//
//	98940 - Chiropractic manipulative treatment - $45.00
//	97110: Therapeutic exercises: 35
//
// Code is a CPT-shaped token (5 alphanumerics), the fee is the last dollar
// amount on the line.
var suggestionRe = regexp.MustCompile(`(?m)^\W*([A-Z0-9]{5})\s*[-:–]\s*(.+?)\s*[-:–]\s*\$?(\d+(?:\.\d{1,2})?)\s*$`)

// ParseCodeSuggestions extracts code suggestions from the model's free-text
// reply, one candidate per line. Lines that do not match are dropped
// silently; the model output is advisory, never authoritative.
func ParseCodeSuggestions(content string) []CodeSuggestion {
	matches := suggestionRe.FindAllStringSubmatch(content, -1)
	suggestions := make([]CodeSuggestion, 0, len(matches))
	for _, m := range matches {
		fee, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		suggestions = append(suggestions, CodeSuggestion{
			Code:        m[1],
			Description: strings.TrimSpace(m[2]),
			Fee:         fee,
		})
	}
	return suggestions
}
