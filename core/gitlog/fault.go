package gitlog

import "strings"

// FaultClassifier labels commits as fault-related based on a keyword list.
// Matching is case-insensitive substring matching, which is intentionally
// high-recall: "prefix" and "fixup" both match.
type FaultClassifier struct {
	keywords []string
}

// NewFaultClassifier builds a classifier from the given keyword list.
// Keywords are lowered once up front.
func NewFaultClassifier(keywords []string) *FaultClassifier {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			lowered = append(lowered, kw)
		}
	}
	return &FaultClassifier{keywords: lowered}
}

// IsFaulty reports whether the commit message matches any fault keyword.
func (c *FaultClassifier) IsFaulty(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range c.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
