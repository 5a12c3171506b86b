package detection

import (
	"regexp"
	"strings"
)

// Confidence signal weights. Each signal contributes at most its weight
// and the total is capped at 1.0.
const (
	weightKnownLabel  = 0.4 // label contains a vocabulary phrase
	weightValidValue  = 0.3 // value passes the validity check
	weightLabelFormat = 0.2 // label starts uppercase or is all caps
	weightColonLabel  = 0.1 // label carries a colon
)

var (
	labelStartsUpperRe = regexp.MustCompile(`^[A-Z]`)
	labelAllCapsRe     = regexp.MustCompile(`^[A-Z\s]+$`)
)

// calculateConfidence scores a label/value pair from four independent
// signals. The score is recomputed deterministically from the pair alone.
func calculateConfidence(label, value string) float64 {
	if label == "" || value == "" {
		return 0.0
	}

	confidence := 0.0

	if _, ok := containsKnownLabel(label); ok {
		confidence += weightKnownLabel
	}

	if isValidValue(value) {
		confidence += weightValidValue
	}

	if labelStartsUpperRe.MatchString(label) || labelAllCapsRe.MatchString(label) {
		confidence += weightLabelFormat
	}

	if strings.Contains(label, ":") {
		confidence += weightColonLabel
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// isValidValue checks that a value is plausibly field data: neither
// trivially short nor suspiciously long, and not pure whitespace.
func isValidValue(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	if len(value) < 2 || len(value) > 100 {
		return false
	}
	return true
}
