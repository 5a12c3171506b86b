package detection

import (
	"regexp"
	"strings"
)

// labelValuePattern is one bounded expression that proposes a label/value
// candidate from a single line. Label fragments are capped at 200
// characters and value fragments at 500, evaluated non-greedily, so no
// line can force excessive work out of the matcher.
type labelValuePattern struct {
	name    string
	pattern *regexp.Regexp
}

// inlinePatterns are applied to each sanitized line in fixed priority
// order. The keyword form covers OCR output that dropped the colon,
// e.g. "Account Number 1234".
var inlinePatterns = []labelValuePattern{
	{
		name:    "inline_colon",
		pattern: regexp.MustCompile(`(?i)([A-Z][^:\n]{0,200}?):\s*([^\n]{0,500})`),
	},
	{
		name:    "inline_keyword",
		pattern: regexp.MustCompile(`(?i)((?:account|acct|card|institution|bank|statement|balance|routing|iban|swift|phone|email|address)[^\d:]{0,100}?)\s+(\d{4,20}|[A-Z0-9]{8,30})`),
	},
}

// candidate is a proposed field before scoring
type candidate struct {
	label      string
	value      string
	lineNumber int
}

// matchLinePatterns runs every inline pattern against one sanitized line
// and returns the candidates that produced a non-empty label and value.
// A failure inside the regex engine counts as no match for that pattern
// on that line; it never aborts the detection run.
func matchLinePatterns(line string, lineNumber int) []candidate {
	var candidates []candidate
	for _, lvp := range inlinePatterns {
		label, value, ok := applyPattern(lvp.pattern, line)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{
			label:      label,
			value:      value,
			lineNumber: lineNumber,
		})
	}
	return candidates
}

// applyPattern evaluates a single pattern against a line, converting any
// matcher-level panic into a plain non-match.
func applyPattern(pattern *regexp.Regexp, line string) (label, value string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			label, value, ok = "", "", false
		}
	}()

	groups := pattern.FindStringSubmatch(line)
	if len(groups) < 3 {
		return "", "", false
	}

	label = strings.TrimSpace(groups[1])
	value = strings.TrimSpace(groups[2])
	if label == "" || value == "" {
		return "", "", false
	}

	return label, value, true
}

// matchMultiline proposes a candidate from a label line and the value
// line that follows it, covering both the "Label\nValue" form and the
// "Label\n\nValue" form with blank lines in between. The label line must
// contain a vocabulary phrase and the value line must independently look
// like data, otherwise two stacked labels would chain together.
func matchMultiline(labelLine, valueLine string, lineNumber int) (candidate, bool) {
	if _, ok := containsKnownLabel(labelLine); !ok {
		return candidate{}, false
	}
	if !isValueLine(valueLine) {
		return candidate{}, false
	}

	return candidate{
		label:      strings.TrimSpace(labelLine),
		value:      strings.TrimSpace(valueLine),
		lineNumber: lineNumber,
	}, true
}

// isValueLine reports whether a line looks like field data rather than
// another label. Lines ending with a colon or starting with a vocabulary
// phrase are labels.
func isValueLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(strings.ToLower(trimmed), ":") {
		return false
	}
	return !startsWithKnownLabel(trimmed)
}
