package detection

import (
	"regexp"
	"strings"
)

var (
	nonAccountCharsRe  = regexp.MustCompile(`[^\d\s-]`)
	trailingDigitRunRe = regexp.MustCompile(`(\d{4})(?:[\s-]|$)`)
	standaloneDigitsRe = regexp.MustCompile(`\b(\d{4})\b`)
)

// ExtractAccountInfo derives a small account attribute mapping from a
// deduplicated field set. Fields are processed in slice order, so when
// two fields contribute to the same key the later one wins; callers
// needing a specific precedence should pre-sort the input.
func ExtractAccountInfo(fields []DetectedField) map[string]string {
	accountInfo := make(map[string]string)

	for _, field := range fields {
		if field.Label == "" || field.Value == "" {
			continue
		}

		key := canonicalKey(field.Label)
		switch key {
		case "account number", "card number":
			if num, ok := extractAccountNumber(field.Value); ok {
				accountInfo[AccountInfoNumber] = num
			}
		case "institution":
			accountInfo[AccountInfoInstitution] = field.Value
		case "account name":
			accountInfo[AccountInfoName] = field.Value
		case "account type":
			accountInfo[AccountInfoType] = field.Value
		default:
			// Generic "type" labels ("Type: Savings") still count as an
			// account type even though they form no synonym cluster.
			if strings.Contains(key, "type") {
				accountInfo[AccountInfoType] = field.Value
			}
		}
	}

	return accountInfo
}

// extractAccountNumber pulls a 4-digit account identifier out of a noisy
// value such as "**** **** **** 4821". Everything except digits, spaces,
// and hyphens is stripped first; a 4-digit run followed by a separator or
// the end of the string is preferred, with any standalone 4-digit run as
// the fallback. Values with no digit run contribute nothing.
func extractAccountNumber(value string) (string, bool) {
	cleaned := nonAccountCharsRe.ReplaceAllString(value, "")

	if groups := trailingDigitRunRe.FindStringSubmatch(cleaned); len(groups) > 1 {
		return groups[1], true
	}

	if groups := standaloneDigitsRe.FindStringSubmatch(cleaned); len(groups) > 1 {
		return groups[1], true
	}

	return "", false
}
