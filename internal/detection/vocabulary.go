package detection

import "strings"

// formFieldLabels is the known-label vocabulary for financial statements.
// Phrases are lowercase; matching is case-insensitive substring containment.
// The slice is built once at process start and never mutated.
var formFieldLabels = []string{
	// Account information
	"account number", "account #", "account no", "acct number", "acct #",
	"card number", "card #", "card no", "credit card number",
	"account name", "account holder", "account holder name",
	"institution", "institution name", "bank", "bank name",
	"account type", "type", "product name", "product type",
	"routing number", "routing #", "aba number",
	"iban", "swift code", "bic",

	// Statement information
	"statement date", "statement period", "period",
	"opening balance", "closing balance", "ending balance",
	"available balance", "current balance",
	"statement number", "statement #",

	// Contact information
	"address", "mailing address", "billing address",
	"phone", "phone number", "telephone",
	"email", "e-mail", "email address",
}

// synonymCluster maps label variants onto a single canonical key so that
// differently-OCR'd spellings of the same concept merge during
// deduplication. Variants match by substring containment against the
// normalized label.
type synonymCluster struct {
	canonical string
	variants  []string
}

// synonymClusters are evaluated in order; the first cluster with a
// matching variant wins. Broader variants ("bank", "type") deliberately
// come after the more specific clusters that contain them.
var synonymClusters = []synonymCluster{
	{"account number", []string{"account number", "account #", "account no", "acct number", "acct #"}},
	{"card number", []string{"card number", "card #", "card no"}},
	{"routing number", []string{"routing number", "routing #", "aba number"}},
	{"account name", []string{"account name", "account holder"}},
	{"account type", []string{"account type", "product type", "product name"}},
	{"institution", []string{"institution", "bank"}},
}

// containsKnownLabel reports whether the lowercase form of label contains
// any vocabulary phrase, returning the first phrase that matches.
func containsKnownLabel(label string) (string, bool) {
	labelLower := strings.ToLower(label)
	for _, known := range formFieldLabels {
		if strings.Contains(labelLower, known) {
			return known, true
		}
	}
	return "", false
}

// startsWithKnownLabel reports whether the lowercase form of line begins
// with a vocabulary phrase. Used to reject label lines masquerading as
// value lines in multi-line matching.
func startsWithKnownLabel(line string) bool {
	lineLower := strings.ToLower(line)
	for _, known := range formFieldLabels {
		if strings.HasPrefix(lineLower, known) {
			return true
		}
	}
	return false
}

// canonicalKey normalizes a label to its deduplication identity: trimmed,
// lowercased, and collapsed onto a synonym cluster when one matches.
func canonicalKey(label string) string {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for _, cluster := range synonymClusters {
		for _, variant := range cluster.variants {
			if strings.Contains(normalized, variant) {
				return cluster.canonical
			}
		}
	}
	return normalized
}
