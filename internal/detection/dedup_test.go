package detection

import "testing"

func TestDeduplicateKeepsHighestConfidence(t *testing.T) {
	fields := []DetectedField{
		{Label: "Account Number", Value: "1234", Confidence: 0.6, LineNumber: 1},
		{Label: "Account #", Value: "5678", Confidence: 0.9, LineNumber: 3},
		{Label: "acct number", Value: "9012", Confidence: 0.7, LineNumber: 5},
	}

	result := deduplicateFields(fields)
	if len(result) != 1 {
		t.Fatalf("Expected 1 field after dedup, got %d: %+v", len(result), result)
	}
	if result[0].Value != "5678" {
		t.Errorf("Expected highest-confidence field to survive, got %+v", result[0])
	}
}

func TestDeduplicateFirstWinsOnTies(t *testing.T) {
	fields := []DetectedField{
		{Label: "Account Number", Value: "first", Confidence: 0.9, LineNumber: 1},
		{Label: "Account No", Value: "second", Confidence: 0.9, LineNumber: 2},
	}

	result := deduplicateFields(fields)
	if len(result) != 1 {
		t.Fatalf("Expected 1 field after dedup, got %d", len(result))
	}
	if result[0].Value != "first" {
		t.Errorf("Expected first-encountered field to win the tie, got %+v", result[0])
	}
}

func TestDeduplicatePreservesDistinctKeys(t *testing.T) {
	fields := []DetectedField{
		{Label: "Account Number", Value: "1234", Confidence: 0.9, LineNumber: 1},
		{Label: "Institution", Value: "Example Bank", Confidence: 0.9, LineNumber: 2},
		{Label: "Statement Date", Value: "2024-01-31", Confidence: 0.9, LineNumber: 3},
	}

	result := deduplicateFields(fields)
	if len(result) != 3 {
		t.Errorf("Expected 3 distinct fields, got %d: %+v", len(result), result)
	}
}

func TestDeduplicateEmptyInput(t *testing.T) {
	if result := deduplicateFields(nil); len(result) != 0 {
		t.Errorf("Expected empty result for nil input, got %+v", result)
	}
	if result := deduplicateFields([]DetectedField{}); len(result) != 0 {
		t.Errorf("Expected empty result for empty input, got %+v", result)
	}
}

func TestCanonicalKeyClusters(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Account Number", "account number"},
		{"Account #", "account number"},
		{"account no", "account number"},
		{"Acct Number", "account number"},
		{"ACCT #", "account number"},
		{"Credit Card Number", "card number"},
		{"Card No", "card number"},
		{"Routing #", "routing number"},
		{"ABA Number", "routing number"},
		{"Account Holder Name", "account name"},
		{"Bank Name", "institution"},
		{"Institution Name", "institution"},
		{"Product Type", "account type"},
		{"Statement Date", "statement date"}, // no cluster, normalized only
		{"  Statement Date  ", "statement date"},
	}

	for _, tt := range tests {
		if got := canonicalKey(tt.label); got != tt.want {
			t.Errorf("canonicalKey(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
