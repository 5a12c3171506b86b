package detection

import "testing"

func TestExtractAccountInfo(t *testing.T) {
	fields := []DetectedField{
		{Label: "Account Number", Value: "1234", Confidence: 0.9, LineNumber: 1},
		{Label: "Institution", Value: "Example Bank", Confidence: 0.9, LineNumber: 2},
		{Label: "Account Holder", Value: "John Smith", Confidence: 0.9, LineNumber: 3},
		{Label: "Account Type", Value: "Checking", Confidence: 0.9, LineNumber: 4},
	}

	info := ExtractAccountInfo(fields)

	want := map[string]string{
		AccountInfoNumber:      "1234",
		AccountInfoInstitution: "Example Bank",
		AccountInfoName:        "John Smith",
		AccountInfoType:        "Checking",
	}
	for key, value := range want {
		if info[key] != value {
			t.Errorf("Expected %s=%q, got %q", key, value, info[key])
		}
	}
}

func TestExtractAccountInfoGenericTypeLabel(t *testing.T) {
	fields := []DetectedField{
		{Label: "Type", Value: "Savings", Confidence: 0.9, LineNumber: 1},
	}

	info := ExtractAccountInfo(fields)
	if info[AccountInfoType] != "Savings" {
		t.Errorf("Expected accountType 'Savings', got %q", info[AccountInfoType])
	}
}

func TestExtractAccountInfoCardNumber(t *testing.T) {
	fields := []DetectedField{
		{Label: "Card Number", Value: "**** **** **** 4821", Confidence: 0.9, LineNumber: 1},
	}

	info := ExtractAccountInfo(fields)
	if info[AccountInfoNumber] != "4821" {
		t.Errorf("Expected accountNumber '4821', got %q", info[AccountInfoNumber])
	}
}

func TestExtractAccountInfoOmitsUnextractableNumber(t *testing.T) {
	fields := []DetectedField{
		{Label: "Account Number", Value: "not available", Confidence: 0.9, LineNumber: 1},
	}

	info := ExtractAccountInfo(fields)
	if _, ok := info[AccountInfoNumber]; ok {
		t.Errorf("Expected accountNumber to be omitted, got %q", info[AccountInfoNumber])
	}
}

func TestExtractAccountInfoLastWriteWins(t *testing.T) {
	fields := []DetectedField{
		{Label: "Bank", Value: "First Bank", Confidence: 0.9, LineNumber: 1},
		{Label: "Institution", Value: "Second Bank", Confidence: 0.8, LineNumber: 2},
	}

	info := ExtractAccountInfo(fields)
	if info[AccountInfoInstitution] != "Second Bank" {
		t.Errorf("Expected later field to win, got %q", info[AccountInfoInstitution])
	}
}

func TestExtractAccountInfoEmptyInput(t *testing.T) {
	if info := ExtractAccountInfo(nil); len(info) != 0 {
		t.Errorf("Expected empty map for nil input, got %+v", info)
	}
}

func TestExtractAccountNumber(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
		found bool
	}{
		{"masked card", "**** **** **** 4821", "4821", true},
		{"hyphen separated", "1234-5678-9012", "1234", true},
		{"plain digits", "12345678", "5678", true},
		{"digits with noise", "Acct ending in 9876.", "9876", true},
		{"short run only", "123", "", false},
		{"no digits", "not available", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractAccountNumber(tt.value)
			if found != tt.found || got != tt.want {
				t.Errorf("extractAccountNumber(%q) = (%q, %v), want (%q, %v)",
					tt.value, got, found, tt.want, tt.found)
			}
		})
	}
}
