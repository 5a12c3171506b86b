package detection

import "testing"

func TestMatchLinePatternsColonForm(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantLabel string
		wantValue string
	}{
		{"simple field", "Account Number: 1234", "Account Number", "1234"},
		{"spaced value", "Institution:   Example Bank", "Institution", "Example Bank"},
		{"lowercase label", "statement date: 2024-01-31", "statement date", "2024-01-31"},
		{"value with punctuation", "Closing Balance: $1,204.33", "Closing Balance", "$1,204.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := matchLinePatterns(tt.line, 1)
			if len(candidates) == 0 {
				t.Fatalf("Expected a candidate for %q", tt.line)
			}
			if candidates[0].label != tt.wantLabel || candidates[0].value != tt.wantValue {
				t.Errorf("Got (%q, %q), want (%q, %q)",
					candidates[0].label, candidates[0].value, tt.wantLabel, tt.wantValue)
			}
		})
	}
}

func TestMatchLinePatternsKeywordForm(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantLabel string
		wantValue string
	}{
		{"dropped colon", "Account Number 1234", "Account Number", "1234"},
		{"abbreviated label", "Acct # 1234", "Acct #", "1234"},
		{"routing number", "Routing Number 021000021", "Routing Number", "021000021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := matchLinePatterns(tt.line, 1)
			if len(candidates) == 0 {
				t.Fatalf("Expected a candidate for %q", tt.line)
			}
			if candidates[0].label != tt.wantLabel || candidates[0].value != tt.wantValue {
				t.Errorf("Got (%q, %q), want (%q, %q)",
					candidates[0].label, candidates[0].value, tt.wantLabel, tt.wantValue)
			}
		})
	}
}

func TestMatchLinePatternsRejectsNonFields(t *testing.T) {
	lines := []string{
		"",
		"plain prose without structure",
		"@@## %%&& ~~!!",
		"Account Number:", // no value after the colon
	}

	for _, line := range lines {
		if candidates := matchLinePatterns(line, 1); len(candidates) != 0 {
			t.Errorf("Expected no candidates for %q, got %+v", line, candidates)
		}
	}
}

func TestMatchMultiline(t *testing.T) {
	tests := []struct {
		name      string
		labelLine string
		valueLine string
		want      bool
	}{
		{"label and data", "Account Holder", "John Smith", true},
		{"all caps label", "ACCOUNT HOLDER", "John Smith", true},
		{"unknown label", "Random Heading", "John Smith", false},
		{"value line is a label", "Account Holder", "Account Number", false},
		{"value line ends with colon", "Account Holder", "Name:", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := matchMultiline(tt.labelLine, tt.valueLine, 1)
			if ok != tt.want {
				t.Errorf("matchMultiline(%q, %q) = %v, want %v", tt.labelLine, tt.valueLine, ok, tt.want)
			}
		})
	}
}

func TestIsValueLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"John Smith", true},
		{"4821", true},
		{"", false},
		{"   ", false},
		{"Account Number:", false},
		{"account type is savings", false}, // starts with a vocabulary phrase
	}

	for _, tt := range tests {
		if got := isValueLine(tt.line); got != tt.want {
			t.Errorf("isValueLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
