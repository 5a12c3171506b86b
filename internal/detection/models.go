package detection

// DetectedField represents a single label/value pair recognized in OCR text
type DetectedField struct {
	// Label is the field name as it appeared in the text, trimmed, case preserved
	Label string `json:"label"`

	// Value is the data associated with the label, trimmed
	Value string `json:"value"`

	// Confidence is a heuristic score in [0.0, 1.0], not a calibrated probability
	Confidence float64 `json:"confidence"`

	// LineNumber is the 1-based line in the (possibly truncated) input
	LineNumber int `json:"line_number"`
}

// Account info keys produced by ExtractAccountInfo
const (
	AccountInfoNumber      = "accountNumber"
	AccountInfoInstitution = "institutionName"
	AccountInfoName        = "accountName"
	AccountInfoType        = "accountType"
)

// DetectionConfig provides configuration for the field detector
type DetectionConfig struct {
	// Input bounds, applied independently as defense layers
	MaxTextLength int `json:"max_text_length"` // total characters before truncation
	MaxLines      int `json:"max_lines"`       // lines kept after splitting
	MaxLineLength int `json:"max_line_length"` // characters per line fed to patterns

	// MinConfidence is the retention threshold; candidates must score
	// strictly above it to survive
	MinConfidence float64 `json:"min_confidence"`

	// Debug and logging
	EnableDebugMode bool `json:"enable_debug_mode"`
}

// DetectionStats provides metrics about a single detection run
type DetectionStats struct {
	LinesProcessed  int  `json:"lines_processed"`
	CandidatesFound int  `json:"candidates_found"`
	FieldsDetected  int  `json:"fields_detected"`
	TextTruncated   bool `json:"text_truncated"`
	LinesTruncated  bool `json:"lines_truncated"`
}

// DefaultDetectionConfig returns a detection configuration with the
// standard input bounds and retention threshold
func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		MaxTextLength: 10 * 1024 * 1024, // 10 MiB
		MaxLines:      10000,
		MaxLineLength: 1000,
		MinConfidence: 0.5,
	}
}
