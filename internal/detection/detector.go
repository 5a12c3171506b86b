package detection

import (
	"log"
	"strings"
)

// Detector turns noisy OCR text into scored label/value fields. It holds
// only immutable configuration and the process-wide pattern tables, so a
// single Detector is safe for concurrent use; every call is a pure,
// synchronous computation over its input.
type Detector struct {
	config  DetectionConfig
	version string
}

// NewDetector creates a detector with the default configuration
func NewDetector() *Detector {
	return NewDetectorWithConfig(DefaultDetectionConfig())
}

// NewDetectorWithConfig creates a detector with a custom configuration.
// Unset bounds fall back to their defaults so a partially filled config
// cannot disable the input caps.
func NewDetectorWithConfig(config DetectionConfig) *Detector {
	defaults := DefaultDetectionConfig()
	if config.MaxTextLength <= 0 {
		config.MaxTextLength = defaults.MaxTextLength
	}
	if config.MaxLines <= 0 {
		config.MaxLines = defaults.MaxLines
	}
	if config.MaxLineLength <= 0 {
		config.MaxLineLength = defaults.MaxLineLength
	}
	if config.MinConfidence <= 0 {
		config.MinConfidence = defaults.MinConfidence
	}

	return &Detector{
		config:  config,
		version: "1.0.0",
	}
}

// DetectFormFields runs the full detection pipeline on raw OCR text:
// sanitize, match patterns, score, and deduplicate. Bad input degrades
// the result instead of failing; absent or blank input yields an empty
// field list.
func (d *Detector) DetectFormFields(rawText string) []DetectedField {
	fields, _ := d.DetectFormFieldsWithStats(rawText)
	return fields
}

// DetectFormFieldsWithStats is DetectFormFields plus run metrics.
func (d *Detector) DetectFormFieldsWithStats(rawText string) ([]DetectedField, DetectionStats) {
	var stats DetectionStats

	lines := d.sanitizeText(rawText, &stats)
	if len(lines) == 0 {
		return []DetectedField{}, stats
	}

	if d.config.EnableDebugMode {
		log.Printf("Detecting form fields from %d lines of OCR text", len(lines))
	}

	// nextValue[i] is the index of the first non-blank line after i, or
	// -1. Precomputed so blank-line-separated fields cost a single pass
	// regardless of how the blanks are distributed.
	nextValue := make([]int, len(lines))
	next := -1
	for i := len(lines) - 1; i >= 0; i-- {
		nextValue[i] = next
		if strings.TrimSpace(lines[i]) != "" {
			next = i
		}
	}

	var fields []DetectedField
	for i := range lines {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		line = d.truncateLine(line)
		stats.LinesProcessed++

		for _, cand := range matchLinePatterns(line, i+1) {
			stats.CandidatesFound++
			if field, ok := d.scoreCandidate(cand); ok {
				fields = append(fields, field)
			}
		}

		if j := nextValue[i]; j >= 0 {
			valueLine := d.truncateLine(strings.TrimSpace(lines[j]))
			if cand, ok := matchMultiline(line, valueLine, i+1); ok {
				stats.CandidatesFound++
				if field, ok := d.scoreCandidate(cand); ok {
					fields = append(fields, field)
				}
			}
		}
	}

	deduped := deduplicateFields(fields)
	stats.FieldsDetected = len(deduped)

	if d.config.EnableDebugMode {
		log.Printf("Detected %d form fields from OCR text", len(deduped))
	}

	return deduped, stats
}

// ExtractAccountInfo derives canonical account attributes from a field
// set. It is callable independently of DetectFormFields, e.g. on fields
// detected in an earlier run.
func (d *Detector) ExtractAccountInfo(fields []DetectedField) map[string]string {
	return ExtractAccountInfo(fields)
}

// Version returns the detector version
func (d *Detector) Version() string {
	return d.version
}

// Config returns the current configuration
func (d *Detector) Config() DetectionConfig {
	return d.config
}

// scoreCandidate turns a candidate into a DetectedField when its
// confidence clears the retention threshold.
func (d *Detector) scoreCandidate(cand candidate) (DetectedField, bool) {
	confidence := calculateConfidence(cand.label, cand.value)
	if confidence <= d.config.MinConfidence {
		return DetectedField{}, false
	}

	if d.config.EnableDebugMode {
		log.Printf("Detected form field at line %d: %s = %s (confidence: %.2f)",
			cand.lineNumber, cand.label, cand.value, confidence)
	}

	return DetectedField{
		Label:      cand.label,
		Value:      cand.value,
		Confidence: confidence,
		LineNumber: cand.lineNumber,
	}, true
}
