package detection

import (
	"log"
	"strings"
)

// sanitizeText bounds raw OCR text for safe pattern matching: the total
// length, the line count, and (separately, at match time) the per-line
// length are each capped independently. Oversized input is truncated
// with a warning, never rejected.
func (d *Detector) sanitizeText(raw string, stats *DetectionStats) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	if len(raw) > d.config.MaxTextLength {
		log.Printf("Warning: OCR text too large: %d characters, truncating to %d", len(raw), d.config.MaxTextLength)
		raw = raw[:d.config.MaxTextLength]
		stats.TextTruncated = true
	}

	lines := strings.Split(raw, "\n")
	if len(lines) > d.config.MaxLines {
		log.Printf("Warning: too many lines: %d, limiting to first %d", len(lines), d.config.MaxLines)
		lines = lines[:d.config.MaxLines]
		stats.LinesTruncated = true
	}

	return lines
}

// truncateLine caps a single line before it reaches the regex engine.
// The patterns carry their own length bounds as well.
func (d *Detector) truncateLine(line string) string {
	if len(line) > d.config.MaxLineLength {
		return line[:d.config.MaxLineLength]
	}
	return line
}
