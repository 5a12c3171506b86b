package statement

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator checks statement files before text extraction is attempted
type Validator struct {
	maxFileSize int64
	conf        *model.Configuration
}

// NewValidator creates a statement file validator with the specified
// constraints
func NewValidator(maxFileSize int64) *Validator {
	conf := model.NewDefaultConfiguration()
	// Scanned statements are frequently produced by sloppy generators
	conf.ValidationMode = model.ValidationRelaxed

	return &Validator{
		maxFileSize: maxFileSize,
		conf:        conf,
	}
}

// ValidateFile performs validation on a statement file. PDFs are
// additionally validated structurally; text files only get the basic
// file checks.
func (v *Validator) ValidateFile(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}
	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	if IsPDFPath(path) {
		if err := api.ValidateFile(path, v.conf); err != nil {
			return fmt.Errorf("invalid PDF file: %w", err)
		}
	}

	return nil
}

// IsValidStatementFile performs a quick check on a statement file
func (v *Validator) IsValidStatementFile(path string) bool {
	return v.ValidateFile(path) == nil
}

// IsPDFPath reports whether a path looks like a PDF file
func IsPDFPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".pdf")
}

// IsTextPath reports whether a path looks like a plain-text OCR dump
func IsTextPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".txt") || strings.HasSuffix(lower, ".text")
}
