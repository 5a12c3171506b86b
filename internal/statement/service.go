package statement

import "fmt"

// Service bundles the statement text components behind one interface:
// validate a file, then recover its text for field detection.
type Service struct {
	maxFileSize int64
	reader      *TextReader
	validator   *Validator
}

// NewService creates a statement service with all components
func NewService(maxFileSize int64) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		reader:      NewTextReader(maxFileSize),
		validator:   NewValidator(maxFileSize),
	}
}

// ExtractText validates a statement file and returns its text content.
// PDF files are extracted page by page; .txt files are read directly.
func (s *Service) ExtractText(path string) (*ExtractTextResult, error) {
	if err := s.validator.ValidateFile(path); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	switch {
	case IsPDFPath(path):
		return s.reader.ExtractPDFText(path)
	case IsTextPath(path):
		return s.reader.ReadTextFile(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .pdf or .txt)", path)
	}
}

// ValidateFile checks whether a statement file can be processed
func (s *Service) ValidateFile(path string) error {
	return s.validator.ValidateFile(path)
}

// GetMaxFileSize returns the maximum file size limit
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}
