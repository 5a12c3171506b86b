package statement

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextReader pulls plain text out of statement files so it can be fed to
// the field detection engine. Scanned statements arrive either as PDFs
// with a text layer or as .txt dumps from an external OCR pass.
type TextReader struct {
	maxFileSize int64
	maxTextSize int
}

// NewTextReader creates a text reader with the specified constraints
func NewTextReader(maxFileSize int64) *TextReader {
	return &TextReader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ExtractTextResult describes the text recovered from one statement file
type ExtractTextResult struct {
	Content string `json:"content"`
	Path    string `json:"path"`
	Pages   int    `json:"pages"`
	Size    int64  `json:"size"`
}

// ExtractPDFText extracts the text content of a statement PDF
func (r *TextReader) ExtractPDFText(path string) (*ExtractTextResult, error) {
	fileInfo, err := r.statFile(path)
	if err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	content, err := r.extractTextContent(pdfReader)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text content: %w", err)
	}

	return &ExtractTextResult{
		Content: content,
		Path:    path,
		Pages:   pdfReader.NumPage(),
		Size:    fileInfo.Size(),
	}, nil
}

// ReadTextFile reads a plain-text OCR dump, applying the same size cap
// as PDF extraction
func (r *TextReader) ReadTextFile(path string) (*ExtractTextResult, error) {
	fileInfo, err := r.statFile(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	content := string(data)
	if len(content) > r.maxTextSize {
		content = content[:r.maxTextSize]
	}

	return &ExtractTextResult{
		Content: content,
		Path:    path,
		Pages:   1,
		Size:    fileInfo.Size(),
	}, nil
}

// statFile performs the shared existence and size checks
func (r *TextReader) statFile(path string) (os.FileInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return fileInfo, nil
}

// extractTextContent walks the PDF pages and concatenates their plain
// text, stopping at the text size cap. A page that fails to render is
// skipped so one bad page cannot sink the whole statement.
func (r *TextReader) extractTextContent(pdfReader *pdf.Reader) (string, error) {
	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		totalLength += len(content)

		// Page boundaries become line boundaries for the detector
		if pageNum < pdfReader.NumPage() {
			builder.WriteString("\n")
		}
	}

	text := builder.String()
	if text == "" {
		return "", fmt.Errorf("no text content could be extracted from PDF")
	}

	return text, nil
}
