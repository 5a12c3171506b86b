package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ocrkit/mcp-field-detect/internal/detection"
	"github.com/ocrkit/mcp-field-detect/internal/statement"
)

var (
	outputFormat  = flag.String("format", "text", "Output format: text, json")
	minConfidence = flag.Float64("minconfidence", 0.5, "Confidence threshold for detected fields")
	maxFileSize   = flag.Int64("maxfilesize", 100*1024*1024, "Maximum statement file size in bytes")
	verbose       = flag.Bool("verbose", false, "Enable verbose output")
	help          = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: statement file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	statementPath := flag.Arg(0)
	if _, err := os.Stat(statementPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", statementPath)
		os.Exit(1)
	}

	result, err := detectFields(statementPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error detecting fields: %v\n", err)
		os.Exit(1)
	}

	if err := outputResults(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Detect Fields - Detect form fields in scanned financial statements")
	fmt.Println()
	fmt.Println("This tool extracts text from a statement file (.pdf or .txt) and scans")
	fmt.Println("it for labeled form fields such as account numbers, institution names,")
	fmt.Println("and account types, then derives an account info summary from them.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format         Output format: text (default), json")
	fmt.Println("  -minconfidence  Confidence threshold for detected fields (default 0.5)")
	fmt.Println("  -maxfilesize    Maximum statement file size in bytes")
	fmt.Println("  -verbose        Enable verbose output")
	fmt.Println("  -help           Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  detect_fields statement.pdf")
	fmt.Println("  detect_fields -format json statement.txt")
	fmt.Println("  detect_fields -minconfidence 0.7 -verbose scans/checking.pdf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  detect_fields [OPTIONS] <statement_file>")
}

// DetectionResult represents the complete result of a detection run
type DetectionResult struct {
	FilePath    string                    `json:"file_path"`
	Success     bool                      `json:"success"`
	FieldCount  int                       `json:"field_count"`
	Fields      []detection.DetectedField `json:"fields"`
	AccountInfo map[string]string         `json:"account_info,omitempty"`
	Stats       detection.DetectionStats  `json:"stats"`
	Error       string                    `json:"error,omitempty"`
}

func detectFields(statementPath string) (*DetectionResult, error) {
	absPath, err := filepath.Abs(statementPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	result := &DetectionResult{
		FilePath: absPath,
		Success:  false,
	}

	statements := statement.NewService(*maxFileSize)
	extracted, err := statements.ExtractText(absPath)
	if err != nil {
		result.Error = err.Error()
		return result, nil // Don't fail, return error in result
	}

	if *verbose {
		fmt.Printf("Extracted %d characters from %d page(s)\n\n",
			len(extracted.Content), extracted.Pages)
	}

	cfg := detection.DefaultDetectionConfig()
	cfg.MinConfidence = *minConfidence
	cfg.EnableDebugMode = *verbose
	detector := detection.NewDetectorWithConfig(cfg)

	fields, stats := detector.DetectFormFieldsWithStats(extracted.Content)
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].LineNumber < fields[j].LineNumber
	})

	result.Success = true
	result.FieldCount = len(fields)
	result.Fields = fields
	result.Stats = stats
	result.AccountInfo = detector.ExtractAccountInfo(fields)

	return result, nil
}

func outputResults(result *DetectionResult) error {
	switch *outputFormat {
	case "json":
		return outputJSON(result)
	case "text":
		return outputText(result)
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func outputJSON(result *DetectionResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *DetectionResult) error {
	if !result.Success {
		fmt.Printf("Field detection failed: %s\n", result.Error)
		return nil
	}

	if result.FieldCount == 0 {
		fmt.Println("No form fields detected")
		if result.Stats.TextTruncated || result.Stats.LinesTruncated {
			fmt.Println("Note: input exceeded the detection bounds and was truncated")
		}
		return nil
	}

	fmt.Printf("Detected %d form field(s)\n\n", result.FieldCount)
	for i, field := range result.Fields {
		fmt.Printf("[%d] %s\n", i+1, field.Label)
		fmt.Printf("    Value: %s\n", field.Value)
		fmt.Printf("    Confidence: %.2f\n", field.Confidence)
		fmt.Printf("    Line: %d\n", field.LineNumber)
		fmt.Println()
	}

	if len(result.AccountInfo) > 0 {
		fmt.Println("Account info:")
		keys := make([]string, 0, len(result.AccountInfo))
		for key := range result.AccountInfo {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("  %s: %s\n", key, result.AccountInfo[key])
		}
		fmt.Println()
	}

	if *verbose {
		fmt.Printf("Lines processed: %d\n", result.Stats.LinesProcessed)
		fmt.Printf("Candidates found: %d\n", result.Stats.CandidatesFound)
		if result.Stats.TextTruncated || result.Stats.LinesTruncated {
			fmt.Println("Note: input exceeded the detection bounds and was truncated")
		}
	}

	return nil
}
