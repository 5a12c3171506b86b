package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ocrkit/mcp-field-detect/internal/config"
	"github.com/ocrkit/mcp-field-detect/internal/descriptions"
	"github.com/ocrkit/mcp-field-detect/internal/detection"
	"github.com/ocrkit/mcp-field-detect/internal/statement"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	detector   *detection.Detector
	statements *statement.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, detector *detection.Detector, statements *statement.Service) (*Server, error) {
	if detector == nil {
		return nil, fmt.Errorf("detector cannot be nil")
	}
	if statements == nil {
		return nil, fmt.Errorf("statement service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		detector:   detector,
		statements: statements,
		mcpServer:  mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	detectFieldsTool := mcp.NewTool(
		"detect_form_fields",
		mcp.WithDescription(descriptions.DetectFormFieldsDescription),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Raw OCR text to analyze"),
		),
	)
	s.mcpServer.AddTool(detectFieldsTool, s.handleDetectFormFields)

	detectFieldsFileTool := mcp.NewTool(
		"detect_form_fields_file",
		mcp.WithDescription(descriptions.DetectFormFieldsFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the statement file"),
		),
	)
	s.mcpServer.AddTool(detectFieldsFileTool, s.handleDetectFormFieldsFile)

	extractAccountInfoTool := mcp.NewTool(
		"extract_account_info",
		mcp.WithDescription(descriptions.ExtractAccountInfoDescription),
		mcp.WithString("fields",
			mcp.Required(),
			mcp.Description("JSON array of detected fields, as returned by detect_form_fields"),
		),
	)
	s.mcpServer.AddTool(extractAccountInfoTool, s.handleExtractAccountInfo)

	serverInfoTool := mcp.NewTool(
		"field_detect_server_info",
		mcp.WithDescription(descriptions.FieldDetectServerInfoDescription),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

func (s *Server) handleDetectFormFields(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fields, stats := s.detector.DetectFormFieldsWithStats(text)
	return mcp.NewToolResultText(s.formatDetectionResult(fields, stats)), nil
}

func (s *Server) handleDetectFormFieldsFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	extracted, err := s.statements.ExtractText(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fields, stats := s.detector.DetectFormFieldsWithStats(extracted.Content)

	responseText := fmt.Sprintf("Statement: %s (%d page(s), %d bytes)\n\n",
		extracted.Path, extracted.Pages, extracted.Size)
	responseText += s.formatDetectionResult(fields, stats)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExtractAccountInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fieldsJSON, err := request.RequireString("fields")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var fields []detection.DetectedField
	if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid fields JSON: %v", err)), nil
	}

	info := s.detector.ExtractAccountInfo(fields)
	if len(info) == 0 {
		return mcp.NewToolResultText("No account attributes could be derived from the given fields"), nil
	}

	return mcp.NewToolResultText(formatAccountInfo(info)), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := s.detector.Config()

	text := fmt.Sprintf("%s v%s\n\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Statement directory: %s\n", s.config.StatementDirectory)
	text += fmt.Sprintf("Max statement file size: %d bytes\n", s.statements.GetMaxFileSize())
	text += "\nDetection settings:\n"
	text += fmt.Sprintf("  Confidence threshold: %.2f\n", cfg.MinConfidence)
	text += fmt.Sprintf("  Max text length: %d characters\n", cfg.MaxTextLength)
	text += fmt.Sprintf("  Max lines: %d\n", cfg.MaxLines)
	text += fmt.Sprintf("  Max line length: %d characters\n", cfg.MaxLineLength)
	text += "\nTools: detect_form_fields, detect_form_fields_file, extract_account_info, field_detect_server_info\n"

	return mcp.NewToolResultText(text), nil
}

// formatDetectionResult renders detected fields, run metrics, and the
// derived account attributes as readable text.
func (s *Server) formatDetectionResult(fields []detection.DetectedField, stats detection.DetectionStats) string {
	if len(fields) == 0 {
		text := "No form fields detected"
		if stats.TextTruncated || stats.LinesTruncated {
			text += " (input was truncated to the detection bounds)"
		}
		return text + "\n"
	}

	// Detection output order is unspecified; sort by line for display
	sorted := make([]detection.DetectedField, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LineNumber < sorted[j].LineNumber
	})

	text := fmt.Sprintf("Detected %d form field(s):\n", len(sorted))
	for _, f := range sorted {
		text += fmt.Sprintf("  line %d: %s = %s (confidence %.2f)\n",
			f.LineNumber, f.Label, f.Value, f.Confidence)
	}

	if stats.TextTruncated || stats.LinesTruncated {
		text += "\nNote: input exceeded the detection bounds and was truncated\n"
	}

	if info := s.detector.ExtractAccountInfo(fields); len(info) > 0 {
		text += "\nAccount info:\n" + formatAccountInfo(info)
	}

	return text
}

func formatAccountInfo(info map[string]string) string {
	keys := make([]string, 0, len(info))
	for key := range info {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	text := ""
	for _, key := range keys {
		text += fmt.Sprintf("  %s: %s\n", key, info[key])
	}
	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting field detection MCP server in stdio mode")
		log.Printf("Statement directory: %s", s.config.StatementDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server over SSE on the configured address
func (s *Server) runServerMode(ctx context.Context) error {
	sseServer := server.NewSSEServer(s.mcpServer)

	log.Printf("Starting field detection MCP server on %s", s.config.Address())

	errCh := make(chan error, 1)
	go func() {
		errCh <- sseServer.Start(s.config.Address())
	}()

	select {
	case <-ctx.Done():
		return sseServer.Shutdown(context.Background())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve SSE: %w", err)
		}
		return nil
	}
}
