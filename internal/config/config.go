package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultPort        = 8080
	DefaultHost        = "127.0.0.1"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	// Detection defaults, mirroring the engine's standard bounds
	DefaultMinConfidence = 0.5
	DefaultMaxTextLength = 10 * 1024 * 1024 // 10 MiB
	DefaultMaxLines      = 10000
	DefaultMaxLineLength = 1000

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the field detection MCP server
type Config struct {
	// Server configuration
	Mode string // "server" or "stdio"
	Host string
	Port int

	// Statement file configuration
	StatementDirectory string

	// Detection configuration
	MinConfidence float64
	MaxTextLength int
	MaxLines      int
	MaxLineLength int

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum statement file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		// Fallback to current directory if working directory cannot be determined
		currentDir = "."
	}

	return &Config{
		Mode:               ModeStdio, // Default to stdio mode for MCP compatibility
		Host:               DefaultHost,
		Port:               DefaultPort,
		StatementDirectory: currentDir,
		MinConfidence:      DefaultMinConfidence,
		MaxTextLength:      DefaultMaxTextLength,
		MaxLines:           DefaultMaxLines,
		MaxLineLength:      DefaultMaxLineLength,
		Version:            "1.0.0",
		ServerName:         "mcp-field-detect",
		LogLevel:           DefaultLogLevel,
		MaxFileSize:        DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.StatementDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.StatementDirectory); err == nil {
			cfg.StatementDirectory = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("MCP_FIELD")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("dir", cfg.StatementDirectory)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("minconfidence", cfg.MinConfidence)
	viper.SetDefault("maxtextlength", cfg.MaxTextLength)
	viper.SetDefault("maxlines", cfg.MaxLines)
	viper.SetDefault("maxlinelength", cfg.MaxLineLength)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Server mode: 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("dir", cfg.StatementDirectory, "Directory containing statement files")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum statement file size in bytes")
	pflag.Float64("minconfidence", cfg.MinConfidence, "Confidence threshold for detected fields")
	pflag.Int("maxtextlength", cfg.MaxTextLength, "Maximum OCR text length in characters")
	pflag.Int("maxlines", cfg.MaxLines, "Maximum number of lines to process")
	pflag.Int("maxlinelength", cfg.MaxLineLength, "Maximum line length fed to pattern matching")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("minconfidence", pflag.Lookup("minconfidence"))
	_ = viper.BindPFlag("maxtextlength", pflag.Lookup("maxtextlength"))
	_ = viper.BindPFlag("maxlines", pflag.Lookup("maxlines"))
	_ = viper.BindPFlag("maxlinelength", pflag.Lookup("maxlinelength"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nMCP Field Detect - A Model Context Protocol server for detecting form fields in OCR text\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                          "+
			"# stdio mode, current directory (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/statements                "+
			"# stdio mode with custom directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=server --dir=/path/to/statements  # server mode\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  MCP_FIELD_MODE           Server mode\n")
		fmt.Fprintf(os.Stderr, "  MCP_FIELD_HOST           Server host\n")
		fmt.Fprintf(os.Stderr, "  MCP_FIELD_PORT           Server port\n")
		fmt.Fprintf(os.Stderr, "  MCP_FIELD_DIR            Statement directory\n")
		fmt.Fprintf(os.Stderr, "  MCP_FIELD_LOGLEVEL       Log level\n")
		fmt.Fprintf(os.Stderr, "  MCP_FIELD_MAXFILESIZE    Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  MCP_FIELD_MINCONFIDENCE  Confidence threshold\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.StatementDirectory = viper.GetString("dir")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.MinConfidence = viper.GetFloat64("minconfidence")
	cfg.MaxTextLength = viper.GetInt("maxtextlength")
	cfg.MaxLines = viper.GetInt("maxlines")
	cfg.MaxLineLength = viper.GetInt("maxlinelength")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate mode
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	// Validate port range (only for server mode)
	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	// Validate statement directory
	if c.StatementDirectory == "" {
		return errors.New("statement directory cannot be empty")
	}

	// Check if statement directory exists, create if it doesn't
	if _, err := os.Stat(c.StatementDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.StatementDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create statement directory %s: %w", c.StatementDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access statement directory %s: %w", c.StatementDirectory, err)
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate detection bounds
	if c.MinConfidence < 0 || c.MinConfidence >= 1 {
		return errors.New("confidence threshold must be in [0, 1)")
	}
	if c.MaxTextLength <= 0 || c.MaxLines <= 0 || c.MaxLineLength <= 0 {
		return errors.New("detection bounds must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, StatementDirectory: %s, LogLevel: %s, MaxFileSize: %d, MinConfidence: %.2f}",
		c.Mode, c.Host, c.Port, c.StatementDirectory, c.LogLevel, c.MaxFileSize, c.MinConfidence)
}

// IsServerMode returns true if the server is running in HTTP server mode
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the server is running in stdio mode
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}
