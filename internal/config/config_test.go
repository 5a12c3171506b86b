package config

import (
	"os"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != "stdio" {
		t.Errorf("Expected default mode to be 'stdio', got '%s'", cfg.Mode)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}

	if cfg.ServerName != "mcp-field-detect" {
		t.Errorf("Expected default server name to be 'mcp-field-detect', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	if cfg.MinConfidence != 0.5 {
		t.Errorf("Expected default confidence threshold to be 0.5, got %f", cfg.MinConfidence)
	}

	if cfg.MaxTextLength != 10*1024*1024 || cfg.MaxLines != 10000 || cfg.MaxLineLength != 1000 {
		t.Errorf("Unexpected default detection bounds: %+v", cfg)
	}

	currentDir, _ := os.Getwd()
	if cfg.StatementDirectory != currentDir {
		t.Errorf("Expected default statement directory to be '%s', got '%s'", currentDir, cfg.StatementDirectory)
	}
}

func validTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.StatementDirectory = t.TempDir()
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config - stdio mode",
			mutate: func(c *Config) {},
		},
		{
			name: "valid config - server mode",
			mutate: func(c *Config) {
				c.Mode = "server"
			},
		},
		{
			name: "invalid mode",
			mutate: func(c *Config) {
				c.Mode = "invalid"
			},
			wantErr: "mode must be",
		},
		{
			name: "invalid port - too low (server mode)",
			mutate: func(c *Config) {
				c.Mode = "server"
				c.Port = 0
			},
			wantErr: "port must be",
		},
		{
			name: "invalid port - too high (server mode)",
			mutate: func(c *Config) {
				c.Mode = "server"
				c.Port = 70000
			},
			wantErr: "port must be",
		},
		{
			name: "invalid port ignored in stdio mode",
			mutate: func(c *Config) {
				c.Port = 0
			},
		},
		{
			name: "empty statement directory",
			mutate: func(c *Config) {
				c.StatementDirectory = ""
			},
			wantErr: "statement directory",
		},
		{
			name: "non-positive max file size",
			mutate: func(c *Config) {
				c.MaxFileSize = 0
			},
			wantErr: "file size must be positive",
		},
		{
			name: "negative confidence threshold",
			mutate: func(c *Config) {
				c.MinConfidence = -0.1
			},
			wantErr: "confidence threshold",
		},
		{
			name: "confidence threshold of 1 rejects everything",
			mutate: func(c *Config) {
				c.MinConfidence = 1.0
			},
			wantErr: "confidence threshold",
		},
		{
			name: "non-positive max lines",
			mutate: func(c *Config) {
				c.MaxLines = 0
			},
			wantErr: "detection bounds",
		},
		{
			name: "non-positive max line length",
			mutate: func(c *Config) {
				c.MaxLineLength = -1
			},
			wantErr: "detection bounds",
		},
		{
			name: "invalid log level",
			mutate: func(c *Config) {
				c.LogLevel = "verbose"
			},
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected config to be valid, got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestConfigValidateCreatesMissingDirectory(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.StatementDirectory = cfg.StatementDirectory + "/nested/statements"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected missing directory to be created, got: %v", err)
	}
	if _, err := os.Stat(cfg.StatementDirectory); err != nil {
		t.Errorf("Expected directory to exist after validation: %v", err)
	}
}

func TestConfigAddress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host = "0.0.0.0"
	cfg.Port = 9090

	if got := cfg.Address(); got != "0.0.0.0:9090" {
		t.Errorf("Expected address '0.0.0.0:9090', got '%s'", got)
	}
}

func TestConfigModeHelpers(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.IsStdioMode() || cfg.IsServerMode() {
		t.Error("Expected default config to be in stdio mode")
	}

	cfg.Mode = ModeServer
	if cfg.IsStdioMode() || !cfg.IsServerMode() {
		t.Error("Expected config to be in server mode")
	}

	cfg.LogLevel = "debug"
	if !cfg.IsDebug() {
		t.Error("Expected IsDebug to be true for debug log level")
	}
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.String()

	if !strings.Contains(s, "stdio") || !strings.Contains(s, "127.0.0.1") {
		t.Errorf("Expected string representation to include mode and host, got %q", s)
	}
}
