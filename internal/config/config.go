// Package config loads, normalizes, and validates biliscribe configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the OPENAI_API_KEY environment
// fallback for the transcription credential. Always obtain settings through
// this package so downstream code receives sanitized paths and canonical
// values.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// OutputDir receives the rendered transcript documents. Extracted audio
	// is staged in an "audio" subdirectory underneath it.
	OutputDir string `toml:"output_dir"`
}

// Bilibili contains configuration for the Bilibili web API.
type Bilibili struct {
	BaseURL        string `toml:"base_url"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// YtDlp contains configuration for the audio-extraction tool.
type YtDlp struct {
	Binary string `toml:"binary"`
	Format string `toml:"format"`
}

// Whisper contains configuration for the transcription service.
type Whisper struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	Language       string `toml:"language"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Transcript contains defaults for the acquisition run itself.
type Transcript struct {
	// Page is the zero-based part index for multi-part videos.
	Page int `toml:"page"`
	// Prefer selects between "ai" and "native" subtitle tracks.
	Prefer string `toml:"prefer"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for biliscribe.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Bilibili   Bilibili   `toml:"bilibili"`
	YtDlp      YtDlp      `toml:"ytdlp"`
	Whisper    Whisper    `toml:"whisper"`
	Transcript Transcript `toml:"transcript"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/biliscribe/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("biliscribe.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// AudioDir returns the staging directory for extracted audio.
func (c *Config) AudioDir() string {
	return filepath.Join(c.Paths.OutputDir, "audio")
}

// ResolveAPIKey applies the credential precedence: explicit flag value,
// then the config file, then the OPENAI_API_KEY environment variable.
func (c *Config) ResolveAPIKey(flagValue string) string {
	if key := strings.TrimSpace(flagValue); key != "" {
		return key
	}
	if key := strings.TrimSpace(c.Whisper.APIKey); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
