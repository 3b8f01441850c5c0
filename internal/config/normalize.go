package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeBilibili()
	c.normalizeYtDlp()
	c.normalizeWhisper()
	c.normalizeTranscript()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeBilibili() {
	c.Bilibili.BaseURL = strings.TrimRight(strings.TrimSpace(c.Bilibili.BaseURL), "/")
	if c.Bilibili.BaseURL == "" {
		c.Bilibili.BaseURL = defaultBilibiliBaseURL
	}
	if strings.TrimSpace(c.Bilibili.UserAgent) == "" {
		c.Bilibili.UserAgent = defaultUserAgent
	}
	if c.Bilibili.TimeoutSeconds <= 0 {
		c.Bilibili.TimeoutSeconds = defaultBilibiliTimeout
	}
}

func (c *Config) normalizeYtDlp() {
	if strings.TrimSpace(c.YtDlp.Binary) == "" {
		c.YtDlp.Binary = defaultYtDlpBinary
	}
	if strings.TrimSpace(c.YtDlp.Format) == "" {
		c.YtDlp.Format = defaultYtDlpFormat
	}
}

func (c *Config) normalizeWhisper() {
	c.Whisper.APIKey = strings.TrimSpace(c.Whisper.APIKey)
	c.Whisper.BaseURL = strings.TrimSpace(c.Whisper.BaseURL)
	if c.Whisper.BaseURL == "" {
		c.Whisper.BaseURL = defaultWhisperBaseURL
	}
	if strings.TrimSpace(c.Whisper.Model) == "" {
		c.Whisper.Model = defaultWhisperModel
	}
	c.Whisper.Language = strings.TrimSpace(c.Whisper.Language)
	if c.Whisper.TimeoutSeconds <= 0 {
		c.Whisper.TimeoutSeconds = defaultWhisperTimeout
	}
}

func (c *Config) normalizeTranscript() {
	c.Transcript.Prefer = strings.ToLower(strings.TrimSpace(c.Transcript.Prefer))
	if c.Transcript.Prefer == "" {
		c.Transcript.Prefer = defaultPrefer
	}
	if c.Transcript.Page < 0 {
		c.Transcript.Page = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
