// Package ytdlp wraps the yt-dlp command-line downloader for the audio
// fallback path.
package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	defaultBinary = "yt-dlp"
	// defaultFormat selects the best available audio-only stream.
	defaultFormat = "ba"
	// outputTemplate keys downloaded files by the video identifier.
	outputTemplate = "%(id)s.%(ext)s"
)

// Client defines audio extraction behaviour.
type Client interface {
	DownloadAudio(ctx context.Context, videoURL, destDir string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithFormat overrides the default audio format selector.
func WithFormat(format string) Option {
	return func(c *CLI) {
		if format != "" {
			c.format = format
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) Option {
	return func(c *CLI) {
		c.commandRunner = runner
	}
}

// CLI wraps the yt-dlp command-line downloader.
type CLI struct {
	binary        string
	format        string
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: defaultBinary, format: defaultFormat}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Binary returns the configured executable name.
func (c *CLI) Binary() string {
	return c.binary
}

// DownloadAudio extracts the best audio stream for videoURL into destDir.
// Downloaded files are named by the video identifier with their native
// container extension.
func (c *CLI) DownloadAudio(ctx context.Context, videoURL, destDir string) error {
	if strings.TrimSpace(videoURL) == "" {
		return errors.New("video url required")
	}
	if strings.TrimSpace(destDir) == "" {
		return errors.New("destination directory required")
	}
	args := []string{
		"-f", c.format,
		"-o", filepath.Join(destDir, outputTemplate),
		videoURL,
	}
	return c.run(ctx, c.binary, args...)
}

func (c *CLI) run(ctx context.Context, name string, args ...string) error {
	if c.commandRunner != nil {
		return c.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
