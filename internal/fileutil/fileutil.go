// Package fileutil provides small filesystem helpers shared by the pipeline
// and the CLI.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// audioExtensions are the file suffixes recognized as extracted audio.
var audioExtensions = []string{".m4a", ".mp3", ".aac", ".wav"}

// EnsureDir creates dir (and parents) when it does not already exist.
func EnsureDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("ensure dir: empty path")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// AudioFiles returns the recognized audio files directly inside dir, sorted
// by name so callers pick deterministically.
func AudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isAudioName(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func isAudioName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range audioExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
