// Package deps reports the availability of external binaries the audio
// fallback path needs.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency biliscribe relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Defaults lists the external tools the audio fallback depends on. The
// ytdlpBinary argument lets configuration point at a custom executable.
func Defaults(ytdlpBinary string) []Requirement {
	if strings.TrimSpace(ytdlpBinary) == "" {
		ytdlpBinary = "yt-dlp"
	}
	return []Requirement{
		{
			Name:        "yt-dlp",
			Command:     ytdlpBinary,
			Description: "audio extraction for videos without published subtitles",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Available reports whether a single command resolves on PATH.
func Available(command string) bool {
	command = strings.TrimSpace(command)
	if command == "" {
		return false
	}
	_, err := exec.LookPath(command)
	return err == nil
}
