// Package pipeline sequences transcript acquisition for one video: resolve
// the reference, resolve the content id, prefer a published subtitle track,
// and fall back to audio extraction plus transcription when none exists.
//
// The run is modeled as an explicit state machine so each terminal failure
// reason is a distinct, testable value. One invocation makes exactly one
// forward pass; there are no retries and no loops back to earlier states.
package pipeline

import "strings"

// Status represents the lifecycle of one acquisition run.
type Status string

const (
	StatusStart               Status = "start"
	StatusReferenceResolved   Status = "reference_resolved"
	StatusContentResolved     Status = "content_resolved"
	StatusSubtitleAvailable   Status = "subtitle_available"
	StatusSubtitleUnavailable Status = "subtitle_unavailable"
	StatusAudioExtracted      Status = "audio_extracted"
	StatusTranscribed         Status = "transcribed"
	StatusDone                Status = "done"
	StatusFailed              Status = "failed"
)

var allStatuses = []Status{
	StatusStart,
	StatusReferenceResolved,
	StatusContentResolved,
	StatusSubtitleAvailable,
	StatusSubtitleUnavailable,
	StatusAudioExtracted,
	StatusTranscribed,
	StatusDone,
	StatusFailed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// IsTerminal reports whether a status ends the run.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusFailed
}
