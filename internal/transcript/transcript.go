// Package transcript defines the canonical timed-segment representation and
// normalizes the two upstream payload shapes (player subtitle JSON and
// speech-to-text results) into it. The orchestrator and renderer only ever
// see this package's types; they never learn which source produced the data.
package transcript

import "strings"

// Segment is one timed unit of transcript text. Slice order is chronological
// and load-bearing for rendering.
type Segment struct {
	// Start is the offset of the segment in seconds, never negative.
	Start float64
	// End is the segment end offset in seconds, >= Start.
	End float64
	// Text is the trimmed segment text, possibly empty.
	Text string
}

// Source records transcript provenance. It is carried through to the
// rendered document and never inferred at render time.
type Source struct {
	tag string
	ai  bool
}

// aiSourceTag is the rendered label for machine-transcribed output.
const aiSourceTag = "AI转写"

// SourceSubtitle tags a transcript as coming from a published track.
func SourceSubtitle(tag string) Source {
	return Source{tag: tag}
}

// SourceTranscription tags a transcript as machine-generated from audio.
func SourceTranscription() Source {
	return Source{tag: aiSourceTag, ai: true}
}

// Tag returns the label written into the output document.
func (s Source) Tag() string {
	return s.tag
}

// IsTranscription reports whether the transcript was produced by
// speech-to-text rather than a published track.
func (s Source) IsTranscription() bool {
	return s.ai
}

// SubtitleBody is the decoded shape of a fetched track body.
type SubtitleBody struct {
	Body []SubtitleEntry `json:"body"`
}

// SubtitleEntry is one cue within a track body. All fields are optional on
// the wire; absent values default rather than error.
type SubtitleEntry struct {
	From    float64 `json:"from"`
	To      float64 `json:"to"`
	Content string  `json:"content"`
}

// FromSubtitleBody converts a fetched track body into ordered segments.
// Missing numerics default to zero and text is trimmed; a nil or empty body
// yields an empty slice. Once a payload has been obtained, a degraded
// transcript beats no transcript.
func FromSubtitleBody(body SubtitleBody) []Segment {
	segments := make([]Segment, 0, len(body.Body))
	for _, entry := range body.Body {
		segments = append(segments, Segment{
			Start: entry.From,
			End:   entry.To,
			Text:  strings.TrimSpace(entry.Content),
		})
	}
	return segments
}

// FromTranscriptionText converts a speech-to-text result into a single
// untimed segment. Per-segment timing is not available from this source, so
// start and end are both zero and downstream rendering must not read meaning
// into them. Blank input yields an empty slice.
func FromTranscriptionText(text string) []Segment {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	return []Segment{{Start: 0, End: 0, Text: trimmed}}
}
