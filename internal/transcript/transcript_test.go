package transcript

import (
	"encoding/json"
	"testing"
)

func TestFromSubtitleBody(t *testing.T) {
	raw := `{"body":[{"content":"大家好","from":0,"to":1},{"content":"欢迎观看视频","from":1,"to":3}]}`
	var body SubtitleBody
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}

	segments := FromSubtitleBody(body)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Text != "大家好" {
		t.Fatalf("first segment text = %q", segments[0].Text)
	}
	if segments[1].End != 3.0 {
		t.Fatalf("second segment end = %v, want 3.0", segments[1].End)
	}
}

func TestFromSubtitleBodyDefaultsMissingFields(t *testing.T) {
	raw := `{"body":[{"content":"  只有文本  "},{"from":2.5,"to":4}]}`
	var body SubtitleBody
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}

	segments := FromSubtitleBody(body)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Start != 0 || segments[0].End != 0 {
		t.Fatalf("missing timings should default to zero, got %+v", segments[0])
	}
	if segments[0].Text != "只有文本" {
		t.Fatalf("text should be trimmed, got %q", segments[0].Text)
	}
	if segments[1].Text != "" {
		t.Fatalf("missing content should default to empty, got %q", segments[1].Text)
	}
}

func TestFromSubtitleBodyEmpty(t *testing.T) {
	if segments := FromSubtitleBody(SubtitleBody{}); len(segments) != 0 {
		t.Fatalf("empty body should normalize to no segments, got %d", len(segments))
	}
}

func TestFromTranscriptionText(t *testing.T) {
	segments := FromTranscriptionText("hello world")
	if len(segments) != 1 {
		t.Fatalf("expected exactly one segment, got %d", len(segments))
	}
	seg := segments[0]
	if seg.Start != 0 || seg.End != 0 {
		t.Fatalf("transcription segments carry no timing, got %+v", seg)
	}
	if seg.Text != "hello world" {
		t.Fatalf("segment text = %q", seg.Text)
	}
}

func TestFromTranscriptionTextBlank(t *testing.T) {
	if segments := FromTranscriptionText("   \n  "); len(segments) != 0 {
		t.Fatalf("blank text should normalize to no segments, got %d", len(segments))
	}
}

func TestSourceTags(t *testing.T) {
	native := SourceSubtitle("中文（简体）")
	if native.Tag() != "中文（简体）" || native.IsTranscription() {
		t.Fatalf("unexpected native source: %+v", native)
	}
	ai := SourceTranscription()
	if ai.Tag() != "AI转写" || !ai.IsTranscription() {
		t.Fatalf("unexpected transcription source: %+v", ai)
	}
}
