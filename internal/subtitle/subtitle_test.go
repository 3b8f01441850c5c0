package subtitle

import "testing"

func TestSelectPrefersAITrack(t *testing.T) {
	tracks := []Track{
		{Lan: "zh-CN", LanDoc: "中文（简体）", URL: "https://example.com/zh"},
		{Lan: "ai-zh", LanDoc: "中文（自动生成）", URL: "https://example.com/ai"},
	}
	got := Select(tracks, PreferAI)
	if got.Lan != "ai-zh" {
		t.Fatalf("expected ai track, got %q", got.Lan)
	}
}

func TestSelectAIPreferenceFallsThroughWithoutAITrack(t *testing.T) {
	tracks := []Track{
		{Lan: "en-US", LanDoc: "English"},
		{Lan: "zh-CN", LanDoc: "中文（简体）"},
	}
	got := Select(tracks, PreferAI)
	if got.Lan != "zh-CN" {
		t.Fatalf("expected chinese track after ai fallthrough, got %q", got.Lan)
	}
}

func TestSelectNativeChineseByDisplayName(t *testing.T) {
	tracks := []Track{
		{Lan: "en-US", LanDoc: "English"},
		{Lan: "ja", LanDoc: "日本語"},
		{Lan: "zh-Hans", LanDoc: "简体中文"},
	}
	got := Select(tracks, PreferNative)
	if got.Lan != "zh-Hans" {
		t.Fatalf("expected 简体 track regardless of position, got %q", got.Lan)
	}
}

func TestSelectNativeChineseByExactCode(t *testing.T) {
	tracks := []Track{
		{Lan: "en-US", LanDoc: "English"},
		{Lan: "zh-CN", LanDoc: ""},
	}
	got := Select(tracks, PreferNative)
	if got.Lan != "zh-CN" {
		t.Fatalf("expected zh-CN track, got %q", got.Lan)
	}
}

func TestSelectFallsBackToFirstTrack(t *testing.T) {
	tracks := []Track{
		{Lan: "en-US", LanDoc: "English"},
		{Lan: "ja", LanDoc: "日本語"},
	}
	for _, pref := range []Preference{PreferAI, PreferNative} {
		got := Select(tracks, pref)
		if got.Lan != "en-US" {
			t.Fatalf("pref %q: expected first track fallback, got %q", pref, got.Lan)
		}
	}
}

func TestSelectAISubstringIsCaseSensitive(t *testing.T) {
	// "AI-zh" does not contain the lowercase substring "ai"; with the AI
	// track second, the first-track fallback must win.
	tracks := []Track{
		{Lan: "en", LanDoc: "English"},
		{Lan: "AI-zh", LanDoc: "uppercase"},
	}
	got := Select(tracks, PreferAI)
	if got.Lan != "en" {
		t.Fatalf("expected case-sensitive match to skip AI-zh, got %q", got.Lan)
	}
}

func TestParsePreference(t *testing.T) {
	cases := []struct {
		input string
		want  Preference
		ok    bool
	}{
		{"ai", PreferAI, true},
		{"native", PreferNative, true},
		{" Native ", PreferNative, true},
		{"", PreferNative, true},
		{"bogus", "", false},
	}
	for _, tc := range cases {
		got, ok := ParsePreference(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParsePreference(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSourceTag(t *testing.T) {
	if got := SourceTag(Track{Lan: "zh-CN", LanDoc: "中文（简体）"}); got != "中文（简体）" {
		t.Fatalf("expected display name, got %q", got)
	}
	if got := SourceTag(Track{Lan: "zh-CN"}); got != "zh-CN" {
		t.Fatalf("expected language code fallback, got %q", got)
	}
	if got := SourceTag(Track{}); got != "内置" {
		t.Fatalf("expected built-in marker, got %q", got)
	}
}
