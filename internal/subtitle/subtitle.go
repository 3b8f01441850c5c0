// Package subtitle models published subtitle tracks and the deterministic
// policy for choosing one track from a catalog.
package subtitle

import "strings"

// Track is one published subtitle stream for a video part.
type Track struct {
	// Lan is the language code reported by the player API (e.g. "zh-CN",
	// "ai-zh"). Uniqueness is not guaranteed.
	Lan string
	// LanDoc is the human-readable track name (e.g. "中文（简体）").
	LanDoc string
	// URL is the fetchable location of the track body.
	URL string
}

// Preference selects which family of tracks wins when several are published.
type Preference string

const (
	// PreferAI favors machine-generated tracks (language code contains "ai").
	PreferAI Preference = "ai"
	// PreferNative favors human-authored Chinese tracks.
	PreferNative Preference = "native"
)

// ParsePreference converts user input into a known Preference.
func ParsePreference(value string) (Preference, bool) {
	switch Preference(strings.ToLower(strings.TrimSpace(value))) {
	case PreferAI:
		return PreferAI, true
	case PreferNative, "":
		return PreferNative, true
	default:
		return "", false
	}
}

// Select chooses one track from a non-empty catalog. The policy is total:
// some transcript beats none, so the first track is the definite fallback.
//
//  1. Under PreferAI, the first track whose language code contains "ai".
//  2. The first track whose display name contains 中文 or 简体, or whose
//     language code is exactly "zh-CN".
//  3. The first track.
//
// An empty catalog is the caller's concern; Select must not see one.
func Select(tracks []Track, pref Preference) Track {
	if pref == PreferAI {
		for _, t := range tracks {
			if strings.Contains(t.Lan, "ai") {
				return t
			}
		}
	}
	for _, t := range tracks {
		if strings.Contains(t.LanDoc, "中文") || strings.Contains(t.LanDoc, "简体") || t.Lan == "zh-CN" {
			return t
		}
	}
	return tracks[0]
}

// SourceTag returns the provenance label recorded for a chosen track:
// the display name, falling back to the language code, falling back to a
// generic built-in marker.
func SourceTag(t Track) string {
	if t.LanDoc != "" {
		return t.LanDoc
	}
	if t.Lan != "" {
		return t.Lan
	}
	return "内置"
}
