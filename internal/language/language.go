// Package language normalizes language hints for the transcription request.
//
// Configuration may spell the hint as an ISO 639-1 code ("zh"), an ISO 639-2
// code ("zho"), a regioned tag ("zh-CN"), or a plain word ("chinese"); the
// transcription endpoint wants bare ISO 639-1. Conversions are consolidated
// here so the whisper client and the CLI agree on the mapping.
package language

import "strings"

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "chi" vs "zho")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "chinese")
}

var languages = []entry{
	{"zh", "zho", "chi", "Chinese", []string{"chinese"}},
	{"en", "eng", "", "English", []string{"english"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"es", "spa", "", "Spanish", []string{"spanish"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
}

var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	// Strip a region subtag: "zh-CN" and "zh_TW" both resolve as "zh".
	if idx := strings.IndexAny(code, "-_"); idx > 0 {
		code = code[:idx]
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// ToISO2 converts a recognized language code, tag, or word to ISO 639-1.
// Unrecognized 2-letter codes pass through; anything else yields "".
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e := lookup(code); e != nil {
		return e.code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName returns a human-readable name for a recognized code, or the
// uppercased input when unknown.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}
