// Package bvid extracts canonical Bilibili video identifiers from free-form
// input such as share links, full watch URLs, or bare BV strings.
package bvid

import "regexp"

// pattern matches a BV identifier: the literal "BV" prefix followed by at
// least one alphanumeric character.
var pattern = regexp.MustCompile(`BV[0-9A-Za-z]+`)

// Extract returns the first BV identifier found in input, scanning left to
// right. ok is false when no identifier is present.
func Extract(input string) (string, bool) {
	match := pattern.FindString(input)
	if match == "" {
		return "", false
	}
	return match, true
}
