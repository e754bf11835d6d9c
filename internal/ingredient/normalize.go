// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

package ingredient

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// suffixRule rewrites a plural ending into its singular form.
type suffixRule struct {
	suffix      string
	replacement string
}

// suffixRules are checked in priority order; the first applicable rule wins.
var suffixRules = []suffixRule{
	{suffix: "ies", replacement: "y"},
	{suffix: "es", replacement: "e"},
	{suffix: "s", replacement: ""},
}

// overrides maps singularized forms onto the canonical key used by the
// recipe dataset. Every value must be a fixed point of Normalize.
var overrides = map[string]string{
	"tomato":  "tomatoes",
	"tomatoe": "tomatoes",
	"potato":  "potatoes",
	"potatoe": "potatoes",
	"leaf":    "leaves",
	"leave":   "leaves",
}

// Normalize canonicalizes a raw ingredient into a stable matching key.
//
// The key is lowercase NFC text made of letters, digits and single spaces,
// singularized by a small suffix heuristic and then mapped through the
// override table. Whitespace-only input yields "". Normalize is idempotent.
func Normalize(raw string) string {
	// Compose first so combining accents survive as part of their letter.
	s := strings.ToLower(norm.NFC.String(raw))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	// Stripping can bring composable runes together (Hangul jamo split by
	// punctuation), so the filtered text is composed again.
	key := strings.Join(strings.Fields(norm.NFC.String(b.String())), " ")
	if key == "" {
		return ""
	}

	key = singularize(key)
	if canonical, ok := overrides[key]; ok {
		return canonical
	}
	return key
}

// singularize applies the first suffix rule whose suffix is strictly shorter
// than the final word of key.
func singularize(key string) string {
	word := key[strings.LastIndexByte(key, ' ')+1:]
	for _, rule := range suffixRules {
		if len(word) <= len(rule.suffix) || !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stem := key[:len(key)-len(rule.suffix)]
		// "grass" stays "grass"; stripping would leave a new plural-looking key.
		if rule.replacement == "" && strings.HasSuffix(stem, "s") {
			return key
		}
		return stem + rule.replacement
	}
	return key
}

// ParseList splits a comma-separated ingredient string, normalizes every
// piece and returns the distinct non-empty keys in first-seen order.
func ParseList(raw string) []string {
	pieces := strings.Split(raw, ",")
	keys := make([]string, 0, len(pieces))
	seen := make(map[string]struct{}, len(pieces))
	for _, piece := range pieces {
		key := Normalize(piece)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// Set returns the distinct keys of a normalized ingredient list.
func Set(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
