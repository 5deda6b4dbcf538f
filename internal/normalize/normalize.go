// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

// Package normalize canonicalizes free-text genre and cast values.
//
// Cleaning removes the characters ' & [ ] anywhere in the value, trims the
// surrounding whitespace, lowercases, and composes the result to Unicode NFC.
// Genre values are then looked up in a synonym table so that spellings such as
// "Sci-Fi" and "SciFi" collapse to "science fiction". Unknown values pass
// through unchanged; the vocabulary is open.
//
// Every function in this package is pure and idempotent:
//
//	normalize.Genre(normalize.Genre(x)) == normalize.Genre(x)
package normalize

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Separator joins normalized tokens in stored genre and cast text.
const Separator = ","

// stripper removes the punctuation that never survives normalization.
var stripper = strings.NewReplacer("'", "", "&", "", "[", "", "]", "")

// defaultGenreSynonyms maps cleaned genre spellings to their canonical form.
// Every canonical form maps to itself.
var defaultGenreSynonyms = map[string]string{
	"sci-fi":          "science fiction",
	"scifi":           "science fiction",
	"science fiction": "science fiction",
	"rom-com":         "romantic comedy",
	"romantic comedy": "romantic comedy",
}

// Normalizer cleans genre and cast values with a fixed synonym table.
// A Normalizer is read-only after construction and safe for concurrent use.
type Normalizer struct {
	synonyms map[string]string
}

// defaultNormalizer backs the package-level helpers.
var defaultNormalizer = New(nil)

// Default returns the normalizer built from the default synonym table.
func Default() *Normalizer {
	return defaultNormalizer
}

// New builds a Normalizer from the default synonym table extended with extra.
//
// Keys and values of extra are cleaned before insertion and each canonical
// value is registered as its own synonym, so Genre stays idempotent even when
// an extra entry points at a spelling that is itself a key.
func New(extra map[string]string) *Normalizer {
	synonyms := make(map[string]string, len(defaultGenreSynonyms)+2*len(extra))
	for k, v := range defaultGenreSynonyms {
		synonyms[k] = v
	}

	// Sorted so that conflicting entries resolve the same way on every run.
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := Clean(k)
		target := Clean(extra[k])
		if key == "" || target == "" {
			continue
		}
		if canonical, ok := synonyms[target]; ok {
			target = canonical
		}
		synonyms[key] = target
		synonyms[target] = target
	}

	// Re-point chains (a -> b, b -> c) at their final target.
	for k, v := range synonyms {
		synonyms[k] = resolve(synonyms, v)
	}

	return &Normalizer{synonyms: synonyms}
}

func resolve(synonyms map[string]string, v string) string {
	for i := 0; i < len(synonyms); i++ {
		next, ok := synonyms[v]
		if !ok || next == v {
			return v
		}
		v = next
	}
	return v
}

// Clean removes ' & [ ], trims whitespace, lowercases, and composes to NFC.
func Clean(raw string) string {
	s := stripper.Replace(raw)
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return norm.NFC.String(s)
}

// Genre returns the canonical form of one genre token.
func (n *Normalizer) Genre(raw string) string {
	cleaned := Clean(raw)
	if canonical, ok := n.synonyms[cleaned]; ok {
		return canonical
	}
	return cleaned
}

// Cast returns the canonical form of one cast-member token.
func (n *Normalizer) Cast(raw string) string {
	return Clean(raw)
}

// Synonyms returns a copy of the synonym table.
func (n *Normalizer) Synonyms() map[string]string {
	out := make(map[string]string, len(n.synonyms))
	for k, v := range n.synonyms {
		out[k] = v
	}
	return out
}

// Genre normalizes a genre token with the default synonym table.
func Genre(raw string) string {
	return defaultNormalizer.Genre(raw)
}

// Cast normalizes a cast-member token.
func Cast(raw string) string {
	return defaultNormalizer.Cast(raw)
}

// Fragment prepares user-supplied search text (cast, title, description,
// mood) for substring matching: trimmed, lowercased, and NFC composed.
// Punctuation is kept.
func Fragment(raw string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(raw)))
}

// Tokens splits stored genre or cast text into its tokens.
func Tokens(text string) []string {
	return strings.Split(text, Separator)
}

// Field normalizes every comma-separated token of a raw field with fn and
// rejoins them in order.
func Field(raw string, fn func(string) string) string {
	parts := Tokens(raw)
	for i, p := range parts {
		parts[i] = fn(p)
	}
	return strings.Join(parts, Separator)
}
