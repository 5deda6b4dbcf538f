// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package mood

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// keyDelim separates nested keys while a catalog file is loaded. Mood names
// may contain "." so the usual delimiter cannot be used.
const keyDelim = "::"

// DefaultEntries returns the built-in mood catalog.
func DefaultEntries() map[string]Entry {
	return map[string]Entry{
		"nature documentary": {
			Genres:              []string{"documentary"},
			DescriptionKeywords: []string{"nature", "wildlife", "environment"},
		},
		"old timer": {
			Year: "<1950",
		},
		"india": {
			DescriptionKeywords: []string{"india", "indian"},
		},
		"musical": {
			Genres: []string{"musical"},
		},
		"romantic": {
			Genres: []string{"romantic"},
		},
		"exciting": {
			Genres: []string{"action", "thriller", "adventure"},
		},
		"melancholic": {
			Genres: []string{"drama", "melancholic"},
		},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := NewCatalog(DefaultEntries())
	if err != nil {
		// The built-in entries are constants; failing here is a programming error.
		panic(fmt.Sprintf("mood: invalid built-in catalog: %v", err))
	}
	return c
}

// LoadFile reads a catalog from a YAML or JSON file. The document is a map
// from mood name to an entry with optional genres, description_keywords, and
// year fields:
//
//	old timer:
//	  year: "<1950"
//	exciting:
//	  genres: [action, thriller, adventure]
func LoadFile(path string) (*Catalog, error) {
	k := koanf.New(keyDelim)
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load mood catalog %s: %w", path, err)
	}

	entries := make(map[string]Entry)
	if err := k.Unmarshal("", &entries); err != nil {
		return nil, fmt.Errorf("failed to decode mood catalog %s: %w", path, err)
	}

	catalog, err := NewCatalog(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid mood catalog %s: %w", path, err)
	}
	return catalog, nil
}

// Load returns the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
