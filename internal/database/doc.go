// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

// Package database reads title datasets from CSV and JSON files through an
// in-memory DuckDB connection.
//
// # Formats
//
// The format is chosen by file extension:
//   - .csv, .tsv: read_csv_auto with a header row; every column is read as text
//   - .json, .ndjson, .jsonl: read_json_auto
//
// # Columns
//
// Column names are matched case-insensitively against title, genres, cast,
// year, description, and link. Only title is required; any other missing
// column reads as NULL for every row. Values are cast to text, so a JSON list
// of genres arrives as "[drama, comedy]" and the bracket and comma handling
// of the normalize package turns it into ordinary tokens.
//
// Years are parsed from their text form. Integral floats such as "1999.0"
// are accepted; anything else becomes NULL and is logged.
//
// # Usage
//
//	loader, err := database.NewLoader(database.LoaderConfig{})
//	if err != nil {
//	    return err
//	}
//	defer loader.Close()
//
//	raw, err := loader.Load(ctx, "data/movies.csv")
//
// Loader satisfies dataset.Loader and is safe for concurrent use.
package database
