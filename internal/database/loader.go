// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/reelsift/internal/logging"
	"github.com/tomtom215/reelsift/internal/metrics"
	"github.com/tomtom215/reelsift/internal/models"
)

// Format is a dataset file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Column names projected from every dataset, in scan order.
const (
	ColumnTitle       = "title"
	ColumnGenres      = "genres"
	ColumnCast        = "cast"
	ColumnYear        = "year"
	ColumnDescription = "description"
	ColumnLink        = "link"
)

var projectedColumns = []string{
	ColumnTitle, ColumnGenres, ColumnCast, ColumnYear, ColumnDescription, ColumnLink,
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return FormatCSV, nil
	case ".json", ".ndjson", ".jsonl":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoaderConfig tunes the DuckDB connection.
type LoaderConfig struct {
	// Threads caps DuckDB worker threads. Zero uses runtime.NumCPU().
	Threads int

	// MaxMemory is a DuckDB memory limit such as "512MB". Empty keeps DuckDB's default.
	MaxMemory string
}

// Loader reads dataset files into raw records.
type Loader struct {
	mu     sync.RWMutex
	conn   *sql.DB
	closed bool
}

// NewLoader opens an in-memory DuckDB database for reading datasets.
func NewLoader(cfg LoaderConfig) (*Loader, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	connStr := fmt.Sprintf(":memory:?threads=%d", threads)
	if cfg.MaxMemory != "" {
		connStr += "&max_memory=" + cfg.MaxMemory
	}

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	if err := conn.Ping(); err != nil {
		closeWithLog(conn, "duckdb connection")
		return nil, fmt.Errorf("failed to connect to duckdb: %w", err)
	}

	return &Loader{conn: conn}, nil
}

// Close releases the DuckDB connection. Further loads fail with ErrClosed.
func (l *Loader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.conn.Close()
}

// Ping verifies the connection is alive.
func (l *Loader) Ping(ctx context.Context) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return ErrClosed
	}
	return l.conn.PingContext(ctx)
}

// Load reads every row of the file at path, in file order.
func (l *Loader) Load(ctx context.Context, path string) ([]models.RawRecord, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, ErrClosed
	}

	start := time.Now()
	records, err := l.load(ctx, path, format)
	metrics.RecordLoaderQuery(string(format), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	logging.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Dataset file loaded")
	return records, nil
}

func (l *Loader) load(ctx context.Context, path string, format Format) ([]models.RawRecord, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	source := sourceExpr(path, format)

	columns, err := l.columns(ctx, source)
	if err != nil {
		return nil, err
	}
	if _, ok := columns[ColumnTitle]; !ok {
		return nil, ErrMissingTitleColumn
	}

	rows, err := l.conn.QueryContext(ctx, projectionQuery(source, columns))
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var records []models.RawRecord
	for rows.Next() {
		var title, genres, cast, year, description, link sql.NullString
		if err := rows.Scan(&title, &genres, &cast, &year, &description, &link); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		rec := models.RawRecord{
			Title:       title.String,
			Genres:      nullable(genres),
			Cast:        nullable(cast),
			Description: nullable(description),
			Link:        nullable(link),
		}
		if year.Valid {
			if y, ok := ParseYear(year.String); ok {
				rec.Year = &y
			} else {
				logging.Warn().
					Str("path", path).
					Str("title", title.String).
					Str("year", year.String).
					Msg("Unparseable year, treating as missing")
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return records, nil
}

// columns maps lowercased column names of source to their original spelling.
func (l *Loader) columns(ctx context.Context, source string) (map[string]string, error) {
	rows, err := l.conn.QueryContext(ctx, "SELECT * FROM "+source+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	defer closeWithLog(rows, "rows")

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	columns := make(map[string]string, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := columns[key]; !dup {
			columns[key] = name
		}
	}
	return columns, nil
}

// sourceExpr returns the DuckDB table function reading path.
func sourceExpr(path string, format Format) string {
	lit := quoteLiteral(path)
	if format == FormatJSON {
		return "read_json_auto(" + lit + ")"
	}
	return "read_csv_auto(" + lit + ", header = true, all_varchar = true)"
}

// projectionQuery selects projectedColumns as text, substituting NULL for absent columns.
func projectionQuery(source string, columns map[string]string) string {
	exprs := make([]string, len(projectedColumns))
	for i, col := range projectedColumns {
		if name, ok := columns[col]; ok {
			exprs[i] = fmt.Sprintf("CAST(%s AS VARCHAR)", quoteIdent(name))
		} else {
			exprs[i] = "CAST(NULL AS VARCHAR)"
		}
	}
	return "SELECT " + strings.Join(exprs, ", ") + " FROM " + source
}

// ParseYear converts a year cell. Integral decimals are accepted.
func ParseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
