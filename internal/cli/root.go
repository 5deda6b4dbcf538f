// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

// Package cli implements the reelsift command-line tool, which runs the
// same queries as the HTTP server against local dataset files.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/reelsift/internal/database"
	"github.com/tomtom215/reelsift/internal/dataset"
	"github.com/tomtom215/reelsift/internal/logging"
	"github.com/tomtom215/reelsift/internal/models"
	"github.com/tomtom215/reelsift/internal/mood"
	"github.com/tomtom215/reelsift/internal/query"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvMoviesPath  = "MOVIES_PATH"
	EnvSeriesPath  = "SERIES_PATH"
	EnvCatalogPath = "MOOD_CATALOG_PATH"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	moviesPath  string
	seriesPath  string
	catalogPath string
	logLevel    string
	compact     bool
}

// NewRootCmd builds the reelsift command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "reelsift",
		Short: "Query movie and series tables from the command line",
		Long: "reelsift loads movie and series tables from CSV or JSON files and answers\n" +
			"filter queries by genre, cast, title, year, description keywords or mood.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !logging.ValidLevel(opts.logLevel) {
				return fmt.Errorf("unknown log level %q", opts.logLevel)
			}
			logging.Init(logging.Config{
				Level:     opts.logLevel,
				Format:    "console",
				Timestamp: true,
				Output:    cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.moviesPath, "movies", "", "Movies file (default: $"+EnvMoviesPath+")")
	flags.StringVar(&opts.seriesPath, "series", "", "Series file (default: $"+EnvSeriesPath+")")
	flags.StringVar(&opts.catalogPath, "catalog", "", "Mood catalog YAML file (default: $"+EnvCatalogPath+" or built-in)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.BoolVar(&opts.compact, "compact", false, "Print JSON on a single line")

	cmd.AddCommand(newQueryCmd(opts), newCategoriesCmd(opts), newMoodsCmd(opts))
	return cmd
}

// Execute runs the command tree with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (o *rootOptions) sources() dataset.Sources {
	return dataset.Sources{
		MoviesPath: flagOrEnv(o.moviesPath, EnvMoviesPath),
		SeriesPath: flagOrEnv(o.seriesPath, EnvSeriesPath),
	}
}

func (o *rootOptions) catalog() (*mood.Catalog, error) {
	return mood.Load(flagOrEnv(o.catalogPath, EnvCatalogPath))
}

// loadSnapshot reads the source files once through DuckDB.
func (o *rootOptions) loadSnapshot(ctx context.Context) (*dataset.Snapshot, error) {
	src := o.sources()
	if src.MoviesPath == "" && src.SeriesPath == "" {
		return nil, fmt.Errorf("no dataset: set --movies or --series (or $%s / $%s)", EnvMoviesPath, EnvSeriesPath)
	}

	loader, err := database.NewLoader(database.LoaderConfig{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := loader.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing dataset loader")
		}
	}()

	reloader := dataset.NewReloader(dataset.NewStore(), loader, nil, src, dataset.ReloaderConfig{})
	return reloader.Reload(ctx)
}

// table loads the snapshot and selects the table named by contentType.
func (o *rootOptions) table(ctx context.Context, contentType string) (models.Table, error) {
	ct, err := models.ParseContentType(contentType)
	if err != nil {
		return nil, err
	}
	snap, err := o.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Table(ct)
}

func (o *rootOptions) engine() (*query.Engine, error) {
	catalog, err := o.catalog()
	if err != nil {
		return nil, err
	}
	return query.NewEngine(catalog, nil), nil
}

func (o *rootOptions) printJSON(w io.Writer, v interface{}) error {
	var (
		b   []byte
		err error
	)
	if o.compact {
		b, err = json.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func flagOrEnv(flag, env string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(env)
}
