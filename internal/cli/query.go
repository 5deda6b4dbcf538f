// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/reelsift/internal/api"
	"github.com/tomtom215/reelsift/internal/filter"
	"github.com/tomtom215/reelsift/internal/logging"
	"github.com/tomtom215/reelsift/internal/models"
	"github.com/tomtom215/reelsift/internal/validation"
)

type queryOptions struct {
	genres       []string
	cast         string
	title        string
	years        []string
	description  string
	logic        string
	mood         string
	page         int
	itemsPerPage int
	contentType  string
}

func newQueryCmd(root *rootOptions) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter titles and print one page of results",
		Long: "Filter titles by genre, cast, title, year and description keywords, combined\n" +
			"with AND or OR logic. A mood replaces every other filter.",
		Example: `  reelsift query --movies movies.csv --genre drama --year 1942
  reelsift query --movies movies.csv --series series.csv --content-type both --mood "old timer"
  reelsift query --movies movies.csv --cast hepburn --title holiday --logic or`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body := opts.request(cmd)
			if verr := validation.ValidateStruct(body); verr != nil {
				return verr
			}
			req, err := body.ToFilterRequest(models.DefaultPageSize, 0)
			if err != nil {
				return err
			}

			engine, err := root.engine()
			if err != nil {
				return err
			}
			table, err := root.table(cmd.Context(), opts.contentType)
			if err != nil {
				return err
			}

			page := engine.Query(table, req)
			logging.Debug().
				Strs("dimensions", filter.Dimensions(req)).
				Int("matches", page.TotalMatches).
				Int("page", page.Page).
				Msg("Query complete")
			return root.printJSON(cmd.OutOrStdout(), page)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&opts.genres, "genre", "g", nil, "Genre substring (repeatable or comma-separated)")
	f.StringVar(&opts.cast, "cast", "", "Cast member substring")
	f.StringVarP(&opts.title, "title", "t", "", "Title substring")
	f.StringSliceVarP(&opts.years, "year", "y", nil, "Release year (repeatable or comma-separated)")
	f.StringVarP(&opts.description, "description", "d", "", "Description keywords, separated by spaces")
	f.StringVar(&opts.logic, "logic", "", "How filters combine: or (default) or and")
	f.StringVarP(&opts.mood, "mood", "m", "", "Named mood; overrides every other filter")
	f.IntVarP(&opts.page, "page", "p", 1, "Page number, starting at 1")
	f.IntVarP(&opts.itemsPerPage, "items-per-page", "n", models.DefaultPageSize, "Results per page")
	f.StringVar(&opts.contentType, "content-type", "movies", "Table to query: movies, series or both")

	return cmd
}

// request maps the flags onto the HTTP request body so both surfaces share
// validation and normalization.
func (o *queryOptions) request(cmd *cobra.Command) *api.TitlesRequest {
	body := &api.TitlesRequest{
		Genres:      o.genres,
		Cast:        o.cast,
		Title:       o.title,
		Years:       api.YearList(o.years),
		Description: o.description,
		FilterLogic: o.logic,
		Mood:        o.mood,
		ContentType: o.contentType,
	}
	if cmd.Flags().Changed("page") {
		page := o.page
		body.Page = &page
	}
	if cmd.Flags().Changed("items-per-page") {
		n := o.itemsPerPage
		body.ItemsPerPage = &n
	}
	return body
}
