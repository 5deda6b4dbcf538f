// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package cli

import (
	"github.com/spf13/cobra"
)

func newCategoriesCmd(root *rootOptions) *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the genres, cast members and years of a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := root.engine()
			if err != nil {
				return err
			}
			table, err := root.table(cmd.Context(), contentType)
			if err != nil {
				return err
			}
			return root.printJSON(cmd.OutOrStdout(), engine.Categories(table))
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "movies", "Table to list: movies, series or both")
	return cmd
}

func newMoodsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List the known mood names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := root.catalog()
			if err != nil {
				return err
			}
			return root.printJSON(cmd.OutOrStdout(), catalog.Names())
		},
	}
}
