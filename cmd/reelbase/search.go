// Copyright (C) 2026 The Reelbase Authors.
//
// This file is part of Reelbase.
//
// Reelbase is free software: you can redistribute it and/or modify it under
// the terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Reelbase is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Reelbase.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reelbase/reelbase/catalog"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search movies by title, year, genre or director id",
	Long:  `Search with any combination of filters; at least one is required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return search()
	},
}

var searchFilter catalog.SearchFilter

func search() error {
	c, err := openCatalog()
	if err != nil {
		return err
	}
	ids, err := c.SearchMovies(searchFilter)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func init() {
	searchCmd.Flags().StringVar(&searchFilter.Title, "title", "", "movie title")
	searchCmd.Flags().IntVar(&searchFilter.Year, "year", 0, "release year")
	searchCmd.Flags().StringVar(&searchFilter.Genre, "genre", "", "genre")
	searchCmd.Flags().IntVar(&searchFilter.DirectorID, "director-id", 0, "director id")
	rootCmd.AddCommand(searchCmd)
}
