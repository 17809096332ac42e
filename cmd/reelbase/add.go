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
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "add a movie to the catalog",
	Long:  `Add a single movie. The director is "Last, Given".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return add()
	},
}

var addTitle string
var addYear int
var addGenre string
var addDirector string

func add() error {
	c, err := openCatalog()
	if err != nil {
		return err
	}
	id, err := c.AddMovie(addTitle, addYear, addGenre, addDirector)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "movie title")
	addCmd.Flags().IntVar(&addYear, "year", 0, "release year")
	addCmd.Flags().StringVar(&addGenre, "genre", "", "genre")
	addCmd.Flags().StringVar(&addDirector, "director", "", `director as "Last, Given"`)
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("year")
	addCmd.MarkFlagRequired("genre")
	addCmd.MarkFlagRequired("director")
	rootCmd.AddCommand(addCmd)
}
