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
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [movie id]",
	Short: "delete a movie by id",
	Long:  `Delete the movie with the given id. The director stays.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteMovie(args[0])
	},
}

func deleteMovie(arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return err
	}
	c, err := openCatalog()
	if err != nil {
		return err
	}
	return c.DeleteMovie(id)
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
