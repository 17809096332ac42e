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
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math"

	"github.com/spf13/cobra"

	"github.com/reelbase/reelbase/lib/log"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "import movies from a JSON file",
	Long: `Import an array of movie records. Each record has the keys
title, year, genre and director. Invalid and duplicate records are
skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return importMovies(args[0])
	},
}

func importMovies(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	var records []map[string]interface{}
	if err = json.Unmarshal(data, &records); err != nil {
		return err
	}
	// JSON numbers decode as float64; integral years become ints so
	// the catalog's type validation sees what it expects.
	for _, record := range records {
		if year, ok := record["year"].(float64); ok && year == math.Trunc(year) {
			record["year"] = int(year)
		}
	}

	c, err := openCatalog()
	if err != nil {
		return err
	}
	ids, warnings, err := c.AddMovies(records)
	for _, warning := range warnings {
		log.Printf("warning: %s", warning)
	}
	if err != nil {
		return err
	}
	fmt.Printf("imported %d of %d\n", len(ids), len(records))
	return nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
