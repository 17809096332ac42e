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
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "export movies joined with directors",
	Long:  `Write the catalog as CSV to stdout, one row per movie.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return export()
	},
}

func export() error {
	c, err := openCatalog()
	if err != nil {
		return err
	}
	records, err := c.ExportData()
	if err != nil {
		return err
	}
	return gocsv.Marshal(&records, os.Stdout)
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
