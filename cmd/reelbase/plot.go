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
	"github.com/reelbase/reelbase/chart"
)

var plotCmd = &cobra.Command{
	Use:   "plot [movie|genre|director]",
	Short: "render a statistic as an HTML chart",
	Long:  `Render the requested statistic under the chart dir.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return plot(args[0])
	},
}

func plot(kind string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	c := catalog.NewCatalog(cfg)
	if err = c.Open(); err != nil {
		return err
	}
	path, err := chart.NewRenderer(cfg, c).Render(kind)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func init() {
	rootCmd.AddCommand(plotCmd)
}
