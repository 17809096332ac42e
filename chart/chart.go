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

// Package chart renders the catalog statistics as HTML charts. It
// consumes the aggregated maps the catalog exposes and is the only
// presentation-side consumer in the repo.
package chart

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/reelbase/reelbase/catalog"
	"github.com/reelbase/reelbase/config"
)

type Renderer struct {
	config  *config.Config
	catalog *catalog.Catalog
}

func NewRenderer(config *config.Config, cat *catalog.Catalog) *Renderer {
	return &Renderer{
		config:  config,
		catalog: cat,
	}
}

// Render writes the chart for the given statistic kind and returns the
// output path. Returns catalog.ErrInvalidStatistic for an unknown kind.
func (r *Renderer) Render(kind string) (string, error) {
	switch kind {
	case catalog.StatMovie:
		return r.renderMovie()
	case catalog.StatGenre:
		return r.renderGenre()
	case catalog.StatDirector:
		return r.renderDirector()
	}
	return "", catalog.ErrInvalidStatistic
}

// renderMovie draws a bar chart of movies per year, most first.
func (r *Renderer) renderMovie() (string, error) {
	counts, err := r.catalog.MovieCountsByYear()
	if err != nil {
		return "", err
	}
	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Slice(years, func(i, j int) bool {
		if counts[years[i]] != counts[years[j]] {
			return counts[years[i]] > counts[years[j]]
		}
		return years[i] < years[j]
	})

	labels := make([]string, 0, len(years))
	data := make([]opts.BarData, 0, len(years))
	for _, year := range years {
		labels = append(labels, strconv.Itoa(year))
		data = append(data, opts.BarData{Value: counts[year]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Movies per year"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "movies"}),
	)
	bar.SetXAxis(labels).AddSeries("movies", data)
	return r.write(bar.Render, "movies_by_year.html")
}

// renderGenre draws one line per genre over the years.
func (r *Renderer) renderGenre() (string, error) {
	counts, err := r.catalog.GenreCountsByYear()
	if err != nil {
		return "", err
	}
	genres := make([]string, 0, len(counts))
	for genre := range counts {
		genres = append(genres, genre)
	}
	sort.Strings(genres)

	line := newYearLine("Movies per genre")
	addYearSeries(line, genres, counts)
	return r.write(line.Render, "genres_by_year.html")
}

// renderDirector draws one line per top director over the years.
func (r *Renderer) renderDirector() (string, error) {
	counts, err := r.catalog.DirectorCountsByYear()
	if err != nil {
		return "", err
	}
	top, err := r.catalog.TopDirectors(r.config.Catalog.TopDirectorsLimit)
	if err != nil {
		return "", err
	}
	byDirector := make(map[string]map[int]int, len(top))
	for _, display := range top {
		byDirector[display] = counts[display]
	}

	line := newYearLine("Movies per director")
	addYearSeries(line, top, byDirector)
	return r.write(line.Render, "directors_by_year.html")
}

func newYearLine(title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "movies"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	return line
}

// addYearSeries plots each named group against the sorted union of
// the years present; years a group is missing count as zero.
func addYearSeries(line *charts.Line, names []string, counts map[string]map[int]int) {
	yearSet := make(map[int]bool)
	for _, name := range names {
		for year := range counts[name] {
			yearSet[year] = true
		}
	}
	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)

	labels := make([]string, 0, len(years))
	for _, year := range years {
		labels = append(labels, strconv.Itoa(year))
	}
	line.SetXAxis(labels)
	for _, name := range names {
		data := make([]opts.LineData, 0, len(years))
		for _, year := range years {
			data = append(data, opts.LineData{Value: counts[name][year]})
		}
		line.AddSeries(name, data)
	}
}

func (r *Renderer) write(render func(w io.Writer) error, name string) (string, error) {
	path := filepath.Join(r.config.Chart.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err = render(f); err != nil {
		return "", err
	}
	return path, nil
}
