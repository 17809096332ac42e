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

package catalog

import (
	"sort"
	"strings"
)

// Statistic kinds accepted by Statistics and the chart renderer.
const (
	StatMovie    = "movie"
	StatGenre    = "genre"
	StatDirector = "director"
	StatAll      = "all"
)

// Statistics bundles the three grouped counts.
type Statistics struct {
	Movie    map[int]int            `json:"movie"`
	Genre    map[string]map[int]int `json:"genre"`
	Director map[string]map[int]int `json:"director"`
}

// MovieCountsByYear counts movies per year.
func (c *Catalog) MovieCountsByYear() (map[int]int, error) {
	if err := c.reload(); err != nil {
		return nil, err
	}
	counts := make(map[int]int)
	for _, m := range c.movies {
		counts[m.Year]++
	}
	return counts, nil
}

// GenreCountsByYear counts movies per year for each distinct genre,
// keyed by the stored genre spelling.
func (c *Catalog) GenreCountsByYear() (map[string]map[int]int, error) {
	if err := c.reload(); err != nil {
		return nil, err
	}
	counts := make(map[string]map[int]int)
	for _, m := range c.movies {
		byYear := counts[m.Genre]
		if byYear == nil {
			byYear = make(map[int]int)
			counts[m.Genre] = byYear
		}
		byYear[m.Year]++
	}
	return counts, nil
}

// DirectorCountsByYear counts movies per year for each director,
// keyed by the "Last, Given" display form. Movies with a dangling
// director id group under the empty key.
func (c *Catalog) DirectorCountsByYear() (map[string]map[int]int, error) {
	if err := c.reload(); err != nil {
		return nil, err
	}
	byID := c.directorsByID()
	counts := make(map[string]map[int]int)
	for _, m := range c.movies {
		display := ""
		if d, found := byID[m.DirectorID]; found {
			display = d.Display()
		}
		byYear := counts[display]
		if byYear == nil {
			byYear = make(map[int]int)
			counts[display] = byYear
		}
		byYear[m.Year]++
	}
	return counts, nil
}

// AllStatistics bundles the movie, genre and director counts.
func (c *Catalog) AllStatistics() (*Statistics, error) {
	movie, err := c.MovieCountsByYear()
	if err != nil {
		return nil, err
	}
	genre, err := c.GenreCountsByYear()
	if err != nil {
		return nil, err
	}
	director, err := c.DirectorCountsByYear()
	if err != nil {
		return nil, err
	}
	return &Statistics{Movie: movie, Genre: genre, Director: director}, nil
}

// Statistics returns the grouped counts for the given kind. Returns
// ErrInvalidStatistic for an unrecognized kind.
func (c *Catalog) Statistics(kind string) (interface{}, error) {
	switch kind {
	case StatMovie:
		return c.MovieCountsByYear()
	case StatGenre:
		return c.GenreCountsByYear()
	case StatDirector:
		return c.DirectorCountsByYear()
	case StatAll:
		return c.AllStatistics()
	}
	return nil, ErrInvalidStatistic
}

// TitleWordFrequencies counts whitespace-delimited tokens over the
// lowercased concatenation of all titles.
func (c *Catalog) TitleWordFrequencies() (map[string]int, error) {
	if err := c.reload(); err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(c.movies))
	for _, m := range c.movies {
		titles = append(titles, m.Title)
	}
	counts := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(strings.Join(titles, " "))) {
		counts[word]++
	}
	return counts, nil
}

// TopDirectors ranks directors by total movie count descending, ties
// broken by display form ascending, and returns the first limit
// display forms. Movies with a dangling director id are excluded.
func (c *Catalog) TopDirectors(limit int) ([]string, error) {
	if err := c.reload(); err != nil {
		return nil, err
	}
	byID := c.directorsByID()
	totals := make(map[string]int)
	for _, m := range c.movies {
		if d, found := byID[m.DirectorID]; found {
			totals[d.Display()]++
		}
	}
	displays := make([]string, 0, len(totals))
	for display := range totals {
		displays = append(displays, display)
	}
	sort.Slice(displays, func(i, j int) bool {
		if totals[displays[i]] != totals[displays[j]] {
			return totals[displays[i]] > totals[displays[j]]
		}
		return displays[i] < displays[j]
	})
	if limit > 0 && len(displays) > limit {
		displays = displays[:limit]
	}
	return displays, nil
}
