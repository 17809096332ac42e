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
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/reelbase/reelbase/config"
	"github.com/reelbase/reelbase/lib/str"
)

// Catalog holds the movie records and the director registry. The
// backing tables are reloaded before and rewritten after every
// mutating operation; no in-memory state survives between calls.
type Catalog struct {
	config    *config.Config
	store     *store
	movies    []Movie
	directors []Director
}

func NewCatalog(config *config.Config) *Catalog {
	return &Catalog{
		config: config,
		store:  newStore(config),
	}
}

// Open creates the backing tables when absent.
func (c *Catalog) Open() error {
	return c.reload()
}

func (c *Catalog) reload() (err error) {
	c.movies, c.directors, err = c.store.load()
	return
}

// dupKey is the duplicate-detection key: the concatenation of the
// lowercased title, the year, the lowercased genre and the director
// id, with no delimiters. This matches entries across the whole tuple
// at once; in theory differently split fields can concatenate to the
// same key.
func dupKey(m Movie) string {
	return strings.ToLower(m.Title) + strconv.Itoa(m.Year) +
		strings.ToLower(m.Genre) + strconv.Itoa(m.DirectorID)
}

func (c *Catalog) isDuplicate(m Movie) bool {
	key := dupKey(m)
	for _, o := range c.movies {
		if dupKey(o) == key {
			return true
		}
	}
	return false
}

// AddMovie adds a movie, resolving the director by name, and returns
// the assigned movie id. Returns ErrDuplicateMovie when an existing
// movie has the same duplicate key.
func (c *Catalog) AddMovie(title string, year int, genre, director string) (int, error) {
	if err := c.reload(); err != nil {
		return 0, err
	}
	directorID, err := c.addDirector(director)
	if err != nil {
		return 0, err
	}
	m := Movie{
		Title:      strings.TrimSpace(title),
		Year:       year,
		Genre:      strings.TrimSpace(genre),
		DirectorID: directorID,
	}
	if len(c.movies) == 0 {
		m.MovieID = 1
	} else {
		if c.isDuplicate(m) {
			return 0, ErrDuplicateMovie
		}
		m.MovieID = c.movies[len(c.movies)-1].MovieID + 1
	}
	c.movies = append(c.movies, m)
	if err = c.store.writeMovies(c.movies); err != nil {
		return 0, err
	}
	return m.MovieID, nil
}

// AddMovies imports records in order, skipping and warning on invalid
// or duplicate entries. A record is valid when its keys are exactly
// director, genre, title and year, the first three are strings, year
// is an int, and the director contains the ", " separator. Returns
// the ids created and the warnings emitted.
func (c *Catalog) AddMovies(records []map[string]interface{}) ([]int, []string, error) {
	var movieIDs []int
	var warnings []string
	for i, record := range records {
		title, year, genre, director, ok := validMovieRecord(record)
		if !ok {
			warnings = append(warnings, fmt.Sprintf(
				"movie index %d has invalid or incomplete information, skipping", i))
			continue
		}
		id, err := c.AddMovie(title, year, genre, director)
		if errors.Is(err, ErrDuplicateMovie) {
			warnings = append(warnings, fmt.Sprintf(
				"movie %q is already in the catalog, skipping", title))
			continue
		}
		if err != nil {
			return movieIDs, warnings, err
		}
		movieIDs = append(movieIDs, id)
	}
	return movieIDs, warnings, nil
}

func validMovieRecord(record map[string]interface{}) (title string, year int, genre, director string, ok bool) {
	if len(record) != 4 {
		return
	}
	title, tok := record["title"].(string)
	year, yok := record["year"].(int)
	genre, gok := record["genre"].(string)
	director, dok := record["director"].(string)
	if !tok || !yok || !gok || !dok {
		return
	}
	if !strings.Contains(director, ", ") {
		return
	}
	ok = true
	return
}

// DeleteMovie removes the movie with the given id. Returns
// ErrMovieNotFound when no such movie exists. Directors are never
// deleted; an orphaned director is left in place.
func (c *Catalog) DeleteMovie(movieID int) error {
	if err := c.reload(); err != nil {
		return err
	}
	index := -1
	for i, m := range c.movies {
		if m.MovieID == movieID {
			index = i
			break
		}
	}
	if index < 0 {
		return ErrMovieNotFound
	}
	c.movies = append(c.movies[:index], c.movies[index+1:]...)
	return c.store.writeMovies(c.movies)
}

// SearchFilter selects movies; zero-valued fields are ignored.
type SearchFilter struct {
	Title      string
	Year       int
	Genre      string
	DirectorID int
}

func (f SearchFilter) empty() bool {
	return f.Title == "" && f.Year == 0 && f.Genre == "" && f.DirectorID == 0
}

// SearchMovies returns the ids of movies matching every supplied
// filter, in storage order. Title and genre compare trimmed and
// case-insensitive; year and director id compare exactly. At least
// one filter is required.
func (c *Catalog) SearchMovies(filter SearchFilter) ([]int, error) {
	if err := c.reload(); err != nil {
		return nil, err
	}
	if filter.empty() {
		return nil, ErrInvalidSearch
	}
	title := str.LowerTrim(filter.Title)
	genre := str.LowerTrim(filter.Genre)
	movieIDs := []int{}
	for _, m := range c.movies {
		if filter.Title != "" && strings.ToLower(m.Title) != title {
			continue
		}
		if filter.Year != 0 && m.Year != filter.Year {
			continue
		}
		if filter.Genre != "" && strings.ToLower(m.Genre) != genre {
			continue
		}
		if filter.DirectorID != 0 && m.DirectorID != filter.DirectorID {
			continue
		}
		movieIDs = append(movieIDs, m.MovieID)
	}
	return movieIDs, nil
}

// ExportData returns every movie joined with its director, ascending
// by movie id. A dangling director id yields empty name fields.
func (c *Catalog) ExportData() ([]ExportRecord, error) {
	if err := c.reload(); err != nil {
		return nil, err
	}
	movies := make([]Movie, len(c.movies))
	copy(movies, c.movies)
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].MovieID < movies[j].MovieID
	})
	byID := c.directorsByID()
	records := make([]ExportRecord, 0, len(movies))
	for _, m := range movies {
		d := byID[m.DirectorID]
		records = append(records, ExportRecord{
			Title:             m.Title,
			Year:              m.Year,
			Genre:             m.Genre,
			DirectorLastName:  d.LastName,
			DirectorGivenName: d.GivenName,
		})
	}
	return records, nil
}

func (c *Catalog) directorsByID() map[int]Director {
	byID := make(map[int]Director, len(c.directors))
	for _, d := range c.directors {
		byID[d.DirectorID] = d
	}
	return byID
}
