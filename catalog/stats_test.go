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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := testCatalog(t)
	movies := []struct {
		title    string
		year     int
		genre    string
		director string
	}{
		{"Alien", 1979, "Sci-Fi", "Scott, Ridley"},
		{"Blade Runner", 1982, "Sci-Fi", "Scott, Ridley"},
		{"The Thing", 1982, "Horror", "Carpenter, John"},
		{"They Live", 1988, "Sci-Fi", "Carpenter, John"},
		{"Thelma & Louise", 1991, "Drama", "Scott, Ridley"},
	}
	for _, m := range movies {
		_, err := c.AddMovie(m.title, m.year, m.genre, m.director)
		require.NoError(t, err)
	}
	return c
}

func TestMovieCountsByYear(t *testing.T) {
	c := statsCatalog(t)
	counts, err := c.MovieCountsByYear()
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1979: 1, 1982: 2, 1988: 1, 1991: 1}, counts)
}

func TestGenreCountsByYear(t *testing.T) {
	c := statsCatalog(t)
	counts, err := c.GenreCountsByYear()
	require.NoError(t, err)
	assert.Equal(t, map[string]map[int]int{
		"Sci-Fi": {1979: 1, 1982: 1, 1988: 1},
		"Horror": {1982: 1},
		"Drama":  {1991: 1},
	}, counts)
}

func TestDirectorCountsByYear(t *testing.T) {
	c := statsCatalog(t)
	counts, err := c.DirectorCountsByYear()
	require.NoError(t, err)
	assert.Equal(t, map[string]map[int]int{
		"Scott, Ridley":   {1979: 1, 1982: 1, 1991: 1},
		"Carpenter, John": {1982: 1, 1988: 1},
	}, counts)
}

func TestDirectorCountsByYearDangling(t *testing.T) {
	c := testCatalog(t)
	err := c.store.writeMovies([]Movie{
		{MovieID: 1, Title: "Orphan", Year: 2005, Genre: "Drama", DirectorID: 42},
	})
	require.NoError(t, err)

	counts, err := c.DirectorCountsByYear()
	require.NoError(t, err)
	assert.Equal(t, map[string]map[int]int{"": {2005: 1}}, counts)
}

func TestAllStatistics(t *testing.T) {
	c := statsCatalog(t)
	all, err := c.AllStatistics()
	require.NoError(t, err)

	movie, err := c.MovieCountsByYear()
	require.NoError(t, err)
	genre, err := c.GenreCountsByYear()
	require.NoError(t, err)
	director, err := c.DirectorCountsByYear()
	require.NoError(t, err)

	assert.Equal(t, movie, all.Movie)
	assert.Equal(t, genre, all.Genre)
	assert.Equal(t, director, all.Director)
}

func TestStatisticsDispatch(t *testing.T) {
	c := statsCatalog(t)
	for _, kind := range []string{StatMovie, StatGenre, StatDirector, StatAll} {
		result, err := c.Statistics(kind)
		require.NoError(t, err)
		assert.NotNil(t, result)
	}

	_, err := c.Statistics("rating")
	assert.ErrorIs(t, err, ErrInvalidStatistic)
}

func TestTitleWordFrequencies(t *testing.T) {
	c := testCatalog(t)
	_, err := c.AddMovie("The Dark Knight", 2008, "Action", "Nolan, Christopher")
	require.NoError(t, err)
	_, err = c.AddMovie("The Prestige", 2006, "Drama", "Nolan, Christopher")
	require.NoError(t, err)

	freq, err := c.TitleWordFrequencies()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"the": 2, "dark": 1, "knight": 1, "prestige": 1,
	}, freq)
}

func TestTopDirectors(t *testing.T) {
	c := statsCatalog(t)
	// one more for Carpenter to force a 3-3 tie with Scott
	_, err := c.AddMovie("Halloween", 1978, "Horror", "Carpenter, John")
	require.NoError(t, err)
	_, err = c.AddMovie("Tenet", 2020, "Sci-Fi", "Nolan, Christopher")
	require.NoError(t, err)

	top, err := c.TopDirectors(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Carpenter, John", "Scott, Ridley", "Nolan, Christopher"}, top)

	top, err = c.TopDirectors(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Carpenter, John", "Scott, Ridley"}, top)
}

func TestTopDirectorsSkipsDangling(t *testing.T) {
	c := testCatalog(t)
	err := c.store.writeMovies([]Movie{
		{MovieID: 1, Title: "Orphan", Year: 2005, Genre: "Drama", DirectorID: 42},
	})
	require.NoError(t, err)

	top, err := c.TopDirectors(5)
	require.NoError(t, err)
	assert.Empty(t, top)
}
