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
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelbase/reelbase/config"
)

func TestOpenCreatesTables(t *testing.T) {
	cfg, err := config.TestConfig(t.TempDir())
	require.NoError(t, err)
	c := NewCatalog(cfg)
	require.NoError(t, c.Open())

	movies, err := ioutil.ReadFile(cfg.MoviesPath())
	require.NoError(t, err)
	assert.Equal(t, "movie_id,title,year,genre,director_id\n", string(movies))

	directors, err := ioutil.ReadFile(cfg.DirectorsPath())
	require.NoError(t, err)
	assert.Equal(t, "director_id,given_name,last_name\n", string(directors))
}

func TestRoundTrip(t *testing.T) {
	cfg, err := config.TestConfig(t.TempDir())
	require.NoError(t, err)
	c := NewCatalog(cfg)
	require.NoError(t, c.Open())

	_, err = c.AddMovie("Alien", 1979, "Sci-Fi", "Scott, Ridley")
	require.NoError(t, err)
	_, err = c.AddMovie("Blade Runner", 1982, "Sci-Fi", "Scott, Ridley")
	require.NoError(t, err)
	_, err = c.AddMovie("The Thing", 1982, "Horror", "Carpenter, John")
	require.NoError(t, err)

	// a second catalog over the same tables sees identical records
	reopened := NewCatalog(cfg)
	require.NoError(t, reopened.Open())

	want, err := c.ExportData()
	require.NoError(t, err)
	got, err := reopened.ExportData()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	wantDirectors, err := c.Directors()
	require.NoError(t, err)
	gotDirectors, err := reopened.Directors()
	require.NoError(t, err)
	assert.Equal(t, wantDirectors, gotDirectors)
	require.Len(t, gotDirectors, 2)
	assert.Equal(t, "Scott, Ridley", gotDirectors[0].Display())
}

func TestLoadResetsWhenEitherTableMissing(t *testing.T) {
	cfg, err := config.TestConfig(t.TempDir())
	require.NoError(t, err)
	c := NewCatalog(cfg)
	require.NoError(t, c.Open())

	_, err = c.AddMovie("Alien", 1979, "Sci-Fi", "Scott, Ridley")
	require.NoError(t, err)

	// losing one table reinitializes both as empty
	require.NoError(t, os.Remove(cfg.DirectorsPath()))

	ids, err := c.SearchMovies(SearchFilter{Title: "Alien"})
	require.NoError(t, err)
	assert.Empty(t, ids)

	directors, err := c.Directors()
	require.NoError(t, err)
	assert.Empty(t, directors)
}

func TestMutationsPersistImmediately(t *testing.T) {
	cfg, err := config.TestConfig(t.TempDir())
	require.NoError(t, err)
	c := NewCatalog(cfg)
	require.NoError(t, c.Open())

	id, err := c.AddMovie("Heat", 1995, "Crime", "Mann, Michael")
	require.NoError(t, err)

	other := NewCatalog(cfg)
	require.NoError(t, other.Open())
	require.NoError(t, other.DeleteMovie(id))

	// the first instance reloads before every operation and observes
	// the delete
	assert.ErrorIs(t, c.DeleteMovie(id), ErrMovieNotFound)
}
