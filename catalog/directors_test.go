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

func TestAddDirectorFindOrCreate(t *testing.T) {
	c := testCatalog(t)

	id, err := c.AddDirector("Smith, John")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = c.AddDirector("smith, john")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	directors, err := c.Directors()
	require.NoError(t, err)
	require.Len(t, directors, 1)
	assert.Equal(t, "Smith", directors[0].LastName)
	assert.Equal(t, "John", directors[0].GivenName)
}

func TestAddDirectorNormalization(t *testing.T) {
	c := testCatalog(t)

	id, err := c.AddDirector("Nolan, Christopher")
	require.NoError(t, err)

	// whitespace runs collapse and the space before the comma drops
	same, err := c.AddDirector("  Nolan  ,   Christopher ")
	require.NoError(t, err)
	assert.Equal(t, id, same)

	directors, err := c.Directors()
	require.NoError(t, err)
	assert.Len(t, directors, 1)
}

func TestAddDirectorFormat(t *testing.T) {
	c := testCatalog(t)
	_, err := c.AddDirector("Christopher Nolan")
	assert.ErrorIs(t, err, ErrDirectorFormat)
}

func TestAddDirectorIDsMonotonic(t *testing.T) {
	c := testCatalog(t)
	names := []string{"Scott, Ridley", "Cameron, James", "Carpenter, John"}
	for i, name := range names {
		id, err := c.AddDirector(name)
		require.NoError(t, err)
		assert.Equal(t, i+1, id)
	}

	directors, err := c.Directors()
	require.NoError(t, err)
	require.Len(t, directors, 3)
	for i, d := range directors {
		assert.Equal(t, i+1, d.DirectorID)
	}
}

func TestDirectorDisplay(t *testing.T) {
	d := Director{DirectorID: 1, GivenName: "Ridley", LastName: "Scott"}
	assert.Equal(t, "Scott, Ridley", d.Display())
}

func TestDirectorSurvivesMovieDeletion(t *testing.T) {
	c := testCatalog(t)
	id, err := c.AddMovie("Alien", 1979, "Sci-Fi", "Scott, Ridley")
	require.NoError(t, err)
	require.NoError(t, c.DeleteMovie(id))

	directors, err := c.Directors()
	require.NoError(t, err)
	assert.Len(t, directors, 1)
}
