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
	"strings"

	"github.com/reelbase/reelbase/lib/str"
)

// AddDirector resolves a raw "Last, Given" name to a director id,
// creating the director if no existing one matches. Matching is
// case-insensitive on the normalized display form. A new director is
// persisted immediately.
func (c *Catalog) AddDirector(name string) (int, error) {
	if err := c.reload(); err != nil {
		return 0, err
	}
	return c.addDirector(name)
}

// addDirector assumes the record set is fresh.
func (c *Catalog) addDirector(name string) (int, error) {
	name = str.NormalizeSpace(name)
	name = strings.ReplaceAll(name, " ,", ",")
	i := strings.Index(name, ", ")
	if i < 0 {
		return 0, ErrDirectorFormat
	}
	last, given := name[:i], name[i+2:]

	display := strings.ToLower(name)
	for _, d := range c.directors {
		if strings.ToLower(d.Display()) == display {
			return d.DirectorID, nil
		}
	}

	id := 1
	if n := len(c.directors); n > 0 {
		id = c.directors[n-1].DirectorID + 1
	}
	c.directors = append(c.directors, Director{
		DirectorID: id,
		GivenName:  given,
		LastName:   last,
	})
	if err := c.store.writeDirectors(c.directors); err != nil {
		return 0, err
	}
	return id, nil
}

// Directors returns all known directors in creation order.
func (c *Catalog) Directors() ([]Director, error) {
	if err := c.reload(); err != nil {
		return nil, err
	}
	directors := make([]Director, len(c.directors))
	copy(directors, c.directors)
	return directors, nil
}
