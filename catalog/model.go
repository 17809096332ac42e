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

type Movie struct {
	MovieID    int    `csv:"movie_id"`
	Title      string `csv:"title"`
	Year       int    `csv:"year"`
	Genre      string `csv:"genre"`
	DirectorID int    `csv:"director_id"`
}

type Director struct {
	DirectorID int    `csv:"director_id"`
	GivenName  string `csv:"given_name"`
	LastName   string `csv:"last_name"`
}

// Display is the "Last, Given" form. It is derived on demand and never
// persisted; identity is DirectorID.
func (d Director) Display() string {
	return d.LastName + ", " + d.GivenName
}

// ExportRecord is a movie joined with its director for export.
type ExportRecord struct {
	Title             string `csv:"title"`
	Year              int    `csv:"year"`
	Genre             string `csv:"genre"`
	DirectorLastName  string `csv:"director_last_name"`
	DirectorGivenName string `csv:"director_given_name"`
}
