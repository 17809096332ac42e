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
)

var (
	// ErrDuplicateMovie is returned when a movie with the same title,
	// year, genre and director already exists.
	ErrDuplicateMovie = errors.New("movie already exists")

	// ErrMovieNotFound is returned when no movie has the given id.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrInvalidSearch is returned when a search supplies no filters.
	ErrInvalidSearch = errors.New("search requires at least one filter")

	// ErrInvalidStatistic is returned for an unknown statistic kind.
	ErrInvalidStatistic = errors.New("unknown statistic")

	// ErrDirectorFormat is returned when a director name lacks the
	// "Last, Given" separator.
	ErrDirectorFormat = errors.New(`director name must be "Last, Given"`)
)
