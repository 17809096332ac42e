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
	"os"

	"github.com/gocarina/gocsv"

	"github.com/reelbase/reelbase/config"
)

// store reads and writes the two backing tables. Both are delimited
// text files with a header row; every write is a full rewrite.
type store struct {
	moviesPath    string
	directorsPath string
}

func newStore(config *config.Config) *store {
	return &store{
		moviesPath:    config.MoviesPath(),
		directorsPath: config.DirectorsPath(),
	}
}

// load reads both tables. If either file is missing, both are reset to
// empty header-only tables and written out immediately.
func (s *store) load() ([]Movie, []Director, error) {
	movies, err := s.readMovies()
	if err == nil {
		var directors []Director
		directors, err = s.readDirectors()
		if err == nil {
			return movies, directors, nil
		}
	}
	if !os.IsNotExist(err) {
		return nil, nil, err
	}
	movies = []Movie{}
	directors := []Director{}
	if err = s.writeMovies(movies); err != nil {
		return nil, nil, err
	}
	if err = s.writeDirectors(directors); err != nil {
		return nil, nil, err
	}
	return movies, directors, nil
}

func (s *store) readMovies() ([]Movie, error) {
	f, err := os.Open(s.moviesPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	movies := []Movie{}
	if err = gocsv.UnmarshalFile(f, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *store) writeMovies(movies []Movie) error {
	f, err := os.Create(s.moviesPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&movies, f)
}

func (s *store) readDirectors() ([]Director, error) {
	f, err := os.Open(s.directorsPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	directors := []Director{}
	if err = gocsv.UnmarshalFile(f, &directors); err != nil {
		return nil, err
	}
	return directors, nil
}

func (s *store) writeDirectors(directors []Director) error {
	f, err := os.Create(s.directorsPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&directors, f)
}
