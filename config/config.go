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

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type CatalogConfig struct {
	MoviesFile        string
	DirectorsFile     string
	TopDirectorsLimit int
}

type ChartConfig struct {
	Dir string
}

type Config struct {
	DataDir string
	Catalog CatalogConfig
	Chart   ChartConfig
}

// MoviesPath is the movies table location within the data dir.
func (c *Config) MoviesPath() string {
	return filepath.Join(c.DataDir, c.Catalog.MoviesFile)
}

// DirectorsPath is the directors table location within the data dir.
func (c *Config) DirectorsPath() string {
	return filepath.Join(c.DataDir, c.Catalog.DirectorsFile)
}

func configDefaults(v *viper.Viper) {
	v.SetDefault("DataDir", ".")

	v.SetDefault("Catalog.MoviesFile", "movies.csv")
	v.SetDefault("Catalog.DirectorsFile", "directors.csv")
	v.SetDefault("Catalog.TopDirectorsLimit", "5")

	v.SetDefault("Chart.Dir", ".")
}

func readConfig(v *viper.Viper) (*Config, error) {
	var config Config
	var pathRegexp = regexp.MustCompile(`dir$`)
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// no config file, defaults apply
	} else {
		// relative dirs are resolved against the config file location
		dir := filepath.Dir(v.ConfigFileUsed())
		for _, k := range v.AllKeys() {
			if pathRegexp.MatchString(k) {
				val := v.Get(k)
				if strings.HasPrefix(val.(string), "/") == false {
					val = fmt.Sprintf("%s/%s", dir, val.(string))
					v.Set(k, val)
				}
			}
		}
	}
	err = v.Unmarshal(&config)
	return &config, err
}

// TestConfig returns a default config rooted at the given directory.
func TestConfig(dir string) (*Config, error) {
	v := viper.New()
	configDefaults(v)
	v.SetDefault("DataDir", dir)
	v.SetDefault("Chart.Dir", dir)
	return readConfig(v)
}

var configFile, configPath, configName string

func SetConfigFile(path string) {
	configFile = path
}

func AddConfigPath(path string) {
	configPath = path
}

func SetConfigName(name string) {
	configName = name
}

func GetConfig() (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName != "" {
		v.SetConfigName(configName)
	}
	configDefaults(v)
	return readConfig(v)
}
