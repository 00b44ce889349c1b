// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"logstats/fsop"
)

const (
	ActionAnalyze = "analyze"
	ActionHelp    = "help"
	ActionVersion = "version"

	DefaultInputPath = "server_logs.txt"
	DefaultChartPath = "requests_per_minute.png"
	DefaultTopSize   = 10
	DefaultLogLevel  = "info"
)

// Main describes logstats' configuration. All the values have
// usable defaults so the program runs without any configuration
// file at all.
type Main struct {
	InputPath   string `json:"inputPath"`
	ChartPath   string `json:"chartPath"`
	GeoIPDbPath string `json:"geoIpDbPath"`
	LogLevel    string `json:"logLevel"`
	TopSize     int    `json:"topSize"`
}

// HasGeoIP tests whether a GeoIP database is configured. The
// country column of the top-IP table is produced only in such case.
func (c *Main) HasGeoIP() bool {
	return c.GeoIPDbPath != ""
}

func (c *Main) applyDefaults() {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.ChartPath == "" {
		c.ChartPath = DefaultChartPath
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.TopSize == 0 {
		c.TopSize = DefaultTopSize
	}
}

// Default creates a configuration equivalent to running with an
// empty config file.
func Default() *Main {
	conf := &Main{}
	conf.applyDefaults()
	return conf
}

// Load reads a JSON configuration file and fills in defaults for
// missing values.
func Load(path string) (*Main, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	var conf Main
	if err := json.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	conf.applyDefaults()
	return &conf, nil
}

// Validate checks for some essential config properties
func Validate(conf *Main) {
	if conf.TopSize < 0 {
		log.Fatal().Msgf("invalid topSize: %d", conf.TopSize)
	}
	if fsop.IsDir(conf.InputPath) {
		log.Fatal().Msgf("inputPath %s is a directory, expecting a log file", conf.InputPath)
	}
	if conf.HasGeoIP() && !fsop.IsFile(conf.GeoIPDbPath) {
		log.Fatal().Msgf("Invalid geoIpDbPath: '%s'", conf.GeoIPDbPath)
	}
}
