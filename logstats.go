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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"logstats/config"
)

var version = "1.1.0"

func setupLog(levelStr string) {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("runId", uuid.New().String()).
		Logger()
}

func loadConf(path string) *config.Main {
	if path == "" {
		return config.Default()
	}
	conf, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	return conf
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Logstats - a web server access log analyzer\n\nUsage:\n\t%s [options] [action] [config.json]\n\nAvailable actions:\n\t%s\n\nWithout any arguments, the %s action is applied to ./%s\n\nOptions:\n",
			filepath.Base(os.Args[0]),
			strings.Join([]string{config.ActionAnalyze, config.ActionVersion, config.ActionHelp}, ", "),
			config.ActionAnalyze,
			config.DefaultInputPath,
		)
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "" {
		action = config.ActionAnalyze
	}

	switch action {
	case config.ActionHelp:
		help(flag.Arg(1))
	case config.ActionVersion:
		fmt.Printf("logstats %s\n", version)
	case config.ActionAnalyze:
		conf := loadConf(flag.Arg(1))
		setupLog(conf.LogLevel)
		config.Validate(conf)
		if err := runAnalyzeAction(conf, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("failed to analyze log file")
		}
	default:
		fmt.Printf("Unknown action [%s]. Try -h for help\n", action)
		os.Exit(1)
	}
}
