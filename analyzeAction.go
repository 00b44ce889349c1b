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
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"logstats/analysis"
	"logstats/config"
	"logstats/load/batch"
	"logstats/report"
	"logstats/timeseries"
)

// numEchoedLines is how many raw input lines are shown to the user
// when the whole file fails to parse.
const numEchoedLines = 3

// runAnalyzeAction performs the whole batch analysis: one pass over
// the input file, traffic aggregation, per-minute time series and
// chart output. A returned error means the input file could not be
// read at all; everything else is handled inside and the run ends
// normally.
func runAnalyzeAction(conf *config.Main, out io.Writer) error {
	rw := report.NewWriter(out)
	res, err := batch.Collect(conf.InputPath)
	if err != nil {
		return err
	}
	rw.Processing(conf.InputPath, res)
	for reject, num := range res.Rejects {
		log.Debug().
			Str("reason", reject.String()).
			Int("numLines", num).
			Msg("rejected lines")
	}
	if res.Accepted() == 0 {
		log.Warn().Str("file", conf.InputPath).Msg("no valid entries found, stopping")
		rw.NoValidEntries(batch.FirstLines(conf.InputPath, numEchoedLines))
		return nil
	}

	var geo *analysis.GeoResolver
	if conf.HasGeoIP() {
		geo, err = analysis.OpenGeoResolver(conf.GeoIPDbPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to open GeoIP database, continuing without geo data")

		} else {
			defer geo.Close()
		}
	}
	rw.Traffic(analysis.Summarize(res.Records, conf.TopSize, geo), conf.HasGeoIP())

	series, err := timeseries.Analyze(res.Records)
	if err != nil {
		if errors.Is(err, timeseries.ErrNoValidTimestamps) {
			log.Warn().Msg("skipping time analysis - no valid timestamps")
			rw.NoValidTimestamps()
			return nil
		}
		log.Error().Err(err).Msg("Could not generate time graph")
		return nil
	}
	rw.TimeDropped(series.DroppedRecords)
	if err := timeseries.RenderChart(series, conf.ChartPath); err != nil {
		// chart output is best-effort, the textual report still applies
		log.Error().Err(err).Msg("Could not generate time graph")

	} else {
		rw.ChartSaved(conf.ChartPath)
	}
	rw.PeakMinute(series.Peak())
	return nil
}
