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

// Package report renders the human-readable analysis summary.
// Everything is written to a single io.Writer so tests can capture
// the output and assert its determinism.

package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/czcorpus/cnc-gokit/datetime"

	"logstats/analysis"
	"logstats/load/batch"
	"logstats/timeseries"
)

// Writer produces the console report of a single analysis run.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Processing prints the line-level statistics of the file pass.
func (rw *Writer) Processing(path string, res *batch.Result) {
	fmt.Fprintf(rw.w, "\nAnalyzing log file: %s\n", path)
	fmt.Fprintf(rw.w, "\nProcessing report:\n")
	fmt.Fprintf(rw.w, "- Total lines scanned: %d\n", res.TotalLines)
	fmt.Fprintf(rw.w, "- Valid entries found: %d\n", res.Accepted())
	fmt.Fprintf(rw.w, "- Malformed lines: %d\n", res.Rejected())
}

// NoValidEntries explains a run where nothing could be parsed and
// echoes a sample of the input so the user can compare their data
// with the expected format.
func (rw *Writer) NoValidEntries(firstLines []string) {
	fmt.Fprintf(rw.w, "\nERROR: No valid entries parsed. Please check:\n")
	fmt.Fprintf(rw.w, "1. Your log format matches exactly the expected pattern\n")
	fmt.Fprintf(rw.w, "2. There are no empty or corrupted lines\n")
	fmt.Fprintf(rw.w, "\nFirst %d lines of your file:\n", len(firstLines))
	for i, line := range firstLines {
		fmt.Fprintf(rw.w, "%d: %s\n", i+1, line)
	}
}

// Traffic prints the aggregated traffic and performance statistics.
func (rw *Writer) Traffic(sum *analysis.TrafficSummary, withCountry bool) {
	fmt.Fprintf(rw.w, "\n=== Traffic Analysis ===\n")
	fmt.Fprintf(rw.w, "Total requests: %d\n", sum.TotalRequests)
	fmt.Fprintf(rw.w, "Unique IPs: %d\n", sum.UniqueIPs)

	fmt.Fprintf(rw.w, "\nTop %d IPs by requests:\n", len(sum.TopIPs))
	for _, item := range sum.TopIPs {
		if withCountry && item.Country != "" {
			fmt.Fprintf(rw.w, "%s: %d requests (%s)\n", item.IP, item.Count, item.Country)

		} else {
			fmt.Fprintf(rw.w, "%s: %d requests\n", item.IP, item.Count)
		}
	}

	fmt.Fprintf(rw.w, "\nPotential bot traffic: %d requests (%.1f%%)\n",
		sum.BotRequests, sum.BotShare*100)

	fmt.Fprintf(rw.w, "\nHTTP Methods:\n")
	rw.freqTable(sum.Methods)
	fmt.Fprintf(rw.w, "\nTop Requested Paths:\n")
	rw.freqTable(sum.Paths)
	fmt.Fprintf(rw.w, "\nHTTP Status Codes:\n")
	rw.freqTable(sum.Statuses)

	fmt.Fprintf(rw.w, "\n=== Performance ===\n")
	fmt.Fprintf(rw.w, "Total bytes served: %d\n", sum.TotalBytes)
	fmt.Fprintf(rw.w, "Error responses (4xx/5xx): %.1f%%\n", sum.ErrorShare*100)
	fmt.Fprintf(rw.w, "Slowest paths by mean duration:\n")
	tw := tabwriter.NewWriter(rw.w, 0, 0, 2, ' ', 0)
	for _, item := range sum.SlowPaths {
		fmt.Fprintf(tw, "%s\t%.1f\t(%d requests)\n", item.Path, item.MeanProcTime, item.Count)
	}
	tw.Flush()
}

func (rw *Writer) freqTable(items []analysis.FreqItem) {
	tw := tabwriter.NewWriter(rw.w, 0, 0, 2, ' ', 0)
	for _, item := range items {
		val := item.Value
		if val == "" {
			val = "(none)"
		}
		fmt.Fprintf(tw, "%s\t%d\n", val, item.Count)
	}
	tw.Flush()
}

// TimeDropped notes how many records were excluded from the time
// analysis. Printed only for a nonzero count.
func (rw *Writer) TimeDropped(numDropped int) {
	if numDropped > 0 {
		fmt.Fprintf(rw.w, "\nNote: Dropped %d entries with invalid timestamps\n", numDropped)
	}
}

// PeakMinute prints the busiest bucket of the observed span.
func (rw *Writer) PeakMinute(peak timeseries.Bucket) {
	fmt.Fprintf(rw.w, "\nBusiest minute: %s with %d requests\n",
		datetime.FormatDatetime(peak.Start), peak.Count)
}

// ChartSaved reports the chart output location.
func (rw *Writer) ChartSaved(path string) {
	fmt.Fprintf(rw.w, "\nSaved traffic graph to '%s'\n", path)
}

// NoValidTimestamps reports that the time analysis was skipped.
func (rw *Writer) NoValidTimestamps() {
	fmt.Fprintf(rw.w, "\nWarning: No valid timestamps available for time analysis\n")
}
