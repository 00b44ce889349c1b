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

// Package analysis computes traffic statistics over a finished
// batch of access log records. All functions here are pure with
// respect to the record slice - it is never modified.

package analysis

import (
	"sort"
	"strconv"

	"github.com/czcorpus/cnc-gokit/collections"

	"logstats/record"
)

// IPStat is a row of the top-IP table. Country stays empty unless
// a GeoIP database is configured.
type IPStat struct {
	IP      string
	Count   int
	Country string
}

// PathProcTime is a row of the slow-path table.
type PathProcTime struct {
	Path         string
	Count        int
	MeanProcTime float64
}

// TrafficSummary aggregates everything the traffic report needs.
type TrafficSummary struct {
	TotalRequests int
	UniqueIPs     int
	TopIPs        []IPStat
	BotRequests   int
	BotShare      float64
	Methods       []FreqItem
	Paths         []FreqItem
	Statuses      []FreqItem
	TotalBytes    int64
	ErrorShare    float64
	SlowPaths     []PathProcTime
}

// Summarize computes the traffic summary of a record batch. The
// topSize argument limits the IP, path and slow-path tables; method
// and status tables are always complete. Records with a malformed
// request line contribute an empty-string method/path category
// rather than being dropped.
func Summarize(records []*record.Record, topSize int, geo *GeoResolver) *TrafficSummary {
	ips := newFreqTable()
	methods := newFreqTable()
	paths := newFreqTable()
	statuses := newFreqTable()
	uniqueIPs := collections.Set[string]{}
	procTimes := make(map[string]*PathProcTime)
	pathOrder := make([]string, 0, 50)
	numErrors := 0
	ans := &TrafficSummary{
		TotalRequests: len(records),
	}
	for _, rec := range records {
		ips.Incr(rec.IP)
		uniqueIPs.Add(rec.IP)
		methods.Incr(rec.Method())
		statuses.Incr(strconv.Itoa(rec.Status))
		if AgentIsBot(rec.UserAgent) {
			ans.BotRequests++
		}
		ans.TotalBytes += int64(rec.Size)
		if rec.Status >= 400 {
			numErrors++
		}
		path := rec.Path()
		paths.Incr(path)
		if path != "" {
			pt, ok := procTimes[path]
			if !ok {
				pt = &PathProcTime{Path: path}
				procTimes[path] = pt
				pathOrder = append(pathOrder, path)
			}
			pt.Count++
			pt.MeanProcTime += float64(rec.ProcTime)
		}
	}
	ans.UniqueIPs = uniqueIPs.Size()
	if len(records) > 0 {
		ans.BotShare = float64(ans.BotRequests) / float64(len(records))
		ans.ErrorShare = float64(numErrors) / float64(len(records))
	}
	ans.TopIPs = topIPs(ips, topSize, geo)
	ans.Methods = methods.Ranked(0)
	ans.Paths = paths.Ranked(topSize)
	ans.Statuses = statuses.Ranked(0)
	ans.SlowPaths = slowPaths(procTimes, pathOrder, topSize)
	return ans
}

func topIPs(ips *freqTable, topSize int, geo *GeoResolver) []IPStat {
	ranked := ips.Ranked(topSize)
	ans := make([]IPStat, len(ranked))
	for i, item := range ranked {
		ans[i] = IPStat{
			IP:      item.Value,
			Count:   item.Count,
			Country: geo.Country(item.Value),
		}
	}
	return ans
}

// slowPaths ranks paths by mean processing time. Records without
// a parseable path are excluded - a duration with no path is not
// actionable for performance work.
func slowPaths(procTimes map[string]*PathProcTime, pathOrder []string, topSize int) []PathProcTime {
	ans := make([]PathProcTime, 0, len(pathOrder))
	for _, path := range pathOrder {
		pt := procTimes[path]
		ans = append(ans, PathProcTime{
			Path:         pt.Path,
			Count:        pt.Count,
			MeanProcTime: pt.MeanProcTime / float64(pt.Count),
		})
	}
	sort.SliceStable(ans, func(i, j int) bool {
		return ans[i].MeanProcTime > ans[j].MeanProcTime
	})
	if topSize > 0 && len(ans) > topSize {
		ans = ans[:topSize]
	}
	return ans
}
