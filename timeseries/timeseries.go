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

// Package timeseries groups access log records into one-minute
// buckets and finds the busiest minute of the observed span.

package timeseries

import (
	"errors"
	"time"

	"logstats/record"
)

// ErrNoValidTimestamps is returned when not a single record
// carries a parseable timestamp. The caller reports a warning
// and skips chart generation.
var ErrNoValidTimestamps = errors.New("no valid timestamps in the data")

// Bucket is one minute of traffic.
type Bucket struct {
	Start time.Time
	Count int
}

// Series is the per-minute request count covering the whole observed
// time span. Minutes without any traffic are present with a zero
// count, so the chart shows gaps instead of skipping them.
type Series struct {
	Buckets        []Bucket
	DroppedRecords int
}

// Analyze parses the timestamps of all records and buckets them by
// minute. Records whose timestamp does not conform to the expected
// layout are dropped from this analysis only (and counted in
// DroppedRecords); they still participate in all other statistics.
// The record order is irrelevant here - bucketing relies purely on
// the timestamp values.
func Analyze(records []*record.Record) (*Series, error) {
	counts := make(map[time.Time]int)
	var first, last time.Time
	dropped := 0
	for _, rec := range records {
		t, ok := rec.Time()
		if !ok {
			dropped++
			continue
		}
		b := t.Truncate(time.Minute)
		if len(counts) == 0 || b.Before(first) {
			first = b
		}
		if len(counts) == 0 || b.After(last) {
			last = b
		}
		counts[b]++
	}
	if len(counts) == 0 {
		return nil, ErrNoValidTimestamps
	}
	ans := &Series{
		Buckets:        make([]Bucket, 0, len(counts)),
		DroppedRecords: dropped,
	}
	for b := first; !b.After(last); b = b.Add(time.Minute) {
		ans.Buckets = append(ans.Buckets, Bucket{Start: b, Count: counts[b]})
	}
	return ans, nil
}

// Peak returns the bucket with the highest count. As the buckets
// are sorted by start time and the comparison is strict, ties go
// to the earliest bucket.
func (s *Series) Peak() Bucket {
	var ans Bucket
	for _, b := range s.Buckets {
		if b.Count > ans.Count {
			ans = b
		}
	}
	return ans
}
