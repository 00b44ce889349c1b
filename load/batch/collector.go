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

// Package batch reads a complete access log file in a single pass
// and collects all the lines the parser accepts.

package batch

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"logstats/load/accesslog"
	"logstats/record"
)

// ErrFileNotFound is returned when the configured input file
// does not exist. It aborts the run (with a user-facing message)
// but never a crash.
var ErrFileNotFound = errors.New("log file not found")

// Result is what a single pass over a log file produces. Records
// keeps the accepted entries in their original file order; the
// source data is expected to be already time-ordered but downstream
// consumers must rely on the timestamps themselves, not on the
// position within the slice.
type Result struct {
	Records    []*record.Record
	TotalLines int
	Rejects    map[record.Reject]int
}

// Accepted returns the number of accepted records.
func (r *Result) Accepted() int {
	return len(r.Records)
}

// Rejected returns the number of lines which did not produce
// a record, regardless of the reason. The invariant
// Accepted() + Rejected() == TotalLines always holds.
func (r *Result) Rejected() int {
	return r.TotalLines - len(r.Records)
}

// Collect reads the file at path line by line, feeds each line to the
// access log parser and accumulates the accepted records. A broken
// line never fails the whole pass. Undecodable bytes are replaced by
// the Unicode replacement character rather than refusing the file.
func Collect(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read log file %s: %w", path, err)
	}
	parser := &accesslog.LineParser{}
	ans := &Result{
		Records: make([]*record.Record, 0, 1000),
		Rejects: make(map[record.Reject]int),
	}
	sc := bufio.NewScanner(strings.NewReader(toValidUTF8(data)))
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), 1024*1024)
	for sc.Scan() {
		ans.TotalLines++
		rec, reject := parser.ParseLine(sc.Text())
		if reject == record.RejectNone {
			ans.Records = append(ans.Records, rec)

		} else {
			ans.Rejects[reject]++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan log file %s: %w", path, err)
	}
	return ans, nil
}

func toValidUTF8(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}

// FirstLines returns up to n raw lines of the file verbatim. It is
// used to show the user a sample of their data when nothing could
// be parsed. Read errors yield an empty answer as this is a
// best-effort diagnostic.
func FirstLines(path string, n int) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	ans := make([]string, 0, n)
	sc := bufio.NewScanner(f)
	for len(ans) < n && sc.Scan() {
		ans = append(ans, sc.Text())
	}
	return ans
}
