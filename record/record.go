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

package record

import (
	"strings"
	"time"
)

// TimestampLayout is the layout of access log timestamps
// (day-first, e.g. "01/07/2025:06:00:02").
const TimestampLayout = "02/01/2006:15:04:05"

// Record is a single accepted access log entry. Once created
// by the line parser, it is never mutated.
type Record struct {
	IP        string
	Timestamp string
	Request   string
	Status    int
	Size      int
	Referrer  string
	UserAgent string
	ProcTime  int
}

// Method returns the HTTP method of the request line, or an empty
// string if the request line has no tokens at all.
func (r *Record) Method() string {
	fields := strings.Fields(r.Request)
	if len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// Path returns the requested path, or an empty string if the request
// line has fewer than two tokens. Malformed request lines are
// tolerated here, they just produce an empty category.
func (r *Record) Path() string {
	fields := strings.Fields(r.Request)
	if len(fields) > 1 {
		return fields[1]
	}
	return ""
}

// Time parses the record's textual timestamp. The bool return value
// is false if the timestamp does not conform to TimestampLayout.
func (r *Record) Time() (time.Time, bool) {
	t, err := time.Parse(TimestampLayout, r.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
