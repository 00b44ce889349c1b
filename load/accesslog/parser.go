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

package accesslog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"logstats/record"
)

// maxDiagLineLen limits how much of a broken line ends up
// in the diagnostic log event.
const maxDiagLineLen = 100

// lineRegexp describes the expected access log line, e.g.
//
//	192.168.1.10 - frontend2 [01/07/2025:06:00:02] "GET /api/episodes HTTP/1.1" 200 1234 "-" "Mozilla/5.0" 150
//
// groups:
//  1. IP address
//  2. response code token
//  3. user identifier
//  4. timestamp (bracketed)
//  5. HTTP request line (quoted)
//  6. status code
//  7. response size
//  8. referrer (quoted)
//  9. user agent (quoted)
// 10. processing time
var lineRegexp = regexp.MustCompile(
	`^(\S+) (\S+) (\S+) \[(.*?)\] "(.*?)" (\d+) (\d+) "(.*?)" "(.*?)" (\d+)$`)

// LineParser converts raw access log lines into records.
type LineParser struct{}

// ParseLine parses a single access log line. On success it returns
// the parsed record and record.RejectNone; otherwise the record is
// nil and the reason tells why the line was refused. Only the
// extraction failure path emits a log event - blank and structurally
// broken lines are skipped silently as they are expected in real
// log files.
func (lp *LineParser) ParseLine(s string) (*record.Record, record.Reject) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, record.RejectBlank
	}
	srch := lineRegexp.FindStringSubmatch(s)
	if srch == nil {
		return nil, record.RejectMalformed
	}
	if srch[4] == "-" {
		// a data-quality filter, not a parsing failure - such lines
		// are structurally fine but useless for any time analysis
		return nil, record.RejectNoTimestamp
	}
	rec, err := extractRecord(srch)
	if err != nil {
		diag := s
		if len(diag) > maxDiagLineLen {
			diag = diag[:maxDiagLineLen]
		}
		log.Warn().
			Err(err).
			Str("line", diag).
			Msg("skipping line with unextractable fields")
		return nil, record.RejectExtraction
	}
	return rec, record.RejectNone
}

func extractRecord(groups []string) (*record.Record, error) {
	status, err := strconv.Atoi(groups[6])
	if err != nil {
		return nil, err
	}
	size, err := strconv.Atoi(groups[7])
	if err != nil {
		return nil, err
	}
	procTime, err := strconv.Atoi(groups[10])
	if err != nil {
		return nil, err
	}
	return &record.Record{
		IP:        groups[1],
		Timestamp: groups[4],
		Request:   groups[5],
		Status:    status,
		Size:      size,
		Referrer:  groups[8],
		UserAgent: groups[9],
		ProcTime:  procTime,
	}, nil
}
