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
	"testing"

	"github.com/stretchr/testify/assert"

	"logstats/record"
)

var (
	entry1 = `192.168.1.10 - frontend2 [01/07/2025:06:00:02] "GET /api/episodes HTTP/1.1" 200 1234 "-" "Mozilla/5.0 (Windows NT 10.0; Win64; x64)" 150`
	entry2 = `10.0.0.7 - - [01/07/2025:06:00:45] "POST /api/login HTTP/1.1" 401 98 "https://music.example.com/login" "python-requests/2.31" 23`
)

func TestParseRegularEntry(t *testing.T) {
	parser := &LineParser{}
	rec, reject := parser.ParseLine(entry1)
	assert.Equal(t, record.RejectNone, reject)
	assert.Equal(t, "192.168.1.10", rec.IP)
	assert.Equal(t, "01/07/2025:06:00:02", rec.Timestamp)
	assert.Equal(t, "GET /api/episodes HTTP/1.1", rec.Request)
	assert.Equal(t, 200, rec.Status)
	assert.Equal(t, "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", rec.UserAgent)
	assert.Equal(t, 1234, rec.Size)
	assert.Equal(t, "-", rec.Referrer)
	assert.Equal(t, 150, rec.ProcTime)
}

func TestParseEntryWithReferrer(t *testing.T) {
	parser := &LineParser{}
	rec, reject := parser.ParseLine(entry2)
	assert.Equal(t, record.RejectNone, reject)
	assert.Equal(t, "10.0.0.7", rec.IP)
	assert.Equal(t, 401, rec.Status)
	assert.Equal(t, "https://music.example.com/login", rec.Referrer)
	assert.Equal(t, "python-requests/2.31", rec.UserAgent)
}

func TestParseSurroundingWhitespace(t *testing.T) {
	parser := &LineParser{}
	rec, reject := parser.ParseLine("  " + entry1 + "\t")
	assert.Equal(t, record.RejectNone, reject)
	assert.Equal(t, "192.168.1.10", rec.IP)
}

func TestParseBlankLine(t *testing.T) {
	parser := &LineParser{}
	rec, reject := parser.ParseLine("   \t ")
	assert.Nil(t, rec)
	assert.Equal(t, record.RejectBlank, reject)
}

func TestParseMalformedLine(t *testing.T) {
	parser := &LineParser{}
	rec, reject := parser.ParseLine("this is not an access log line")
	assert.Nil(t, rec)
	assert.Equal(t, record.RejectMalformed, reject)
}

func TestParseNonNumericStatus(t *testing.T) {
	parser := &LineParser{}
	line := `192.168.1.10 - frontend2 [01/07/2025:06:00:02] "GET / HTTP/1.1" XYZ 10 "-" "curl/8.0" 5`
	rec, reject := parser.ParseLine(line)
	assert.Nil(t, rec)
	assert.Equal(t, record.RejectMalformed, reject)
}

func TestParseMissingTimestampPlaceholder(t *testing.T) {
	parser := &LineParser{}
	line := `192.168.1.10 - frontend2 [-] "GET / HTTP/1.1" 200 10 "-" "curl/8.0" 5`
	rec, reject := parser.ParseLine(line)
	assert.Nil(t, rec)
	assert.Equal(t, record.RejectNoTimestamp, reject)
}

// TestParseMalformedRequestLine tests that a request line with
// fewer than two tokens is tolerated as-is.
func TestParseMalformedRequestLine(t *testing.T) {
	parser := &LineParser{}
	line := `192.168.1.10 - frontend2 [01/07/2025:06:00:02] "garbage" 200 10 "-" "curl/8.0" 5`
	rec, reject := parser.ParseLine(line)
	assert.Equal(t, record.RejectNone, reject)
	assert.Equal(t, "garbage", rec.Request)
	assert.Equal(t, "garbage", rec.Method())
	assert.Equal(t, "", rec.Path())
}

func TestParseQuotedFieldsMayContainSpaces(t *testing.T) {
	parser := &LineParser{}
	line := `1.2.3.4 - - [01/07/2025:08:10:00] "GET /x HTTP/1.1" 200 1 "http://a b c" "agent with spaces" 9`
	rec, reject := parser.ParseLine(line)
	assert.Equal(t, record.RejectNone, reject)
	assert.Equal(t, "http://a b c", rec.Referrer)
	assert.Equal(t, "agent with spaces", rec.UserAgent)
}

func TestParseExtractionOverflow(t *testing.T) {
	parser := &LineParser{}
	// matches the grammar but the size cannot be represented as int
	line := `1.2.3.4 - - [01/07/2025:08:10:00] "GET /x HTTP/1.1" 200 99999999999999999999999999 "-" "curl" 9`
	rec, reject := parser.ParseLine(line)
	assert.Nil(t, rec)
	assert.Equal(t, record.RejectExtraction, reject)
}
