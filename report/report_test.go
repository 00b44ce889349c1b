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

package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"logstats/analysis"
)

func testSummary() *analysis.TrafficSummary {
	return &analysis.TrafficSummary{
		TotalRequests: 10,
		UniqueIPs:     3,
		TopIPs: []analysis.IPStat{
			{IP: "1.1.1.1", Count: 6, Country: "Germany"},
			{IP: "2.2.2.2", Count: 4},
		},
		BotRequests: 2,
		BotShare:    0.2,
		Methods: []analysis.FreqItem{
			{Value: "GET", Count: 9},
			{Value: "", Count: 1},
		},
		Paths: []analysis.FreqItem{
			{Value: "/a", Count: 10},
		},
		Statuses: []analysis.FreqItem{
			{Value: "200", Count: 10},
		},
		TotalBytes: 12345,
		ErrorShare: 0.1,
	}
}

func TestTrafficSection(t *testing.T) {
	var buf bytes.Buffer
	rw := NewWriter(&buf)
	rw.Traffic(testSummary(), false)
	ans := buf.String()
	assert.Contains(t, ans, "=== Traffic Analysis ===")
	assert.Contains(t, ans, "Total requests: 10")
	assert.Contains(t, ans, "Unique IPs: 3")
	assert.Contains(t, ans, "1.1.1.1: 6 requests\n")
	assert.Contains(t, ans, "Potential bot traffic: 2 requests (20.0%)")
	assert.Contains(t, ans, "Total bytes served: 12345")
	// a record without request tokens shows up as an explicit category
	assert.Contains(t, ans, "(none)")
}

func TestTrafficSectionWithCountry(t *testing.T) {
	var buf bytes.Buffer
	rw := NewWriter(&buf)
	rw.Traffic(testSummary(), true)
	ans := buf.String()
	assert.Contains(t, ans, "1.1.1.1: 6 requests (Germany)")
	// no country resolved for this IP, the plain format is kept
	assert.Contains(t, ans, "2.2.2.2: 4 requests\n")
}

func TestNoValidEntriesEcho(t *testing.T) {
	var buf bytes.Buffer
	rw := NewWriter(&buf)
	rw.NoValidEntries([]string{"raw one", "raw two"})
	ans := buf.String()
	assert.Contains(t, ans, "ERROR: No valid entries parsed")
	assert.Contains(t, ans, "1: raw one")
	assert.Contains(t, ans, "2: raw two")
}

func TestTimeDroppedSilentOnZero(t *testing.T) {
	var buf bytes.Buffer
	rw := NewWriter(&buf)
	rw.TimeDropped(0)
	assert.Equal(t, "", buf.String())
	rw.TimeDropped(4)
	assert.Contains(t, buf.String(), "Dropped 4 entries")
}
