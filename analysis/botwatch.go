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

package analysis

import "strings"

// botKeywords are matched as substrings against lower-cased user
// agents. Please note that "python" also hits honest Python-based
// API clients; the keyword is kept anyway as such clients are
// automated traffic too.
var botKeywords = []string{
	"bot",
	"crawl",
	"spider",
	"scraper",
	"monitoring",
	"python",
	"curl",
	"wget",
}

// AgentIsBot decides whether a user agent string looks like an
// automated client. The match is case-insensitive.
func AgentIsBot(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, kw := range botKeywords {
		if strings.Contains(ua, kw) {
			return true
		}
	}
	return false
}
