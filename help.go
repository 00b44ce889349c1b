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
	"fmt"

	"logstats/config"
)

var helpTexts = map[string]string{
	config.ActionAnalyze: `Analyze a web server access log file and print a traffic report
(processing stats, top IPs, bot share, method/path/status distributions,
performance numbers, busiest minute). A per-minute traffic chart is written
next to the working directory. An optional JSON configuration file may be
provided:

{
    "inputPath": "server_logs.txt",
    "chartPath": "requests_per_minute.png",
    "geoIpDbPath": "/path/to/GeoLite2-Country.mmdb",
    "logLevel": "info",
    "topSize": 10
}

All the values are optional.
`,
	config.ActionVersion: `Print the program version and exit.`,
}

func help(topic string) {
	if topic == "" {
		fmt.Printf("Missing action to help with. Select one of:\n\t%s, %s\n",
			config.ActionAnalyze, config.ActionVersion)
		return
	}
	fmt.Printf("\n[%s]\n\n", topic)
	text, ok := helpTexts[topic]
	if !ok {
		text = "- no information available -"
	}
	fmt.Println(text)
}
