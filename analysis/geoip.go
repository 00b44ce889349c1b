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

import (
	"net"

	"github.com/oschwald/geoip2-golang"
	"github.com/rs/zerolog/log"
)

// GeoResolver maps client IPs to country names using a local
// MaxMind database. A nil resolver is valid and resolves nothing,
// which keeps the country column optional.
type GeoResolver struct {
	db *geoip2.Reader
}

// OpenGeoResolver opens a MaxMind database file.
func OpenGeoResolver(path string) (*GeoResolver, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &GeoResolver{db: db}, nil
}

func (gr *GeoResolver) Close() {
	if gr != nil && gr.db != nil {
		gr.db.Close()
	}
}

// Country returns the English country name for an IP address or
// an empty string if the address cannot be resolved. Lookup
// problems only degrade the report, they never stop it.
func (gr *GeoResolver) Country(ipAddr string) string {
	if gr == nil || gr.db == nil {
		return ""
	}
	ip := net.ParseIP(ipAddr)
	if ip == nil {
		return ""
	}
	country, err := gr.db.Country(ip)
	if err != nil {
		log.Error().Err(err).Msgf("Failed to fetch GeoIP data for IP %s.", ipAddr)
		return ""
	}
	return country.Country.Names["en"]
}
