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

// Reject tells why a log line did not produce a Record. The zero
// value RejectNone marks a successful parse. Keeping the reason
// explicit (rather than returning a nil record) allows callers and
// tests to distinguish a structural mismatch from a deliberate
// data-quality filter.
type Reject int

const (
	RejectNone Reject = iota

	// RejectBlank - the line was empty after trimming
	RejectBlank

	// RejectMalformed - the line did not match the access log grammar
	RejectMalformed

	// RejectNoTimestamp - the line matched but its timestamp was the
	// literal placeholder "-"
	RejectNoTimestamp

	// RejectExtraction - the line matched but a field could not be
	// converted to its target type
	RejectExtraction
)

func (r Reject) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectBlank:
		return "blank"
	case RejectMalformed:
		return "malformed"
	case RejectNoTimestamp:
		return "noTimestamp"
	case RejectExtraction:
		return "extraction"
	}
	return "unknown"
}
