// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateFlightRecord validates a FlightRecord according to domain rules.
//
// Validation rules:
//   - FlightNumber must not be empty
//   - FlightNumber must be an alphanumeric code (letters and digits only)
//
// NOT validated:
//   - Origin, Destination, DepartureTime, Airline (the synthesizer renders
//     placeholders for missing fields, so partial records are storable)
func ValidateFlightRecord(record *FlightRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidFlightRecord)
	}

	if record.FlightNumber == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFlightRecord, ErrEmptyFlightNumber)
	}

	if !isAlphanumeric(record.FlightNumber) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidFlightRecord, ErrMalformedFlightNumber, record.FlightNumber)
	}

	return nil
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
