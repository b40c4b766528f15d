package search

import (
	"strings"

	"github.com/poiesic/flightdesk/core"
)

// Match filters records against criteria.
//
// The matching law is exact: a record matches iff, for every field present
// in the criteria, the record's corresponding field is case-insensitively
// equal to the criteria value. Absent fields impose no constraint. There is
// no partial or fuzzy matching here; substring fuzziness belongs to the
// extraction fallback and must not leak into this component.
//
// Two documented special cases:
//
//   - Empty criteria return an empty result, never a vacuous
//     "match everything". An empty criteria set is a terminal
//     "cannot understand the query" outcome upstream and should not reach
//     this function at all, but the law holds regardless.
//   - A flight_number criterion is exclusive: a flight number uniquely
//     determines a record, so when it is present all other fields are
//     ignored and at most one record is returned.
//
// Result order follows the input order of records.
func Match(criteria core.SearchCriteria, records []core.FlightRecord) []core.FlightRecord {
	if criteria.IsEmpty() {
		return nil
	}

	if number, ok := criteria[core.FieldFlightNumber]; ok {
		for _, record := range records {
			if strings.EqualFold(record.FlightNumber, number) {
				return []core.FlightRecord{record}
			}
		}
		return nil
	}

	var matched []core.FlightRecord
	for _, record := range records {
		if matchesAll(criteria, record) {
			matched = append(matched, record)
		}
	}
	return matched
}

func matchesAll(criteria core.SearchCriteria, record core.FlightRecord) bool {
	for field, want := range criteria {
		if !strings.EqualFold(fieldValue(record, field), want) {
			return false
		}
	}
	return true
}

// fieldValue maps a criteria field to the record field it constrains.
// A date criterion constrains the departure time string; like every other
// field it is compared by exact equality, so a bare date only matches a
// record whose stored departure time is that exact string.
func fieldValue(record core.FlightRecord, field core.Field) string {
	switch field {
	case core.FieldOrigin:
		return record.Origin
	case core.FieldDestination:
		return record.Destination
	case core.FieldFlightNumber:
		return record.FlightNumber
	case core.FieldAirline:
		return record.Airline
	case core.FieldDate:
		return record.DepartureTime
	}
	return ""
}
