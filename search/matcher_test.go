package search

import (
	"testing"

	"github.com/poiesic/flightdesk/core"
	"github.com/poiesic/flightdesk/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_EmptyCriteria(t *testing.T) {
	// An empty criteria set never matches everything.
	matched := Match(core.SearchCriteria{}, storage.ReferenceFlights)
	assert.Empty(t, matched)
}

func TestMatch_FlightNumber(t *testing.T) {
	t.Run("returns at most one record", func(t *testing.T) {
		matched := Match(core.SearchCriteria{core.FieldFlightNumber: "NY100"}, storage.ReferenceFlights)
		require.Len(t, matched, 1)
		assert.Equal(t, "NY100", matched[0].FlightNumber)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		matched := Match(core.SearchCriteria{core.FieldFlightNumber: "ny100"}, storage.ReferenceFlights)
		require.Len(t, matched, 1)
		assert.Equal(t, "NY100", matched[0].FlightNumber)
	})

	t.Run("unknown number matches nothing", func(t *testing.T) {
		matched := Match(core.SearchCriteria{core.FieldFlightNumber: "XYZ999"}, storage.ReferenceFlights)
		assert.Empty(t, matched)
	})

	t.Run("is exclusive over contradicting fields", func(t *testing.T) {
		// The flight number uniquely determines the record, so a
		// contradicting origin is ignored rather than emptying the result.
		matched := Match(core.SearchCriteria{
			core.FieldFlightNumber: "NY100",
			core.FieldOrigin:       "Miami",
		}, storage.ReferenceFlights)
		require.Len(t, matched, 1)
		assert.Equal(t, "NY100", matched[0].FlightNumber)
	})
}

func TestMatch_FieldEquality(t *testing.T) {
	t.Run("origin is case-insensitive exact", func(t *testing.T) {
		matched := Match(core.SearchCriteria{core.FieldOrigin: "new york"}, storage.ReferenceFlights)
		require.Len(t, matched, 1)
		assert.Equal(t, "NY100", matched[0].FlightNumber)
	})

	t.Run("substrings do not match", func(t *testing.T) {
		matched := Match(core.SearchCriteria{core.FieldOrigin: "York"}, storage.ReferenceFlights)
		assert.Empty(t, matched)
	})

	t.Run("all present fields must match", func(t *testing.T) {
		matched := Match(core.SearchCriteria{
			core.FieldOrigin:      "New York",
			core.FieldDestination: "Tokyo",
		}, storage.ReferenceFlights)
		assert.Empty(t, matched)
	})

	t.Run("airline field", func(t *testing.T) {
		matched := Match(core.SearchCriteria{core.FieldAirline: "pacific routes"}, storage.ReferenceFlights)
		require.Len(t, matched, 1)
		assert.Equal(t, "LA200", matched[0].FlightNumber)
	})

	t.Run("date constrains the departure time string exactly", func(t *testing.T) {
		matched := Match(core.SearchCriteria{core.FieldDate: "2025-05-01 08:00"}, storage.ReferenceFlights)
		require.Len(t, matched, 1)
		assert.Equal(t, "NY100", matched[0].FlightNumber)

		matched = Match(core.SearchCriteria{core.FieldDate: "2025-05-01"}, storage.ReferenceFlights)
		assert.Empty(t, matched)
	})
}

func TestMatch_PreservesInputOrder(t *testing.T) {
	records := []core.FlightRecord{
		{FlightNumber: "AA100", Origin: "Denver", Destination: "Austin"},
		{FlightNumber: "BB200", Origin: "Denver", Destination: "Boston"},
		{FlightNumber: "CC300", Origin: "Denver", Destination: "Chicago"},
	}

	matched := Match(core.SearchCriteria{core.FieldOrigin: "denver"}, records)
	require.Len(t, matched, 3)
	assert.Equal(t, "AA100", matched[0].FlightNumber)
	assert.Equal(t, "BB200", matched[1].FlightNumber)
	assert.Equal(t, "CC300", matched[2].FlightNumber)
}
