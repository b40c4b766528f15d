package storage

import (
	"testing"

	"github.com/poiesic/flightdesk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightRecordSerialization(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		record := &core.FlightRecord{
			FlightNumber:  "NY100",
			Origin:        "New York",
			Destination:   "London",
			DepartureTime: "2025-05-01 08:00",
			Airline:       "Global Airways",
		}

		data := MarshalFlightRecord(record)
		require.NotEmpty(t, data)

		got, err := UnmarshalFlightRecord(data)
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("round trip with empty fields", func(t *testing.T) {
		record := &core.FlightRecord{FlightNumber: "LA200"}

		got, err := UnmarshalFlightRecord(MarshalFlightRecord(record))
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("size matches marshaled length", func(t *testing.T) {
		record := core.FlightRecord{
			FlightNumber: "CH300",
			Origin:       "Chicago",
			Destination:  "Paris",
			Airline:      "Euro Connect",
		}
		assert.Len(t, MarshalFlightRecord(&record), FlightRecordMUS.Size(record))
	})

	t.Run("truncated data", func(t *testing.T) {
		record := &core.FlightRecord{
			FlightNumber:  "SF400",
			Origin:        "San Francisco",
			Destination:   "Sydney",
			DepartureTime: "2025-05-01 23:15",
			Airline:       "Ocean Pacific",
		}
		data := MarshalFlightRecord(record)

		_, err := UnmarshalFlightRecord(data[:len(data)/2])
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})

	t.Run("empty data", func(t *testing.T) {
		_, err := UnmarshalFlightRecord(nil)
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})

	t.Run("skip covers the whole record", func(t *testing.T) {
		record := &core.FlightRecord{
			FlightNumber: "MI500",
			Origin:       "Miami",
		}
		data := MarshalFlightRecord(record)

		n, err := FlightRecordMUS.Skip(data)
		require.NoError(t, err)
		assert.Equal(t, len(data), n)
	})
}
