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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/poiesic/flightdesk/core"
)

// flightRecordSer is a hand-composed mus-format serializer for
// core.FlightRecord. The record is five strings, so the codec is written
// out directly instead of generated. Field order is fixed and part of the
// stored format.
type flightRecordSer struct{}

func (flightRecordSer) Marshal(r core.FlightRecord, bs []byte) (n int) {
	n = ord.String.Marshal(r.FlightNumber, bs)
	n += ord.String.Marshal(r.Origin, bs[n:])
	n += ord.String.Marshal(r.Destination, bs[n:])
	n += ord.String.Marshal(r.DepartureTime, bs[n:])
	n += ord.String.Marshal(r.Airline, bs[n:])
	return n
}

func (flightRecordSer) Unmarshal(bs []byte) (r core.FlightRecord, n int, err error) {
	var n1 int
	if r.FlightNumber, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if r.Origin, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Destination, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.DepartureTime, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Airline, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	return r, n, nil
}

func (flightRecordSer) Size(r core.FlightRecord) (size int) {
	size = ord.String.Size(r.FlightNumber)
	size += ord.String.Size(r.Origin)
	size += ord.String.Size(r.Destination)
	size += ord.String.Size(r.DepartureTime)
	size += ord.String.Size(r.Airline)
	return size
}

func (flightRecordSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 5; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}

// FlightRecordMUS serializes FlightRecord values for storage.
var FlightRecordMUS = flightRecordSer{}

// MarshalFlightRecord serializes a FlightRecord to bytes.
func MarshalFlightRecord(record *core.FlightRecord) []byte {
	buf := make([]byte, FlightRecordMUS.Size(*record))
	FlightRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalFlightRecord deserializes a FlightRecord from bytes.
func UnmarshalFlightRecord(data []byte) (*core.FlightRecord, error) {
	record, _, err := FlightRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}
