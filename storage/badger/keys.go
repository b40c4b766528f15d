package badger

import (
	"encoding/binary"
	"strings"
)

// Key prefixes for different data types
const (
	flightRecordPrefix = "flirec"
	flightNumberPrefix = "flinum"
	flightOrdinalSeq   = "flirecseq"
)

// makeFlightRecordKey generates a key for a flight record by its insertion
// ordinal. The ordinal is written in BigEndian order so lexicographic key
// order equals insertion order, which is the listing order the pipeline
// guarantees.
func makeFlightRecordKey(ordinal uint64) []byte {
	prefix := flightRecordPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], ordinal)
	return buf
}

// makeFlightNumberKey generates the secondary-index key for lookup by
// flight number. Numbers are upper-cased so the index is case-insensitive.
func makeFlightNumberKey(number string) []byte {
	return []byte(flightNumberPrefix + ":" + strings.ToUpper(number))
}

// marshalOrdinal encodes an ordinal as the value of a number-index entry.
func marshalOrdinal(ordinal uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, ordinal)
	return buf
}

// unmarshalOrdinal decodes a number-index value.
func unmarshalOrdinal(data []byte) uint64 {
	if len(data) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(data)
}
