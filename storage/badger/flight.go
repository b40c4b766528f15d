package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/flightdesk/core"
	"github.com/poiesic/flightdesk/storage"
)

// FlightRepository implements storage.FlightRepository for BadgerDB.
type FlightRepository struct {
	backend    *Backend
	ordinalSeq *badger.Sequence
}

var _ storage.FlightRepository = (*FlightRepository)(nil)

// newFlightRepository is an internal constructor that returns the concrete type.
func newFlightRepository(backend *Backend) (*FlightRepository, error) {
	ordinalSeq, err := backend.GetSequence(flightOrdinalSeq)
	if err != nil {
		return nil, err
	}

	return &FlightRepository{
		backend:    backend,
		ordinalSeq: ordinalSeq,
	}, nil
}

// NewFlightRepository creates a flight repository over the given backend.
//
// Returns storage.FlightRepository interface to enforce abstraction.
func NewFlightRepository(backend *Backend) (storage.FlightRepository, error) {
	return newFlightRepository(backend)
}

// Close releases the ordinal sequence.
func (r *FlightRepository) Close() error {
	return r.ordinalSeq.Release()
}

// AddFlights stores flight records in the order given. Each record gets the
// next insertion ordinal as its primary key plus a number-index entry for
// case-insensitive lookup. A duplicate flight number fails the whole batch.
func (r *FlightRepository) AddFlights(ctx context.Context, flights ...core.FlightRecord) error {
	for i := range flights {
		if err := core.ValidateFlightRecord(&flights[i]); err != nil {
			return err
		}
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, flight := range flights {
			numberKey := makeFlightNumberKey(flight.FlightNumber)
			if _, err := tx.Get(numberKey); err == nil {
				return fmt.Errorf("%w: %s", storage.ErrDuplicateFlight, flight.FlightNumber)
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			ordinal, err := r.ordinalSeq.Next()
			if err != nil {
				return err
			}

			key := makeFlightRecordKey(ordinal)
			if err := tx.Set(key, storage.MarshalFlightRecord(&flight)); err != nil {
				return err
			}
			if err := tx.Set(numberKey, marshalOrdinal(ordinal)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ListAll returns every stored record in insertion order.
func (r *FlightRepository) ListAll(ctx context.Context) ([]core.FlightRecord, error) {
	var results []core.FlightRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(flightRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.FlightRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalFlightRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, *record)
		}
		return nil
	}, false)

	return results, err
}

// GetByNumber retrieves a record by flight number via the number index.
func (r *FlightRepository) GetByNumber(ctx context.Context, number string) (*core.FlightRecord, error) {
	var result *core.FlightRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeFlightNumberKey(number))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		var ordinal uint64
		if err := item.Value(func(val []byte) error {
			ordinal = unmarshalOrdinal(val)
			return nil
		}); err != nil {
			return err
		}

		recordItem, err := tx.Get(makeFlightRecordKey(ordinal))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return recordItem.Value(func(val []byte) error {
			result, err = storage.UnmarshalFlightRecord(val)
			return err
		})
	}, false)
	return result, err
}
