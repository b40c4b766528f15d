package storage

import (
	"context"

	"github.com/poiesic/flightdesk/core"
)

// FlightRepository is the record store collaborator searched by the
// pipeline. The dataset is small and static; beyond seeding it is passive
// and read-only. Implementations must be thread-safe, since simultaneous
// user turns each run an independent pipeline invocation over the same
// store.
type FlightRepository interface {
	// AddFlights stores one or more flight records, preserving the order
	// they are given in. Records are validated before writing; a record
	// whose flight number is already present is rejected with
	// ErrDuplicateFlight and nothing from the batch is written.
	AddFlights(ctx context.Context, flights ...core.FlightRecord) error

	// ListAll returns every stored record in insertion order.
	ListAll(ctx context.Context) ([]core.FlightRecord, error)

	// GetByNumber retrieves a record by its flight number,
	// case-insensitively. Returns ErrNotFound if no such record exists.
	GetByNumber(ctx context.Context, number string) (*core.FlightRecord, error)

	// Close releases resources held by the repository.
	Close() error
}
