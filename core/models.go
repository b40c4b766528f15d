package core

// FlightRecord is a single flight in the record store. Records are immutable
// once stored; the pipeline only ever reads them.
type FlightRecord struct {
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	Airline       string `json:"airline"`
}

// Field names a single constraint slot in a SearchCriteria.
type Field string

const (
	FieldOrigin       Field = "origin"
	FieldDestination  Field = "destination"
	FieldFlightNumber Field = "flight_number"
	FieldAirline      Field = "airline"
	FieldDate         Field = "date"
)

// Fields lists every field a SearchCriteria may constrain, in wire order.
var Fields = []Field{
	FieldOrigin,
	FieldDestination,
	FieldFlightNumber,
	FieldAirline,
	FieldDate,
}

// SearchCriteria maps criteria fields to required values. A field that is
// absent imposes no constraint; an empty string is never stored as a value.
// Criteria are built fresh for each query and discarded after matching.
type SearchCriteria map[Field]string

// IsEmpty reports whether no field is constrained.
func (c SearchCriteria) IsEmpty() bool {
	return len(c) == 0
}

// Set stores a value for a field, ignoring empty values so that absence
// always means "unconstrained".
func (c SearchCriteria) Set(field Field, value string) {
	if value == "" {
		return
	}
	c[field] = value
}

// PipelineResult is the single contract returned to every caller of the
// query pipeline. Success implies Flights is non-empty; failure always pairs
// with an empty Flights slice and a human-readable Message. Answer carries
// the synthesized prose for successful queries and is surfaced separately
// from Message.
type PipelineResult struct {
	Success bool
	Message string
	Answer  string
	Flights []FlightRecord
}
