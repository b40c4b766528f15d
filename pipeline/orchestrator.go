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


package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/flightdesk/core"
	"github.com/poiesic/flightdesk/extract"
	"github.com/poiesic/flightdesk/respond"
	"github.com/poiesic/flightdesk/search"
	"github.com/poiesic/flightdesk/storage"
)

// Caller-facing messages. Message distinguishes the two user-correctable
// failure categories; the generic error text covers internal faults.
const (
	// MsgCouldNotUnderstand is returned when no criteria could be derived
	// from the query.
	MsgCouldNotUnderstand = "I couldn't understand the flight details in your question. Please try asking about specific origins, destinations, or flight numbers."

	// MsgNoFlightsFound is returned for valid criteria that match nothing.
	MsgNoFlightsFound = "No flights found matching your criteria."

	// MsgFoundFlights is the fixed confirmation for a successful query; the
	// synthesized prose travels in PipelineResult.Answer, not here.
	MsgFoundFlights = "Found matching flights!"

	internalErrorFormat = "An error occurred while processing your query: %v"
)

// Orchestrator sequences extraction, matching, and synthesis and owns the
// success/failure contract returned to the caller. The state machine is
// linear with no loops back:
//
//	extract -> (empty criteria? fail) -> match -> (no records? fail) -> synthesize -> done
//
// No fault propagates to the caller: category-(c) external-service failures
// are already swallowed inside the extractor and synthesizer, and anything
// unexpected is recovered at this boundary and converted into a failed
// PipelineResult.
type Orchestrator struct {
	repository  storage.FlightRepository
	extractor   *extract.Extractor
	synthesizer *respond.Synthesizer
	logger      *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewOrchestrator creates a new query orchestrator.
func NewOrchestrator(
	repository storage.FlightRepository,
	extractor *extract.Extractor,
	synthesizer *respond.Synthesizer,
	opts ...Option,
) (*Orchestrator, error) {
	if repository == nil {
		return nil, ErrFlightRepositoryRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if synthesizer == nil {
		return nil, ErrSynthesizerRequired
	}

	o := &Orchestrator{
		repository:  repository,
		extractor:   extractor,
		synthesizer: synthesizer,
		logger:      slog.Default().With("component", "orchestrator"),
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Run processes a single query and always returns a well-formed result.
//
// Short circuits: an empty criteria set fails before the store is touched,
// and an empty match fails before the synthesizer is invoked, so no
// external call is spent on a known-empty result; the no-match text is
// templated here, not in the synthesizer.
func (o *Orchestrator) Run(ctx context.Context, query string) (result core.PipelineResult) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("panic while processing query", "query", query, "panic", r)
			result = core.PipelineResult{Message: fmt.Sprintf(internalErrorFormat, r)}
		}
	}()

	criteria := o.extractor.Extract(ctx, query)
	if criteria.IsEmpty() {
		o.logger.Debug("no criteria extracted", "query", query)
		return core.PipelineResult{Message: MsgCouldNotUnderstand}
	}

	records, err := o.repository.ListAll(ctx)
	if err != nil {
		o.logger.Error("error listing flight records", "err", err)
		return core.PipelineResult{Message: fmt.Sprintf(internalErrorFormat, err)}
	}

	matched := search.Match(criteria, records)
	if len(matched) == 0 {
		o.logger.Debug("no matching flights", "query", query, "fields", len(criteria))
		return core.PipelineResult{Message: MsgNoFlightsFound}
	}

	answer := o.synthesizer.Synthesize(ctx, query, matched)

	return core.PipelineResult{
		Success: true,
		Message: MsgFoundFlights,
		Answer:  answer,
		Flights: matched,
	}
}

// Render returns the synthesized prose for an already-matched flight set.
// It exposes the synthesis stage to callers that hold records from a
// previous Run.
func (o *Orchestrator) Render(ctx context.Context, query string, flights []core.FlightRecord) string {
	return o.synthesizer.Synthesize(ctx, query, flights)
}
