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


package respond

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/poiesic/flightdesk/ai"
	"github.com/poiesic/flightdesk/core"
)

// NoMatchesMessage is the fixed fallback text for an empty flight sequence.
// It is returned verbatim regardless of query content.
const NoMatchesMessage = "I couldn't find any flights matching your criteria."

// fallbackHeader introduces the templated flight listing.
const fallbackHeader = "Here are the flights that match your criteria:"

// Placeholders for missing record fields in the templated rendering.
const (
	unknownField = "Unknown"
	notAvailable = "N/A"
)

// lineCacheSize bounds the memo cache of rendered per-flight lines. The
// backing record set is static and keyed by flight number, so entries are
// never invalidated.
const lineCacheSize = 128

// Synthesizer turns (query, matched flights) into a natural-language
// answer. Like extraction, synthesis is a two-path design: the language
// service writes the prose when it is reachable and well-behaved, and a
// deterministic template renders it otherwise. Synthesize is total and
// never returns an error.
type Synthesizer struct {
	service   ai.LanguageService
	lineCache *lru.Cache[string, string]
	logger    *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSynthesizer creates a new response synthesizer.
func NewSynthesizer(service ai.LanguageService, opts ...Option) (*Synthesizer, error) {
	if service == nil {
		return nil, ErrLanguageServiceRequired
	}

	cache, err := lru.New[string, string](lineCacheSize)
	if err != nil {
		return nil, err
	}

	s := &Synthesizer{
		service:   service,
		lineCache: cache,
		logger:    slog.Default().With("component", "synthesizer"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Synthesize produces a natural-language answer for the matched flights.
// Any failure of the language service, including an empty or null-ish
// completion, degrades to the deterministic template.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, flights []core.FlightRecord) string {
	available, detail := s.service.Probe(ctx)
	if !available {
		s.logger.Debug("language service unavailable, using templated response", "detail", detail)
		return s.RenderFallback(flights)
	}

	prompt, err := buildSynthesisPrompt(query, flights)
	if err != nil {
		s.logger.Warn("error building synthesis prompt, using templated response", "err", err)
		return s.RenderFallback(flights)
	}

	completion, err := s.service.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("synthesis completion failed, using templated response", "err", err)
		return s.RenderFallback(flights)
	}
	if isNullish(completion) {
		s.logger.Warn("null-ish synthesis completion, using templated response", "completion", completion)
		return s.RenderFallback(flights)
	}

	return completion
}

// RenderFallback renders the deterministic answer: the fixed no-matches
// message for an empty sequence, otherwise one templated line per flight in
// input order, trimmed of trailing whitespace. Identical input produces
// byte-identical output across calls.
func (s *Synthesizer) RenderFallback(flights []core.FlightRecord) string {
	if len(flights) == 0 {
		return NoMatchesMessage
	}

	var b strings.Builder
	b.WriteString(fallbackHeader)
	for _, flight := range flights {
		b.WriteString("\n")
		b.WriteString(s.flightLine(flight))
	}
	return strings.TrimRight(b.String(), " \t\n")
}

// flightLine renders a single flight, consulting the memo cache for fully
// populated records. Records with missing fields are rendered directly:
// their line is not determined by the flight number alone, so caching them
// under that key would be wrong.
func (s *Synthesizer) flightLine(flight core.FlightRecord) string {
	cacheable := flight.FlightNumber != "" &&
		flight.Origin != "" &&
		flight.Destination != "" &&
		flight.DepartureTime != "" &&
		flight.Airline != ""

	if cacheable {
		if line, ok := s.lineCache.Get(flight.FlightNumber); ok {
			return line
		}
	}

	line := formatFlightLine(flight)

	if cacheable {
		s.lineCache.Add(flight.FlightNumber, line)
	}
	return line
}

// formatFlightLine renders the fixed per-flight template, substituting
// "Unknown" for missing identity fields and "N/A" for missing time and
// airline fields.
func formatFlightLine(flight core.FlightRecord) string {
	number := flight.FlightNumber
	if number == "" {
		number = unknownField
	}
	origin := flight.Origin
	if origin == "" {
		origin = unknownField
	}
	destination := flight.Destination
	if destination == "" {
		destination = unknownField
	}
	departure := flight.DepartureTime
	if departure == "" {
		departure = notAvailable
	}
	airline := flight.Airline
	if airline == "" {
		airline = notAvailable
	}

	return fmt.Sprintf("Flight %s from %s to %s, Time: %s, Airline: %s",
		number, origin, destination, departure, airline)
}

// isNullish reports whether a completion carries no usable prose.
func isNullish(completion string) bool {
	trimmed := strings.TrimSpace(completion)
	if trimmed == "" {
		return true
	}
	return strings.EqualFold(trimmed, "null")
}
