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


package extract

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/poiesic/flightdesk/ai"
	"github.com/poiesic/flightdesk/core"
)

// flightNumberPattern matches flight-number-shaped tokens: 2-4 letters
// directly followed by 3-4 digits. Matching is case-insensitive; matches are
// normalized to upper case before they enter a criteria set.
var flightNumberPattern = regexp.MustCompile(`(?i)\b[A-Z]{2,4}[0-9]{3,4}\b`)

// placeholderCity is a literal the model sometimes echoes back from the
// prompt's schema instead of a real value.
const placeholderCity = "City Name"

// Extractor turns a raw query string into a SearchCriteria. The primary
// path asks the language service for a structured interpretation; every
// failure mode of that path degrades to a rule-based fallback, so Extract
// is total: it always terminates and never returns an error.
type Extractor struct {
	service ai.LanguageService
	logger  *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewExtractor creates a new entity extractor.
func NewExtractor(service ai.LanguageService, opts ...Option) (*Extractor, error) {
	if service == nil {
		return nil, ErrLanguageServiceRequired
	}

	e := &Extractor{
		service: service,
		logger:  slog.Default().With("component", "extractor"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Extract derives search criteria from a free-text query.
//
// The language service is probed once per call; when it is unavailable, or
// when its response cannot be decoded, extraction falls through to the
// rule-based path. The returned criteria may be empty, which callers treat
// as "could not understand the query" and never pass to the matcher.
func (e *Extractor) Extract(ctx context.Context, query string) core.SearchCriteria {
	available, detail := e.service.Probe(ctx)
	if !available {
		e.logger.Debug("language service unavailable, using rule-based extraction", "detail", detail)
		return e.extractRuleBased(query)
	}

	completion, err := e.service.Complete(ctx, buildExtractionPrompt(query))
	if err != nil {
		e.logger.Warn("extraction completion failed, using rule-based extraction", "err", err)
		return e.extractRuleBased(query)
	}

	criteria, ok := e.parseCompletion(completion, query)
	if !ok {
		return e.extractRuleBased(query)
	}
	return criteria
}

// extraction mirrors the JSON object the prompt instructs the model to
// return. Every key is nullable.
type extraction struct {
	Origin       *string `json:"origin"`
	Destination  *string `json:"destination"`
	FlightNumber *string `json:"flight_number"`
	Date         *string `json:"date"`
	Airline      *string `json:"airline"`
}

// parseCompletion decodes the model's response into criteria. The model may
// wrap the JSON object in prose, so the first balanced {...} substring is
// located before decoding. Null values and known placeholder strings are
// dropped. When the model returned no flight number, a regex recovery pass
// runs against the raw query.
func (e *Extractor) parseCompletion(completion, query string) (core.SearchCriteria, bool) {
	object, ok := firstJSONObject(completion)
	if !ok {
		e.logger.Warn("no JSON object in extraction response", "response", completion)
		return nil, false
	}

	var ex extraction
	if err := json.Unmarshal([]byte(object), &ex); err != nil {
		e.logger.Warn("error parsing extraction response", "response", object, "err", err)
		return nil, false
	}

	criteria := core.SearchCriteria{}
	criteria.Set(core.FieldOrigin, cleanValue(ex.Origin))
	criteria.Set(core.FieldDestination, cleanValue(ex.Destination))
	criteria.Set(core.FieldDate, cleanValue(ex.Date))
	criteria.Set(core.FieldAirline, cleanValue(ex.Airline))

	if number := cleanValue(ex.FlightNumber); number != "" {
		criteria.Set(core.FieldFlightNumber, strings.ToUpper(number))
	} else if number := findFlightNumber(query); number != "" {
		criteria.Set(core.FieldFlightNumber, number)
	}

	e.logger.Debug("extracted criteria", "fields", len(criteria))
	return criteria, true
}

// extractRuleBased is the deterministic fallback. It tests the lower-cased
// query for membership in the closed city and airline vocabularies and
// applies the flight-number pattern. The first matching city becomes the
// origin; a destination is intentionally never inferred, since two city
// mentions in one string cannot be told apart without the model.
func (e *Extractor) extractRuleBased(query string) core.SearchCriteria {
	lowered := strings.ToLower(query)
	criteria := core.SearchCriteria{}

	for _, city := range Cities {
		if strings.Contains(lowered, city) {
			criteria.Set(core.FieldOrigin, titleCase(city))
			break
		}
	}

	for _, airline := range Airlines {
		if strings.Contains(lowered, airline) {
			criteria.Set(core.FieldAirline, titleCase(airline))
			break
		}
	}

	if number := findFlightNumber(query); number != "" {
		criteria.Set(core.FieldFlightNumber, number)
	}

	return criteria
}

// findFlightNumber returns the first flight-number-shaped token in the
// query, upper-cased, or "" if none is present.
func findFlightNumber(query string) string {
	return strings.ToUpper(flightNumberPattern.FindString(query))
}

// cleanValue dereferences a nullable extraction value, dropping the
// placeholders the model is known to emit for absent fields.
func cleanValue(v *string) string {
	if v == nil {
		return ""
	}
	s := strings.TrimSpace(*v)
	if s == placeholderCity {
		return ""
	}
	switch strings.ToLower(s) {
	case "null", "none":
		return ""
	}
	return s
}

// titleCase upper-cases the first letter of each space-separated word.
// The vocabularies are stored lower-cased; criteria values are reported in
// display form. Matching downstream is case-insensitive either way.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
