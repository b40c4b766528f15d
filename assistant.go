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


// Package flightdesk answers free-text questions about flights.
//
// The Assistant wires the full query pipeline over a persistent record
// store: entity extraction (language-model primary, rule-based fallback),
// exact matching, and response synthesis (language-model primary, templated
// fallback). Every question receives a well-formed PipelineResult even when
// the external language service is down.
package flightdesk

import (
	"context"
	"log/slog"

	"github.com/poiesic/flightdesk/ai"
	"github.com/poiesic/flightdesk/ai/ollama"
	"github.com/poiesic/flightdesk/core"
	"github.com/poiesic/flightdesk/extract"
	"github.com/poiesic/flightdesk/pipeline"
	"github.com/poiesic/flightdesk/respond"
	"github.com/poiesic/flightdesk/storage"
	"github.com/poiesic/flightdesk/storage/badger"
)

// Assistant owns the record store, the language service client, and the
// query pipeline.
type Assistant struct {
	backend      *badger.Backend
	repository   storage.FlightRepository
	service      ai.LanguageService
	orchestrator *pipeline.Orchestrator
	logger       *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	aiConfig *ai.Config
	service  ai.LanguageService
	inMemory bool
	noSeed   bool
}

// WithAIConfig sets the language service configuration used to build the
// production client.
func WithAIConfig(cfg *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.aiConfig = cfg
	}
}

// WithLanguageService injects a pre-built language service, bypassing the
// production client. Intended for tests.
func WithLanguageService(service ai.LanguageService) AssistantOption {
	return func(o *assistantOptions) {
		o.service = service
	}
}

// WithInMemoryStore backs the assistant with an in-memory store instead of
// an on-disk database. The dbPath argument is ignored.
func WithInMemoryStore() AssistantOption {
	return func(o *assistantOptions) {
		o.inMemory = true
	}
}

// WithoutReferenceData disables seeding the reference dataset into an
// empty store.
func WithoutReferenceData() AssistantOption {
	return func(o *assistantOptions) {
		o.noSeed = true
	}
}

// NewAssistant opens the record store at dbPath and wires the pipeline.
// An empty store is seeded with the reference dataset unless disabled.
func NewAssistant(dbPath string, opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(dbPath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repository, err := badger.NewFlightRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	service := options.service
	if service == nil {
		service, err = ollama.NewLanguageService(options.aiConfig)
		if err != nil {
			repository.Close()
			backend.Close()
			return nil, err
		}
	}

	extractor, err := extract.NewExtractor(service)
	if err != nil {
		repository.Close()
		backend.Close()
		return nil, err
	}

	synthesizer, err := respond.NewSynthesizer(service)
	if err != nil {
		repository.Close()
		backend.Close()
		return nil, err
	}

	orchestrator, err := pipeline.NewOrchestrator(repository, extractor, synthesizer)
	if err != nil {
		repository.Close()
		backend.Close()
		return nil, err
	}

	a := &Assistant{
		backend:      backend,
		repository:   repository,
		service:      service,
		orchestrator: orchestrator,
		logger:       slog.Default(),
	}

	if !options.noSeed {
		if err := a.seedReferenceData(context.Background()); err != nil {
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

// seedReferenceData loads the reference dataset into an empty store.
func (a *Assistant) seedReferenceData(ctx context.Context) error {
	existing, err := a.repository.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	a.logger.Info("seeding reference flight data", "records", len(storage.ReferenceFlights))
	return a.repository.AddFlights(ctx, storage.ReferenceFlights...)
}

// Ask processes a single question and always returns a well-formed result.
func (a *Assistant) Ask(ctx context.Context, query string) core.PipelineResult {
	return a.orchestrator.Run(ctx, query)
}

// Probe reports whether the language service is currently reachable.
// Callers may use it to warn the user that answers will be simplified.
func (a *Assistant) Probe(ctx context.Context) (bool, string) {
	return a.service.Probe(ctx)
}

// FlightRepository exposes the underlying record store.
func (a *Assistant) FlightRepository() storage.FlightRepository {
	return a.repository
}

// NewBatch creates a concurrent batch runner over the assistant's pipeline.
func (a *Assistant) NewBatch(opts ...pipeline.BatchOption) (*pipeline.Batch, error) {
	return pipeline.NewBatch(a.orchestrator, opts...)
}

// Close releases the repository and the backing store.
func (a *Assistant) Close() error {
	if err := a.repository.Close(); err != nil {
		a.logger.Error("error closing flight repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
