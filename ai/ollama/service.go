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


package ollama

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/poiesic/flightdesk/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// ErrEmptyCompletion is returned when the model produced no usable text.
var ErrEmptyCompletion = errors.New("empty completion")

// LanguageService implements ai.LanguageService against an Ollama server.
type LanguageService struct {
	model          llms.Model
	host           string
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         *slog.Logger
}

// newLanguageService is an internal constructor that returns the concrete type.
func newLanguageService(config *ai.Config) (*LanguageService, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := ollama.New(
		ollama.WithServerURL(config.Host),
		ollama.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &LanguageService{
		model:          client,
		host:           config.Host,
		httpClient:     &http.Client{Timeout: config.ProbeTimeout},
		requestTimeout: config.RequestTimeout,
		logger:         slog.Default().With("component", "ollama-service"),
	}, nil
}

// NewLanguageService creates a language service client for an Ollama server.
//
// Returns ai.LanguageService interface (not *LanguageService) to enforce
// abstraction and prevent coupling to Ollama-specific details.
func NewLanguageService(config *ai.Config) (ai.LanguageService, error) {
	return newLanguageService(config)
}

// Probe checks the Ollama health surface (/api/tags) with a single bounded
// request. It never returns an error; every failure collapses to
// available=false with a descriptive detail.
func (s *LanguageService) Probe(ctx context.Context) (bool, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.host+"/api/tags", nil)
	if err != nil {
		return false, fmt.Sprintf("language service is not available: %s", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Debug("availability probe failed", "host", s.host, "err", err)
		return false, fmt.Sprintf("language service is not available: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Sprintf("language service is not available: status code %d", resp.StatusCode)
	}
	return true, "language service is available"
}

// Complete sends a prompt to the model and returns the trimmed completion.
func (s *LanguageService) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := s.model.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		s.logger.Warn("completion request failed", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		s.logger.Debug("no choices returned from model")
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(response.Choices[0].Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
