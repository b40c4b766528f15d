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


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for the language service client.
type Config struct {
	// Host is the base URL of the language service.
	// Example: "http://localhost:11434" for a local Ollama server.
	Host string

	// Model is the model identifier used for completions.
	// Example: "llama2", "qwen2.5:3b"
	Model string

	// ProbeTimeout bounds the availability check.
	// Default: 3 seconds.
	ProbeTimeout time.Duration

	// RequestTimeout bounds a single completion request. A timeout is
	// treated identically to a connection failure by callers.
	// Default: 10 seconds.
	RequestTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the language service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the completion model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithProbeTimeout sets the availability check timeout.
func WithProbeTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.ProbeTimeout = d
	}
}

// WithRequestTimeout sets the completion request timeout.
func WithRequestTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.RequestTimeout = d
	}
}

// DefaultConfig returns a Config with sensible defaults for a local Ollama
// server.
func DefaultConfig() *Config {
	return &Config{
		Host:           "http://localhost:11434",
		Model:          "llama2",
		ProbeTimeout:   3 * time.Second,
		RequestTimeout: 10 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config with
// custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),
//	    ai.WithModel("qwen2.5:3b"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// Trailing slashes are stripped from the host so that path joining is
// uniform across the health and generation endpoints.
func (c *Config) Normalize() {
	c.Host = strings.TrimRight(strings.TrimSpace(c.Host), "/")
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.ProbeTimeout <= 0 {
		return errors.New("ai config: ProbeTimeout must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("ai config: RequestTimeout must be positive")
	}
	return nil
}
