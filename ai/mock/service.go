package mock

import (
	"context"
	"sync"
)

// LanguageService is a test double for ai.LanguageService.
// It allows custom behavior injection via function fields and records call
// counts for assertions. Safe for concurrent use, so batch-runner tests can
// share a single instance.
type LanguageService struct {
	// ProbeFunc is called by Probe if set.
	// If nil, the configured availability flag is reported.
	ProbeFunc func(ctx context.Context) (bool, string)

	// CompleteFunc is called by Complete if set.
	// If nil, Complete returns an empty JSON object.
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	mu            sync.Mutex
	available     bool
	probeCalls    int
	completeCalls int
	prompts       []string
}

// NewLanguageService creates a mock language service that reports itself
// available.
// Note: Returns concrete type to allow behavior injection and assertions.
func NewLanguageService() *LanguageService {
	return &LanguageService{available: true}
}

// SetAvailable controls what the default Probe implementation reports.
func (m *LanguageService) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = available
}

// Probe reports the configured availability, or defers to ProbeFunc.
func (m *LanguageService) Probe(ctx context.Context) (bool, string) {
	m.mu.Lock()
	m.probeCalls++
	fn := m.ProbeFunc
	available := m.available
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	if available {
		return true, "mock language service is available"
	}
	return false, "mock language service is unavailable"
}

// Complete records the prompt and defers to CompleteFunc when set.
// Default behavior returns "{}", which extraction callers decode as an
// empty criteria set.
func (m *LanguageService) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.completeCalls++
	m.prompts = append(m.prompts, prompt)
	fn := m.CompleteFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt)
	}
	return "{}", nil
}

// ProbeCallCount returns the number of times Probe was called.
func (m *LanguageService) ProbeCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.probeCalls
}

// CompleteCallCount returns the number of times Complete was called.
func (m *LanguageService) CompleteCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completeCalls
}

// Prompts returns a copy of every prompt passed to Complete, in call order.
func (m *LanguageService) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Reset clears call counts, recorded prompts, and custom functions, and
// marks the service available again.
func (m *LanguageService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = true
	m.probeCalls = 0
	m.completeCalls = 0
	m.prompts = nil
	m.ProbeFunc = nil
	m.CompleteFunc = nil
}
