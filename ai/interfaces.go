package ai

import "context"

// LanguageService is the external natural-language collaborator used for
// entity extraction and response synthesis. The service is assumed to be
// unreliable: it may be unreachable, slow, or return malformed output.
// Every call site must carry a deterministic fallback; failures of this
// service never become pipeline errors.
// Implementations must be thread-safe for concurrent use.
type LanguageService interface {
	// Probe performs a single bounded reachability check against the
	// service's health surface. It never panics and never returns an error:
	// any transport failure, timeout, or non-success status collapses to
	// available=false with a descriptive detail. Probe performs no caching
	// and no retries, so it is safe to call on every query.
	Probe(ctx context.Context) (available bool, detail string)

	// Complete sends a prompt to the text-generation endpoint and returns
	// the completion. An empty completion is reported as an error so that
	// callers can fall back deterministically.
	Complete(ctx context.Context, prompt string) (string, error)
}
