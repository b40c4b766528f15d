package respond

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/flightdesk/ai/mock"
	"github.com/poiesic/flightdesk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullFlight = core.FlightRecord{
	FlightNumber:  "NY100",
	Origin:        "New York",
	Destination:   "London",
	DepartureTime: "2025-05-01 08:00",
	Airline:       "Global Airways",
}

func TestNewSynthesizer(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		s, err := NewSynthesizer(mock.NewLanguageService())
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("nil language service", func(t *testing.T) {
		_, err := NewSynthesizer(nil)
		assert.Equal(t, ErrLanguageServiceRequired, err)
	})
}

func TestSynthesize_Fallback(t *testing.T) {
	svc := mock.NewLanguageService()
	svc.SetAvailable(false)
	s, err := NewSynthesizer(svc)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("renders the fixed template", func(t *testing.T) {
		got := s.Synthesize(ctx, "flights from new york", []core.FlightRecord{fullFlight})
		want := "Here are the flights that match your criteria:\n" +
			"Flight NY100 from New York to London, Time: 2025-05-01 08:00, Airline: Global Airways"
		assert.Equal(t, want, got)
	})

	t.Run("empty flights always yield the fixed no-match string", func(t *testing.T) {
		first := s.Synthesize(ctx, "flights from mars", nil)
		second := s.Synthesize(ctx, "a completely different question", nil)
		assert.Equal(t, NoMatchesMessage, first)
		assert.Equal(t, NoMatchesMessage, second)
	})

	t.Run("is deterministic across repeated calls", func(t *testing.T) {
		flights := []core.FlightRecord{fullFlight, {FlightNumber: "LA200"}}
		first := s.Synthesize(ctx, "test", flights)
		second := s.Synthesize(ctx, "test", flights)
		assert.Equal(t, first, second)
	})

	t.Run("substitutes placeholders for missing fields", func(t *testing.T) {
		got := s.Synthesize(ctx, "test", []core.FlightRecord{{FlightNumber: "NY100"}})
		assert.Contains(t, got, "Flight NY100 from Unknown to Unknown, Time: N/A, Airline: N/A")
	})

	t.Run("renders flights in input order", func(t *testing.T) {
		flights := []core.FlightRecord{
			{FlightNumber: "BB200"},
			{FlightNumber: "AA100"},
		}
		got := s.Synthesize(ctx, "test", flights)
		assert.Less(t, strings.Index(got, "BB200"), strings.Index(got, "AA100"))
	})

	t.Run("never calls the completion endpoint", func(t *testing.T) {
		assert.Zero(t, svc.CompleteCallCount())
	})
}

func TestSynthesize_Primary(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the model's prose", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return "Flight NY100 departs New York for London at 08:00 with Global Airways.", nil
		}
		s, err := NewSynthesizer(svc)
		require.NoError(t, err)

		got := s.Synthesize(ctx, "flights from new york", []core.FlightRecord{fullFlight})
		assert.Contains(t, got, "NY100")
		assert.Equal(t, 1, svc.CompleteCallCount())
	})

	t.Run("prompt carries the serialized flights", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return "ok", nil
		}
		s, err := NewSynthesizer(svc)
		require.NoError(t, err)

		s.Synthesize(ctx, "flights from new york", []core.FlightRecord{fullFlight})
		prompts := svc.Prompts()
		require.Len(t, prompts, 1)
		assert.Contains(t, prompts[0], `"flight_number": "NY100"`)
		assert.Contains(t, prompts[0], "flights from new york")
	})

	t.Run("completion error degrades to the template", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("connection refused")
		}
		s, err := NewSynthesizer(svc)
		require.NoError(t, err)

		got := s.Synthesize(ctx, "test", []core.FlightRecord{fullFlight})
		assert.Contains(t, got, "Flight NY100 from New York to London")
	})

	t.Run("null completion degrades to the template", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return "null", nil
		}
		s, err := NewSynthesizer(svc)
		require.NoError(t, err)

		got := s.Synthesize(ctx, "test", nil)
		assert.Equal(t, NoMatchesMessage, got)
	})
}

func TestRenderFallback_MemoCache(t *testing.T) {
	svc := mock.NewLanguageService()
	s, err := NewSynthesizer(svc)
	require.NoError(t, err)

	flights := []core.FlightRecord{fullFlight}
	first := s.RenderFallback(flights)
	second := s.RenderFallback(flights)
	assert.Equal(t, first, second)

	// Partial records bypass the cache, so a record sharing a number with a
	// cached full record still renders its own fields.
	partial := s.RenderFallback([]core.FlightRecord{{FlightNumber: "NY100"}})
	assert.Contains(t, partial, "Unknown")
}
