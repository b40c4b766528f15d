package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/flightdesk/ai/mock"
	"github.com/poiesic/flightdesk/core"
	"github.com/poiesic/flightdesk/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtractor(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		e, err := NewExtractor(mock.NewLanguageService())
		require.NoError(t, err)
		assert.NotNil(t, e)
	})

	t.Run("nil language service", func(t *testing.T) {
		_, err := NewExtractor(nil)
		assert.Equal(t, ErrLanguageServiceRequired, err)
	})
}

func TestExtract_RuleBased(t *testing.T) {
	svc := mock.NewLanguageService()
	svc.SetAvailable(false)
	e, err := NewExtractor(svc)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("flight number token", func(t *testing.T) {
		criteria := e.Extract(ctx, "Show me flight NY100")
		assert.Equal(t, core.SearchCriteria{core.FieldFlightNumber: "NY100"}, criteria)
	})

	t.Run("flight number is case-normalized to upper", func(t *testing.T) {
		criteria := e.Extract(ctx, "show me flight ny100 please")
		assert.Equal(t, "NY100", criteria[core.FieldFlightNumber])
	})

	t.Run("first matching city becomes origin", func(t *testing.T) {
		criteria := e.Extract(ctx, "Are there any flights from Chicago?")
		assert.Equal(t, "Chicago", criteria[core.FieldOrigin])
	})

	t.Run("destination is never inferred", func(t *testing.T) {
		criteria := e.Extract(ctx, "flights from new york to london")
		_, present := criteria[core.FieldDestination]
		assert.False(t, present)
	})

	t.Run("airline vocabulary", func(t *testing.T) {
		criteria := e.Extract(ctx, "any Global Airways flights today?")
		assert.Equal(t, "Global Airways", criteria[core.FieldAirline])
	})

	t.Run("unrecognizable query yields empty criteria", func(t *testing.T) {
		criteria := e.Extract(ctx, "Random text")
		assert.True(t, criteria.IsEmpty())
	})

	t.Run("never calls the completion endpoint", func(t *testing.T) {
		assert.Zero(t, svc.CompleteCallCount())
	})
}

func TestExtract_Primary(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes a clean JSON object", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return `{"origin": "New York", "destination": "London", "flight_number": null, "date": null, "airline": null}`, nil
		}
		e, err := NewExtractor(svc)
		require.NoError(t, err)

		criteria := e.Extract(ctx, "What flights are available from New York to London?")
		assert.Equal(t, core.SearchCriteria{
			core.FieldOrigin:      "New York",
			core.FieldDestination: "London",
		}, criteria)
	})

	t.Run("locates JSON wrapped in prose", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return "Sure! Here is the extraction:\n```json\n" +
				`{"origin": null, "destination": null, "flight_number": "LA200", "date": null, "airline": null}` +
				"\n```\nLet me know if you need anything else.", nil
		}
		e, err := NewExtractor(svc)
		require.NoError(t, err)

		criteria := e.Extract(ctx, "tell me about LA200")
		assert.Equal(t, "LA200", criteria[core.FieldFlightNumber])
	})

	t.Run("drops null and placeholder values", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return `{"origin": "City Name", "destination": "none", "flight_number": null, "date": "NULL", "airline": "Euro Connect"}`, nil
		}
		e, err := NewExtractor(svc)
		require.NoError(t, err)

		criteria := e.Extract(ctx, "anything on euro connect?")
		assert.Equal(t, core.SearchCriteria{core.FieldAirline: "Euro Connect"}, criteria)
	})

	t.Run("recovers flight number from the raw query", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return `{"origin": null, "destination": null, "flight_number": null, "date": null, "airline": null}`, nil
		}
		e, err := NewExtractor(svc)
		require.NoError(t, err)

		criteria := e.Extract(ctx, "Show me flight SF400")
		assert.Equal(t, "SF400", criteria[core.FieldFlightNumber])
	})

	t.Run("upper-cases a model-returned flight number", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return `{"origin": null, "destination": null, "flight_number": "mi500", "date": null, "airline": null}`, nil
		}
		e, err := NewExtractor(svc)
		require.NoError(t, err)

		criteria := e.Extract(ctx, "what about that miami flight")
		assert.Equal(t, "MI500", criteria[core.FieldFlightNumber])
	})

	t.Run("malformed JSON falls back to rules", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return `{"origin": "New York", "destination":`, nil
		}
		e, err := NewExtractor(svc)
		require.NoError(t, err)

		criteria := e.Extract(ctx, "flights from chicago")
		assert.Equal(t, "Chicago", criteria[core.FieldOrigin])
	})

	t.Run("no JSON at all falls back to rules", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return "I am not able to help with that.", nil
		}
		e, err := NewExtractor(svc)
		require.NoError(t, err)

		criteria := e.Extract(ctx, "Show me flight CH300")
		assert.Equal(t, "CH300", criteria[core.FieldFlightNumber])
	})

	t.Run("completion error falls back to rules", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("connection reset")
		}
		e, err := NewExtractor(svc)
		require.NoError(t, err)

		criteria := e.Extract(ctx, "flights from miami")
		assert.Equal(t, "Miami", criteria[core.FieldOrigin])
	})

	t.Run("prompt carries the query", func(t *testing.T) {
		svc := mock.NewLanguageService()
		e, err := NewExtractor(svc)
		require.NoError(t, err)

		e.Extract(ctx, "Show me flight NY100")
		prompts := svc.Prompts()
		require.Len(t, prompts, 1)
		assert.Contains(t, prompts[0], "Show me flight NY100")
	})
}

func TestVocabularyCoversReferenceDataset(t *testing.T) {
	for _, flight := range storage.ReferenceFlights {
		assert.Contains(t, Cities, strings.ToLower(flight.Origin),
			"origin %q missing from city vocabulary", flight.Origin)
		assert.Contains(t, Cities, strings.ToLower(flight.Destination),
			"destination %q missing from city vocabulary", flight.Destination)
		assert.Contains(t, Airlines, strings.ToLower(flight.Airline),
			"airline %q missing from airline vocabulary", flight.Airline)
	}
}
