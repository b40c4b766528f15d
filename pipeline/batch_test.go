package pipeline

import (
	"context"
	"testing"

	"github.com/poiesic/flightdesk/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatch(t *testing.T) {
	t.Run("nil orchestrator", func(t *testing.T) {
		_, err := NewBatch(nil)
		assert.Equal(t, ErrOrchestratorRequired, err)
	})

	t.Run("valid configuration", func(t *testing.T) {
		svc := mock.NewLanguageService()
		svc.SetAvailable(false)
		b, err := NewBatch(newTestOrchestrator(t, svc), WithPoolSize(4))
		require.NoError(t, err)
		defer b.Close()
		assert.NotNil(t, b)
	})
}

func TestBatchRun(t *testing.T) {
	svc := mock.NewLanguageService()
	svc.SetAvailable(false)
	b, err := NewBatch(newTestOrchestrator(t, svc), WithPoolSize(2))
	require.NoError(t, err)
	defer b.Close()

	queries := []string{
		"What is the status of flight NY100?",
		"Tell me about flight XYZ999",
		"Random text with nothing useful",
		"Are there any flights from Chicago?",
		"flight la200",
	}

	results := b.Run(context.Background(), queries)
	require.Len(t, results, len(queries))

	// Results line up with input positions regardless of completion order.
	assert.True(t, results[0].Success)
	assert.Equal(t, "NY100", results[0].Flights[0].FlightNumber)

	assert.False(t, results[1].Success)
	assert.Equal(t, MsgNoFlightsFound, results[1].Message)

	assert.False(t, results[2].Success)
	assert.Equal(t, MsgCouldNotUnderstand, results[2].Message)

	assert.True(t, results[3].Success)
	assert.Equal(t, "CH300", results[3].Flights[0].FlightNumber)

	assert.True(t, results[4].Success)
	assert.Equal(t, "LA200", results[4].Flights[0].FlightNumber)
}

func TestBatchRun_Empty(t *testing.T) {
	svc := mock.NewLanguageService()
	svc.SetAvailable(false)
	b, err := NewBatch(newTestOrchestrator(t, svc))
	require.NoError(t, err)
	defer b.Close()

	results := b.Run(context.Background(), nil)
	assert.Empty(t, results)
}
