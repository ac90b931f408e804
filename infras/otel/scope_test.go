package otel_test

import (
	"agrirent/infras/otel"
	"agrirent/shared/failure"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.Act")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"booking.id":     "b-1",
		"booking.amount": 2500.5,
		"booking.days":   3,
		"booking.ok":     true,
	})
	scope.AddEvent("refetched")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("backend unreachable"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "backend unreachable", spans[0].Status().Description)
	assert.Len(t, spans[0].Attributes(), 5)
	assert.Len(t, spans[0].Events(), 2)
}

func TestScope_ClientErrorKeepsStatus(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.Create")
	scope := otel.NewScope(span)

	scope.SetAttribute("farmer.coordinates", []float64{73.85, 18.52})
	scope.TraceError(failure.NotFound("equipment not found"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.Int("error.code", http.StatusNotFound))
	assert.Contains(t, spans[0].Attributes(), attribute.Float64Slice("farmer.coordinates", []float64{73.85, 18.52}))
	assert.Len(t, spans[0].Events(), 1)
}
