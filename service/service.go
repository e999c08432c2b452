package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const FallbackAnswer = "I couldn't generate an answer for that question."

const instrumentationName = "github.com/voyage-finance/ask-server/service"

// Service answers questions through a Completer. It keeps no per-request
// state and is safe for concurrent use.
type Service struct {
	Completer Completer
	Logger    *slog.Logger

	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// New builds a Service on the global tracer and meter providers.
func New(completer Completer, logger *slog.Logger) (*Service, error) {
	return NewWithProviders(completer, logger, otel.GetTracerProvider(), otel.GetMeterProvider())
}

func NewWithProviders(completer Completer, logger *slog.Logger, tp trace.TracerProvider, mp metric.MeterProvider) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	meter := mp.Meter(instrumentationName)
	requests, err := meter.Int64Counter(
		"ask.requests",
		metric.WithDescription("Questions handled, by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ask.requests counter: %w", err)
	}
	duration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Completion service call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}
	return &Service{
		Completer: completer,
		Logger:    logger,
		tracer:    tp.Tracer(instrumentationName),
		requests:  requests,
		duration:  duration,
	}, nil
}

// Ask validates question, asks the completion service and returns the answer
// text. Failures come back as *AskError; everything except a validation
// failure is logged here.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		s.count(ctx, "validation")
		return "", &AskError{Kind: KindValidation, Err: ErrQuestionRequired}
	}

	ctx, span := s.tracer.Start(ctx, "openai_api_call")
	defer span.End()

	start := time.Now()
	content, err := s.Completer.Complete(ctx, question)
	s.duration.Record(ctx, float64(time.Since(start).Milliseconds()))

	if err != nil {
		err = tag(err)
		kind := KindOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, kind.String())
		s.count(ctx, kind.String())
		s.Logger.ErrorContext(ctx, "ask failed", "kind", kind.String(), "error", err)
		return "", err
	}

	s.count(ctx, "ok")
	if content == "" {
		s.Logger.WarnContext(ctx, "completion service returned no content, using fallback answer")
		return FallbackAnswer, nil
	}
	return content, nil
}

func (s *Service) count(ctx context.Context, outcome string) {
	s.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
