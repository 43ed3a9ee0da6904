package waitlist

import (
	"context"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/intake"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/metrics"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/store"
	apperrors "github.com/Orbtrix-Space/Orbtrix-website/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/Orbtrix-Space/Orbtrix-website/domain/waitlist")

type WaitlistService interface {
	// Join validates the payload and registers the email. A duplicate email is
	// not an error; it comes back as AlreadySubscribed.
	Join(ctx context.Context, raw map[string]any) (*JoinResponse, error)

	// IsSubscribed reports whether the email is registered, ignoring case.
	IsSubscribed(ctx context.Context, email string) (bool, error)

	// GetAllEntries returns every entry in signup order.
	GetAllEntries(ctx context.Context) ([]WaitlistEntryResponse, error)
}

type waitlistService struct {
	logger    *log.Logger
	store     store.Store
	validator *intake.Validator
	metrics   *metrics.IntakeMetrics
}

func NewWaitlistService(
	logger *log.Logger,
	store store.Store,
	validator *intake.Validator,
	intakeMetrics *metrics.IntakeMetrics,
) WaitlistService {
	return &waitlistService{
		logger:    logger,
		store:     store,
		validator: validator,
		metrics:   intakeMetrics,
	}
}

func (s *waitlistService) Join(ctx context.Context, raw map[string]any) (*JoinResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	ctx, span := tracer.Start(ctx, "waitlist.Join")
	defer span.End()

	if raw == nil {
		logger.Warn("Join received empty request")
		s.record(span, metrics.OutcomeInvalid)
		return nil, apperrors.NewInvalidRequestError("Invalid request body", nil)
	}

	input, err := s.validator.Waitlist(raw)
	if err != nil {
		logger.Warn("Waitlist signup rejected", "fields", apperrors.ValidationFields(err))
		s.record(span, metrics.OutcomeInvalid)
		return nil, err
	}

	entry, err := s.store.AddToWaitlist(ctx, input)
	if apperrors.IsAlreadyExists(err) {
		logger.Info("Waitlist email already registered")
		s.record(span, metrics.OutcomeDuplicate)
		return &JoinResponse{AlreadySubscribed: true}, nil
	}
	if err != nil {
		logger.Error("Failed to add waitlist entry", "error", err)
		s.record(span, metrics.OutcomeError)
		span.RecordError(err)
		span.SetStatus(codes.Error, "add to waitlist failed")
		return nil, err
	}

	s.record(span, metrics.OutcomeCreated)
	logger.Info("Waitlist entry created", "id", entry.ID)

	return &JoinResponse{ID: entry.ID}, nil
}

func (s *waitlistService) IsSubscribed(ctx context.Context, email string) (bool, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	ctx, span := tracer.Start(ctx, "waitlist.IsSubscribed")
	defer span.End()

	found, err := s.store.IsOnWaitlist(ctx, email)
	if err != nil {
		logger.Error("Failed to check waitlist membership", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "membership check failed")
		return false, err
	}

	return found, nil
}

func (s *waitlistService) GetAllEntries(ctx context.Context) ([]WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	ctx, span := tracer.Start(ctx, "waitlist.GetAllEntries")
	defer span.End()

	entries, err := s.store.ListWaitlistEntries(ctx)
	if err != nil {
		logger.Error("Failed to get all waitlist entries", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "list waitlist failed")
		return nil, err
	}

	responses := make([]WaitlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToWaitlistEntryResponse(entry))
	}

	span.SetAttributes(attribute.Int("waitlist.entries", len(responses)))
	return responses, nil
}

func (s *waitlistService) record(span trace.Span, outcome string) {
	span.SetAttributes(attribute.String("intake.outcome", outcome))
	s.metrics.Record(metrics.KindWaitlist, outcome)
}
