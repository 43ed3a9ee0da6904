package contact

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

var tracer = otel.Tracer("github.com/Orbtrix-Space/Orbtrix-website/domain/contact")

type ContactService interface {
	// Submit validates the payload and stores it as a new contact submission.
	Submit(ctx context.Context, raw map[string]any) (*SubmissionResponse, error)

	// GetAllSubmissions returns every submission in the order received.
	GetAllSubmissions(ctx context.Context) ([]ContactSubmissionResponse, error)
}

type contactService struct {
	logger    *log.Logger
	store     store.Store
	validator *intake.Validator
	metrics   *metrics.IntakeMetrics
}

func NewContactService(
	logger *log.Logger,
	store store.Store,
	validator *intake.Validator,
	intakeMetrics *metrics.IntakeMetrics,
) ContactService {
	return &contactService{
		logger:    logger,
		store:     store,
		validator: validator,
		metrics:   intakeMetrics,
	}
}

func (s *contactService) Submit(ctx context.Context, raw map[string]any) (*SubmissionResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	ctx, span := tracer.Start(ctx, "contact.Submit")
	defer span.End()

	if raw == nil {
		logger.Warn("Submit received empty request")
		s.record(span, metrics.OutcomeInvalid)
		return nil, apperrors.NewInvalidRequestError("Invalid request body", nil)
	}

	input, err := s.validator.Contact(raw)
	if err != nil {
		logger.Warn("Contact submission rejected", "fields", apperrors.ValidationFields(err))
		s.record(span, metrics.OutcomeInvalid)
		return nil, err
	}

	submission, err := s.store.CreateContactSubmission(ctx, input)
	if err != nil {
		logger.Error("Failed to store contact submission", "error", err)
		s.record(span, metrics.OutcomeError)
		span.RecordError(err)
		span.SetStatus(codes.Error, "store contact submission failed")
		return nil, err
	}

	s.record(span, metrics.OutcomeCreated)
	logger.Info("Contact submission received", "id", submission.ID)

	return &SubmissionResponse{ID: submission.ID}, nil
}

func (s *contactService) GetAllSubmissions(ctx context.Context) ([]ContactSubmissionResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	ctx, span := tracer.Start(ctx, "contact.GetAllSubmissions")
	defer span.End()

	submissions, err := s.store.ListContactSubmissions(ctx)
	if err != nil {
		logger.Error("Failed to get contact submissions", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "list contact submissions failed")
		return nil, err
	}

	responses := make([]ContactSubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, ToContactSubmissionResponse(submission))
	}

	span.SetAttributes(attribute.Int("contact.submissions", len(responses)))
	return responses, nil
}

func (s *contactService) record(span trace.Span, outcome string) {
	span.SetAttributes(attribute.String("intake.outcome", outcome))
	s.metrics.Record(metrics.KindContact, outcome)
}
