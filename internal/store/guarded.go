package store

import (
	"context"
	"errors"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/circuitbreaker"
	apperrors "github.com/Orbtrix-Space/Orbtrix-website/pkg/errors"
)

const storeUnavailableMessage = "submission store temporarily unavailable"

// GuardedStore wraps a Store with a circuit breaker so a failing database is
// reported immediately instead of on every request timeout. Ping and Close
// always reach the wrapped store.
type GuardedStore struct {
	inner   Store
	breaker *circuitbreaker.Breaker
}

func NewGuardedStore(inner Store, config circuitbreaker.Config) *GuardedStore {
	config.IsFailure = IsStoreFault
	return &GuardedStore{
		inner:   inner,
		breaker: circuitbreaker.New(config),
	}
}

// IsStoreFault reports whether err is an infrastructure failure, as opposed to
// an expected outcome such as a duplicate waitlist email.
func IsStoreFault(err error) bool {
	switch apperrors.GetErrorType(err) {
	case apperrors.ErrorTypeAlreadyExists, apperrors.ErrorTypeValidation,
		apperrors.ErrorTypeInvalidRequest, apperrors.ErrorTypeNotFound:
		return false
	default:
		return true
	}
}

func (s *GuardedStore) State() circuitbreaker.State {
	return s.breaker.State()
}

func (s *GuardedStore) call(ctx context.Context, fn func(context.Context) error) error {
	err := s.breaker.Call(ctx, fn)
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return apperrors.NewDatabaseError(storeUnavailableMessage, err)
	}
	return err
}

func (s *GuardedStore) CreateContactSubmission(ctx context.Context, input models.ContactInput) (models.ContactSubmission, error) {
	var out models.ContactSubmission
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.inner.CreateContactSubmission(ctx, input)
		return err
	})
	return out, err
}

func (s *GuardedStore) ListContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	var out []models.ContactSubmission
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.inner.ListContactSubmissions(ctx)
		return err
	})
	return out, err
}

func (s *GuardedStore) AddToWaitlist(ctx context.Context, input models.WaitlistInput) (models.WaitlistEntry, error) {
	var out models.WaitlistEntry
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.inner.AddToWaitlist(ctx, input)
		return err
	})
	return out, err
}

func (s *GuardedStore) IsOnWaitlist(ctx context.Context, email string) (bool, error) {
	var out bool
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.inner.IsOnWaitlist(ctx, email)
		return err
	})
	return out, err
}

func (s *GuardedStore) ListWaitlistEntries(ctx context.Context) ([]models.WaitlistEntry, error) {
	var out []models.WaitlistEntry
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.inner.ListWaitlistEntries(ctx)
		return err
	})
	return out, err
}

func (s *GuardedStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

func (s *GuardedStore) Close() error {
	return s.inner.Close()
}
