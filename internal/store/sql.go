package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	apperrors "github.com/Orbtrix-Space/Orbtrix-website/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SQLStore keeps submissions in a gorm-managed database. Waitlist uniqueness
// is enforced by the unique index on email_key.
type SQLStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *SQLStore) CreateContactSubmission(ctx context.Context, input models.ContactInput) (models.ContactSubmission, error) {
	submission := models.ContactSubmission{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Organization: input.Organization,
		Email:        input.Email,
		Message:      input.Message,
		CreatedAt:    s.now(),
	}

	if err := s.db.WithContext(ctx).Create(&submission).Error; err != nil {
		return models.ContactSubmission{}, apperrors.NewDatabaseError("unable to create contact submission", err)
	}

	return submission, nil
}

func (s *SQLStore) ListContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	submissions := []models.ContactSubmission{}

	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&submissions).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch contact submissions", err)
	}

	return submissions, nil
}

func (s *SQLStore) AddToWaitlist(ctx context.Context, input models.WaitlistInput) (models.WaitlistEntry, error) {
	entry := models.WaitlistEntry{
		ID:        uuid.NewString(),
		Email:     input.Email,
		EmailKey:  models.WaitlistKey(input.Email),
		CreatedAt: s.now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.WaitlistEntry{}).Where("email_key = ?", entry.EmailKey).Count(&count).Error; err != nil {
			return apperrors.NewDatabaseError("unable to check waitlist membership", err)
		}

		if count > 0 {
			return apperrors.NewAlreadyExistsError(alreadyOnWaitlistMessage, nil)
		}

		if err := tx.Create(&entry).Error; err != nil {
			// A concurrent insert of the same email can pass the count above; the
			// unique index still rejects it.
			if isDuplicateKey(err) {
				return apperrors.NewAlreadyExistsError(alreadyOnWaitlistMessage, err)
			}
			return apperrors.NewDatabaseError("unable to create waitlist entry", err)
		}

		return nil
	})
	if err != nil {
		return models.WaitlistEntry{}, err
	}

	return entry, nil
}

func (s *SQLStore) IsOnWaitlist(ctx context.Context, email string) (bool, error) {
	var count int64

	err := s.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("email_key = ?", models.WaitlistKey(email)).
		Count(&count).Error
	if err != nil {
		return false, apperrors.NewDatabaseError("unable to check waitlist membership", err)
	}

	return count > 0, nil
}

func (s *SQLStore) ListWaitlistEntries(ctx context.Context) ([]models.WaitlistEntry, error) {
	entries := []models.WaitlistEntry{}

	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get database instance: %w", err)
	}

	return sqlDB.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get database instance: %w", err)
	}

	return sqlDB.Close()
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
