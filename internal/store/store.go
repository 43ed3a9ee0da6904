// Package store holds contact submissions and waitlist entries.
package store

//go:generate mockgen -source=store.go -destination=mock_store.go -package=store

import (
	"context"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
)

type Store interface {
	// CreateContactSubmission assigns an id and creation time and stores the submission.
	CreateContactSubmission(ctx context.Context, input models.ContactInput) (models.ContactSubmission, error)
	// ListContactSubmissions returns every submission in insertion order.
	ListContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error)
	// AddToWaitlist stores a new entry, or returns an ALREADY_EXISTS error when an
	// entry with the same email (ignoring case) is present.
	AddToWaitlist(ctx context.Context, input models.WaitlistInput) (models.WaitlistEntry, error)
	// IsOnWaitlist reports whether an entry with the same email (ignoring case) exists.
	IsOnWaitlist(ctx context.Context, email string) (bool, error)
	// ListWaitlistEntries returns every entry in insertion order.
	ListWaitlistEntries(ctx context.Context) ([]models.WaitlistEntry, error)
	Ping(ctx context.Context) error
	Close() error
}

const alreadyOnWaitlistMessage = "email already on waitlist"
