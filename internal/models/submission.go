package models

import (
	"strings"
	"time"
)

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	ID           string    `gorm:"type:text;primaryKey"`
	Name         string    `gorm:"not null"`
	Organization string    `gorm:"not null;default:''"`
	Email        string    `gorm:"not null"`
	Message      string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// WaitlistEntry is an email address registered for early product access.
type WaitlistEntry struct {
	ID        string    `gorm:"type:text;primaryKey"`
	Email     string    `gorm:"not null"`
	EmailKey  string    `gorm:"not null;uniqueIndex:idx_waitlist_entries_email_key"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// ContactInput is a validated contact form payload.
type ContactInput struct {
	Name         string
	Organization string
	Email        string
	Message      string
}

// WaitlistInput is a validated waitlist signup payload.
type WaitlistInput struct {
	Email string
}

// WaitlistKey is the case-insensitive identity of a waitlist email.
func WaitlistKey(email string) string {
	return strings.ToLower(email)
}

// ModelRegistry lists the models the SQL store migrates.
var ModelRegistry = []interface{}{
	&ContactSubmission{},
	&WaitlistEntry{},
}
