package waitlist

import (
	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/constants"
)

// JoinResponse is the outcome of a signup. ID is empty when the email was
// already registered.
type JoinResponse struct {
	ID                string
	AlreadySubscribed bool
}

type WaitlistEntryResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func ToWaitlistEntryResponse(entry models.WaitlistEntry) WaitlistEntryResponse {
	return WaitlistEntryResponse{
		ID:        entry.ID,
		Email:     entry.Email,
		CreatedAt: entry.CreatedAt.UTC().Format(constants.RFC3339MilliDateTimeFormat),
	}
}
