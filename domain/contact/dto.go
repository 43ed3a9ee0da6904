package contact

import (
	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	"github.com/Orbtrix-Space/Orbtrix-website/pkg/constants"
)

type SubmissionResponse struct {
	ID string
}

type ContactSubmissionResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Message      string `json:"message"`
	CreatedAt    string `json:"createdAt"`
}

func ToContactSubmissionResponse(submission models.ContactSubmission) ContactSubmissionResponse {
	return ContactSubmissionResponse{
		ID:           submission.ID,
		Name:         submission.Name,
		Organization: submission.Organization,
		Email:        submission.Email,
		Message:      submission.Message,
		CreatedAt:    submission.CreatedAt.UTC().Format(constants.RFC3339MilliDateTimeFormat),
	}
}
