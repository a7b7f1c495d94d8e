package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// UpdateJobSeekerRequest patches the seeker's own profile; nil fields keep
// their current value.
type UpdateJobSeekerRequest struct {
	Title     *string   `json:"title"`
	Bio       *string   `json:"bio"`
	ResumeURL *string   `json:"resumeUrl" validate:"omitempty,url"`
	Skills    *[]string `json:"skills"`
}

type JobSeekerResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     *string   `json:"title,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	ResumeURL *string   `json:"resumeUrl,omitempty"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewJobSeekerResponse(p *models.JobSeeker) JobSeekerResponse {
	return JobSeekerResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Bio:       p.Bio,
		ResumeURL: p.ResumeURL,
		Skills:    JSONToStrings(p.Skills),
		CreatedAt: p.CreatedAt,
	}
}
