package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type CreateApplicationRequest struct {
	JobID       string  `json:"jobId" validate:"required,uuid"`
	ResumeURL   string  `json:"resumeUrl" validate:"required,url"`
	CoverLetter *string `json:"coverLetter"`
}

// UpdateApplicationRequest: status and coverLetter have independent
// authorization rules, checked in the service.
type UpdateApplicationRequest struct {
	Status      *string `json:"status" validate:"omitempty,appstatus"`
	CoverLetter *string `json:"coverLetter"`
}

// ApplicationListQuery: companyId only takes effect for admins; other roles
// are scoped by the service regardless of what they ask for.
type ApplicationListQuery struct {
	PageQuery
	JobID     string `form:"jobId" validate:"omitempty,uuid"`
	CompanyID string `form:"companyId" validate:"omitempty,uuid"`
	Status    string `form:"status" validate:"omitempty,appstatus"`
}

type ApplicationJobSummary struct {
	ID      string             `json:"id"`
	Title   string             `json:"title"`
	Company *JobCompanySummary `json:"company,omitempty"`
}

type ApplicationApplicantSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image,omitempty"`
}

type ApplicationResponse struct {
	ID          string                       `json:"id"`
	JobID       string                       `json:"jobId"`
	ApplicantID string                       `json:"applicantId"`
	ResumeURL   string                       `json:"resumeUrl"`
	CoverLetter *string                      `json:"coverLetter,omitempty"`
	Status      models.ApplicationStatus     `json:"status"`
	Job         *ApplicationJobSummary       `json:"job,omitempty"`
	Applicant   *ApplicationApplicantSummary `json:"applicant,omitempty"`
	CreatedAt   time.Time                    `json:"createdAt"`
}

func NewApplicationResponse(a *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		ResumeURL:   a.ResumeURL,
		CoverLetter: a.CoverLetter,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
	if a.Job != nil {
		summary := &ApplicationJobSummary{
			ID:    a.Job.ID,
			Title: a.Job.Title,
		}
		if a.Job.Company != nil {
			summary.Company = &JobCompanySummary{
				ID:   a.Job.Company.ID,
				Name: a.Job.Company.Name,
				Logo: a.Job.Company.Logo,
			}
		}
		resp.Job = summary
	}
	if a.Applicant != nil {
		resp.Applicant = &ApplicationApplicantSummary{
			ID:    a.Applicant.ID,
			Name:  a.Applicant.Name,
			Email: a.Applicant.Email,
			Image: a.Applicant.Image,
		}
	}
	return resp
}

func NewApplicationResponses(apps []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationResponse(&apps[i]))
	}
	return out
}
