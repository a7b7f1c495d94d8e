package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type CreateJobRequest struct {
	Title            string     `json:"title" validate:"required,min=3"`
	Description      string     `json:"description" validate:"required,min=10"`
	Requirements     []string   `json:"requirements" validate:"required"`
	Responsibilities []string   `json:"responsibilities" validate:"required"`
	Location         string     `json:"location" validate:"required"`
	Salary           *string    `json:"salary"`
	JobType          string     `json:"jobType" validate:"required,jobtype"`
	ExperienceLevel  string     `json:"experienceLevel" validate:"required"`
	Skills           []string   `json:"skills" validate:"required"`
	Deadline         *time.Time `json:"deadline"`
	CompanyID        string     `json:"companyId" validate:"required,uuid"`
}

// UpdateJobRequest has patch semantics: only supplied fields are mutated.
type UpdateJobRequest struct {
	Title            *string    `json:"title" validate:"omitempty,min=3"`
	Description      *string    `json:"description" validate:"omitempty,min=10"`
	Requirements     []string   `json:"requirements"`
	Responsibilities []string   `json:"responsibilities"`
	Location         *string    `json:"location"`
	Salary           *string    `json:"salary"`
	JobType          *string    `json:"jobType" validate:"omitempty,jobtype"`
	ExperienceLevel  *string    `json:"experienceLevel"`
	Skills           []string   `json:"skills"`
	Deadline         *time.Time `json:"deadline"`
}

type JobListQuery struct {
	PageQuery
	Search    string `form:"search"`
	CompanyID string `form:"companyId" validate:"omitempty,uuid"`
}

type JobCompanySummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Logo     *string `json:"logo,omitempty"`
	Industry *string `json:"industry,omitempty"`
	Location *string `json:"location,omitempty"`
}

type JobResponse struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Requirements     []string           `json:"requirements"`
	Responsibilities []string           `json:"responsibilities"`
	Location         string             `json:"location"`
	Salary           *string            `json:"salary,omitempty"`
	JobType          models.JobType     `json:"jobType"`
	ExperienceLevel  string             `json:"experienceLevel"`
	Skills           []string           `json:"skills"`
	Deadline         *time.Time         `json:"deadline,omitempty"`
	CompanyID        string             `json:"companyId"`
	PostedByID       string             `json:"postedById"`
	Company          *JobCompanySummary `json:"company,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
}

func NewJobResponse(j *models.Job) JobResponse {
	resp := JobResponse{
		ID:               j.ID,
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     JSONToStrings(j.Requirements),
		Responsibilities: JSONToStrings(j.Responsibilities),
		Location:         j.Location,
		Salary:           j.Salary,
		JobType:          j.JobType,
		ExperienceLevel:  j.ExperienceLevel,
		Skills:           JSONToStrings(j.Skills),
		Deadline:         j.Deadline,
		CompanyID:        j.CompanyID,
		PostedByID:       j.PostedByID,
		CreatedAt:        j.CreatedAt,
	}
	if j.Company != nil {
		resp.Company = &JobCompanySummary{
			ID:       j.Company.ID,
			Name:     j.Company.Name,
			Logo:     j.Company.Logo,
			Industry: j.Company.Industry,
			Location: j.Company.Location,
		}
	}
	return resp
}

func NewJobResponses(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}
