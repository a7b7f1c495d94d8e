package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// UpsertCompanyRequest serves both create and update of the company profile;
// the profile is keyed by the requesting user's ID.
type UpsertCompanyRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Logo        *string `json:"logo" validate:"omitempty,url"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Description *string `json:"description"`
	Industry    *string `json:"industry"`
	Location    *string `json:"location"`
}

type CompanyListQuery struct {
	PageQuery
	Search string `form:"search"`
}

type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Logo        *string   `json:"logo,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Description *string   `json:"description,omitempty"`
	Industry    *string   `json:"industry,omitempty"`
	Location    *string   `json:"location,omitempty"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewCompanyResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Logo:        c.Logo,
		Website:     c.Website,
		Description: c.Description,
		Industry:    c.Industry,
		Location:    c.Location,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt,
	}
}
