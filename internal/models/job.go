package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	Title            string         `gorm:"not null"`
	Description      string         `gorm:"not null"`
	Requirements     datatypes.JSON `gorm:"type:jsonb"`
	Responsibilities datatypes.JSON `gorm:"type:jsonb"`
	Location         string         `gorm:"not null"`
	Salary           *string
	JobType          JobType `gorm:"type:varchar(20);not null"`
	ExperienceLevel  string
	Skills           datatypes.JSON `gorm:"type:jsonb"`
	Deadline         *time.Time

	CompanyID  string `gorm:"type:uuid;not null;index"`
	PostedByID string `gorm:"type:uuid;not null;index"`

	Company      *Company      `gorm:"foreignKey:CompanyID"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}
