package models

type Application struct {
	BaseModel
	JobID       string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant"`
	ApplicantID string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant"`
	ResumeURL   string `gorm:"not null"`
	CoverLetter *string
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'"`

	Job       *Job  `gorm:"foreignKey:JobID"`
	Applicant *User `gorm:"foreignKey:ApplicantID"`
}
