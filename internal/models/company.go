package models

type Company struct {
	BaseModel
	Name        string `gorm:"not null"`
	Logo        *string
	Website     *string
	Description *string
	Industry    *string
	Location    *string

	// One company per user, enforced at the database level.
	UserID string `gorm:"type:uuid;uniqueIndex;not null"`

	Jobs []Job `gorm:"foreignKey:CompanyID"`
}
