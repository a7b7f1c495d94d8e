package models

import "gorm.io/datatypes"

type JobSeeker struct {
	BaseModel
	UserID    string `gorm:"type:uuid;uniqueIndex;not null"`
	Title     *string
	Bio       *string
	ResumeURL *string
	Skills    datatypes.JSON `gorm:"type:jsonb"`
}
