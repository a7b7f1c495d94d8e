package models

import "time"

type User struct {
	BaseModel
	Name         string   `gorm:"not null"`
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	Image        *string

	// Password reset state. Token is single-use and cleared on consumption.
	ResetToken    *string `gorm:"index"`
	ResetTokenExp *time.Time

	// Relations
	Company   *Company   `gorm:"foreignKey:UserID"`
	JobSeeker *JobSeeker `gorm:"foreignKey:UserID"`
}
