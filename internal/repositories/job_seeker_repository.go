package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobSeekerNotFound = errors.New("job seeker profile not found")

type JobSeekerRepository interface {
	Create(ctx context.Context, profile *models.JobSeeker) error
	FindByUserID(ctx context.Context, userID string) (*models.JobSeeker, error)
	Update(ctx context.Context, profile *models.JobSeeker) error
}

type JobSeekerRepositoryImpl struct {
	db *gorm.DB
}

func NewJobSeekerRepository(db *gorm.DB) JobSeekerRepository {
	return &JobSeekerRepositoryImpl{db: db}
}

func (r *JobSeekerRepositoryImpl) Create(ctx context.Context, profile *models.JobSeeker) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *JobSeekerRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*models.JobSeeker, error) {
	var profile models.JobSeeker
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobSeekerNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *JobSeekerRepositoryImpl) Update(ctx context.Context, profile *models.JobSeeker) error {
	return r.db.WithContext(ctx).Model(profile).Updates(map[string]interface{}{
		"title":      profile.Title,
		"bio":        profile.Bio,
		"resume_url": profile.ResumeURL,
		"skills":     profile.Skills,
	}).Error
}
