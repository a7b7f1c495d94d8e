package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and applicant")
)

type ApplicationFilter struct {
	JobID       string
	ApplicantID string
	// CompanyID scopes to applications against the company's jobs.
	CompanyID string
	Status    models.ApplicationStatus
	Page      int
	Limit     int
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id string) (*models.Application, error)
	Update(ctx context.Context, app *models.Application) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ApplicationFilter) ([]models.Application, int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts the application. The unique index on (job_id, applicant_id)
// makes the insert atomic under concurrent duplicate submissions: exactly one
// succeeds, the rest fail with ErrDuplicateApplication.
func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app *models.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Job.Company").Preload("Applicant").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Update(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Model(app).Updates(map[string]interface{}{
		"status":       app.Status,
		"cover_letter": app.CoverLetter,
	}).Error
}

func (r *ApplicationRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) List(ctx context.Context, filter ApplicationFilter) ([]models.Application, int64, error) {
	var apps []models.Application
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Application{})
	if filter.JobID != "" {
		q = q.Where("applications.job_id = ?", filter.JobID)
	}
	if filter.ApplicantID != "" {
		q = q.Where("applications.applicant_id = ?", filter.ApplicantID)
	}
	if filter.CompanyID != "" {
		q = q.Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.company_id = ?", filter.CompanyID)
	}
	if filter.Status != "" {
		q = q.Where("applications.status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Job").Preload("Job.Company").Preload("Applicant").
		Order("applications.created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}
