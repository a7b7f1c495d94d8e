package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyExists   = errors.New("company already exists for this user")
)

type CompanyFilter struct {
	Search string
	Page   int
	Limit  int
}

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindByID(ctx context.Context, id string) (*models.Company, error)
	FindByUserID(ctx context.Context, userID string) (*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter CompanyFilter) ([]models.Company, int64, error)
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

// Create inserts the company. The unique index on user_id enforces the
// one-company-per-user invariant atomically.
func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *models.Company) error {
	err := r.db.WithContext(ctx).Create(company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCompanyExists
		}
		return err
	}
	return nil
}

func (r *CompanyRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Model(company).Updates(map[string]interface{}{
		"name":        company.Name,
		"logo":        company.Logo,
		"website":     company.Website,
		"description": company.Description,
		"industry":    company.Industry,
		"location":    company.Location,
	}).Error
}

// Delete removes the company together with its jobs and their applications,
// in one transaction.
func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id IN (?)",
			tx.Model(&models.Job{}).Select("id").Where("company_id = ?", id),
		).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&models.Job{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Company{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCompanyNotFound
		}
		return nil
	})
}

func (r *CompanyRepositoryImpl) List(ctx context.Context, filter CompanyFilter) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Company{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR industry ILIKE ? OR location ILIKE ?", pattern, pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("name ASC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}
