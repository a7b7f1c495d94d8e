package services

import (
	"context"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type CompanyService interface {
	List(ctx context.Context, q dto.CompanyListQuery) ([]dto.CompanyResponse, dto.Pagination, error)
	GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error)
	GetMine(ctx context.Context, userID string) (*dto.CompanyResponse, error)
	Upsert(ctx context.Context, actor auth.Actor, req *dto.UpsertCompanyRequest) (*dto.CompanyResponse, error)
	Update(ctx context.Context, actor auth.Actor, id string, req *dto.UpsertCompanyRequest) (*dto.CompanyResponse, error)
	Delete(ctx context.Context, actor auth.Actor, id string) error
}

type CompanyServiceImpl struct {
	companies repositories.CompanyRepository
	notifier  Notifier
}

func NewCompanyService(companies repositories.CompanyRepository, notifier Notifier) CompanyService {
	return &CompanyServiceImpl{
		companies: companies,
		notifier:  notifier,
	}
}

func (s *CompanyServiceImpl) List(ctx context.Context, q dto.CompanyListQuery) ([]dto.CompanyResponse, dto.Pagination, error) {
	q.Normalize()

	companies, total, err := s.companies.List(ctx, repositories.CompanyFilter{
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	out := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, dto.NewCompanyResponse(&companies[i]))
	}
	return out, dto.NewPagination(total, q.Page, q.Limit), nil
}

func (s *CompanyServiceImpl) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

func (s *CompanyServiceImpl) GetMine(ctx context.Context, userID string) (*dto.CompanyResponse, error) {
	company, err := s.companies.FindByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

// Upsert creates or updates the company profile keyed by the actor's user ID.
func (s *CompanyServiceImpl) Upsert(ctx context.Context, actor auth.Actor, req *dto.UpsertCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.companies.FindByUserID(ctx, actor.ID)
	if err != nil && !apperrors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if company == nil {
		company = &models.Company{UserID: actor.ID}
		applyCompanyRequest(company, req)
		if err := s.companies.Create(ctx, company); err != nil {
			if apperrors.Is(err, repositories.ErrCompanyExists) {
				// Lost a concurrent create for the same user.
				return nil, apperrors.ErrCompanyAlreadyExists
			}
			return nil, apperrors.InternalError(err)
		}
	} else {
		applyCompanyRequest(company, req)
		if err := s.companies.Update(ctx, company); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	s.notifier.CompanyUpdated(company)

	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

func (s *CompanyServiceImpl) Update(ctx context.Context, actor auth.Actor, id string, req *dto.UpsertCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanManageCompany(actor, company.UserID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applyCompanyRequest(company, req)
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifier.CompanyUpdated(company)

	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

func (s *CompanyServiceImpl) Delete(ctx context.Context, actor auth.Actor, id string) error {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CanManageCompany(actor, company.UserID) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.companies.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func applyCompanyRequest(company *models.Company, req *dto.UpsertCompanyRequest) {
	company.Name = req.Name
	if req.Logo != nil {
		company.Logo = req.Logo
	}
	if req.Website != nil {
		company.Website = req.Website
	}
	if req.Description != nil {
		company.Description = req.Description
	}
	if req.Industry != nil {
		company.Industry = req.Industry
	}
	if req.Location != nil {
		company.Location = req.Location
	}
}
