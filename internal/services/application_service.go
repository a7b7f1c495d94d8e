package services

import (
	"context"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationService interface {
	List(ctx context.Context, actor auth.Actor, q dto.ApplicationListQuery) ([]dto.ApplicationResponse, dto.Pagination, error)
	GetByID(ctx context.Context, actor auth.Actor, id string) (*dto.ApplicationResponse, error)
	Create(ctx context.Context, actor auth.Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	Update(ctx context.Context, actor auth.Actor, id string, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error)
	Delete(ctx context.Context, actor auth.Actor, id string) error
}

type ApplicationServiceImpl struct {
	applications repositories.ApplicationRepository
	jobs         repositories.JobRepository
	companies    repositories.CompanyRepository
}

func NewApplicationService(
	applications repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	companies repositories.CompanyRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applications: applications,
		jobs:         jobs,
		companies:    companies,
	}
}

// List scopes results by role: seekers see their own applications, company
// users see applications against their company's jobs, admins see everything.
func (s *ApplicationServiceImpl) List(ctx context.Context, actor auth.Actor, q dto.ApplicationListQuery) ([]dto.ApplicationResponse, dto.Pagination, error) {
	q.Normalize()

	filter := repositories.ApplicationFilter{
		JobID:  q.JobID,
		Status: models.ApplicationStatus(q.Status),
		Page:   q.Page,
		Limit:  q.Limit,
	}

	switch actor.Role {
	case models.UserRoleJobSeeker:
		filter.ApplicantID = actor.ID
	case models.UserRoleCompany:
		company, err := s.companies.FindByUserID(ctx, actor.ID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCompanyNotFound) {
				return nil, dto.Pagination{}, apperrors.ErrCompanyNotFound
			}
			return nil, dto.Pagination{}, apperrors.InternalError(err)
		}
		filter.CompanyID = company.ID
	case models.UserRoleAdmin:
		// Unscoped, but admins may narrow the list to one company.
		filter.CompanyID = q.CompanyID
	default:
		return nil, dto.Pagination{}, apperrors.ErrInsufficientPermissions
	}

	apps, total, err := s.applications.List(ctx, filter)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	return dto.NewApplicationResponses(apps), dto.NewPagination(total, q.Page, q.Limit), nil
}

func (s *ApplicationServiceImpl) GetByID(ctx context.Context, actor auth.Actor, id string) (*dto.ApplicationResponse, error) {
	app, err := s.findAuthorized(ctx, actor, id, auth.CanViewApplication)
	if err != nil {
		return nil, err
	}

	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

// Create submits an application. The unique index on (job_id, applicant_id)
// decides duplicates, so two concurrent submissions cannot both succeed.
func (s *ApplicationServiceImpl) Create(ctx context.Context, actor auth.Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if !auth.CanApply(actor) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if _, err := s.jobs.FindByID(ctx, req.JobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	app := &models.Application{
		JobID:       req.JobID,
		ApplicantID: actor.ID,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applications.Create(ctx, app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	full, err := s.applications.FindByID(ctx, app.ID)
	if err != nil {
		// The row exists; answer with what we have.
		resp := dto.NewApplicationResponse(app)
		return &resp, nil
	}

	resp := dto.NewApplicationResponse(full)
	return &resp, nil
}

// Update handles two independently authorized fields: status changes belong
// to the owning company (or admin), cover letter edits to the applicant only.
func (s *ApplicationServiceImpl) Update(ctx context.Context, actor auth.Actor, id string, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	if req.Status == nil && req.CoverLetter == nil {
		return nil, apperrors.NewBadRequestError("Nothing to update")
	}

	app, err := s.findAuthorized(ctx, actor, id, auth.CanViewApplication)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := models.ApplicationStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.ErrInvalidApplicationStatus
		}
		if !auth.CanSetApplicationStatus(actor, companyOwnerID(app)) {
			return nil, apperrors.ErrInsufficientPermissions
		}
		app.Status = status
	}

	if req.CoverLetter != nil {
		if !auth.CanEditCoverLetter(actor, app.ApplicantID) {
			return nil, apperrors.ErrInsufficientPermissions
		}
		app.CoverLetter = req.CoverLetter
	}

	if err := s.applications.Update(ctx, app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

func (s *ApplicationServiceImpl) Delete(ctx context.Context, actor auth.Actor, id string) error {
	_, err := s.findAuthorized(ctx, actor, id, auth.CanDeleteApplication)
	if err != nil {
		return err
	}

	if err := s.applications.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) findAuthorized(
	ctx context.Context,
	actor auth.Actor,
	id string,
	allowed func(auth.Actor, string, string) bool,
) (*models.Application, error) {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !allowed(actor, app.ApplicantID, companyOwnerID(app)) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return app, nil
}

func companyOwnerID(app *models.Application) string {
	if app.Job != nil && app.Job.Company != nil {
		return app.Job.Company.UserID
	}
	return ""
}
