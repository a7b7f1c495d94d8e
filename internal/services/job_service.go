package services

import (
	"context"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	List(ctx context.Context, q dto.JobListQuery) ([]dto.JobResponse, dto.Pagination, error)
	GetByID(ctx context.Context, id string) (*dto.JobResponse, error)
	Create(ctx context.Context, actor auth.Actor, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(ctx context.Context, actor auth.Actor, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(ctx context.Context, actor auth.Actor, id string) error
}

type JobServiceImpl struct {
	jobs      repositories.JobRepository
	companies repositories.CompanyRepository
	notifier  Notifier
}

func NewJobService(jobs repositories.JobRepository, companies repositories.CompanyRepository, notifier Notifier) JobService {
	return &JobServiceImpl{
		jobs:      jobs,
		companies: companies,
		notifier:  notifier,
	}
}

func (s *JobServiceImpl) List(ctx context.Context, q dto.JobListQuery) ([]dto.JobResponse, dto.Pagination, error) {
	q.Normalize()

	jobs, total, err := s.jobs.List(ctx, repositories.JobFilter{
		Search:    q.Search,
		CompanyID: q.CompanyID,
		Page:      q.Page,
		Limit:     q.Limit,
	})
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	return dto.NewJobResponses(jobs), dto.NewPagination(total, q.Page, q.Limit), nil
}

func (s *JobServiceImpl) GetByID(ctx context.Context, id string) (*dto.JobResponse, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// Create posts a job for the given company. Non-admin actors may only post
// on behalf of their own company.
func (s *JobServiceImpl) Create(ctx context.Context, actor auth.Actor, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if !auth.CanCreateJob(actor) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	company, err := s.companies.FindByID(ctx, req.CompanyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !actor.IsAdmin() && company.UserID != actor.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	job := &models.Job{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     dto.StringsToJSON(req.Requirements),
		Responsibilities: dto.StringsToJSON(req.Responsibilities),
		Location:         req.Location,
		Salary:           req.Salary,
		JobType:          models.JobType(req.JobType),
		ExperienceLevel:  req.ExperienceLevel,
		Skills:           dto.StringsToJSON(req.Skills),
		Deadline:         req.Deadline,
		CompanyID:        company.ID,
		PostedByID:       actor.ID,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.Company = company
	s.notifier.JobCreated(job)

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) Update(ctx context.Context, actor auth.Actor, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanManageJob(actor, job.PostedByID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applyJobPatch(job, req)
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifier.JobUpdated(job)

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// Delete removes the job and all applications against it.
func (s *JobServiceImpl) Delete(ctx context.Context, actor auth.Actor, id string) error {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CanManageJob(actor, job.PostedByID) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.jobs.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}

	s.notifier.JobDeleted(id)
	return nil
}

func applyJobPatch(job *models.Job, req *dto.UpdateJobRequest) {
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = dto.StringsToJSON(req.Requirements)
	}
	if req.Responsibilities != nil {
		job.Responsibilities = dto.StringsToJSON(req.Responsibilities)
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.JobType != nil {
		job.JobType = models.JobType(*req.JobType)
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Skills != nil {
		job.Skills = dto.StringsToJSON(req.Skills)
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}
}
