package services

import (
	"context"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// JobSeekerService manages the seeker's own profile. The profile row is
// created at registration, so both operations expect it to exist.
type JobSeekerService interface {
	GetMine(ctx context.Context, userID string) (*dto.JobSeekerResponse, error)
	UpdateMine(ctx context.Context, userID string, req *dto.UpdateJobSeekerRequest) (*dto.JobSeekerResponse, error)
}

type JobSeekerServiceImpl struct {
	seekers repositories.JobSeekerRepository
}

func NewJobSeekerService(seekers repositories.JobSeekerRepository) JobSeekerService {
	return &JobSeekerServiceImpl{seekers: seekers}
}

func (s *JobSeekerServiceImpl) GetMine(ctx context.Context, userID string) (*dto.JobSeekerResponse, error) {
	profile, err := s.findByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewJobSeekerResponse(profile)
	return &resp, nil
}

func (s *JobSeekerServiceImpl) UpdateMine(ctx context.Context, userID string, req *dto.UpdateJobSeekerRequest) (*dto.JobSeekerResponse, error) {
	profile, err := s.findByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		profile.Title = req.Title
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = req.ResumeURL
	}
	if req.Skills != nil {
		profile.Skills = dto.StringsToJSON(*req.Skills)
	}

	if err := s.seekers.Update(ctx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobSeekerResponse(profile)
	return &resp, nil
}

func (s *JobSeekerServiceImpl) findByUserID(ctx context.Context, userID string) (*models.JobSeeker, error) {
	profile, err := s.seekers.FindByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.ErrSeekerProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
