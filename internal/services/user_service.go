package services

import (
	"context"

	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// UserService backs the admin user directory.
type UserService interface {
	List(ctx context.Context, q dto.PageQuery) ([]dto.UserResponse, dto.Pagination, error)
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &UserServiceImpl{users: users}
}

func (s *UserServiceImpl) List(ctx context.Context, q dto.PageQuery) ([]dto.UserResponse, dto.Pagination, error) {
	q.Normalize()

	users, total, err := s.users.List(ctx, q.Page, q.Limit)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return out, dto.NewPagination(total, q.Page, q.Limit), nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}
