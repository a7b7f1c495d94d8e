package services

import (
	"context"
	"fmt"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const resetTokenTTL = time.Hour

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AuthServiceImpl struct {
	users     repositories.UserRepository
	companies repositories.CompanyRepository
	seekers   repositories.JobSeekerRepository
	emails    email.Provider

	jwtSecret   string
	tokenTTL    time.Duration
	rememberTTL time.Duration
	baseURL     string
}

func NewAuthService(
	users repositories.UserRepository,
	companies repositories.CompanyRepository,
	seekers repositories.JobSeekerRepository,
	emails email.Provider,
	jwtSecret string,
	tokenTTL, rememberTTL time.Duration,
	baseURL string,
) AuthService {
	return &AuthServiceImpl{
		users:       users,
		companies:   companies,
		seekers:     seekers,
		emails:      emails,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		rememberTTL: rememberTTL,
		baseURL:     baseURL,
	}
}

// Register creates the user plus an empty role profile (company or job
// seeker). The unique index on email makes duplicate registration a single
// atomic failure, not a check-then-create race.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	role := models.UserRole(req.Role)
	if !role.Valid() || role == models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.createRoleProfile(ctx, user); err != nil {
		// Compensate so a half-registered account is not left behind.
		if delErr := s.users.Delete(ctx, user.ID); delErr != nil {
			logger.CtxWithError(ctx, "failed to clean up user after profile error", delErr, "user_id", user.ID)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AuthServiceImpl) createRoleProfile(ctx context.Context, user *models.User) error {
	if user.Role == models.UserRoleCompany {
		return s.companies.Create(ctx, &models.Company{
			Name:   user.Name,
			UserID: user.ID,
		})
	}
	return s.seekers.Create(ctx, &models.JobSeeker{
		UserID: user.ID,
		Skills: dto.StringsToJSON(nil),
	})
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	ttl := s.tokenTTL
	if req.RememberMe {
		ttl = s.rememberTTL
	}

	token, err := auth.GenerateToken(s.jwtSecret, ttl, user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		User:        dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// RequestPasswordReset stores a single-use token on the user row and mails
// the reset link. Always succeeds from the caller's point of view so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token := uuid.NewString()
	exp := time.Now().Add(resetTokenTTL)
	user.ResetToken = &token
	user.ResetTokenExp = &exp

	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", s.baseURL, token)
	if err := s.emails.SendPasswordReset(user.Email, resetURL); err != nil {
		logger.CtxWithError(ctx, "failed to send password reset email", err, "user_id", user.ID)
	}
	return nil
}

// ResetPassword consumes the token: it is cleared on success and a second
// use fails with the same error as an unknown token.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrInvalidToken
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = nil
	user.ResetTokenExp = nil

	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
