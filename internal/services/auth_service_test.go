package services

import (
	"context"
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	svc       AuthService
	users     *stubUserRepo
	companies *stubCompanyRepo
	seekers   *stubSeekerRepo
	emails    *recordingEmailProvider
}

func newAuthFixture() *authFixture {
	users := newStubUserRepo()
	companies := newStubCompanyRepo()
	seekers := newStubSeekerRepo()
	emails := &recordingEmailProvider{}

	svc := NewAuthService(
		users, companies, seekers, emails,
		"test-secret",
		24*time.Hour,
		720*time.Hour,
		"http://localhost:3000",
	)
	return &authFixture{svc: svc, users: users, companies: companies, seekers: seekers, emails: emails}
}

func TestRegisterJobSeekerCreatesProfile(t *testing.T) {
	f := newAuthFixture()

	user, err := f.svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "job_seeker",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleJobSeeker, user.Role)

	_, err = f.seekers.FindByUserID(context.Background(), user.ID)
	assert.NoError(t, err)
}

func TestRegisterCompanyCreatesProfile(t *testing.T) {
	f := newAuthFixture()

	user, err := f.svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Acme Inc",
		Email:    "acme@example.com",
		Password: "password123",
		Role:     "company",
	})
	require.NoError(t, err)

	company, err := f.companies.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", company.Name)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "password123",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()

	req := &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "job_seeker",
	}
	_, err := f.svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestLoginUniformCredentialError(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "job_seeker",
	})
	require.NoError(t, err)

	// Unknown email and wrong password produce the same error.
	_, errUnknown := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	_, errWrong := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)
}

func TestLoginIssuesToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "job_seeker",
	})
	require.NoError(t, err)

	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(24*3600), resp.ExpiresIn)

	claims, err := auth.ParseToken("test-secret", resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestLoginRememberMeExtendsSession(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "job_seeker",
	})
	require.NoError(t, err)

	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:      "alice@example.com",
		Password:   "password123",
		RememberMe: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(720*3600), resp.ExpiresIn)
}

func TestPasswordResetFlow(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "job_seeker",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.RequestPasswordReset(ctx, "alice@example.com"))
	require.Len(t, f.emails.to, 1)
	assert.Equal(t, "alice@example.com", f.emails.to[0])

	user, err := f.users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.ResetToken)
	token := *user.ResetToken

	require.NoError(t, f.svc.ResetPassword(ctx, token, "newpassword456"))

	// New password works, old one does not.
	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "newpassword456"})
	assert.NoError(t, err)
	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// The token is single use.
	err = f.svc.ResetPassword(ctx, token, "anotherpassword789")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestPasswordResetExpiredToken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "job_seeker",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.RequestPasswordReset(ctx, "alice@example.com"))

	user, err := f.users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	user.ResetTokenExp = &expired
	require.NoError(t, f.users.Update(ctx, user))

	err = f.svc.ResetPassword(ctx, *user.ResetToken, "newpassword456")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.RequestPasswordReset(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Empty(t, f.emails.to)
}

func TestCurrentUserUnknownID(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.CurrentUser(context.Background(), "missing")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)
}
