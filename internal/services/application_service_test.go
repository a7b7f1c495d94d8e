package services

import (
	"context"
	"testing"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationFixture struct {
	svc          ApplicationService
	applications *stubApplicationRepo
	jobs         *stubJobRepo
	companies    *stubCompanyRepo

	company *models.Company
	job     *models.Job

	seeker      auth.Actor
	owner       auth.Actor
	otherOwner  auth.Actor
	admin       auth.Actor
	otherSeeker auth.Actor
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	ctx := context.Background()

	applications := newStubApplicationRepo()
	jobs := newStubJobRepo()
	companies := newStubCompanyRepo()

	company := &models.Company{Name: "Acme", UserID: "owner-1"}
	require.NoError(t, companies.Create(ctx, company))

	job := &models.Job{
		Title:      "Backend Engineer",
		CompanyID:  company.ID,
		PostedByID: "owner-1",
		Company:    company,
	}
	require.NoError(t, jobs.Create(ctx, job))

	return &applicationFixture{
		svc:          NewApplicationService(applications, jobs, companies),
		applications: applications,
		jobs:         jobs,
		companies:    companies,
		company:      company,
		job:          job,
		seeker:       auth.Actor{ID: "seeker-1", Role: models.UserRoleJobSeeker},
		owner:        auth.Actor{ID: "owner-1", Role: models.UserRoleCompany},
		otherOwner:   auth.Actor{ID: "owner-2", Role: models.UserRoleCompany},
		admin:        auth.Actor{ID: "admin-1", Role: models.UserRoleAdmin},
		otherSeeker:  auth.Actor{ID: "seeker-2", Role: models.UserRoleJobSeeker},
	}
}

// seedApplication stores an application the way the real repository returns
// it, with job and company associations attached.
func (f *applicationFixture) seedApplication(t *testing.T, applicantID string) *models.Application {
	t.Helper()
	app := &models.Application{
		JobID:       f.job.ID,
		ApplicantID: applicantID,
		ResumeURL:   "https://example.com/resume.pdf",
		Status:      models.ApplicationStatusPending,
		Job:         f.job,
	}
	require.NoError(t, f.applications.Create(context.Background(), app))
	return app
}

func TestApplicationCreate(t *testing.T) {
	f := newApplicationFixture(t)

	resp, err := f.svc.Create(context.Background(), f.seeker, &dto.CreateApplicationRequest{
		JobID:     f.job.ID,
		ResumeURL: "https://example.com/resume.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)
	assert.Equal(t, "seeker-1", resp.ApplicantID)
}

func TestApplicationCreateDuplicate(t *testing.T) {
	f := newApplicationFixture(t)
	req := &dto.CreateApplicationRequest{
		JobID:     f.job.ID,
		ResumeURL: "https://example.com/resume.pdf",
	}

	_, err := f.svc.Create(context.Background(), f.seeker, req)
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), f.seeker, req)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestApplicationCreateOnlySeekers(t *testing.T) {
	f := newApplicationFixture(t)
	req := &dto.CreateApplicationRequest{
		JobID:     f.job.ID,
		ResumeURL: "https://example.com/resume.pdf",
	}

	_, err := f.svc.Create(context.Background(), f.owner, req)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	_, err = f.svc.Create(context.Background(), f.admin, req)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestApplicationCreateUnknownJob(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Create(context.Background(), f.seeker, &dto.CreateApplicationRequest{
		JobID:     "missing-job",
		ResumeURL: "https://example.com/resume.pdf",
	})
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestApplicationGetVisibility(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.seedApplication(t, "seeker-1")
	ctx := context.Background()

	_, err := f.svc.GetByID(ctx, f.seeker, app.ID)
	assert.NoError(t, err)
	_, err = f.svc.GetByID(ctx, f.owner, app.ID)
	assert.NoError(t, err)
	_, err = f.svc.GetByID(ctx, f.admin, app.ID)
	assert.NoError(t, err)

	_, err = f.svc.GetByID(ctx, f.otherSeeker, app.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	_, err = f.svc.GetByID(ctx, f.otherOwner, app.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestApplicationStatusUpdate(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.seedApplication(t, "seeker-1")
	ctx := context.Background()
	status := "interviewing"

	resp, err := f.svc.Update(ctx, f.owner, app.ID, &dto.UpdateApplicationRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusInterviewing, resp.Status)

	// Any-to-any transition is allowed; drop straight back to pending.
	back := "pending"
	resp, err = f.svc.Update(ctx, f.admin, app.ID, &dto.UpdateApplicationRequest{Status: &back})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)
}

func TestApplicationStatusUpdateForbidden(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.seedApplication(t, "seeker-1")
	status := "accepted"

	// The applicant cannot set their own status.
	_, err := f.svc.Update(context.Background(), f.seeker, app.ID, &dto.UpdateApplicationRequest{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Nor can a company that does not own the job see it at all.
	_, err = f.svc.Update(context.Background(), f.otherOwner, app.ID, &dto.UpdateApplicationRequest{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestApplicationStatusUpdateInvalidValue(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.seedApplication(t, "seeker-1")
	status := "hired"

	_, err := f.svc.Update(context.Background(), f.owner, app.ID, &dto.UpdateApplicationRequest{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)
}

func TestApplicationCoverLetterOnlyApplicant(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.seedApplication(t, "seeker-1")
	ctx := context.Background()
	letter := "Updated cover letter"

	resp, err := f.svc.Update(ctx, f.seeker, app.ID, &dto.UpdateApplicationRequest{CoverLetter: &letter})
	require.NoError(t, err)
	require.NotNil(t, resp.CoverLetter)
	assert.Equal(t, letter, *resp.CoverLetter)

	// Neither the company owner nor an admin may rewrite it.
	_, err = f.svc.Update(ctx, f.owner, app.ID, &dto.UpdateApplicationRequest{CoverLetter: &letter})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	_, err = f.svc.Update(ctx, f.admin, app.ID, &dto.UpdateApplicationRequest{CoverLetter: &letter})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestApplicationUpdateEmptyBody(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.seedApplication(t, "seeker-1")

	_, err := f.svc.Update(context.Background(), f.seeker, app.ID, &dto.UpdateApplicationRequest{})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestApplicationListScoping(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	f.seedApplication(t, "seeker-1")
	f.seedApplication(t, "seeker-2")

	// A seeker only sees their own applications.
	apps, pagination, err := f.svc.List(ctx, f.seeker, dto.ApplicationListQuery{})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "seeker-1", apps[0].ApplicantID)
	assert.Equal(t, int64(1), pagination.Total)

	// The owning company sees applications against its jobs.
	apps, _, err = f.svc.List(ctx, f.owner, dto.ApplicationListQuery{})
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	// A company user without a profile gets a 404.
	_, _, err = f.svc.List(ctx, f.otherOwner, dto.ApplicationListQuery{})
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)

	// Admins see everything.
	apps, _, err = f.svc.List(ctx, f.admin, dto.ApplicationListQuery{})
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestApplicationListAdminCompanyFilter(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	f.seedApplication(t, "seeker-1")

	other := &models.Company{Name: "Globex", UserID: "owner-2"}
	require.NoError(t, f.companies.Create(ctx, other))
	otherJob := &models.Job{
		Title:      "Designer",
		CompanyID:  other.ID,
		PostedByID: "owner-2",
		Company:    other,
	}
	require.NoError(t, f.jobs.Create(ctx, otherJob))
	require.NoError(t, f.applications.Create(ctx, &models.Application{
		JobID:       otherJob.ID,
		ApplicantID: "seeker-2",
		ResumeURL:   "https://example.com/resume.pdf",
		Status:      models.ApplicationStatusPending,
		Job:         otherJob,
	}))

	// An admin can narrow the list to one company.
	apps, pagination, err := f.svc.List(ctx, f.admin, dto.ApplicationListQuery{CompanyID: other.ID})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "seeker-2", apps[0].ApplicantID)
	assert.Equal(t, int64(1), pagination.Total)

	// A company user stays scoped to their own jobs, whatever they ask for.
	apps, _, err = f.svc.List(ctx, f.owner, dto.ApplicationListQuery{CompanyID: other.ID})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "seeker-1", apps[0].ApplicantID)
}

func TestApplicationDelete(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.seedApplication(t, "seeker-1")
	ctx := context.Background()

	// A stranger cannot withdraw someone else's application.
	err := f.svc.Delete(ctx, f.otherSeeker, app.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	require.NoError(t, f.svc.Delete(ctx, f.seeker, app.ID))

	err = f.svc.Delete(ctx, f.seeker, app.ID)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
