package services

import (
	"context"
	"fmt"
	"sync"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// In-memory repository stubs. They reproduce the repository contracts the
// services rely on, including the duplicate-key behavior of the real
// implementations.

type idGen struct {
	mu sync.Mutex
	n  int
}

func (g *idGen) next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", prefix, g.n)
}

var ids idGen

type stubUserRepo struct {
	users map[string]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*models.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = ids.next("user")
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) FindByResetToken(_ context.Context, token string) (*models.User, error) {
	for _, u := range r.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context, page, limit int) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	total := int64(len(out))
	start := (page - 1) * limit
	if start >= len(out) {
		return []models.User{}, total, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

type stubCompanyRepo struct {
	companies map[string]*models.Company
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{companies: make(map[string]*models.Company)}
}

func (r *stubCompanyRepo) Create(_ context.Context, company *models.Company) error {
	for _, c := range r.companies {
		if c.UserID == company.UserID {
			return repositories.ErrCompanyExists
		}
	}
	if company.ID == "" {
		company.ID = ids.next("company")
	}
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id string) (*models.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCompanyRepo) FindByUserID(_ context.Context, userID string) (*models.Company, error) {
	for _, c := range r.companies {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *stubCompanyRepo) Update(_ context.Context, company *models.Company) error {
	if _, ok := r.companies[company.ID]; !ok {
		return repositories.ErrCompanyNotFound
	}
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

func (r *stubCompanyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.companies[id]; !ok {
		return repositories.ErrCompanyNotFound
	}
	delete(r.companies, id)
	return nil
}

func (r *stubCompanyRepo) List(_ context.Context, filter repositories.CompanyFilter) ([]models.Company, int64, error) {
	var out []models.Company
	for _, c := range r.companies {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type stubSeekerRepo struct {
	profiles map[string]*models.JobSeeker
}

func newStubSeekerRepo() *stubSeekerRepo {
	return &stubSeekerRepo{profiles: make(map[string]*models.JobSeeker)}
}

func (r *stubSeekerRepo) Create(_ context.Context, profile *models.JobSeeker) error {
	if profile.ID == "" {
		profile.ID = ids.next("seeker")
	}
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

func (r *stubSeekerRepo) FindByUserID(_ context.Context, userID string) (*models.JobSeeker, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrJobSeekerNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubSeekerRepo) Update(_ context.Context, profile *models.JobSeeker) error {
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

type stubJobRepo struct {
	jobs map[string]*models.Job
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = ids.next("job")
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *stubJobRepo) Update(_ context.Context, job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *stubJobRepo) List(_ context.Context, filter repositories.JobFilter) ([]models.Job, int64, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if filter.CompanyID != "" && j.CompanyID != filter.CompanyID {
			continue
		}
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

type stubApplicationRepo struct {
	applications map[string]*models.Application
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{applications: make(map[string]*models.Application)}
}

func (r *stubApplicationRepo) Create(_ context.Context, app *models.Application) error {
	for _, a := range r.applications {
		if a.JobID == app.JobID && a.ApplicantID == app.ApplicantID {
			return repositories.ErrDuplicateApplication
		}
	}
	if app.ID == "" {
		app.ID = ids.next("application")
	}
	cp := *app
	r.applications[app.ID] = &cp
	return nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*models.Application, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *stubApplicationRepo) Update(_ context.Context, app *models.Application) error {
	if _, ok := r.applications[app.ID]; !ok {
		return repositories.ErrApplicationNotFound
	}
	cp := *app
	r.applications[app.ID] = &cp
	return nil
}

func (r *stubApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.applications[id]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(r.applications, id)
	return nil
}

func (r *stubApplicationRepo) List(_ context.Context, filter repositories.ApplicationFilter) ([]models.Application, int64, error) {
	var out []models.Application
	for _, a := range r.applications {
		if filter.JobID != "" && a.JobID != filter.JobID {
			continue
		}
		if filter.ApplicantID != "" && a.ApplicantID != filter.ApplicantID {
			continue
		}
		if filter.CompanyID != "" {
			if a.Job == nil || a.Job.CompanyID != filter.CompanyID {
				continue
			}
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

// recordingNotifier captures emitted events for assertions.
type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) JobCreated(*models.Job)         { n.events = append(n.events, "job.created") }
func (n *recordingNotifier) JobUpdated(*models.Job)         { n.events = append(n.events, "job.updated") }
func (n *recordingNotifier) JobDeleted(string)              { n.events = append(n.events, "job.deleted") }
func (n *recordingNotifier) CompanyUpdated(*models.Company) { n.events = append(n.events, "company.updated") }

// recordingEmailProvider captures outbound reset mails.
type recordingEmailProvider struct {
	to   []string
	urls []string
}

func (p *recordingEmailProvider) SendPasswordReset(to, resetURL string) error {
	p.to = append(p.to, to)
	p.urls = append(p.urls, resetURL)
	return nil
}
