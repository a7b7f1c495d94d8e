package auth

import "jobboard_backend/internal/models"

// Actor is the authenticated identity performing a request.
type Actor struct {
	ID   string
	Role models.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}

// CanCreateJob: only company and admin accounts post jobs.
func CanCreateJob(a Actor) bool {
	return a.Role == models.UserRoleCompany || a.Role == models.UserRoleAdmin
}

// CanManageJob: admin, or the user who originally posted the job.
// Ownership is deliberately narrow: other users of the owning company are
// not recognized, only the specific poster.
func CanManageJob(a Actor, postedByID string) bool {
	return a.IsAdmin() || a.ID == postedByID
}

// CanManageCompany: admin, or the user who owns the company profile.
func CanManageCompany(a Actor, ownerUserID string) bool {
	return a.IsAdmin() || a.ID == ownerUserID
}

// CanApply: only job seekers create applications.
func CanApply(a Actor) bool {
	return a.Role == models.UserRoleJobSeeker
}

// CanViewApplication: the applicant, the owning company's user, or admin.
func CanViewApplication(a Actor, applicantID, companyOwnerID string) bool {
	return a.IsAdmin() || a.ID == applicantID || a.ID == companyOwnerID
}

// CanDeleteApplication mirrors the view rule.
func CanDeleteApplication(a Actor, applicantID, companyOwnerID string) bool {
	return CanViewApplication(a, applicantID, companyOwnerID)
}

// CanSetApplicationStatus: the owning company's user or admin.
func CanSetApplicationStatus(a Actor, companyOwnerID string) bool {
	return a.IsAdmin() || a.ID == companyOwnerID
}

// CanEditCoverLetter: only the original applicant. Admins do not get to
// rewrite someone else's cover letter.
func CanEditCoverLetter(a Actor, applicantID string) bool {
	return a.ID == applicantID
}
