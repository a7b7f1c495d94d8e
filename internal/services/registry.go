package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	CompanyService     CompanyService
	JobSeekerService   JobSeekerService
	JobService         JobService
	ApplicationService ApplicationService
}
