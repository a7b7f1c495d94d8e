package handlers

// AppHandlers holds every route-registering handler.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	CompanyHandler     *CompanyHandler
	JobSeekerHandler   *JobSeekerHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
}
