package apperrors

import "net/http"

// Predefined errors for the frequent static cases.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrCompanyNotFound = New(
	CodeNotFound,
	"company",
	"Company profile not found",
	http.StatusNotFound,
)

var ErrSeekerProfileNotFound = New(
	CodeNotFound,
	"job_seeker",
	"Job seeker profile not found",
	http.StatusNotFound,
)

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied for this job",
	http.StatusConflict,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid application status",
	http.StatusBadRequest,
)

var ErrCompanyAlreadyExists = New(
	CodeAlreadyExists,
	"company",
	"Company profile already exists for this user",
	http.StatusConflict,
)
