package models

type UserRole string
type JobType string
type ApplicationStatus string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleCompany   UserRole = "company"
	UserRoleAdmin     UserRole = "admin"

	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"

	ApplicationStatusPending      ApplicationStatus = "pending"
	ApplicationStatusReviewed     ApplicationStatus = "reviewed"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
	ApplicationStatusAccepted     ApplicationStatus = "accepted"
)

// JobTypes lists every accepted job type, in display order.
var JobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeInternship,
	JobTypeRemote,
}

// ApplicationStatuses lists every accepted application status.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusInterviewing,
	ApplicationStatusRejected,
	ApplicationStatusAccepted,
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleJobSeeker, UserRoleCompany, UserRoleAdmin:
		return true
	}
	return false
}

func (t JobType) Valid() bool {
	for _, jt := range JobTypes {
		if t == jt {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) Valid() bool {
	for _, as := range ApplicationStatuses {
		if s == as {
			return true
		}
	}
	return false
}
