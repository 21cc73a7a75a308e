package models

type UserRole string
type UserStatus string
type StudentStatus string
type CompanyStatus string
type JobStatus string
type JobType string
type ApplicationStatus string

const (
	UserRoleStudent   UserRole = "student"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"

	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	StudentStatusApplying     StudentStatus = "applying"
	StudentStatusInterviewing StudentStatus = "interviewing"
	StudentStatusPlaced       StudentStatus = "placed"

	CompanyStatusActive      CompanyStatus = "active"
	CompanyStatusPending     CompanyStatus = "pending"
	CompanyStatusBlacklisted CompanyStatus = "blacklisted"

	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"

	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusOffered     ApplicationStatus = "offered"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusDeclined    ApplicationStatus = "declined"
)

// ValidApplicationStatuses lists every status a recruiter may set.
var ValidApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusInterviewed,
	ApplicationStatusOffered,
	ApplicationStatusAccepted,
	ApplicationStatusDeclined,
}

func (s ApplicationStatus) Valid() bool {
	for _, valid := range ValidApplicationStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
