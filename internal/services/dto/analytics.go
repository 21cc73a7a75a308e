package dto

// RecruiterAnalytics aggregates the requesting recruiter's own jobs.
type RecruiterAnalytics struct {
	TotalJobs             int64            `json:"total_jobs"`
	TotalApplications     int64            `json:"total_applications"`
	ApplicationsByStatus  map[string]int64 `json:"applications_by_status"`
	AverageApplicationsPerJob float64      `json:"average_applications_per_job"`
}

// AdminAnalytics is the platform-wide dashboard payload.
type AdminAnalytics struct {
	TotalUsers        int64            `json:"total_users"`
	UsersByRole       map[string]int64 `json:"users_by_role"`
	Registrations     interface{}      `json:"registrations"`
	TotalCompanies    int64            `json:"total_companies"`
	TotalJobs         int64            `json:"total_jobs"`
	TotalApplications int64            `json:"total_applications"`
	PlacedStudents    int64            `json:"placed_students"`
}
