package dto

import "time"

type ResumeResponse struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	FileName    string    `json:"file_name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Version     int       `json:"version"`
	IsActive    bool      `json:"is_active"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type ResumeListResponse struct {
	Resumes []ResumeResponse `json:"resumes"`
	Total   int              `json:"total"`
}
