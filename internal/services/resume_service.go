package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"recruivo_backend/internal/config"
	"recruivo_backend/internal/logger"
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/services/dto"
	"recruivo_backend/internal/storage"
	"recruivo_backend/pkg/apperrors"
)

type ResumeUpload struct {
	FileName    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

type ResumeService interface {
	Upload(ctx context.Context, studentID string, upload *ResumeUpload) (*dto.ResumeResponse, error)
	List(studentID string) (*dto.ResumeListResponse, error)
	Activate(studentID, resumeID string) (*dto.ResumeResponse, error)
	Delete(ctx context.Context, studentID, resumeID string) error
}

type ResumeServiceImpl struct {
	resumeRepo  repositories.ResumeRepository
	studentRepo repositories.StudentRepository
	store       storage.Storage
	cfg         *config.Config
}

func NewResumeService(
	resumeRepo repositories.ResumeRepository,
	studentRepo repositories.StudentRepository,
	store storage.Storage,
	cfg *config.Config,
) ResumeService {
	return &ResumeServiceImpl{
		resumeRepo:  resumeRepo,
		studentRepo: studentRepo,
		store:       store,
		cfg:         cfg,
	}
}

// Upload stores the file, records it as the newest resume version and makes
// it active. The profile's resume_url mirrors the active version.
func (s *ResumeServiceImpl) Upload(ctx context.Context, studentID string, upload *ResumeUpload) (*dto.ResumeResponse, error) {
	if upload.Size > s.cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !s.contentTypeAllowed(upload.ContentType) {
		return nil, apperrors.ErrInvalidFileType
	}

	if _, err := s.studentRepo.FindByUserID(studentID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileIncomplete
		}
		return nil, apperrors.InternalError(err)
	}

	path := fmt.Sprintf("resumes/%s/%s%s", studentID, uuid.NewString(), filepath.Ext(upload.FileName))
	if err := s.store.Save(ctx, path, upload.Reader, upload.ContentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resume := &models.Resume{
		StudentID:   studentID,
		URL:         url,
		FileName:    upload.FileName,
		Size:        upload.Size,
		ContentType: upload.ContentType,
	}
	if err := s.resumeRepo.CreateVersion(resume); err != nil {
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			logger.WithError(delErr).Warn("failed to clean up stored resume", "path", path)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.studentRepo.UpdateResumeURL(studentID, url); err != nil {
		logger.WithError(err).Warn("failed to sync profile resume url", "student_id", studentID)
	}

	return toResumeResponse(resume), nil
}

func (s *ResumeServiceImpl) List(studentID string) (*dto.ResumeListResponse, error) {
	resumes, err := s.resumeRepo.FindByStudent(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ResumeListResponse{
		Resumes: make([]dto.ResumeResponse, 0, len(resumes)),
		Total:   len(resumes),
	}
	for i := range resumes {
		resp.Resumes = append(resp.Resumes, *toResumeResponse(&resumes[i]))
	}
	return resp, nil
}

func (s *ResumeServiceImpl) Activate(studentID, resumeID string) (*dto.ResumeResponse, error) {
	resume, err := s.resumeRepo.FindByID(resumeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.NewNotFoundError("resume", "Resume not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if resume.StudentID != studentID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.resumeRepo.Activate(studentID, resumeID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resume.IsActive = true

	if err := s.studentRepo.UpdateResumeURL(studentID, resume.URL); err != nil {
		logger.WithError(err).Warn("failed to sync profile resume url", "student_id", studentID)
	}

	return toResumeResponse(resume), nil
}

// Delete removes a resume version. When the active version is deleted the
// newest remaining one takes over; with none left the profile url clears.
func (s *ResumeServiceImpl) Delete(ctx context.Context, studentID, resumeID string) error {
	resume, err := s.resumeRepo.FindByID(resumeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResumeNotFound) {
			return apperrors.NewNotFoundError("resume", "Resume not found")
		}
		return apperrors.InternalError(err)
	}
	if resume.StudentID != studentID {
		return apperrors.ErrInsufficientPermissions
	}

	nowActive, err := s.resumeRepo.Delete(studentID, resumeID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	url := ""
	if nowActive != nil {
		url = nowActive.URL
	}
	if err := s.studentRepo.UpdateResumeURL(studentID, url); err != nil {
		logger.WithError(err).Warn("failed to sync profile resume url", "student_id", studentID)
	}

	if err := s.store.Delete(ctx, storagePathFromURL(resume.URL, s.cfg.Storage.BaseURL)); err != nil {
		logger.WithError(err).Warn("failed to delete stored resume", "resume_id", resumeID)
	}
	return nil
}

func (s *ResumeServiceImpl) contentTypeAllowed(contentType string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

func storagePathFromURL(url, baseURL string) string {
	if baseURL != "" && len(url) > len(baseURL) && url[:len(baseURL)] == baseURL {
		path := url[len(baseURL):]
		if len(path) > 0 && path[0] == '/' {
			path = path[1:]
		}
		return path
	}
	return url
}

func toResumeResponse(resume *models.Resume) *dto.ResumeResponse {
	return &dto.ResumeResponse{
		ID:          resume.ID,
		URL:         resume.URL,
		FileName:    resume.FileName,
		Size:        resume.Size,
		ContentType: resume.ContentType,
		Version:     resume.Version,
		IsActive:    resume.IsActive,
		UploadedAt:  resume.CreatedAt,
	}
}
