package services

import (
	"recruivo_backend/internal/models"
	"recruivo_backend/internal/repositories"
	"recruivo_backend/internal/services/dto"
	"recruivo_backend/pkg/apperrors"
)

type ProfileService interface {
	UpsertProfile(userID string, req *dto.UpsertStudentProfileRequest) (*dto.StudentProfileResponse, error)
	GetOwnProfile(userID string) (*dto.StudentProfileResponse, error)
	GetProfile(profileID string) (*dto.StudentProfileResponse, error)
	UpdateSkills(userID string, req *dto.UpdateStudentSkillsRequest) (*dto.StudentProfileResponse, error)
}

type ProfileServiceImpl struct {
	studentRepo repositories.StudentRepository
	userRepo    repositories.UserRepository
	skillRepo   repositories.SkillRepository
}

func NewProfileService(
	studentRepo repositories.StudentRepository,
	userRepo repositories.UserRepository,
	skillRepo repositories.SkillRepository,
) ProfileService {
	return &ProfileServiceImpl{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		skillRepo:   skillRepo,
	}
}

// UpsertProfile creates the student profile on first save and replaces its
// fields on every later save.
func (s *ProfileServiceImpl) UpsertProfile(userID string, req *dto.UpsertStudentProfileRequest) (*dto.StudentProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleStudent {
		return nil, apperrors.ErrInsufficientPermissions
	}

	profile, err := s.studentRepo.FindByUserID(userID)
	switch {
	case err == nil:
		// update path
	case apperrors.Is(err, repositories.ErrProfileNotFound):
		profile = &models.StudentProfile{UserID: userID}
	default:
		return nil, apperrors.InternalError(err)
	}

	profile.University = req.University
	profile.Degree = req.Degree
	profile.Branch = req.Branch
	profile.GraduationYear = req.GraduationYear
	profile.Skills = req.Skills
	profile.City = req.City
	profile.About = req.About
	profile.SetExperience(req.Experience)
	profile.SetProjects(req.Projects)
	if req.Status != "" {
		profile.Status = req.Status
	}

	if profile.ID == "" {
		if err := s.studentRepo.CreateProfile(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	} else {
		if err := s.studentRepo.UpdateProfile(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return toStudentProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) GetOwnProfile(userID string) (*dto.StudentProfileResponse, error) {
	profile, err := s.studentRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Student profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return toStudentProfileResponse(profile), nil
}

// GetProfile is the recruiter/admin view of a profile by its own id.
func (s *ProfileServiceImpl) GetProfile(profileID string) (*dto.StudentProfileResponse, error) {
	profile, err := s.studentRepo.FindByID(profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Student profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return toStudentProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateSkills(userID string, req *dto.UpdateStudentSkillsRequest) (*dto.StudentProfileResponse, error) {
	profile, err := s.studentRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileIncomplete
		}
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(req.Skills))
	for _, input := range req.Skills {
		ids = append(ids, input.SkillID)
	}

	known, err := s.skillRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(known) != len(ids) {
		return nil, apperrors.NewBadRequestError("One or more skill ids do not exist")
	}

	links := make([]models.StudentSkill, 0, len(req.Skills))
	for _, input := range req.Skills {
		links = append(links, models.StudentSkill{
			StudentID:   profile.UserID,
			SkillID:     input.SkillID,
			Proficiency: input.Proficiency,
		})
	}

	if err := s.studentRepo.ReplaceSkills(profile.UserID, links); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.studentRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toStudentProfileResponse(updated), nil
}

func toStudentProfileResponse(profile *models.StudentProfile) *dto.StudentProfileResponse {
	resp := &dto.StudentProfileResponse{
		ID:             profile.ID,
		UserID:         profile.UserID,
		University:     profile.University,
		Degree:         profile.Degree,
		Branch:         profile.Branch,
		GraduationYear: profile.GraduationYear,
		ResumeURL:      profile.ResumeURL,
		Skills:         profile.Skills,
		Experience:     profile.GetExperience(),
		Projects:       profile.GetProjects(),
		Status:         profile.Status,
		City:           profile.City,
		About:          profile.About,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if resp.Experience == nil {
		resp.Experience = []models.ExperienceEntry{}
	}
	if resp.Projects == nil {
		resp.Projects = []models.ProjectEntry{}
	}
	for _, link := range profile.StudentSkills {
		view := dto.StudentSkillView{
			SkillID:     link.SkillID,
			Proficiency: link.Proficiency,
		}
		if link.Skill != nil {
			view.Name = link.Skill.Name
			view.Category = link.Skill.Category
		}
		resp.StudentSkills = append(resp.StudentSkills, view)
	}
	return resp
}
