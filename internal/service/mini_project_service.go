package service

import (
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"strings"
)

type MiniProjectService struct {
	ProjectRepo *repository.MiniProjectRepository
}

func NewMiniProjectService(projectRepo *repository.MiniProjectRepository) *MiniProjectService {
	return &MiniProjectService{ProjectRepo: projectRepo}
}

func (s *MiniProjectService) Create(p *model.MiniProject) error {
	if strings.TrimSpace(p.Title) == "" {
		return util.ErrTitleRequired
	}
	if p.Status == "" {
		p.Status = model.ProjectDraft
	}
	p.ProgressPercentage = clampPercent(p.ProgressPercentage)
	return s.ProjectRepo.Create(p)
}

// UpdateContent is the student-side edit: only the owning student may change
// title, description, content and progress.
func (s *MiniProjectService) UpdateContent(id string, studentID uint, updates map[string]interface{}) error {
	p, err := s.ProjectRepo.FindByID(id)
	if err != nil {
		return util.ErrProjectNotFound
	}
	if p.StudentID != studentID {
		return util.ErrPermissionDenied
	}
	if v, ok := updates["progress_percentage"].(int); ok {
		updates["progress_percentage"] = clampPercent(v)
	}
	// Status transitions belong to staff; strip them from student edits.
	delete(updates, "status")
	return s.ProjectRepo.UpdateFields(id, updates)
}

// UpdateStatus is the staff-side transition.
func (s *MiniProjectService) UpdateStatus(id string, role model.UserRole, status model.MiniProjectStatus) error {
	if !role.IsStaff() {
		return util.ErrPermissionDenied
	}
	switch status {
	case model.ProjectDraft, model.ProjectInProgress, model.ProjectCompleted, model.ProjectReviewed:
	default:
		return util.ErrInvalidStatus
	}
	if _, err := s.ProjectRepo.FindByID(id); err != nil {
		return util.ErrProjectNotFound
	}
	return s.ProjectRepo.UpdateFields(id, map[string]interface{}{"status": status})
}

func (s *MiniProjectService) Delete(id string, role model.UserRole) error {
	if !role.IsStaff() {
		return util.ErrPermissionDenied
	}
	if _, err := s.ProjectRepo.FindByID(id); err != nil {
		return util.ErrProjectNotFound
	}
	return s.ProjectRepo.Delete(id)
}

func (s *MiniProjectService) ListForStudent(studentID uint) ([]model.MiniProject, error) {
	return s.ProjectRepo.FindByStudent(studentID)
}

func (s *MiniProjectService) List(status model.MiniProjectStatus, page, limit int) ([]model.MiniProject, int64, error) {
	return s.ProjectRepo.List(status, page, limit)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
