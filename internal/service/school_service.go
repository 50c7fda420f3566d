package service

import (
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"strings"
)

type SchoolService struct {
	SchoolRepo *repository.SchoolRepository
}

func NewSchoolService(schoolRepo *repository.SchoolRepository) *SchoolService {
	return &SchoolService{SchoolRepo: schoolRepo}
}

func (s *SchoolService) Create(school *model.School) error {
	if strings.TrimSpace(school.Name) == "" {
		return util.ErrTitleRequired
	}
	school.Active = true
	return s.SchoolRepo.Create(school)
}

func (s *SchoolService) List() ([]model.School, error) {
	return s.SchoolRepo.List()
}

func (s *SchoolService) Update(id uint, updates func(*model.School)) error {
	school, err := s.SchoolRepo.FindByID(id)
	if err != nil {
		return err
	}
	updates(school)
	return s.SchoolRepo.Update(school)
}

func (s *SchoolService) Delete(id uint) error {
	if _, err := s.SchoolRepo.FindByID(id); err != nil {
		return err
	}
	return s.SchoolRepo.Delete(id)
}
