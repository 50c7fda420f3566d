package repository

import (
	"manhaj_backend/internal/model"

	"gorm.io/gorm"
)

type MiniProjectRepository struct {
	DB *gorm.DB
}

func NewMiniProjectRepository(db *gorm.DB) *MiniProjectRepository {
	return &MiniProjectRepository{DB: db}
}

func (r *MiniProjectRepository) Create(p *model.MiniProject) error {
	return r.DB.Create(p).Error
}

func (r *MiniProjectRepository) FindByID(id string) (*model.MiniProject, error) {
	var p model.MiniProject
	err := r.DB.First(&p, "id = ?", id).Error
	return &p, err
}

func (r *MiniProjectRepository) FindByStudent(studentID uint) ([]model.MiniProject, error) {
	var projects []model.MiniProject
	err := r.DB.Where("student_id = ?", studentID).
		Order("updated_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *MiniProjectRepository) List(status model.MiniProjectStatus, page, limit int) ([]model.MiniProject, int64, error) {
	query := r.DB.Model(&model.MiniProject{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.MiniProject
	err := query.Order("updated_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&projects).Error
	return projects, total, err
}

func (r *MiniProjectRepository) UpdateFields(id string, updates map[string]interface{}) error {
	return r.DB.Model(&model.MiniProject{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MiniProjectRepository) Delete(id string) error {
	return r.DB.Delete(&model.MiniProject{}, "id = ?", id).Error
}
