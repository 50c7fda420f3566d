package repository

import (
	"manhaj_backend/internal/model"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

// FindTreeByGrade loads the full section tree for one grade level in one
// composed read, every sibling group ordered by order_index.
func (r *SectionRepository) FindTreeByGrade(gradeLevel int) ([]model.Section, error) {
	var sections []model.Section
	err := r.DB.
		Preload("Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("topics.order_index")
		}).
		Preload("Topics.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.order_index")
		}).
		Preload("Topics.Lessons.Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("lesson_media.order_index")
		}).
		Where("grade_level = ?", gradeLevel).
		Order("order_index").
		Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) FindByID(id string) (*model.Section, error) {
	var section model.Section
	err := r.DB.First(&section, "id = ?", id).Error
	return &section, err
}

func (r *SectionRepository) CountByGrade(gradeLevel int) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Section{}).Where("grade_level = ?", gradeLevel).Count(&count).Error
	return count, err
}

func (r *SectionRepository) Create(section *model.Section) error {
	return r.DB.Create(section).Error
}

func (r *SectionRepository) UpdateFields(id string, updates map[string]interface{}) error {
	return r.DB.Model(&model.Section{}).Where("id = ?", id).Updates(updates).Error
}

// SiblingIDs returns the ids of all sections of one grade level ordered by
// order_index.
func (r *SectionRepository) SiblingIDs(gradeLevel int) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Section{}).
		Where("grade_level = ?", gradeLevel).
		Order("order_index").
		Pluck("id", &ids).Error
	return ids, err
}
