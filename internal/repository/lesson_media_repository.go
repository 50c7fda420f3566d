package repository

import (
	"manhaj_backend/internal/model"

	"gorm.io/gorm"
)

type LessonMediaRepository struct {
	DB *gorm.DB
}

func NewLessonMediaRepository(db *gorm.DB) *LessonMediaRepository {
	return &LessonMediaRepository{DB: db}
}

func (r *LessonMediaRepository) FindByID(id string) (*model.LessonMedia, error) {
	var media model.LessonMedia
	err := r.DB.First(&media, "id = ?", id).Error
	return &media, err
}

func (r *LessonMediaRepository) FindByLesson(lessonID string) ([]model.LessonMedia, error) {
	var media []model.LessonMedia
	err := r.DB.Where("lesson_id = ?", lessonID).Order("order_index").Find(&media).Error
	return media, err
}

func (r *LessonMediaRepository) CountByLesson(lessonID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonMedia{}).Where("lesson_id = ?", lessonID).Count(&count).Error
	return count, err
}

func (r *LessonMediaRepository) Create(media *model.LessonMedia) error {
	return r.DB.Create(media).Error
}

func (r *LessonMediaRepository) UpdateFields(id string, updates map[string]interface{}) error {
	return r.DB.Model(&model.LessonMedia{}).Where("id = ?", id).Updates(updates).Error
}

func (r *LessonMediaRepository) SiblingIDs(lessonID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.LessonMedia{}).
		Where("lesson_id = ?", lessonID).
		Order("order_index").
		Pluck("id", &ids).Error
	return ids, err
}
