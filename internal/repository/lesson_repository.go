package repository

import (
	"manhaj_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindByID(id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, "id = ?", id).Error
	return &lesson, err
}

func (r *LessonRepository) CountByTopic(topicID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Where("topic_id = ?", topicID).Count(&count).Error
	return count, err
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) UpdateFields(id string, updates map[string]interface{}) error {
	return r.DB.Model(&model.Lesson{}).Where("id = ?", id).Updates(updates).Error
}

func (r *LessonRepository) SiblingIDs(topicID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Lesson{}).
		Where("topic_id = ?", topicID).
		Order("order_index").
		Pluck("id", &ids).Error
	return ids, err
}
