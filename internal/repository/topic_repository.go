package repository

import (
	"manhaj_backend/internal/model"

	"gorm.io/gorm"
)

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) FindByID(id string) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.First(&topic, "id = ?", id).Error
	return &topic, err
}

func (r *TopicRepository) CountBySection(sectionID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Topic{}).Where("section_id = ?", sectionID).Count(&count).Error
	return count, err
}

func (r *TopicRepository) Create(topic *model.Topic) error {
	return r.DB.Create(topic).Error
}

func (r *TopicRepository) UpdateFields(id string, updates map[string]interface{}) error {
	return r.DB.Model(&model.Topic{}).Where("id = ?", id).Updates(updates).Error
}

func (r *TopicRepository) SiblingIDs(sectionID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Topic{}).
		Where("section_id = ?", sectionID).
		Order("order_index").
		Pluck("id", &ids).Error
	return ids, err
}
