package repository

import (
	"manhaj_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type VideoRepository struct {
	DB *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{DB: db}
}

func (r *VideoRepository) Create(video *model.VideoItem) error {
	return r.DB.Create(video).Error
}

func (r *VideoRepository) FindByID(id string) (*model.VideoItem, error) {
	var video model.VideoItem
	err := r.DB.First(&video, "id = ?", id).Error
	return &video, err
}

func (r *VideoRepository) List(gradeLevel int, category string, page, limit int) ([]model.VideoItem, int64, error) {
	query := r.DB.Model(&model.VideoItem{})
	if gradeLevel > 0 {
		query = query.Where("grade_level = ?", gradeLevel)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.VideoItem
	err := query.Order("order_index").
		Offset((page - 1) * limit).Limit(limit).
		Find(&videos).Error
	return videos, total, err
}

func (r *VideoRepository) UpdateFields(id string, updates map[string]interface{}) error {
	return r.DB.Model(&model.VideoItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *VideoRepository) Delete(id string) error {
	return r.DB.Delete(&model.VideoItem{}, "id = ?", id).Error
}

func (r *VideoRepository) PublishDue(now time.Time) (int64, error) {
	res := r.DB.Model(&model.VideoItem{}).
		Where("is_visible = ? AND published_at IS NOT NULL AND published_at <= ?", false, now).
		Update("is_visible", true)
	return res.RowsAffected, res.Error
}
