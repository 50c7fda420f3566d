package repository

import (
	"manhaj_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	DB *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(doc *model.Document) error {
	return r.DB.Create(doc).Error
}

// CreateBatch writes all documents of a bulk upload in one insert. Only files
// whose storage upload succeeded reach this call.
func (r *DocumentRepository) CreateBatch(docs []model.Document) error {
	if len(docs) == 0 {
		return nil
	}
	return r.DB.Create(&docs).Error
}

func (r *DocumentRepository) FindByID(id string) (*model.Document, error) {
	var doc model.Document
	err := r.DB.First(&doc, "id = ?", id).Error
	return &doc, err
}

func (r *DocumentRepository) List(gradeLevel int, category string, page, limit int) ([]model.Document, int64, error) {
	query := r.DB.Model(&model.Document{})
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

	var docs []model.Document
	err := query.Order("order_index").
		Offset((page - 1) * limit).Limit(limit).
		Find(&docs).Error
	return docs, total, err
}

func (r *DocumentRepository) UpdateFields(id string, updates map[string]interface{}) error {
	return r.DB.Model(&model.Document{}).Where("id = ?", id).Updates(updates).Error
}

func (r *DocumentRepository) Delete(id string) error {
	return r.DB.Delete(&model.Document{}, "id = ?", id).Error
}

// PublishDue flips visibility on for documents whose scheduled publish time
// has passed, returning how many were published.
func (r *DocumentRepository) PublishDue(now time.Time) (int64, error) {
	res := r.DB.Model(&model.Document{}).
		Where("is_visible = ? AND published_at IS NOT NULL AND published_at <= ?", false, now).
		Update("is_visible", true)
	return res.RowsAffected, res.Error
}
