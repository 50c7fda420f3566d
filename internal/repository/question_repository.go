package repository

import (
	"manhaj_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, "id = ?", id).Error
	return &q, err
}

type QuestionFilter struct {
	Type       model.QuestionType
	Difficulty model.DifficultyLevel
	SectionID  string
	GradeLevel int
	Search     string
}

func (r *QuestionRepository) List(f QuestionFilter, page, limit int) ([]model.Question, int64, error) {
	query := r.DB.Model(&model.Question{})
	if f.Type != "" {
		query = query.Where("question_type = ?", f.Type)
	}
	if f.Difficulty != "" {
		query = query.Where("difficulty = ?", f.Difficulty)
	}
	if f.SectionID != "" {
		query = query.Where("section_id = ?", f.SectionID)
	}
	if f.GradeLevel > 0 {
		query = query.Where("grade_level = ?", f.GradeLevel)
	}
	if f.Search != "" {
		query = query.Where("question_text LIKE ?", "%"+f.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []model.Question
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&questions).Error
	return questions, total, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id string) error {
	return r.DB.Delete(&model.Question{}, "id = ?", id).Error
}
