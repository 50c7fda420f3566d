package repository

import (
	"manhaj_backend/internal/model"

	"gorm.io/gorm"
)

type GameRepository struct {
	DB *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{DB: db}
}

func (r *GameRepository) List(gradeLevel int) ([]model.Game, error) {
	query := r.DB.Model(&model.Game{})
	if gradeLevel > 0 {
		query = query.Where("grade_level = ?", gradeLevel)
	}
	var games []model.Game
	err := query.Order("order_index").Find(&games).Error
	return games, err
}

func (r *GameRepository) FindByID(id string) (*model.Game, error) {
	var game model.Game
	err := r.DB.First(&game, "id = ?", id).Error
	return &game, err
}

func (r *GameRepository) FindBySlug(slug string) (*model.Game, error) {
	var game model.Game
	err := r.DB.Where("slug = ?", slug).First(&game).Error
	return &game, err
}

func (r *GameRepository) UpdateFields(id string, updates map[string]interface{}) error {
	return r.DB.Model(&model.Game{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GameRepository) CreateScore(score *model.GameScore) error {
	return r.DB.Create(score).Error
}

func (r *GameRepository) CreateSession(session *model.GameSession) error {
	return r.DB.Create(session).Error
}

func (r *GameRepository) TopScores(gameID string, limit int) ([]model.GameScore, error) {
	var scores []model.GameScore
	err := r.DB.Where("game_id = ?", gameID).
		Order("score DESC").Limit(limit).
		Find(&scores).Error
	return scores, err
}

// ResetStats wipes all score and session rows for one game (or every game
// when gameID is empty) in a single transaction.
func (r *GameRepository) ResetStats(gameID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		scores := tx.Unscoped().Model(&model.GameScore{})
		sessions := tx.Unscoped().Model(&model.GameSession{})
		if gameID != "" {
			scores = scores.Where("game_id = ?", gameID)
			sessions = sessions.Where("game_id = ?", gameID)
		} else {
			scores = scores.Where("1 = 1")
			sessions = sessions.Where("1 = 1")
		}

		if err := scores.Delete(&model.GameScore{}).Error; err != nil {
			return err
		}
		return sessions.Delete(&model.GameSession{}).Error
	})
}
