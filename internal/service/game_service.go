package service

import (
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"time"
)

type GameService struct {
	GameRepo *repository.GameRepository
}

func NewGameService(gameRepo *repository.GameRepository) *GameService {
	return &GameService{GameRepo: gameRepo}
}

func (s *GameService) List(gradeLevel int) ([]model.Game, error) {
	return s.GameRepo.List(gradeLevel)
}

func (s *GameService) GetBySlug(slug string) (*model.Game, error) {
	game, err := s.GameRepo.FindBySlug(slug)
	if err != nil {
		return nil, util.ErrGameNotFound
	}
	return game, nil
}

func (s *GameService) SetEnabled(id string, enabled bool) error {
	if _, err := s.GameRepo.FindByID(id); err != nil {
		return util.ErrGameNotFound
	}
	return s.GameRepo.UpdateFields(id, map[string]interface{}{"enabled": enabled})
}

func (s *GameService) RecordScore(gameID string, studentID uint, score, maxScore int) error {
	if _, err := s.GameRepo.FindByID(gameID); err != nil {
		return util.ErrGameNotFound
	}
	return s.GameRepo.CreateScore(&model.GameScore{
		GameID:    gameID,
		StudentID: studentID,
		Score:     score,
		MaxScore:  maxScore,
	})
}

func (s *GameService) StartSession(gameID string, studentID uint) error {
	if _, err := s.GameRepo.FindByID(gameID); err != nil {
		return util.ErrGameNotFound
	}
	return s.GameRepo.CreateSession(&model.GameSession{
		GameID:    gameID,
		StudentID: studentID,
		StartedAt: time.Now(),
	})
}

func (s *GameService) TopScores(gameID string, limit int) ([]model.GameScore, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.GameRepo.TopScores(gameID, limit)
}

// ResetGameData wipes all statistics for one game, or for every game when
// gameID is empty. The deletion is a single transaction.
func (s *GameService) ResetGameData(gameID string) error {
	if gameID != "" {
		if _, err := s.GameRepo.FindByID(gameID); err != nil {
			return util.ErrGameNotFound
		}
	}
	return s.GameRepo.ResetStats(gameID)
}
