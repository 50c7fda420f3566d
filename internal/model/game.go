package model

import "time"

// Game is an entry in the mini-game registry rendered on the games screen.
// swagger:model Game
type Game struct {
	UUIDBase
	Slug       string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Title      string `gorm:"size:255;not null" json:"title"`
	GradeLevel int    `gorm:"index" json:"gradeLevel"`
	Enabled    bool   `gorm:"default:true" json:"enabled"`
	OrderIndex int    `gorm:"not null;default:0" json:"orderIndex"`
}

func (Game) TableName() string {
	return "games"
}

// swagger:model GameScore
type GameScore struct {
	BaseModel
	GameID    string `gorm:"index;type:varchar(36);not null" json:"gameId"`
	StudentID uint   `gorm:"index;not null" json:"studentId"`
	Score     int    `gorm:"not null" json:"score"`
	MaxScore  int    `json:"maxScore"`
}

func (GameScore) TableName() string {
	return "game_scores"
}

// swagger:model GameSession
type GameSession struct {
	BaseModel
	GameID     string     `gorm:"index;type:varchar(36);not null" json:"gameId"`
	StudentID  uint       `gorm:"index;not null" json:"studentId"`
	StartedAt  time.Time  `gorm:"not null" json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	DurationS  int        `gorm:"default:0" json:"durationS"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}
