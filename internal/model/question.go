package model

import (
	"gorm.io/datatypes"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
	Essay          QuestionType = "essay"
)

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Question is an exam-bank entry. Choices is a JSON array of strings and is
// only meaningful for multiple_choice questions, where it must hold at least
// two unique entries containing the correct answer.
// swagger:model Question
type Question struct {
	UUIDBase
	QuestionText  string          `gorm:"type:text;not null" json:"questionText"`
	QuestionType  QuestionType    `gorm:"size:20;not null;index" json:"questionType"`
	Choices       datatypes.JSON  `json:"choices,omitempty"`
	CorrectAnswer string          `gorm:"type:text" json:"correctAnswer"`
	Points        int             `gorm:"default:1" json:"points"`
	Difficulty    DifficultyLevel `gorm:"size:10;default:'medium';index" json:"difficulty"`
	GradeLevel    int             `gorm:"index" json:"gradeLevel"`
	CreatedBy     uint            `gorm:"index" json:"createdBy"`
	// Loose association with a section for filtering, not a tree-parent edge.
	SectionID *string `gorm:"index;type:varchar(36)" json:"sectionId,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
