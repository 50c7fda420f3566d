package model

import "time"

type MiniProjectStatus string

const (
	ProjectDraft      MiniProjectStatus = "draft"
	ProjectInProgress MiniProjectStatus = "in_progress"
	ProjectCompleted  MiniProjectStatus = "completed"
	ProjectReviewed   MiniProjectStatus = "reviewed"
)

// MiniProject is a student-authored rich-text document with status tracking.
// Content edits are permitted only to the owning student; status changes and
// deletion only to staff roles.
// swagger:model MiniProject
type MiniProject struct {
	UUIDBase
	StudentID          uint              `gorm:"index;not null" json:"studentId"`
	Title              string            `gorm:"size:255;not null" json:"title"`
	Description        string            `gorm:"type:text" json:"description"`
	Status             MiniProjectStatus `gorm:"size:20;default:'draft'" json:"status"`
	ProgressPercentage int               `gorm:"default:0" json:"progressPercentage"`
	Content            string            `gorm:"type:longtext" json:"content"`
	DueDate            *time.Time        `json:"dueDate,omitempty"`
}

func (MiniProject) TableName() string {
	return "mini_projects"
}
