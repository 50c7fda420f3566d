package model

import (
	"time"

	"gorm.io/datatypes"
)

// RoleAll is the sentinel meaning a library item is visible to every role.
// It is mutually exclusive with any specific role in the persisted set.
const RoleAll = "all"

// Document is a file-library item, a sibling of the content tree.
// swagger:model Document
type Document struct {
	UUIDBase
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	FilePath     string         `gorm:"size:512;not null" json:"filePath"`
	FileName     string         `gorm:"size:255" json:"fileName"`
	Category     string         `gorm:"size:100;index" json:"category"`
	GradeLevel   int            `gorm:"index" json:"gradeLevel"`
	OwnerUserID  uint           `gorm:"index" json:"ownerUserId"`
	SchoolID     *uint          `gorm:"index" json:"schoolId,omitempty"`
	// No column default; creators set visibility explicitly so a hidden or
	// scheduled item persists as false.
	IsVisible    bool           `json:"isVisible"`
	AllowedRoles datatypes.JSON `json:"allowedRoles"` // []string, never empty
	OrderIndex   int            `gorm:"not null;default:0" json:"orderIndex"`
	Size         int64          `gorm:"default:0" json:"size"`
	PublishedAt  *time.Time     `json:"publishedAt,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}

// VideoItem is a video-library item (external URL or uploaded file).
// swagger:model VideoItem
type VideoItem struct {
	UUIDBase
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	VideoURL     string         `gorm:"size:512;not null" json:"videoUrl"`
	Thumbnail    string         `gorm:"size:512" json:"thumbnail"`
	Duration     float64        `gorm:"default:0" json:"duration"` // seconds
	Category     string         `gorm:"size:100;index" json:"category"`
	GradeLevel   int            `gorm:"index" json:"gradeLevel"`
	OwnerUserID  uint           `gorm:"index" json:"ownerUserId"`
	SchoolID     *uint          `gorm:"index" json:"schoolId,omitempty"`
	IsVisible    bool           `json:"isVisible"`
	AllowedRoles datatypes.JSON `json:"allowedRoles"`
	OrderIndex   int            `gorm:"not null;default:0" json:"orderIndex"`
	PublishedAt  *time.Time     `json:"publishedAt,omitempty"`
}

func (VideoItem) TableName() string {
	return "videos"
}
