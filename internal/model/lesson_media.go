package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type MediaType string

const (
	MediaVideo  MediaType = "video"
	MediaImage  MediaType = "image"
	MediaLottie MediaType = "lottie"
	MediaCode   MediaType = "code"
)

// LessonMedia is a typed attachment belonging to exactly one lesson.
// Metadata is a per-type payload; see the typed structs below. The shape is
// validated at the submit boundary before anything is written.
// swagger:model LessonMedia
type LessonMedia struct {
	UUIDBase
	LessonID   string         `gorm:"index;type:varchar(36);not null" json:"lessonId"`
	MediaType  MediaType      `gorm:"size:20;not null" json:"mediaType"`
	FilePath   string         `gorm:"size:512;not null" json:"filePath"`
	FileName   string         `gorm:"size:255" json:"fileName"`
	OrderIndex int            `gorm:"not null;default:0" json:"orderIndex"`
	Metadata   datatypes.JSON `json:"metadata"`
}

func (LessonMedia) TableName() string {
	return "lesson_media"
}

// VideoMeta describes playback of an embedded or uploaded video.
type VideoMeta struct {
	Duration float64 `json:"duration,omitempty"`
	Autoplay bool    `json:"autoplay,omitempty"`
	Muted    bool    `json:"muted,omitempty"`
}

// ImageMeta carries the optional caption shown under an image.
type ImageMeta struct {
	Caption string `json:"caption,omitempty"`
	AltText string `json:"altText,omitempty"`
}

// LottieMeta controls playback of a lottie animation. Animation carries the
// inline animation document when the item is not backed by an uploaded file.
type LottieMeta struct {
	Speed     float64         `json:"speed,omitempty"`
	Loop      bool            `json:"loop,omitempty"`
	Autoplay  bool            `json:"autoplay,omitempty"`
	Animation json.RawMessage `json:"animation,omitempty"`
}

// CodeMeta carries the language tag plus typewriter playback settings.
type CodeMeta struct {
	Language  string `json:"language"`
	Speed     int    `json:"speed,omitempty"` // characters per second
	PauseMs   int    `json:"pauseMs,omitempty"`
	Loop      bool   `json:"loop,omitempty"`
	SourceRaw string `json:"sourceRaw,omitempty"`
}
