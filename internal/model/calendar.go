package model

import "time"

// CalendarEvent belongs to one user. Reads are mirrored into Redis so the
// calendar stays available when the database read fails.
// swagger:model CalendarEvent
type CalendarEvent struct {
	UUIDBase
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartsAt    time.Time `gorm:"not null" json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	AllDay      bool      `gorm:"default:false" json:"allDay"`
	Color       string    `gorm:"size:20" json:"color"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}

// swagger:model CalendarSettings
type CalendarSettings struct {
	BaseModel
	UserID        uint   `gorm:"uniqueIndex;not null" json:"userId"`
	WeekStartsOn  int    `gorm:"default:6" json:"weekStartsOn"` // 6 = Saturday
	DefaultView   string `gorm:"size:20;default:'month'" json:"defaultView"`
	ShowWeekends  bool   `gorm:"default:true" json:"showWeekends"`
	ReminderAhead int    `gorm:"default:15" json:"reminderAhead"` // minutes
}

func (CalendarSettings) TableName() string {
	return "calendar_settings"
}
