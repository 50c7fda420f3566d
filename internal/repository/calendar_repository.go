package repository

import (
	"manhaj_backend/internal/model"

	"gorm.io/gorm"
)

type CalendarRepository struct {
	DB *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{DB: db}
}

func (r *CalendarRepository) CreateEvent(event *model.CalendarEvent) error {
	return r.DB.Create(event).Error
}

func (r *CalendarRepository) FindEventByID(id string) (*model.CalendarEvent, error) {
	var event model.CalendarEvent
	err := r.DB.First(&event, "id = ?", id).Error
	return &event, err
}

func (r *CalendarRepository) FindEventsByUser(userID uint) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	err := r.DB.Where("user_id = ?", userID).Order("starts_at").Find(&events).Error
	return events, err
}

func (r *CalendarRepository) UpdateEventFields(id string, updates map[string]interface{}) error {
	return r.DB.Model(&model.CalendarEvent{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CalendarRepository) DeleteEvent(id string) error {
	return r.DB.Delete(&model.CalendarEvent{}, "id = ?", id).Error
}

func (r *CalendarRepository) FindSettings(userID uint) (*model.CalendarSettings, error) {
	var settings model.CalendarSettings
	err := r.DB.Where("user_id = ?", userID).First(&settings).Error
	return &settings, err
}

func (r *CalendarRepository) SaveSettings(settings *model.CalendarSettings) error {
	return r.DB.Save(settings).Error
}
