package service

import (
	"context"
	"encoding/json"
	"fmt"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"manhaj_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	calendarEventsKeyPrefix   = "calendar_events:"
	calendarSettingsKeyPrefix = "calendar_settings:"
	calendarMirrorTTL         = 7 * 24 * time.Hour
)

// CalendarService reads from the database and mirrors every successful read
// into Redis; when the database read fails the mirror is served instead.
// Prefer-backend, fall back to cache — no reconciliation beyond that.
type CalendarService struct {
	CalendarRepo *repository.CalendarRepository
	Redis        *redis.Client
}

func NewCalendarService(calendarRepo *repository.CalendarRepository, rdb *redis.Client) *CalendarService {
	return &CalendarService{
		CalendarRepo: calendarRepo,
		Redis:        rdb,
	}
}

func (s *CalendarService) GetEvents(ctx context.Context, userID uint) ([]model.CalendarEvent, error) {
	events, err := s.CalendarRepo.FindEventsByUser(userID)
	if err == nil {
		s.mirror(ctx, fmt.Sprintf("%s%d", calendarEventsKeyPrefix, userID), events)
		return events, nil
	}

	logger.Log.Warn("calendar read failed, serving mirror", zap.Error(err), zap.Uint("user", userID))
	var cached []model.CalendarEvent
	if mErr := s.readMirror(ctx, fmt.Sprintf("%s%d", calendarEventsKeyPrefix, userID), &cached); mErr != nil {
		return nil, util.ErrCalendarUnavailable
	}
	return cached, nil
}

func (s *CalendarService) GetSettings(ctx context.Context, userID uint) (*model.CalendarSettings, error) {
	settings, err := s.CalendarRepo.FindSettings(userID)
	if err == nil {
		s.mirror(ctx, fmt.Sprintf("%s%d", calendarSettingsKeyPrefix, userID), settings)
		return settings, nil
	}

	var cached model.CalendarSettings
	if mErr := s.readMirror(ctx, fmt.Sprintf("%s%d", calendarSettingsKeyPrefix, userID), &cached); mErr != nil {
		// First read for a new user: hand back defaults without persisting.
		return &model.CalendarSettings{UserID: userID, WeekStartsOn: 6, DefaultView: "month", ShowWeekends: true, ReminderAhead: 15}, nil
	}
	return &cached, nil
}

func (s *CalendarService) CreateEvent(ctx context.Context, event *model.CalendarEvent) error {
	if err := s.CalendarRepo.CreateEvent(event); err != nil {
		return err
	}
	s.invalidate(ctx, fmt.Sprintf("%s%d", calendarEventsKeyPrefix, event.UserID))
	return nil
}

func (s *CalendarService) UpdateEvent(ctx context.Context, id string, userID uint, updates map[string]interface{}) error {
	event, err := s.CalendarRepo.FindEventByID(id)
	if err != nil {
		return err
	}
	if event.UserID != userID {
		return util.ErrPermissionDenied
	}
	if err := s.CalendarRepo.UpdateEventFields(id, updates); err != nil {
		return err
	}
	s.invalidate(ctx, fmt.Sprintf("%s%d", calendarEventsKeyPrefix, userID))
	return nil
}

func (s *CalendarService) DeleteEvent(ctx context.Context, id string, userID uint) error {
	event, err := s.CalendarRepo.FindEventByID(id)
	if err != nil {
		return err
	}
	if event.UserID != userID {
		return util.ErrPermissionDenied
	}
	if err := s.CalendarRepo.DeleteEvent(id); err != nil {
		return err
	}
	s.invalidate(ctx, fmt.Sprintf("%s%d", calendarEventsKeyPrefix, userID))
	return nil
}

func (s *CalendarService) SaveSettings(ctx context.Context, settings *model.CalendarSettings) error {
	existing, err := s.CalendarRepo.FindSettings(settings.UserID)
	if err == nil {
		settings.ID = existing.ID
	}
	if err := s.CalendarRepo.SaveSettings(settings); err != nil {
		return err
	}
	s.mirror(ctx, fmt.Sprintf("%s%d", calendarSettingsKeyPrefix, settings.UserID), settings)
	return nil
}

func (s *CalendarService) mirror(ctx context.Context, key string, value interface{}) {
	if s.Redis == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, payload, calendarMirrorTTL).Err(); err != nil {
		logger.Log.Debug("calendar mirror write failed", zap.Error(err))
	}
}

func (s *CalendarService) readMirror(ctx context.Context, key string, out interface{}) error {
	if s.Redis == nil {
		return redis.Nil
	}
	val, err := s.Redis.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), out)
}

func (s *CalendarService) invalidate(ctx context.Context, key string) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(ctx, key)
}
