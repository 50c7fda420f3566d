package service

import (
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/pkg/logger"
	"os"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.School{},
		&model.Section{},
		&model.Topic{},
		&model.Lesson{},
		&model.LessonMedia{},
		&model.Document{},
		&model.VideoItem{},
		&model.Question{},
		&model.MiniProject{},
		&model.CalendarEvent{},
		&model.CalendarSettings{},
		&model.Game{},
		&model.GameScore{},
		&model.GameSession{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTreeService(t *testing.T) (*ContentTreeService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewContentTreeService(
		repository.NewSectionRepository(db),
		repository.NewTopicRepository(db),
		repository.NewLessonRepository(db),
		repository.NewLessonMediaRepository(db),
		db,
	)
	return svc, db
}
