package database

import (
	"fmt"
	"log"
	"manhaj_backend/internal/config"
	"manhaj_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	Seed(db)

	return db, nil
}

// Migrate creates or updates every table the application owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
}

// Seed inserts the built-in game registry on first boot.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&model.Game{}).Count(&count)
	if count > 0 {
		return
	}

	defaultGames := []model.Game{
		{Slug: "binary-blocks", Title: "مكعبات الأعداد الثنائية", GradeLevel: 4, Enabled: true, OrderIndex: 0},
		{Slug: "pixel-painter", Title: "رسام البكسل", GradeLevel: 5, Enabled: true, OrderIndex: 1},
		{Slug: "logic-gates", Title: "البوابات المنطقية", GradeLevel: 6, Enabled: true, OrderIndex: 2},
		{Slug: "network-maze", Title: "متاهة الشبكات", GradeLevel: 7, Enabled: true, OrderIndex: 3},
	}
	for i := range defaultGames {
		db.Create(&defaultGames[i])
	}
}
