package repo

import (
	"strings"

	"NoteHub/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и выполняет миграции моделей.
// Postgres — основной бэкенд; SQLite (modernc) остаётся для локального запуска.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		dial = postgres.Open(dsn)
	} else {
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Note{}); err != nil {
		return nil, err
	}

	return db, nil
}
