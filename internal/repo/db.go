package repo

import (
	"MediaHost/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает пул соединений к Postgres и прогоняет миграции моделей.
// TranslateError нужен, чтобы нарушение уникальности приходило как gorm.ErrDuplicatedKey.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Media{}); err != nil {
		return nil, err
	}

	return db, nil
}
