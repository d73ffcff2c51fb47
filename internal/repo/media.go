package repo

import (
	"MediaHost/internal/model"
	"context"

	"gorm.io/gorm"
)

// MediaRepository минимальный контракт доступа к Media для слоя сервиса.
type MediaRepository interface {
	// CreateMedia вставляет новую запись. Коллизия имени файла
	// (практически невозможная) вернётся как gorm.ErrDuplicatedKey.
	CreateMedia(ctx context.Context, media *model.Media) error

	// GetMediaByName ищет запись по имени файла.
	GetMediaByName(ctx context.Context, fileName string) (*model.Media, error)

	// DeleteMedia удаляет запись по имени файла.
	DeleteMedia(ctx context.Context, fileName string) error

	// ListMediaInfo возвращает метаданные всех файлов без содержимого.
	ListMediaInfo(ctx context.Context) ([]model.MediaInfo, error)
}

type mediaRepo struct {
	db *gorm.DB
}

// NewMediaRepository создаёт реализацию репозитория для Media.
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepo{db: db}
}

func (r *mediaRepo) CreateMedia(ctx context.Context, media *model.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaRepo) GetMediaByName(ctx context.Context, fileName string) (*model.Media, error) {
	var m model.Media
	if err := r.db.WithContext(ctx).Where("file_name = ?", fileName).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepo) DeleteMedia(ctx context.Context, fileName string) error {
	return r.db.WithContext(ctx).Where("file_name = ?", fileName).Delete(&model.Media{}).Error
}

func (r *mediaRepo) ListMediaInfo(ctx context.Context) ([]model.MediaInfo, error) {
	var infos []model.MediaInfo
	err := r.db.WithContext(ctx).
		Model(&model.Media{}).
		Select("file_name", "user_id", "created_at", "mime_type").
		Order("created_at").
		Find(&infos).Error
	if err != nil {
		return nil, err
	}
	return infos, nil
}
