package service

import (
	"MediaHost/internal/model"
	"MediaHost/internal/repo"
	"context"
	"errors"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"
)

// MediaService инкапсулирует жизненный цикл media: загрузку, чтение, удаление.
type MediaService struct {
	repo repo.MediaRepository
}

func NewMediaService(r repo.MediaRepository) *MediaService {
	return &MediaService{repo: r}
}

// newMediaIdentity выводит имя и MIME-тип файла из его содержимого.
// Тип определяется по сигнатуре байтов, заголовкам клиента не верим.
// Имя — случайная часть плюс каноническое расширение типа; генерируется
// один раз и не меняется за время жизни записи.
func newMediaIdentity(content []byte) (fileName, mimeType string, err *Error) {
	mtype := mimetype.Detect(content)
	// application/octet-stream — корневой фолбэк детектора,
	// ни одна известная сигнатура не совпала
	if mtype.Is("application/octet-stream") || mtype.Extension() == "" {
		return "", "", ErrBadRequest("could not determine mimetype.")
	}
	return randomAlphanumeric(fileNameLength) + mtype.Extension(), mtype.String(), nil
}

// Upload сохраняет содержимое под сгенерированным именем и возвращает его.
func (s *MediaService) Upload(ctx context.Context, owner *model.User, content []byte) (string, error) {
	fileName, mimeType, idErr := newMediaIdentity(content)
	if idErr != nil {
		return "", idErr
	}

	m := &model.Media{
		FileName: fileName,
		Content:  content,
		MimeType: mimeType,
		UserID:   owner.ID,
	}
	if err := s.repo.CreateMedia(ctx, m); err != nil {
		return "", ErrInternal(err)
	}
	return fileName, nil
}

// Get возвращает запись по имени файла. Авторизация не нужна:
// media доступны по прямой ссылке всем, кто знает имя.
func (s *MediaService) Get(ctx context.Context, fileName string) (*model.Media, error) {
	m, err := s.repo.GetMediaByName(ctx, fileName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound()
		}
		return nil, ErrInternal(err)
	}
	return m, nil
}

// Delete удаляет файл по имени. Разрешено владельцу и админам.
func (s *MediaService) Delete(ctx context.Context, caller *model.User, fileName string) error {
	m, err := s.repo.GetMediaByName(ctx, fileName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound()
		}
		return ErrInternal(err)
	}

	if m.UserID != caller.ID && !caller.IsAdmin {
		return ErrUnauthorized("you do not own this media.")
	}

	if err := s.repo.DeleteMedia(ctx, fileName); err != nil {
		return ErrInternal(err)
	}
	return nil
}

// ListInfo возвращает метаданные всех файлов без содержимого. Только для админов.
func (s *MediaService) ListInfo(ctx context.Context, caller *model.User) ([]model.MediaInfo, error) {
	if !caller.IsAdmin {
		return nil, ErrUnauthorized("you must be an admin to use this endpoint.")
	}
	infos, err := s.repo.ListMediaInfo(ctx)
	if err != nil {
		return nil, ErrInternal(err)
	}
	return infos, nil
}
