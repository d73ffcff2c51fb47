package service

import (
	"MediaHost/internal/config"
	"MediaHost/internal/model"
	"MediaHost/internal/repo"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService инкапсулирует аутентификацию, регистрацию и удаление пользователей.
type UserService struct {
	repo repo.UserRepository
	cfg  *config.Config
}

func NewUserService(r repo.UserRepository, cfg *config.Config) *UserService {
	return &UserService{repo: r, cfg: cfg}
}

// isDuplicateErr распознаёт нарушение уникальности. Postgres-диалект
// транслирует его в gorm.ErrDuplicatedKey, SQLite в тестах — нет,
// поэтому дополнительно смотрим на текст ошибки.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Authenticate резолвит bearer-токен в пользователя.
// Сравнение ключа — простое равенство со значением в хранилище.
func (s *UserService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	u, err := s.repo.GetUserByAccessKey(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized("authorization key is invalid.")
		}
		return nil, ErrInternal(err)
	}
	return u, nil
}

// Register проверяет инвайт-ключ и создаёт пользователя.
// Возвращает свежий ключ доступа — единственный момент, когда он виден.
// Уникальность username обеспечивает констрейнт БД, предварительной проверки нет.
func (s *UserService) Register(ctx context.Context, username, inviteKey string) (string, error) {
	if inviteKey != s.cfg.InviteKey {
		return "", ErrUnauthorized("invite key was invalid.")
	}

	accessKey := randomAlphanumeric(accessKeyLength)
	u := &model.User{
		ID:        uuid.NewString(),
		Username:  username,
		AccessKey: accessKey,
		IsAdmin:   false,
	}

	if _, err := s.repo.CreateUser(ctx, u); err != nil {
		if isDuplicateErr(err) {
			return "", ErrBadRequest("username is already taken.")
		}
		return "", ErrInternal(err)
	}

	return accessKey, nil
}

// ListUsers возвращает всех пользователей. Только для админов.
func (s *UserService) ListUsers(ctx context.Context, caller *model.User) ([]model.User, error) {
	if !caller.IsAdmin {
		return nil, ErrUnauthorized("you must be an admin to use this endpoint.")
	}
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, ErrInternal(err)
	}
	return users, nil
}

// DeleteSelf удаляет вызывающего пользователя вместе со всеми его media.
func (s *UserService) DeleteSelf(ctx context.Context, caller *model.User) error {
	if err := s.repo.DeleteUserWithMedia(ctx, caller.ID); err != nil {
		return ErrInternal(err)
	}
	return nil
}

// DeleteByID удаляет пользователя по id. Доступно только админам,
// других админов удалить через API нельзя — только напрямую в БД.
func (s *UserService) DeleteByID(ctx context.Context, caller *model.User, userID string) error {
	if !caller.IsAdmin {
		return ErrUnauthorized("you must be an admin to use this endpoint, if you are a user trying to delete your account use `/user/delete`.")
	}

	if _, err := uuid.Parse(userID); err != nil {
		return ErrBadRequest(err.Error())
	}

	target, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound()
		}
		return ErrInternal(err)
	}
	if target.IsAdmin {
		return ErrUnauthorized("cannot delete another admin, if you need to delete an admin, do it directly from the database.")
	}

	if err := s.repo.DeleteUserWithMedia(ctx, target.ID); err != nil {
		return ErrInternal(err)
	}
	return nil
}
