package repo

import (
	"MediaHost/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository минимальный контракт доступа к User для слоя сервиса.
type UserRepository interface {
	// CreateUser вставляет нового пользователя. Дубликат username
	// возвращается как gorm.ErrDuplicatedKey.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByAccessKey ищет пользователя по ключу доступа.
	GetUserByAccessKey(ctx context.Context, key string) (*model.User, error)

	// GetUserByID ищет пользователя по id.
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]model.User, error)

	// DeleteUserWithMedia удаляет пользователя и все его media
	// в одной транзакции: сначала файлы, потом сам пользователь.
	DeleteUserWithMedia(ctx context.Context, userID string) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByAccessKey(ctx context.Context, key string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("access_key = ?", key).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("joined_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) DeleteUserWithMedia(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Media{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&model.User{}).Error
	})
}
