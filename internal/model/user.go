package model

import "time"

// Серверная модель User — пользователь хостинга.
// AccessKey — единственный секрет пользователя, выдаётся один раз при регистрации.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Username string `gorm:"not null;uniqueIndex" json:"username"`

	AccessKey string `gorm:"not null;uniqueIndex" json:"access_key"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"is_admin"`

	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
