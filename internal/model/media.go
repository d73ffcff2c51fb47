package model

import "time"

// Серверная модель Media — загруженный файл.
// FileName генерируется сервером и является первичным ключом.
type Media struct {
	FileName string `gorm:"primaryKey" json:"file_name"`
	Content  []byte `gorm:"not null" json:"-"`
	MimeType string `gorm:"not null" json:"mime_type"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName фиксирует имя таблицы: плюрализация для "media" неоднозначна.
func (Media) TableName() string { return "media" }

// MediaInfo — копия Media без содержимого, для админских списков.
type MediaInfo struct {
	FileName  string    `json:"file_name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	MimeType  string    `json:"mime_type"`
}
