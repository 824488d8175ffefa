package model

import "time"

// Note — серверная модель заметки пользователя.
type Note struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"user"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`

	// Публичный URL картинки в объектном хранилище. Пустая строка — картинки нет.
	Image string `json:"image,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
