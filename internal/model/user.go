package model

import "time"

// Серверная модель User — учётная запись пользователя.
type User struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null;uniqueIndex" json:"email"`

	// Хеш пароля (bcrypt). Наружу никогда не отдаётся.
	Password string `gorm:"not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
