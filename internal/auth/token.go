package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Сроки жизни токенов по потокам выдачи. Регистрация и Google-потоки выдают
// долгий токен, обычный логин — короткий (поведение исходного продукта).
const (
	RegisterTokenTTL = 7 * 24 * time.Hour
	LoginTokenTTL    = time.Hour
	GoogleTokenTTL   = 7 * 24 * time.Hour
)

// ErrInvalidToken — любая причина, по которой токен нельзя принять:
// битая подпись, неверный формат, истёкший срок.
var ErrInvalidToken = errors.New("invalid auth token")

// Claims — утверждения токена: стандартные + идентичность пользователя.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// IssueToken подписывает JWT (HS256) с заданным сроком жизни.
func IssueToken(userID int64, name, email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Name:   name,
		Email:  email,
	})
	return token.SignedString([]byte(secret))
}

// VerifyToken разбирает и проверяет JWT. Возвращает ErrInvalidToken при любой
// проблеме верификации — вызывающий не должен различать причины.
func VerifyToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
