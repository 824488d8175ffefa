package repo

import (
	"context"
	"testing"

	"NoteHub/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	// успешное создание
	u, err := r.CreateUser(ctx, &model.User{Name: "John", Email: "John@x.com", Password: "hash"})
	assert.NoError(t, err)
	assert.NotZero(t, u.ID)

	// точный поиск — как хранится
	got, err := r.GetUserByEmail(ctx, "John@x.com")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// поиск для логина — без учёта регистра
	got, err = r.GetUserByEmailFold(ctx, "john@X.COM")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	// email хранится как введён
	assert.Equal(t, "John@x.com", got.Email)

	// уникальный email — вторая вставка должна дать ошибку
	_, err = r.CreateUser(ctx, &model.User{Name: "Dup", Email: "John@x.com", Password: "x"})
	assert.Error(t, err)

	// поиск несуществующего — ожидаем gorm.ErrRecordNotFound
	got, err = r.GetUserByEmail(ctx, "nobody@x.com")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u, err := r.CreateUser(ctx, &model.User{Name: "Ann", Email: "ann@x.com", Password: "hash"})
	assert.NoError(t, err)

	got, err := r.GetUserByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Equal(t, "ann@x.com", got.Email)

	_, err = r.GetUserByID(ctx, 99999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
