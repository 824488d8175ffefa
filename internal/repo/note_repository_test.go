package repo

import (
	"context"
	"testing"
	"time"

	"NoteHub/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Name: "U", Email: email, Password: "hash"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func TestNoteRepository_CreateGetDelete(t *testing.T) {
	db := newTestDB(t)
	r := NewNoteRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "owner@x.com")

	n := &model.Note{ID: uuid.NewString(), UserID: u.ID, Title: "T", Content: "C", Image: "https://pub/x.png"}
	assert.NoError(t, r.Create(ctx, n))

	got, err := r.GetByID(ctx, n.ID)
	assert.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, u.ID, got.UserID)
	assert.False(t, got.CreatedAt.IsZero())

	assert.NoError(t, r.Delete(ctx, n.ID))

	got, err = r.GetByID(ctx, n.ID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteRepository_ListByUser_OrderAndIsolation(t *testing.T) {
	db := newTestDB(t)
	r := NewNoteRepository(db)
	ctx := context.Background()
	owner := seedUser(t, db, "a@x.com")
	other := seedUser(t, db, "b@x.com")

	// заметки с разным временем создания + чужая заметка
	old := &model.Note{ID: uuid.NewString(), UserID: owner.ID, Title: "old", Content: "c",
		CreatedAt: time.Now().Add(-time.Hour)}
	fresh := &model.Note{ID: uuid.NewString(), UserID: owner.ID, Title: "fresh", Content: "c"}
	foreign := &model.Note{ID: uuid.NewString(), UserID: other.ID, Title: "foreign", Content: "c"}
	for _, n := range []*model.Note{old, fresh, foreign} {
		assert.NoError(t, r.Create(ctx, n))
	}

	notes, err := r.ListByUser(ctx, owner.ID)
	assert.NoError(t, err)
	assert.Len(t, notes, 2)
	// новые сверху
	assert.Equal(t, "fresh", notes[0].Title)
	assert.Equal(t, "old", notes[1].Title)

	// пользователь без заметок получает пустой список, не ошибку
	empty, err := r.ListByUser(ctx, 424242)
	assert.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestNoteRepository_Update(t *testing.T) {
	db := newTestDB(t)
	r := NewNoteRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "owner@x.com")

	n := &model.Note{ID: uuid.NewString(), UserID: u.ID, Title: "T", Content: "C", Image: "img1"}
	assert.NoError(t, r.Create(ctx, n))

	n.Title = "T2"
	assert.NoError(t, r.Update(ctx, n))

	got, err := r.GetByID(ctx, n.ID)
	assert.NoError(t, err)
	assert.Equal(t, "T2", got.Title)
	// остальные поля не тронуты
	assert.Equal(t, "C", got.Content)
	assert.Equal(t, "img1", got.Image)
}

func TestNoteRepository_ListAllWithOwners(t *testing.T) {
	db := newTestDB(t)
	r := NewNoteRepository(db)
	ctx := context.Background()
	a := seedUser(t, db, "a@x.com")
	b := seedUser(t, db, "b@x.com")

	assert.NoError(t, r.Create(ctx, &model.Note{ID: uuid.NewString(), UserID: a.ID, Title: "ta", Content: "c"}))
	assert.NoError(t, r.Create(ctx, &model.Note{ID: uuid.NewString(), UserID: b.ID, Title: "tb", Content: "c"}))

	notes, err := r.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, notes, 2)
	for _, n := range notes {
		// владелец подгружен вместе с заметкой
		assert.NotNil(t, n.User)
		assert.NotEmpty(t, n.User.Email)
	}
}
