package repo

import (
	"context"

	"NoteHub/internal/model"

	"gorm.io/gorm"
)

// NoteRepository определяет контракт доступа к Note для слоя сервиса.
type NoteRepository interface {
	// Create сохраняет новую заметку.
	Create(ctx context.Context, note *model.Note) error

	// GetByID возвращает заметку по ID без фильтра по владельцу.
	// Возвращает gorm.ErrRecordNotFound, если заметки нет.
	GetByID(ctx context.Context, id string) (*model.Note, error)

	// ListByUser возвращает заметки пользователя, новые сверху.
	ListByUser(ctx context.Context, userID int64) ([]model.Note, error)

	// Update применяет изменённые поля заметки.
	Update(ctx context.Context, note *model.Note) error

	// Delete удаляет заметку по ID.
	Delete(ctx context.Context, id string) error

	// ListAll возвращает все заметки всех пользователей с владельцами.
	ListAll(ctx context.Context) ([]model.Note, error)
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepository создаёт реализацию репозитория для Note.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var n model.Note
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) ListByUser(ctx context.Context, userID int64) ([]model.Note, error) {
	notes := []model.Note{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		// стабильный порядок: новые сверху, при равном времени — по id
		Order("created_at DESC").
		Order("id ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) Update(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *noteRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, "id = ?", id).Error
}

func (r *noteRepo) ListAll(ctx context.Context) ([]model.Note, error) {
	notes := []model.Note{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}
