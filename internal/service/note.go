package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"NoteHub/internal/model"
	"NoteHub/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoteAccess — заметки нет или она принадлежит другому пользователю.
// Нарочно одна ошибка на оба случая, чтобы не раскрывать существование чужих заметок.
var ErrNoteAccess = errors.New("unauthorized or note not found")

// FileStorage — порт объектного хранилища для сервиса заметок.
type FileStorage interface {
	ObjectKey(filename string) string
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

// FileUpload — принятый от клиента файл вложения.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// NoteUpdate — частичное обновление: nil означает «не трогать поле».
// Пустые значения полей никогда не записываются поверх существующих.
type NoteUpdate struct {
	Title   *string
	Content *string
	File    *FileUpload
}

// NoteService инкапсулирует бизнес-логику заметок.
type NoteService struct {
	notes   repo.NoteRepository
	storage FileStorage
	logger  *zap.SugaredLogger
}

func NewNoteService(notes repo.NoteRepository, storage FileStorage, logger *zap.SugaredLogger) *NoteService {
	return &NoteService{notes: notes, storage: storage, logger: logger}
}

// Create загружает вложение и сохраняет заметку с публичным URL картинки.
// Без успешной загрузки заметка не создаётся.
func (s *NoteService) Create(ctx context.Context, userID int64, title, content string, file *FileUpload) (*model.Note, error) {
	key := s.storage.ObjectKey(file.Name)
	if err := s.storage.Upload(ctx, key, file.Reader, file.Size, file.ContentType); err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}

	note := &model.Note{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Content: content,
		Image:   s.storage.PublicURL(key),
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.logger.Infow("note created", "note_id", note.ID, "user_id", userID)
	return note, nil
}

// List возвращает заметки пользователя, новые сверху.
func (s *NoteService) List(ctx context.Context, userID int64) ([]model.Note, error) {
	return s.notes.ListByUser(ctx, userID)
}

// getOwned достаёт заметку и сверяет владельца; несуществующая и чужая
// заметка дают одинаковую ошибку.
func (s *NoteService) getOwned(ctx context.Context, userID int64, id string) (*model.Note, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteAccess
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	if note.UserID != userID {
		return nil, ErrNoteAccess
	}
	return note, nil
}

// Update применяет только переданные поля. Картинка заменяется только если
// пришёл новый файл, иначе остаётся прежней.
func (s *NoteService) Update(ctx context.Context, userID int64, id string, upd NoteUpdate) (*model.Note, error) {
	note, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		note.Title = *upd.Title
	}
	if upd.Content != nil {
		note.Content = *upd.Content
	}
	if upd.File != nil {
		key := s.storage.ObjectKey(upd.File.Name)
		if err := s.storage.Upload(ctx, key, upd.File.Reader, upd.File.Size, upd.File.ContentType); err != nil {
			return nil, fmt.Errorf("upload attachment: %w", err)
		}
		note.Image = s.storage.PublicURL(key)
	}

	if err := s.notes.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

// Delete удаляет заметку владельца. Повторное удаление неотличимо от
// попытки удалить чужую заметку.
func (s *NoteService) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	s.logger.Infow("note deleted", "note_id", id, "user_id", userID)
	return nil
}

// ListAll возвращает заметки всех пользователей с владельцами.
// Вызывается только из административного эндпоинта.
func (s *NoteService) ListAll(ctx context.Context) ([]model.Note, error) {
	return s.notes.ListAll(ctx)
}
