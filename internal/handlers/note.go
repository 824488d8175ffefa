package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"NoteHub/internal/config"
	"NoteHub/internal/middleware"
	"NoteHub/internal/model"
	"NoteHub/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NoteHandler обрабатывает CRUD заметок.
type NoteHandler struct {
	NoteService *service.NoteService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewNoteHandler создаёт хендлер заметок
func NewNoteHandler(noteService *service.NoteService, logger *zap.SugaredLogger, cfg *config.Config) *NoteHandler {
	return &NoteHandler{NoteService: noteService, Logger: logger, Config: cfg}
}

// NoteResponse — ответ операций, меняющих заметку.
type NoteResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Note    *model.Note `json:"note,omitempty"`
}

// fileFromForm достаёт файл вложения из multipart-формы.
// Возвращает nil без ошибки, если файла в форме нет.
func fileFromForm(r *http.Request) (*service.FileUpload, multipart.File, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &service.FileUpload{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Reader:      file,
	}, file, nil
}

// Create — POST /api/create (multipart: title, content, image)
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication token is missing")
		return
	}

	maxBody := int64(h.Config.UploadMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Create: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Please provide title, content and image")
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")
	file, fh, err := fileFromForm(r)
	if err != nil {
		h.Logger.Warnw("Create: bad image field", "error", err)
		writeError(w, http.StatusBadRequest, "Please provide title, content and image")
		return
	}
	if fh != nil {
		defer fh.Close()
	}

	// все три поля обязательны при создании
	if title == "" || content == "" || file == nil {
		writeError(w, http.StatusBadRequest, "Please provide title, content and image")
		return
	}

	note, err := h.NoteService.Create(r.Context(), claims.UserID, title, content, file)
	if err != nil {
		h.Logger.Errorw("Create: service error", "user_id", claims.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, NoteResponse{Success: true, Message: "Note created successfully", Note: note})
}

// List — GET /api (заметки текущего пользователя, новые сверху)
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication token is missing")
		return
	}

	notes, err := h.NoteService.List(r.Context(), claims.UserID)
	if err != nil {
		h.Logger.Errorw("List: service error", "user_id", claims.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	// пустой список — это массив, не ошибка
	writeJSON(w, http.StatusOK, notes)
}

// Update — PUT /api/{id} (частичное обновление; multipart или JSON)
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication token is missing")
		return
	}
	id := chi.URLParam(r, "id")

	upd, fh, err := h.decodeUpdate(r)
	if err != nil {
		h.Logger.Warnw("Update: invalid request", "note_id", id, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if fh != nil {
		defer fh.Close()
	}

	note, err := h.NoteService.Update(r.Context(), claims.UserID, id, upd)
	if err != nil {
		if errors.Is(err, service.ErrNoteAccess) {
			// чужая и несуществующая заметка неотличимы
			writeError(w, http.StatusForbidden, "Unauthorized or Note not found")
			return
		}
		h.Logger.Errorw("Update: service error", "note_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, NoteResponse{Success: true, Note: note})
}

// decodeUpdate разбирает тело запроса обновления. Поле считается переданным,
// только если присутствует в форме/JSON — отсутствие не затирает значение.
func (h *NoteHandler) decodeUpdate(r *http.Request) (service.NoteUpdate, multipart.File, error) {
	var upd service.NoteUpdate

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		maxBody := int64(h.Config.UploadMaxSizeMB)*1024*1024 + 1*1024*1024
		r.Body = http.MaxBytesReader(nil, r.Body, maxBody)
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return upd, nil, err
		}
		if vals, ok := r.MultipartForm.Value["title"]; ok && len(vals) > 0 {
			upd.Title = &vals[0]
		}
		if vals, ok := r.MultipartForm.Value["content"]; ok && len(vals) > 0 {
			upd.Content = &vals[0]
		}
		file, fh, err := fileFromForm(r)
		if err != nil {
			return upd, nil, err
		}
		upd.File = file
		return upd, fh, nil
	}

	var body struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return upd, nil, err
	}
	upd.Title = body.Title
	upd.Content = body.Content
	return upd, nil, nil
}

// Delete — DELETE /api/{id}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication token is missing")
		return
	}
	id := chi.URLParam(r, "id")

	if err := h.NoteService.Delete(r.Context(), claims.UserID, id); err != nil {
		if errors.Is(err, service.ErrNoteAccess) {
			writeError(w, http.StatusForbidden, "Unauthorized or Note not found")
			return
		}
		h.Logger.Errorw("Delete: service error", "note_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Note deleted successfully"})
}

// AdminNoteDTO — заметка со сведениями о владельце для административной выдачи.
type AdminNoteDTO struct {
	model.Note
	Owner struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"owner"`
}

// ListAll — POST /api/all. Выдача по всем пользователям, только для
// администраторов из конфигурации.
func (h *NoteHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication token is missing")
		return
	}
	if !h.Config.IsAdmin(claims.Email) {
		writeError(w, http.StatusForbidden, "admin access required")
		return
	}

	notes, err := h.NoteService.ListAll(r.Context())
	if err != nil {
		h.Logger.Errorw("ListAll: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	out := make([]AdminNoteDTO, 0, len(notes))
	for _, n := range notes {
		dto := AdminNoteDTO{Note: n}
		if n.User != nil {
			dto.Owner.Name = n.User.Name
			dto.Owner.Email = n.User.Email
		}
		out = append(out, dto)
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "notes": out})
}
