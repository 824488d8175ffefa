package handlers

import (
	"encoding/json"
	"net/http"

	"NoteHub/internal/config"
	"NoteHub/internal/middleware"
	"NoteHub/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	noteService *service.NoteService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	noteHandler := NewNoteHandler(noteService, logger, config)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("api is running...."))
	})

	r.Route("/api", func(r chi.Router) {
		// Auth routes — без токена
		r.Post("/auth/register", userHandler.Register)
		r.Post("/auth/login", userHandler.Login)
		r.Post("/auth/google-login", userHandler.GoogleLogin)
		r.Post("/auth/google-register", userHandler.GoogleSignup)

		// Notes routes — только с валидным Bearer-токеном
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithAuth(config.AuthSecret))

			r.Post("/create", noteHandler.Create)
			r.Get("/", noteHandler.List)
			r.Put("/{id}", noteHandler.Update)
			r.Delete("/{id}", noteHandler.Delete)
			r.Post("/all", noteHandler.ListAll)
		})
	})

	return &Handler{Router: r}
}

// writeJSON сериализует ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отдаёт единый формат ошибки {"success":false,"message":...}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}
