package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"NoteHub/internal/auth"
	"NoteHub/internal/config"
	"NoteHub/internal/googleid"
	"NoteHub/internal/model"
	"NoteHub/internal/service"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию и вход (пароль и Google).
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleTokenRequest struct {
	Token string `json:"token"`
}

// UserDTO — публичное представление пользователя в ответах auth-эндпоинтов.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Register — POST /api/auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.Logger.Errorw("Register: service error", "email", req.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	// регистрация выдаёт долгий токен (7 дней)
	token, err := auth.IssueToken(user.ID, user.Name, user.Email, h.Config.AuthSecret, auth.RegisterTokenTTL)
	if err != nil {
		h.Logger.Errorw("Register: failed to issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: toUserDTO(user)})
}

// Login — POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// одинаковый ответ для неизвестного email и неверного пароля
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.Errorw("Login: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	// обычный вход выдаёт короткий токен (1 час)
	token, err := auth.IssueToken(user.ID, user.Name, user.Email, h.Config.AuthSecret, auth.LoginTokenTTL)
	if err != nil {
		h.Logger.Errorw("Login: failed to issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: toUserDTO(user)})
}

// GoogleLogin — POST /api/auth/google-login
func (h *UserHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req GoogleTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	user, err := h.UserService.GoogleLogin(r.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusUnauthorized, "User not found. Please sign up first.")
		case errors.Is(err, googleid.ErrInvalidIDToken):
			h.Logger.Warnw("GoogleLogin: invalid id token", "error", err)
			writeError(w, http.StatusUnauthorized, "Invalid Google token")
		default:
			h.Logger.Errorw("GoogleLogin: service error", "error", err)
			writeError(w, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	token, err := auth.IssueToken(user.ID, user.Name, user.Email, h.Config.AuthSecret, auth.GoogleTokenTTL)
	if err != nil {
		h.Logger.Errorw("GoogleLogin: failed to issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: toUserDTO(user)})
}

// GoogleSignup — POST /api/auth/google-register
func (h *UserHandler) GoogleSignup(w http.ResponseWriter, r *http.Request) {
	var req GoogleTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	user, err := h.UserService.GoogleSignup(r.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, "User already exists. Please log in.")
		case errors.Is(err, googleid.ErrInvalidIDToken):
			h.Logger.Warnw("GoogleSignup: invalid id token", "error", err)
			writeError(w, http.StatusUnauthorized, "Invalid Google token")
		default:
			h.Logger.Errorw("GoogleSignup: service error", "error", err)
			writeError(w, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	token, err := auth.IssueToken(user.ID, user.Name, user.Email, h.Config.AuthSecret, auth.GoogleTokenTTL)
	if err != nil {
		h.Logger.Errorw("GoogleSignup: failed to issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: toUserDTO(user)})
}
