package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"NoteHub/internal/googleid"
	"NoteHub/internal/model"
	"NoteHub/internal/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken — пользователь с таким email уже зарегистрирован.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials — нарочно общая ошибка логина: не раскрываем,
	// существует ли email.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound — федеративный вход без локальной учётки.
	ErrUserNotFound = errors.New("user not found, please sign up first")
)

// UserService инкапсулирует регистрацию и аутентификацию.
type UserService struct {
	users  repo.UserRepository
	google googleid.Verifier
}

func NewUserService(users repo.UserRepository, google googleid.Verifier) *UserService {
	return &UserService{users: users, google: google}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
// Конфликт email проверяется по точному совпадению, как хранится.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Name: name, Email: email, Password: string(hash)}
	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Login проверяет пароль. Поиск email — без учёта регистра.
// Несуществующий email и неверный пароль неразличимы для клиента.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetUserByEmailFold(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GoogleLogin проверяет Google ID token и ищет локальную учётку по email.
// Автоматической регистрации нет.
func (s *UserService) GoogleLogin(ctx context.Context, idToken string) (*model.User, error) {
	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

// GoogleSignup создаёт локальную учётку по проверенному Google ID token.
// Пароль — случайный и никому не сообщается: вход по паролю для такой
// учётки невозможен.
func (s *UserService) GoogleSignup(ctx context.Context, idToken string) (*model.User, error) {
	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.GetUserByEmail(ctx, identity.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(randomPassword()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Name: identity.Name, Email: identity.Email, Password: string(hash)}
	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func randomPassword() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
