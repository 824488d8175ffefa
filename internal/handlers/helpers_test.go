package handlers_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"NoteHub/internal/auth"
	"NoteHub/internal/config"
	"NoteHub/internal/googleid"
	"NoteHub/internal/handlers"
	"NoteHub/internal/model"
	"NoteHub/internal/repo"
	"NoteHub/internal/service"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// --- Minimal mocks ---

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByEmailFold(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockNoteRepo struct{ mock.Mock }

func (m *mockNoteRepo) Create(ctx context.Context, note *model.Note) error {
	return m.Called(ctx, note).Error(0)
}
func (m *mockNoteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*model.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNoteRepo) ListByUser(ctx context.Context, userID int64) ([]model.Note, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNoteRepo) Update(ctx context.Context, note *model.Note) error {
	return m.Called(ctx, note).Error(0)
}
func (m *mockNoteRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockNoteRepo) ListAll(ctx context.Context) ([]model.Note, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.NoteRepository = (*mockNoteRepo)(nil)

type mockGoogleVerifier struct{ mock.Mock }

func (m *mockGoogleVerifier) Verify(ctx context.Context, rawToken string) (*googleid.Identity, error) {
	args := m.Called(ctx, rawToken)
	if id, ok := args.Get(0).(*googleid.Identity); ok {
		return id, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ googleid.Verifier = (*mockGoogleVerifier)(nil)

// fakeStorage — объектное хранилище без сети.
type fakeStorage struct {
	uploads map[string][]byte
}

func newFakeStorage() *fakeStorage { return &fakeStorage{uploads: map[string][]byte{}} }

func (f *fakeStorage) ObjectKey(filename string) string {
	return "media_resources/fixed-" + filename
}
func (f *fakeStorage) Upload(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	b, _ := io.ReadAll(reader)
	f.uploads[key] = b
	return nil
}
func (f *fakeStorage) PublicURL(key string) string {
	return "https://pub/" + strings.TrimPrefix(key, "media_resources/")
}

var _ service.FileStorage = (*fakeStorage)(nil)

// --- Helpers ---

type testEnv struct {
	userRepo *mockUserRepo
	noteRepo *mockNoteRepo
	google   *mockGoogleVerifier
	storage  *fakeStorage
	cfg      *config.Config
	router   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		userRepo: new(mockUserRepo),
		noteRepo: new(mockNoteRepo),
		google:   new(mockGoogleVerifier),
		storage:  newFakeStorage(),
	}
	env.cfg = &config.Config{AuthSecret: testSecret, UploadMaxSizeMB: 5, AdminEmails: "admin@x.com"}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(env.userRepo, env.google)
	noteSvc := service.NewNoteService(env.noteRepo, env.storage, logger)

	h := handlers.NewHandler(userSvc, noteSvc, logger, env.cfg)
	env.router = h.Router
	return env
}

func bearer(t *testing.T, req *http.Request, userID int64, name, email string) {
	t.Helper()
	token, err := auth.IssueToken(userID, name, email, testSecret, time.Minute)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
