package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы токен сохранялся в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// saveTestToken кладёт токен туда, откуда его прочитает api.LoadToken.
func saveTestToken(t *testing.T, token string) {
	t.Helper()
	dir, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("config dir: %v", err)
	}
	p := filepath.Join(dir, "NoteHub")
	if err := os.MkdirAll(p, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(p, "auth_token"), []byte(token), 0o600); err != nil {
		t.Fatalf("write token: %v", err)
	}
}

// перехват вывода CLI на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
