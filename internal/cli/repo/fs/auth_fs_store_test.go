package fs

import (
	"runtime"
	"testing"
)

func withTempConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}

func TestAuthFSStore_SaveLoad(t *testing.T) {
	withTempConfigDir(t)

	store := AuthFSStore{}
	if err := store.Save("tok-abc"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "tok-abc" {
		t.Fatalf("token mismatch: %q", got)
	}
}

func TestAuthFSStore_LoadTrimsWhitespace(t *testing.T) {
	withTempConfigDir(t)

	store := AuthFSStore{}
	if err := store.Save("tok-abc\n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "tok-abc" {
		t.Fatalf("expected trimmed token, got %q", got)
	}
}

func TestAuthFSStore_LoadMissing(t *testing.T) {
	withTempConfigDir(t)

	store := AuthFSStore{}
	if _, err := store.Load(); err == nil {
		t.Fatalf("expected error when token file is absent")
	}
}
