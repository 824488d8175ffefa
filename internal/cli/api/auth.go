package api

import (
	"encoding/json"
	"fmt"

	clirepo "NoteHub/internal/cli/repo"
	fsrepo "NoteHub/internal/cli/repo/fs"
)

// tokenStore — хранилище Bearer-токена; в тестах может подменяться.
var tokenStore clirepo.TokenStore = fsrepo.AuthFSStore{}

// PersistAuthFromBody извлекает JWT из JSON-ответа {"token": ...} и сохраняет
// его через файловое хранилище.
func PersistAuthFromBody(body []byte) error {
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Token == "" {
		return fmt.Errorf("no auth token in response")
	}
	return tokenStore.Save(payload.Token)
}

// LoadToken читает сохранённый Bearer-токен.
func LoadToken() (string, error) {
	return tokenStore.Load()
}
