package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"NoteHub/internal/cli/api"
	"NoteHub/internal/config"
)

// NoteDTO — представление заметки в ответах сервера.
type NoteDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type notesCmd struct{}

func (notesCmd) Name() string        { return "notes" }
func (notesCmd) Description() string { return "Показать мои заметки (новые сверху)" }
func (notesCmd) Usage() string       { return "notes" }

func (notesCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := api.LoadToken()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api"
	resp, body, err := api.Get(endpoint, token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("session expired, login again")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var notes []NoteDTO
	if err := json.Unmarshal(body, &notes); err != nil {
		return fmt.Errorf("bad server response: %w", err)
	}
	if len(notes) == 0 {
		fmt.Fprintln(Out, "Нет заметок")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintf(Out, "%s  %s\n", n.ID, n.Title)
		fmt.Fprintf(Out, "    %s\n", n.Content)
		if n.Image != "" {
			fmt.Fprintf(Out, "    image: %s\n", n.Image)
		}
	}
	return nil
}

func init() { RegisterCmd(notesCmd{}) }
