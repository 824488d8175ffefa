package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"NoteHub/internal/cli/api"
	"NoteHub/internal/config"
)

type noteRmCmd struct{}

func (noteRmCmd) Name() string        { return "note-rm" }
func (noteRmCmd) Description() string { return "Удалить заметку" }
func (noteRmCmd) Usage() string       { return "note-rm <id>" }

func (noteRmCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := api.LoadToken()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/" + args[0]
	resp, body, err := api.Delete(endpoint, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Note deleted")
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("session expired, login again")
	case http.StatusForbidden:
		return fmt.Errorf("note not found")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(noteRmCmd{}) }
