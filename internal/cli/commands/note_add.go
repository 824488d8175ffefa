package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"NoteHub/internal/cli/api"
	"NoteHub/internal/config"
)

type noteAddCmd struct{}

func (noteAddCmd) Name() string        { return "note-add" }
func (noteAddCmd) Description() string { return "Создать заметку с картинкой" }
func (noteAddCmd) Usage() string       { return "note-add <title> <content> <image-path>" }

func (noteAddCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	token, err := api.LoadToken()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/create"
	fields := map[string]string{
		"title":   args[0],
		"content": args[1],
	}
	resp, body, err := api.PostMultipart(http.MethodPost, endpoint, fields, args[2], token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Fprintln(Out, "Note created")
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("session expired, login again")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(noteAddCmd{}) }
